package compiler

import "github.com/sceneforge/gltf2tres/scene"

// ExtractGeometry maps a declared shape to its emitted tag plus the ordered
// positional argument list. Parameters missing on the source node fall back
// to the engine defaults; shapes we do not parametrize emit their own tag
// with an empty argument list and rely on the scene reference line for
// their actual vertex data.
func ExtractGeometry(g *scene.Geometry, precision int) GeometryDescriptor {
	if g == nil {
		return GeometryDescriptor{Tag: tagForGeometry("BufferGeometry")}
	}

	switch g.Kind {
	case scene.GEOMETRY_KIND_BOX:
		return GeometryDescriptor{
			Tag: tagForGeometry("BoxGeometry"),
			Args: []string{
				FormatFloat(g.Param("width", DefaultFor("geometry.box", "width")), precision),
				FormatFloat(g.Param("height", DefaultFor("geometry.box", "height")), precision),
				FormatFloat(g.Param("depth", DefaultFor("geometry.box", "depth")), precision),
			},
		}
	case scene.GEOMETRY_KIND_SPHERE:
		return GeometryDescriptor{
			Tag: tagForGeometry("SphereGeometry"),
			Args: []string{
				FormatFloat(g.Param("radius", DefaultFor("geometry.sphere", "radius")), precision),
				FormatInt(g.Param("widthSegments", DefaultFor("geometry.sphere", "widthSegments"))),
				FormatInt(g.Param("heightSegments", DefaultFor("geometry.sphere", "heightSegments"))),
			},
		}
	case scene.GEOMETRY_KIND_PLANE:
		return GeometryDescriptor{
			Tag: tagForGeometry("PlaneGeometry"),
			Args: []string{
				FormatFloat(g.Param("width", DefaultFor("geometry.plane", "width")), precision),
				FormatFloat(g.Param("height", DefaultFor("geometry.plane", "height")), precision),
			},
		}
	case scene.GEOMETRY_KIND_CYLINDER:
		return GeometryDescriptor{
			Tag: tagForGeometry("CylinderGeometry"),
			Args: []string{
				FormatFloat(g.Param("radiusTop", DefaultFor("geometry.cylinder", "radiusTop")), precision),
				FormatFloat(g.Param("radiusBottom", DefaultFor("geometry.cylinder", "radiusBottom")), precision),
				FormatFloat(g.Param("height", DefaultFor("geometry.cylinder", "height")), precision),
			},
		}
	default:
		raw := g.RawKind
		if raw == "" {
			raw = "BufferGeometry"
		}
		return GeometryDescriptor{Tag: tagForGeometry(raw)}
	}
}

func tagForGeometry(rawKind string) string {
	return "Tres" + rawKind
}
