package compiler

import "github.com/sceneforge/gltf2tres/scene"

// ExtractLight maps a light to its emitted tag and property bag. Intensity
// is always written, default or not: lighting levels are the first thing an
// author tunes, so eliding them costs more than it saves. Color is written
// only when it is not pure white.
func ExtractLight(l *scene.Light, precision int) (string, []Prop) {
	var tag string
	switch l.Kind {
	case scene.LIGHT_KIND_DIRECTIONAL:
		tag = "TresDirectionalLight"
	case scene.LIGHT_KIND_AMBIENT:
		tag = "TresAmbientLight"
	case scene.LIGHT_KIND_POINT:
		tag = "TresPointLight"
	case scene.LIGHT_KIND_SPOT:
		tag = "TresSpotLight"
	default:
		tag = "TresAmbientLight"
	}

	props := make([]Prop, 0, 5)
	if !l.Color.IsWhite() {
		props = append(props, Prop{Key: "color", Value: "#" + l.Color.Hex()})
	}
	props = append(props, Prop{Key: "intensity", Value: FormatFloat(l.Intensity, precision), Expr: true})

	if l.Kind == scene.LIGHT_KIND_POINT || l.Kind == scene.LIGHT_KIND_SPOT {
		props = append(props, Prop{Key: "distance", Value: FormatFloat(l.Distance, precision), Expr: true})
	}
	if l.Kind == scene.LIGHT_KIND_SPOT {
		props = append(props,
			Prop{Key: "angle", Value: FormatFloat(l.Angle, precision), Expr: true},
			Prop{Key: "penumbra", Value: FormatFloat(l.Penumbra, precision), Expr: true})
	}

	return tag, props
}
