package compiler

import "github.com/sceneforge/gltf2tres/scene"

// ExtractCamera maps a camera to its emitted tag and property bag. Cameras
// are rare enough that every parameter is written unconditionally; the
// economy rule is skipped here on purpose.
func ExtractCamera(c *scene.Camera, precision int) (string, []Prop) {
	switch c.Kind {
	case scene.CAMERA_KIND_ORTHOGRAPHIC:
		return "TresOrthographicCamera", []Prop{
			{Key: "left", Value: FormatFloat(c.Left, precision), Expr: true},
			{Key: "right", Value: FormatFloat(c.Right, precision), Expr: true},
			{Key: "top", Value: FormatFloat(c.Top, precision), Expr: true},
			{Key: "bottom", Value: FormatFloat(c.Bottom, precision), Expr: true},
			{Key: "near", Value: FormatFloat(c.Near, precision), Expr: true},
			{Key: "far", Value: FormatFloat(c.Far, precision), Expr: true},
		}
	default:
		return "TresPerspectiveCamera", []Prop{
			{Key: "fov", Value: FormatFloat(c.Fov, precision), Expr: true},
			{Key: "aspect", Value: FormatFloat(c.Aspect, precision), Expr: true},
			{Key: "near", Value: FormatFloat(c.Near, precision), Expr: true},
			{Key: "far", Value: FormatFloat(c.Far, precision), Expr: true},
		}
	}
}
