package compiler

// Engine default values, keyed by "entityKind.property". Every elision
// decision goes through this table so the economy rule lives in one place.
// Values mirror the target renderer's built-in defaults: an attribute equal
// to its entry here is omitted from the generated markup.
var engineDefaults = map[string]float32{
	"geometry.box.width":             1,
	"geometry.box.height":            1,
	"geometry.box.depth":             1,
	"geometry.sphere.radius":         1,
	"geometry.sphere.widthSegments":  32,
	"geometry.sphere.heightSegments": 16,
	"geometry.plane.width":           1,
	"geometry.plane.height":          1,
	"geometry.cylinder.radiusTop":    1,
	"geometry.cylinder.radiusBottom": 1,
	"geometry.cylinder.height":       1,

	"material.roughness": 1,
	"material.metalness": 0,
	"material.clearcoat": 0,
	"material.opacity":   1,

	"light.intensity": 1,
	"light.distance":  0,
	"light.angle":     1.0471975511965976, // pi/3
	"light.penumbra":  0,
}

func DefaultFor(kind string, prop string) float32 {
	return engineDefaults[kind+"."+prop]
}

func isDefault(kind string, prop string, v float32, precision int) bool {
	return FormatFloat(v, precision) == FormatFloat(DefaultFor(kind, prop), precision)
}
