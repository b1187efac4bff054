package compiler

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sceneforge/gltf2tres/scene"
	"github.com/sceneforge/gltf2tres/utils"
)

func TestExtractGeometryDefaults(t *testing.T) {
	tests := []struct {
		kind scene.GeometryKind
		raw  string
		tag  string
		args []string
	}{
		{scene.GEOMETRY_KIND_BOX, "BoxGeometry", "TresBoxGeometry", []string{"1", "1", "1"}},
		{scene.GEOMETRY_KIND_SPHERE, "SphereGeometry", "TresSphereGeometry", []string{"1", "32", "16"}},
		{scene.GEOMETRY_KIND_PLANE, "PlaneGeometry", "TresPlaneGeometry", []string{"1", "1"}},
		{scene.GEOMETRY_KIND_CYLINDER, "CylinderGeometry", "TresCylinderGeometry", []string{"1", "1", "1"}},
	}
	for _, test := range tests {
		d := ExtractGeometry(&scene.Geometry{Kind: test.kind, RawKind: test.raw}, 3)
		if d.Tag != test.tag {
			t.Errorf("tag=%q; expected %q", d.Tag, test.tag)
		}
		if !reflect.DeepEqual(d.Args, test.args) {
			t.Errorf("%s args=%v; expected %v", test.tag, d.Args, test.args)
		}
	}
}

func TestExtractGeometryParams(t *testing.T) {
	d := ExtractGeometry(&scene.Geometry{
		Kind:   scene.GEOMETRY_KIND_BOX,
		Params: map[string]float32{"width": 2, "depth": 0.5},
	}, 3)
	if !reflect.DeepEqual(d.Args, []string{"2", "1", "0.5"}) {
		t.Errorf("args=%v", d.Args)
	}
}

func TestExtractGeometryUnknownKind(t *testing.T) {
	d := ExtractGeometry(&scene.Geometry{Kind: scene.GEOMETRY_KIND_OTHER, RawKind: "TorusKnotGeometry"}, 3)
	if d.Tag != "TresTorusKnotGeometry" {
		t.Errorf("tag=%q", d.Tag)
	}
	if len(d.Args) != 0 {
		t.Errorf("unknown kind should have no args, got %v", d.Args)
	}
}

func TestExtractMaterialAllDefaults(t *testing.T) {
	d := ExtractMaterial(scene.DefaultMaterial(), 3)
	if d.Tag != "TresMeshBasicMaterial" {
		t.Errorf("tag=%q; expected basic fallback", d.Tag)
	}
	if len(d.Props) != 0 {
		t.Errorf("default material should elide every prop, got %+v", d.Props)
	}
}

func TestExtractMaterialStandard(t *testing.T) {
	m := &scene.Material{
		Kind:        scene.MATERIAL_KIND_STANDARD,
		Color:       utils.ColorFloat{1, 0, 0, 1},
		Roughness:   0.5,
		Metalness:   0,
		Opacity:     0.75,
		Transparent: true,
	}
	d := ExtractMaterial(m, 3)
	if d.Tag != "TresMeshStandardMaterial" {
		t.Errorf("tag=%q", d.Tag)
	}

	want := []Prop{
		{Key: "color", Value: "#ff0000"},
		{Key: "roughness", Value: "0.5", Expr: true},
		{Key: "transparent"},
		{Key: "opacity", Value: "0.75", Expr: true},
	}
	if !reflect.DeepEqual(d.Props, want) {
		t.Errorf("props=%+v; expected %+v", d.Props, want)
	}
}

func TestExtractMaterialPriorityLadder(t *testing.T) {
	phys := &scene.Material{Kind: scene.MATERIAL_KIND_PHYSICAL, Color: utils.White(), Roughness: 1, Clearcoat: 1, Opacity: 1}
	d := ExtractMaterial(phys, 3)
	if d.Tag != "TresMeshPhysicalMaterial" {
		t.Errorf("tag=%q", d.Tag)
	}
	want := []Prop{{Key: "clearcoat", Value: "1", Expr: true}}
	if !reflect.DeepEqual(d.Props, want) {
		t.Errorf("props=%+v; expected %+v", d.Props, want)
	}

	lam := &scene.Material{Kind: scene.MATERIAL_KIND_LAMBERT, Color: utils.White(), Opacity: 1}
	if d := ExtractMaterial(lam, 3); d.Tag != "TresMeshLambertMaterial" {
		t.Errorf("tag=%q", d.Tag)
	}
}

func TestExtractMaterialDoubleSided(t *testing.T) {
	m := &scene.Material{Kind: scene.MATERIAL_KIND_BASIC, Color: utils.White(), Opacity: 1, DoubleSided: true}
	d := ExtractMaterial(m, 3)
	want := []Prop{{Key: "side", Value: "2", Expr: true}}
	if !reflect.DeepEqual(d.Props, want) {
		t.Errorf("props=%+v; expected %+v", d.Props, want)
	}
}

func TestExtractLightIntensityAlwaysEmitted(t *testing.T) {
	tag, props := ExtractLight(&scene.Light{
		Kind:      scene.LIGHT_KIND_DIRECTIONAL,
		Color:     utils.White(),
		Intensity: 1,
	}, 3)
	if tag != "TresDirectionalLight" {
		t.Errorf("tag=%q", tag)
	}
	want := []Prop{{Key: "intensity", Value: "1", Expr: true}}
	if !reflect.DeepEqual(props, want) {
		t.Errorf("props=%+v; expected %+v (intensity is never elided, color only when non-white)", props, want)
	}
}

func TestExtractLightSpot(t *testing.T) {
	_, props := ExtractLight(&scene.Light{
		Kind:      scene.LIGHT_KIND_SPOT,
		Color:     utils.ColorFloat{1, 0.8, 0.6, 1},
		Intensity: 2,
		Distance:  10,
		Angle:     0.5,
		Penumbra:  0.25,
	}, 3)
	want := []Prop{
		{Key: "color", Value: "#ffcc99"},
		{Key: "intensity", Value: "2", Expr: true},
		{Key: "distance", Value: "10", Expr: true},
		{Key: "angle", Value: "0.5", Expr: true},
		{Key: "penumbra", Value: "0.25", Expr: true},
	}
	if !reflect.DeepEqual(props, want) {
		t.Errorf("props=%+v; expected %+v", props, want)
	}
}

func TestExtractCameraUnconditional(t *testing.T) {
	tag, props := ExtractCamera(&scene.Camera{
		Kind: scene.CAMERA_KIND_PERSPECTIVE,
		Fov:  45, Aspect: 1, Near: 0.1, Far: 2000,
	}, 3)
	if tag != "TresPerspectiveCamera" {
		t.Errorf("tag=%q", tag)
	}
	if len(props) != 4 {
		t.Errorf("perspective camera must emit fov/aspect/near/far, got %+v", props)
	}

	tag, props = ExtractCamera(&scene.Camera{Kind: scene.CAMERA_KIND_ORTHOGRAPHIC}, 3)
	if tag != "TresOrthographicCamera" {
		t.Errorf("tag=%q", tag)
	}
	if len(props) != 6 {
		t.Errorf("orthographic camera must emit all six planes, got %+v", props)
	}
}

func TestExtractTransformElision(t *testing.T) {
	n := &scene.Node{Scale: mgl32.Vec3{1, 1, 1}}
	if d := ExtractTransform(n, 3); !d.IsZero() {
		t.Errorf("identity transform should elide everything, got %+v", d)
	}

	// rounds to neutral on every axis -> still neutral
	n = &scene.Node{
		Position: mgl32.Vec3{0.0001, -0.0002, 0.0004},
		Scale:    mgl32.Vec3{1.0001, 0.9999, 1},
	}
	if d := ExtractTransform(n, 3); !d.IsZero() {
		t.Errorf("sub-precision transform should elide everything, got %+v", d)
	}

	// one non-neutral axis keeps the whole triple
	n = &scene.Node{
		Position: mgl32.Vec3{0.001, 0, 2.005},
		Scale:    mgl32.Vec3{1, 1, 1},
	}
	d := ExtractTransform(n, 2)
	if d.Position != "[0, 0, 2.01]" {
		t.Errorf("position=%q; expected full triple with rounded axes", d.Position)
	}
	if d.Rotation != "" || d.Scale != "" {
		t.Errorf("rotation/scale should stay elided, got %+v", d)
	}
}
