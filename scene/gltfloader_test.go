package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-3
}

func loadJSON(t *testing.T, doc string) *Model {
	t.Helper()
	m, err := LoadGLTF([]byte(doc), "test.gltf")
	if err != nil {
		t.Fatalf("LoadGLTF: %v", err)
	}
	return m
}

func TestLoadGLTFTree(t *testing.T) {
	m := loadJSON(t, `{
		"asset": {"version": "2.0"},
		"scene": 0,
		"scenes": [{"name": "Demo", "nodes": [0]}],
		"nodes": [
			{"name": "Parent", "translation": [1, 2, 3], "children": [1]},
			{"name": "Cube.001", "mesh": 0, "scale": [2, 2, 2]}
		],
		"meshes": [{"name": "Cube.001", "primitives": [{"attributes": {"POSITION": 0}}]}]
	}`)

	if m.Root.Name != "Demo" {
		t.Errorf("root name=%q; expected scene name", m.Root.Name)
	}
	if m.SourceName != "test.gltf" {
		t.Errorf("source name=%q", m.SourceName)
	}
	if len(m.Root.Children) != 1 {
		t.Fatalf("expected 1 root child, got %d", len(m.Root.Children))
	}

	parent := m.Root.Children[0]
	if parent.Kind != NODE_KIND_GROUP || parent.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("parent node %+v", parent)
	}
	if parent.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("unset scale must default to 1, got %v", parent.Scale)
	}

	if len(parent.Children) != 1 {
		t.Fatalf("expected 1 nested child")
	}
	cube := parent.Children[0]
	if cube.Kind != NODE_KIND_MESH || cube.Name != "Cube.001" {
		t.Errorf("mesh node %+v", cube)
	}
	if cube.Scale != (mgl32.Vec3{2, 2, 2}) {
		t.Errorf("scale=%v", cube.Scale)
	}
	if cube.Geometry == nil || cube.Geometry.Kind != GEOMETRY_KIND_BOX {
		t.Errorf("name heuristic should classify Cube.001 as a box, got %+v", cube.Geometry)
	}
	if cube.Material == nil || cube.Material.Kind != MATERIAL_KIND_BASIC {
		t.Errorf("mesh without material must get the default, got %+v", cube.Material)
	}
}

func TestLoadGLTFRotationBecomesEuler(t *testing.T) {
	// quarter turn around Y
	m := loadJSON(t, `{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": [0]}],
		"nodes": [{"name": "Spun", "rotation": [0, 0.7071068, 0, 0.7071068]}]
	}`)

	n := m.Root.Children[0]
	if !near(n.Rotation.Y(), float32(1.5707963)) {
		t.Errorf("rotation=%v; expected ~pi/2 around Y", n.Rotation)
	}
	if !near(n.Rotation.X(), 0) || !near(n.Rotation.Z(), 0) {
		t.Errorf("rotation=%v; X and Z should stay ~0", n.Rotation)
	}
}

func TestLoadGLTFGeometryExtras(t *testing.T) {
	m := loadJSON(t, `{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": [0]}],
		"nodes": [{"name": "Shape", "mesh": 0}],
		"meshes": [{
			"name": "Shape",
			"primitives": [{"attributes": {"POSITION": 0}}],
			"extras": {"geometry": {"type": "SphereGeometry", "radius": 2.5, "widthSegments": 8}}
		}]
	}`)

	g := m.Root.Children[0].Geometry
	if g.Kind != GEOMETRY_KIND_SPHERE || g.RawKind != "SphereGeometry" {
		t.Fatalf("geometry %+v", g)
	}
	if g.Param("radius", 1) != 2.5 {
		t.Errorf("radius=%v", g.Param("radius", 1))
	}
	if g.Param("widthSegments", 32) != 8 {
		t.Errorf("widthSegments=%v", g.Param("widthSegments", 32))
	}
	if g.Param("heightSegments", 16) != 16 {
		t.Errorf("missing param must fall back to the caller default")
	}
}

func TestLoadGLTFGeometryExtrasLegacyBufferSuffix(t *testing.T) {
	m := loadJSON(t, `{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": [0]}],
		"nodes": [{"name": "Old", "mesh": 0}],
		"meshes": [{
			"primitives": [{"attributes": {"POSITION": 0}}],
			"extras": {"geometry": {"type": "BoxBufferGeometry", "width": 2}}
		}]
	}`)

	g := m.Root.Children[0].Geometry
	if g.Kind != GEOMETRY_KIND_BOX {
		t.Errorf("BoxBufferGeometry must classify as a box, got kind %v", g.Kind)
	}
	if g.Param("width", 1) != 2 {
		t.Errorf("width=%v", g.Param("width", 1))
	}
}

func TestLoadGLTFPunctualLights(t *testing.T) {
	m := loadJSON(t, `{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": [0, 1]}],
		"nodes": [
			{"name": "Sun", "extensions": {"KHR_lights_punctual": {"light": 0}}},
			{"name": "Lamp", "extensions": {"KHR_lights_punctual": {"light": 1}}}
		],
		"extensions": {"KHR_lights_punctual": {"lights": [
			{"type": "directional", "intensity": 3, "color": [1, 0.5, 0.25]},
			{"type": "spot", "range": 12, "spot": {"innerConeAngle": 0.2, "outerConeAngle": 0.8}}
		]}}
	}`)

	sun := m.Root.Children[0]
	if sun.Kind != NODE_KIND_LIGHT || sun.Light == nil {
		t.Fatalf("sun node %+v", sun)
	}
	if sun.Light.Kind != LIGHT_KIND_DIRECTIONAL || sun.Light.Intensity != 3 {
		t.Errorf("sun light %+v", sun.Light)
	}
	if sun.Light.Color.IsWhite() {
		t.Errorf("declared color lost: %+v", sun.Light.Color)
	}

	lamp := m.Root.Children[1].Light
	if lamp == nil || lamp.Kind != LIGHT_KIND_SPOT {
		t.Fatalf("lamp light %+v", lamp)
	}
	if lamp.Intensity != 1 {
		t.Errorf("unset intensity must default to 1, got %v", lamp.Intensity)
	}
	if lamp.Distance != 12 || !near(lamp.Angle, 0.8) || !near(lamp.Penumbra, 0.75) {
		t.Errorf("spot params %+v; expected distance 12, angle 0.8, penumbra 0.75", lamp)
	}
}

func TestLoadGLTFUnknownLightTypeDegradesToGroup(t *testing.T) {
	m := loadJSON(t, `{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": [0]}],
		"nodes": [{"name": "Weird", "extensions": {"KHR_lights_punctual": {"light": 0}}}],
		"extensions": {"KHR_lights_punctual": {"lights": [{"type": "area"}]}}
	}`)

	n := m.Root.Children[0]
	if n.Kind != NODE_KIND_GROUP || n.Light != nil {
		t.Errorf("unknown light type should stay a plain group, got %+v", n)
	}
}

func TestLoadGLTFCameras(t *testing.T) {
	m := loadJSON(t, `{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": [0, 1]}],
		"nodes": [
			{"name": "Persp", "camera": 0},
			{"name": "Ortho", "camera": 1}
		],
		"cameras": [
			{"type": "perspective", "perspective": {"yfov": 0.7853982, "znear": 0.1}},
			{"type": "orthographic", "orthographic": {"xmag": 2, "ymag": 1, "znear": 0.1, "zfar": 50}}
		]
	}`)

	persp := m.Root.Children[0].Camera
	if persp == nil || persp.Kind != CAMERA_KIND_PERSPECTIVE {
		t.Fatalf("perspective camera %+v", persp)
	}
	if !near(persp.Fov, 45) {
		t.Errorf("fov=%v; expected 45 degrees", persp.Fov)
	}
	if persp.Aspect != 1 || persp.Far != 2000 {
		t.Errorf("unset aspect/zfar must take defaults, got %+v", persp)
	}

	ortho := m.Root.Children[1].Camera
	if ortho == nil || ortho.Kind != CAMERA_KIND_ORTHOGRAPHIC {
		t.Fatalf("orthographic camera %+v", ortho)
	}
	if ortho.Left != -2 || ortho.Right != 2 || ortho.Top != 1 || ortho.Bottom != -1 {
		t.Errorf("frustum planes %+v", ortho)
	}
	if ortho.Near != 0.1 || ortho.Far != 50 {
		t.Errorf("near/far %+v", ortho)
	}
}

func TestLoadGLTFMaterialKinds(t *testing.T) {
	m := loadJSON(t, `{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": [0, 1, 2]}],
		"nodes": [
			{"name": "Standard", "mesh": 0},
			{"name": "Unlit", "mesh": 1},
			{"name": "Coated", "mesh": 2}
		],
		"meshes": [
			{"primitives": [{"attributes": {"POSITION": 0}, "material": 0}]},
			{"primitives": [{"attributes": {"POSITION": 0}, "material": 1}]},
			{"primitives": [{"attributes": {"POSITION": 0}, "material": 2}]}
		],
		"materials": [
			{
				"pbrMetallicRoughness": {
					"baseColorFactor": [1, 0, 0, 0.5],
					"roughnessFactor": 0.4,
					"metallicFactor": 0
				},
				"alphaMode": "BLEND",
				"doubleSided": true
			},
			{
				"extensions": {"KHR_materials_unlit": {}},
				"pbrMetallicRoughness": {"baseColorFactor": [0, 1, 0, 1]}
			},
			{
				"extensions": {"KHR_materials_clearcoat": {"clearcoatFactor": 0.9}},
				"pbrMetallicRoughness": {}
			}
		]
	}`)

	std := m.Root.Children[0].Material
	if std.Kind != MATERIAL_KIND_STANDARD {
		t.Errorf("kind=%v; expected standard", std.Kind)
	}
	if std.Roughness != 0.4 || std.Metalness != 0 {
		t.Errorf("pbr factors %+v", std)
	}
	if !std.Transparent || std.Opacity != 0.5 {
		t.Errorf("BLEND alpha must map to transparent+opacity, got %+v", std)
	}
	if !std.DoubleSided {
		t.Errorf("doubleSided lost")
	}
	if std.Color.Hex() != "ff0000" {
		t.Errorf("base color %q", std.Color.Hex())
	}

	if kind := m.Root.Children[1].Material.Kind; kind != MATERIAL_KIND_BASIC {
		t.Errorf("unlit extension must force the basic kind, got %v", kind)
	}

	coated := m.Root.Children[2].Material
	if coated.Kind != MATERIAL_KIND_PHYSICAL || coated.Clearcoat != 0.9 {
		t.Errorf("clearcoat material %+v", coated)
	}
}

func TestLoadGLTFAnimations(t *testing.T) {
	m := loadJSON(t, `{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": []}],
		"nodes": [],
		"animations": [
			{"name": "Walk", "channels": [], "samplers": []},
			{"channels": [], "samplers": []}
		]
	}`)

	if len(m.Animations) != 2 {
		t.Fatalf("expected 2 clips, got %d", len(m.Animations))
	}
	if m.Animations[0] != (AnimationClip{Name: "Walk", Index: 0}) {
		t.Errorf("clip 0 = %+v", m.Animations[0])
	}
	if m.Animations[1] != (AnimationClip{Name: "", Index: 1}) {
		t.Errorf("clip 1 = %+v", m.Animations[1])
	}
}

func TestLoadGLTFWithoutSceneListUsesParentlessRoots(t *testing.T) {
	m := loadJSON(t, `{
		"asset": {"version": "2.0"},
		"nodes": [
			{"name": "Top", "children": [1]},
			{"name": "Nested"}
		]
	}`)

	if len(m.Root.Children) != 1 || m.Root.Children[0].Name != "Top" {
		t.Errorf("roots %+v; only parentless nodes may become roots", m.Root.Children)
	}
}

func TestLoadGLTFRejectsGarbage(t *testing.T) {
	if _, err := LoadGLTF([]byte("not a document"), "bad.gltf"); err == nil {
		t.Errorf("expected a decode error")
	}
	if _, err := LoadGLTF([]byte("glTF but not really a glb container"), "bad.glb"); err == nil {
		t.Errorf("expected a glb container error")
	}
}

func TestLoadGLTFNodeIndexOutOfRange(t *testing.T) {
	_, err := LoadGLTF([]byte(`{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": [5]}],
		"nodes": []
	}`), "broken.gltf")
	if err == nil {
		t.Errorf("dangling node index must fail loading")
	}
}
