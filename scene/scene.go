package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sceneforge/gltf2tres/utils"
)

type NodeKind int

const (
	NODE_KIND_GROUP NodeKind = iota
	NODE_KIND_MESH
	NODE_KIND_LIGHT
	NODE_KIND_CAMERA
)

type GeometryKind int

const (
	GEOMETRY_KIND_OTHER GeometryKind = iota
	GEOMETRY_KIND_BOX
	GEOMETRY_KIND_SPHERE
	GEOMETRY_KIND_PLANE
	GEOMETRY_KIND_CYLINDER
)

// Geometry describes the declared shape of a mesh node. RawKind keeps the
// declared kind string (three.js style, e.g. "TorusKnotGeometry") so shapes
// we do not parametrize still emit under their own tag.
type Geometry struct {
	Kind    GeometryKind
	RawKind string
	Params  map[string]float32
}

func (g *Geometry) Param(name string, def float32) float32 {
	if g.Params != nil {
		if v, ok := g.Params[name]; ok {
			return v
		}
	}
	return def
}

type MaterialKind int

const (
	MATERIAL_KIND_BASIC MaterialKind = iota
	MATERIAL_KIND_LAMBERT
	MATERIAL_KIND_STANDARD
	MATERIAL_KIND_PHYSICAL
)

type Material struct {
	Kind        MaterialKind
	Color       utils.ColorFloat
	Roughness   float32
	Metalness   float32
	Clearcoat   float32
	Emissive    utils.ColorFloat
	Transparent bool
	Opacity     float32
	DoubleSided bool
}

// DefaultMaterial is what a mesh without any material assignment gets.
func DefaultMaterial() *Material {
	return &Material{
		Kind:    MATERIAL_KIND_BASIC,
		Color:   utils.White(),
		Opacity: 1,
	}
}

type LightKind int

const (
	LIGHT_KIND_DIRECTIONAL LightKind = iota
	LIGHT_KIND_AMBIENT
	LIGHT_KIND_POINT
	LIGHT_KIND_SPOT
)

type Light struct {
	Kind      LightKind
	Color     utils.ColorFloat
	Intensity float32
	Distance  float32 // point, spot
	Angle     float32 // spot
	Penumbra  float32 // spot
}

type CameraKind int

const (
	CAMERA_KIND_PERSPECTIVE CameraKind = iota
	CAMERA_KIND_ORTHOGRAPHIC
)

type Camera struct {
	Kind   CameraKind
	Fov    float32 // degrees
	Aspect float32
	Near   float32
	Far    float32
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
}

// Node is one element of the loaded scene graph. The tree is built once by
// the loader and treated as read-only afterwards; the compiler never
// mutates it.
type Node struct {
	Kind NodeKind
	Name string

	Position mgl32.Vec3
	Rotation mgl32.Vec3 // euler, radians
	Scale    mgl32.Vec3

	Geometry *Geometry // mesh only
	Material *Material // mesh only
	Light    *Light    // light only
	Camera   *Camera   // camera only

	Children []*Node
}

// NewGroup returns an empty group node with a neutral transform.
func NewGroup(name string) *Node {
	return &Node{
		Kind:  NODE_KIND_GROUP,
		Name:  name,
		Scale: mgl32.Vec3{1, 1, 1},
	}
}

type AnimationClip struct {
	Name  string
	Index int // position in the source clip array; clip identity
}

// Model is the loader output: the scene tree plus the clip list, which in
// glTF lives outside the node hierarchy.
type Model struct {
	Root       *Node
	Animations []AnimationClip
	SourceName string
}
