package scene

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/sceneforge/gltf2tres/utils"
)

const LIGHTS_PUNCTUAL_EXTENSION = "KHR_lights_punctual"
const CLEARCOAT_EXTENSION = "KHR_materials_clearcoat"
const UNLIT_EXTENSION = "KHR_materials_unlit"

var glbMagic = []byte{'g', 'l', 'T', 'F'}

// punctualLight mirrors the KHR_lights_punctual light declaration. We parse
// the extension json ourselves instead of registering an extension codec,
// so the loader works the same for .gltf and .glb input.
type punctualLight struct {
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Color     *[3]float32 `json:"color"`
	Intensity *float32   `json:"intensity"`
	Range     *float32   `json:"range"`
	Spot      *struct {
		InnerConeAngle float32  `json:"innerConeAngle"`
		OuterConeAngle *float32 `json:"outerConeAngle"`
	} `json:"spot"`
}

type loader struct {
	doc    *gltf.Document
	lights []punctualLight
}

// LoadGLTF builds a scene Model from raw .glb or .gltf bytes. Binary
// payloads referenced by the document are not resolved: the converter only
// needs the structural part of the asset.
func LoadGLTF(data []byte, sourceName string) (*Model, error) {
	doc := new(gltf.Document)

	if bytes.HasPrefix(data, glbMagic) {
		if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
			return nil, errors.Wrapf(err, "Failed to decode glb container")
		}
	} else {
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, errors.Wrapf(err, "Failed to decode gltf json")
		}
	}

	return modelFromDocument(doc, sourceName)
}

func LoadGLTFFile(path string) (*Model, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read %q", path)
	}
	return LoadGLTF(data, filepath.Base(path))
}

// ModelFromDocument converts an already-decoded document. The preview
// renderer and the converter share this entry point.
func ModelFromDocument(doc *gltf.Document, sourceName string) (*Model, error) {
	return modelFromDocument(doc, sourceName)
}

func modelFromDocument(doc *gltf.Document, sourceName string) (*Model, error) {
	l := &loader{doc: doc}
	if err := l.parsePunctualLights(); err != nil {
		return nil, err
	}

	root := NewGroup("Scene")

	var rootNodes []uint32
	if len(doc.Scenes) > 0 {
		iScene := 0
		if doc.Scene != nil {
			iScene = int(*doc.Scene)
		}
		if iScene >= len(doc.Scenes) {
			return nil, errors.Errorf("Default scene %d out of range (%d scenes)", iScene, len(doc.Scenes))
		}
		if name := doc.Scenes[iScene].Name; name != "" {
			root.Name = name
		}
		rootNodes = doc.Scenes[iScene].Nodes
	} else {
		// some exporters omit the scene list; treat parentless nodes as roots
		rootNodes = parentlessNodes(doc)
	}

	for _, iNode := range rootNodes {
		child, err := l.convertNode(iNode)
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, child)
	}

	m := &Model{
		Root:       root,
		SourceName: sourceName,
	}
	for iAnim, anim := range doc.Animations {
		m.Animations = append(m.Animations, AnimationClip{
			Name:  anim.Name,
			Index: iAnim,
		})
	}

	return m, nil
}

func parentlessNodes(doc *gltf.Document) []uint32 {
	hasParent := make(map[uint32]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			hasParent[c] = true
		}
	}
	roots := make([]uint32, 0, len(doc.Nodes))
	for i := range doc.Nodes {
		if !hasParent[uint32(i)] {
			roots = append(roots, uint32(i))
		}
	}
	return roots
}

func (l *loader) convertNode(iNode uint32) (*Node, error) {
	if int(iNode) >= len(l.doc.Nodes) {
		return nil, errors.Errorf("Node index %d out of range (%d nodes)", iNode, len(l.doc.Nodes))
	}
	gn := l.doc.Nodes[iNode]

	n := &Node{
		Kind: NODE_KIND_GROUP,
		Name: gn.Name,
	}
	n.Position, n.Rotation, n.Scale = nodeTransform(gn)

	switch {
	case gn.Mesh != nil:
		if err := l.fillMesh(n, *gn.Mesh); err != nil {
			return nil, err
		}
	case gn.Camera != nil:
		if err := l.fillCamera(n, *gn.Camera); err != nil {
			return nil, err
		}
	default:
		if iLight, ok := nodeLightRef(gn); ok {
			if err := l.fillLight(n, iLight); err != nil {
				return nil, err
			}
		}
	}

	for _, iChild := range gn.Children {
		child, err := l.convertNode(iChild)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}

	return n, nil
}

func nodeTransform(gn *gltf.Node) (position, rotation, scale mgl32.Vec3) {
	if !utils.IsIdentityMatrix(gn.Matrix) && gn.Matrix != ([16]float32{}) {
		return utils.DecomposeMatrix(gn.Matrix)
	}

	position = mgl32.Vec3{gn.Translation[0], gn.Translation[1], gn.Translation[2]}

	if !utils.IsIdentityQuat(gn.Rotation) && gn.Rotation != ([4]float32{}) {
		q := mgl32.Quat{
			W: gn.Rotation[3],
			V: mgl32.Vec3{gn.Rotation[0], gn.Rotation[1], gn.Rotation[2]},
		}
		rotation = utils.QuatToEuler(q.Normalize())
	}

	scale = mgl32.Vec3{gn.Scale[0], gn.Scale[1], gn.Scale[2]}
	if scale == (mgl32.Vec3{}) {
		// hand-built documents may leave scale unset
		scale = mgl32.Vec3{1, 1, 1}
	}

	return position, rotation, scale
}

func (l *loader) fillMesh(n *Node, iMesh uint32) error {
	if int(iMesh) >= len(l.doc.Meshes) {
		return errors.Errorf("Mesh index %d out of range (%d meshes)", iMesh, len(l.doc.Meshes))
	}
	gm := l.doc.Meshes[iMesh]

	n.Kind = NODE_KIND_MESH
	if n.Name == "" {
		n.Name = gm.Name
	}
	n.Geometry = geometryFromMesh(gm, n.Name)

	// meshes with several primitives keep only the first assigned material
	n.Material = DefaultMaterial()
	for _, prim := range gm.Primitives {
		if prim.Material != nil {
			if int(*prim.Material) >= len(l.doc.Materials) {
				return errors.Errorf("Material index %d out of range (%d materials)",
					*prim.Material, len(l.doc.Materials))
			}
			n.Material = materialFromGLTF(l.doc.Materials[*prim.Material])
			break
		}
	}

	return nil
}

// geometryFromMesh recovers a parametric shape declaration. Assets exported
// from three.js carry the declaration in mesh extras; otherwise we fall back
// to a name prefix heuristic, and finally to a plain buffer geometry.
func geometryFromMesh(gm *gltf.Mesh, nodeName string) *Geometry {
	if extras, ok := gm.Extras.(map[string]interface{}); ok {
		if raw, ok := extras["geometry"].(map[string]interface{}); ok {
			g := &Geometry{Params: make(map[string]float32)}
			for k, v := range raw {
				switch tv := v.(type) {
				case float64:
					g.Params[k] = float32(tv)
				case string:
					if k == "type" {
						g.RawKind = tv
					}
				}
			}
			if g.RawKind == "" {
				g.RawKind = "BufferGeometry"
			}
			g.Kind = geometryKindFromRaw(g.RawKind)
			return g
		}
	}

	name := gm.Name
	if name == "" {
		name = nodeName
	}
	return &Geometry{
		Kind:    geometryKindFromName(name),
		RawKind: rawKindForName(name),
	}
}

func geometryKindFromRaw(raw string) GeometryKind {
	// older three.js exporters write "BoxBufferGeometry" etc.
	base := strings.TrimSuffix(strings.TrimSuffix(raw, "Geometry"), "Buffer")
	switch strings.ToLower(base) {
	case "box", "cube":
		return GEOMETRY_KIND_BOX
	case "sphere":
		return GEOMETRY_KIND_SPHERE
	case "plane":
		return GEOMETRY_KIND_PLANE
	case "cylinder":
		return GEOMETRY_KIND_CYLINDER
	default:
		return GEOMETRY_KIND_OTHER
	}
}

func geometryKindFromName(name string) GeometryKind {
	name = strings.ToLower(name)
	switch {
	case strings.HasPrefix(name, "cube"), strings.HasPrefix(name, "box"):
		return GEOMETRY_KIND_BOX
	case strings.HasPrefix(name, "sphere"):
		return GEOMETRY_KIND_SPHERE
	case strings.HasPrefix(name, "plane"):
		return GEOMETRY_KIND_PLANE
	case strings.HasPrefix(name, "cylinder"):
		return GEOMETRY_KIND_CYLINDER
	default:
		return GEOMETRY_KIND_OTHER
	}
}

func rawKindForName(name string) string {
	switch geometryKindFromName(name) {
	case GEOMETRY_KIND_BOX:
		return "BoxGeometry"
	case GEOMETRY_KIND_SPHERE:
		return "SphereGeometry"
	case GEOMETRY_KIND_PLANE:
		return "PlaneGeometry"
	case GEOMETRY_KIND_CYLINDER:
		return "CylinderGeometry"
	default:
		return "BufferGeometry"
	}
}

func materialFromGLTF(gm *gltf.Material) *Material {
	m := DefaultMaterial()
	m.DoubleSided = gm.DoubleSided
	m.Emissive = ColorFromRGB(gm.EmissiveFactor)

	if gm.Extensions != nil {
		if _, unlit := gm.Extensions[UNLIT_EXTENSION]; unlit {
			m.Kind = MATERIAL_KIND_BASIC
			fillPBR(m, gm)
			return m
		}
		if raw, ok := gm.Extensions[CLEARCOAT_EXTENSION]; ok {
			m.Kind = MATERIAL_KIND_PHYSICAL
			fillPBR(m, gm)
			m.Clearcoat = clearcoatFactor(raw)
			return m
		}
	}

	if extras, ok := gm.Extras.(map[string]interface{}); ok {
		if shading, _ := extras["shading"].(string); strings.EqualFold(shading, "lambert") {
			m.Kind = MATERIAL_KIND_LAMBERT
			fillPBR(m, gm)
			return m
		}
	}

	if gm.PBRMetallicRoughness != nil {
		m.Kind = MATERIAL_KIND_STANDARD
		fillPBR(m, gm)
		return m
	}

	return m
}

func fillPBR(m *Material, gm *gltf.Material) {
	pbr := gm.PBRMetallicRoughness
	if pbr == nil {
		return
	}

	if pbr.BaseColorFactor != nil {
		m.Color = utils.NewColorFloatA((*pbr.BaseColorFactor)[:])
	}
	if pbr.RoughnessFactor != nil {
		m.Roughness = *pbr.RoughnessFactor
	} else {
		m.Roughness = 1
	}
	if pbr.MetallicFactor != nil {
		m.Metalness = *pbr.MetallicFactor
	} else {
		m.Metalness = 1
	}

	if gm.AlphaMode == gltf.AlphaBlend {
		m.Transparent = true
		if pbr.BaseColorFactor != nil {
			m.Opacity = (*pbr.BaseColorFactor)[3]
		}
	}
}

func clearcoatFactor(raw interface{}) float32 {
	var decl struct {
		ClearcoatFactor float32 `json:"clearcoatFactor"`
	}
	if err := remarshal(raw, &decl); err != nil {
		return 0
	}
	return decl.ClearcoatFactor
}

func ColorFromRGB(c [3]float32) utils.ColorFloat {
	return utils.ColorFloat{c[0], c[1], c[2], 1}
}

func (l *loader) parsePunctualLights() error {
	if l.doc.Extensions == nil {
		return nil
	}
	raw, ok := l.doc.Extensions[LIGHTS_PUNCTUAL_EXTENSION]
	if !ok {
		return nil
	}

	var decl struct {
		Lights []punctualLight `json:"lights"`
	}
	if err := remarshal(raw, &decl); err != nil {
		return errors.Wrapf(err, "Failed to parse %s declaration", LIGHTS_PUNCTUAL_EXTENSION)
	}
	l.lights = decl.Lights
	return nil
}

func nodeLightRef(gn *gltf.Node) (uint32, bool) {
	if gn.Extensions == nil {
		return 0, false
	}
	raw, ok := gn.Extensions[LIGHTS_PUNCTUAL_EXTENSION]
	if !ok {
		return 0, false
	}
	var ref struct {
		Light uint32 `json:"light"`
	}
	if err := remarshal(raw, &ref); err != nil {
		return 0, false
	}
	return ref.Light, true
}

func (l *loader) fillLight(n *Node, iLight uint32) error {
	if int(iLight) >= len(l.lights) {
		return errors.Errorf("Light index %d out of range (%d lights)", iLight, len(l.lights))
	}
	pl := l.lights[iLight]

	n.Kind = NODE_KIND_LIGHT
	if n.Name == "" {
		n.Name = pl.Name
	}

	light := &Light{
		Color:     utils.White(),
		Intensity: 1,
	}
	if pl.Color != nil {
		light.Color = ColorFromRGB(*pl.Color)
	}
	if pl.Intensity != nil {
		light.Intensity = *pl.Intensity
	}
	if pl.Range != nil {
		light.Distance = *pl.Range
	}

	switch strings.ToLower(pl.Type) {
	case "directional":
		light.Kind = LIGHT_KIND_DIRECTIONAL
	case "ambient":
		light.Kind = LIGHT_KIND_AMBIENT
	case "point":
		light.Kind = LIGHT_KIND_POINT
	case "spot":
		light.Kind = LIGHT_KIND_SPOT
		if pl.Spot != nil {
			if pl.Spot.OuterConeAngle != nil {
				light.Angle = *pl.Spot.OuterConeAngle
			} else {
				light.Angle = defaultOuterConeAngle
			}
			if light.Angle > 0 {
				light.Penumbra = 1 - pl.Spot.InnerConeAngle/light.Angle
			}
		} else {
			light.Angle = defaultOuterConeAngle
		}
	default:
		// unknown light types keep the graph visible through the scene
		// reference line, same as unsupported geometry
		n.Kind = NODE_KIND_GROUP
		return nil
	}

	n.Light = light
	return nil
}

const defaultOuterConeAngle = float32(0.7853981633974483) // pi/4

func (l *loader) fillCamera(n *Node, iCamera uint32) error {
	if int(iCamera) >= len(l.doc.Cameras) {
		return errors.Errorf("Camera index %d out of range (%d cameras)", iCamera, len(l.doc.Cameras))
	}
	gc := l.doc.Cameras[iCamera]

	n.Kind = NODE_KIND_CAMERA
	if n.Name == "" {
		n.Name = gc.Name
	}

	switch {
	case gc.Perspective != nil:
		p := gc.Perspective
		cam := &Camera{
			Kind:   CAMERA_KIND_PERSPECTIVE,
			Fov:    mgl32.RadToDeg(p.Yfov),
			Aspect: 1,
			Near:   p.Znear,
			Far:    2000,
		}
		if p.AspectRatio != nil {
			cam.Aspect = *p.AspectRatio
		}
		if p.Zfar != nil {
			cam.Far = *p.Zfar
		}
		n.Camera = cam
	case gc.Orthographic != nil:
		o := gc.Orthographic
		n.Camera = &Camera{
			Kind:   CAMERA_KIND_ORTHOGRAPHIC,
			Left:   -o.Xmag,
			Right:  o.Xmag,
			Top:    o.Ymag,
			Bottom: -o.Ymag,
			Near:   o.Znear,
			Far:    o.Zfar,
		}
	default:
		n.Kind = NODE_KIND_GROUP
	}

	return nil
}

func remarshal(raw interface{}, out interface{}) error {
	switch tv := raw.(type) {
	case json.RawMessage:
		return json.Unmarshal(tv, out)
	case []byte:
		return json.Unmarshal(tv, out)
	default:
		data, err := json.Marshal(raw)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, out)
	}
}
