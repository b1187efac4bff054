package compiler

import (
	"fmt"

	"github.com/sceneforge/gltf2tres/scene"
)

const DEFAULT_PRECISION = 3

// Config controls the traversal side of a conversion. Emission options
// live in the emitter package.
type Config struct {
	// DecimalPrecision is the number of fractional digits kept on every
	// formatted scalar; zero means the default of 3.
	DecimalPrecision int
}

func (c Config) precision() int {
	if c.DecimalPrecision <= 0 {
		return DEFAULT_PRECISION
	}
	return c.DecimalPrecision
}

// Walk performs the single depth-first pre-order pass over the scene graph
// and returns the fully built IR. The root node itself is never emitted,
// only its descendants. The input graph is read-only for the whole pass;
// the loader guarantees a tree, so no cycle detection is done here.
func Walk(model *scene.Model, cfg Config) *IR {
	w := &walker{
		ir:        newIR(),
		precision: cfg.precision(),
	}

	if model != nil && model.Root != nil {
		for _, child := range model.Root.Children {
			w.visit(child)
		}
	}
	if model != nil {
		w.collectAnimations(model.Animations)
	}

	return w.ir
}

type walker struct {
	ir        *IR
	precision int
}

func (w *walker) visit(n *scene.Node) {
	switch n.Kind {
	case scene.NODE_KIND_MESH:
		w.visitMesh(n)
	case scene.NODE_KIND_LIGHT:
		w.visitLight(n)
	case scene.NODE_KIND_CAMERA:
		w.visitCamera(n)
	case scene.NODE_KIND_GROUP:
		// groups contribute nothing themselves; the scene reference line
		// keeps their subtree placement intact in the rendered output
	}

	for _, child := range n.Children {
		w.visit(child)
	}
}

func (w *walker) visitMesh(n *scene.Node) {
	fallback := fmt.Sprintf("Mesh_%d", len(w.ir.Meshes))

	entry := MeshEntry{
		Name:          Sanitize(n.Name, fallback),
		Geometry:      ExtractGeometry(n.Geometry, w.precision),
		Material:      ExtractMaterial(n.Material, w.precision),
		Transform:     ExtractTransform(n, w.precision),
		CastShadow:    true,
		ReceiveShadow: true,
	}

	w.ir.addImport("TresMesh")
	w.ir.addImport(entry.Geometry.Tag)
	w.ir.addImport(entry.Material.Tag)
	w.ir.Meshes = append(w.ir.Meshes, entry)
}

func (w *walker) visitLight(n *scene.Node) {
	if n.Light == nil {
		return
	}
	tag, props := ExtractLight(n.Light, w.precision)

	w.ir.addImport(tag)
	w.ir.Lights = append(w.ir.Lights, LightEntry{
		Tag:       tag,
		Props:     props,
		Transform: ExtractTransform(n, w.precision),
	})
}

func (w *walker) visitCamera(n *scene.Node) {
	if n.Camera == nil {
		return
	}
	tag, props := ExtractCamera(n.Camera, w.precision)

	w.ir.addImport(tag)
	w.ir.Cameras = append(w.ir.Cameras, CameraEntry{
		Tag:       tag,
		Props:     props,
		Transform: ExtractTransform(n, w.precision),
	})
}

// collectAnimations appends one sanitized name per clip in clip-array
// order. Duplicates are detected by clip identity (array position), not by
// name, so two distinct clips that sanitize to the same name both survive.
func (w *walker) collectAnimations(clips []scene.AnimationClip) {
	seen := make(map[int]bool, len(clips))
	for i, clip := range clips {
		if seen[clip.Index] {
			continue
		}
		seen[clip.Index] = true
		w.ir.Animations = append(w.ir.Animations,
			Sanitize(clip.Name, fmt.Sprintf("Animation_%d", i)))
	}
	if len(w.ir.Animations) > 0 {
		w.ir.addImport("useAnimations")
	}
}
