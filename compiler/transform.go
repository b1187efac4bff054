package compiler

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sceneforge/gltf2tres/scene"
)

// ExtractTransform formats the node transform at the requested precision.
// A triple whose axes all round to the neutral value (zero vector for
// position/rotation, unit vector for scale) is elided entirely; a triple
// with any non-neutral axis is written in full.
func ExtractTransform(n *scene.Node, precision int) TransformDescriptor {
	var t TransformDescriptor
	if !roundsTo(n.Position, 0, precision) {
		t.Position = FormatVec3(n.Position, precision)
	}
	if !roundsTo(n.Rotation, 0, precision) {
		t.Rotation = FormatVec3(n.Rotation, precision)
	}
	if !roundsTo(n.Scale, 1, precision) {
		t.Scale = FormatVec3(n.Scale, precision)
	}
	return t
}

func roundsTo(v mgl32.Vec3, neutral float32, precision int) bool {
	want := FormatFloat(neutral, precision)
	for i := 0; i < 3; i++ {
		if FormatFloat(v[i], precision) != want {
			return false
		}
	}
	return true
}
