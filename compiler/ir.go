package compiler

import "sort"

// Prop is one emitted attribute. Expr props render as :key="value" (bound
// expression), plain props as key="value", and a prop with an empty value
// renders as a bare flag attribute.
type Prop struct {
	Key   string
	Value string
	Expr  bool
}

type GeometryDescriptor struct {
	Tag  string
	Args []string
}

type MaterialDescriptor struct {
	Tag   string
	Props []Prop
}

// TransformDescriptor holds pre-formatted axis triples. An empty string
// means the triple equals the neutral value and is elided; the framework
// default must match the neutral value for this to be sound.
type TransformDescriptor struct {
	Position string
	Rotation string
	Scale    string
}

func (t TransformDescriptor) IsZero() bool {
	return t.Position == "" && t.Rotation == "" && t.Scale == ""
}

type MeshEntry struct {
	Name          string
	Geometry      GeometryDescriptor
	Material      MaterialDescriptor
	Transform     TransformDescriptor
	CastShadow    bool
	ReceiveShadow bool
}

type LightEntry struct {
	Tag       string
	Props     []Prop
	Transform TransformDescriptor
}

type CameraEntry struct {
	Tag       string
	Props     []Prop
	Transform TransformDescriptor
}

// IR is the flattened description of everything the emitter will write.
// Built exactly once per conversion by Walk, then read-only.
type IR struct {
	Meshes     []MeshEntry
	Lights     []LightEntry
	Cameras    []CameraEntry
	Animations []string

	imports map[string]struct{}
}

func newIR() *IR {
	return &IR{imports: make(map[string]struct{})}
}

func (ir *IR) addImport(tag string) {
	ir.imports[tag] = struct{}{}
}

func (ir *IR) HasImport(tag string) bool {
	_, ok := ir.imports[tag]
	return ok
}

// RequiredImports returns every referenced tag/helper name, sorted so that
// emission order is deterministic.
func (ir *IR) RequiredImports() []string {
	out := make([]string, 0, len(ir.imports))
	for tag := range ir.imports {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
