package emitter

import (
	"strings"

	"github.com/sceneforge/gltf2tres/compiler"
)

// buildMarkup renders the template body: canvas wrapper, viewer helpers,
// then one line per IR entry in the fixed category order lights, meshes,
// cameras, and finally the scene reference line. The reference line keeps
// every node the extractors do not model visually present, so extraction
// gaps degrade instead of dropping geometry.
func buildMarkup(ir *compiler.IR, cfg Config) string {
	indent := "  "
	var b strings.Builder

	if cfg.Dialect == DIALECT_NUXT {
		b.WriteString("  <ClientOnly>\n")
		indent = "    "
	}

	b.WriteString(indent + canvasOpen(cfg) + "\n")
	inner := indent + "  "

	b.WriteString(inner + orbitControlsLine(cfg) + "\n")
	if cfg.EnvironmentPreset != "" {
		b.WriteString(inner + `<Environment preset="` + cfg.EnvironmentPreset + `" />` + "\n")
	}
	if len(ir.Lights) == 0 && cfg.LightingPreset != "" {
		for _, line := range presetLightLines(cfg) {
			b.WriteString(inner + line + "\n")
		}
	}

	for _, entry := range ir.Lights {
		b.WriteString(inner + lightLine(entry) + "\n")
	}
	for _, entry := range ir.Meshes {
		b.WriteString(inner + meshLine(entry, cfg) + "\n")
	}
	for _, entry := range ir.Cameras {
		b.WriteString(inner + cameraLine(entry) + "\n")
	}

	b.WriteString(inner + `<primitive :object="scene" />` + "\n")
	b.WriteString(indent + "</TresCanvas>\n")

	if cfg.Dialect == DIALECT_NUXT {
		b.WriteString("  </ClientOnly>\n")
	}
	return b.String()
}

func canvasOpen(cfg Config) string {
	if cfg.ShadowsEnabled {
		return "<TresCanvas shadows>"
	}
	return "<TresCanvas>"
}

func orbitControlsLine(cfg Config) string {
	if cfg.AutoRotate {
		return "<OrbitControls auto-rotate />"
	}
	return "<OrbitControls />"
}

// presetLightLines fabricates a minimal light rig for scenes that ship
// without lights, otherwise the converted scene renders black.
func presetLightLines(cfg Config) []string {
	precision := cfg.precision()
	key := compiler.FormatFloat(cfg.intensity(), precision)

	switch cfg.LightingPreset {
	case "studio":
		fill := compiler.FormatFloat(cfg.intensity()*0.8, precision)
		return []string{
			`<TresAmbientLight :intensity="` + fill + `" />`,
			`<TresDirectionalLight :intensity="` + key + `" :position="[5, 5, 5]" />`,
			`<TresDirectionalLight :intensity="` + fill + `" :position="[-5, 3, -5]" />`,
		}
	default:
		fill := compiler.FormatFloat(cfg.intensity()*0.5, precision)
		return []string{
			`<TresAmbientLight :intensity="` + fill + `" />`,
			`<TresDirectionalLight :intensity="` + key + `" :position="[10, 10, 5]" />`,
		}
	}
}

func meshLine(entry compiler.MeshEntry, cfg Config) string {
	var b strings.Builder
	b.WriteString("<TresMesh")
	writeProp(&b, compiler.Prop{Key: "name", Value: entry.Name})
	writeTransform(&b, entry.Transform)
	if cfg.ShadowsEnabled {
		if entry.CastShadow {
			b.WriteString(" cast-shadow")
		}
		if entry.ReceiveShadow {
			b.WriteString(" receive-shadow")
		}
	}
	b.WriteString(">")

	b.WriteString("<" + entry.Geometry.Tag)
	if len(entry.Geometry.Args) > 0 {
		b.WriteString(` :args="[` + strings.Join(entry.Geometry.Args, ", ") + `]"`)
	}
	b.WriteString(" />")

	b.WriteString("<" + entry.Material.Tag)
	writeProps(&b, entry.Material.Props)
	b.WriteString(" />")

	b.WriteString("</TresMesh>")
	return b.String()
}

func lightLine(entry compiler.LightEntry) string {
	var b strings.Builder
	b.WriteString("<" + entry.Tag)
	writeProps(&b, entry.Props)
	writeTransform(&b, entry.Transform)
	b.WriteString(" />")
	return b.String()
}

func cameraLine(entry compiler.CameraEntry) string {
	var b strings.Builder
	b.WriteString("<" + entry.Tag)
	writeProps(&b, entry.Props)
	writeTransform(&b, entry.Transform)
	b.WriteString(" />")
	return b.String()
}

func writeProps(b *strings.Builder, props []compiler.Prop) {
	for _, p := range props {
		writeProp(b, p)
	}
}

func writeProp(b *strings.Builder, p compiler.Prop) {
	switch {
	case p.Value == "":
		b.WriteString(" " + p.Key)
	case p.Expr:
		b.WriteString(" :" + p.Key + `="` + p.Value + `"`)
	default:
		b.WriteString(" " + p.Key + `="` + p.Value + `"`)
	}
}

func writeTransform(b *strings.Builder, t compiler.TransformDescriptor) {
	if t.Position != "" {
		b.WriteString(` :position="` + t.Position + `"`)
	}
	if t.Rotation != "" {
		b.WriteString(` :rotation="` + t.Rotation + `"`)
	}
	if t.Scale != "" {
		b.WriteString(` :scale="` + t.Scale + `"`)
	}
}
