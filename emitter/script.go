package emitter

import (
	"strings"

	"github.com/sceneforge/gltf2tres/compiler"
)

// compositionProps declares the single optional path prop for the
// <script setup> variant.
func compositionProps(cfg Config) string {
	if cfg.Typed {
		return "interface Props {\n" +
			"  path?: string\n" +
			"}\n\n" +
			"const props = withDefaults(defineProps<Props>(), {\n" +
			"  path: '" + cfg.modelPath() + "',\n" +
			"})"
	}
	return "const props = defineProps({\n" +
		"  path: { type: String, default: '" + cfg.modelPath() + "' },\n" +
		"})"
}

// compositionSetup loads the model and, when the IR collected animation
// clips, wires every clip to play on mount.
func compositionSetup(ir *compiler.IR, cfg Config) string {
	if len(ir.Animations) == 0 {
		return "const { scene } = await useGLTF(props.path)"
	}

	var b strings.Builder
	b.WriteString("const { scene, animations } = await useGLTF(props.path)\n")
	b.WriteString("const { actions } = useAnimations(animations, scene)\n\n")
	b.WriteString("onMounted(() => {\n")
	for _, name := range ir.Animations {
		b.WriteString("  actions['" + name + "']?.play()\n")
	}
	b.WriteString("})")
	return b.String()
}

// optionsProps renders the props section of the defineComponent literal.
func optionsProps(cfg Config) string {
	return "  props: {\n" +
		"    path: { type: String, default: '" + cfg.modelPath() + "' },\n" +
		"  },\n"
}

// optionsSetup renders the async setup() section. The scene object must be
// returned explicitly so the template's reference line can reach it.
func optionsSetup(ir *compiler.IR, cfg Config) string {
	var b strings.Builder
	b.WriteString("  async setup(props) {\n")
	if len(ir.Animations) == 0 {
		b.WriteString("    const { scene } = await useGLTF(props.path)\n")
	} else {
		b.WriteString("    const { scene, animations } = await useGLTF(props.path)\n")
		b.WriteString("    const { actions } = useAnimations(animations, scene)\n\n")
		b.WriteString("    onMounted(() => {\n")
		for _, name := range ir.Animations {
			b.WriteString("      actions['" + name + "']?.play()\n")
		}
		b.WriteString("    })\n")
	}
	b.WriteString("\n    return { scene }\n")
	b.WriteString("  },\n")
	return b.String()
}
