// Package emitter turns a finished compiler.IR into Vue single-file
// component source targeting the TresJS renderer. Each output block
// (imports, props, setup, markup) has its own builder so they stay
// independently testable; the Emit entry point only assembles them.
package emitter

import (
	"strings"

	"github.com/sceneforge/gltf2tres/compiler"
)

type Dialect int

const (
	DIALECT_STANDALONE Dialect = iota
	DIALECT_NUXT
)

const DEFAULT_MODEL_PATH = "/models/scene.glb"
const DEFAULT_COMPONENT_NAME = "GeneratedScene"

type Config struct {
	// Typed adds lang="ts" plus static prop types.
	Typed bool
	// CompositionStyle selects <script setup>; otherwise the options API
	// (defineComponent) variant is produced.
	CompositionStyle bool
	// ShadowsEnabled appends cast/receive markers to mesh lines and turns
	// on the canvas shadow map.
	ShadowsEnabled bool

	AutoRotate        bool
	EnvironmentPreset string
	// LightingPreset inserts stand-in lights when the source scene has
	// none; "" disables this.
	LightingPreset string
	// Intensity scales the stand-in preset lights; zero means 1.
	Intensity float32

	DecimalPrecision int
	Dialect          Dialect

	// ComponentName is the registered name in options style output.
	ComponentName string
	// ModelPath is the runtime path the emitted component loads the
	// original model from.
	ModelPath string
}

func (c Config) componentName() string {
	if c.ComponentName == "" {
		return DEFAULT_COMPONENT_NAME
	}
	return c.ComponentName
}

func (c Config) modelPath() string {
	if c.ModelPath == "" {
		return DEFAULT_MODEL_PATH
	}
	return c.ModelPath
}

func (c Config) intensity() float32 {
	if c.Intensity <= 0 {
		return 1
	}
	return c.Intensity
}

func (c Config) precision() int {
	if c.DecimalPrecision <= 0 {
		return compiler.DEFAULT_PRECISION
	}
	return c.DecimalPrecision
}

// Emit renders the complete component source. It is a pure function of
// (ir, cfg): no I/O, and a structurally valid IR never makes it fail.
func Emit(ir *compiler.IR, cfg Config) string {
	var script string
	if cfg.CompositionStyle {
		script = compositionScript(ir, cfg)
	} else {
		script = optionsScript(ir, cfg)
	}

	var b strings.Builder
	b.WriteString(scriptOpen(cfg))
	b.WriteByte('\n')
	b.WriteString(script)
	b.WriteString("</script>\n\n")
	b.WriteString("<template>\n")
	b.WriteString(buildMarkup(ir, cfg))
	b.WriteString("</template>\n")
	return b.String()
}

func compositionScript(ir *compiler.IR, cfg Config) string {
	blocks := make([]string, 0, 3)
	for _, block := range []string{
		buildImports(ir, cfg),
		compositionProps(cfg),
		compositionSetup(ir, cfg),
	} {
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func optionsScript(ir *compiler.IR, cfg Config) string {
	var b strings.Builder
	if imports := buildImports(ir, cfg); imports != "" {
		b.WriteString(imports)
		b.WriteString("\n\n")
	}

	b.WriteString("export default defineComponent({\n")
	b.WriteString("  name: '" + cfg.componentName() + "',\n")
	// Nuxt resolves template components itself; a components map would
	// reference identifiers that exist in no scope there
	if cfg.Dialect != DIALECT_NUXT {
		if reg := componentRegistrations(cfg); reg != "" {
			b.WriteString("  components: { " + reg + " },\n")
		}
	}
	b.WriteString(optionsProps(cfg))
	b.WriteString(optionsSetup(ir, cfg))
	b.WriteString("})\n")
	return b.String()
}

func scriptOpen(cfg Config) string {
	switch {
	case cfg.CompositionStyle && cfg.Typed:
		return `<script setup lang="ts">`
	case cfg.CompositionStyle:
		return `<script setup>`
	case cfg.Typed:
		return `<script lang="ts">`
	default:
		return `<script>`
	}
}

// RequiredPackages lists the npm dependencies the generated component
// needs; the packaging step turns this into manifest entries. Every
// component pulls controls and the loader helper from cientos regardless
// of scene content, so only the dialect can change the list.
func RequiredPackages(cfg Config) []string {
	pkgs := []string{"three", "vue", "@tresjs/core", "@tresjs/cientos"}
	if cfg.Dialect == DIALECT_NUXT {
		pkgs = append(pkgs, "@tresjs/nuxt")
	}
	return pkgs
}
