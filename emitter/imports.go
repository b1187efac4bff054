package emitter

import (
	"sort"
	"strings"

	"github.com/sceneforge/gltf2tres/compiler"
)

// buildImports derives the import block from the IR plus the fixed base
// set every generated component needs. Names are grouped by source package
// and sorted inside each group, so a given IR always produces
// byte-identical imports. The Nuxt dialect auto-imports vue APIs and
// template components but not script-scope helpers, so those keep their
// import line.
func buildImports(ir *compiler.IR, cfg Config) string {
	if cfg.Dialect == DIALECT_NUXT {
		names := []string{"useGLTF"}
		if ir.HasImport("useAnimations") {
			names = append(names, "useAnimations")
		}
		return importLine(names, "@tresjs/cientos")
	}

	var vueNames, coreNames, cientosNames []string

	if !cfg.CompositionStyle {
		vueNames = append(vueNames, "defineComponent")
	}
	if ir.HasImport("useAnimations") {
		vueNames = append(vueNames, "onMounted")
	}

	coreNames = append(coreNames, "TresCanvas")

	cientosNames = append(cientosNames, "OrbitControls", "useGLTF")
	if ir.HasImport("useAnimations") {
		cientosNames = append(cientosNames, "useAnimations")
	}
	if cfg.EnvironmentPreset != "" {
		cientosNames = append(cientosNames, "Environment")
	}

	lines := make([]string, 0, 3)
	if line := importLine(vueNames, "vue"); line != "" {
		lines = append(lines, line)
	}
	if line := importLine(coreNames, "@tresjs/core"); line != "" {
		lines = append(lines, line)
	}
	if line := importLine(cientosNames, "@tresjs/cientos"); line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func importLine(names []string, from string) string {
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return "import { " + strings.Join(names, ", ") + " } from '" + from + "'"
}

// componentRegistrations lists template components the options style must
// register explicitly; script setup resolves them lexically.
func componentRegistrations(cfg Config) string {
	names := []string{"OrbitControls", "TresCanvas"}
	if cfg.EnvironmentPreset != "" {
		names = append(names, "Environment")
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
