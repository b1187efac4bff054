package main

import (
	"flag"
	"io/ioutil"
	"log"
	"path/filepath"
	"strings"

	"github.com/sceneforge/gltf2tres/compiler"
	"github.com/sceneforge/gltf2tres/config"
	"github.com/sceneforge/gltf2tres/emitter"
	"github.com/sceneforge/gltf2tres/scene"
	"github.com/sceneforge/gltf2tres/web"
)

func main() {
	var addr, file, out, style, dialect, presetsPath, webPath string
	var typed bool
	flag.StringVar(&addr, "i", ":8000", "Address of server")
	flag.StringVar(&file, "file", "", "Convert a single model file and exit")
	flag.StringVar(&out, "out", "", "Output .vue path for -file (default next to input)")
	flag.StringVar(&style, "style", "composition", "Script style: composition or options")
	flag.StringVar(&dialect, "dialect", "standalone", "Target dialect: standalone or nuxt")
	flag.BoolVar(&typed, "typed", true, "Emit typescript")
	flag.StringVar(&presetsPath, "presets", "gltf2tres.yaml", "Path to presets file")
	flag.StringVar(&webPath, "web", "web/data", "Path to static web ui files")
	flag.Parse()

	if err := config.LoadPresets(presetsPath); err != nil {
		log.Fatal(err)
	}

	if file != "" {
		if err := convertFile(file, out, style, dialect, typed); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := web.StartServer(addr, webPath); err != nil {
		log.Fatal(err)
	}
}

func convertFile(file, out, style, dialect string, typed bool) error {
	model, err := scene.LoadGLTFFile(file)
	if err != nil {
		return err
	}

	presets := config.GetPresets()
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))

	cfg := emitter.Config{
		Typed:             typed,
		CompositionStyle:  style != "options",
		ShadowsEnabled:    presets.Shadows,
		EnvironmentPreset: presets.Environment,
		LightingPreset:    presets.Lighting,
		Intensity:         presets.Intensity,
		DecimalPrecision:  presets.DecimalPrecision,
		ComponentName:     compiler.Sanitize(base, "GeneratedScene"),
		ModelPath:         strings.TrimSuffix(presets.PathPrefix, "/") + "/" + filepath.Base(file),
	}
	if dialect == "nuxt" {
		cfg.Dialect = emitter.DIALECT_NUXT
	}

	ir := compiler.Walk(model, compiler.Config{DecimalPrecision: cfg.DecimalPrecision})
	source := emitter.Emit(ir, cfg)

	if out == "" {
		out = strings.TrimSuffix(file, filepath.Ext(file)) + ".vue"
	}
	if err := ioutil.WriteFile(out, []byte(source), 0644); err != nil {
		return err
	}

	log.Printf("[convert] %s -> %s (%d meshes, %d lights, %d cameras)",
		file, out, len(ir.Meshes), len(ir.Lights), len(ir.Cameras))
	return nil
}
