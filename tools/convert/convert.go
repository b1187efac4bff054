// Batch converter: walks a directory tree and turns every .glb/.gltf it
// finds into a project archive, one per model.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sceneforge/gltf2tres/compiler"
	"github.com/sceneforge/gltf2tres/config"
	"github.com/sceneforge/gltf2tres/emitter"
	"github.com/sceneforge/gltf2tres/intake"
	"github.com/sceneforge/gltf2tres/project"
	"github.com/sceneforge/gltf2tres/scene"
)

func main() {
	var in, outDir, style, dialect, presetsPath string
	var typed bool
	flag.StringVar(&in, "in", ".", "Directory to scan for models")
	flag.StringVar(&outDir, "outdir", "converted", "Directory for project archives")
	flag.StringVar(&style, "style", "composition", "Script style: composition or options")
	flag.StringVar(&dialect, "dialect", "standalone", "Target dialect: standalone or nuxt")
	flag.BoolVar(&typed, "typed", true, "Emit typescript")
	flag.StringVar(&presetsPath, "presets", "gltf2tres.yaml", "Path to presets file")
	flag.Parse()

	if err := config.LoadPresets(presetsPath); err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(outDir, 0777); err != nil {
		log.Fatal(err)
	}

	converted := 0
	err := filepath.Walk(in, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".glb" && ext != ".gltf" {
			return nil
		}
		if err := convertOne(path, outDir, style, dialect, typed); err != nil {
			log.Printf("[convert] %s failed: %v", path, err)
			return nil
		}
		converted++
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("[convert] done, %d models converted", converted)
}

func convertOne(path, outDir, style, dialect string, typed bool) error {
	model, err := scene.LoadGLTFFile(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	presets := config.GetPresets()
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	cfg := emitter.Config{
		Typed:             typed,
		CompositionStyle:  style != "options",
		ShadowsEnabled:    presets.Shadows,
		EnvironmentPreset: presets.Environment,
		LightingPreset:    presets.Lighting,
		Intensity:         presets.Intensity,
		DecimalPrecision:  presets.DecimalPrecision,
		ComponentName:     compiler.Sanitize(base, "GeneratedScene"),
		ModelPath:         strings.TrimSuffix(presets.PathPrefix, "/") + "/" + filepath.Base(path),
	}
	if dialect == "nuxt" {
		cfg.Dialect = emitter.DIALECT_NUXT
	}

	ir := compiler.Walk(model, compiler.Config{DecimalPrecision: cfg.DecimalPrecision})
	source := emitter.Emit(ir, cfg)

	out, err := os.Create(filepath.Join(outDir, base+"-project.zip"))
	if err != nil {
		return err
	}
	defer out.Close()

	bundle := intake.Bundle{filepath.Base(path): data}
	if err := project.Build(out, source, bundle, emitter.RequiredPackages(cfg), project.Options{
		ComponentName: cfg.ComponentName,
		Typed:         cfg.Typed,
		Nuxt:          cfg.Dialect == emitter.DIALECT_NUXT,
		PathPrefix:    presets.PathPrefix,
	}); err != nil {
		return err
	}

	log.Printf("[convert] %s: %d meshes, %d lights, %d cameras, %d clips",
		path, len(ir.Meshes), len(ir.Lights), len(ir.Cameras), len(ir.Animations))
	return nil
}
