package web

import (
	"bytes"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/sceneforge/gltf2tres/compiler"
	"github.com/sceneforge/gltf2tres/config"
	"github.com/sceneforge/gltf2tres/emitter"
	"github.com/sceneforge/gltf2tres/intake"
	"github.com/sceneforge/gltf2tres/project"
	"github.com/sceneforge/gltf2tres/scene"
	"github.com/sceneforge/gltf2tres/status"
	"github.com/sceneforge/gltf2tres/utils"
	"github.com/sceneforge/gltf2tres/webutils"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func receiveBundle(r *http.Request) (intake.Bundle, string, error) {
	f, header, err := r.FormFile("model")
	if err != nil {
		return nil, "", errors.Wrapf(err, "Failed to get model file")
	}
	defer f.Close()

	presets := config.GetPresets()
	bundle, err := intake.FromUpload(header.Filename, f, presets.MaxUploadMB*1024*1024)
	if err != nil {
		return nil, "", err
	}
	return bundle, header.Filename, nil
}

func emitConfigFromRequest(r *http.Request, modelName string) emitter.Config {
	presets := config.GetPresets()

	cfg := emitter.Config{
		Typed:             formBool(r, "typed"),
		CompositionStyle:  r.FormValue("style") != "options",
		ShadowsEnabled:    presets.Shadows,
		AutoRotate:        formBool(r, "autorotate"),
		EnvironmentPreset: presets.Environment,
		LightingPreset:    presets.Lighting,
		Intensity:         presets.Intensity,
		DecimalPrecision:  presets.DecimalPrecision,
		ComponentName:     componentNameFor(modelName),
		ModelPath:         strings.TrimSuffix(presets.PathPrefix, "/") + "/" + modelName,
	}

	if v := r.FormValue("shadows"); v != "" {
		cfg.ShadowsEnabled = v == "1" || v == "true"
	}
	if v := r.FormValue("environment"); v != "" {
		cfg.EnvironmentPreset = v
	}
	if v := r.FormValue("lighting"); v != "" {
		cfg.LightingPreset = v
	}
	if v, err := strconv.Atoi(r.FormValue("precision")); err == nil && v > 0 {
		cfg.DecimalPrecision = v
	}
	if r.FormValue("dialect") == "nuxt" {
		cfg.Dialect = emitter.DIALECT_NUXT
	}
	return cfg
}

func formBool(r *http.Request, key string) bool {
	v := r.FormValue(key)
	return v == "1" || v == "true"
}

func componentNameFor(modelName string) string {
	base := modelName
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return compiler.Sanitize(base, "")
}

func HandlerConvert(w http.ResponseWriter, r *http.Request) {
	bundle, uploadName, err := receiveBundle(r)
	if err != nil {
		status.Error("intake failed: %v", err)
		webutils.WriteError(w, err)
		return
	}

	modelName, modelData, ok := bundle.PrimaryModel()
	if !ok {
		webutils.WriteError(w, errors.Errorf("Upload %q contains no .glb or .gltf model", uploadName))
		return
	}

	status.Stage(status.STAGE_LOAD, "loading %s", modelName)
	model, err := scene.LoadGLTF(modelData, modelName)
	if err != nil {
		status.Error("load failed: %v", err)
		webutils.WriteError(w, err)
		return
	}

	cfg := emitConfigFromRequest(r, modelName)

	status.Stage(status.STAGE_COMPILE, "compiling %s", modelName)
	ir := compiler.Walk(model, compiler.Config{DecimalPrecision: cfg.DecimalPrecision})

	status.Stage(status.STAGE_EMIT, "emitting component")
	source := emitter.Emit(ir, cfg)

	if r.FormValue("out") != "zip" {
		name := cfg.ComponentName
		if name == "" {
			name = emitter.DEFAULT_COMPONENT_NAME
		}
		webutils.WriteFile(w, strings.NewReader(source), name+".vue")
		return
	}

	status.Stage(status.STAGE_PACKAGE, "packaging project")
	var buf bytes.Buffer
	err = project.Build(&buf, source, bundle, emitter.RequiredPackages(cfg), project.Options{
		ComponentName: cfg.ComponentName,
		Typed:         cfg.Typed,
		Nuxt:          cfg.Dialect == emitter.DIALECT_NUXT,
		PathPrefix:    config.GetPresets().PathPrefix,
	})
	if err != nil {
		status.Error("packaging failed: %v", err)
		webutils.WriteError(w, err)
		return
	}

	status.Info("conversion of %s finished", modelName)
	zipBase := strings.TrimSuffix(strings.TrimSuffix(modelName, ".glb"), ".gltf")
	webutils.WriteFile(w, bytes.NewReader(buf.Bytes()), zipBase+"-project.zip")
}

// HandlerInspect dumps the loaded scene tree as text. Debug aid for
// figuring out why an asset converts badly.
func HandlerInspect(w http.ResponseWriter, r *http.Request) {
	bundle, _, err := receiveBundle(r)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	modelName, modelData, ok := bundle.PrimaryModel()
	if !ok {
		webutils.WriteError(w, errors.Errorf("No model in upload"))
		return
	}

	model, err := scene.LoadGLTF(modelData, modelName)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	webutils.WriteText(w, utils.SDump(model))
}

func HandlerPresets(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, config.GetPresets())
}

func HandlerStatusWs(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] ws upgrade error: %v", err)
		return
	}
	status.NewClient(conn)
}
