// Package project wraps a generated component plus the original model
// buffers into a downloadable starter project archive.
package project

import (
	"archive/zip"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/sceneforge/gltf2tres/intake"
	"github.com/sceneforge/gltf2tres/utils"
)

type Options struct {
	// ComponentName names the .vue file; empty picks a generated one.
	ComponentName string
	// Typed adds a typescript devDependency to the manifest.
	Typed bool
	// Nuxt switches the scaffold from a Vite app to a Nuxt app.
	Nuxt bool
	// PathPrefix is where model buffers land inside public/.
	PathPrefix string
}

func (o Options) pathPrefix() string {
	p := strings.Trim(o.PathPrefix, "/")
	if p == "" {
		p = "models"
	}
	return p
}

var projectNames utils.RandomNameGenerator

// Build writes the archive: the component under src/components, every
// intake buffer under public/<prefix>, the dependency manifest derived
// from the emitter's package list, the app scaffold and a short README.
func Build(w io.Writer, source string, bundle intake.Bundle, packages []string, opts Options) error {
	componentName := opts.ComponentName
	if componentName == "" {
		componentName = projectNames.RandomName()
	}
	projectName := strings.ToLower(componentName)

	zw := zip.NewWriter(w)

	files := map[string][]byte{
		"src/components/" + componentName + ".vue": []byte(source),
		"README.md": readme(componentName, opts),
	}

	manifest, err := buildManifest(projectName, packages, opts)
	if err != nil {
		return err
	}
	files["package.json"] = manifest

	for name, data := range scaffoldFiles(componentName, opts) {
		files[name] = data
	}
	for name, data := range bundle {
		files["public/"+opts.pathPrefix()+"/"+name] = data
	}

	for _, name := range sortedFileNames(files) {
		fw, err := zw.Create(name)
		if err != nil {
			return errors.Wrapf(err, "Can't create zip entry %q", name)
		}
		if _, err := fw.Write(files[name]); err != nil {
			return errors.Wrapf(err, "Can't write zip entry %q", name)
		}
	}

	return zw.Close()
}

func sortedFileNames(files map[string][]byte) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	// stable archive layout keeps project downloads byte-reproducible
	sort.Strings(names)
	return names
}

func scaffoldFiles(componentName string, opts Options) map[string][]byte {
	if opts.Nuxt {
		return map[string][]byte{
			"nuxt.config.ts": []byte(
				"export default defineNuxtConfig({\n" +
					"  modules: ['@tresjs/nuxt'],\n" +
					// the component lands in src/components, which is not
					// on the default auto-import scan path
					"  components: [{ path: '~/src/components', pathPrefix: false }],\n" +
					"})\n"),
			"app.vue": []byte(
				"<template>\n" +
					"  <" + componentName + " />\n" +
					"</template>\n"),
		}
	}

	return map[string][]byte{
		"vite.config.js": []byte(
			"import { defineConfig } from 'vite'\n" +
				"import vue from '@vitejs/plugin-vue'\n\n" +
				"export default defineConfig({\n" +
				"  plugins: [vue()],\n" +
				"})\n"),
		"index.html": []byte(
			"<!doctype html>\n" +
				"<html>\n" +
				"  <body>\n" +
				"    <div id=\"app\"></div>\n" +
				"    <script type=\"module\" src=\"/src/main.js\"></script>\n" +
				"  </body>\n" +
				"</html>\n"),
		"src/main.js": []byte(
			"import { createApp } from 'vue'\n" +
				"import App from './App.vue'\n\n" +
				"createApp(App).mount('#app')\n"),
		"src/App.vue": []byte(
			"<script setup>\n" +
				"import " + componentName + " from './components/" + componentName + ".vue'\n" +
				"</script>\n\n" +
				"<template>\n" +
				"  <Suspense>\n" +
				"    <" + componentName + " />\n" +
				"  </Suspense>\n" +
				"</template>\n"),
	}
}

func readme(componentName string, opts Options) []byte {
	runner := "npm install\nnpm run dev\n"
	return []byte("# " + componentName + "\n\n" +
		"Generated from a glTF scene. To run:\n\n```\n" + runner + "```\n")
}
