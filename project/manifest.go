package project

import (
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
)

// pinned versions for the manifest; bumped manually when the generated
// code starts relying on newer framework behavior
var packageVersions = map[string]string{
	"three":              "^0.160.0",
	"vue":                "^3.4.0",
	"@tresjs/core":       "^3.7.0",
	"@tresjs/cientos":    "^3.7.0",
	"@tresjs/nuxt":       "^2.1.0",
	"nuxt":               "^3.10.0",
	"typescript":         "^5.3.0",
	"vite":               "^5.0.0",
	"@vitejs/plugin-vue": "^5.0.0",
}

type packageManifest struct {
	Name            string            `json:"name"`
	Private         bool              `json:"private"`
	Version         string            `json:"version"`
	Type            string            `json:"type,omitempty"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// buildManifest renders package.json from the dependency names the emitter
// reported. Unknown packages get "latest" rather than failing the export.
func buildManifest(projectName string, packages []string, opts Options) ([]byte, error) {
	deps := make(map[string]string, len(packages))
	for _, pkg := range packages {
		if v, ok := packageVersions[pkg]; ok {
			deps[pkg] = v
		} else {
			deps[pkg] = "latest"
		}
	}

	m := packageManifest{
		Name:         projectName,
		Private:      true,
		Version:      "0.1.0",
		Dependencies: deps,
		DevDependencies: map[string]string{
			"vite":               packageVersions["vite"],
			"@vitejs/plugin-vue": packageVersions["@vitejs/plugin-vue"],
		},
		Scripts: map[string]string{
			"dev":     "vite",
			"build":   "vite build",
			"preview": "vite preview",
		},
	}
	if opts.Nuxt {
		m.DevDependencies = map[string]string{"nuxt": packageVersions["nuxt"]}
		m.Scripts = map[string]string{
			"dev":   "nuxt dev",
			"build": "nuxt build",
		}
	} else {
		m.Type = "module"
	}
	if opts.Typed {
		m.DevDependencies["typescript"] = packageVersions["typescript"]
	}

	data, err := json.MarshalIndent(&m, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to marshal package.json")
	}
	return append(data, '\n'), nil
}

// sortedNames gives tests a stable view of a manifest dependency map.
func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
