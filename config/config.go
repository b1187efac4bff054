// Package config holds the conversion presets: the knobs an operator sets
// once per deployment, as opposed to the per-request options the web and
// CLI layers pass through explicitly.
package config

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Presets struct {
	DecimalPrecision int     `yaml:"decimal_precision"`
	Shadows          bool    `yaml:"shadows"`
	Environment      string  `yaml:"environment"`
	Lighting         string  `yaml:"lighting"`
	Intensity        float32 `yaml:"intensity"`
	PathPrefix       string  `yaml:"path_prefix"`
	MaxUploadMB      int64   `yaml:"max_upload_mb"`
}

func DefaultPresets() Presets {
	return Presets{
		DecimalPrecision: 3,
		Shadows:          true,
		Environment:      "",
		Lighting:         "natural",
		Intensity:        1,
		PathPrefix:       "/models",
		MaxUploadMB:      64,
	}
}

var presets = DefaultPresets()

func GetPresets() Presets {
	return presets
}

func SetPresets(p Presets) {
	presets = p
}

// LoadPresets overlays a yaml file onto the defaults. A missing file is
// not an error; a malformed one is.
func LoadPresets(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "Failed to read presets %q", path)
	}

	p := DefaultPresets()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return errors.Wrapf(err, "Failed to parse presets %q", path)
	}
	SetPresets(p)
	return nil
}

func SavePresets(path string) error {
	data, err := yaml.Marshal(GetPresets())
	if err != nil {
		return errors.Wrapf(err, "Failed to marshal presets")
	}
	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "Failed to write presets %q", path)
	}
	return nil
}
