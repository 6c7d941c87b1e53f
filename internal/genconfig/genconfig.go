// Package genconfig defines the persisted random-generator settings file
// written and read by the CLI's "config" subcommand, mirroring the
// teacher's recast.BuildSettings + cmd/recast/cmd/config.go/utils.go
// pattern (a YAML settings file with sane defaults, confirmed before
// overwrite).
package genconfig

import (
	"fmt"
	"io/ioutil"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config collects the point-generation and output parameters that the CLI
// exposes as -n/-p/-s/-a/-b/-r flags (spec section 6). Flags explicitly
// passed on the command line override whatever a loaded Config supplies.
type Config struct {
	NumPoints        int     `yaml:"num_points"`
	Distribution     string  `yaml:"distribution"`
	SmoothIterations int     `yaml:"smooth_iterations"`
	ExtentX          float64 `yaml:"extent_x"`
	ExtentY          float64 `yaml:"extent_y"`
	Deduplicate      bool    `yaml:"deduplicate"`
}

// Default returns the settings the CLI uses absent a -n/-p/... override or
// a --config file.
func Default() Config {
	return Config{
		NumPoints:        500,
		Distribution:     "normal",
		SmoothIterations: 4,
		ExtentX:          2,
		ExtentY:          2,
		Deduplicate:      true,
	}
}

// Load reads settings from a YAML file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, fmt.Errorf("genconfig: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format.
func Save(path string, cfg Config) error {
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf, 0o644)
}

// Exists reports whether path already exists, distinguishing a clean
// "file not found" from a stat error a caller should surface.
func Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
