// Defaults for the command line tool, read from a YAML file. Flags given on
// the command line override them.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Number of random points to generate when no input file is given. Zero
	// reads points from stdin.
	Random int `yaml:"random"`
	// Random points are uniform in [0, space)²
	Space float64 `yaml:"space"`
	// Random seed; 0 means seed from the clock
	Seed int64 `yaml:"seed"`

	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

type RenderConfig struct {
	Scale         float64 `yaml:"scale"`
	Padding       int     `yaml:"padding"`
	Circumcircles bool    `yaml:"circumcircles"`
}

type LogConfig struct {
	Debug bool `yaml:"debug"`
	JSON  bool `yaml:"json"`
}

func Default() Config {
	return Config{
		Space:  10,
		Render: RenderConfig{Scale: 60, Padding: 40},
	}
}

// Load reads the file over the defaults, so that a file only needs to name
// the settings it changes.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "config.load")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config.load %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config.load %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Random < 0 {
		return errors.Errorf("random must not be negative, got %d", c.Random)
	}
	if !(c.Space > 0) {
		return errors.Errorf("space must be positive, got %g", c.Space)
	}
	if !(c.Render.Scale > 0) {
		return errors.Errorf("render.scale must be positive, got %g", c.Render.Scale)
	}
	if c.Render.Padding < 0 {
		return errors.Errorf("render.padding must not be negative, got %d", c.Render.Padding)
	}
	return nil
}
