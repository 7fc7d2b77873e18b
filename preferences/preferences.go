package preferences

import (
	"fmt"
	"os"
	"time"

	"github.com/kaytu-io/racecount/pkg/harness"
	"gopkg.in/yaml.v2"
)

// PreferencesYamlFile is the optional file passed with --preferences.
// Unset keys keep their defaults.
type PreferencesYamlFile struct {
	Increments *int    `yaml:"increments"`
	Timeout    *string `yaml:"timeout"`
	Output     *string `yaml:"output"`
	Progress   *bool   `yaml:"progress"`
}

func Load(path string) (*PreferencesYamlFile, error) {
	cnt, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("[preferences.Load] : %w", err)
	}
	return Parse(cnt)
}

func Parse(cnt []byte) (*PreferencesYamlFile, error) {
	var p PreferencesYamlFile
	err := yaml.UnmarshalStrict(cnt, &p)
	if err != nil {
		return nil, fmt.Errorf("[preferences.Parse] : %w", err)
	}
	return &p, nil
}

// ApplyTo copies the harness related keys onto cfg.
func (p *PreferencesYamlFile) ApplyTo(cfg *harness.Config) error {
	if p.Increments != nil {
		cfg.Increments = *p.Increments
	}
	if p.Timeout != nil {
		d, err := time.ParseDuration(*p.Timeout)
		if err != nil {
			return fmt.Errorf("[preferences.ApplyTo] timeout %q: %w", *p.Timeout, err)
		}
		cfg.Timeout = d
	}
	return nil
}
