// Package config loads the YAML scoring configuration and the legacy
// whitespace-delimited weight tables used to drive calc and find_gain.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zyr17/artifact-scheduler/internal/data"
)

// Config is the top-level YAML document accepted by the CLI.
type Config struct {
	ScoreBar float64            `yaml:"score_bar"`
	DfCost   float64            `yaml:"df_cost"`
	Scores   map[string]float64 `yaml:"scores"`
}

func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if value != nil && value.Kind == yaml.MappingNode {
		allowed := map[string]struct{}{
			"score_bar": {},
			"df_cost":   {},
			"scores":    {},
		}
		for i := 0; i+1 < len(value.Content); i += 2 {
			k := value.Content[i]
			if k.Kind != yaml.ScalarNode {
				continue
			}
			if _, ok := allowed[k.Value]; !ok {
				return fmt.Errorf("config: unsupported key %q", k.Value)
			}
		}
	}

	type raw Config
	var tmp raw
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*c = Config(tmp)
	return nil
}

// Load reads and validates a YAML config file from path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return c, nil
}

// ScoreMap resolves Config.Scores (canonical affix names) into the
// data.AffixKind-keyed map calc and find_gain expect.
func (c Config) ScoreMap() (map[data.AffixKind]float64, error) {
	out := make(map[data.AffixKind]float64, len(c.Scores))
	for name, w := range c.Scores {
		aff, err := data.ParseAffixKind(name)
		if err != nil {
			return nil, fmt.Errorf("config: score entry %q: %w", name, err)
		}
		out[aff] = w
	}
	return out, nil
}
