package optionmodels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type StrategyYAML struct {
	Name           string         `yaml:"name"`
	AssetPrice     *float64       `yaml:"assetPrice,omitempty"`
	MarginRequired *float64       `yaml:"marginRequired,omitempty"`
	Legs           []OptionLegDTO `yaml:"legs"`
}

func LoadStrategyYAML(path string) (*StrategyYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadStrategyYAML: failed to read %s: %w", path, err)
	}

	var strategy StrategyYAML
	if err := yaml.Unmarshal(data, &strategy); err != nil {
		return nil, fmt.Errorf("LoadStrategyYAML: failed to unmarshal %s: %w", path, err)
	}

	return &strategy, nil
}
