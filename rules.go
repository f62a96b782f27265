package docassert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules is the on-disk form of a Config
//
//	mode: strict
//	numeric: assume_float
//	ignore:
//	  - $.id
//	ignore_order:
//	  - $.tags
type Rules struct {
	Mode        string   `yaml:"mode"`
	Numeric     string   `yaml:"numeric"`
	Ignore      []string `yaml:"ignore"`
	IgnoreOrder []string `yaml:"ignore_order"`
}

// Config validates r and builds the Config it describes
func (r Rules) Config() (*Config, error) {
	mode, err := ParseCompareMode(r.Mode)
	if err != nil {
		return nil, err
	}
	numeric, err := ParseNumericMode(r.Numeric)
	if err != nil {
		return nil, err
	}
	cfg := NewConfig(mode).WithNumericMode(numeric)
	if err := cfg.IgnorePathText(r.Ignore...); err != nil {
		return nil, err
	}
	if err := cfg.IgnoreOrderText(r.IgnoreOrder...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseRules decodes a YAML rules document into a Config. Unknown keys are
// an error.
func ParseRules(data []byte) (*Config, error) {
	var r Rules
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	return r.Config()
}

// LoadRules reads and parses the rules file at path
func LoadRules(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	return ParseRules(data)
}
