package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// RunConfig represents a YAML run configuration. Every field is optional;
// values apply only to flags the user did not set on the command line.
type RunConfig struct {
	Log        string  `yaml:"log"`
	Input      string  `yaml:"input"`
	Presses    *int    `yaml:"presses"`
	Target     string  `yaml:"target"`
	MaxPresses *uint64 `yaml:"max_presses"`
	Format     string  `yaml:"format"`
}

// LoadRunConfig parses a run configuration file.
// Uses strict field checking: typos must cause errors.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var cfg RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &cfg, nil
}

// Apply copies configured values onto the flags of cmd that were not Changed.
// Flags cmd does not define are skipped. A value the flag rejects is an error.
func (c *RunConfig) Apply(cmd *cobra.Command) error {
	set := func(name, value string) error {
		if value == "" {
			return nil
		}
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			return nil
		}
		if err := f.Value.Set(value); err != nil {
			return fmt.Errorf("run config %s: %w", name, err)
		}
		return nil
	}
	values := [][2]string{
		{"log", c.Log},
		{"input", c.Input},
		{"target", c.Target},
		{"format", c.Format},
	}
	if c.Presses != nil {
		values = append(values, [2]string{"presses", strconv.Itoa(*c.Presses)})
	}
	if c.MaxPresses != nil {
		values = append(values, [2]string{"max-presses", strconv.FormatUint(*c.MaxPresses, 10)})
	}
	for _, v := range values {
		if err := set(v[0], v[1]); err != nil {
			return err
		}
	}
	return nil
}
