// Package trace provides pulse-trace recording for network simulations.
// This package has no dependencies on sim/; it stores pure data types.
package trace

import "fmt"

// PulseRecord captures a single delivered pulse.
type PulseRecord struct {
	Press uint64 `yaml:"press"`
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	High  bool   `yaml:"high"`
}

// Level returns "high" or "low".
func (r PulseRecord) Level() string {
	if r.High {
		return "high"
	}
	return "low"
}

// String renders the record as "from -level-> to".
func (r PulseRecord) String() string {
	return fmt.Sprintf("%s -%s-> %s", r.From, r.Level(), r.To)
}
