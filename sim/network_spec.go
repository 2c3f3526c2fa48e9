package sim

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NetworkSpec is the YAML form of a wiring description.
// Loaded via LoadNetworkSpec(path).
type NetworkSpec struct {
	Modules []ModuleSpec `yaml:"modules"`
}

// ModuleSpec declares one module and its outbound wires.
type ModuleSpec struct {
	Name    string   `yaml:"name"`
	Kind    string   `yaml:"kind"`
	Outputs []string `yaml:"outputs,omitempty"`
}

// LoadNetworkSpec reads and parses a YAML network specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadNetworkSpec(path string) (*NetworkSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading network spec: %w", err)
	}
	return ParseNetworkSpec(data)
}

// ParseNetworkSpec decodes a YAML network specification.
func ParseNetworkSpec(data []byte) (*NetworkSpec, error) {
	var spec NetworkSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing network spec: %v: %w", err, ErrMalformedInput)
	}
	return &spec, nil
}

// Validate checks that every module has a name and a recognized kind.
// Structural checks (duplicates, missing broadcaster) happen in Build.
func (s *NetworkSpec) Validate() error {
	if len(s.Modules) == 0 {
		return fmt.Errorf("at least one module required: %w", ErrMalformedInput)
	}
	for i, m := range s.Modules {
		prefix := fmt.Sprintf("modules[%d]", i)
		if m.Name == "" {
			return fmt.Errorf("%s: name must not be empty: %w", prefix, ErrMalformedInput)
		}
		if _, ok := ParseKind(m.Kind); !ok {
			return fmt.Errorf("%s: unknown kind %q; valid: broadcaster, flip-flop, conjunction: %w", prefix, m.Kind, ErrMalformedInput)
		}
	}
	return nil
}

// Build validates the spec and resolves it into a Network.
func (s *NetworkSpec) Build() (*Network, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	b := NewNetworkBuilder()
	for _, m := range s.Modules {
		kind, _ := ParseKind(m.Kind)
		b.Add(m.Name, kind, m.Outputs...)
	}
	return b.Build()
}

// SpecFromNetwork converts a network back into its YAML form, in declaration order.
func SpecFromNetwork(n *Network) *NetworkSpec {
	spec := &NetworkSpec{}
	for _, i := range n.Modules() {
		m := n.Module(i)
		ms := ModuleSpec{Name: m.Name, Kind: m.Kind.String()}
		for _, to := range n.Outputs(i) {
			ms.Outputs = append(ms.Outputs, n.Name(to))
		}
		spec.Modules = append(spec.Modules, ms)
	}
	return spec
}

// String renders the network in the text grammar accepted by ParseNetwork.
func (n *Network) String() string {
	var sb strings.Builder
	for _, i := range n.Modules() {
		m := n.Module(i)
		sb.WriteString(m.Kind.Prefix())
		sb.WriteString(m.Name)
		sb.WriteString(" ->")
		for j, to := range n.Outputs(i) {
			if j > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(" ")
			sb.WriteString(n.Name(to))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
