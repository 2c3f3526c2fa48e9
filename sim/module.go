package sim

import "fmt"

// Kind identifies the behavior variant of a Module.
type Kind int

const (
	// KindSink marks a wire destination that has no module behind it.
	// Pulses delivered to a sink are observed and then dropped.
	KindSink Kind = iota
	// KindBroadcaster forwards every received pulse unchanged.
	KindBroadcaster
	// KindFlipFlop toggles on low pulses and absorbs high pulses.
	KindFlipFlop
	// KindConjunction emits low only when every remembered input is high.
	KindConjunction
)

var kindNames = map[Kind]string{
	KindSink:        "sink",
	KindBroadcaster: "broadcaster",
	KindFlipFlop:    "flip-flop",
	KindConjunction: "conjunction",
}

// String returns the lower-case name used in YAML specs and CLI output.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Prefix returns the marker that precedes a module name in the text grammar.
func (k Kind) Prefix() string {
	switch k {
	case KindFlipFlop:
		return "%"
	case KindConjunction:
		return "&"
	default:
		return ""
	}
}

// ParseKind maps a kind name ("broadcaster", "flip-flop", "conjunction") back to a Kind.
// Sinks are never declared, so "sink" is rejected.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name && k != KindSink {
			return k, true
		}
	}
	return KindSink, false
}

// Module is a single node of the network together with its mutable state.
//
// The variant is closed: Kind selects which of the state fields is meaningful.
// A flip-flop uses on; a conjunction uses inputs/memory, which are kept as two
// parallel slices ordered by Connect calls so that iteration is deterministic.
// Broadcasters and sinks carry no state.
type Module struct {
	Name string
	Kind Kind

	on     bool
	inputs []int  // arena indices of connected sources
	memory []bool // last pulse seen from inputs[i]
}

// Tick delivers a pulse from source index from to the module. It returns the
// pulse to emit on every outbound wire, and ok=false when nothing is emitted.
func (m *Module) Tick(high bool, from int) (out bool, ok bool) {
	switch m.Kind {
	case KindBroadcaster:
		return high, true
	case KindFlipFlop:
		if high {
			return false, false
		}
		m.on = !m.on
		return m.on, true
	case KindConjunction:
		i := m.inputIndex(from)
		if i < 0 {
			// Unknown source: remember it so the AND covers it from now on.
			m.inputs = append(m.inputs, from)
			m.memory = append(m.memory, high)
		} else {
			m.memory[i] = high
		}
		for _, v := range m.memory {
			if !v {
				return true, true
			}
		}
		return false, true
	default:
		return false, false
	}
}

// Connect registers an incoming wire from source index from. Only conjunctions
// keep track of their inputs; connecting the same source twice is a no-op.
func (m *Module) Connect(from int) {
	if from < 0 {
		panic(fmt.Sprintf("Connect: negative source index %d", from))
	}
	if m.Kind != KindConjunction || m.inputIndex(from) >= 0 {
		return
	}
	m.inputs = append(m.inputs, from)
	m.memory = append(m.memory, false)
}

// Reset returns the module to its initial state. Connected inputs are kept.
func (m *Module) Reset() {
	m.on = false
	for i := range m.memory {
		m.memory[i] = false
	}
}

// On reports the state of a flip-flop. It is always false for other kinds.
func (m *Module) On() bool {
	return m.Kind == KindFlipFlop && m.on
}

// Inputs returns the arena indices of the sources connected to a conjunction.
func (m *Module) Inputs() []int {
	return m.inputs
}

// Remembered returns the last pulse a conjunction received from source index from.
// The second result is false if from is not a connected input.
func (m *Module) Remembered(from int) (high bool, ok bool) {
	i := m.inputIndex(from)
	if i < 0 {
		return false, false
	}
	return m.memory[i], true
}

func (m *Module) inputIndex(from int) int {
	for i, in := range m.inputs {
		if in == from {
			return i
		}
	}
	return -1
}
