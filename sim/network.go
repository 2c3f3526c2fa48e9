package sim

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// ButtonName is the synthetic source of the pulse that starts every press.
	ButtonName = "button"
	// BroadcasterName is the module that receives the button pulse.
	BroadcasterName = "broadcaster"

	// ButtonIndex is the arena index reserved for the button.
	ButtonIndex = 0
)

// Network is the static wire graph together with the module registry.
//
// Every name that appears in the description (declared modules, sinks and the
// button) is resolved once to a small integer index. Modules, fanout lists and
// conjunction input sets all refer to one another by index.
type Network struct {
	modules     []Module
	fanout      [][]int
	index       map[string]int
	broadcaster int
}

// Len returns the number of arena slots, including the button and sinks.
func (n *Network) Len() int {
	return len(n.modules)
}

// Index returns the arena index for name.
func (n *Network) Index(name string) (int, bool) {
	i, ok := n.index[name]
	return i, ok
}

// Name returns the name stored at arena index i.
func (n *Network) Name(i int) string {
	return n.modules[i].Name
}

// Module returns the module stored at arena index i. Sinks and the button are
// returned with KindSink.
func (n *Network) Module(i int) *Module {
	return &n.modules[i]
}

// Outputs returns the destinations of i in declaration order.
// The returned slice MUST NOT be modified.
func (n *Network) Outputs(i int) []int {
	return n.fanout[i]
}

// Broadcaster returns the arena index of the broadcaster module.
func (n *Network) Broadcaster() int {
	return n.broadcaster
}

// Predecessors returns, in arena order, every index with a wire into i.
func (n *Network) Predecessors(i int) []int {
	var preds []int
	for from, outs := range n.fanout {
		for _, to := range outs {
			if to == i {
				preds = append(preds, from)
				break
			}
		}
	}
	return preds
}

// Modules returns the arena indices of all declared modules in declaration order.
func (n *Network) Modules() []int {
	var out []int
	for i := range n.modules {
		if n.modules[i].Kind != KindSink {
			out = append(out, i)
		}
	}
	return out
}

// Reset returns every module to its initial state. The wiring is untouched.
func (n *Network) Reset() {
	for i := range n.modules {
		n.modules[i].Reset()
	}
}

type declaration struct {
	name    string
	kind    Kind
	outputs []string
}

// NetworkBuilder collects module declarations and resolves them into a Network.
// Declarations may reference modules that are declared later.
type NetworkBuilder struct {
	decls []declaration
}

// NewNetworkBuilder creates an empty builder.
func NewNetworkBuilder() *NetworkBuilder {
	return &NetworkBuilder{}
}

// Add declares a module with its outbound wires in fanout order.
func (b *NetworkBuilder) Add(name string, kind Kind, outputs ...string) *NetworkBuilder {
	b.decls = append(b.decls, declaration{name: name, kind: kind, outputs: outputs})
	return b
}

// Build validates the declarations, assigns arena indices and connects every
// wire into a conjunction. It returns ErrMalformedInput on a duplicate module,
// a reserved name, a name the text grammar cannot carry, a misplaced
// broadcaster, or a missing broadcaster.
func (b *NetworkBuilder) Build() (*Network, error) {
	n := &Network{
		index:       map[string]int{ButtonName: ButtonIndex},
		modules:     []Module{{Name: ButtonName, Kind: KindSink}},
		broadcaster: -1,
	}

	for _, d := range b.decls {
		if err := checkName(d.name); err != nil {
			return nil, err
		}
		if d.name == ButtonName {
			return nil, malformed("module name %q is reserved", ButtonName)
		}
		if _, dup := n.index[d.name]; dup {
			return nil, malformed("module %q declared twice", d.name)
		}
		switch d.kind {
		case KindBroadcaster:
			if d.name != BroadcasterName {
				return nil, malformed("broadcaster must be named %q, got %q", BroadcasterName, d.name)
			}
		case KindFlipFlop, KindConjunction:
			if d.name == BroadcasterName {
				return nil, malformed("%q must be a broadcaster, got %s", BroadcasterName, d.kind)
			}
		default:
			return nil, malformed("module %q has invalid kind %s", d.name, d.kind)
		}
		n.index[d.name] = len(n.modules)
		n.modules = append(n.modules, Module{Name: d.name, Kind: d.kind})
	}

	bi, ok := n.index[BroadcasterName]
	if !ok {
		return nil, malformed("no %q module declared", BroadcasterName)
	}
	n.broadcaster = bi

	// Sinks are interned after all declarations so a forward reference to a
	// module is never mistaken for a sink.
	n.fanout = make([][]int, len(n.modules))
	for _, d := range b.decls {
		from := n.index[d.name]
		outs := make([]int, 0, len(d.outputs))
		for _, dest := range d.outputs {
			if err := checkName(dest); err != nil {
				return nil, errors.WithMessagef(err, "destination of %q", d.name)
			}
			to, ok := n.index[dest]
			if !ok {
				to = len(n.modules)
				n.index[dest] = to
				n.modules = append(n.modules, Module{Name: dest, Kind: KindSink})
				n.fanout = append(n.fanout, nil)
			}
			outs = append(outs, to)
		}
		n.fanout[from] = outs
	}

	for from, outs := range n.fanout {
		for _, to := range outs {
			n.modules[to].Connect(from)
		}
	}

	logrus.Debugf("built network: %d modules, %d sinks", len(b.decls), len(n.modules)-len(b.decls)-1)
	return n, nil
}

// checkName rejects names that would not survive a round trip through the
// text grammar: empty names and names holding whitespace, "->" or ",".
func checkName(name string) error {
	switch {
	case name == "":
		return malformed("empty module name")
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return malformed("name %q contains whitespace", name)
	case strings.Contains(name, "->"), strings.Contains(name, ","):
		return malformed("name %q contains a separator", name)
	}
	return nil
}
