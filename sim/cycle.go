package sim

import (
	"math/bits"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTarget is the sink whose first high pulse the cycle driver looks for.
	DefaultTarget = "rx"
	// DefaultMaxPresses bounds each branch probe.
	DefaultMaxPresses = 1_000_000
)

// Convergence describes the shape the cycle driver relies on: the target wire
// has exactly one predecessor (Node), and every module wired into Node is an
// independent branch.
type Convergence struct {
	Target   int
	Node     int
	Branches []int
}

// BranchPeriod is the press index at which a branch first emits a high pulse
// when probed from a reset state.
type BranchPeriod struct {
	Name   string
	Period uint64
}

// ResolveBranches locates the convergence node feeding target and its branches.
// It returns ErrUnresolvableTarget if target is unknown, has zero or several
// predecessors, or the convergence node has no inputs.
func ResolveBranches(n *Network, target string) (*Convergence, error) {
	ti, ok := n.Index(target)
	if !ok {
		return nil, unresolvable("target %q does not appear in the network", target)
	}
	preds := n.Predecessors(ti)
	if len(preds) != 1 {
		return nil, unresolvable("target %q has %d predecessors, want exactly 1", target, len(preds))
	}
	node := preds[0]
	branches := n.Predecessors(node)
	if len(branches) == 0 {
		return nil, unresolvable("convergence node %q has no branches", n.Name(node))
	}
	return &Convergence{Target: ti, Node: node, Branches: branches}, nil
}

// ProbeBranches measures the period of every branch feeding target. Each probe
// starts from a full reset so that branches never see one another's history.
// A branch that does not fire within maxPresses yields ErrUnresolvableTarget.
// Module state is left as the last probe left it.
func ProbeBranches(n *Network, target string, maxPresses uint64) ([]BranchPeriod, error) {
	if maxPresses == 0 {
		return nil, errors.New("max presses must be positive")
	}
	conv, err := ResolveBranches(n, target)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("target %q converges on %q with %d branches", target, n.Name(conv.Node), len(conv.Branches))

	sim := NewSimulator(n)
	periods := make([]BranchPeriod, 0, len(conv.Branches))
	for _, branch := range conv.Branches {
		sim.Reset()
		detector := &HighPulseDetector{Source: branch}
		for !detector.Fired {
			if sim.Presses() >= maxPresses {
				return nil, unresolvable("branch %q did not emit high within %d presses", n.Name(branch), maxPresses)
			}
			sim.Press(detector)
		}
		logrus.Debugf("branch %q fires first at press %d", n.Name(branch), sim.Presses())
		periods = append(periods, BranchPeriod{Name: n.Name(branch), Period: sim.Presses()})
	}
	return periods, nil
}

// FirstHighPress returns the number of presses after which the target wire
// first carries a high pulse, computed as the LCM of the branch periods.
//
// The answer is only correct when every branch is periodic from its first
// firing and the branches are independent; this is assumed, not verified.
func FirstHighPress(n *Network, target string, maxPresses uint64) (uint64, error) {
	periods, err := ProbeBranches(n, target, maxPresses)
	if err != nil {
		return 0, err
	}
	return CombinePeriods(periods)
}

// CombinePeriods folds branch periods with LCM. Overflow of uint64 is reported
// as ErrUnresolvableTarget.
func CombinePeriods(periods []BranchPeriod) (uint64, error) {
	acc := uint64(1)
	for _, p := range periods {
		next, ok := LCM(acc, p.Period)
		if !ok {
			return 0, unresolvable("LCM overflows at branch %q (period %d)", p.Name, p.Period)
		}
		acc = next
	}
	return acc, nil
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b. ok is false on overflow.
// LCM(0, x) is 0.
func LCM(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(a/GCD(a, b), b)
	return lo, hi == 0
}
