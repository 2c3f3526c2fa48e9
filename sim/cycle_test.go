package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse-sim/pulse-sim/sim/internal/testutil"
)

func TestFirstHighPress_PeriodicBranches_LCM(t *testing.T) {
	// GIVEN four branches firing on every 3rd, 4th, 5th and 7th press
	g := testutil.GoldenNetworkByName(t, "periodic-branches")
	n := mustParse(t, g.Wiring)

	// WHEN the first high press on rx is extrapolated
	got, err := FirstHighPress(n, g.Target, DefaultMaxPresses)

	// THEN it is the LCM of the periods
	require.NoError(t, err)
	assert.Equal(t, g.FirstHigh, got)
	assert.Equal(t, uint64(420), got)
}

func TestProbeBranches_ReportsEachPeriod(t *testing.T) {
	g := testutil.GoldenNetworkByName(t, "periodic-branches")
	n := mustParse(t, g.Wiring)

	periods, err := ProbeBranches(n, g.Target, DefaultMaxPresses)
	require.NoError(t, err)

	got := make(map[string]uint64, len(periods))
	for _, p := range periods {
		got[p.Name] = p.Period
	}
	assert.Equal(t, g.Periods, got)
	// Branches are reported in arena order.
	assert.Equal(t, "b3", periods[0].Name)
}

// TestProbeBranches_IndependentOfPriorState checks that each probe starts from
// a reset, so history from earlier presses does not shorten a period.
func TestProbeBranches_IndependentOfPriorState(t *testing.T) {
	g := testutil.GoldenNetworkByName(t, "periodic-branches")
	n := mustParse(t, g.Wiring)
	NewSimulator(n).PressN(6, &PulseCounter{})

	got, err := FirstHighPress(n, g.Target, DefaultMaxPresses)
	require.NoError(t, err)
	assert.Equal(t, uint64(420), got)
}

func TestPeriodicBranches_FireOnlyOnMultiplesOfPeriod(t *testing.T) {
	// GIVEN the periodic-branches network
	g := testutil.GoldenNetworkByName(t, "periodic-branches")
	n := mustParse(t, g.Wiring)
	const presses = 840

	// WHEN it is pressed twice through the combined cycle
	fired := make(map[string][]uint64)
	s := NewSimulator(n)
	for s.Presses() < presses {
		press := s.Presses() + 1
		s.Press(ObserverFunc(func(p Pulse) {
			if p.High {
				name := n.Name(p.From)
				if _, ok := g.Periods[name]; ok {
					fired[name] = append(fired[name], press)
				}
			}
		}))
	}

	// THEN every branch fires high exactly once on each multiple of its period
	for name, period := range g.Periods {
		var want []uint64
		for k := period; k <= presses; k += period {
			want = append(want, k)
		}
		assert.Equal(t, want, fired[name], "branch %s", name)
	}
}

func TestPeriodicBranches_BruteForceMatchesExtrapolation(t *testing.T) {
	// GIVEN the periodic-branches network
	g := testutil.GoldenNetworkByName(t, "periodic-branches")
	n := mustParse(t, g.Wiring)
	rx, ok := n.Index(g.Target)
	require.True(t, ok)

	// WHEN pressed until the convergence node first sends low to rx
	var lows []uint64
	s := NewSimulator(n)
	for s.Presses() < 2*g.FirstHigh {
		press := s.Presses() + 1
		s.Press(ObserverFunc(func(p Pulse) {
			if p.To == rx && !p.High {
				lows = append(lows, press)
			}
		}))
	}

	// THEN it happens at the extrapolated press and its next multiple only
	assert.Equal(t, []uint64{g.FirstHigh, 2 * g.FirstHigh}, lows)
}

func TestResolveBranches_Unresolvable(t *testing.T) {
	tests := []struct {
		name   string
		wiring string
		target string
	}{
		{"unknown target", "broadcaster -> a\n%a -> rx\n", "nowhere"},
		{"two predecessors", "broadcaster -> a, b\n%a -> rx\n%b -> rx\n", "rx"},
		{"no predecessor", "broadcaster -> a\n%a -> b\n", "broadcaster"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveBranches(mustParse(t, tt.wiring), tt.target)
			assert.ErrorIs(t, err, ErrUnresolvableTarget)
		})
	}
}

func TestResolveBranches_FindsConvergenceNode(t *testing.T) {
	g := testutil.GoldenNetworkByName(t, "periodic-branches")
	n := mustParse(t, g.Wiring)

	conv, err := ResolveBranches(n, "rx")
	require.NoError(t, err)

	assert.Equal(t, "conv", n.Name(conv.Node))
	var names []string
	for _, b := range conv.Branches {
		names = append(names, n.Name(b))
	}
	assert.Equal(t, []string{"b3", "b4", "b5", "b7"}, names)
}

func TestFirstHighPress_BranchNeverFires_BoundExceeded(t *testing.T) {
	// GIVEN a branch that never receives a pulse
	n := mustParse(t, "broadcaster -> x\n%x -> out\n%a2 -> conv\n&conv -> rx\n")

	// WHEN extrapolated with a small bound
	_, err := FirstHighPress(n, "rx", 50)

	// THEN the driver fails instead of looping
	require.ErrorIs(t, err, ErrUnresolvableTarget)
	assert.Contains(t, err.Error(), "a2")
}

func TestFirstHighPress_ZeroBound(t *testing.T) {
	g := testutil.GoldenNetworkByName(t, "periodic-branches")
	_, err := FirstHighPress(mustParse(t, g.Wiring), g.Target, 0)
	assert.Error(t, err)
}

func TestLCM(t *testing.T) {
	tests := []struct {
		a, b, want uint64
	}{
		{1, 1, 1},
		{4, 6, 12},
		{3, 7, 21},
		{12, 4, 12},
		{0, 5, 0},
	}
	for _, tt := range tests {
		got, ok := LCM(tt.a, tt.b)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "LCM(%d, %d)", tt.a, tt.b)
	}
}

func TestLCM_Overflow(t *testing.T) {
	_, ok := LCM(math.MaxUint64, 2)
	assert.False(t, ok)
}

func TestCombinePeriods(t *testing.T) {
	got, err := CombinePeriods([]BranchPeriod{{"a", 3}, {"b", 4}, {"c", 5}, {"d", 7}})
	require.NoError(t, err)
	assert.Equal(t, uint64(420), got)

	_, err = CombinePeriods([]BranchPeriod{{"a", math.MaxUint64}, {"b", math.MaxUint64 - 1}})
	assert.ErrorIs(t, err, ErrUnresolvableTarget)
}
