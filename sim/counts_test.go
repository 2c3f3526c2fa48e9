package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse-sim/pulse-sim/sim/internal/testutil"
)

func TestSimulateCounts_GoldenNetworks(t *testing.T) {
	for _, g := range testutil.LoadGoldenDataset(t).Networks {
		if g.Presses == 0 {
			continue
		}
		t.Run(g.Name, func(t *testing.T) {
			// GIVEN a freshly parsed reference network
			n := mustParse(t, g.Wiring)

			// WHEN pressed the golden number of times
			low, high, err := SimulateCounts(n, g.Presses)
			require.NoError(t, err)

			// THEN totals and product match the pre-computed values
			assert.Equal(t, g.Low, low, "low")
			assert.Equal(t, g.High, high, "high")
			assert.Equal(t, g.Product, low*high, "product")
		})
	}
}

func TestSimulateCounts_ZeroPresses(t *testing.T) {
	g := testutil.GoldenNetworkByName(t, "ring")
	low, high, err := SimulateCounts(mustParse(t, g.Wiring), 0)
	require.NoError(t, err)
	assert.Zero(t, low)
	assert.Zero(t, high)
}

func TestSimulateCounts_NegativePresses(t *testing.T) {
	g := testutil.GoldenNetworkByName(t, "ring")
	_, _, err := SimulateCounts(mustParse(t, g.Wiring), -1)
	assert.Error(t, err)
}

func TestSimulateCounts_StatePersistsAcrossCalls(t *testing.T) {
	// GIVEN the reference network pressed once
	g := testutil.GoldenNetworkByName(t, "reference")
	n := mustParse(t, g.Wiring)
	_, _, err := SimulateCounts(n, 1)
	require.NoError(t, err)

	// WHEN pressed once more through a second call
	low, high, err := SimulateCounts(n, 1)
	require.NoError(t, err)

	// THEN the counts are those of the second press, not the first
	assert.Equal(t, uint64(4), low)
	assert.Equal(t, uint64(2), high)
}

func TestPulseCounter_Product(t *testing.T) {
	c := &PulseCounter{}
	c.Observe(Pulse{High: false})
	c.Observe(Pulse{High: false})
	c.Observe(Pulse{High: true})
	assert.Equal(t, uint64(2), c.Product())
}

func TestSimulator_Count_AccumulatesDelivered(t *testing.T) {
	// GIVEN the reference network on one simulator
	g := testutil.GoldenNetworkByName(t, "reference")
	s := NewSimulator(mustParse(t, g.Wiring))

	// WHEN counted in two batches
	first, err := s.Count(400)
	require.NoError(t, err)
	second, err := s.Count(g.Presses - 400)
	require.NoError(t, err)

	// THEN each counter covers its own batch and Delivered covers both
	assert.Equal(t, g.Low, first.Low+second.Low)
	assert.Equal(t, g.High, first.High+second.High)
	assert.Equal(t, g.Low+g.High, s.Delivered)
	assert.Equal(t, uint64(g.Presses), s.Presses())
}

func TestSimulator_Count_NegativePresses(t *testing.T) {
	s := NewSimulator(mustParse(t, "broadcaster -> a\n%a ->\n"))
	_, err := s.Count(-1)
	assert.Error(t, err)
	assert.Zero(t, s.Presses())
}
