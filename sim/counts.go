package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultCountPresses is the press count used by bulk-counting mode when none is given.
const DefaultCountPresses = 1000

// SimulateCounts presses the button presses times on a fresh simulator and
// returns the number of low and high pulses delivered across all presses.
// Module state carries over from whatever n holds; counts are never reset
// between presses.
func SimulateCounts(n *Network, presses int) (low, high uint64, err error) {
	counter, err := NewSimulator(n).Count(presses)
	if err != nil {
		return 0, 0, err
	}
	return counter.Low, counter.High, nil
}

// Count presses the button presses times and tallies the pulses those presses
// deliver. Delivered keeps counting across calls; the returned counter does not.
func (sim *Simulator) Count(presses int) (*PulseCounter, error) {
	if presses < 0 {
		return nil, fmt.Errorf("press count must be non-negative, got %d", presses)
	}
	counter := &PulseCounter{}
	sim.PressN(uint64(presses), counter)
	logrus.Debugf("counted %d low and %d high pulses over %d presses", counter.Low, counter.High, presses)
	return counter, nil
}
