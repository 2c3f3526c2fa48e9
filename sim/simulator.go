// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"
)

// Simulator drives button presses over a Network.
//
// Module state lives in the Network and persists across presses until Reset
// is called, which is what makes periodic behavior observable.
// Thread-safety: NOT thread-safe. One press runs at a time.
type Simulator struct {
	Network *Network
	// queue holds the pulses of the press in progress; empty between presses
	queue PulseQueue
	// presses counts completed presses since construction or the last Reset
	presses uint64
	// Delivered counts every pulse delivered since construction or the last Reset
	Delivered uint64
}

// NewSimulator creates a simulator over n. The network's current module state
// is used as is.
func NewSimulator(n *Network) *Simulator {
	if n == nil {
		panic("NewSimulator: network must not be nil")
	}
	return &Simulator{Network: n}
}

// Presses returns the number of presses since construction or the last Reset.
func (sim *Simulator) Presses() uint64 {
	return sim.presses
}

// Reset returns every module to its initial state and zeroes the counters.
func (sim *Simulator) Reset() {
	sim.Network.Reset()
	sim.presses = 0
	sim.Delivered = 0
}

// Press runs one epoch: it injects a low pulse from the button into the
// broadcaster and delivers pulses in FIFO order until none remain. obs sees
// each pulse before its destination ticks.
func (sim *Simulator) Press(obs Observer) {
	if obs == nil {
		panic("Press: observer must not be nil")
	}
	n := sim.Network
	sim.queue.Enqueue(buttonPulse(n.broadcaster))
	delivered := uint64(0)
	for {
		p, ok := sim.queue.Dequeue()
		if !ok {
			break
		}
		delivered++
		obs.Observe(p)

		m := &n.modules[p.To]
		out, emit := m.Tick(p.High, p.From)
		if !emit {
			continue
		}
		for _, to := range n.fanout[p.To] {
			sim.queue.Enqueue(Pulse{From: p.To, To: to, High: out})
		}
	}
	sim.presses++
	sim.Delivered += delivered
	logrus.Debugf("[press %d] delivered %d pulses", sim.presses, delivered)
}

// PressN presses the button count times with the same observer.
func (sim *Simulator) PressN(count uint64, obs Observer) {
	for i := uint64(0); i < count; i++ {
		sim.Press(obs)
	}
}
