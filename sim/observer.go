package sim

import (
	"github.com/pulse-sim/pulse-sim/sim/trace"
)

// Observer receives every delivered pulse, in delivery order, before the
// destination module ticks. Pulses to sinks are observed too.
type Observer interface {
	Observe(p Pulse)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(p Pulse)

// Observe calls f(p).
func (f ObserverFunc) Observe(p Pulse) { f(p) }

// Observers fans a pulse out to several observers in order.
type Observers []Observer

// Observe forwards p to every observer.
func (obs Observers) Observe(p Pulse) {
	for _, o := range obs {
		o.Observe(p)
	}
}

// PulseCounter tallies delivered pulses by level.
type PulseCounter struct {
	Low  uint64
	High uint64
}

// Observe counts p.
func (c *PulseCounter) Observe(p Pulse) {
	if p.High {
		c.High++
	} else {
		c.Low++
	}
}

// Product returns Low * High.
func (c *PulseCounter) Product() uint64 {
	return c.Low * c.High
}

// HighPulseDetector records whether Source has emitted a high pulse.
// Fired stays set until cleared by the caller.
type HighPulseDetector struct {
	Source int
	Fired  bool
}

// Observe sets Fired when p is a high pulse leaving Source.
func (d *HighPulseDetector) Observe(p Pulse) {
	if p.High && p.From == d.Source {
		d.Fired = true
	}
}

// TraceRecorder appends every observed pulse to a trace.SimulationTrace,
// resolving arena indices to names. Press numbers are derived from the button
// pulse that opens each press and start at 1.
type TraceRecorder struct {
	network *Network
	trace   *trace.SimulationTrace
	press   uint64
}

// NewTraceRecorder creates a recorder that writes into st.
func NewTraceRecorder(n *Network, st *trace.SimulationTrace) *TraceRecorder {
	if n == nil || st == nil {
		panic("NewTraceRecorder: network and trace must not be nil")
	}
	return &TraceRecorder{network: n, trace: st}
}

// Observe records p.
func (r *TraceRecorder) Observe(p Pulse) {
	if p.From == ButtonIndex {
		r.press++
	}
	r.trace.RecordPulse(trace.PulseRecord{
		Press: r.press,
		From:  r.network.Name(p.From),
		To:    r.network.Name(p.To),
		High:  p.High,
	})
}
