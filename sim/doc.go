// Package sim provides the discrete-event pulse-propagation engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - module.go: the three module kinds (broadcaster, flip-flop, conjunction) and their state
//   - network.go: the index arena that holds modules, sinks and fanout lists
//   - simulator.go: the button press, a FIFO drain of one epoch
//   - cycle.go: first-high-press extrapolation over independent branches
//
// # Architecture
//
// A Network is built once, either from the text grammar (parse.go) or from a
// YAML NetworkSpec (network_spec.go). Every name is resolved to an integer index
// at build time; pulses, fanout lists and conjunction inputs carry indices only.
//
// Side effects of a press are delivered to an Observer. The package ships
// PulseCounter (bulk counting), HighPulseDetector (branch probes) and
// TraceRecorder, which writes into the pure-data sim/trace package.
//
// # Entry Points
//
//   - SimulateCounts: low/high totals over a fixed number of presses
//   - FirstHighPress: presses until a target sink first receives high, via LCM of branch periods
//
// FirstHighPress relies on the target having a single predecessor whose inputs
// fire periodically and independently. The shape is checked; the periodicity
// is assumed.
package sim
