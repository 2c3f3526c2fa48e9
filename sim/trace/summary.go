package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	Presses      uint64
	TotalPulses  int
	LowCount     int
	HighCount    int
	HighBySource map[string]int // source name → high pulses emitted
	// FirstHigh maps a source name to the first press in which it emitted high.
	FirstHigh map[string]uint64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		HighBySource: make(map[string]int),
		FirstHigh:    make(map[string]uint64),
	}
	if st == nil {
		return summary
	}

	summary.TotalPulses = len(st.Pulses)
	for _, r := range st.Pulses {
		if r.Press > summary.Presses {
			summary.Presses = r.Press
		}
		if !r.High {
			summary.LowCount++
			continue
		}
		summary.HighCount++
		summary.HighBySource[r.From]++
		if _, seen := summary.FirstHigh[r.From]; !seen {
			summary.FirstHigh[r.From] = r.Press
		}
	}
	return summary
}
