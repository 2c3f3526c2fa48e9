package sim

// Pulse is a single signal travelling one wire. From and To are arena indices.
type Pulse struct {
	From int
	To   int
	High bool
}

// Level returns "high" or "low".
func (p Pulse) Level() string {
	if p.High {
		return "high"
	}
	return "low"
}

// buttonPulse is the synthetic pulse that opens every press.
func buttonPulse(broadcaster int) Pulse {
	return Pulse{From: ButtonIndex, To: broadcaster, High: false}
}
