package trace

import (
	"strings"

	"github.com/google/uuid"
)

// SimulationTrace collects pulse records in delivery order.
type SimulationTrace struct {
	RunID  string        `yaml:"run_id"`
	Pulses []PulseRecord `yaml:"pulses"`
}

// NewSimulationTrace creates a SimulationTrace ready for recording, stamped
// with a fresh time-ordered run ID.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{
		RunID:  uuid.Must(uuid.NewV7()).String(),
		Pulses: make([]PulseRecord, 0),
	}
}

// RecordPulse appends a pulse record.
func (st *SimulationTrace) RecordPulse(record PulseRecord) {
	st.Pulses = append(st.Pulses, record)
}

// Press returns the records of one press, in delivery order.
func (st *SimulationTrace) Press(press uint64) []PulseRecord {
	var out []PulseRecord
	for _, r := range st.Pulses {
		if r.Press == press {
			out = append(out, r)
		}
	}
	return out
}

// Text renders every record on its own line. The run ID is omitted so that
// identical runs render identically.
func (st *SimulationTrace) Text() string {
	var sb strings.Builder
	for _, r := range st.Pulses {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
