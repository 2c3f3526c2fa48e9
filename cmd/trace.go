package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sim "github.com/pulse-sim/pulse-sim/sim"
	"github.com/pulse-sim/pulse-sim/sim/trace"
)

// validFormats maps accepted --format values.
var validFormats = map[string]bool{"text": true, "yaml": true}

// traceCmd prints every delivered pulse
var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print the ordered pulse trace of the first presses",
	Run: func(cmd *cobra.Command, args []string) {
		n := loadInput()
		if err := runTrace(cmd.OutOrStdout(), n, tracePresses, format); err != nil {
			logrus.Fatalf("trace failed: %v", err)
		}
	},
}

// runTrace records presses presses and writes them to w in the given format.
// Text output is followed by a summary; YAML output is the raw trace.
func runTrace(w io.Writer, n *sim.Network, presses int, format string) error {
	if !validFormats[format] {
		return fmt.Errorf("unknown format %q; valid: text, yaml", format)
	}
	if presses < 0 {
		return fmt.Errorf("press count must be non-negative, got %d", presses)
	}
	st := trace.NewSimulationTrace()
	runLog.WithField("trace", st.RunID).Infof("Tracing %d presses", presses)
	sim.NewSimulator(n).PressN(uint64(presses), sim.NewTraceRecorder(n, st))

	if format == "yaml" {
		data, err := yaml.Marshal(st)
		if err != nil {
			return fmt.Errorf("YAML marshal failed: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	var press uint64
	for _, r := range st.Pulses {
		if r.Press != press {
			press = r.Press
			printer.Fprintf(w, "# press %d\n", press)
		}
		fmt.Fprintln(w, r.String())
	}
	writeSummary(w, trace.Summarize(st))
	return nil
}

func writeSummary(w io.Writer, s *trace.TraceSummary) {
	printer.Fprintf(w, "\npulses: %d (low %d, high %d)\n", s.TotalPulses, s.LowCount, s.HighCount)
	sources := make([]string, 0, len(s.HighBySource))
	for src := range s.HighBySource {
		sources = append(sources, src)
	}
	sort.Strings(sources)
	for _, src := range sources {
		printer.Fprintf(w, "  %s: %d high, first at press %d\n", src, s.HighBySource[src], s.FirstHigh[src])
	}
}

func init() {
	traceCmd.Flags().IntVar(&tracePresses, "presses", 1, "Number of button presses to trace")
	traceCmd.Flags().StringVar(&format, "format", "text", "Output format (text, yaml)")
	rootCmd.AddCommand(traceCmd)
}
