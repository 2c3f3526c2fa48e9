package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/pulse-sim/pulse-sim/sim"
)

// firstHighCmd runs cycle-detection mode
var firstHighCmd = &cobra.Command{
	Use:   "first-high",
	Short: "Extrapolate the first press that sends a high pulse to the target",
	Long: "Probes every branch feeding the target's single predecessor from a reset state, " +
		"then combines the branch periods with LCM. Only valid for networks with that convergence shape.",
	Run: func(cmd *cobra.Command, args []string) {
		n := loadInput()
		if err := runFirstHigh(cmd.OutOrStdout(), n, target, maxPresses); err != nil {
			logrus.Fatalf("first-high failed: %v", err)
		}
	},
}

// runFirstHigh writes each branch period and the combined answer to w.
func runFirstHigh(w io.Writer, n *sim.Network, target string, maxPresses uint64) error {
	runLog.Infof("Probing branches of %q (bound %d presses per branch)", target, maxPresses)
	periods, err := sim.ProbeBranches(n, target, maxPresses)
	if err != nil {
		return err
	}
	answer, err := sim.CombinePeriods(periods)
	if err != nil {
		return err
	}
	for _, p := range periods {
		printer.Fprintf(w, "branch %s: %d\n", p.Name, p.Period)
	}
	printer.Fprintf(w, "first high on %s: %d\n", target, answer)
	runLog.Info("Probing complete.")
	return nil
}

func init() {
	firstHighCmd.Flags().StringVar(&target, "target", sim.DefaultTarget, "Sink whose first high pulse is wanted")
	firstHighCmd.Flags().Uint64Var(&maxPresses, "max-presses", sim.DefaultMaxPresses, "Maximum presses per branch probe")
	rootCmd.AddCommand(firstHighCmd)
}
