package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/pulse-sim/pulse-sim/sim"
)

// countCmd runs bulk-counting mode
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count low and high pulses over a fixed number of presses",
	Run: func(cmd *cobra.Command, args []string) {
		n := loadInput()
		if err := runCount(cmd.OutOrStdout(), n, countPresses); err != nil {
			logrus.Fatalf("count failed: %v", err)
		}
	},
}

// runCount presses the button and writes the delivered total, low, high and
// their product to w.
func runCount(w io.Writer, n *sim.Network, presses int) error {
	runLog.Infof("Counting pulses over %d presses", presses)
	s := sim.NewSimulator(n)
	counter, err := s.Count(presses)
	if err != nil {
		return err
	}
	printer.Fprintf(w, "presses:   %d\n", s.Presses())
	printer.Fprintf(w, "delivered: %d\n", s.Delivered)
	printer.Fprintf(w, "low:       %d\n", counter.Low)
	printer.Fprintf(w, "high:      %d\n", counter.High)
	printer.Fprintf(w, "product:   %d\n", counter.Product())
	runLog.Info("Counting complete.")
	return nil
}

func init() {
	countCmd.Flags().IntVar(&countPresses, "presses", sim.DefaultCountPresses, "Number of button presses")
	rootCmd.AddCommand(countCmd)
}
