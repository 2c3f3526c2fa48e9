package cmd

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/pulse-sim/pulse-sim/sim"
)

var (
	// CLI flags shared by every subcommand
	logLevel   string // Log verbosity level
	configPath string // Optional YAML run configuration
	inputPath  string // Wiring description (text grammar or .yaml spec)

	// CLI flags for simulation modes
	countPresses int    // Presses in count mode
	tracePresses int    // Presses in trace mode
	target       string // Sink whose first high pulse is extrapolated
	maxPresses   uint64 // Per-branch probe bound in first-high mode
	format       string // Trace output format (text, yaml)

	// CLI flags for describe
	describeFormat string // Network output format (table, text, yaml)

	// runLog carries the run ID on every log line of one invocation
	runLog = logrus.NewEntry(logrus.StandardLogger())
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pulse-sim",
	Short: "Discrete-event simulator for pulse-propagation networks",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configPath != "" {
			cfg, err := LoadRunConfig(configPath)
			if err != nil {
				logrus.Fatalf("unable to read run config; %v", err)
			}
			if err := cfg.Apply(cmd); err != nil {
				logrus.Fatalf("invalid run config %s; %v", configPath, err)
			}
		}

		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
		runLog = logrus.WithField("run", uuid.Must(uuid.NewV7()).String())
	},
}

// loadInput reads the network named by --input.
func loadInput() *sim.Network {
	if inputPath == "" {
		logrus.Fatalf("Wiring description not provided (--input). Exiting.")
	}
	n, err := sim.LoadNetwork(inputPath)
	if err != nil {
		logrus.Fatalf("unable to load network from %s; %v", inputPath, err)
	}
	runLog.Infof("Loaded %d modules from %s", len(n.Modules()), inputPath)
	return n
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML run configuration")
	rootCmd.PersistentFlags().StringVar(&inputPath, "input", "", "Path to the wiring description (text, or .yaml/.yml spec)")
}
