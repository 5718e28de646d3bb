package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/queueing-sim/queueing-sim/sim"
	"github.com/queueing-sim/queueing-sim/sim/trace"
)

var (
	// CLI flags for simulation configs
	seed        int64   // Seed for all randomness
	numServers  int     // Number of servers
	arrivalRate float64 // Probability of one task arrival per step
	maxSteps    int64   // Run length in steps
	logLevel    string  // Log verbosity level

	// CLI flags for the service-time distribution
	serviceDist string  // "uniform" or "exponential"
	serviceMin  int64   // Uniform: min service time (ticks)
	serviceMax  int64   // Uniform: max service time (ticks)
	serviceRate float64 // Exponential: rate parameter

	// CLI flags for output and policy selection
	dispatchPolicy string // Dispatch policy name
	scenarioFile   string // Optional YAML scenario overriding the flags above
	showChart      bool   // Render an ASCII queue-length chart after the run
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "queueing-sim",
	Short: "Discrete-time simulator for multi-server queueing systems",
}

// runCmd executes the simulation using parameters from CLI flags or a
// YAML scenario file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the queueing simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.Config{
			NumServers:  numServers,
			ArrivalRate: arrivalRate,
			MaxSteps:    maxSteps,
			Seed:        seed,
			Dispatch:    dispatchPolicy,
			ServiceTime: sim.ServiceTimeConfig{
				Kind: sim.ServiceTimeKind(serviceDist),
				Min:  serviceMin,
				Max:  serviceMax,
				Rate: serviceRate,
			},
		}

		if scenarioFile != "" {
			spec, err := LoadScenarioSpec(scenarioFile)
			if err != nil {
				logrus.Fatalf("unable to read scenario config: %v", err)
			}
			cfg = spec.ToConfig()
			logrus.Infof("Loaded scenario %q from %s", spec.Name, scenarioFile)
		}

		logrus.Infof("Starting simulation with %d servers, arrival rate %.2f, %d steps, seed %d",
			cfg.NumServers, cfg.ArrivalRate, cfg.MaxSteps, cfg.Seed)

		engine, err := sim.NewEngine(cfg)
		if err != nil {
			logrus.Fatalf("invalid simulation config: %v", err)
		}

		runTrace := trace.New()
		engine.SetObserver(runTrace.Observer())

		engine.Run()

		PrintReport(engine, trace.Summarize(runTrace, cfg.NumServers))
		if showChart {
			PrintQueueChart(runTrace)
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random arrivals and service times")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// System configs
	runCmd.Flags().IntVar(&numServers, "servers", 3, "Number of servers")
	runCmd.Flags().Float64Var(&arrivalRate, "arrival-rate", 0.7, "Probability of one task arrival per step, in [0,1]")
	runCmd.Flags().Int64Var(&maxSteps, "max-steps", 100, "Total simulation length in steps")
	runCmd.Flags().StringVar(&dispatchPolicy, "dispatcher", "shortest-queue", "Dispatch policy (shortest-queue, round-robin)")

	// Service-time distribution configs
	runCmd.Flags().StringVar(&serviceDist, "service-dist", "uniform", "Service time distribution (uniform, exponential)")
	runCmd.Flags().Int64Var(&serviceMin, "service-min", 2, "Uniform service time lower bound (ticks)")
	runCmd.Flags().Int64Var(&serviceMax, "service-max", 10, "Uniform service time upper bound (ticks)")
	runCmd.Flags().Float64Var(&serviceRate, "service-rate", 0.4, "Exponential service time rate parameter")

	// Output configs
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "Path to a YAML scenario file (overrides the flags above)")
	runCmd.Flags().BoolVar(&showChart, "chart", false, "Render an ASCII chart of queue length over time")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
