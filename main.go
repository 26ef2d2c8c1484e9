package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/logging"
	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

var (
	flagConfig    string
	flagAlgorithm string
	flagQuantum   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cpu-scheduler",
		Short: "Simulate FCFS, SJF, Priority and Round Robin CPU scheduling",
		Long: `cpu-scheduler replays a set of processes under a CPU scheduling discipline
and reports the resulting Gantt chart together with completion, turnaround,
waiting and response times.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(simulateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.SchedulerConfig, *slog.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat), nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			app := api.NewApp(cfg, logger)
			logger.Info("listening", "addr", cfg.Address())
			return app.Listen(cfg.Address())
		},
	}
}

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate <processes.csv>",
		Short: "Schedule processes from a CSV file and print the results",
		Long: `Reads rows of "id,burst,arrival[,priority]" and prints a Gantt chart and
metrics table for the selected algorithm, or for every algorithm with --algorithm all.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open processes file: %w", err)
			}
			defer f.Close()

			jobs, err := requests.LoadCSV(f)
			if err != nil {
				return err
			}
			request := requests.ScheduleRequests{Jobs: jobs, TimeQuantum: flagQuantum}
			if err := request.Validate(); err != nil {
				return err
			}
			processes := request.Processes()

			quantum := request.TimeQuantum
			if quantum == 0 {
				quantum = cfg.RoundRobinTimeQuantum
			}

			results, err := runAlgorithms(processes, flagAlgorithm, quantum)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, result := range results {
				logger.Debug("schedule computed", "discipline", result.Discipline.String(), "makespan", result.Summary.Makespan)
				render.Schedule(out, responses.NewScheduleResponse(processes, result))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", "all", "FCFS, SJF, Priority, RoundRobin or all")
	cmd.Flags().IntVarP(&flagQuantum, "quantum", "q", 0, "Round Robin time quantum (default from config)")
	return cmd
}

// runAlgorithms runs the named discipline, or every discipline for "all".
func runAlgorithms(processes []core.Process, name string, quantum int) ([]*schedulers.Result, error) {
	if strings.EqualFold(name, "all") {
		return schedulers.RunAll(processes, quantum)
	}

	discipline, err := schedulers.ParseDiscipline(name, quantum)
	if err != nil {
		return nil, err
	}
	result, err := schedulers.Run(processes, discipline)
	if err != nil {
		return nil, err
	}
	return []*schedulers.Result{result}, nil
}
