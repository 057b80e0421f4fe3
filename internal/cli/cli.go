// Package cli provides the slurmplus command line interface based on the
// Cobra framework.
//
// Command structure:
//
//	slurmplus                       # Root command
//	├── recent                      # List this user's recent jobs
//	│   ├── --span, -s              # Days back to query
//	│   └── --limit, -l             # Max job groups to print
//	├── status <jobid>              # Scheduling timeline of one job
//	├── --config, -c                # Config file path
//	├── --color                     # auto, always, or never
//	└── --verbose, -v               # Debug logging
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/slurmplus/goslurm/internal/colorio"
	"github.com/slurmplus/goslurm/internal/config"
	"github.com/slurmplus/goslurm/internal/report"
	"github.com/slurmplus/goslurm/pkg/slurm"
)

var (
	configFile string
	colorFlag  string
	verbose    bool
)

func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "slurmplus",
		Short: "Slurmplus: friendlier queries against a Slurm cluster",
		Long: `Slurmplus talks to the local Slurm installation directly through
libslurm and libslurmdb, with output meant for humans:
- recent: what have my jobs been doing lately
- status: where is this one job in its life cycle`,
		Version:       "0.1.0",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "when to color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(buildRecentCommand())
	rootCmd.AddCommand(buildStatusCommand())

	return rootCmd
}

// setup loads the config and builds the shared per-invocation pieces.
func setup() (*config.Config, *colorio.CIO, *zap.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	choice := cfg.Color
	if colorFlag != "" {
		choice = colorFlag
	}
	switch colorio.Choice(choice) {
	case colorio.Auto, colorio.Always, colorio.Never:
	default:
		return nil, nil, nil, fmt.Errorf("unrecognized color choice %q", choice)
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to build logger: %w", err)
		}
	}

	return cfg, colorio.New(colorio.Choice(choice)), logger, nil
}

func buildRecentCommand() *cobra.Command {
	var spanDays int
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List your recent jobs",
		Long:  "Query the accounting database for this user's recent jobs, grouped by job array",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cio, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if !cmd.Flags().Changed("span") {
				spanDays = cfg.Recent.SpanDays
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.Recent.Limit
			}
			return runRecent(cio, logger, spanDays, limit)
		},
	}

	cmd.Flags().IntVarP(&spanDays, "span", "s", 7, "how many days back to query")
	cmd.Flags().IntVarP(&limit, "limit", "l", 30, "print at most this many job groups")

	return cmd
}

func runRecent(cio *colorio.CIO, logger *zap.Logger, spanDays, limit int) error {
	now := time.Now().UTC()
	minStart := now.Add(-time.Duration(spanDays) * 24 * time.Hour)

	// The accounting API wants the uid as a string rendering of the
	// numeric id.
	uid := os.Getuid()
	logger.Debug("querying accounting database",
		zap.Int("uid", uid),
		zap.Time("usage_start", minStart))

	filters := slurm.NewJobFilters()
	defer filters.Close()
	filters.UseridList().Append(strconv.Itoa(uid))
	filters.SetUsageStart(minStart)

	db, err := slurm.ConnectDatabase()
	if err != nil {
		return fmt.Errorf("failed to reach the accounting database: %w", err)
	}
	defer db.Close()

	jobs, err := db.GetJobs(filters.JobFilters)
	if err != nil {
		return fmt.Errorf("failed to query recent jobs: %w", err)
	}
	defer jobs.Close()

	logger.Debug("accounting query finished", zap.Int("records", jobs.Count()))

	var summaries []report.JobSummary
	it := jobs.Iter()
	defer it.Close()
	for job, ok := it.Next(); ok; job, ok = it.Next() {
		summaries = append(summaries, summarize(job, now))
	}

	report.RenderRecent(cio, report.GroupRecent(summaries, now, limit))
	return nil
}

// summarize reduces an accounting record to the fields the recent listing
// needs, copying everything out of the borrowed view.
func summarize(job slurm.JobRecord, now time.Time) report.JobSummary {
	groupID := uint32(job.JobID())
	if arrayID := job.ArrayJobID(); arrayID != nil {
		groupID = uint32(*arrayID)
	}
	submit := now
	if t := job.SubmitTime(); t != nil {
		submit = *t
	}
	return report.JobSummary{
		GroupID:   groupID,
		Name:      job.JobName(),
		Submit:    submit,
		StateCode: job.State().Shortcode(),
	}
}

func buildStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <jobid>",
		Short: "Show the scheduling timeline of a job",
		Long:  "Display when a job became eligible, started, and finished, with per-step runtimes. Works for both running and completed jobs.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid job id %q: %w", args[0], err)
			}

			_, cio, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			return runStatus(cio, logger, slurm.JobID(id))
		},
	}
	return cmd
}

func runStatus(cio *colorio.CIO, logger *zap.Logger, id slurm.JobID) error {
	logger.Debug("querying job status", zap.Uint32("jobid", uint32(id)))

	filters := slurm.NewJobFilters()
	defer filters.Close()
	filters.StepList().Append(slurm.NewJobStepFilter(id))

	db, err := slurm.ConnectDatabase()
	if err != nil {
		return fmt.Errorf("failed to reach the accounting database: %w", err)
	}
	defer db.Close()

	jobs, err := db.GetJobs(filters.JobFilters)
	if err != nil {
		return fmt.Errorf("failed to query job %d: %w", id, err)
	}
	defer jobs.Close()

	now := time.Now().UTC()
	var out []report.StatusJob
	it := jobs.Iter()
	defer it.Close()
	for job, ok := it.Next(); ok; job, ok = it.Next() {
		out = append(out, statusOf(job, now))
	}

	report.RenderStatus(cio, out, now)
	return nil
}

func statusOf(job slurm.JobRecord, now time.Time) report.StatusJob {
	submit := now
	if t := job.SubmitTime(); t != nil {
		submit = *t
	}

	var limitMinutes uint32
	if l := job.TimeLimit(); l != nil {
		limitMinutes = *l
	}

	sj := report.StatusJob{
		ID:               uint32(job.JobID()),
		Name:             job.JobName(),
		Submit:           submit,
		Eligible:         job.EligibleTime(),
		Start:            job.StartTime(),
		EligibleWait:     job.EligibleWaitDuration(),
		Wait:             job.WaitDuration(),
		TimeLimitMinutes: limitMinutes,
	}

	it := job.Steps().Iter()
	defer it.Close()
	for step, ok := it.Next(); ok; step, ok = it.Next() {
		sj.Steps = append(sj.Steps, report.StatusStep{
			ID:           strconv.FormatUint(uint64(step.StepID()), 10),
			Name:         step.StepName(),
			Start:        step.StartTime(),
			Wallclock:    step.WallclockDuration(),
			ExitCode:     step.ExitCode(),
			MaxVMSizeKiB: step.MaxVMSize(),
		})
	}

	return sj
}

// PrintCauseChain writes err's message to stderr followed by each wrapped
// cause on its own line.
func PrintCauseChain(cio *colorio.CIO, err error) {
	cio.EPrint(colorio.Red, "error:")
	cio.EPrintln(colorio.Plain, " %s", err)
	for err = errors.Unwrap(err); err != nil; err = errors.Unwrap(err) {
		cio.EPrintln(colorio.Plain, "  caused by: %s", err)
	}
}
