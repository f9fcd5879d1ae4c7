package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"goaliefix/internal/audit"
	"goaliefix/internal/config"
	"goaliefix/internal/orchestrator"
	"goaliefix/internal/output"
)

// dryRun simulates the fix without writing anything.
var dryRun bool

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Normalize the goalie columns of every candidate season file",
	Long: `The fix command scans the configured team directory for season files
matching <report>-<startYear>-<endYear>.csv within the configured season
range, repairs the goalie GP / W-G column order where needed, and rewrites
only the files that changed. Each rewrite is staged to a temporary file and
promoted atomically, so an interrupted run never corrupts an export.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFix()
	},
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Report what would change without writing any file",
	)
}

func runFix() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	outCfg := output.DefaultConfig()
	outCfg.Verbose = verbose
	out := output.New(outCfg)

	opts := orchestrator.Options{DryRun: dryRun}

	if cfg.Audit.Enabled && !dryRun {
		writer, err := audit.NewWriter(cfg.Audit.LogDirectory)
		if err != nil {
			return fmt.Errorf("failed to open audit trail: %w", err)
		}
		defer writer.Close()

		if _, err := writer.StartRun(Version); err != nil {
			return fmt.Errorf("failed to start audit trail: %w", err)
		}
		opts.Audit = writer
	}

	if dryRun {
		out.Info("Dry run: no file will be modified.")
	}
	out.Verbose("Scanning %s (seasons %d-%d, reports %v)",
		cfg.TeamDir(), cfg.SeasonMin, cfg.SeasonMax, cfg.Reports)

	summary, err := orchestrator.Run(cfg, opts)
	if err != nil {
		return err
	}

	for _, result := range summary.Results {
		if !result.Success {
			out.Result(false, "%s: %v", result.Path, result.Error)
		} else if result.Updated {
			out.Result(true, "Updated %s", result.Path)
		}
	}

	out.Info(summary.PrintSummary())

	if summary.HasErrors() {
		return fmt.Errorf("%d file(s) failed", summary.ErrorCount)
	}
	return nil
}
