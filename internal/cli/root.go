// Package cli defines the goaliefix command tree.
package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file, overridable with --config.
var cfgFile string

// verbose enables verbose output and debug logging.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "goaliefix",
	Short: "Repair the goalie GP / W-G column order in season CSV exports",
	Long: `goaliefix normalizes a column-ordering inconsistency in the "Goalies"
section of one team's historical season CSV exports: some files list the
W-G column before GP. The fix is idempotent and safe to re-run; only files
that actually change are rewritten, atomically.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
		log.SetOutput(os.Stderr)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"goaliefix.yaml",
		"Path to the configuration file (defaults cover the historical layout)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output",
	)
}
