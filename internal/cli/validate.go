package cli

import (
	"github.com/spf13/cobra"

	"goaliefix/internal/config"
	"goaliefix/internal/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration without touching any file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		out := output.New(output.DefaultConfig())
		out.Info("Configuration OK")
		out.Info("  team directory: %s", cfg.TeamDir())
		out.Info("  seasons:        %d-%d", cfg.SeasonMin, cfg.SeasonMax)
		out.Info("  reports:        %v", cfg.Reports)
		out.Info("  audit trail:    enabled=%v dir=%s", cfg.Audit.Enabled, cfg.Audit.LogDirectory)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
