package commands

import (
	"github.com/spf13/cobra"

	"github.com/dongsukag/morse-code/am"
	"github.com/dongsukag/morse-code/logger"
)

// RunConfiguredMode runs the mode named by cli.mode when morse is invoked
// without a subcommand.
func RunConfiguredMode(cmd *cobra.Command) {
	cfg := LoadConfig()

	logger.ComponentLogger("cli").Infow("Mode selected", logger.FieldMode, cfg.CLI.Mode)

	switch cfg.CLI.Mode {
	case am.ModeTime:
		if line, ok := readLine(cmd.InOrStdin()); ok {
			TimePipeline(line, cmd.OutOrStdout())
		}
	default:
		RoundTrip(cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
	}
}
