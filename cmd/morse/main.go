package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dongsukag/morse-code/am"
	"github.com/dongsukag/morse-code/cmd/morse/commands"
	"github.com/dongsukag/morse-code/errors"
	"github.com/dongsukag/morse-code/logger"
)

var rootCmd = &cobra.Command{
	Use:   "morse",
	Short: "morse - Morse code encoder, decoder and time speaker",
	Long: `morse - Convert text to Morse code and back.

Run without a subcommand, morse reads one line from standard input and
acts according to cli.mode:

  roundtrip  print the Morse encoding, then the text decoded from it
  time       read a 24-hour HH:MM time and print it as 12-hour Morse

Available commands:
  encode  - Convert text to Morse
  decode  - Convert Morse to text
  time    - Encode a 24-hour time as 12-hour Morse
  table   - Show the Morse symbol table
  am      - Manage morse configuration

Examples:
  echo "hello world" | morse             # roundtrip mode
  echo 13:30 | MORSE_MODE=time morse     # .---- ---... ...-- -----    .--. --
  morse encode SOS                       # ... --- ...
  morse decode ".... ..    - .... . .-. ."`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("log-json")

		// Config errors are reported later by the command that needs it
		if cfg, err := am.Load(); err == nil {
			jsonOutput = jsonOutput || cfg.Log.JSON
			logger.SetTheme(cfg.Log.Theme)
		}

		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		logger.Debugf("Logger initialized at %s", logger.LevelName(verbosity))
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		commands.RunConfiguredMode(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON on stderr")

	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.DecodeCmd)
	rootCmd.AddCommand(commands.EncodeCmd)
	rootCmd.AddCommand(commands.RoundTripCmd)
	rootCmd.AddCommand(commands.TableCmd)
	rootCmd.AddCommand(commands.TimeCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
