package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dongsukag/morse-code/clock"
	"github.com/dongsukag/morse-code/logger"
	"github.com/dongsukag/morse-code/morse"
)

// TimeCmd encodes a 24-hour time as 12-hour Morse
var TimeCmd = &cobra.Command{
	Use:   "time [HH:MM]",
	Short: "Encode a 24-hour time as 12-hour Morse",
	Long: `Convert a 24-hour "HH:MM" time to 12-hour form and print it as Morse.

The time is taken from the argument, or from the first line of standard
input. With no input nothing is printed. Input that is not shaped like
"HH:MM" is encoded unchanged.

Examples:
  morse time 13:30           # .---- ---... ...-- -----    .--. --
  date +%H:%M | morse time`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			TimePipeline(args[0], cmd.OutOrStdout())
			return
		}
		if line, ok := readLine(cmd.InOrStdin()); ok {
			TimePipeline(line, cmd.OutOrStdout())
		}
	},
}

// TimePipeline converts and encodes one time string. Empty input writes
// nothing.
func TimePipeline(line string, out io.Writer) {
	if line == "" {
		return
	}

	if hh, mm, ok := clock.Split(line); ok {
		logger.ClockDebugw("Parsed time", logger.FieldHour, hh, logger.FieldMinute, mm)
	} else {
		logger.ClockDebugw("Input is not HH:MM, encoding as is", logger.FieldInputLength, len(line))
	}

	fmt.Fprintln(out, morse.Encode(clock.To12Hour(line)))
}
