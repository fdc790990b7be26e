package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dongsukag/morse-code/logger"
	"github.com/dongsukag/morse-code/morse"
)

// DecodeCmd converts Morse to text
var DecodeCmd = &cobra.Command{
	Use:   "decode [morse]",
	Short: "Convert Morse to text",
	Long: `Convert Morse to lowercase text. Pass the code as one quoted argument,
or on the first line of standard input, so word gaps of three spaces
survive the shell.

Unrecognized patterns decode to '?'.

Examples:
  morse decode "... --- ..."           # sos
  morse encode hi there | morse decode`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	var code string
	if len(args) == 1 {
		code = args[0]
	} else {
		line, ok := readLine(cmd.InOrStdin())
		if !ok {
			return nil
		}
		code = line
	}

	dec := morse.Standard().DecodeDetailed(code)
	logger.DecodeDebugw("Decoded input",
		logger.FieldWords, dec.Words,
		logger.FieldInputLength, len(code))
	if len(dec.Unknown) > 0 {
		logger.DecodeDebugw("Unrecognized patterns",
			logger.FieldUnknown, dec.Unknown,
			logger.FieldInputLength, len(code))
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), dec.Text)
	return err
}
