package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dongsukag/morse-code/logger"
	"github.com/dongsukag/morse-code/morse"
)

// EncodeCmd converts text to Morse
var EncodeCmd = &cobra.Command{
	Use:   "encode [text...]",
	Short: "Convert text to Morse",
	Long: `Convert text to Morse. Arguments are joined with single spaces; with no
arguments the first line of standard input is used.

Characters are separated by one space and words by three. Characters with
no Morse pattern are dropped.

Examples:
  morse encode SOS             # ... --- ...
  morse encode hello world`,
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		line, ok := readLine(cmd.InOrStdin())
		if !ok {
			return nil
		}
		text = line
	}

	enc := morse.Standard().EncodeDetailed(text)
	if enc.Dropped != "" {
		logger.EncodeDebugw("Dropped characters without a pattern",
			logger.FieldDropped, enc.Dropped,
			logger.FieldInputLength, len(text))
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), enc.Morse)
	return err
}
