package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dongsukag/morse-code/am"
	"github.com/dongsukag/morse-code/logger"
	"github.com/dongsukag/morse-code/morse"
)

// RoundTripCmd encodes a line and decodes it straight back
var RoundTripCmd = &cobra.Command{
	Use:   "roundtrip",
	Short: "Encode a line from stdin, then decode it back",
	Long: `Read one line from standard input, print its Morse encoding, then
print the text decoded from that encoding.

Characters outside a-z, 0-9 and / ? , . + = : are dropped while encoding,
so the second line shows exactly what survives the trip.

Examples:
  echo "SOS at 9:05" | morse roundtrip`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		RoundTrip(cmd.InOrStdin(), cmd.OutOrStdout(), LoadConfig())
	},
}

// RoundTrip runs the round-trip mode. It always writes two result lines.
func RoundTrip(in io.Reader, out io.Writer, cfg *am.Config) {
	if cfg.CLI.Prompts {
		fmt.Fprintln(out, cfg.CLI.InputPrompt)
	}

	line, _ := readLine(in)

	enc := morse.Standard().EncodeDetailed(line)
	if enc.Dropped != "" {
		logger.EncodeDebugw("Dropped characters without a pattern",
			logger.FieldDropped, enc.Dropped)
	}
	fmt.Fprintln(out, enc.Morse)

	if cfg.CLI.Prompts {
		fmt.Fprintln(out, cfg.CLI.DecodePrompt)
	}

	dec := morse.Standard().DecodeDetailed(enc.Morse)
	fmt.Fprintln(out, dec.Text)
}
