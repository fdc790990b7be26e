package commands

import (
	"github.com/spf13/cobra"

	"github.com/dongsukag/morse-code/display"
	"github.com/dongsukag/morse-code/morse"
)

// TableCmd prints the symbol table
var TableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show the Morse symbol table",
	Long:  `List every supported character with its pattern: letters, then digits, then punctuation.`,
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

type tableEntry struct {
	Char    string `json:"char"`
	Pattern string `json:"pattern"`
}

func init() {
	TableCmd.Flags().BoolP("json", "j", false, "Output the table as JSON")
}

func runTable(cmd *cobra.Command, args []string) error {
	pairs := morse.Standard().Pairs()

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		entries := make([]tableEntry, 0, len(pairs))
		for _, p := range pairs {
			entries = append(entries, tableEntry{Char: string(p.Char), Pattern: p.Pattern})
		}
		return display.OutputJSON(cmd.OutOrStdout(), entries)
	}

	return display.RenderPairs(cmd.OutOrStdout(), pairs)
}
