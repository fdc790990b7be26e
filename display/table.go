package display

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/dongsukag/morse-code/errors"
	"github.com/dongsukag/morse-code/morse"
)

// RenderPairs prints the symbol table as a boxed pterm table
func RenderPairs(w io.Writer, pairs []morse.Pair) error {
	data := pterm.TableData{{"Char", "Pattern"}}
	for _, p := range pairs {
		data = append(data, []string{string(p.Char), p.Pattern})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
