// Package morse converts between plain text and International Morse code.
//
// A Table holds the character to pattern associations and the inverse
// mapping derived from them. Tables never change after construction, so a
// single Table may be shared by any number of goroutines.
package morse

import (
	"strings"

	"github.com/dongsukag/morse-code/errors"
)

// Pair binds one character to its Morse pattern.
type Pair struct {
	Char    rune   `json:"char"`
	Pattern string `json:"pattern"`
}

// standardPairs is the canonical table. Order: letters, digits, punctuation.
var standardPairs = []Pair{
	{'a', ".-"}, {'b', "-..."}, {'c', "-.-."}, {'d', "-.."},
	{'e', "."}, {'f', "..-."}, {'g', "--."}, {'h', "...."},
	{'i', ".."}, {'j', ".---"}, {'k', "-.-"}, {'l', ".-.."},
	{'m', "--"}, {'n', "-."}, {'o', "---"}, {'p', ".--."},
	{'q', "--.-"}, {'r', ".-."}, {'s', "..."}, {'t', "-"},
	{'u', "..-"}, {'v', "...-"}, {'w', ".--"}, {'x', "-..-"},
	{'y', "-.--"}, {'z', "--.."},

	{'0', "-----"}, {'1', ".----"}, {'2', "..---"}, {'3', "...--"},
	{'4', "....-"}, {'5', "....."}, {'6', "-...."}, {'7', "--..."},
	{'8', "---.."}, {'9', "----."},

	{'/', "-..-."}, {'?', "..--.."}, {',', "--..--"}, {'.', ".-.-.-"},
	{'+', ".-.-."}, {'=', "-...-"}, {':', "---..."},
}

// StandardPairs returns a copy of the built-in character set in its
// documented order.
func StandardPairs() []Pair {
	out := make([]Pair, len(standardPairs))
	copy(out, standardPairs)
	return out
}

// Table is an immutable bidirectional character/pattern mapping.
type Table struct {
	pairs   []Pair
	forward map[rune]string
	reverse map[string]rune
}

var standard *Table

func init() {
	t, err := NewTable(standardPairs)
	if err != nil {
		panic(err)
	}
	standard = t
}

// Standard returns the process-wide table built from StandardPairs.
func Standard() *Table {
	return standard
}

// NewTable builds a Table from pairs. Letter keys are folded to lowercase.
// A duplicated character or pattern is rejected rather than silently
// overwritten.
func NewTable(pairs []Pair) (*Table, error) {
	t := &Table{
		pairs:   make([]Pair, 0, len(pairs)),
		forward: make(map[rune]string, len(pairs)),
		reverse: make(map[string]rune, len(pairs)),
	}

	for _, p := range pairs {
		c := foldASCII(p.Char)
		if c == ' ' {
			return nil, errors.WithHint(
				errors.NewInvalidRequestError("space cannot be mapped to pattern %q", p.Pattern),
				"space is reserved as the word separator")
		}
		if err := validatePattern(p.Pattern); err != nil {
			return nil, errors.Wrapf(err, "entry %q", c)
		}
		if _, dup := t.forward[c]; dup {
			return nil, errors.NewConflictError("character %q appears more than once", c)
		}
		t.forward[c] = p.Pattern
		t.pairs = append(t.pairs, Pair{Char: c, Pattern: p.Pattern})
	}

	for _, p := range t.pairs {
		if prev, dup := t.reverse[p.Pattern]; dup {
			return nil, errors.WithHint(
				errors.NewConflictError("pattern %q is claimed by both %q and %q", p.Pattern, prev, p.Char),
				"every pattern must decode to exactly one character")
		}
		t.reverse[p.Pattern] = p.Char
	}

	return t, nil
}

func validatePattern(pattern string) error {
	if pattern == "" {
		return errors.NewInvalidRequestError("empty pattern")
	}
	if strings.Trim(pattern, ".-") != "" {
		return errors.WithHint(
			errors.NewInvalidRequestError("pattern %q", pattern),
			"patterns may only contain '.' and '-'")
	}
	return nil
}

// LookupPattern returns the pattern for r. Uppercase ASCII letters are
// folded before the lookup.
func (t *Table) LookupPattern(r rune) (string, bool) {
	p, ok := t.forward[foldASCII(r)]
	return p, ok
}

// LookupChar returns the character encoded by pattern.
func (t *Table) LookupChar(pattern string) (rune, bool) {
	c, ok := t.reverse[pattern]
	return c, ok
}

// Pairs returns the entries in construction order.
func (t *Table) Pairs() []Pair {
	out := make([]Pair, len(t.pairs))
	copy(out, t.pairs)
	return out
}

// Len reports the number of entries.
func (t *Table) Len() int {
	return len(t.pairs)
}

// foldASCII lowercases A-Z and leaves every other rune alone.
func foldASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
