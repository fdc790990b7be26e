package morse

import "strings"

const (
	// UnknownChar stands in for a token with no table entry.
	UnknownChar = '?'

	// wordMarker replaces each word separator before tokenizing. It cannot
	// collide with a pattern since patterns are made of '.' and '-' only.
	wordMarker = "|"
)

// Decoded is the result of DecodeDetailed.
type Decoded struct {
	Text    string   `json:"text"`
	Unknown []string `json:"unknown,omitempty"`
	// Words counts runs of decoded characters. Separators at either end
	// add a space to Text but no word.
	Words int `json:"words"`
}

// Decode converts Morse to text using the standard table.
func Decode(morse string) string {
	return standard.Decode(morse)
}

// Decode converts Morse to lowercase text. Unrecognized tokens become '?'.
func (t *Table) Decode(morse string) string {
	return t.DecodeDetailed(morse).Text
}

// DecodeDetailed converts Morse to text, reports every token that had no
// table entry in input order, and counts the decoded words.
func (t *Table) DecodeDetailed(morse string) Decoded {
	// ReplaceAll scans left to right without overlap, so a run of four
	// spaces yields one marker plus a stray space that Fields discards.
	marked := strings.ReplaceAll(morse, WordSeparator, " "+wordMarker+" ")

	var (
		b       strings.Builder
		unknown []string
		words   int
		inWord  bool
	)
	for _, tok := range strings.Fields(marked) {
		if tok == wordMarker {
			b.WriteByte(' ')
			inWord = false
			continue
		}
		if !inWord {
			words++
			inWord = true
		}
		c, ok := t.LookupChar(tok)
		if !ok {
			unknown = append(unknown, tok)
			b.WriteRune(UnknownChar)
			continue
		}
		b.WriteRune(c)
	}

	return Decoded{Text: b.String(), Unknown: unknown, Words: words}
}
