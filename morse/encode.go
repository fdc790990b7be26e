package morse

import "strings"

const (
	// CharSeparator sits between two encoded characters of one word.
	CharSeparator = " "
	// WordSeparator is appended for every space in the input text.
	WordSeparator = "   "
)

// Encoded is the result of EncodeDetailed.
type Encoded struct {
	Morse   string `json:"morse"`
	Dropped string `json:"dropped,omitempty"`
}

// Encode converts text to Morse using the standard table.
func Encode(text string) string {
	return standard.Encode(text)
}

// Encode converts text to Morse. Characters without a pattern are dropped.
func (t *Table) Encode(text string) string {
	return t.EncodeDetailed(text).Morse
}

// EncodeDetailed converts text to Morse and reports the characters that had
// no pattern, in input order.
func (t *Table) EncodeDetailed(text string) Encoded {
	var (
		b       strings.Builder
		dropped []rune
	)
	b.Grow(len(text) * 4)

	for _, r := range text {
		if r == ' ' {
			b.WriteString(WordSeparator)
			continue
		}
		p, ok := t.LookupPattern(r)
		if !ok {
			dropped = append(dropped, r)
			continue
		}
		b.WriteString(p)
		b.WriteString(CharSeparator)
	}

	return Encoded{
		Morse:   strings.TrimSuffix(b.String(), CharSeparator),
		Dropped: string(dropped),
	}
}
