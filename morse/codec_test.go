package morse

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/dongsukag/morse-code/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single letter", "e", "."},
		{"word", "sos", "... --- ..."},
		{"two words", "ab cd", ".- -...    -.-. -.."},
		{"digits and punctuation", "1/2", ".---- -..-. ..---"},
		{"time string", "9:05 AM", "----. ---... ----- .....    .- --"},
		{"leading space", " a", "   .-"},
		{"trailing space", "a ", ".-   "},
		{"only unknown", "!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

func TestEncodeCaseFolding(t *testing.T) {
	assert.Equal(t, Encode("a"), Encode("A"))
	assert.Equal(t, Encode("hello world"), Encode("HeLLo WoRLD"))
}

func TestEncodeDropsUnknown(t *testing.T) {
	assert.Equal(t, Encode("ab"), Encode("a!b"))

	enc := Standard().EncodeDetailed("a!b#é")
	assert.Equal(t, ".- -...", enc.Morse)
	assert.Equal(t, "!#é", enc.Dropped)

	data, err := json.Marshal(enc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"morse": ".- -...", "dropped": "!#é"}`, string(data))
}

func TestEncodeNeverEndsWithCharSeparator(t *testing.T) {
	for _, in := range []string{"a", "ab", "a!", "abc?"} {
		out := Encode(in)
		require.NotEmpty(t, out)
		assert.NotEqual(t, ' ', out[len(out)-1], "Encode(%q) = %q", in, out)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "  ", ""},
		{"single", ".", "e"},
		{"word", "... --- ...", "sos"},
		{"four-space word gap", ".- -...    -.-. -..", "ab cd"},
		{"three-space word gap", ".- -...   -.-. -..", "ab cd"},
		{"unknown pattern", "......... ...", "?s"},
		{"leading separator", "   .-", " a"},
		{"trailing separator", ".-   ", "a "},
		{"double word gap", ".-       -...", "a  b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.in))
		})
	}
}

func TestDecodeDetailedReportsUnknown(t *testing.T) {
	dec := Standard().DecodeDetailed("......... .- ._.")
	assert.Equal(t, "?a?", dec.Text)
	assert.Equal(t, []string{".........", "._."}, dec.Unknown)

	dec = Standard().DecodeDetailed(".- -...")
	assert.Empty(t, dec.Unknown)
}

func TestDecodeDetailedCountsWords(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		text  string
		words int
	}{
		{"empty", "", "", 0},
		{"one word", "... --- ...", "sos", 1},
		{"two words", ".- -...    -.-. -..", "ab cd", 2},
		{"leading separator", "   .-", " a", 1},
		{"trailing separator", ".-   ", "a ", 1},
		{"double gap", ".-       -...", "a  b", 2},
		{"separator only", "   ", " ", 0},
		{"unknown tokens count", "......... ...", "?s", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := Standard().DecodeDetailed(tt.in)
			assert.Equal(t, tt.text, dec.Text)
			assert.Equal(t, tt.words, dec.Words)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"the quick brown fox jumps over the lazy dog",
		"0123456789",
		"/?,.+=:",
		"12:15 am",
		"a b c",
		" leading",
		"trailing ",
		"two  spaces",
	}

	for _, in := range inputs {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			assert.Equal(t, in, Decode(Encode(in)))
		})
	}
}

func TestRoundTripEveryPair(t *testing.T) {
	for _, p := range StandardPairs() {
		s := string(p.Char)
		assert.Equal(t, p.Pattern, Encode(s))
		assert.Equal(t, s, Decode(p.Pattern))
	}
}

func TestConcurrentReaders(t *testing.T) {
	const text = "cq cq de 9:05 pm"
	want := Encode(text)

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				m := Encode(text)
				if m != want {
					return errors.Newf("encode drift: %q", m)
				}
				if got := Decode(m); got != text {
					return errors.Newf("decode drift: %q", got)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
