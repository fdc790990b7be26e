package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "pattern %q", "...")

	assert.Contains(t, wrapped.Error(), `pattern "..."`)
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestSentinelConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  string
	}{
		{
			name:  "not found",
			err:   NewNotFoundError("config key %q", "cli.mode"),
			check: IsNotFoundError,
			want:  `config key "cli.mode": not found`,
		},
		{
			name:  "invalid request",
			err:   NewInvalidRequestError("pattern %q for %q", "", "a"),
			check: IsInvalidRequestError,
			want:  `pattern "" for "a": invalid request`,
		},
		{
			name:  "conflict",
			err:   NewConflictError("pattern %q claimed by %q and %q", ".-", "a", "b"),
			check: IsConflictError,
			want:  `pattern ".-" claimed by "a" and "b": conflict`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.True(t, tt.check(tt.err))
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestSentinelsDoNotCrossMatch(t *testing.T) {
	err := NewConflictError("duplicate")

	assert.False(t, IsNotFoundError(err))
	assert.False(t, IsInvalidRequestError(err))
	assert.False(t, IsConflictError(nil))
}

func TestHintSurvivesWrapping(t *testing.T) {
	err := WithHint(NewInvalidRequestError("bad pattern"), "patterns may only contain '.' and '-'")
	err = Wrap(err, "building table")

	assert.True(t, IsInvalidRequestError(err))
	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "patterns may only contain '.' and '-'", hints[0])
	assert.Equal(t, hints[0], FlattenHints(err))
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithHintf(nil, "hint %d", 1))
}

func ExampleNewConflictError() {
	err := NewConflictError("pattern %q", "---")
	fmt.Println(err)
	// Output: pattern "---": conflict
}
