package ask

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleInteractive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     StyleKind
		expected string
	}{
		{name: "bold", kind: StyleBold, expected: "\x1b[1mtext\x1b[0m"},
		{name: "faint", kind: StyleFaint, expected: "\x1b[2mtext\x1b[0m"},
		{name: "red", kind: StyleRed, expected: "\x1b[31mtext\x1b[0m"},
		{name: "green", kind: StyleGreen, expected: "\x1b[32mtext\x1b[0m"},
		{name: "yellow", kind: StyleYellow, expected: "\x1b[33mtext\x1b[0m"},
		{name: "cyan", kind: StyleCyan, expected: "\x1b[36mtext\x1b[0m"},
	}

	tm, _ := newRawTestTerminal("", &bytes.Buffer{})

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tm.Style(tt.kind, "text"), "Style() should wrap text in the palette codes")
		})
	}
}

func TestStyleNonInteractive(t *testing.T) {
	t.Parallel()

	tm := newTestTerminal("", &bytes.Buffer{})
	for kind := StyleBold; kind <= StyleCyan; kind++ {
		assert.Equal(t, "text", tm.Style(kind, "text"), "Style() must be the identity on non-interactive output")
	}
}

func TestStyleUnknownKind(t *testing.T) {
	t.Parallel()

	tm, _ := newRawTestTerminal("", &bytes.Buffer{})
	assert.Equal(t, "text", tm.Style(StyleKind(99), "text"), "unknown kinds should pass text through")
}
