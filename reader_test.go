package ask

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		opts       LineOptions
		expected   string
		wantOutput string
	}{
		{
			name:       "simple line",
			input:      "hello\n",
			expected:   "hello",
			wantOutput: "hello\n",
		},
		{
			name:       "carriage return terminates",
			input:      "abc\r",
			expected:   "abc",
			wantOutput: "abc\n",
		},
		{
			name:       "backspace removes trailing characters",
			input:      "hello\x7f\x7fo\n",
			expected:   "helo",
			wantOutput: "hello\b \b\b \bo\n",
		},
		{
			name:       "backspace on empty buffer is a no-op",
			input:      "\x7fab\n",
			expected:   "ab",
			wantOutput: "ab\n",
		},
		{
			name:       "length limit truncates",
			input:      "abcdef\n",
			opts:       LineOptions{Limit: 3},
			expected:   "abc",
			wantOutput: "abc\n",
		},
		{
			name:       "auto submit at limit needs no terminator",
			input:      "abc",
			opts:       LineOptions{Limit: 3, AutoSubmit: true},
			expected:   "abc",
			wantOutput: "abc\n",
		},
		{
			name:       "secret echo masks every character",
			input:      "hunter2\n",
			opts:       LineOptions{Secret: true},
			expected:   "hunter2",
			wantOutput: "*******\n",
		},
		{
			name:       "control characters are ignored",
			input:      "a\x01\tb\n",
			expected:   "ab",
			wantOutput: "ab\n",
		},
		{
			name:       "empty line shows the placeholder",
			input:      "\n",
			opts:       LineOptions{Placeholder: "main"},
			expected:   "",
			wantOutput: "main\n",
		},
		{
			name:       "escape sequence is drained from buffered input",
			input:      "ab\x1b[A\n\n", // drain consumes "[A" plus the first newline
			expected:   "ab",
			wantOutput: "ab\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			tm := newTestTerminal(tt.input, &out)

			line, err := tm.ReadLine(tt.opts)
			require.NoError(t, err, "ReadLine() should not fail")
			assert.Equal(t, tt.expected, line, "ReadLine() buffer should match")
			assert.Equal(t, tt.wantOutput, out.String(), "echoed output should match")
		})
	}
}

func TestReadLineEscapeInteractive(t *testing.T) {
	t.Parallel()

	// In raw mode the drain consumes exactly two characters after ESC.
	var out bytes.Buffer
	tm, device := newRawTestTerminal("ab\x1b[Ac\r", &out)

	line, err := tm.ReadLine(LineOptions{})
	require.NoError(t, err, "ReadLine() should not fail")
	assert.Equal(t, "abc", line, "escape bytes must never reach the buffer")
	assert.Equal(t, 7, device.setRawCalls, "every character including the drain should be a scoped raw read")
	assert.False(t, device.rawMode, "raw mode must be released when the read completes")
}

func TestReadLineTrailingEscape(t *testing.T) {
	t.Parallel()

	// A bare ESC at the end of a transcript drains nothing and the
	// exhausted source surfaces as ErrEOF.
	var out bytes.Buffer
	tm := newTestTerminal("a\x1b", &out)

	line, err := tm.ReadLine(LineOptions{})
	assert.Equal(t, "a", line, "partial buffer should be returned")
	assert.True(t, errors.Is(err, ErrEOF), "exhausted transcript should return ErrEOF")
}

func TestReadLineInterrupt(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tm := newTestTerminal("ab\x03cd\n", &out)

	exitCode := -1
	tm.exit = func(code int) { exitCode = code }

	line, err := tm.ReadLine(LineOptions{})
	require.NoError(t, err, "ReadLine() should not fail")
	assert.Equal(t, 130, exitCode, "interrupt should exit with the SIGINT status")
	assert.Equal(t, "ab", line, "buffer at the moment of interrupt")
	assert.Equal(t, "ab\n\n", out.String(), "interrupt should emit a newline before exiting")
}

func TestReadLineEOF(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tm := newTestTerminal("ab", &out)

	line, err := tm.ReadLine(LineOptions{})
	assert.Equal(t, "ab", line, "partial buffer should be returned with the error")
	assert.True(t, errors.Is(err, ErrEOF), "expected ErrEOF on exhausted input")
}
