package ask

import (
	"bufio"
	"io"
	"strings"
)

// newTestTerminal builds a non-interactive Terminal over a recorded
// transcript, with output captured in out and process exit recorded
// rather than performed. This mirrors how the engine behaves under
// piped input in production.
func newTestTerminal(input string, out io.Writer) *Terminal {
	t := &Terminal{
		out:         out,
		in:          bufio.NewReader(strings.NewReader(input)),
		interactive: false,
	}
	t.exit = func(int) {}
	return t
}

// newRawTestTerminal builds an interactive Terminal backed by a
// scripted raw device, for exercising the raw-mode read path (scoped
// raw toggling, blocking escape drains) without a real TTY.
func newRawTestTerminal(input string, out io.Writer) (*Terminal, *mockDevice) {
	d := newMockDevice(input)
	t := &Terminal{
		out:         out,
		in:          bufio.NewReader(strings.NewReader("")),
		device:      d,
		interactive: true,
	}
	t.exit = func(int) {}
	return t, d
}

// mockDevice implements rawDevice with a pre-scripted input sequence.
//
// It tracks raw-mode state transitions so tests can verify the scoped
// acquisition discipline: every read enters raw mode and leaves it
// again before returning.
type mockDevice struct {
	input       []rune
	pos         int
	rawMode     bool
	setRawCalls int
	restores    int
	closed      bool
}

func newMockDevice(input string) *mockDevice {
	return &mockDevice{input: []rune(input)}
}

func (m *mockDevice) SetRaw() error {
	m.rawMode = true
	m.setRawCalls++
	return nil
}

func (m *mockDevice) Restore() error {
	m.rawMode = false
	m.restores++
	return nil
}

func (m *mockDevice) ReadRune() (rune, int, error) {
	if m.pos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.pos]
	m.pos++
	return r, 1, nil
}

func (m *mockDevice) Close() error {
	m.closed = true
	return nil
}
