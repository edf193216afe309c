package ask

import (
	"bufio"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// EnvNonInteractive is the environment variable that, when set to any
// non-empty value, forces buffered (non-raw) reads and disables all
// styling. It exists so recorded-transcript test runs behave
// deterministically regardless of the terminal they run under.
const EnvNonInteractive = "ASK_NONINTERACTIVE"

// rawDevice abstracts the raw-mode character source for testability and
// cross-platform compatibility.
//
// Implementations:
//   - realDevice: uses go-tty plus golang.org/x/term state management
//   - mockDevice: scripted input for testing the interactive path
type rawDevice interface {
	SetRaw() error                // Enter raw mode for immediate key delivery
	Restore() error               // Restore the terminal settings captured by SetRaw
	ReadRune() (rune, int, error) // Read a single character from input
	Close() error                 // Release the device; must tolerate repeated calls
}

// Terminal is the process-wide adapter between the prompt engine and the
// terminal device. It decides between raw single-character reads (when
// attached to a real terminal) and plain buffered reads (pipes, files,
// recorded transcripts), and it is the single gate for styling.
//
// A Terminal is not safe for concurrent use; the engine is synchronous
// and single-threaded by design.
type Terminal struct {
	out         io.Writer     // Styled output (colorable on Windows, stdout elsewhere)
	in          *bufio.Reader // Buffered source for non-interactive reads
	device      rawDevice     // Lazily opened raw device for interactive reads
	interactive bool
	exit        func(int) // Interrupt handler; os.Exit outside of tests
}

// NewTerminal creates a Terminal bound to the process stdin/stdout.
//
// The terminal is interactive only when both stdin and stdout are
// attached to a real terminal and EnvNonInteractive is unset.
func NewTerminal() *Terminal {
	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		// Use colorable for Windows ANSI escape sequence support
		output = colorable.NewColorableStdout()
	}

	interactive := os.Getenv(EnvNonInteractive) == "" &&
		isTerminalFd(os.Stdin.Fd()) && isTerminalFd(os.Stdout.Fd())

	return &Terminal{
		out:         output,
		in:          bufio.NewReader(os.Stdin),
		interactive: interactive,
		exit:        os.Exit,
	}
}

func isTerminalFd(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsInteractive reports whether reads go through the raw terminal
// device rather than the buffered reader.
func (t *Terminal) IsInteractive() bool {
	return t.interactive
}

// ReadChar reads a single character, blocking until one is available.
//
// When interactive, the terminal is switched to raw mode for the
// duration of this one read and restored before returning, so a
// panicking validator can never leave the terminal raw. When
// non-interactive it is a plain buffered read, keeping recorded
// transcripts reproducible.
func (t *Terminal) ReadChar() (rune, error) {
	if !t.interactive {
		r, _, err := t.in.ReadRune()
		return r, err
	}

	if t.device == nil {
		d, err := openDevice()
		if err != nil {
			return 0, err
		}
		t.device = d
	}

	if err := t.device.SetRaw(); err != nil {
		return 0, err
	}
	// Restore must run even if the read fails; its own error cannot be
	// allowed to mask the read result.
	defer t.device.Restore()

	r, _, err := t.device.ReadRune()
	return r, err
}

// ReadNonBlocking returns up to n bytes that are already buffered on the
// non-interactive source. It never blocks: when no data is buffered, the
// source is exhausted, or the terminal is interactive, it returns nil.
// "No data" is an expected outcome here, not an error.
func (t *Terminal) ReadNonBlocking(n int) []byte {
	if t.interactive || n <= 0 {
		return nil
	}
	avail := t.in.Buffered()
	if avail == 0 {
		return nil
	}
	if n > avail {
		n = avail
	}
	buf := make([]byte, n)
	read, err := t.in.Read(buf)
	if err != nil || read == 0 {
		return nil
	}
	return buf[:read]
}

// Close releases the raw device, if one was opened. Safe to call
// multiple times.
func (t *Terminal) Close() error {
	if t.device != nil {
		return t.device.Close()
	}
	return nil
}

// realDevice implements rawDevice over go-tty for production use.
//
// Raw mode is entered and left through golang.org/x/term so the exact
// pre-read state is captured and restored; SetRaw takes a fresh
// baseline every time, so repeated enter/exit cycles cannot drift.
// The closed flag prevents a double-close panic on Windows.
type realDevice struct {
	tty           *tty.TTY
	stdinFd       int
	originalState *term.State
	closed        bool
}

func openDevice() (*realDevice, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realDevice{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (d *realDevice) SetRaw() error {
	if term.IsTerminal(d.stdinFd) {
		state, err := term.GetState(d.stdinFd)
		if err != nil {
			return err
		}
		d.originalState = state

		if _, err := term.MakeRaw(d.stdinFd); err != nil {
			return err
		}
	}
	return nil
}

func (d *realDevice) Restore() error {
	if d.originalState != nil && term.IsTerminal(d.stdinFd) {
		err := term.Restore(d.stdinFd, d.originalState)
		// Reset so the next SetRaw captures a fresh baseline
		d.originalState = nil
		return err
	}
	return nil
}

func (d *realDevice) ReadRune() (rune, int, error) {
	r, err := d.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (d *realDevice) Close() error {
	if d.closed {
		return nil
	}
	if d.tty != nil {
		err := d.tty.Close()
		d.closed = true
		return err
	}
	return nil
}
