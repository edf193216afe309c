package ask

import (
	"errors"
	"fmt"
	"io"
)

// ErrEOF is returned when the input source is exhausted before a line
// terminator arrives, which only happens on piped or scripted input.
var ErrEOF = errors.New("EOF")

// Control characters handled by the line reader.
const (
	charInterrupt = '\x03' // Ctrl-C
	charBackspace = '\b'
	charDelete    = '\x7f'
	charEscape    = '\x1b'
)

// LineOptions configures a single ReadLine call. The zero value reads an
// unlimited, plainly echoed line.
type LineOptions struct {
	Limit       int    // Maximum accepted characters; 0 means unlimited
	AutoSubmit  bool   // End the read the instant Limit is reached
	Secret      bool   // Echo a placeholder glyph instead of the character
	Placeholder string // Shown de-emphasized when the line is submitted empty
}

// secretGlyph is echoed in place of every accepted character when
// LineOptions.Secret is set. The buffer keeps the real characters.
const secretGlyph = "*"

// ReadLine reads one line character by character.
//
// Carriage return or line feed ends the read. Backspace and DEL remove
// the trailing buffer character and erase one display column. Escape
// sequences (arrow keys, function keys) are consumed and discarded so
// they can never corrupt the buffer. Ctrl-C prints a newline and
// terminates the process. Non-printable characters are ignored.
//
// The returned error is non-nil only when the source ran dry before a
// terminator; the partial buffer is still returned alongside it.
func (t *Terminal) ReadLine(opts LineOptions) (string, error) {
	var buf []rune
	var readErr error

loop:
	for {
		r, err := t.ReadChar()
		if err != nil {
			if errors.Is(err, io.EOF) {
				readErr = ErrEOF
			} else {
				readErr = fmt.Errorf("failed to read input: %w", err)
			}
			break
		}

		switch {
		case r == '\r' || r == '\n':
			break loop

		case r == charInterrupt:
			fmt.Fprint(t.out, "\n")
			t.exit(130)
			// Only reached when exit is stubbed; return what was typed.
			break loop

		case r == charBackspace || r == charDelete:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				fmt.Fprint(t.out, "\b \b")
			}

		case r == charEscape:
			t.drainEscape()

		case !printable(r):
			// Control characters other than the ones above are noise.

		default:
			if opts.Limit > 0 && len(buf) >= opts.Limit {
				continue
			}
			buf = append(buf, r)
			if opts.Secret {
				fmt.Fprint(t.out, secretGlyph)
			} else {
				fmt.Fprint(t.out, string(r))
			}
			if opts.Limit > 0 && opts.AutoSubmit && len(buf) == opts.Limit {
				break loop
			}
		}
	}

	if len(buf) == 0 && opts.Placeholder != "" {
		fmt.Fprint(t.out, t.Style(StyleFaint, opts.Placeholder))
	}
	fmt.Fprint(t.out, "\n")

	return string(buf), readErr
}

// drainEscape consumes the remainder of an escape sequence without
// touching the line buffer.
//
// In interactive raw mode the common arrow and function key sequences
// are three bytes total, so exactly two further blocking reads follow
// the ESC. On buffered input the sequence may be absent entirely (a
// transcript containing a bare ESC), so the drain attempts a
// non-blocking read of three bytes, then two; finding nothing is fine.
func (t *Terminal) drainEscape() {
	if t.interactive {
		for i := 0; i < 2; i++ {
			if _, err := t.ReadChar(); err != nil {
				return
			}
		}
		return
	}
	if b := t.ReadNonBlocking(3); len(b) == 0 {
		t.ReadNonBlocking(2)
	}
}

// printable reports whether r is a character the reader accepts into
// the buffer: the ASCII printable range plus everything above it.
func printable(r rune) bool {
	return r >= 32 && r < 127 || r > 127
}
