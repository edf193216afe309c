package ask

// StyleKind selects one entry from the fixed styling palette.
type StyleKind int

// The palette. Colors are the standard 16-color foregrounds; Bold and
// Faint adjust weight only.
const (
	StyleBold StyleKind = iota
	StyleFaint
	StyleRed
	StyleGreen
	StyleYellow
	StyleCyan
)

// styleCodes maps each palette entry to its ANSI escape sequence. A
// single lookup table consulted by Style replaces per-color helper
// functions.
var styleCodes = map[StyleKind]string{
	StyleBold:   "\x1b[1m",
	StyleFaint:  "\x1b[2m",
	StyleRed:    "\x1b[31m",
	StyleGreen:  "\x1b[32m",
	StyleYellow: "\x1b[33m",
	StyleCyan:   "\x1b[36m",
}

// styleReset is the ANSI reset sequence appended after every styled span.
const styleReset = "\x1b[0m"

// Style wraps text in the escape codes for kind. It is a pure function
// of its inputs: the original string is never mutated, and when the
// terminal is non-interactive (including under EnvNonInteractive) the
// text is returned unchanged so transcripts stay byte-stable.
func (t *Terminal) Style(kind StyleKind, text string) string {
	if !t.interactive {
		return text
	}
	code, ok := styleCodes[kind]
	if !ok {
		return text
	}
	return code + text + styleReset
}
