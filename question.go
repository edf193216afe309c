package ask

import (
	"fmt"
	"strings"
)

// Retry warnings printed by the engine. Validators supply all other
// user-facing error text themselves.
const (
	msgEnterValue     = "please enter a value"
	msgValueOrDefault = "please enter a value, or leave blank for the default"
)

// Question describes one prompt: the text to display, how input is
// read, and how the answer is checked. Construct it once with
// NewQuestion, run it (directly or through RunSequence), then read
// Value and RawInput.
//
// Value is populated only by a successful Run; a failed validation
// never touches it and simply re-enters the read loop.
type Question struct {
	Text           string                    // Display text; trailing ':' or '?' is preserved
	Key            string                    // Result-map key; empty keys are not collected
	Default        any                       // Used verbatim when input is empty; nil means required
	Strip          bool                      // Trim surrounding whitespace before validation
	Limit          int                       // Maximum accepted characters; 0 means unlimited
	AutoSubmit     bool                      // Submit the instant Limit is reached
	Secret         bool                      // Mask echoed characters
	ShowCorrection bool                      // Announce when validation changed the input
	ShowDefault    bool                      // Include the default in the rendered prompt
	Before         func()                    // Invoked before each render; may adjust Default
	Validate       func(string) (any, error) // nil accepts the input as-is

	Value    any    // The resolved answer, set by a successful Run
	RawInput string // The pre-validation input, unstripped
}

// Option configures a Question.
type Option func(*Question)

// WithKey sets the key under which the answer is collected by RunSequence.
func WithKey(key string) Option {
	return func(q *Question) { q.Key = key }
}

// WithDefault sets the value used when the user submits an empty line.
// Defaults are used verbatim, without stripping or validation, so they
// must already be well-formed.
func WithDefault(def any) Option {
	return func(q *Question) { q.Default = def }
}

// WithNoStrip disables whitespace trimming before validation.
func WithNoStrip() Option {
	return func(q *Question) { q.Strip = false }
}

// WithLimit truncates input to n characters.
func WithLimit(n int) Option {
	return func(q *Question) { q.Limit = n }
}

// WithAutoSubmit ends the read the instant the length limit is reached,
// without waiting for Enter. Meaningful only together with WithLimit.
func WithAutoSubmit() Option {
	return func(q *Question) { q.AutoSubmit = true }
}

// WithSecret masks echoed characters, for passwords and tokens.
func WithSecret() Option {
	return func(q *Question) { q.Secret = true }
}

// WithCorrection announces when the accepted value differs from what
// was typed.
func WithCorrection() Option {
	return func(q *Question) { q.ShowCorrection = true }
}

// WithHideDefault leaves the default out of the rendered prompt text.
func WithHideDefault() Option {
	return func(q *Question) { q.ShowDefault = false }
}

// WithBefore registers a hook invoked immediately before each render.
// Typical use is computing a default from an earlier answer:
//
//	name := ask.NewQuestion("App name", ask.WithKey("name"))
//	host := ask.NewQuestion("Hostname", ask.WithKey("host"))
//	host.Before = func() { host.Default = strings.ToLower(fmt.Sprint(name.Value)) + ".local" }
func WithBefore(fn func()) Option {
	return func(q *Question) { q.Before = fn }
}

// WithValidate sets the validation function. It receives the (possibly
// stripped) input and returns the final value, or an error whose text
// is shown to the user before re-prompting.
func WithValidate(fn func(string) (any, error)) Option {
	return func(q *Question) { q.Validate = fn }
}

// NewQuestion creates a Question with stripping and the default hint
// enabled, matching what interactive use almost always wants.
func NewQuestion(text string, opts ...Option) *Question {
	q := &Question{
		Text:        text,
		Strip:       true,
		ShowDefault: true,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Run executes the question against t until an acceptable answer is
// produced, mutating Value and RawInput.
//
// The retry loop is iterative, so pathological repeated-invalid input
// cannot grow the stack. Recoverable conditions (blank input without a
// default, all-whitespace input, validation rejection) are handled
// entirely inside the loop; the returned error is only ever an
// exhausted input source.
func (q *Question) Run(t *Terminal) (any, error) {
	for {
		if q.Before != nil {
			q.Before()
		}

		fmt.Fprint(t.out, t.Style(StyleBold, q.renderText()))

		placeholder := ""
		if q.Default != nil {
			placeholder = fmt.Sprint(q.Default)
		}
		raw, err := t.ReadLine(LineOptions{
			Limit:       q.Limit,
			AutoSubmit:  q.AutoSubmit,
			Secret:      q.Secret,
			Placeholder: placeholder,
		})
		q.RawInput = raw
		if err != nil {
			return nil, err
		}

		if raw == "" {
			if q.Default != nil {
				// Defaults are taken verbatim: no stripping, no validation.
				q.Value = q.Default
				return q.Value, nil
			}
			fmt.Fprintln(t.out, t.Style(StyleYellow, msgEnterValue))
			continue
		}

		input := raw
		if q.Strip {
			input = strings.TrimSpace(input)
			if input == "" {
				// All-whitespace input is rejected rather than treated as
				// empty-with-default.
				fmt.Fprintln(t.out, t.Style(StyleYellow, msgValueOrDefault))
				continue
			}
		}

		value := any(input)
		if q.Validate != nil {
			v, err := q.Validate(input)
			if err != nil {
				fmt.Fprintln(t.out, t.Style(StyleRed, err.Error()))
				continue
			}
			value = v
		}
		q.Value = value

		if q.ShowCorrection && (fmt.Sprint(value) != input || input != raw) {
			fmt.Fprintln(t.out, t.Style(StyleFaint, fmt.Sprintf("fixed that for ya: %v", value)))
		}
		return q.Value, nil
	}
}

// renderText builds the prompt line: trailing whitespace dropped, the
// default hint spliced in before the closing ':' or '?', one trailing
// space appended. Run applies the bold styling.
func (q *Question) renderText() string {
	text := strings.TrimRight(q.Text, " \t")
	punct := ":"
	if strings.HasSuffix(text, ":") || strings.HasSuffix(text, "?") {
		punct = text[len(text)-1:]
		text = strings.TrimRight(text[:len(text)-1], " \t")
	}
	if q.Default != nil && q.ShowDefault {
		text += " " + q.defaultHint()
	}
	return text + punct + " "
}

// defaultHint renders the parenthetical for the default value. Boolean
// defaults get the conventional (Y/n) / (y/N) form.
func (q *Question) defaultHint() string {
	if b, ok := q.Default.(bool); ok {
		if b {
			return "(Y/n)"
		}
		return "(y/N)"
	}
	return fmt.Sprintf("(blank for %v)", q.Default)
}

// resultKey, runChildren, and childAskers make *Question the leaf
// variant of the Asker tree.
func (q *Question) resultKey() string    { return q.Key }
func (q *Question) runChildren() bool    { return false }
func (q *Question) childAskers() []Asker { return nil }
