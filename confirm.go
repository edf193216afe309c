package ask

import "errors"

// Confirm is a yes/no Question. Reading ends after a single printable
// character, only y/Y/n/N are accepted, and an affirmative answer can
// expand into an owned list of follow-up questions.
type Confirm struct {
	Question
	Children []Asker // Asked by RunSequence when the answer is yes
}

// NewConfirm creates a yes/no question with def as the answer for an
// empty line. The length limit, auto-submit, and validation are fixed;
// options may still set the key, hooks, or hide the (Y/n) hint.
func NewConfirm(text string, def bool, opts ...Option) *Confirm {
	c := &Confirm{
		Question: Question{
			Text:        text,
			Strip:       true,
			ShowDefault: true,
			Default:     def,
		},
	}
	for _, opt := range opts {
		opt(&c.Question)
	}

	// Fixed regardless of options: one character, submitted the moment it
	// arrives, checked against exactly y/Y/n/N. A correction notice after
	// every lowercase "y" would be noise.
	c.Limit = 1
	c.AutoSubmit = true
	c.ShowCorrection = false
	c.Validate = func(s string) (any, error) {
		switch s {
		case "y", "Y":
			return true, nil
		case "n", "N":
			return false, nil
		}
		return nil, errors.New("please answer y or n")
	}
	return c
}

// Bool returns the answer as a bool. It is false until Run succeeds.
func (c *Confirm) Bool() bool {
	b, ok := c.Value.(bool)
	return ok && b
}

func (c *Confirm) runChildren() bool    { return c.Bool() && len(c.Children) > 0 }
func (c *Confirm) childAskers() []Asker { return c.Children }
