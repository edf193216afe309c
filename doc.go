// Package ask provides an interactive terminal question engine: a
// character-level raw-input reader, a validate-retry prompt loop, and a
// sequencer that chains questions into a collected answer map.
//
// The engine is single-threaded and fully synchronous. Each question
// renders its text, reads one line character by character, and loops
// until the answer validates. On a real terminal, characters are read
// in raw mode so backspace, length limits with auto-submit, and masked
// echo work without OS line buffering; raw mode is held only for the
// duration of each single-character read, so the terminal is never left
// raw, even if a validator panics. On piped input (or whenever the
// ASK_NONINTERACTIVE environment variable is set), reads fall back to a
// plain buffered reader and styling is disabled, which makes recorded
// transcripts reproducible in tests.
//
// Quick start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/go-ask/ask"
//	)
//
//	func main() {
//		t := ask.NewTerminal()
//		defer t.Close()
//
//		name := ask.NewQuestion("Project name", ask.WithDefault("my-app"))
//		value, err := name.Run(t)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("creating", value)
//	}
//
// Sequences and conditional follow-ups:
//
// A Confirm is a yes/no question that may own children. When the user
// answers yes, the children run as a nested sequence and their answers
// replace the boolean in the result map:
//
//	smtp := ask.NewConfirm("Configure SMTP?", false, ask.WithKey("smtp"))
//	smtp.Children = []ask.Asker{
//		ask.NewQuestion("Email", ask.WithKey("email")),
//		ask.NewQuestion("Password", ask.WithKey("password"), ask.WithSecret()),
//	}
//
//	result, err := ask.RunSequence(t, []ask.Asker{smtp})
//	// answer "n":             result == {"smtp": false}
//	// answer "y", then both:  result == {"smtp": {"email": ..., "password": ...}}
//
// Validation:
//
// A validator maps the (stripped) input to a final value or rejects it
// with a message; the engine prints the message and re-prompts. All
// recoverable conditions are handled inside the retry loop, so Run
// returns an error only when piped input runs dry (ErrEOF). Ctrl-C is
// not an error at all: it terminates the process immediately.
//
//	port := ask.NewQuestion("Port", ask.WithValidate(func(s string) (any, error) {
//		n, err := strconv.Atoi(s)
//		if err != nil || n < 1 || n > 65535 {
//			return nil, errors.New("please enter a port between 1 and 65535")
//		}
//		return n, nil
//	}))
//
// Out of scope: multi-line editing, cursor movement beyond backspace,
// completion, and input history. The engine asks questions; it is not a
// line editor.
package ask
