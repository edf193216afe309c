// Command basic asks a single validated question.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/go-ask/ask"
)

func main() {
	t := ask.NewTerminal()
	defer t.Close()

	name := ask.NewQuestion("App name",
		ask.WithDefault("my-app"),
		ask.WithCorrection(),
		ask.WithValidate(func(s string) (any, error) {
			fixed := strings.Join(strings.Fields(s), "-")
			for _, r := range fixed {
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
					return nil, errors.New("letters and numbers only, please")
				}
			}
			return fixed, nil
		}),
	)

	value, err := name.Run(t)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("creating", value)
}
