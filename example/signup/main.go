// Command signup runs a small questionnaire: a project name, a hostname
// whose default is derived from the name, and an optional SMTP section
// behind a yes/no gate.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-ask/ask"
)

func main() {
	t := ask.NewTerminal()
	defer t.Close()

	name := ask.NewQuestion("Project name", ask.WithKey("name"))

	host := ask.NewQuestion("Hostname", ask.WithKey("host"))
	host.Before = func() {
		host.Default = strings.ToLower(fmt.Sprint(name.Value)) + ".local"
	}

	smtp := ask.NewConfirm("Configure SMTP credentials?", false, ask.WithKey("smtp"))
	smtp.Children = []ask.Asker{
		ask.NewQuestion("Email", ask.WithKey("email"), ask.WithValidate(func(s string) (any, error) {
			if !strings.Contains(s, "@") {
				return nil, errors.New("that does not look like an email address")
			}
			return s, nil
		})),
		ask.NewQuestion("Password", ask.WithKey("password"), ask.WithSecret()),
	}

	result, err := ask.RunSequence(t, []ask.Asker{name, host, smtp})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("collected: %#v\n", result)
}
