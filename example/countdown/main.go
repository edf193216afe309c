// Command countdown gives the user five seconds to cancel a default
// action with a key press.
package main

import (
	"fmt"
	"time"

	"github.com/go-ask/ask"
)

func main() {
	t := ask.NewTerminal()
	defer t.Close()

	fmt.Println("deploying in 5 seconds, press any key to cancel...")
	if _, pressed := t.WaitKey(5 * time.Second); pressed {
		fmt.Println("cancelled")
		return
	}
	fmt.Println("deploying")
}
