package ask

import "time"

type keyPress struct {
	r   rune
	err error
}

// WaitKey races a single character read against the duration d. It
// returns the key and true when one arrives in time, or 0 and false on
// timeout or read failure.
//
// On timeout the pending read is abandoned, not cancelled: terminal
// reads cannot be interrupted portably, so the goroutine stays blocked
// and the next character it receives is discarded. Use WaitKey for
// one-shot "press any key" windows, not in a loop.
func (t *Terminal) WaitKey(d time.Duration) (rune, bool) {
	ch := make(chan keyPress, 1)
	go func() {
		r, err := t.ReadChar()
		ch <- keyPress{r: r, err: err}
	}()

	select {
	case kp := <-ch:
		if kp.err != nil {
			return 0, false
		}
		return kp.r, true
	case <-time.After(d):
		return 0, false
	}
}
