// ABOUTME: Delayed-play scheduler
// ABOUTME: Cancellable one-shot timer that triggers Play after a delay
package player

import "time"

// PlayWithDelay schedules a Play after the given number of seconds.
// Negative delays are treated as zero (immediate play). At most one
// delayed play is outstanding per player: scheduling again cancels and
// joins the previous wait before starting the new one.
//
// An intervening explicit Stop does not cancel the pending play; only
// a newer PlayWithDelay or Close does.
func (p *Player) PlayWithDelay(seconds float64) {
	if p.closed.Load() {
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	d := time.Duration(seconds * float64(time.Second))

	p.cancelDelay()

	cancel := make(chan struct{})
	done := make(chan struct{})

	p.delayMu.Lock()
	p.delayCancel = cancel
	p.delayDone = done
	p.delayMu.Unlock()

	// Arm the timer before spawning so the delay is measured from this
	// call, not from when the goroutine gets scheduled.
	timer := p.after(d)

	go func() {
		defer close(done)

		select {
		case <-timer:
		case <-cancel:
			return
		}

		// The timer and a cancellation can fire together; the
		// cancellation wins. Channel identity under delayMu decides:
		// a superseding schedule or a close has already swapped
		// delayCancel out by the time its cancel channel is closed.
		p.delayMu.Lock()
		current := p.delayCancel == cancel
		p.delayMu.Unlock()
		if !current {
			return
		}

		p.Play()
	}()
}

// cancelDelay cancels any pending delayed play and blocks until its
// goroutine has exited.
func (p *Player) cancelDelay() {
	p.delayMu.Lock()
	cancel, done := p.delayCancel, p.delayDone
	p.delayCancel, p.delayDone = nil, nil
	p.delayMu.Unlock()

	if cancel == nil {
		return
	}
	close(cancel)
	<-done
}
