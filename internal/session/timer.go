package session

import "time"

// Ticker abstracts time.Ticker so tests can drive the countdown.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

func newTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// startCountdownLocked begins a fresh per-question countdown, replacing
// any running one. Exactly one countdown is live at a time; the epoch
// token lets an already-scheduled tick from a replaced countdown detect
// it is stale.
func (e *Engine) startCountdownLocked() {
	e.stopCountdownLocked()

	e.epoch++
	e.remaining = e.limit
	e.stop = make(chan struct{})

	go e.runCountdown(e.newTicker(time.Second), e.stop, e.epoch)
}

func (e *Engine) stopCountdownLocked() {
	if e.stop != nil {
		close(e.stop)
		e.stop = nil
	}
	e.remaining = 0
}

func (e *Engine) runCountdown(t Ticker, stop <-chan struct{}, epoch int) {
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C():
			if done := e.tick(epoch); done {
				return
			}
		}
	}
}

// tick consumes one countdown second. Returns true when this countdown
// goroutine should exit, either because it went stale or because it
// expired and forced a transition.
func (e *Engine) tick(epoch int) bool {
	e.mu.Lock()

	if epoch != e.epoch || e.screen != ScreenQuiz {
		e.mu.Unlock()
		return true
	}

	e.remaining--
	remaining := e.remaining

	if remaining > 0 {
		e.mu.Unlock()
		if e.onTick != nil {
			e.onTick(remaining, remaining <= e.warnAt)
		}
		return false
	}

	// Expired. On the last question the only forward move is
	// submission; anywhere else, advance and start the next countdown.
	if e.state.CurrentIndex == len(e.state.Questions)-1 {
		e.submitLocked()
	} else {
		e.state.CurrentIndex++
		e.startCountdownLocked()
	}

	e.mu.Unlock()

	if e.onTick != nil {
		e.onTick(0, true)
	}
	return true
}
