//go:build !tinygo

package hal

import "time"

const tickDur = time.Millisecond

// hostTime converts wall-clock progress into millisecond ticks.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step emits the ticks elapsed since the previous call. The first call emits first.
func (t *hostTime) step(first uint64) { t.stepAt(time.Now(), first) }

func (t *hostTime) stepAt(now time.Time, first uint64) {
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.emit(first)
		return
	}

	if now.After(t.last) {
		t.acc += now.Sub(t.last)
	}
	t.last = now

	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc %= tickDur
	t.emit(ticks)
}

// advance emits exactly n ticks regardless of the wall clock.
func (t *hostTime) advance(n uint64) { t.emit(n) }

func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
