package core

import "time"

// FixedStep paces a blocking loop at a steady ticks-per-second rate.
type FixedStep struct {
	step time.Duration
	last time.Time

	sleep func(time.Duration)
	now   func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS. A
// non-positive TPS disables pacing.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{sleep: time.Sleep, now: time.Now}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		f.step = 0
		return
	}
	f.step = time.Second / time.Duration(tps)
}

// Wait blocks until one tick has elapsed since the previous Wait returned.
func (f *FixedStep) Wait() {
	if f.step <= 0 {
		return
	}
	now := f.now()
	if !f.last.IsZero() {
		if remaining := f.step - now.Sub(f.last); remaining > 0 {
			f.sleep(remaining)
			now = now.Add(remaining)
		}
	}
	f.last = now
}
