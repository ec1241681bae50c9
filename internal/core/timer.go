package core

import "time"

// FixedStep paces epochs at a steady rate and counts them, so a driver can
// run slower layers once every few epochs.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	epoch       int
}

// NewFixedStep constructs a FixedStep controller targeting the given epochs
// per second.
func NewFixedStep(hz int) *FixedStep {
	fs := &FixedStep{}
	fs.SetHz(hz)
	fs.accumulator = fs.step
	return fs
}

// SetHz changes the epoch rate. Non-positive rates fall back to 40Hz, the
// base rate times the fast-layer speedup.
func (f *FixedStep) SetHz(hz int) {
	if hz <= 0 {
		hz = 40
	}
	f.step = time.Second / time.Duration(hz)
}

// Period is the wall-clock budget of one epoch.
func (f *FixedStep) Period() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one epoch and
// counts the epoch when it does.
func (f *FixedStep) ShouldStep() bool {
	return f.advance(time.Now())
}

func (f *FixedStep) advance(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		f.epoch++
		return true
	}
	return false
}

// Epoch returns the number of epochs granted so far.
func (f *FixedStep) Epoch() int { return f.epoch }

// Every reports whether the current epoch falls on a k-epoch cadence.
func Every(epoch, k int) bool {
	if k <= 1 {
		return true
	}
	return epoch%k == 0
}
