package game

import "time"

// Frame rate used while paused, regardless of the configured limit.
const pausedFPSLimit = 120

// FPSLimiter paces the frame loop to a fixed rate.
type FPSLimiter struct {
	limit int
	next  time.Time
}

// NewFPSLimiter returns a limiter for limit frames per second. Zero or less
// means unlimited.
func NewFPSLimiter(limit int) *FPSLimiter {
	return &FPSLimiter{limit: limit}
}

// FrameDuration is the target time per frame, or zero when unlimited.
func (f *FPSLimiter) FrameDuration(paused bool) time.Duration {
	limit := f.limit
	if paused && (limit <= 0 || limit > pausedFPSLimit) {
		limit = pausedFPSLimit
	}
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}

// Wait blocks until the next frame is due.
// Sleeps most of the gap and spins the last stretch for precision on high caps.
func (f *FPSLimiter) Wait(paused bool) {
	target := f.FrameDuration(paused)
	if target == 0 {
		f.next = time.Time{}
		return
	}

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
	}

	// resync after a hitch instead of racing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
