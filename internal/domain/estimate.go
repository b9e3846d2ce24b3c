package domain

import "time"

// Estimate is a point-in-time progress reading: how far along the job is
// and how long it is expected to keep running, assuming constant throughput.
type Estimate struct {
	Percent   float64
	Remaining time.Duration
}

// EstimateProgress derives a percentage and an ETA from the copy counters
// and the elapsed wall time. With no files copied yet (or an empty job)
// there is no throughput to extrapolate from, so it returns 0% and zero
// remaining instead of dividing by zero.
func EstimateProgress(copied, total int, elapsed time.Duration) Estimate {
	if total <= 0 || copied <= 0 {
		return Estimate{}
	}
	fraction := float64(copied) / float64(total)
	if fraction > 1 {
		fraction = 1
	}
	estimatedTotal := time.Duration(float64(elapsed) / fraction)
	remaining := estimatedTotal - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return Estimate{
		Percent:   fraction * 100,
		Remaining: remaining,
	}
}
