package rendering

import (
	"time"

	"cubegrid/core"
)

// FrameStats counts presented frames and reports the frame rate once per
// interval.
type FrameStats struct {
	interval time.Duration
	now      func() time.Time
	report   func(fps float64, ft core.FrameTransforms)

	count int
	since time.Time
}

// NewFrameStats reports through fn every interval. A nil now uses time.Now.
func NewFrameStats(interval time.Duration, now func() time.Time, fn func(fps float64, ft core.FrameTransforms)) *FrameStats {
	if now == nil {
		now = time.Now
	}
	return &FrameStats{
		interval: interval,
		now:      now,
		report:   fn,
		since:    now(),
	}
}

func (s *FrameStats) ObserveFrame(frame uint64, ft core.FrameTransforms, next core.TransformState) {
	s.count++
	t := s.now()
	elapsed := t.Sub(s.since)
	if elapsed < s.interval {
		return
	}
	s.report(float64(s.count)/elapsed.Seconds(), ft)
	s.count = 0
	s.since = t
}
