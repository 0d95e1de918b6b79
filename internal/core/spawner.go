package core

import "time"

// Spawner fires at most once per Interval, measured against frame
// timestamps.
type Spawner struct {
	Interval time.Duration
	Last     time.Time
}

// NewSpawner creates a spawner whose first interval starts at start.
func NewSpawner(interval time.Duration, start time.Time) Spawner {
	return Spawner{Interval: interval, Last: start}
}

// Due reports whether at least Interval has elapsed since the last spawn.
func (s Spawner) Due(now time.Time) bool {
	return now.Sub(s.Last) >= s.Interval
}

// Mark records a spawn at now.
func (s *Spawner) Mark(now time.Time) {
	s.Last = now
}

// Tick marks and returns true when the spawner is due.
func (s *Spawner) Tick(now time.Time) bool {
	if !s.Due(now) {
		return false
	}
	s.Mark(now)
	return true
}
