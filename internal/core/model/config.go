package model

import "time"

// CountdownConfig contains runtime settings for the countdown engine.
type CountdownConfig struct {
	// Month and Day name the annual target date.
	Month time.Month
	Day   int

	// Location is the zone the civil date is resolved in.
	Location *time.Location

	// ForceArrived makes every evaluation behave as if today were the target day.
	ForceArrived bool
}

// SchedulerConfig contains pacing options for the frame loop.
type SchedulerConfig struct {
	UpdateInterval time.Duration
}
