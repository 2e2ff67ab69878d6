package countdown

import (
	"time"

	"taka8rie/internal/core/model"
)

// Snapshot is the result of one countdown computation.
type Snapshot struct {
	Now       time.Time
	Today     CivilDate
	TargetDay bool

	// Target, TotalSeconds and Remaining are zero on the target day.
	Target       time.Time
	TotalSeconds int64
	Remaining    Breakdown
}

// DefaultConfig returns the February 27 JST countdown.
func DefaultConfig() model.CountdownConfig {
	return model.CountdownConfig{
		Month:    time.February,
		Day:      27,
		Location: JST,
	}
}

// Compute evaluates the countdown for a single instant.
func Compute(now time.Time, config model.CountdownConfig) (Snapshot, error) {
	if config.Location == nil {
		return Snapshot{}, ErrNoLocation
	}
	if err := ValidateTarget(config.Month, config.Day); err != nil {
		return Snapshot{}, err
	}

	snapshot := Snapshot{
		Now:   now,
		Today: CivilDateIn(now, config.Location),
	}
	snapshot.TargetDay = config.ForceArrived || IsTargetDay(snapshot.Today, config.Month, config.Day)
	if snapshot.TargetDay {
		return snapshot, nil
	}

	year := TargetYear(snapshot.Today, config.Month, config.Day)
	snapshot.Target = TargetInstant(year, config.Month, config.Day, config.Location)
	snapshot.TotalSeconds = RemainingSeconds(now, snapshot.Target)
	snapshot.Remaining = Decompose(snapshot.TotalSeconds)
	return snapshot, nil
}
