package countdown

import (
	"fmt"
	"time"
)

// Breakdown is a whole-second duration split into display units.
type Breakdown struct {
	Weeks   int64
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Decompose converts total seconds by plain base conversion (7 days, 24 hours, 60, 60).
func Decompose(total int64) Breakdown {
	if total < 0 {
		total = 0
	}
	seconds := total % 60
	totalMinutes := total / 60
	minutes := totalMinutes % 60
	totalHours := totalMinutes / 60
	hours := totalHours % 24
	totalDays := totalHours / 24
	return Breakdown{
		Weeks:   totalDays / 7,
		Days:    totalDays % 7,
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
	}
}

// TotalSeconds recombines the breakdown.
func (breakdown Breakdown) TotalSeconds() int64 {
	return (((breakdown.Weeks*7+breakdown.Days)*24+breakdown.Hours)*60+breakdown.Minutes)*60 + breakdown.Seconds
}

// String is a language-neutral rendering used in logs.
func (breakdown Breakdown) String() string {
	return fmt.Sprintf("%dw %dd %02d:%02d:%02d",
		breakdown.Weeks, breakdown.Days, breakdown.Hours, breakdown.Minutes, breakdown.Seconds)
}

// RemainingSeconds returns whole seconds from now until target, floored at zero.
func RemainingSeconds(now, target time.Time) int64 {
	remaining := target.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int64(remaining / time.Second)
}
