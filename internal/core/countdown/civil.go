package countdown

import (
	"errors"
	"fmt"
	"time"
	// Zones from settings must load on hosts without a system zoneinfo database.
	_ "time/tzdata"
)

// JST is Japan Standard Time. The offset is constant, so no tz database is needed.
var JST = time.FixedZone("Asia/Tokyo", 9*60*60)

var (
	// ErrInvalidTarget indicates a target month/day that does not occur every year.
	ErrInvalidTarget = errors.New("invalid target date")
	// ErrNoLocation indicates a config without a time zone.
	ErrNoLocation = errors.New("no time zone configured")
)

// CivilDate is a calendar date as perceived in a given zone.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// CivilDateIn resolves the civil date of the instant in loc.
func CivilDateIn(t time.Time, loc *time.Location) CivilDate {
	year, month, day := t.In(loc).Date()
	return CivilDate{Year: year, Month: month, Day: day}
}

// String formats the date as YYYY-MM-DD.
func (date CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", date.Year, int(date.Month), date.Day)
}

// Before reports whether the month/day of date precede month/day, ignoring the year.
func (date CivilDate) Before(month time.Month, day int) bool {
	if date.Month != month {
		return date.Month < month
	}
	return date.Day < day
}

// IsTargetDay reports whether today is the annual target day.
func IsTargetDay(today CivilDate, month time.Month, day int) bool {
	return today.Month == month && today.Day == day
}

// TargetYear returns the year of the next target day occurrence.
// Today itself counts as passed; callers handle the target day before asking.
func TargetYear(today CivilDate, month time.Month, day int) int {
	if today.Before(month, day) {
		return today.Year
	}
	return today.Year + 1
}

// TargetInstant returns midnight of the target civil date in loc.
func TargetInstant(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// NextMidnight returns the start of the civil day after now in loc.
func NextMidnight(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	year, month, day := local.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, loc)
}

// ValidateTarget checks that month/day names a date present in every year.
func ValidateTarget(month time.Month, day int) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month %d", ErrInvalidTarget, int(month))
	}
	// 2023 is not a leap year, so Feb 29 is rejected.
	last := time.Date(2023, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day < 1 || day > last {
		return fmt.Errorf("%w: %s %d", ErrInvalidTarget, month, day)
	}
	return nil
}

// ResolveZone returns the zone for name. Asia/Tokyo always maps to the fixed JST offset.
func ResolveZone(name string) (*time.Location, error) {
	switch name {
	case "", "Asia/Tokyo", "JST":
		return JST, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", name, err)
	}
	return loc, nil
}
