package countdown

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCivilDateIn_UsesFixedOffset(t *testing.T) {
	tests := []struct {
		name     string
		instant  time.Time
		expected CivilDate
	}{
		{
			name:     "utc afternoon is next day in jst",
			instant:  time.Date(2024, 2, 26, 15, 0, 0, 0, time.UTC),
			expected: CivilDate{Year: 2024, Month: time.February, Day: 27},
		},
		{
			name:     "utc one second earlier is still previous day",
			instant:  time.Date(2024, 2, 26, 14, 59, 59, 0, time.UTC),
			expected: CivilDate{Year: 2024, Month: time.February, Day: 26},
		},
		{
			name:     "new year crosses early in jst",
			instant:  time.Date(2024, 12, 31, 15, 30, 0, 0, time.UTC),
			expected: CivilDate{Year: 2025, Month: time.January, Day: 1},
		},
		{
			name:     "input zone is irrelevant",
			instant:  time.Date(2024, 2, 26, 10, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60)),
			expected: CivilDate{Year: 2024, Month: time.February, Day: 27},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CivilDateIn(tt.instant, JST))
		})
	}
}

func TestTargetYear(t *testing.T) {
	tests := []struct {
		name     string
		today    CivilDate
		expected int
	}{
		{name: "january", today: CivilDate{2024, time.January, 15}, expected: 2024},
		{name: "day before", today: CivilDate{2024, time.February, 26}, expected: 2024},
		{name: "target day counts as passed", today: CivilDate{2024, time.February, 27}, expected: 2025},
		{name: "leap day", today: CivilDate{2024, time.February, 29}, expected: 2025},
		{name: "march first", today: CivilDate{2024, time.March, 1}, expected: 2025},
		{name: "new year's eve", today: CivilDate{2024, time.December, 31}, expected: 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TargetYear(tt.today, time.February, 27))
		})
	}
}

func TestIsTargetDay(t *testing.T) {
	assert.True(t, IsTargetDay(CivilDate{2024, time.February, 27}, time.February, 27))
	assert.False(t, IsTargetDay(CivilDate{2024, time.February, 26}, time.February, 27))
	assert.False(t, IsTargetDay(CivilDate{2024, time.March, 27}, time.February, 27))
}

func TestTargetInstant_IsJSTMidnight(t *testing.T) {
	target := TargetInstant(2024, time.February, 27, JST)
	assert.Equal(t, time.Date(2024, 2, 26, 15, 0, 0, 0, time.UTC), target.UTC())
}

func TestNextMidnight(t *testing.T) {
	now := time.Date(2024, 2, 27, 23, 59, 59, 0, JST)
	assert.Equal(t, time.Date(2024, 2, 28, 0, 0, 0, 0, JST), NextMidnight(now, JST))

	endOfYear := time.Date(2024, 12, 31, 8, 0, 0, 0, JST)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, JST), NextMidnight(endOfYear, JST))
}

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		name    string
		month   time.Month
		day     int
		wantErr bool
	}{
		{name: "default", month: time.February, day: 27},
		{name: "end of december", month: time.December, day: 31},
		{name: "leap day", month: time.February, day: 29, wantErr: true},
		{name: "april 31", month: time.April, day: 31, wantErr: true},
		{name: "month zero", month: 0, day: 1, wantErr: true},
		{name: "day zero", month: time.May, day: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTarget(tt.month, tt.day)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidTarget))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveZone(t *testing.T) {
	for _, name := range []string{"", "Asia/Tokyo", "JST"} {
		loc, err := ResolveZone(name)
		require.NoError(t, err)
		assert.Same(t, JST, loc)
	}

	loc, err := ResolveZone("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = ResolveZone("Not/AZone")
	assert.Error(t, err)
}

func TestResolveZone_NamedZones(t *testing.T) {
	tests := []struct {
		name           string
		at             time.Time
		expectedOffset int
	}{
		{name: "America/New_York", at: time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC), expectedOffset: -5 * 60 * 60},
		{name: "America/New_York", at: time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC), expectedOffset: -4 * 60 * 60},
		{name: "Europe/Paris", at: time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC), expectedOffset: 60 * 60},
		{name: "Asia/Taipei", at: time.Date(2024, time.February, 27, 0, 0, 0, 0, time.UTC), expectedOffset: 8 * 60 * 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ResolveZone(tt.name)
			require.NoError(t, err)
			_, offset := tt.at.In(loc).Zone()
			assert.Equal(t, tt.expectedOffset, offset)
		})
	}
}
