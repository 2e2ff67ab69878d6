package testutil

import (
	"fmt"
	"sync"
	"time"

	"taka8rie/internal/core/countdown"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// JSTTime builds an instant from JST wall-clock fields.
func JSTTime(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour, minute, second, 0, countdown.JST)
}

// FakeClock is a settable Clock.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock creates a clock frozen at now.
func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

// Now returns the frozen instant.
func (clock *FakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

// Set moves the clock to now.
func (clock *FakeClock) Set(now time.Time) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = now
}

// Advance moves the clock forward.
func (clock *FakeClock) Advance(delta time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = clock.now.Add(delta)
}

// RecordingDisplay is an in-memory Display.
type RecordingDisplay struct {
	text   string
	styles map[countdown.Style]bool
	writes []string
}

// NewRecordingDisplay creates an empty display.
func NewRecordingDisplay() *RecordingDisplay {
	return &RecordingDisplay{styles: map[countdown.Style]bool{}}
}

func (display *RecordingDisplay) SetText(text string) {
	display.text = text
	display.writes = append(display.writes, text)
}

func (display *RecordingDisplay) Text() string {
	return display.text
}

func (display *RecordingDisplay) AddStyle(style countdown.Style) {
	display.styles[style] = true
}

func (display *RecordingDisplay) RemoveStyle(style countdown.Style) {
	delete(display.styles, style)
}

// HasStyle reports whether style is applied.
func (display *RecordingDisplay) HasStyle(style countdown.Style) bool {
	return display.styles[style]
}

// Writes returns every text rendered so far.
func (display *RecordingDisplay) Writes() []string {
	return append([]string(nil), display.writes...)
}

// StubFormatter renders language-neutral text.
type StubFormatter struct {
	Err error
}

func (formatter StubFormatter) Countdown(remaining countdown.Breakdown) (string, error) {
	if formatter.Err != nil {
		return "", formatter.Err
	}
	return fmt.Sprintf("left %d %d %d %d %d",
		remaining.Weeks, remaining.Days, remaining.Hours, remaining.Minutes, remaining.Seconds), nil
}

func (StubFormatter) Arrived() string {
	return "arrived"
}

func (StubFormatter) Failure() string {
	return "failure"
}

// FakeFrames collects frame requests and replays them on demand.
type FakeFrames struct {
	pending  func(time.Duration)
	requests int
}

// RequestFrame stores the callback for the next Fire.
func (frames *FakeFrames) RequestFrame(callback func(time.Duration)) {
	frames.pending = callback
	frames.requests++
}

// Fire runs the pending callback with timestamp. It reports whether one was pending.
func (frames *FakeFrames) Fire(timestamp time.Duration) bool {
	callback := frames.pending
	frames.pending = nil
	if callback == nil {
		return false
	}
	callback(timestamp)
	return true
}

// Pending reports whether a frame is requested.
func (frames *FakeFrames) Pending() bool {
	return frames.pending != nil
}

// Requests returns the number of frames requested so far.
func (frames *FakeFrames) Requests() int {
	return frames.requests
}
