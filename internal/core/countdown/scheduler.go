package countdown

import (
	"time"

	"taka8rie/internal/core/model"
)

// FrameRequester schedules a callback for the next rendered frame.
// The callback receives a monotonic timestamp measured by the host.
type FrameRequester interface {
	RequestFrame(callback func(timestamp time.Duration))
}

// Evaluator is the part of Engine the scheduler drives.
type Evaluator interface {
	Evaluate() bool
	Arrived() bool
	State() DisplayState
}

// Scheduler polls every frame and evaluates at most once per update interval.
// All methods must be called from the host's frame goroutine.
type Scheduler struct {
	evaluator  Evaluator
	frames     FrameRequester
	interval   time.Duration
	lastUpdate time.Duration
	primed     bool
	running    bool
	onFinished func(DisplayState)
}

// NewScheduler creates a scheduler for the evaluator.
func NewScheduler(evaluator Evaluator, frames FrameRequester, config model.SchedulerConfig) *Scheduler {
	if config.UpdateInterval <= 0 {
		config.UpdateInterval = time.Second
	}
	return &Scheduler{
		evaluator: evaluator,
		frames:    frames,
		interval:  config.UpdateInterval,
	}
}

// SetOnFinished sets a handler fired when the loop stops or is not started.
func (scheduler *Scheduler) SetOnFinished(handler func(DisplayState)) {
	scheduler.onFinished = handler
}

// Running reports whether frames are still being requested.
func (scheduler *Scheduler) Running() bool {
	return scheduler.running
}

// Start renders once immediately and begins the frame loop unless the
// celebration is already on display. It returns whether the loop is running.
func (scheduler *Scheduler) Start() bool {
	if scheduler.running {
		return true
	}

	scheduler.evaluator.Evaluate()
	if scheduler.evaluator.Arrived() {
		scheduler.finish()
		return false
	}

	scheduler.running = true
	scheduler.primed = false
	scheduler.frames.RequestFrame(scheduler.frame)
	return true
}

func (scheduler *Scheduler) frame(timestamp time.Duration) {
	if !scheduler.running {
		return
	}
	if !scheduler.primed {
		scheduler.lastUpdate = timestamp
		scheduler.primed = true
	}

	elapsed := timestamp - scheduler.lastUpdate
	if elapsed >= scheduler.interval {
		finished := scheduler.evaluator.Evaluate()
		scheduler.lastUpdate = timestamp - elapsed%scheduler.interval
		if finished {
			scheduler.running = false
			scheduler.finish()
			return
		}
	}

	scheduler.frames.RequestFrame(scheduler.frame)
}

func (scheduler *Scheduler) finish() {
	if scheduler.onFinished != nil {
		scheduler.onFinished(scheduler.evaluator.State())
	}
}
