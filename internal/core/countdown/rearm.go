package countdown

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

const rearmSlack = 50 * time.Millisecond

type stopTimer interface {
	Stop() bool
}

// Rearm restarts the countdown at the start of the next civil day, so a
// celebration ends once its day is over without restarting the process.
type Rearm struct {
	mu        sync.Mutex
	clock     Clock
	dispatch  func(func())
	restart   func()
	logger    *zap.Logger
	afterFunc func(time.Duration, func()) stopTimer
	timer     stopTimer
	deadline  time.Time
}

// NewRearm creates a Rearm. dispatch runs restart on the UI goroutine.
func NewRearm(clock Clock, dispatch func(func()), restart func(), logger *zap.Logger) *Rearm {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rearm{
		clock:    clock,
		dispatch: dispatch,
		restart:  restart,
		logger:   logger,
		afterFunc: func(delay time.Duration, fire func()) stopTimer {
			return time.AfterFunc(delay, fire)
		},
	}
}

// Arm schedules a restart at the next midnight in loc, replacing any pending one.
func (rearm *Rearm) Arm(loc *time.Location) time.Time {
	if loc == nil {
		loc = JST
	}

	rearm.mu.Lock()
	defer rearm.mu.Unlock()

	if rearm.timer != nil {
		rearm.timer.Stop()
	}
	now := rearm.clock.Now()
	deadline := NextMidnight(now, loc)
	rearm.deadline = deadline
	rearm.timer = rearm.afterFunc(deadline.Sub(now)+rearmSlack, rearm.fire)

	rearm.logger.Debug("Countdown restart scheduled", zap.Time("at", deadline))
	return deadline
}

// Cancel drops a pending restart.
func (rearm *Rearm) Cancel() {
	rearm.mu.Lock()
	defer rearm.mu.Unlock()
	if rearm.timer != nil {
		rearm.timer.Stop()
		rearm.timer = nil
	}
	rearm.deadline = time.Time{}
}

// Pending returns the scheduled restart time, if any.
func (rearm *Rearm) Pending() (time.Time, bool) {
	rearm.mu.Lock()
	defer rearm.mu.Unlock()
	return rearm.deadline, rearm.timer != nil
}

func (rearm *Rearm) fire() {
	rearm.mu.Lock()
	rearm.timer = nil
	rearm.deadline = time.Time{}
	rearm.mu.Unlock()

	rearm.dispatch(rearm.restart)
}
