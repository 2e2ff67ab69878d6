package countdown

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"taka8rie/internal/core/model"

	"go.uber.org/zap"
)

var (
	// ErrComputation wraps any failure raised while evaluating the countdown.
	ErrComputation = errors.New("countdown computation failed")
	// ErrNoDisplay is returned by New without a display.
	ErrNoDisplay = errors.New("countdown display is nil")
	// ErrNoFormatter is returned by New without a formatter.
	ErrNoFormatter = errors.New("countdown formatter is nil")
)

// Style names a display style class.
type Style string

const (
	StyleLight  Style = "light"
	StyleDanger Style = "danger"
)

// Display is the UI region the engine renders into.
type Display interface {
	SetText(text string)
	Text() string
	AddStyle(style Style)
	RemoveStyle(style Style)
}

// Effect is the celebration started when the target day arrives.
type Effect interface {
	Start()
}

// Formatter provides the localized text forms.
type Formatter interface {
	Countdown(remaining Breakdown) (string, error)
	Arrived() string
	Failure() string
}

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock backed by time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

type effectStopper interface {
	Stop()
}

// Engine computes the countdown and renders it into a Display.
type Engine struct {
	mu            sync.Mutex
	config        model.CountdownConfig
	clock         Clock
	display       Display
	formatter     Formatter
	effect        Effect
	logger        *zap.Logger
	state         DisplayState
	effectStarted bool
	arrivedText   string
	events        []chan Event
}

// New creates an Engine with the provided configuration.
func New(config model.CountdownConfig, display Display, formatter Formatter, logger *zap.Logger) (*Engine, error) {
	if display == nil {
		return nil, ErrNoDisplay
	}
	if formatter == nil {
		return nil, ErrNoFormatter
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		config:    config,
		clock:     SystemClock,
		display:   display,
		formatter: formatter,
		logger:    logger,
		state:     StateCounting,
	}, nil
}

// SetEffect injects the celebration effect.
func (engine *Engine) SetEffect(effect Effect) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.effect = effect
}

// SetClock replaces the time source.
func (engine *Engine) SetClock(clock Clock) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.clock = clock
}

// SetFormatter replaces the text forms, e.g. after a language change. A nil formatter is ignored.
func (engine *Engine) SetFormatter(formatter Formatter) {
	if formatter == nil {
		return
	}
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.formatter = formatter
}

// UpdateConfig replaces the target configuration. Takes effect on the next evaluation.
func (engine *Engine) UpdateConfig(config model.CountdownConfig) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.config = config
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Close closes all observer channels.
func (engine *Engine) Close() {
	engine.mu.Lock()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// State returns the current display state.
func (engine *Engine) State() DisplayState {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state
}

// EffectStarted reports whether the celebration has been started this session.
func (engine *Engine) EffectStarted() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.effectStarted
}

// Arrived reports whether the display already shows the celebration message.
func (engine *Engine) Arrived() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.display.Text() == engine.formatter.Arrived()
}

// Evaluate computes the countdown once and renders the result.
// It returns true when the caller should stop scheduling further evaluations.
func (engine *Engine) Evaluate() (finished bool) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	now := engine.clock.Now()
	defer func() {
		if recovered := recover(); recovered != nil {
			finished = engine.failLocked(fmt.Errorf("%w: %v", ErrComputation, recovered), now)
		}
	}()

	snapshot, err := Compute(now, engine.config)
	if err != nil {
		return engine.failLocked(fmt.Errorf("%w: %w", ErrComputation, err), now)
	}
	if engine.state == StateError {
		engine.display.RemoveStyle(StyleDanger)
	}

	if snapshot.TargetDay {
		engine.arriveLocked(now)
		return true
	}

	if engine.effectStarted {
		engine.rolloverLocked(snapshot)
	}

	text, err := engine.formatter.Countdown(snapshot.Remaining)
	if err != nil {
		return engine.failLocked(fmt.Errorf("%w: format countdown: %w", ErrComputation, err), now)
	}
	engine.display.SetText(text)
	engine.state = StateCounting

	engine.emitLocked(Event{
		Type:         EventTick,
		State:        StateCounting,
		Remaining:    snapshot.Remaining,
		TotalSeconds: snapshot.TotalSeconds,
		Text:         text,
		At:           now,
	})
	return false
}

func (engine *Engine) arriveLocked(now time.Time) {
	text := engine.formatter.Arrived()
	engine.display.SetText(text)
	engine.display.AddStyle(StyleLight)

	firstArrival := engine.state != StateArrived
	engine.state = StateArrived

	if !engine.effectStarted {
		engine.effectStarted = true
		if engine.effect != nil {
			engine.effect.Start()
		}
		engine.logger.Info("Target day arrived, celebration started",
			zap.Time("at", now),
			zap.Bool("forced", engine.config.ForceArrived),
		)
	}

	if firstArrival || text != engine.arrivedText {
		engine.arrivedText = text
		engine.emitLocked(Event{
			Type:  EventArrived,
			State: StateArrived,
			Text:  text,
			At:    now,
		})
	}
}

// rolloverLocked resets display and effect state after the target day has passed.
func (engine *Engine) rolloverLocked(snapshot Snapshot) {
	engine.effectStarted = false
	engine.state = StateCounting
	engine.display.RemoveStyle(StyleLight)
	if stopper, ok := engine.effect.(effectStopper); ok {
		stopper.Stop()
	}

	engine.logger.Info("Target day passed, countdown reset",
		zap.Stringer("today", snapshot.Today),
		zap.Time("next_target", snapshot.Target),
	)
	engine.emitLocked(Event{
		Type:  EventRollover,
		State: StateCounting,
		At:    snapshot.Now,
	})
}

func (engine *Engine) failLocked(err error, now time.Time) bool {
	engine.logger.Error("Failed to evaluate countdown", zap.Error(err))

	text := engine.formatter.Failure()
	engine.display.SetText(text)
	engine.display.AddStyle(StyleDanger)
	engine.state = StateError

	engine.emitLocked(Event{
		Type:  EventError,
		State: StateError,
		Text:  text,
		Err:   err,
		At:    now,
	})
	return true
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
