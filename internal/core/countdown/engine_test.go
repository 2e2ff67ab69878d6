package countdown_test

import (
	"errors"
	"testing"
	"time"

	"taka8rie/internal/core/countdown"
	"taka8rie/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type panickingFormatter struct {
	testutil.StubFormatter
}

func (panickingFormatter) Countdown(countdown.Breakdown) (string, error) {
	panic("formatter exploded")
}

func newEngine(t *testing.T, now time.Time) (*countdown.Engine, *testutil.RecordingDisplay, *testutil.FakeClock) {
	t.Helper()
	display := testutil.NewRecordingDisplay()
	clock := testutil.NewFakeClock(now)
	engine, err := countdown.New(countdown.DefaultConfig(), display, testutil.StubFormatter{}, testutil.NewTestLogger())
	require.NoError(t, err)
	engine.SetClock(clock)
	return engine, display, clock
}

func TestEngine_EvaluateCounting(t *testing.T) {
	engine, display, _ := newEngine(t, testutil.JSTTime(2024, time.February, 26, 12, 34, 56))
	events := engine.Subscribe(4)

	finished := engine.Evaluate()

	assert.False(t, finished)
	assert.Equal(t, "left 0 0 11 25 4", display.Text())
	assert.Equal(t, countdown.StateCounting, engine.State())
	assert.False(t, display.HasStyle(countdown.StyleLight))
	assert.False(t, engine.Arrived())

	event := <-events
	assert.Equal(t, countdown.EventTick, event.Type)
	assert.Equal(t, int64(41104), event.TotalSeconds)
	assert.Equal(t, "left 0 0 11 25 4", event.Text)
}

func TestEngine_EvaluateArrivedStartsEffectOnce(t *testing.T) {
	engine, display, clock := newEngine(t, testutil.JSTTime(2024, time.February, 27, 0, 0, 0))
	effect := new(testutil.MockEffect)
	effect.On("Start").Return().Once()
	engine.SetEffect(effect)
	events := engine.Subscribe(8)

	for i := 0; i < 3; i++ {
		assert.True(t, engine.Evaluate())
		clock.Advance(6 * time.Hour)
	}

	effect.AssertExpectations(t)
	effect.AssertNumberOfCalls(t, "Start", 1)
	assert.Equal(t, "arrived", display.Text())
	assert.True(t, display.HasStyle(countdown.StyleLight))
	assert.Equal(t, countdown.StateArrived, engine.State())
	assert.True(t, engine.EffectStarted())
	assert.True(t, engine.Arrived())

	event := <-events
	assert.Equal(t, countdown.EventArrived, event.Type)
	assert.Len(t, events, 0, "arrived is emitted once per arrival")
}

func TestEngine_EvaluateArrivedAnyTimeOfDay(t *testing.T) {
	for _, hour := range []int{0, 9, 15, 23} {
		engine, display, _ := newEngine(t, testutil.JSTTime(2024, time.February, 27, hour, 59, 59))
		assert.True(t, engine.Evaluate())
		assert.Equal(t, "arrived", display.Text())
	}
}

func TestEngine_ForceArrived(t *testing.T) {
	engine, display, _ := newEngine(t, testutil.JSTTime(2024, time.July, 1, 9, 0, 0))
	config := countdown.DefaultConfig()
	config.ForceArrived = true
	engine.UpdateConfig(config)
	effect := new(testutil.MockEffect)
	effect.On("Start").Return().Once()
	engine.SetEffect(effect)

	assert.True(t, engine.Evaluate())
	assert.Equal(t, []string{"arrived"}, display.Writes())
	effect.AssertExpectations(t)
}

func TestEngine_RolloverResetsInPlace(t *testing.T) {
	engine, display, clock := newEngine(t, testutil.JSTTime(2024, time.February, 27, 23, 59, 59))
	effect := new(testutil.MockStoppableEffect)
	effect.On("Start").Return().Once()
	effect.On("Stop").Return().Once()
	engine.SetEffect(effect)
	events := engine.Subscribe(8)

	require.True(t, engine.Evaluate())
	clock.Advance(time.Second)

	finished := engine.Evaluate()

	assert.False(t, finished)
	assert.False(t, engine.EffectStarted())
	assert.Equal(t, countdown.StateCounting, engine.State())
	assert.False(t, display.HasStyle(countdown.StyleLight))
	assert.Equal(t, "left 52 1 0 0 0", display.Text())
	effect.AssertExpectations(t)

	var types []countdown.EventType
	for len(events) > 0 {
		types = append(types, (<-events).Type)
	}
	assert.Equal(t, []countdown.EventType{countdown.EventArrived, countdown.EventRollover, countdown.EventTick}, types)
}

func TestEngine_RolloverThenNextArrivalRestartsEffect(t *testing.T) {
	engine, _, clock := newEngine(t, testutil.JSTTime(2024, time.February, 27, 12, 0, 0))
	effect := new(testutil.MockEffect)
	effect.On("Start").Return().Twice()
	engine.SetEffect(effect)

	engine.Evaluate()
	clock.Set(testutil.JSTTime(2024, time.March, 1, 0, 0, 0))
	engine.Evaluate()
	clock.Set(testutil.JSTTime(2025, time.February, 27, 0, 0, 0))
	engine.Evaluate()

	effect.AssertNumberOfCalls(t, "Start", 2)
}

func TestEngine_EvaluateErrors(t *testing.T) {
	tests := []struct {
		name      string
		configure func(engine *countdown.Engine)
		wantErr   error
	}{
		{
			name: "missing location",
			configure: func(engine *countdown.Engine) {
				config := countdown.DefaultConfig()
				config.Location = nil
				engine.UpdateConfig(config)
			},
			wantErr: countdown.ErrNoLocation,
		},
		{
			name: "invalid target",
			configure: func(engine *countdown.Engine) {
				config := countdown.DefaultConfig()
				config.Month = 13
				engine.UpdateConfig(config)
			},
			wantErr: countdown.ErrInvalidTarget,
		},
		{
			name: "formatter error",
			configure: func(engine *countdown.Engine) {
				engine.SetFormatter(testutil.StubFormatter{Err: errors.New("missing message")})
			},
			wantErr: countdown.ErrComputation,
		},
		{
			name: "formatter panic",
			configure: func(engine *countdown.Engine) {
				engine.SetFormatter(panickingFormatter{})
			},
			wantErr: countdown.ErrComputation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)
			display := testutil.NewRecordingDisplay()
			engine, err := countdown.New(countdown.DefaultConfig(), display, testutil.StubFormatter{}, zap.New(core))
			require.NoError(t, err)
			engine.SetClock(testutil.NewFakeClock(testutil.JSTTime(2024, time.June, 1, 0, 0, 0)))
			tt.configure(engine)
			events := engine.Subscribe(2)

			var finished bool
			assert.NotPanics(t, func() {
				finished = engine.Evaluate()
			})

			assert.True(t, finished)
			assert.Equal(t, "failure", display.Text())
			assert.True(t, display.HasStyle(countdown.StyleDanger))
			assert.Equal(t, countdown.StateError, engine.State())
			assert.Equal(t, 1, logs.Len())

			event := <-events
			assert.Equal(t, countdown.EventError, event.Type)
			assert.True(t, errors.Is(event.Err, tt.wantErr), "got %v", event.Err)
			assert.True(t, errors.Is(event.Err, countdown.ErrComputation))
		})
	}
}

func TestEngine_CloseClosesSubscribers(t *testing.T) {
	engine, _, _ := newEngine(t, testutil.JSTTime(2024, time.June, 1, 0, 0, 0))
	events := engine.Subscribe(1)

	engine.Close()

	_, ok := <-events
	assert.False(t, ok)
}

func TestEngine_SuccessfulEvaluationClearsDanger(t *testing.T) {
	engine, display, _ := newEngine(t, testutil.JSTTime(2024, time.February, 26, 0, 0, 0))
	engine.SetFormatter(testutil.StubFormatter{Err: errors.New("missing words")})

	require.True(t, engine.Evaluate())
	assert.True(t, display.HasStyle(countdown.StyleDanger))
	assert.Equal(t, "failure", display.Text())

	engine.SetFormatter(testutil.StubFormatter{})
	assert.False(t, engine.Evaluate())
	assert.False(t, display.HasStyle(countdown.StyleDanger))
	assert.Equal(t, countdown.StateCounting, engine.State())
	assert.Equal(t, "left 0 1 0 0 0", display.Text())
}

type japaneseFormatter struct {
	testutil.StubFormatter
}

func (japaneseFormatter) Arrived() string {
	return "arrived-ja"
}

func TestEngine_LanguageChangeWhileArrivedEmitsEvent(t *testing.T) {
	engine, display, _ := newEngine(t, testutil.JSTTime(2024, time.February, 27, 10, 0, 0))
	events := engine.Subscribe(4)

	require.True(t, engine.Evaluate())
	first := <-events
	assert.Equal(t, "arrived", first.Text)

	engine.SetFormatter(japaneseFormatter{})
	require.True(t, engine.Evaluate())
	assert.Equal(t, "arrived-ja", display.Text())
	require.Len(t, events, 1)
	second := <-events
	assert.Equal(t, countdown.EventArrived, second.Type)
	assert.Equal(t, "arrived-ja", second.Text)

	require.True(t, engine.Evaluate())
	assert.Len(t, events, 0, "unchanged text is not re-emitted")
}

func TestNew_RejectsMissingCollaborators(t *testing.T) {
	tests := []struct {
		name      string
		display   countdown.Display
		formatter countdown.Formatter
		wantErr   error
	}{
		{name: "nil display", formatter: testutil.StubFormatter{}, wantErr: countdown.ErrNoDisplay},
		{name: "nil formatter", display: testutil.NewRecordingDisplay(), wantErr: countdown.ErrNoFormatter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := countdown.New(countdown.DefaultConfig(), tt.display, tt.formatter, nil)
			assert.Nil(t, engine)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEngine_SetFormatterIgnoresNil(t *testing.T) {
	engine, display, _ := newEngine(t, testutil.JSTTime(2024, time.February, 26, 0, 0, 0))
	engine.SetFormatter(nil)

	assert.NotPanics(t, func() {
		assert.False(t, engine.Evaluate())
	})
	assert.Equal(t, "left 0 1 0 0 0", display.Text())
}
