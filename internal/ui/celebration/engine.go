package celebration

import (
	"context"
	"image/color"
	"math/rand"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// FloatRange defines a float range with random sampling.
type FloatRange struct {
	Min float32
	Max float32
}

// Random returns a random value within the range.
func (value FloatRange) Random(rng *rand.Rand) float32 {
	if value.Max <= value.Min {
		return value.Min
	}
	return value.Min + rng.Float32()*(value.Max-value.Min)
}

// Config contains confetti timing and physics values.
type Config struct {
	FrameInterval time.Duration
	MaxParticles  int
	SpawnPerFrame int

	Lifetime  Range
	FallSpeed FloatRange
	Drift     FloatRange
	Size      FloatRange
	Gravity   float32

	Colors []color.NRGBA
}

// Engine draws falling confetti into a container without layout.
type Engine struct {
	mu      sync.Mutex
	config  Config
	layer   *fyne.Container
	field   *Field
	circles []*canvas.Circle
	cancel  context.CancelFunc
}

// New creates a confetti engine drawing into layer.
func New(config Config, layer *fyne.Container) *Engine {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Engine{
		config: config,
		layer:  layer,
		field:  NewField(config, rng),
	}
}

// Start begins the confetti shower. Calling Start while running restarts it.
func (engine *Engine) Start() {
	engine.start(context.Background(), engine.run)
}

// Stop terminates the shower and clears the layer.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
	engine.field.Clear()
	engine.mu.Unlock()

	fyne.Do(engine.render)
}

// Running reports whether the shower is active.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.cancel != nil
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func (engine *Engine) run(ctx context.Context) {
	for sleepWithContext(ctx, engine.config.FrameInterval) {
		fyne.Do(func() {
			if ctx.Err() != nil {
				return
			}
			engine.step(engine.config.FrameInterval)
		})
	}
}

// step advances the simulation by delta and redraws. Must run on the UI goroutine.
func (engine *Engine) step(delta time.Duration) {
	size := engine.layer.Size()

	engine.mu.Lock()
	engine.field.Resize(size.Width, size.Height)
	engine.field.Spawn(engine.config.SpawnPerFrame)
	engine.field.Advance(delta)
	engine.mu.Unlock()

	engine.render()
}

func (engine *Engine) render() {
	engine.mu.Lock()
	particles := engine.field.Particles()
	for len(engine.circles) < len(particles) {
		engine.circles = append(engine.circles, canvas.NewCircle(color.Transparent))
	}
	objects := make([]fyne.CanvasObject, 0, len(particles))
	for i, particle := range particles {
		circle := engine.circles[i]
		fill := particle.Color
		fill.A = particle.Alpha()
		circle.FillColor = fill
		circle.Resize(fyne.NewSquareSize(particle.Size))
		circle.Move(fyne.NewPos(particle.X-particle.Size/2, particle.Y-particle.Size/2))
		objects = append(objects, circle)
	}
	engine.mu.Unlock()

	engine.layer.Objects = objects
	engine.layer.Refresh()
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
