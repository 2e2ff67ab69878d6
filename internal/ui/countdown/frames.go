package countdown

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

type ticker interface {
	Start()
	Stop()
}

// FrameDriver delivers frame callbacks from a Fyne animation. The animation
// only runs while a callback is pending.
type FrameDriver struct {
	mu        sync.Mutex
	origin    time.Time
	now       func() time.Time
	newTicker func(tick func()) ticker
	ticker    ticker
	pending   []func(time.Duration)
}

// NewFrameDriver creates a driver whose timestamps start at zero.
func NewFrameDriver() *FrameDriver {
	return &FrameDriver{
		origin:    time.Now(),
		now:       time.Now,
		newTicker: newAnimationTicker,
	}
}

// RequestFrame schedules callback for the next frame.
func (driver *FrameDriver) RequestFrame(callback func(timestamp time.Duration)) {
	driver.mu.Lock()
	driver.pending = append(driver.pending, callback)
	if driver.ticker != nil {
		driver.mu.Unlock()
		return
	}
	current := driver.newTicker(driver.tick)
	driver.ticker = current
	driver.mu.Unlock()

	current.Start()
}

// Stop drops pending callbacks and halts the animation.
func (driver *FrameDriver) Stop() {
	driver.mu.Lock()
	current := driver.ticker
	driver.ticker = nil
	driver.pending = nil
	driver.mu.Unlock()

	if current != nil {
		current.Stop()
	}
}

// Pending reports whether a callback waits for the next frame.
func (driver *FrameDriver) Pending() bool {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	return len(driver.pending) > 0
}

func (driver *FrameDriver) tick() {
	driver.mu.Lock()
	callbacks := driver.pending
	driver.pending = nil
	driver.mu.Unlock()

	timestamp := driver.now().Sub(driver.origin)
	for _, callback := range callbacks {
		callback(timestamp)
	}

	driver.mu.Lock()
	if len(driver.pending) > 0 || driver.ticker == nil {
		driver.mu.Unlock()
		return
	}
	current := driver.ticker
	driver.ticker = nil
	driver.mu.Unlock()

	current.Stop()
}

func newAnimationTicker(tick func()) ticker {
	animation := fyne.NewAnimation(time.Second, func(float32) {
		tick()
	})
	animation.Curve = fyne.AnimationLinear
	animation.RepeatCount = fyne.AnimationRepeatForever
	return animation
}
