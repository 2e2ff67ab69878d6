package celebration

import (
	"image/color"
	"time"
)

// DefaultConfig returns a gentle confetti shower.
func DefaultConfig() Config {
	return Config{
		FrameInterval: 33 * time.Millisecond,
		MaxParticles:  160,
		SpawnPerFrame: 3,
		Lifetime: Range{
			Min: 3 * time.Second,
			Max: 6 * time.Second,
		},
		FallSpeed: FloatRange{Min: 40, Max: 120},
		Drift:     FloatRange{Min: -30, Max: 30},
		Size:      FloatRange{Min: 4, Max: 9},
		Gravity:   25,
		Colors: []color.NRGBA{
			{R: 241, G: 70, B: 104, A: 255},
			{R: 232, G: 190, B: 66, A: 255},
			{R: 72, G: 199, B: 142, A: 255},
			{R: 62, G: 142, B: 208, A: 255},
			{R: 255, G: 255, B: 255, A: 255},
		},
	}
}
