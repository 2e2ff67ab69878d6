package celebration

import (
	"image/color"
	"math/rand"
	"time"
)

// Particle is a single confetti piece. Positions are in canvas units.
type Particle struct {
	X, Y   float32
	VX, VY float32
	Size   float32
	Age    time.Duration
	Life   time.Duration
	Color  color.NRGBA
}

// Alpha fades the particle out over the last third of its life.
func (particle Particle) Alpha() uint8 {
	if particle.Life <= 0 || particle.Age >= particle.Life {
		return 0
	}
	fadeStart := particle.Life * 2 / 3
	if particle.Age <= fadeStart {
		return particle.Color.A
	}
	remaining := float64(particle.Life-particle.Age) / float64(particle.Life-fadeStart)
	return uint8(float64(particle.Color.A) * remaining)
}

// Field simulates confetti inside a width x height area.
type Field struct {
	config    Config
	rng       *rand.Rand
	width     float32
	height    float32
	particles []Particle
}

// NewField creates an empty field.
func NewField(config Config, rng *rand.Rand) *Field {
	return &Field{
		config:    config,
		rng:       rng,
		particles: make([]Particle, 0, config.MaxParticles),
	}
}

// Resize sets the simulated area.
func (field *Field) Resize(width, height float32) {
	field.width = width
	field.height = height
}

// Spawn adds up to count particles above the top edge, respecting MaxParticles.
func (field *Field) Spawn(count int) {
	if field.width <= 0 || len(field.config.Colors) == 0 {
		return
	}
	for i := 0; i < count && len(field.particles) < field.config.MaxParticles; i++ {
		size := field.config.Size.Random(field.rng)
		field.particles = append(field.particles, Particle{
			X:     field.rng.Float32() * field.width,
			Y:     -size,
			VX:    field.config.Drift.Random(field.rng),
			VY:    field.config.FallSpeed.Random(field.rng),
			Size:  size,
			Life:  field.config.Lifetime.Random(field.rng),
			Color: field.config.Colors[field.rng.Intn(len(field.config.Colors))],
		})
	}
}

// Advance integrates motion and culls expired or fallen particles.
func (field *Field) Advance(delta time.Duration) {
	seconds := float32(delta.Seconds())
	alive := field.particles[:0]
	for _, particle := range field.particles {
		particle.Age += delta
		particle.VY += field.config.Gravity * seconds
		particle.X += particle.VX * seconds
		particle.Y += particle.VY * seconds
		if particle.Age >= particle.Life || particle.Y > field.height+particle.Size {
			continue
		}
		alive = append(alive, particle)
	}
	field.particles = alive
}

// Particles returns the live particles. The slice is reused by the next Advance.
func (field *Field) Particles() []Particle {
	return field.particles
}

// Clear removes every particle.
func (field *Field) Clear() {
	field.particles = field.particles[:0]
}
