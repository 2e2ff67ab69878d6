package celebration

import (
	"image/color"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	config := DefaultConfig()
	config.MaxParticles = 10
	config.Lifetime = Range{Min: time.Second, Max: time.Second}
	config.FallSpeed = FloatRange{Min: 100, Max: 100}
	config.Drift = FloatRange{Min: 10, Max: 10}
	config.Size = FloatRange{Min: 4, Max: 4}
	config.Gravity = 0
	return config
}

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, time.Second, Range{Min: time.Second, Max: time.Second}.Random(rng))
	assert.Equal(t, time.Second, Range{Min: time.Second, Max: 0}.Random(rng))
	for i := 0; i < 100; i++ {
		value := Range{Min: time.Second, Max: 2 * time.Second}.Random(rng)
		assert.GreaterOrEqual(t, value, time.Second)
		assert.Less(t, value, 2*time.Second)

		speed := FloatRange{Min: -5, Max: 5}.Random(rng)
		assert.GreaterOrEqual(t, speed, float32(-5))
		assert.LessOrEqual(t, speed, float32(5))
	}
}

func TestFieldSpawn(t *testing.T) {
	tests := []struct {
		name     string
		width    float32
		colors   []color.NRGBA
		spawn    []int
		expected int
	}{
		{name: "spawns requested count", width: 100, spawn: []int{3}, expected: 3},
		{name: "caps at max particles", width: 100, spawn: []int{6, 6}, expected: 10},
		{name: "no area yet", width: 0, spawn: []int{3}, expected: 0},
		{name: "no colors", width: 100, colors: []color.NRGBA{}, spawn: []int{3}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig()
			if tt.colors != nil {
				config.Colors = tt.colors
			}
			field := NewField(config, rand.New(rand.NewSource(1)))
			field.Resize(tt.width, 200)
			for _, count := range tt.spawn {
				field.Spawn(count)
			}
			assert.Len(t, field.Particles(), tt.expected)
		})
	}
}

func TestFieldSpawn_StartsAboveTopEdge(t *testing.T) {
	field := NewField(testConfig(), rand.New(rand.NewSource(7)))
	field.Resize(100, 200)
	field.Spawn(5)

	for _, particle := range field.Particles() {
		assert.Equal(t, float32(-4), particle.Y)
		assert.GreaterOrEqual(t, particle.X, float32(0))
		assert.LessOrEqual(t, particle.X, float32(100))
		assert.Contains(t, testConfig().Colors, particle.Color)
	}
}

func TestFieldAdvance_MovesParticles(t *testing.T) {
	field := NewField(testConfig(), rand.New(rand.NewSource(1)))
	field.Resize(100, 1000)
	field.Spawn(1)
	start := field.Particles()[0]

	field.Advance(500 * time.Millisecond)

	require.Len(t, field.Particles(), 1)
	moved := field.Particles()[0]
	assert.InDelta(t, start.X+5, moved.X, 0.001)
	assert.InDelta(t, start.Y+50, moved.Y, 0.001)
	assert.Equal(t, 500*time.Millisecond, moved.Age)
}

func TestFieldAdvance_AppliesGravity(t *testing.T) {
	config := testConfig()
	config.Gravity = 20
	field := NewField(config, rand.New(rand.NewSource(1)))
	field.Resize(100, 1000)
	field.Spawn(1)

	field.Advance(500 * time.Millisecond)

	require.Len(t, field.Particles(), 1)
	assert.InDelta(t, 110, field.Particles()[0].VY, 0.001)
}

func TestFieldAdvance_CullsParticles(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		field := NewField(testConfig(), rand.New(rand.NewSource(1)))
		field.Resize(100, 1000)
		field.Spawn(3)
		field.Advance(time.Second)
		assert.Empty(t, field.Particles())
	})

	t.Run("below bottom edge", func(t *testing.T) {
		config := testConfig()
		config.Lifetime = Range{Min: time.Minute, Max: time.Minute}
		field := NewField(config, rand.New(rand.NewSource(1)))
		field.Resize(100, 20)
		field.Spawn(3)
		field.Advance(100 * time.Millisecond)
		assert.Len(t, field.Particles(), 3)
		field.Advance(200 * time.Millisecond)
		assert.Empty(t, field.Particles())
	})
}

func TestFieldClear(t *testing.T) {
	field := NewField(testConfig(), rand.New(rand.NewSource(1)))
	field.Resize(100, 100)
	field.Spawn(4)
	field.Clear()
	assert.Empty(t, field.Particles())
}

func TestParticleAlpha(t *testing.T) {
	base := Particle{Life: 3 * time.Second, Color: color.NRGBA{R: 1, A: 255}}

	tests := []struct {
		name     string
		age      time.Duration
		life     time.Duration
		expected uint8
	}{
		{name: "fresh", age: 0, life: base.Life, expected: 255},
		{name: "before fade", age: 2 * time.Second, life: base.Life, expected: 255},
		{name: "half faded", age: 2500 * time.Millisecond, life: base.Life, expected: 127},
		{name: "expired", age: 3 * time.Second, life: base.Life, expected: 0},
		{name: "no life", age: 0, life: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			particle := base
			particle.Age = tt.age
			particle.Life = tt.life
			assert.Equal(t, tt.expected, particle.Alpha())
		})
	}
}
