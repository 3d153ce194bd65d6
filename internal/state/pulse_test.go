package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPulseStaysInBounds(t *testing.T) {
	p := NewPulse()
	for i := 0; i < 1000; i++ {
		p.Tick()
		require.GreaterOrEqual(t, p.Radius, PulseMin)
		require.LessOrEqual(t, p.Radius, PulseMax)
	}
}

func TestPulseIsTriangular(t *testing.T) {
	p := NewPulse()
	var seen []float64
	for i := 0; i < 21; i++ {
		p.Tick()
		seen = append(seen, p.Radius)
	}
	want := []float64{
		10.5, 11, 11.5, 12, 12.5, 13, 13.5, 14, 14.5, 15,
		14.5, 14, 13.5, 13, 12.5, 12, 11.5, 11, 10.5, 10,
		10.5,
	}
	assert.Equal(t, want, seen)
}

func TestPulseFlipsOnlyAtBounds(t *testing.T) {
	p := NewPulse()
	prev := p
	for i := 0; i < 200; i++ {
		p.Tick()
		if p.Growing != prev.Growing {
			atBound := prev.Radius == PulseMin || prev.Radius == PulseMax
			assert.True(t, atBound, "flip at radius %v", prev.Radius)
		}
		prev = p
	}
}

func TestPulseRecoversFromOutOfRange(t *testing.T) {
	p := Pulse{Radius: 20, Growing: true}
	p.Tick()
	assert.False(t, p.Growing)
	assert.Equal(t, 19.5, p.Radius)

	p = Pulse{Radius: 4, Growing: false}
	p.Tick()
	assert.True(t, p.Growing)
	assert.Equal(t, 4.5, p.Radius)
}
