package state

const (
	PulseMin  = 10.0
	PulseMax  = 15.0
	PulseStep = 0.5
)

// Pulse drives the breathing radius of the active pin. It only advances when
// Tick is called, so a stalled loop never catches up in a jump.
type Pulse struct {
	Radius  float64
	Growing bool
}

// NewPulse starts at the lower bound, growing.
func NewPulse() Pulse {
	return Pulse{Radius: PulseMin, Growing: true}
}

// Tick advances the oscillation by one step. The direction flips when a
// bound is touched.
func (p *Pulse) Tick() {
	switch {
	case p.Radius >= PulseMax:
		p.Growing = false
		p.Radius -= PulseStep
	case p.Radius <= PulseMin:
		p.Growing = true
		p.Radius += PulseStep
	case p.Growing:
		p.Radius += PulseStep
	default:
		p.Radius -= PulseStep
	}
}
