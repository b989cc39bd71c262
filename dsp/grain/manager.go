package grain

import (
	"fmt"
	"math"
)

// Manager distributes a fractional number of active grains over a fixed
// pool. Grain i plays at volume clamp(active-i, 0, 1) and starts at phase
// i/floor(active), so whole grains are evenly spaced and the fractional
// grain fades in on top of them.
type Manager struct {
	phases  []float64
	volumes []float64
	active  float64
}

// NewManager returns a manager for maxGrains grains with one active grain.
func NewManager(maxGrains int) (*Manager, error) {
	if maxGrains < 1 {
		return nil, fmt.Errorf("grain manager needs at least one grain: %d", maxGrains)
	}

	m := &Manager{
		phases:  make([]float64, maxGrains),
		volumes: make([]float64, maxGrains),
	}
	m.ManagePhases(1)

	return m, nil
}

// ManagePhases recomputes phases and volumes for active grains. active is
// clamped to [1, maxGrains-0.01]; NaN is treated as 1.
func (m *Manager) ManagePhases(active float64) {
	upper := math.Max(1, float64(len(m.phases))-0.01)
	switch {
	case math.IsNaN(active) || active < 1:
		active = 1
	case active > upper:
		active = upper
	}

	m.active = active
	whole := math.Floor(active)

	for i := range m.phases {
		v := active - float64(i)
		switch {
		case v < 0:
			v = 0
		case v > 1:
			v = 1
		}

		m.volumes[i] = v
		m.phases[i] = math.Mod(float64(i)/whole, 1)
	}
}

// PhaseForGrain returns the start phase of grain i.
func (m *Manager) PhaseForGrain(i int) float64 { return m.phases[i] }

// VolumeForGrain returns the volume of grain i.
func (m *Manager) VolumeForGrain(i int) float64 { return m.volumes[i] }

// Active returns the clamped active-grain count.
func (m *Manager) Active() float64 { return m.active }

// MaxGrains returns the size of the pool.
func (m *Manager) MaxGrains() int { return len(m.phases) }
