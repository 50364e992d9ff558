package systems

import "github.com/pthm-cable/trails/components"

// StepResult summarizes one Step call.
type StepResult struct {
	Survived int
	Died     int
}

// ParticleSystem is the live particle collection. Only the canvas driver
// steps it; input handlers append to it between frames.
type ParticleSystem struct {
	Particles []components.Particle
}

// NewParticleSystem creates an empty collection with room for capacity
// particles.
func NewParticleSystem(capacity int) *ParticleSystem {
	return &ParticleSystem{
		Particles: make([]components.Particle, 0, capacity),
	}
}

// Append adds newly spawned particles.
func (s *ParticleSystem) Append(particles ...components.Particle) {
	s.Particles = append(s.Particles, particles...)
}

// Step replaces each particle with its next state, drops the dead ones and
// calls draw for every survivor in order. The slice is compacted in place.
func (s *ParticleSystem) Step(ph *Physics, draw func(p *components.Particle)) StepResult {
	alive := 0
	for i := range s.Particles {
		next := ph.Update(s.Particles[i])
		if !next.IsAlive() {
			continue
		}

		s.Particles[alive] = next
		if draw != nil {
			draw(&s.Particles[alive])
		}
		alive++
	}

	res := StepResult{Survived: alive, Died: len(s.Particles) - alive}

	// Release dropped tails so their trail slices can be collected
	clear(s.Particles[alive:])
	s.Particles = s.Particles[:alive]
	return res
}

// Cap enforces the population limit: when more than threshold particles are
// live, only the most recent keep survive. Returns how many were dropped.
func (s *ParticleSystem) Cap(threshold, keep int) int {
	n := len(s.Particles)
	if n <= threshold {
		return 0
	}
	if keep < 0 {
		keep = 0
	}
	if keep > n {
		keep = n
	}

	dropped := n - keep
	copy(s.Particles, s.Particles[dropped:])
	clear(s.Particles[keep:])
	s.Particles = s.Particles[:keep]
	return dropped
}

// Clear removes every particle.
func (s *ParticleSystem) Clear() {
	clear(s.Particles)
	s.Particles = s.Particles[:0]
}

// Count returns the current number of active particles.
func (s *ParticleSystem) Count() int {
	return len(s.Particles)
}
