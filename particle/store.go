package particle

import "github.com/lixenwraith/silence/sampler"

// Store owns the live particles, keyed by home position
// The live set is rebuilt on every Reconcile; order follows the samples (row-major)
type Store struct {
	byHome map[Home]*Particle
	order  []*Particle

	// Spare map swapped in on each rebuild to avoid reallocating
	next map[Home]*Particle
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		byHome: make(map[Home]*Particle),
		next:   make(map[Home]*Particle),
	}
}

// Reconcile makes the live set exactly the particles homed at the given samples
// Existing particles are reused in place with their glyph and scale refreshed; new homes get a resting particle
// Particles whose home is absent from samples are dropped
func (s *Store) Reconcile(samples []sampler.Sample, scale float64) {
	clear(s.next)
	s.order = s.order[:0]

	for i := range samples {
		smp := &samples[i]
		h := Home{X: smp.ScreenX, Y: smp.ScreenY}

		if _, dup := s.next[h]; dup {
			continue
		}

		p, ok := s.byHome[h]
		if !ok {
			p = New(h, smp.Char)
		}
		p.Char = smp.Char
		p.ScaleFactor = scale

		s.next[h] = p
		s.order = append(s.order, p)
	}

	s.byHome, s.next = s.next, s.byHome
}

// Get returns the live particle at home h
func (s *Store) Get(h Home) (*Particle, bool) {
	p, ok := s.byHome[h]
	return p, ok
}

// Len returns the number of live particles
func (s *Store) Len() int {
	return len(s.order)
}

// All returns the live particles in sample order
// The slice is owned by the store and valid until the next Reconcile
func (s *Store) All() []*Particle {
	return s.order
}

// Each calls fn for every live particle in sample order
func (s *Store) Each(fn func(*Particle)) {
	for _, p := range s.order {
		fn(p)
	}
}

// Update advances every live particle by one frame
func (s *Store) Update() {
	for _, p := range s.order {
		p.Update()
	}
}

// StartReturn switches every live particle back to homing
func (s *Store) StartReturn() {
	for _, p := range s.order {
		p.StartReturn()
	}
}

// Explode applies an impulse away from (x, y) to every live particle
func (s *Store) Explode(x, y float64, rng Rand) {
	for _, p := range s.order {
		Impulse(p, x, y, rng)
	}
}
