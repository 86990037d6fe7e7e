package constants

// Particle Motion
const (
	// ExplodeDrag is the per-frame velocity retention while exploding (2% loss)
	ExplodeDrag = 0.98

	// HomingRate is the fraction of remaining distance covered per frame when homing
	HomingRate = 0.08

	// HomeEpsilon is the distance under which a homing particle counts as home
	HomeEpsilon = 0.01
)

// Explosion Impulse
const (
	// ExplosionRadius is the distance at which impulse strength falls to zero
	ExplosionRadius = 50.0

	// ImpulseMin and ImpulseMax bound the random impulse magnitude, max exclusive
	ImpulseMin = 10.0
	ImpulseMax = 30.0
)
