package behavior

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
)

// ErrFlockTooSmall is returned when a flock has fewer than two boids.
// Cohesion and alignment average over the n-1 other boids, so n must be >= 2.
var ErrFlockTooSmall = errors.New("flock needs at least two boids")

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// The name "boid" corresponds to a shortened version of "bird-oid object".
// https://en.wikipedia.org/wiki/Boids
//
// A Boid is a value: every tick builds new boids instead of mutating them.
type Boid struct {
	Location geometry.Vector2D `json:"location"`
	Velocity geometry.Vector2D `json:"velocity"`
}

// Flock is the ordered collection of boids. Index i designates the same boid
// in a flock and in every adjustment field computed from it.
type Flock []Boid

// Bounds is the width and height of the arena, whose corner is the origin.
type Bounds struct {
	X, Y float64
}

// Settings holds the physics constants of a simulation. The core never mutates it.
type Settings struct {
	Bounds         Bounds
	MaxVelocity    float64 // velocity magnitude cap
	MinDistance    float64 // separation radius
	CentreFactor   float64 // cohesion divisor
	VelocityFactor float64 // alignment divisor
}

// RandomPoint returns a point with x in [0, bounds.X) and y in [0, bounds.Y).
func RandomPoint(rng *rand.Rand, bounds Bounds) geometry.Vector2D {
	return geometry.NewVector(rng.Float64()*bounds.X, rng.Float64()*bounds.Y)
}

// NewRandomBoid creates a boid with a random location inside bounds.
// The velocity is drawn per axis in [0, maxVel) and then capped, so it is not
// uniformly distributed over a disc.
func NewRandomBoid(rng *rand.Rand, bounds Bounds, maxVel float64) Boid {
	location := RandomPoint(rng, bounds)
	velocity := RandomPoint(rng, Bounds{X: maxVel, Y: maxVel}).CapMagnitude(maxVel)
	return Boid{Location: location, Velocity: velocity}
}

// NewRandomFlock creates n independent random boids drawn from rng.
func NewRandomFlock(rng *rand.Rand, bounds Bounds, maxVel float64, n int) (Flock, error) {
	if n < 2 {
		return nil, fmt.Errorf("cannot create a flock of %d: %w", n, ErrFlockTooSmall)
	}
	flock := make(Flock, n)
	for i := range flock {
		flock[i] = NewRandomBoid(rng, bounds, maxVel)
	}
	return flock, nil
}

// Locations returns the positions of the flock, index by index.
func (f Flock) Locations() []geometry.Vector2D {
	out := make([]geometry.Vector2D, len(f))
	for i, b := range f {
		out[i] = b.Location
	}
	return out
}

// Velocities returns the velocities of the flock, index by index.
func (f Flock) Velocities() []geometry.Vector2D {
	out := make([]geometry.Vector2D, len(f))
	for i, b := range f {
		out[i] = b.Velocity
	}
	return out
}
