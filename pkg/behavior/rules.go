package behavior

import (
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
)

// Cohesion moves every boid toward the perceived centre of the others.
// The perceived centre of boid i is the mean location of all boids but i,
// and its adjustment is (centre - location) / centreFactor.
func Cohesion(f Flock, centreFactor float64) ([]geometry.Vector2D, error) {
	if len(f) < 2 {
		return nil, ErrFlockTooSmall
	}
	return towardOthersMean(f.Locations(), centreFactor), nil
}

// Alignment nudges every boid's velocity toward the mean velocity of the others,
// divided by velFactor.
func Alignment(f Flock, velFactor float64) ([]geometry.Vector2D, error) {
	if len(f) < 2 {
		return nil, ErrFlockTooSmall
	}
	return towardOthersMean(f.Velocities(), velFactor), nil
}

// towardOthersMean computes, for each i, (mean of values except i - values[i]) / factor.
// len(values) must be at least 2.
func towardOthersMean(values []geometry.Vector2D, factor float64) []geometry.Vector2D {
	var sum geometry.Vector2D
	for _, v := range values {
		sum = sum.Add(v)
	}
	others := float64(len(values) - 1)

	out := make([]geometry.Vector2D, len(values))
	for i, v := range values {
		perceived := sum.Sub(v).Div(others)
		out[i] = perceived.Sub(v).Div(factor)
	}
	return out
}

// Separation pushes every boid away from the boids closer than minDist.
// The adjustment is the raw sum of -(location_j - location_i) over the close
// neighbours j, unweighted. Boids without close neighbours get a zero vector.
// Every boid scans all the others: O(n²).
func Separation(f Flock, minDist float64) []geometry.Vector2D {
	out := make([]geometry.Vector2D, len(f))
	for i, me := range f {
		var push geometry.Vector2D
		for j, other := range f {
			if j == i {
				continue
			}
			if other.Location.DistanceTo(me.Location) < minDist {
				push = push.Sub(other.Location.Sub(me.Location))
			}
		}
		out[i] = push
	}
	return out
}

// SumRules adds each adjustment field to the velocities of f, in the order
// given, and returns the resulting flock. Locations are left untouched and f
// itself is not modified. Every field must have len(f) entries.
func SumRules(f Flock, fields ...[]geometry.Vector2D) Flock {
	next := make(Flock, len(f))
	copy(next, f)
	for _, field := range fields {
		for i := range next {
			next[i] = Boid{
				Location: next[i].Location,
				Velocity: next[i].Velocity.Add(field[i]),
			}
		}
	}
	return next
}
