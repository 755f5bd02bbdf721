package behavior

// CapVelocities returns a copy of f where every velocity went through CapMagnitude(maxVel).
func CapVelocities(f Flock, maxVel float64) Flock {
	next := make(Flock, len(f))
	for i, b := range f {
		next[i] = Boid{Location: b.Location, Velocity: b.Velocity.CapMagnitude(maxVel)}
	}
	return next
}

// Bounce reflects the velocity of a boid that is outside the arena and still
// moving away from it. Each axis is handled independently and the location is
// left unchanged: a boid outside the bounds but already heading back is not touched.
func Bounce(b Boid, bounds Bounds) Boid {
	v := b.Velocity
	if (b.Location.X < 0 && v.X < 0) || (b.Location.X > bounds.X && v.X > 0) {
		v.X = -v.X
	}
	if (b.Location.Y < 0 && v.Y < 0) || (b.Location.Y > bounds.Y && v.Y > 0) {
		v.Y = -v.Y
	}
	return Boid{Location: b.Location, Velocity: v}
}

// Move advances a boid by its velocity. The location is never clamped.
func Move(b Boid) Boid {
	return Boid{Location: b.Location.Add(b.Velocity), Velocity: b.Velocity}
}

// Tick computes the next flock from f:
//  1. cohesion, separation and alignment fields, all against f;
//  2. folded into the velocities in that order;
//  3. velocities capped to s.MaxVelocity;
//  4. boundary reflection;
//  5. position integration.
//
// f is never modified and the result never shares its backing array.
func Tick(s Settings, f Flock) (Flock, error) {
	cohesion, err := Cohesion(f, s.CentreFactor)
	if err != nil {
		return nil, err
	}
	separation := Separation(f, s.MinDistance)
	alignment, err := Alignment(f, s.VelocityFactor)
	if err != nil {
		return nil, err
	}

	next := CapVelocities(SumRules(f, cohesion, separation, alignment), s.MaxVelocity)
	for i, b := range next {
		next[i] = Move(Bounce(b, s.Bounds))
	}
	assertFinite(next)
	return next, nil
}
