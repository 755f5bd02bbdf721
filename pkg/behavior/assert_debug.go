//go:build boidsdebug

package behavior

import "fmt"

// assertFinite panics on the first NaN or infinite coordinate of f.
func assertFinite(f Flock) {
	for i, b := range f {
		if !b.Location.IsFinite() || !b.Velocity.IsFinite() {
			panic(fmt.Sprintf("boid %d is not finite: location %v velocity %v", i, b.Location, b.Velocity))
		}
	}
}
