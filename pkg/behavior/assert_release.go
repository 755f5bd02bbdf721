//go:build !boidsdebug

package behavior

func assertFinite(Flock) {}
