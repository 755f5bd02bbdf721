package behavior

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func still(x, y float64) Boid {
	return Boid{Location: geometry.Vector2D{X: x, Y: y}}
}

func TestCohesion(t *testing.T) {
	f := Flock{still(0, 0), still(3, 0), still(0, 6)}

	tests := []struct {
		name   string
		factor float64
		want   []geometry.Vector2D
	}{
		{"factor 1", 1, []geometry.Vector2D{{X: 1.5, Y: 3}, {X: -3, Y: 3}, {X: 1.5, Y: -6}}},
		{"factor 2", 2, []geometry.Vector2D{{X: 0.75, Y: 1.5}, {X: -1.5, Y: 1.5}, {X: 0.75, Y: -3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cohesion(f, tt.factor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlignment(t *testing.T) {
	f := Flock{
		{Velocity: geometry.Vector2D{X: 2, Y: 0}},
		{Velocity: geometry.Vector2D{X: 0, Y: 2}},
		{Velocity: geometry.Vector2D{X: 0, Y: 0}},
	}
	got, err := Alignment(f, 2)
	require.NoError(t, err)

	// Mean of the others, minus own velocity, halved.
	want := []geometry.Vector2D{
		{X: (0 - 2) / 2.0, Y: (1 - 0) / 2.0},
		{X: (1 - 0) / 2.0, Y: (0 - 2) / 2.0},
		{X: (1 - 0) / 2.0, Y: (1 - 0) / 2.0},
	}
	assert.Equal(t, want, got)
}

func TestCohesionAlignment_TooSmall(t *testing.T) {
	for _, f := range []Flock{nil, {still(1, 1)}} {
		_, err := Cohesion(f, 1)
		assert.ErrorIs(t, err, ErrFlockTooSmall)
		_, err = Alignment(f, 1)
		assert.ErrorIs(t, err, ErrFlockTooSmall)
	}
}

func TestSeparation(t *testing.T) {
	t.Run("CloseNeighboursRepel", func(t *testing.T) {
		f := Flock{still(0, 0), still(10, 0), still(0, 20)}
		got := Separation(f, 30)
		want := []geometry.Vector2D{
			{X: -10, Y: -20},        // away from both
			{X: 10 + 10, Y: 0 - 20}, // (0,0) is 10 away, (0,20) is ~22.4 away
			{X: 0 - 10, Y: 20 + 20}, // (0,0) is 20 away, (10,0) is ~22.4 away
		}
		assert.Equal(t, want, got)
	})

	t.Run("NoCloseNeighbour", func(t *testing.T) {
		f := Flock{still(0, 0), still(100, 0), still(0, 100)}
		for i, v := range Separation(f, 30) {
			assert.Equal(t, geometry.Vector2D{}, v, "boid %d", i)
		}
	})

	t.Run("StrictlyLessThanMinDist", func(t *testing.T) {
		f := Flock{still(0, 0), still(30, 0)}
		got := Separation(f, 30)
		assert.Equal(t, []geometry.Vector2D{{}, {}}, got)
	})

	t.Run("SingleBoid", func(t *testing.T) {
		got := Separation(Flock{still(1, 1)}, 30)
		assert.Equal(t, []geometry.Vector2D{{}}, got)
	})
}

func TestSumRules(t *testing.T) {
	f := Flock{
		{Location: geometry.Vector2D{X: 1, Y: 1}, Velocity: geometry.Vector2D{X: 1, Y: 0}},
		{Location: geometry.Vector2D{X: 2, Y: 2}, Velocity: geometry.Vector2D{X: 0, Y: 1}},
	}
	a := []geometry.Vector2D{{X: 1, Y: 1}, {X: -1, Y: -1}}
	b := []geometry.Vector2D{{X: 0.5, Y: 0}, {X: 0, Y: 0.5}}

	got := SumRules(f, a, b)

	want := Flock{
		{Location: geometry.Vector2D{X: 1, Y: 1}, Velocity: geometry.Vector2D{X: 2.5, Y: 1}},
		{Location: geometry.Vector2D{X: 2, Y: 2}, Velocity: geometry.Vector2D{X: -1, Y: 0.5}},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, geometry.Vector2D{X: 1, Y: 0}, f[0].Velocity, "input flock must not change")
}
