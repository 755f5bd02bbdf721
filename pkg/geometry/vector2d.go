package geometry

import (
	"fmt"
	"math"
)

// Vector2D represents a 2D vector or point in cartesian space.
// Fields are exported because they are plain data: v := Vector2D{X: 1, Y: 2}
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewVector creates a new Vector2D.
func NewVector(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// String implements the fmt.Stringer interface.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// ---------------------------------------------------------------------
// Arithmetic Operations
// Value receivers, every method returns a new Vector2D.
// ---------------------------------------------------------------------

// Add adds two vectors and returns the result.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other vector from the current vector.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul scales the vector by a scalar value.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// Div divides both components by scalar.
// Division by zero is not guarded and follows IEEE 754 (Inf or NaN components),
// callers are expected to pass a non-zero scalar.
func (v Vector2D) Div(scalar float64) Vector2D {
	return Vector2D{v.X / scalar, v.Y / scalar}
}

// ---------------------------------------------------------------------
// Magnitude
// ---------------------------------------------------------------------

// Len calculates the magnitude (length) of the vector as sqrt(x² + y²).
// math.Sqrt is used instead of math.Hypot so results stay reproducible
// against a plain square-root implementation.
func (v Vector2D) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// CapMagnitude limits the magnitude of v to roughly capacity.
// When the vector is already short enough it is returned unchanged, otherwise
// both components are multiplied by 1 - (|v| - capacity)/|v|.
func (v Vector2D) CapMagnitude(capacity float64) Vector2D {
	m := v.Len()
	if m <= capacity {
		return v
	}
	scaler := 1 - (m-capacity)/m
	return Vector2D{v.X * scaler, v.Y * scaler}
}

// ---------------------------------------------------------------------
// Geometric Utilities
// ---------------------------------------------------------------------

// DistanceTo calculates the Euclidean distance to another vector.
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	return v.Sub(other).Len()
}

// ---------------------------------------------------------------------
// Comparison
// ---------------------------------------------------------------------

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector2D) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
