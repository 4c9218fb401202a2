package geometry

import "math"

// Vec2 represents a 2D point or vector in model space
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new 2D vector
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Mul multiplies the vector by a scalar
func (v Vec2) Mul(scalar float64) Vec2 {
	return Vec2{
		X: v.X * scalar,
		Y: v.Y * scalar,
	}
}

// Length returns the magnitude of the vector
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the distance between two points
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

// Cross returns the 2D cross product, the signed area of the
// parallelogram spanned by the two vectors
func (v Vec2) Cross(other Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Min returns a vector with the minimum components of two vectors
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{
		X: math.Min(v.X, other.X),
		Y: math.Min(v.Y, other.Y),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{
		X: math.Max(v.X, other.X),
		Y: math.Max(v.Y, other.Y),
	}
}
