// pkg/physics/vector.go
package physics

import "math"

// Vector3D represents a 3D vector with Z as the up axis.
type Vector3D struct {
	X float64
	Y float64
	Z float64
}

// Add returns the sum of two vectors
func (v Vector3D) Add(other Vector3D) Vector3D {
	return Vector3D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3D) Sub(other Vector3D) Vector3D {
	return Vector3D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector3D) Scale(factor float64) Vector3D {
	return Vector3D{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector3D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector3D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction
func (v Vector3D) Normalize() Vector3D {
	length := v.Length()
	if length == 0 {
		return Vector3D{}
	}
	return Vector3D{
		X: v.X / length,
		Y: v.Y / length,
		Z: v.Z / length,
	}
}

// Distance returns the distance between two vectors
func (v Vector3D) Distance(other Vector3D) float64 {
	return v.Sub(other).Length()
}

// HorizontalDistance returns the distance between two vectors projected
// onto the ground plane.
func (v Vector3D) HorizontalDistance(other Vector3D) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}

// Horizontal returns the vector with its vertical component dropped.
func (v Vector3D) Horizontal() Vector3D {
	return Vector3D{X: v.X, Y: v.Y}
}

// Dot returns the dot product of two vectors
func (v Vector3D) Dot(other Vector3D) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// IsFinite reports whether all components are finite numbers.
func (v Vector3D) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// ClampMagnitude limits the vector's magnitude to max, preserving direction.
func (v Vector3D) ClampMagnitude(max float64) Vector3D {
	if max <= 0 {
		return Vector3D{}
	}
	length := v.Length()
	if length <= max {
		return v
	}
	return v.Scale(max / length)
}

// Clamp restricts a scalar value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// DegToRad converts degrees to radians
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}
