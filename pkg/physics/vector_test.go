// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestVector3D_Add(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector3D
		v2       Vector3D
		expected Vector3D
	}{
		{
			name:     "positive_components",
			v1:       Vector3D{X: 1, Y: 2, Z: 3},
			v2:       Vector3D{X: 4, Y: 5, Z: 6},
			expected: Vector3D{X: 5, Y: 7, Z: 9},
		},
		{
			name:     "negative_components",
			v1:       Vector3D{X: -1, Y: -2, Z: -3},
			v2:       Vector3D{X: 1, Y: 2, Z: 3},
			expected: Vector3D{},
		},
		{
			name:     "zero_vector",
			v1:       Vector3D{X: 7, Y: -4, Z: 0.5},
			v2:       Vector3D{},
			expected: Vector3D{X: 7, Y: -4, Z: 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Add(tt.v2)
			if result != tt.expected {
				t.Errorf("Add() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector3D_Length(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector3D
		expected float64
	}{
		{
			name:     "unit_x",
			v:        Vector3D{X: 1},
			expected: 1,
		},
		{
			name:     "pythagorean_triple",
			v:        Vector3D{X: 3, Y: 4},
			expected: 5,
		},
		{
			name:     "three_dimensional",
			v:        Vector3D{X: 2, Y: 3, Z: 6},
			expected: 7,
		},
		{
			name:     "zero_vector",
			v:        Vector3D{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Length()
			if math.Abs(result-tt.expected) > epsilon {
				t.Errorf("Length() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector3D_Normalize(t *testing.T) {
	t.Run("unit_length_result", func(t *testing.T) {
		v := Vector3D{X: 3, Y: -4, Z: 12}
		result := v.Normalize()
		if math.Abs(result.Length()-1) > epsilon {
			t.Errorf("Normalize() length = %v, expected 1", result.Length())
		}
	})

	t.Run("zero_vector_stays_zero", func(t *testing.T) {
		result := Vector3D{}.Normalize()
		if result != (Vector3D{}) {
			t.Errorf("Normalize() of zero vector = %v, expected zero", result)
		}
	})
}

func TestVector3D_ClampMagnitude(t *testing.T) {
	t.Run("under_limit_unchanged", func(t *testing.T) {
		v := Vector3D{X: 1, Y: 1}
		result := v.ClampMagnitude(5)
		if result != v {
			t.Errorf("ClampMagnitude() = %v, expected unchanged %v", result, v)
		}
	})

	t.Run("over_limit_clamped", func(t *testing.T) {
		v := Vector3D{X: 6, Y: 8}
		result := v.ClampMagnitude(5)
		if math.Abs(result.Length()-5) > epsilon {
			t.Errorf("ClampMagnitude() length = %v, expected 5", result.Length())
		}
	})

	t.Run("direction_preserved", func(t *testing.T) {
		v := Vector3D{X: 10, Y: -10, Z: 5}
		result := v.ClampMagnitude(2)
		want := v.Normalize()
		got := result.Normalize()
		if math.Abs(got.X-want.X) > epsilon ||
			math.Abs(got.Y-want.Y) > epsilon ||
			math.Abs(got.Z-want.Z) > epsilon {
			t.Errorf("ClampMagnitude() direction = %v, expected %v", got, want)
		}
	})
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{"below_range", -5, 0, 10, 0},
		{"above_range", 15, 0, 10, 10},
		{"inside_range", 5, 0, 10, 5},
		{"at_min", 0, 0, 10, 0},
		{"at_max", 10, 0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Clamp(tt.value, tt.min, tt.max)
			if result != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, expected %v",
					tt.value, tt.min, tt.max, result, tt.expected)
			}
		})
	}
}

func TestAngleConversion(t *testing.T) {
	t.Run("deg_to_rad", func(t *testing.T) {
		if math.Abs(DegToRad(180)-math.Pi) > epsilon {
			t.Errorf("DegToRad(180) = %v, expected pi", DegToRad(180))
		}
	})

	t.Run("rad_to_deg", func(t *testing.T) {
		if math.Abs(RadToDeg(math.Pi/2)-90) > epsilon {
			t.Errorf("RadToDeg(pi/2) = %v, expected 90", RadToDeg(math.Pi/2))
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		for _, deg := range []float64{0, 30, 45, 90, 270, 360} {
			if math.Abs(RadToDeg(DegToRad(deg))-deg) > epsilon {
				t.Errorf("round trip of %v degrees = %v", deg, RadToDeg(DegToRad(deg)))
			}
		}
	})
}

func TestVector3D_IsFinite(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector3D
		expected bool
	}{
		{"finite", Vector3D{X: 1, Y: 2, Z: 3}, true},
		{"nan_component", Vector3D{X: math.NaN()}, false},
		{"positive_infinity", Vector3D{Y: math.Inf(1)}, false},
		{"negative_infinity", Vector3D{Z: math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.IsFinite() != tt.expected {
				t.Errorf("IsFinite() = %v, expected %v", tt.v.IsFinite(), tt.expected)
			}
		})
	}
}

func TestVector3D_NaNPropagates(t *testing.T) {
	v := Vector3D{X: math.NaN()}
	sum := v.Add(Vector3D{X: 1})
	if !math.IsNaN(sum.X) {
		t.Error("Expected NaN to propagate through Add")
	}
	if !math.IsNaN(v.Length()) {
		t.Error("Expected NaN to propagate through Length")
	}
}

func TestVector3D_HorizontalDistance(t *testing.T) {
	a := Vector3D{X: 0, Y: 0, Z: 100}
	b := Vector3D{X: 3, Y: 4, Z: -50}
	if d := a.HorizontalDistance(b); math.Abs(d-5) > epsilon {
		t.Errorf("HorizontalDistance() = %v, expected 5 (Z must be ignored)", d)
	}
}
