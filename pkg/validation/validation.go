// Package validation rejects ill-formed per-call physics inputs before
// they can poison a tick: non-finite vectors, out-of-range time steps, and
// implausible player attributes. Rejected inputs are logged and skipped by
// callers so the simulation loop stays alive.
package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/pitchworks/go-courtphys/pkg/balance"
	"github.com/pitchworks/go-courtphys/pkg/physics"
)

// ErrInvalidInput tags every rejection from this package so callers can
// branch with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Attribute rating and weight bounds. Weights outside this range indicate
// corrupt roster data, not an unusual athlete.
const (
	MinRating = 0.0
	MaxRating = 100.0
	MinWeight = 40.0
	MaxWeight = 160.0
)

// ValidateVector rejects vectors with NaN or infinite components.
func ValidateVector(name string, v physics.Vector3D) error {
	if !v.IsFinite() {
		return fmt.Errorf("%w: %s has non-finite components (%v, %v, %v)", ErrInvalidInput, name, v.X, v.Y, v.Z)
	}
	return nil
}

// ValidateTimeStep rejects non-positive or over-ceiling time steps. A dt
// above the ceiling usually means the frame clock stalled; integrating it
// would tunnel entities through each other.
func ValidateTimeStep(dt, ceiling float64) error {
	if math.IsNaN(dt) || dt <= 0 {
		return fmt.Errorf("%w: time step must be positive, got %v", ErrInvalidInput, dt)
	}
	if dt > ceiling {
		return fmt.Errorf("%w: time step %v exceeds ceiling %v", ErrInvalidInput, dt, ceiling)
	}
	return nil
}

// ValidateAttributes rejects player attributes outside the supported
// rating and weight ranges.
func ValidateAttributes(attrs balance.PlayerAttributes) error {
	for _, r := range []struct {
		name  string
		value float64
	}{
		{"strength", attrs.Strength},
		{"agility", attrs.Agility},
		{"balanceRating", attrs.BalanceRating},
	} {
		if math.IsNaN(r.value) || r.value < MinRating || r.value > MaxRating {
			return fmt.Errorf("%w: %s must be in [%v, %v], got %v", ErrInvalidInput, r.name, MinRating, MaxRating, r.value)
		}
	}
	if math.IsNaN(attrs.Weight) || attrs.Weight < MinWeight || attrs.Weight > MaxWeight {
		return fmt.Errorf("%w: weight must be in [%v, %v] kg, got %v", ErrInvalidInput, MinWeight, MaxWeight, attrs.Weight)
	}
	return nil
}

// ValidateActionForce rejects action forces with ill-formed directions or
// non-positive durations.
func ValidateActionForce(force balance.ActionForce) error {
	if err := ValidateVector("action direction", force.Direction); err != nil {
		return err
	}
	if force.Direction.LengthSquared() == 0 {
		return fmt.Errorf("%w: action direction must be non-zero", ErrInvalidInput)
	}
	if math.IsNaN(force.Duration) || force.Duration <= 0 {
		return fmt.Errorf("%w: action duration must be positive, got %v", ErrInvalidInput, force.Duration)
	}
	return nil
}
