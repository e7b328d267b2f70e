// pkg/balance/attributes.go

// Package balance implements the per-player spring-damper balance model:
// derived physical stats, the balance-sphere proxy, and the graded
// loss-of-balance state machine.
package balance

import (
	"github.com/pitchworks/go-courtphys/pkg/config"
)

// referenceWeight is the weight (kg) at which weight-derived factors are 1.
const referenceWeight = 75.0

// statScale is the nominal top of the 0-100 rating scale used by
// gameplay attributes.
const statScale = 100.0

// PlayerAttributes are the immutable per-player, per-match inputs to the
// balance model. Ratings are on a 0-100 scale, weight in kg.
type PlayerAttributes struct {
	Strength      float64
	Agility       float64
	BalanceRating float64
	Weight        float64
}

// Derived holds the physical quantities computed from attributes. Each
// value is clamped to its configured band so extreme rosters stay playable.
type Derived struct {
	Agility       float64 // movement responsiveness; inverse to weight
	Stability     float64 // resistance to displacement; scales spring and damping
	PushPower     float64 // force a player can put into a contact
	EffectiveMass float64 // mass used by the balance integrator
}

// DerivePlayerPhysics maps attributes to derived stats with deterministic
// monotonic formulas: a higher balance rating never lowers stability, a
// higher weight never raises agility.
func DerivePlayerPhysics(attrs PlayerAttributes, tuning config.BalanceTuning) Derived {
	weightFactor := attrs.Weight / referenceWeight

	return Derived{
		Agility:       tuning.AgilityBand.Clamp((attrs.Agility / statScale) * 2 / weightFactor),
		Stability:     tuning.StabilityBand.Clamp((attrs.BalanceRating/statScale)*1.4 + weightFactor*0.6),
		PushPower:     tuning.PushPowerBand.Clamp(attrs.Strength * weightFactor * 3),
		EffectiveMass: attrs.Weight * tuning.MassScale,
	}
}

// WeightForceFactor exposes the weight-derived push-resistance factor for
// external visual mapping.
func WeightForceFactor(attrs PlayerAttributes) float64 {
	return attrs.Weight / referenceWeight
}
