// pkg/balance/action.go
package balance

import (
	"github.com/pitchworks/go-courtphys/pkg/config"
	"github.com/pitchworks/go-courtphys/pkg/physics"
)

// ActionType identifies the gameplay action behind a force.
type ActionType int

const (
	ActionPush ActionType = iota
	ActionShoot
	ActionTackle
	ActionDribbleBreak
)

// String returns the action name for events and logs.
func (t ActionType) String() string {
	switch t {
	case ActionPush:
		return "push"
	case ActionShoot:
		return "shoot"
	case ActionTackle:
		return "tackle"
	case ActionDribbleBreak:
		return "dribble_break"
	default:
		return "unknown"
	}
}

// ActionForce is a time-bounded directional force representing a gameplay
// action. Forces are ephemeral: consumed within one or a few ticks, then
// discarded.
type ActionForce struct {
	Direction physics.Vector3D
	Duration  float64 // seconds of application remaining
	Type      ActionType
}

// Magnitude returns the configured base force for the action. A push is a
// contesting nudge and uses only a fraction of the full push force; a
// tackle is a committed knockdown attempt and gets the knockdown
// multiplier.
func (f ActionForce) Magnitude(tuning config.ActionTuning) float64 {
	switch f.Type {
	case ActionPush:
		return tuning.PushForce * tuning.PushNudgeScale
	case ActionShoot:
		return tuning.ShootForce
	case ActionTackle:
		return tuning.TackleForce * tuning.KnockdownScale
	case ActionDribbleBreak:
		return tuning.DribbleBreakForce
	default:
		return 0
	}
}

// Vector returns the force vector: the normalized direction scaled by the
// configured magnitude.
func (f ActionForce) Vector(tuning config.ActionTuning) physics.Vector3D {
	return f.Direction.Normalize().Scale(f.Magnitude(tuning))
}
