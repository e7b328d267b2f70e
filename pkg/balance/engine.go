// pkg/balance/engine.go
package balance

import (
	"github.com/pitchworks/go-courtphys/pkg/config"
	"github.com/pitchworks/go-courtphys/pkg/physics"
)

// State is the full per-player balance state threaded through Tick. There
// is no hidden state: two calls with identical inputs produce identical
// outputs.
type State struct {
	Sphere            SphereState
	Tag               Tag
	RecoveryRemaining float64 // seconds left in a timer-driven state
}

// Transition reports a state-machine edge taken during a tick.
type Transition struct {
	OwnerID uint64
	From    Tag
	To      Tag
}

// Engine evaluates the balance model for one player per tick.
type Engine struct {
	balance config.BalanceTuning
	actions config.ActionTuning
}

// NewEngine builds a balance engine from validated configuration.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		balance: cfg.Balance,
		actions: cfg.Actions,
	}
}

// Tick advances one player's balance by dt: contact impulses kick the
// sphere velocity, action forces and the spring-damper restoring force are
// integrated, the extension is clamped, and the state machine is stepped.
// It returns the updated state and the transition taken, if any (at most
// one grade per tick).
func (e *Engine) Tick(s State, d Derived, forces []ActionForce, impulses []physics.Vector3D, dt float64) (State, *Transition) {
	if dt <= 0 {
		return s, nil
	}

	// Contacts are instantaneous momentum changes, not forces.
	if d.EffectiveMass > 0 {
		for _, impulse := range impulses {
			s.Sphere.Velocity = s.Sphere.Velocity.Add(impulse.Scale(1 / d.EffectiveMass))
		}
	}

	total := SpringDamperForce(s.Sphere, d)
	for _, force := range forces {
		if force.Duration <= 0 {
			continue
		}
		total = total.Add(force.Vector(e.actions))
	}

	s.Sphere = IntegrateMotion(s.Sphere, total, d.EffectiveMass, dt)
	s.Sphere = ClampExtension(s.Sphere, e.balance.MaxExtension)

	return e.stepStateMachine(s, d, dt)
}

// stepStateMachine applies either the recovery timer (down states) or the
// displacement grading (upright states).
func (e *Engine) stepStateMachine(s State, d Derived, dt float64) (State, *Transition) {
	switch s.Tag {
	case KnockedDown, Recovering:
		s.RecoveryRemaining -= dt
		if s.RecoveryRemaining > 0 {
			return s, nil
		}
		if s.Tag == KnockedDown {
			return e.transition(s, Recovering, RecoveryTime(Recovering, d, e.balance))
		}
		return e.transition(s, Neutral, 0)
	}

	target := e.gradeFor(s.Sphere.Extension.Length())
	if target == s.Tag {
		return s, nil
	}

	// Balance degrades and recovers one grade at a time.
	next := s.Tag
	if target > s.Tag {
		next++
	} else {
		next--
	}
	if !CanTransition(s.Tag, next) {
		return s, nil
	}

	timer := 0.0
	if next == KnockedDown {
		timer = RecoveryTime(KnockedDown, d, e.balance)
		// The player is on the floor; the sphere stops resisting.
		s.Sphere.Velocity = physics.Vector3D{}
	}
	return e.transition(s, next, timer)
}

func (e *Engine) transition(s State, to Tag, timer float64) (State, *Transition) {
	t := &Transition{OwnerID: s.Sphere.OwnerID, From: s.Tag, To: to}
	s.Tag = to
	s.RecoveryRemaining = timer
	return s, t
}

// gradeFor maps an extension magnitude to the balance grade it warrants.
func (e *Engine) gradeFor(offset float64) Tag {
	switch {
	case offset >= e.balance.KnockdownThreshold:
		return KnockedDown
	case offset >= e.balance.OffBalanceThreshold:
		return OffBalance
	case offset >= e.balance.StaggerThreshold:
		return Staggered
	default:
		return Neutral
	}
}
