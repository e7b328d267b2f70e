// pkg/balance/spring.go
package balance

import (
	"github.com/pitchworks/go-courtphys/pkg/physics"
)

// SphereState is the virtual spring-mass proxy for one player's resistance
// to displacement. It is exclusively owned by its player and mutated only
// by this package; the manager threads it through Tick each frame.
type SphereState struct {
	OwnerID    uint64
	Position   physics.Vector3D // world anchor of the proxy (player root)
	RestLength float64
	Extension  physics.Vector3D // current displacement from the rest pose
	Velocity   physics.Vector3D // rate of change of Extension
	Spring     float64
	Damping    float64
}

// SpringDamperForce returns F = -k*x - c*v, with both coefficients scaled
// by the player's stability.
func SpringDamperForce(s SphereState, d Derived) physics.Vector3D {
	k := s.Spring * d.Stability
	c := s.Damping * d.Stability
	return s.Extension.Scale(-k).Sub(s.Velocity.Scale(c))
}

// IntegrateMotion advances the sphere with semi-implicit Euler: velocity
// first, then position from the new velocity. This stays stable under
// stiff spring constants at game tick rates where explicit Euler diverges.
func IntegrateMotion(s SphereState, force physics.Vector3D, effectiveMass, dt float64) SphereState {
	if effectiveMass <= 0 {
		return s
	}
	s.Velocity = s.Velocity.Add(force.Scale(dt / effectiveMass))
	s.Extension = s.Extension.Add(s.Velocity.Scale(dt))
	return s
}

// ClampExtension limits the extension magnitude to max, preserving its
// direction. This is the enforcement point for the extension invariant.
func ClampExtension(s SphereState, max float64) SphereState {
	s.Extension = s.Extension.ClampMagnitude(max)
	return s
}

// HorizontalOffset returns the ground-plane component of the extension,
// used by animation for stagger lean.
func HorizontalOffset(s SphereState) physics.Vector3D {
	return s.Extension.Horizontal()
}
