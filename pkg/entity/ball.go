// pkg/entity/ball.go
package entity

import (
	"github.com/pitchworks/go-courtphys/pkg/physics"
)

// Ball is a free-flying physics body advanced kinematically under gravity
// and drag, independent of the balance model.
type Ball struct {
	BaseBody
	Radius   float64
	Mass     float64
	Grounded bool
}

// NewBall creates a ball body at the given position.
func NewBall(position physics.Vector3D, radius, mass float64) *Ball {
	return &Ball{
		BaseBody: NewBaseBody(position),
		Radius:   radius,
		Mass:     mass,
	}
}

// Collider returns the ball's sphere at its current position.
func (b *Ball) Collider() physics.Sphere {
	return physics.Sphere{
		Center: b.Position,
		Radius: b.Radius,
	}
}

// InvMass returns the inverse of the ball's mass.
func (b *Ball) InvMass() float64 {
	if b.Mass <= 0 {
		return 0
	}
	return 1 / b.Mass
}
