// pkg/entity/player.go
package entity

import (
	"github.com/pitchworks/go-courtphys/pkg/balance"
	"github.com/pitchworks/go-courtphys/pkg/config"
	"github.com/pitchworks/go-courtphys/pkg/physics"
)

// Player is a bipedal physics body: an upright capsule collider plus the
// balance-sphere proxy that resists displacement from contact.
type Player struct {
	BaseBody
	TeamID     int
	Attributes balance.PlayerAttributes
	Derived    balance.Derived
	Balance    balance.State
	Height     float64
	Radius     float64

	// PendingForces are the action forces submitted for the next tick.
	// Cleared after every step.
	PendingForces []balance.ActionForce
}

// NewPlayer creates a player body and derives its physical stats from the
// supplied attributes.
func NewPlayer(position physics.Vector3D, teamID int, attrs balance.PlayerAttributes, cfg *config.Config) *Player {
	p := &Player{
		BaseBody:   NewBaseBody(position),
		TeamID:     teamID,
		Attributes: attrs,
		Derived:    balance.DerivePlayerPhysics(attrs, cfg.Balance),
		Height:     1.8,
		Radius:     0.35,
	}
	p.Balance = balance.State{
		Sphere: balance.SphereState{
			OwnerID:    uint64(p.GetID()),
			Position:   position,
			RestLength: p.Height / 2,
			Spring:     cfg.Balance.SpringConstant,
			Damping:    cfg.Balance.DampingConstant,
		},
		Tag: balance.Neutral,
	}
	return p
}

// Collider returns the player's capsule at its current position.
func (p *Player) Collider() physics.Capsule {
	return physics.Capsule{
		Base:   p.Position,
		Height: p.Height,
		Radius: p.Radius,
	}
}

// InvMass returns the inverse of the player's effective mass.
func (p *Player) InvMass() float64 {
	if p.Derived.EffectiveMass <= 0 {
		return 0
	}
	return 1 / p.Derived.EffectiveMass
}
