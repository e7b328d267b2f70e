// pkg/entity/entity.go
package entity

import (
	"github.com/EngoEngine/ecs"

	"github.com/pitchworks/go-courtphys/pkg/physics"
)

// ID is a unique identifier for a physics body.
type ID uint64

// Body is the interface shared by everything the manager simulates.
type Body interface {
	GetID() ID
	GetPosition() physics.Vector3D
	GetVelocity() physics.Vector3D
}

// BaseBody contains the state common to all physics bodies. Identity comes
// from an embedded ecs.BasicEntity so IDs stay unique across body kinds
// and external systems can address bodies without holding pointers.
type BaseBody struct {
	ecs.BasicEntity
	Position physics.Vector3D
	Velocity physics.Vector3D
	Active   bool
}

// NewBaseBody creates an active body at the given position.
func NewBaseBody(position physics.Vector3D) BaseBody {
	return BaseBody{
		BasicEntity: ecs.NewBasic(),
		Position:    position,
		Active:      true,
	}
}

// GetID returns the body's unique identifier.
func (b *BaseBody) GetID() ID {
	return ID(b.BasicEntity.ID())
}

// GetPosition returns the body's position.
func (b *BaseBody) GetPosition() physics.Vector3D {
	return b.Position
}

// GetVelocity returns the body's velocity.
func (b *BaseBody) GetVelocity() physics.Vector3D {
	return b.Velocity
}
