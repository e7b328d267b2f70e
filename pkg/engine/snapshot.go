// pkg/engine/snapshot.go
package engine

import (
	"github.com/pitchworks/go-courtphys/pkg/balance"
	"github.com/pitchworks/go-courtphys/pkg/entity"
	"github.com/pitchworks/go-courtphys/pkg/physics"
)

// Snapshot is a copy of the externally visible state after a tick. The
// render loop reads it to pose meshes and skeletons; the physics core
// knows nothing about either.
type Snapshot struct {
	Tick    uint64
	Players map[entity.ID]PlayerState
	Balls   map[entity.ID]BallState
}

// PlayerState is the per-player view the outside world gets: position,
// motion, balance grade, and the derived accessors that drive stagger lean
// and push-resistance display.
type PlayerState struct {
	ID           entity.ID
	TeamID       int
	Position     physics.Vector3D
	Velocity     physics.Vector3D
	Balance      balance.Tag
	Lean         physics.Vector3D // horizontal balance-sphere offset
	WeightFactor float64
}

// BallState is the per-ball view of a snapshot.
type BallState struct {
	ID       entity.ID
	Position physics.Vector3D
	Velocity physics.Vector3D
	Grounded bool
}

// Snapshot builds a copy of the current state. Safe to hold across ticks;
// it shares nothing with the arena.
func (m *Manager) Snapshot() *Snapshot {
	snap := &Snapshot{
		Tick:    m.tick,
		Players: make(map[entity.ID]PlayerState),
		Balls:   make(map[entity.ID]BallState),
	}

	for _, s := range m.bodies {
		switch {
		case s.player != nil && s.player.Active:
			id := s.player.GetID()
			snap.Players[id] = PlayerState{
				ID:           id,
				TeamID:       s.player.TeamID,
				Position:     s.player.Position,
				Velocity:     s.player.Velocity,
				Balance:      s.player.Balance.Tag,
				Lean:         balance.HorizontalOffset(s.player.Balance.Sphere),
				WeightFactor: balance.WeightForceFactor(s.player.Attributes),
			}
		case s.ball != nil && s.ball.Active:
			id := s.ball.GetID()
			snap.Balls[id] = BallState{
				ID:       id,
				Position: s.ball.Position,
				Velocity: s.ball.Velocity,
				Grounded: s.ball.Grounded,
			}
		}
	}
	return snap
}
