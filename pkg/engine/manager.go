// pkg/engine/manager.go
package engine

import (
	"context"
	"fmt"

	"github.com/pitchworks/go-courtphys/pkg/balance"
	"github.com/pitchworks/go-courtphys/pkg/config"
	"github.com/pitchworks/go-courtphys/pkg/entity"
	"github.com/pitchworks/go-courtphys/pkg/event"
	"github.com/pitchworks/go-courtphys/pkg/logging"
	"github.com/pitchworks/go-courtphys/pkg/physics"
	"github.com/pitchworks/go-courtphys/pkg/trajectory"
	"github.com/pitchworks/go-courtphys/pkg/validation"
)

// Handle is an opaque index into the manager-owned body arena. External
// callers hold handles, never body pointers, so engines borrow state for
// exactly one tick with no cross-tick aliasing.
type Handle int

// groundHeight is the court plane. The core simulates a flat court; uneven
// ground stays with the trajectory queries that take it as a parameter.
const groundHeight = 0.0

// slot is one arena entry. Exactly one of player or ball is set.
type slot struct {
	player *entity.Player
	ball   *entity.Ball
}

// contact pairs two arena slots with their tick-scoped collision result.
type contact struct {
	a, b   Handle
	result physics.CollisionResult
}

// Manager owns the entity registry and the authoritative per-tick order.
// It is the sole entry point for external callers. Step is synchronous and
// non-reentrant; serializing calls is the caller's responsibility.
type Manager struct {
	cfg       *config.Config
	log       *logging.Logger
	bus       *event.Bus
	balance   *balance.Engine
	predictor *trajectory.Predictor

	bodies   []slot
	tick     uint64
	disposed bool
}

// New creates a manager from the given configuration. An invalid
// configuration is fatal and fails here, before any entity exists.
func New(cfg *config.Config, log *logging.Logger) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, logging.WrapError(err, "engine setup")
	}
	if log == nil {
		log = logging.NewLogger()
	}
	return &Manager{
		cfg:       cfg,
		log:       log,
		bus:       event.NewEventBus(),
		balance:   balance.NewEngine(cfg),
		predictor: trajectory.NewPredictor(cfg),
	}, nil
}

// PlayerConfig describes a player body at creation time. Attributes come
// from the team configuration loader once at match setup.
type PlayerConfig struct {
	Position   physics.Vector3D
	TeamID     int
	Attributes balance.PlayerAttributes
}

// BallConfig describes a ball body at creation time.
type BallConfig struct {
	Position physics.Vector3D
	Radius   float64
	Mass     float64
}

// CreatePlayer registers a player body and returns its handle.
func (m *Manager) CreatePlayer(pc PlayerConfig) (Handle, error) {
	if m.disposed {
		return 0, fmt.Errorf("engine: manager is disposed")
	}
	if err := validation.ValidateVector("player position", pc.Position); err != nil {
		return 0, err
	}
	if err := validation.ValidateAttributes(pc.Attributes); err != nil {
		return 0, err
	}

	player := entity.NewPlayer(pc.Position, pc.TeamID, pc.Attributes, m.cfg)
	handle := Handle(len(m.bodies))
	m.bodies = append(m.bodies, slot{player: player})

	m.bus.Publish(event.NewBodyEvent(event.BodyCreated, m, uint64(player.GetID()), "player"))
	return handle, nil
}

// CreateBall registers a ball body and returns its handle.
func (m *Manager) CreateBall(bc BallConfig) (Handle, error) {
	if m.disposed {
		return 0, fmt.Errorf("engine: manager is disposed")
	}
	if err := validation.ValidateVector("ball position", bc.Position); err != nil {
		return 0, err
	}
	if bc.Radius <= 0 || bc.Mass <= 0 {
		return 0, fmt.Errorf("%w: ball radius and mass must be positive", validation.ErrInvalidInput)
	}

	ball := entity.NewBall(bc.Position, bc.Radius, bc.Mass)
	handle := Handle(len(m.bodies))
	m.bodies = append(m.bodies, slot{ball: ball})

	m.bus.Publish(event.NewBodyEvent(event.BodyCreated, m, uint64(ball.GetID()), "ball"))
	return handle, nil
}

// ApplyAction submits an action force for the next tick. Forces applied to
// a player feed its balance model; forces applied to a ball change its
// velocity directly (a shot or a deflection).
func (m *Manager) ApplyAction(h Handle, force balance.ActionForce) error {
	s, err := m.slotFor(h)
	if err != nil {
		return err
	}
	if err := validation.ValidateActionForce(force); err != nil {
		return err
	}

	if s.player != nil {
		s.player.PendingForces = append(s.player.PendingForces, force)
		return nil
	}

	impulse := force.Vector(m.cfg.Actions).Scale(force.Duration)
	s.ball.Velocity = s.ball.Velocity.Add(impulse.Scale(s.ball.InvMass()))
	s.ball.Grounded = false
	return nil
}

// Subscribe registers a handler for an event kind. Handlers run during the
// queue drain at the end of each tick, never from inside the mutation
// phase.
func (m *Manager) Subscribe(kind event.Type, handler event.Handler) {
	m.bus.Subscribe(kind, handler)
}

// Predictor returns the trajectory predictor sharing this manager's
// configured gravity.
func (m *Manager) Predictor() *trajectory.Predictor {
	return m.predictor
}

// BodyCount returns the number of registered bodies.
func (m *Manager) BodyCount() int {
	return len(m.bodies)
}

// Step advances the simulation by dt seconds. An out-of-range dt (zero,
// negative, or above the sanity ceiling after a stalled frame clock) is
// rejected: the step becomes a logged no-op and every entity keeps its
// prior-frame state so nothing visibly teleports.
func (m *Manager) Step(dt float64) {
	if m.disposed {
		return
	}
	if err := validation.ValidateTimeStep(dt, m.cfg.MaxStepSeconds); err != nil {
		m.log.Warn(context.Background(), "step rejected", "dt", dt, "reason", err.Error())
		return
	}

	m.tick++

	contacts := m.detectContacts()
	impulses := m.resolveContacts(contacts)
	m.tickPlayers(impulses, dt)
	m.advanceBalls(dt)

	m.bus.Drain()
}

// detectContacts runs the pairwise overlap tests: player-player and
// player-ball. The roster is small and fixed, so the O(n^2) sweep is
// cheaper than maintaining a broad phase.
func (m *Manager) detectContacts() []contact {
	var contacts []contact
	for i := range m.bodies {
		for j := i + 1; j < len(m.bodies); j++ {
			a, b := m.bodies[i], m.bodies[j]
			var result physics.CollisionResult

			switch {
			case a.player != nil && b.player != nil:
				if !a.player.Active || !b.player.Active {
					continue
				}
				result = physics.CheckCapsuleCollision(
					a.player.Collider(), b.player.Collider(),
					a.player.Velocity, b.player.Velocity,
				)
			case a.player != nil && b.ball != nil:
				if !a.player.Active || !b.ball.Active {
					continue
				}
				result = physics.CheckCapsuleSphere(
					a.player.Collider(), b.ball.Collider(),
					a.player.Velocity, b.ball.Velocity,
				)
			case a.ball != nil && b.player != nil:
				if !a.ball.Active || !b.player.Active {
					continue
				}
				// Run the test player-first; the contact is recorded with
				// the player as body A.
				result = physics.CheckCapsuleSphere(
					b.player.Collider(), a.ball.Collider(),
					b.player.Velocity, a.ball.Velocity,
				)
				if result.Collided {
					contacts = append(contacts, contact{a: Handle(j), b: Handle(i), result: result})
				}
				continue
			default:
				// ball-ball contacts are rare and gameplay-neutral;
				// resolve them as plain spheres.
				if a.ball == nil || b.ball == nil || !a.ball.Active || !b.ball.Active {
					continue
				}
				result = physics.CheckCollision(
					a.ball.Collider(), b.ball.Collider(),
					a.ball.Velocity, b.ball.Velocity,
				)
			}

			if result.Collided {
				contacts = append(contacts, contact{a: Handle(i), b: Handle(j), result: result})
			}
		}
	}
	return contacts
}

// resolveContacts applies impulses and positional corrections, queues
// collision events, and returns the impulse vectors that feed each
// player's balance model this tick.
func (m *Manager) resolveContacts(contacts []contact) map[Handle][]physics.Vector3D {
	impulses := make(map[Handle][]physics.Vector3D)
	material := physics.Material{
		Restitution: m.cfg.Restitution,
		Friction:    m.cfg.ContactFriction,
	}

	for _, c := range contacts {
		a, b := m.bodies[c.a], m.bodies[c.b]
		resolution := physics.ResolveCollision(c.result, bodyParams(a), bodyParams(b), material)

		applyResolution(a, resolution.DeltaVA, resolution.CorrectionA)
		applyResolution(b, resolution.DeltaVB, resolution.CorrectionB)

		if a.player != nil {
			impulses[c.a] = append(impulses[c.a], resolution.ImpulseA)
		}
		if b.player != nil {
			impulses[c.b] = append(impulses[c.b], resolution.ImpulseB)
		}

		m.bus.Publish(event.NewCollisionEvent(
			m,
			slotID(a),
			slotID(b),
			c.result.ContactPoint,
			resolution.ImpulseB,
		))
	}
	return impulses
}

// tickPlayers feeds accumulated forces and contacts into the balance
// engine per player, integrates player motion, and queues transitions.
func (m *Manager) tickPlayers(impulses map[Handle][]physics.Vector3D, dt float64) {
	for i := range m.bodies {
		player := m.bodies[i].player
		if player == nil || !player.Active {
			continue
		}

		player.Balance.Sphere.Position = player.Position
		state, transition := m.balance.Tick(
			player.Balance,
			player.Derived,
			player.PendingForces,
			impulses[Handle(i)],
			dt,
		)
		player.Balance = state
		player.PendingForces = expireForces(player.PendingForces, dt)

		if transition != nil {
			m.bus.Publish(event.NewBalanceEvent(m, uint64(player.GetID()), transition.From, transition.To))
		}

		// Contact impulses moved the body; integrate and settle it back
		// onto the court plane.
		player.Position = player.Position.Add(player.Velocity.Scale(dt))
		player.Position.Z = groundHeight
		player.Velocity = player.Velocity.Scale(1 - m.cfg.GroundFriction*dt)
		player.Velocity.Z = 0
	}
}

// advanceBalls integrates ball bodies kinematically under gravity and
// drag, independent of the balance engine.
func (m *Manager) advanceBalls(dt float64) {
	for i := range m.bodies {
		ball := m.bodies[i].ball
		if ball == nil || !ball.Active {
			continue
		}

		ball.Velocity.Z -= m.cfg.Gravity * dt
		ball.Position = ball.Position.Add(ball.Velocity.Scale(dt))
		ball.Velocity = ball.Velocity.Scale(1 - m.cfg.AirDrag*dt)

		if ball.Position.Z <= groundHeight+ball.Radius {
			ball.Position.Z = groundHeight + ball.Radius
			if ball.Velocity.Z < 0 {
				ball.Velocity.Z = -ball.Velocity.Z * m.cfg.Restitution
			}
			if !ball.Grounded {
				ball.Grounded = true
				m.bus.Publish(event.NewBallLandedEvent(m, uint64(ball.GetID()), ball.Position))
			}
			// Rolling contact bleeds speed faster than flight.
			ball.Velocity.X *= 1 - m.cfg.GroundFriction*dt
			ball.Velocity.Y *= 1 - m.cfg.GroundFriction*dt
		} else {
			ball.Grounded = false
		}
	}
}

// Dispose releases the registry. Further calls on the manager are no-ops.
// Disposing from within a subscribed handler is undefined.
func (m *Manager) Dispose() {
	if m.disposed {
		return
	}
	for _, s := range m.bodies {
		m.bus.Publish(event.NewBodyEvent(event.BodyRemoved, m, slotID(s), slotKind(s)))
	}
	m.bus.Drain()
	m.bodies = nil
	m.disposed = true
}

func (m *Manager) slotFor(h Handle) (slot, error) {
	if m.disposed {
		return slot{}, fmt.Errorf("engine: manager is disposed")
	}
	if h < 0 || int(h) >= len(m.bodies) {
		return slot{}, fmt.Errorf("%w: unknown body handle %d", validation.ErrInvalidInput, h)
	}
	return m.bodies[h], nil
}

func bodyParams(s slot) physics.BodyParams {
	if s.player != nil {
		return physics.BodyParams{InvMass: s.player.InvMass()}
	}
	return physics.BodyParams{InvMass: s.ball.InvMass()}
}

func applyResolution(s slot, deltaV, correction physics.Vector3D) {
	if s.player != nil {
		// Players stand on the court; contacts shove them sideways.
		deltaV.Z = 0
		correction.Z = 0
		s.player.Velocity = s.player.Velocity.Add(deltaV)
		s.player.Position = s.player.Position.Add(correction)
		return
	}
	s.ball.Velocity = s.ball.Velocity.Add(deltaV)
	s.ball.Position = s.ball.Position.Add(correction)
}

func slotID(s slot) uint64 {
	if s.player != nil {
		return uint64(s.player.GetID())
	}
	return uint64(s.ball.GetID())
}

func slotKind(s slot) string {
	if s.player != nil {
		return "player"
	}
	return "ball"
}

// expireForces decrements remaining durations and drops spent forces.
func expireForces(forces []balance.ActionForce, dt float64) []balance.ActionForce {
	remaining := forces[:0]
	for _, f := range forces {
		f.Duration -= dt
		if f.Duration > 0 {
			remaining = append(remaining, f)
		}
	}
	return remaining
}
