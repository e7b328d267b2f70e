// pkg/event/event.go
package event

import (
	"sync"

	"github.com/pitchworks/go-courtphys/pkg/balance"
	"github.com/pitchworks/go-courtphys/pkg/physics"
)

// Type represents the type of event
type Type string

// Event types emitted by the physics manager.
const (
	BodyCreated         Type = "body_created"
	BodyRemoved         Type = "body_removed"
	EntityCollision     Type = "entity_collision"
	BalanceStateChanged Type = "balance_state_changed"
	BallLanded          Type = "ball_landed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and queued delivery. Publish only
// enqueues; Drain dispatches everything queued since the last drain. The
// physics manager drains the queue once at the end of each tick, so
// handlers never re-enter a step in progress.
type Bus struct {
	handlers map[Type][]Handler
	queue    []Event
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish enqueues an event for the next drain.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.queue = append(b.queue, event)
}

// Drain dispatches all queued events in publish order and empties the
// queue. Events published by a handler during a drain are delivered on the
// next drain, not this one.
func (b *Bus) Drain() {
	b.mu.Lock()
	pending := b.queue
	b.queue = nil
	b.mu.Unlock()

	for _, event := range pending {
		b.mu.RLock()
		handlers := b.handlers[event.GetType()]
		b.mu.RUnlock()

		for _, handler := range handlers {
			handler(event)
		}
	}
}

// Pending returns the number of queued, undelivered events.
func (b *Bus) Pending() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.queue)
}

// Specific event implementations

// BodyEvent reports a body entering or leaving the registry.
type BodyEvent struct {
	BaseEvent
	BodyID uint64
	Kind   string
}

// NewBodyEvent creates a body lifecycle event.
func NewBodyEvent(eventType Type, source interface{}, bodyID uint64, kind string) *BodyEvent {
	return &BodyEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		BodyID: bodyID,
		Kind:   kind,
	}
}

// CollisionEvent reports a resolved contact between two bodies. Consumed
// by match-outcome logic (advantage status, breakthrough success).
type CollisionEvent struct {
	BaseEvent
	EntityA      uint64
	EntityB      uint64
	ContactPoint physics.Vector3D
	Impulse      physics.Vector3D
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, entityA, entityB uint64, contactPoint, impulse physics.Vector3D) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: EntityCollision,
			Source:    source,
		},
		EntityA:      entityA,
		EntityB:      entityB,
		ContactPoint: contactPoint,
		Impulse:      impulse,
	}
}

// BalanceEvent reports a balance state-machine transition. Consumed by
// animation and gameplay logic.
type BalanceEvent struct {
	BaseEvent
	BodyID uint64
	From   balance.Tag
	To     balance.Tag
}

// NewBalanceEvent creates a balance transition event.
func NewBalanceEvent(source interface{}, bodyID uint64, from, to balance.Tag) *BalanceEvent {
	return &BalanceEvent{
		BaseEvent: BaseEvent{
			EventType: BalanceStateChanged,
			Source:    source,
		},
		BodyID: bodyID,
		From:   from,
		To:     to,
	}
}

// BallLandedEvent reports a ball's first return to ground contact.
type BallLandedEvent struct {
	BaseEvent
	BodyID   uint64
	Position physics.Vector3D
}

// NewBallLandedEvent creates a ball landing event.
func NewBallLandedEvent(source interface{}, bodyID uint64, position physics.Vector3D) *BallLandedEvent {
	return &BallLandedEvent{
		BaseEvent: BaseEvent{
			EventType: BallLanded,
			Source:    source,
		},
		BodyID:   bodyID,
		Position: position,
	}
}
