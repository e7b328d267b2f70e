// cmd/simulate/main.go

// Headless harness for the court physics core. Builds a small two-team
// roster plus a ball, drives the manager at a fixed tick rate for a few
// simulated seconds, and logs every event the core emits. Useful for
// eyeballing tuning changes without a render loop.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pitchworks/go-courtphys/pkg/balance"
	"github.com/pitchworks/go-courtphys/pkg/config"
	"github.com/pitchworks/go-courtphys/pkg/engine"
	"github.com/pitchworks/go-courtphys/pkg/event"
	"github.com/pitchworks/go-courtphys/pkg/logging"
	"github.com/pitchworks/go-courtphys/pkg/physics"
)

func main() {
	configPath := flag.String("config", "", "Path to a yaml tuning file (defaults to built-in tuning)")
	seconds := flag.Float64("seconds", 5, "Simulated duration")
	tickRate := flag.Float64("tickrate", 60, "Ticks per second")
	flag.Parse()

	log := logging.NewLogger()
	ctx := context.Background()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Error(ctx, "failed to load tuning", err, "path", *configPath)
			os.Exit(1)
		}
		cfg = loaded
	}

	manager, err := engine.New(cfg, log)
	if err != nil {
		log.Error(ctx, "failed to create physics manager", err)
		os.Exit(1)
	}
	defer manager.Dispose()

	subscribeEventLogging(manager, log)

	if err := buildRoster(manager, cfg); err != nil {
		log.Error(ctx, "failed to build roster", err)
		os.Exit(1)
	}

	dt := 1.0 / *tickRate
	ticks := int(*seconds * *tickRate)
	log.Info(ctx, "simulation starting", "ticks", ticks, "dt", dt)

	for i := 0; i < ticks; i++ {
		manager.Step(dt)
	}

	printSnapshot(manager)
}

// buildRoster places two three-player teams facing each other across the
// court center and a ball lofted above it, then queues an opening shove.
func buildRoster(manager *engine.Manager, cfg *config.Config) error {
	rosters := []struct {
		teamID int
		xSign  float64
		attrs  []balance.PlayerAttributes
	}{
		{0, -1, []balance.PlayerAttributes{
			{Strength: 82, Agility: 61, BalanceRating: 70, Weight: 96},
			{Strength: 64, Agility: 85, BalanceRating: 66, Weight: 74},
			{Strength: 55, Agility: 90, BalanceRating: 58, Weight: 68},
		}},
		{1, 1, []balance.PlayerAttributes{
			{Strength: 78, Agility: 70, BalanceRating: 75, Weight: 90},
			{Strength: 70, Agility: 74, BalanceRating: 62, Weight: 80},
			{Strength: 60, Agility: 88, BalanceRating: 64, Weight: 71},
		}},
	}

	var first engine.Handle
	for _, roster := range rosters {
		for i, attrs := range roster.attrs {
			handle, err := manager.CreatePlayer(engine.PlayerConfig{
				Position:   physics.Vector3D{X: roster.xSign * float64(i+1), Y: float64(i) * 1.5},
				TeamID:     roster.teamID,
				Attributes: attrs,
			})
			if err != nil {
				return err
			}
			if roster.teamID == 0 && i == 0 {
				first = handle
			}
		}
	}

	if _, err := manager.CreateBall(engine.BallConfig{
		Position: physics.Vector3D{Z: 3},
		Radius:   0.12,
		Mass:     0.62,
	}); err != nil {
		return err
	}

	return manager.ApplyAction(first, balance.ActionForce{
		Direction: physics.Vector3D{X: 1},
		Duration:  0.2,
		Type:      balance.ActionTackle,
	})
}

func subscribeEventLogging(manager *engine.Manager, log *logging.Logger) {
	ctx := context.Background()

	manager.Subscribe(event.EntityCollision, func(e event.Event) {
		if c, ok := e.(*event.CollisionEvent); ok {
			log.Info(ctx, "collision",
				"entityA", c.EntityA,
				"entityB", c.EntityB,
				"impulse", c.Impulse.Length(),
			)
		}
	})

	manager.Subscribe(event.BalanceStateChanged, func(e event.Event) {
		if b, ok := e.(*event.BalanceEvent); ok {
			log.Info(ctx, "balance transition",
				"body", b.BodyID,
				"from", b.From.String(),
				"to", b.To.String(),
			)
		}
	})

	manager.Subscribe(event.BallLanded, func(e event.Event) {
		if b, ok := e.(*event.BallLandedEvent); ok {
			log.Info(ctx, "ball landed",
				"body", b.BodyID,
				"x", b.Position.X,
				"y", b.Position.Y,
			)
		}
	})
}

func printSnapshot(manager *engine.Manager) {
	snap := manager.Snapshot()
	fmt.Printf("tick %d: %d players, %d balls\n", snap.Tick, len(snap.Players), len(snap.Balls))
	for _, p := range snap.Players {
		fmt.Printf("  player %d team %d at (%.2f, %.2f) balance=%s lean=%.3f\n",
			p.ID, p.TeamID, p.Position.X, p.Position.Y, p.Balance, p.Lean.Length())
	}
	for _, b := range snap.Balls {
		fmt.Printf("  ball %d at (%.2f, %.2f, %.2f) grounded=%v\n",
			b.ID, b.Position.X, b.Position.Y, b.Position.Z, b.Grounded)
	}
}
