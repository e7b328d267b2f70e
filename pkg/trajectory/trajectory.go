// pkg/trajectory/trajectory.go

// Package trajectory predicts ball landing points with a closed-form
// ballistic solution under the configured gravity. Drag is deliberately
// ignored here: prediction feeds aiming UI, where the closed form is
// cheap, deterministic, and close enough at gameplay speeds.
package trajectory

import (
	"math"

	"github.com/pitchworks/go-courtphys/pkg/config"
	"github.com/pitchworks/go-courtphys/pkg/physics"
)

// Predictor solves ballistic arcs for ball entities.
type Predictor struct {
	gravity    float64
	step       float64
	maxSamples int
}

// NewPredictor builds a predictor from validated configuration.
func NewPredictor(cfg *config.Config) *Predictor {
	return &Predictor{
		gravity:    cfg.Gravity,
		step:       cfg.TrajectoryStep,
		maxSamples: cfg.MaxTrajectorySamples,
	}
}

// LandingResult is the outcome of a landing-point query. Reachable is
// false when the arc never meets the ground plane; callers must branch on
// it rather than expect an error.
type LandingResult struct {
	Reachable bool
	Position  physics.Vector3D
	Time      float64
}

// FallingPoint solves for the first time the arc starting at pos with
// velocity vel reaches groundHeight, and returns the landing position.
// No positive real root means the ground plane is above the apex of the
// arc, so the result is marked unreachable.
func (p *Predictor) FallingPoint(pos, vel physics.Vector3D, groundHeight float64) LandingResult {
	// z(t) = z0 + vz*t - g*t^2/2 == groundHeight
	discriminant := vel.Z*vel.Z + 2*p.gravity*(pos.Z-groundHeight)
	if discriminant < 0 {
		return LandingResult{Reachable: false}
	}

	t := (vel.Z + math.Sqrt(discriminant)) / p.gravity
	if t <= 0 {
		return LandingResult{Reachable: false}
	}

	return LandingResult{
		Reachable: true,
		Position: physics.Vector3D{
			X: pos.X + vel.X*t,
			Y: pos.Y + vel.Y*t,
			Z: groundHeight,
		},
		Time: t,
	}
}

// PositionAt evaluates the arc at time t.
func (p *Predictor) PositionAt(pos, vel physics.Vector3D, t float64) physics.Vector3D {
	return physics.Vector3D{
		X: pos.X + vel.X*t,
		Y: pos.Y + vel.Y*t,
		Z: pos.Z + vel.Z*t - p.gravity*t*t/2,
	}
}

// Sample is one projected ball position for preview rendering. Samples
// are produced on demand and not persisted.
type Sample struct {
	Position physics.Vector3D
	Time     float64
}

// Sampler lazily walks an arc in fixed time steps. The sequence is finite:
// it ends at the first ground contact or after the configured maximum
// sample count, whichever comes first. Reset rewinds it for reuse.
type Sampler struct {
	predictor *Predictor
	pos       physics.Vector3D
	vel       physics.Vector3D
	ground    float64
	index     int
	done      bool
}

// Sampler returns a preview sampler for the given arc.
func (p *Predictor) Sampler(pos, vel physics.Vector3D, groundHeight float64) *Sampler {
	return &Sampler{
		predictor: p,
		pos:       pos,
		vel:       vel,
		ground:    groundHeight,
	}
}

// Next returns the next preview sample. The second result is false once
// the sequence is exhausted.
func (s *Sampler) Next() (Sample, bool) {
	if s.done || s.index >= s.predictor.maxSamples {
		return Sample{}, false
	}

	s.index++
	t := float64(s.index) * s.predictor.step
	point := s.predictor.PositionAt(s.pos, s.vel, t)

	if point.Z <= s.ground {
		s.done = true
		// Snap the final sample onto the ground so previews terminate at
		// the landing point rather than below it.
		if landing := s.predictor.FallingPoint(s.pos, s.vel, s.ground); landing.Reachable {
			return Sample{Position: landing.Position, Time: landing.Time}, true
		}
		return Sample{}, false
	}

	return Sample{Position: point, Time: t}, true
}

// Reset rewinds the sampler to the start of the arc.
func (s *Sampler) Reset() {
	s.index = 0
	s.done = false
}
