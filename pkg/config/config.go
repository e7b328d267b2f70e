// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidRange is returned by OptimalShootAngle when the target is
// physically unreachable.
var ErrInvalidRange = errors.New("target out of valid range")

// Band is a closed clamp interval for a derived stat.
type Band struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Clamp restricts value to the band.
func (b Band) Clamp(value float64) float64 {
	if value < b.Min {
		return b.Min
	}
	if value > b.Max {
		return b.Max
	}
	return value
}

// BalanceTuning contains the spring-damper and state-machine constants for
// the balance model.
type BalanceTuning struct {
	SpringConstant  float64 `yaml:"springConstant"`
	DampingConstant float64 `yaml:"dampingConstant"`
	MaxExtension    float64 `yaml:"maxExtension"`

	// Displacement thresholds, in meters of balance-sphere extension, at
	// which a player degrades to the next balance state.
	StaggerThreshold    float64 `yaml:"staggerThreshold"`
	OffBalanceThreshold float64 `yaml:"offBalanceThreshold"`
	KnockdownThreshold  float64 `yaml:"knockdownThreshold"`

	RecoveryBase float64 `yaml:"recoveryBase"` // seconds, scaled down by agility and stability

	AgilityBand   Band `yaml:"agilityBand"`
	StabilityBand Band `yaml:"stabilityBand"`
	PushPowerBand Band `yaml:"pushPowerBand"`

	MassScale float64 `yaml:"massScale"` // weight -> effective mass
}

// ActionTuning contains base force magnitudes per gameplay action and the
// contact-play split between a nudge and an outright knockdown.
type ActionTuning struct {
	PushForce         float64 `yaml:"pushForce"`
	ShootForce        float64 `yaml:"shootForce"`
	TackleForce       float64 `yaml:"tackleForce"`
	DribbleBreakForce float64 `yaml:"dribbleBreakForce"`

	PushNudgeScale float64 `yaml:"pushNudgeScale"` // fraction of full force for a contesting nudge
	KnockdownScale float64 `yaml:"knockdownScale"` // multiplier for a committed knockdown attempt
}

// Config is the immutable physics tuning bundle. It is constructed once at
// match setup, validated, and passed explicitly to every engine; nothing
// reads tuning from package-level state.
type Config struct {
	Gravity         float64 `yaml:"gravity"`         // m/s^2, positive down
	AirDrag         float64 `yaml:"airDrag"`         // per-second velocity fraction lost in flight
	GroundFriction  float64 `yaml:"groundFriction"`  // per-second velocity fraction lost rolling
	Restitution     float64 `yaml:"restitution"`     // contact bounciness
	ContactFriction float64 `yaml:"contactFriction"` // tangential contact friction

	MaxStepSeconds float64 `yaml:"maxStepSeconds"` // sanity ceiling for a single tick

	TrajectoryStep       float64 `yaml:"trajectoryStep"` // seconds between preview samples
	MaxTrajectorySamples int     `yaml:"maxTrajectorySamples"`

	Balance BalanceTuning `yaml:"balance"`
	Actions ActionTuning  `yaml:"actions"`
}

// Load reads and validates a configuration from a yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a configuration to a yaml file.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks every constant at setup. A non-nil error is a fatal
// misconfiguration; the caller must not construct a manager from it.
func (c *Config) Validate() error {
	if c.Gravity <= 0 || math.IsNaN(c.Gravity) || math.IsInf(c.Gravity, 0) {
		return fmt.Errorf("config: gravity must be a positive finite value, got %v", c.Gravity)
	}
	if c.AirDrag < 0 || c.AirDrag >= 1 {
		return fmt.Errorf("config: airDrag must be in [0, 1), got %v", c.AirDrag)
	}
	if c.GroundFriction < 0 || c.GroundFriction >= 1 {
		return fmt.Errorf("config: groundFriction must be in [0, 1), got %v", c.GroundFriction)
	}
	if c.Restitution < 0 || c.Restitution > 1 {
		return fmt.Errorf("config: restitution must be in [0, 1], got %v", c.Restitution)
	}
	if c.ContactFriction < 0 {
		return fmt.Errorf("config: contactFriction must be non-negative, got %v", c.ContactFriction)
	}
	if c.MaxStepSeconds <= 0 {
		return fmt.Errorf("config: maxStepSeconds must be positive, got %v", c.MaxStepSeconds)
	}
	if c.TrajectoryStep <= 0 {
		return fmt.Errorf("config: trajectoryStep must be positive, got %v", c.TrajectoryStep)
	}
	if c.MaxTrajectorySamples <= 0 {
		return fmt.Errorf("config: maxTrajectorySamples must be positive, got %d", c.MaxTrajectorySamples)
	}
	if err := c.Balance.validate(); err != nil {
		return err
	}
	return c.Actions.validate()
}

func (b *BalanceTuning) validate() error {
	if b.SpringConstant <= 0 {
		return fmt.Errorf("config: balance.springConstant must be positive, got %v", b.SpringConstant)
	}
	if b.DampingConstant < 0 {
		return fmt.Errorf("config: balance.dampingConstant must be non-negative, got %v", b.DampingConstant)
	}
	if b.MaxExtension <= 0 {
		return fmt.Errorf("config: balance.maxExtension must be positive, got %v", b.MaxExtension)
	}
	if !(0 < b.StaggerThreshold && b.StaggerThreshold < b.OffBalanceThreshold &&
		b.OffBalanceThreshold < b.KnockdownThreshold && b.KnockdownThreshold <= b.MaxExtension) {
		return fmt.Errorf("config: balance thresholds must satisfy 0 < stagger < offBalance < knockdown <= maxExtension")
	}
	if b.RecoveryBase <= 0 {
		return fmt.Errorf("config: balance.recoveryBase must be positive, got %v", b.RecoveryBase)
	}
	for _, band := range []struct {
		name string
		b    Band
	}{
		{"agilityBand", b.AgilityBand},
		{"stabilityBand", b.StabilityBand},
		{"pushPowerBand", b.PushPowerBand},
	} {
		if band.b.Min < 0 || band.b.Min >= band.b.Max {
			return fmt.Errorf("config: balance.%s must satisfy 0 <= min < max", band.name)
		}
	}
	if b.MassScale <= 0 {
		return fmt.Errorf("config: balance.massScale must be positive, got %v", b.MassScale)
	}
	return nil
}

func (a *ActionTuning) validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"pushForce", a.PushForce},
		{"shootForce", a.ShootForce},
		{"tackleForce", a.TackleForce},
		{"dribbleBreakForce", a.DribbleBreakForce},
	} {
		if f.value < 0 {
			return fmt.Errorf("config: actions.%s must be non-negative, got %v", f.name, f.value)
		}
	}
	if a.PushNudgeScale < 0 || a.PushNudgeScale > 1 {
		return fmt.Errorf("config: actions.pushNudgeScale must be in [0, 1], got %v", a.PushNudgeScale)
	}
	if a.KnockdownScale <= 0 {
		return fmt.Errorf("config: actions.knockdownScale must be positive, got %v", a.KnockdownScale)
	}
	return nil
}

// OptimalShootAngle returns the launch angle in degrees that reaches a
// target at the given horizontal distance and height with the minimum
// launch speed. A zero distance is the degenerate straight-up shot and
// returns 90. A negative distance is physically unreachable and returns
// ErrInvalidRange.
func (c *Config) OptimalShootAngle(distance, targetHeight float64) (float64, error) {
	if distance < 0 || math.IsNaN(distance) || math.IsNaN(targetHeight) {
		return 0, fmt.Errorf("%w: distance=%v targetHeight=%v", ErrInvalidRange, distance, targetHeight)
	}
	if distance == 0 {
		return 90, nil
	}

	// Minimum-speed solution of the ballistic arc: the optimal angle
	// bisects the vertical and the line of sight to the target.
	angle := math.Atan((targetHeight + math.Hypot(distance, targetHeight)) / distance)
	return physicsRadToDeg(angle), nil
}

// Local conversion; keeps config free of a dependency on pkg/physics.
func physicsRadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Default returns the stock tuning used when no file is supplied.
func Default() *Config {
	return &Config{
		Gravity:         9.81,
		AirDrag:         0.08,
		GroundFriction:  0.35,
		Restitution:     0.55,
		ContactFriction: 0.2,

		MaxStepSeconds: 0.1,

		TrajectoryStep:       1.0 / 30.0,
		MaxTrajectorySamples: 90,

		Balance: BalanceTuning{
			SpringConstant:      180,
			DampingConstant:     22,
			MaxExtension:        0.6,
			StaggerThreshold:    0.15,
			OffBalanceThreshold: 0.3,
			KnockdownThreshold:  0.5,
			RecoveryBase:        2.5,
			AgilityBand:         Band{Min: 0.2, Max: 2.0},
			StabilityBand:       Band{Min: 0.2, Max: 2.0},
			PushPowerBand:       Band{Min: 40, Max: 400},
			MassScale:           1.0,
		},
		Actions: ActionTuning{
			PushForce:         220,
			ShootForce:        160,
			TackleForce:       340,
			DribbleBreakForce: 260,
			PushNudgeScale:    0.35,
			KnockdownScale:    1.6,
		},
	}
}
