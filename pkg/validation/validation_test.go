// pkg/validation/validation_test.go
package validation

import (
	"errors"
	"math"
	"testing"

	"github.com/pitchworks/go-courtphys/pkg/balance"
	"github.com/pitchworks/go-courtphys/pkg/physics"
)

func TestValidateVector(t *testing.T) {
	tests := []struct {
		name    string
		v       physics.Vector3D
		wantErr bool
	}{
		{"finite", physics.Vector3D{X: 1, Y: -2, Z: 3}, false},
		{"zero", physics.Vector3D{}, false},
		{"nan", physics.Vector3D{X: math.NaN()}, true},
		{"infinite", physics.Vector3D{Z: math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVector("test", tt.v)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVector() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Error %v is not ErrInvalidInput", err)
			}
		})
	}
}

func TestValidateTimeStep(t *testing.T) {
	tests := []struct {
		name    string
		dt      float64
		wantErr bool
	}{
		{"normal_tick", 1.0 / 60.0, false},
		{"at_ceiling", 0.1, false},
		{"zero", 0, true},
		{"negative", -0.016, true},
		{"over_ceiling", 0.2, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimeStep(tt.dt, 0.1)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTimeStep(%v) error = %v, wantErr %v", tt.dt, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Error %v is not ErrInvalidInput", err)
			}
		})
	}
}

func TestValidateAttributes(t *testing.T) {
	valid := balance.PlayerAttributes{Strength: 70, Agility: 60, BalanceRating: 55, Weight: 80}

	tests := []struct {
		name    string
		mutate  func(*balance.PlayerAttributes)
		wantErr bool
	}{
		{"valid", func(*balance.PlayerAttributes) {}, false},
		{"rating_floor", func(a *balance.PlayerAttributes) { a.Strength = 0 }, false},
		{"rating_ceiling", func(a *balance.PlayerAttributes) { a.Agility = 100 }, false},
		{"negative_rating", func(a *balance.PlayerAttributes) { a.BalanceRating = -1 }, true},
		{"rating_over_100", func(a *balance.PlayerAttributes) { a.Strength = 101 }, true},
		{"nan_rating", func(a *balance.PlayerAttributes) { a.Agility = math.NaN() }, true},
		{"weight_too_low", func(a *balance.PlayerAttributes) { a.Weight = 30 }, true},
		{"weight_too_high", func(a *balance.PlayerAttributes) { a.Weight = 200 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := valid
			tt.mutate(&attrs)
			err := ValidateAttributes(attrs)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAttributes() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateActionForce(t *testing.T) {
	tests := []struct {
		name    string
		force   balance.ActionForce
		wantErr bool
	}{
		{
			name:    "valid_push",
			force:   balance.ActionForce{Direction: physics.Vector3D{X: 1}, Duration: 0.2, Type: balance.ActionPush},
			wantErr: false,
		},
		{
			name:    "zero_direction",
			force:   balance.ActionForce{Duration: 0.2},
			wantErr: true,
		},
		{
			name:    "nan_direction",
			force:   balance.ActionForce{Direction: physics.Vector3D{X: math.NaN()}, Duration: 0.2},
			wantErr: true,
		},
		{
			name:    "zero_duration",
			force:   balance.ActionForce{Direction: physics.Vector3D{X: 1}},
			wantErr: true,
		},
		{
			name:    "negative_duration",
			force:   balance.ActionForce{Direction: physics.Vector3D{X: 1}, Duration: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateActionForce(tt.force)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateActionForce() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Error %v is not ErrInvalidInput", err)
			}
		})
	}
}
