// pkg/balance/state.go
package balance

import (
	"github.com/pitchworks/go-courtphys/pkg/config"
)

// Tag is the graded balance state of a player. Every live player carries
// exactly one Tag at all times.
type Tag int

const (
	Neutral Tag = iota
	Staggered
	OffBalance
	KnockedDown
	Recovering
)

// String returns a human-readable name for event payloads and logs.
func (t Tag) String() string {
	switch t {
	case Neutral:
		return "neutral"
	case Staggered:
		return "staggered"
	case OffBalance:
		return "off_balance"
	case KnockedDown:
		return "knocked_down"
	case Recovering:
		return "recovering"
	default:
		return "unknown"
	}
}

// allowedTransitions is the full edge set of the balance state machine.
// Balance degrades and recovers one grade at a time; a knocked-down player
// must pass through Recovering and can never jump straight back to
// Staggered or Neutral.
var allowedTransitions = map[Tag][]Tag{
	Neutral:     {Staggered},
	Staggered:   {Neutral, OffBalance},
	OffBalance:  {Staggered, KnockedDown},
	KnockedDown: {Recovering},
	Recovering:  {Neutral},
}

// CanTransition reports whether the edge from one tag to another exists in
// the transition table. All other edges are rejected.
func CanTransition(from, to Tag) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsNeutral reports whether the player is fully balanced.
func IsNeutral(t Tag) bool {
	return t == Neutral
}

// RecoveryTime estimates how long a player stays in the given state before
// the timer-driven transition fires. Agile, stable players get up faster.
// Neutral and Staggered states recover through displacement alone and
// report zero.
func RecoveryTime(t Tag, d Derived, tuning config.BalanceTuning) float64 {
	responsiveness := (d.Agility + d.Stability) / 2
	if responsiveness <= 0 {
		responsiveness = 1
	}

	switch t {
	case KnockedDown:
		return tuning.RecoveryBase / responsiveness
	case OffBalance:
		return tuning.RecoveryBase * 0.4 / responsiveness
	case Recovering:
		return tuning.RecoveryBase * 0.3 / responsiveness
	default:
		return 0
	}
}
