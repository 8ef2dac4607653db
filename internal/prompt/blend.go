package prompt

import (
	"errors"
	"fmt"
	"math"

	"github.com/apresai/repost/internal/persona"
)

// ErrInvalidWeight is returned for blend weights that are zero or
// negative.
var ErrInvalidWeight = errors.New("invalid persona weight")

// WeightedPersona pairs a persona profile with a relative blend
// weight. Weights do not have to sum to 1: they are relative, and
// normalization is an explicit caller step, never implicit.
type WeightedPersona struct {
	Profile persona.Profile
	Weight  float64
}

// Validate checks a blend set before synthesis: the set must be
// non-empty and every weight strictly positive. Order is never
// touched.
func Validate(refs []WeightedPersona) error {
	if len(refs) == 0 {
		return fmt.Errorf("%w: blend requires at least one persona", ErrInvalidWeight)
	}
	for _, ref := range refs {
		if ref.Weight <= 0 {
			return fmt.Errorf("%w: %q has weight %g", ErrInvalidWeight, ref.Profile.Name, ref.Weight)
		}
	}
	return nil
}

// Normalize rescales weights so they sum to 1.0, rounding each to two
// decimals. A zero-total set is returned unchanged. The input slice is
// not modified and order is preserved.
func Normalize(refs []WeightedPersona) []WeightedPersona {
	var total float64
	for _, ref := range refs {
		total += ref.Weight
	}
	if total == 0 {
		return refs
	}

	out := make([]WeightedPersona, len(refs))
	for i, ref := range refs {
		out[i] = WeightedPersona{
			Profile: ref.Profile,
			Weight:  math.Round(ref.Weight/total*100) / 100,
		}
	}
	return out
}

// influencePercent renders a weight as the integer percentage embedded
// in blend prompts.
func influencePercent(weight float64) int {
	return int(math.Round(weight * 100))
}
