// Package dice rolls sets of dice described by specs like "2d6".
package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/koykov/distrib"
)

// ErrMissingDice indicates a roll request had no dice specified.
var ErrMissingDice = errors.New("at least one die must be provided")

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = errors.New("dice must have sides and count in allowed range")

// ErrBadNotation indicates a dice notation that can't be parsed.
var ErrBadNotation = errors.New("dice notation must look like NdM")

// ErrTooManySpecs indicates a roll request with more than MaxSpecs specs.
var ErrTooManySpecs = errors.New("too many dice specs")

const (
	// MaxCount limits how many times a single spec may roll its die.
	MaxCount = 1000
	// MaxSides limits faces of a die.
	MaxSides = 1_000_000
	// MaxSpecs limits specs of a single roll request.
	MaxSpecs = 100
)

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Sides int `json:"sides"`
	Count int `json:"count"`
}

func (s Spec) String() string {
	return strconv.Itoa(s.Count) + "d" + strconv.Itoa(s.Sides)
}

// Validate checks Sides and Count are positive and don't exceed MaxSides and MaxCount.
func (s Spec) Validate() error {
	if s.Sides <= 0 || s.Count <= 0 || s.Sides > MaxSides || s.Count > MaxCount {
		return fmt.Errorf("%w: %s", ErrInvalidDiceSpec, s)
	}
	return nil
}

// Roll captures the results for a single dice spec.
type Roll struct {
	Sides   int   `json:"sides"`
	Results []int `json:"results"`
	Total   int   `json:"total"`
}

// Result captures the results from rolling multiple dice.
type Result struct {
	Rolls []Roll `json:"rolls"`
	Total int    `json:"total"`
}

// RollDice rolls dice of specs using provider p.
//
// # Determinism
//
// Given providers over sources in the same state (e.g. distrib.NewLCG with the same seed) and the same specs,
// RollDice produces the same Result.
//
// # Ordering
//
// Specs are processed in order. Result.Rolls keeps order of specs, Roll.Results keeps order of draws.
//
// # Errors
//
//   - At least one Spec must be provided, otherwise ErrMissingDice is returned.
//   - At most MaxSpecs specs are allowed, otherwise ErrTooManySpecs is returned.
//   - Each Spec must have Sides in range [1, MaxSides] and Count in range [1, MaxCount], otherwise
//     ErrInvalidDiceSpec is returned. Validation happens before any draw.
func RollDice(p *distrib.Provider, specs ...Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}
	if len(specs) > MaxSpecs {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManySpecs, len(specs), MaxSpecs)
	}
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return Result{}, err
		}
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0
	for _, spec := range specs {
		results := make([]int, spec.Count)
		rollTotal := 0
		for i := range results {
			results[i] = p.Dice(1, spec.Sides)
			rollTotal += results[i]
		}
		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}

// ParseSpec parses notation "NdM" (or "dM" for a single die).
func ParseSpec(s string) (Spec, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	count, sides, ok := strings.Cut(s, "d")
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	spec := Spec{Count: 1}
	var err error
	if len(count) > 0 {
		if spec.Count, err = strconv.Atoi(count); err != nil {
			return Spec{}, fmt.Errorf("%w: %q: %w", ErrBadNotation, s, err)
		}
	}
	if spec.Sides, err = strconv.Atoi(sides); err != nil {
		return Spec{}, fmt.Errorf("%w: %q: %w", ErrBadNotation, s, err)
	}
	if err = spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// ParseSpecs parses comma-separated list of notations, e.g. "2d6,1d8".
func ParseSpecs(s string) ([]Spec, error) {
	parts := strings.Split(s, ",")
	if len(parts) > MaxSpecs {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManySpecs, len(parts), MaxSpecs)
	}
	specs := make([]Spec, 0, len(parts))
	for _, part := range parts {
		spec, err := ParseSpec(part)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
