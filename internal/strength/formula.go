package strength

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Formula selects which empirical 1RM regression to apply.
type Formula int

const (
	Epley Formula = iota
	Brzycki
	Lombardi
	OConner
	// Average is the arithmetic mean of the four formulas above.
	Average
)

var (
	// ErrInvalidInput means the weight or rep count is outside the valid domain.
	ErrInvalidInput = errors.New("strength: weight must be positive and reps at least 1")
	// ErrUnknownFormula means the formula selector is not a known variant.
	ErrUnknownFormula = errors.New("strength: unknown formula")
)

// String returns the presentation label for the formula.
func (f Formula) String() string {
	switch f {
	case Epley:
		return "Epley"
	case Brzycki:
		return "Brzycki"
	case Lombardi:
		return "Lombardi"
	case OConner:
		return "O'Conner"
	case Average:
		return "Average"
	}
	return fmt.Sprintf("Formula(%d)", int(f))
}

// Formulas lists all selectable formulas in presentation order.
func Formulas() []Formula {
	return []Formula{Average, Epley, Brzycki, Lombardi, OConner}
}

// ParseFormula maps a label to its Formula. Matching is case-insensitive
// and tolerates the apostrophe-less "oconner" spelling.
func ParseFormula(s string) (Formula, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "epley":
		return Epley, nil
	case "brzycki":
		return Brzycki, nil
	case "lombardi":
		return Lombardi, nil
	case "o'conner", "oconner":
		return OConner, nil
	case "average":
		return Average, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormula, s)
}

// Estimate returns the estimated one-rep max for a lift of weight (kg or lb,
// unit-agnostic) performed for reps repetitions, under the given formula.
// All formulas return weight unchanged at reps == 1.
func Estimate(weight float64, reps int, f Formula) (float64, error) {
	if weight <= 0 || reps < 1 {
		return 0, fmt.Errorf("%w: weight=%g reps=%d", ErrInvalidInput, weight, reps)
	}
	switch f {
	case Epley:
		return epley(weight, reps), nil
	case Brzycki:
		return brzycki(weight, reps), nil
	case Lombardi:
		return lombardi(weight, reps), nil
	case OConner:
		return oconner(weight, reps), nil
	case Average:
		return (epley(weight, reps) + brzycki(weight, reps) +
			lombardi(weight, reps) + oconner(weight, reps)) / 4, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownFormula, int(f))
}

// Comparison holds the raw per-formula estimates for one weight/reps pair.
type Comparison struct {
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Epley    float64 `json:"epley"`
	Brzycki  float64 `json:"brzycki"`
	Lombardi float64 `json:"lombardi"`
	OConner  float64 `json:"oconner"`
	Average  float64 `json:"average"`
}

// EstimateAll evaluates every formula at the same weight/reps pair.
func EstimateAll(weight float64, reps int) (*Comparison, error) {
	if weight <= 0 || reps < 1 {
		return nil, fmt.Errorf("%w: weight=%g reps=%d", ErrInvalidInput, weight, reps)
	}
	c := &Comparison{
		Weight:   weight,
		Reps:     reps,
		Epley:    epley(weight, reps),
		Brzycki:  brzycki(weight, reps),
		Lombardi: lombardi(weight, reps),
		OConner:  oconner(weight, reps),
	}
	c.Average = (c.Epley + c.Brzycki + c.Lombardi + c.OConner) / 4
	return c, nil
}

func epley(weight float64, reps int) float64 {
	if reps == 1 {
		return weight
	}
	return weight * (1 + float64(reps)/30)
}

func brzycki(weight float64, reps int) float64 {
	if reps == 1 {
		return weight
	}
	// Denominator goes non-positive at 37 reps; the formula has no
	// meaning there, so hand the weight back unchanged.
	if reps >= 37 {
		return weight
	}
	return weight * (36 / (37 - float64(reps)))
}

func lombardi(weight float64, reps int) float64 {
	if reps == 1 {
		return weight
	}
	return weight * math.Pow(float64(reps), 0.10)
}

func oconner(weight float64, reps int) float64 {
	if reps == 1 {
		return weight
	}
	return weight * (1 + 0.025*float64(reps))
}
