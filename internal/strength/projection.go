package strength

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Experience is the athlete's training age bracket. Each bracket carries a
// base weekly fractional growth rate.
type Experience int

const (
	Beginner Experience = iota
	Intermediate
	Advanced
	Elite
)

// Nutrition is the athlete's caloric status. Each status carries a
// dimensionless multiplier applied to the base growth rate.
type Nutrition int

const (
	Surplus Nutrition = iota
	Maintenance
	Deficit
)

// ErrInvalidRange means the requested projection horizon is negative.
var ErrInvalidRange = errors.New("strength: weeks must be non-negative")

func (e Experience) String() string {
	switch e {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	case Elite:
		return "Elite"
	}
	return fmt.Sprintf("Experience(%d)", int(e))
}

// WeeklyRate returns the base weekly fractional growth rate for the bracket.
func (e Experience) WeeklyRate() float64 {
	switch e {
	case Beginner:
		return 0.0125
	case Intermediate:
		return 0.006
	case Advanced:
		return 0.0025
	case Elite:
		return 0.001
	}
	return 0
}

func (n Nutrition) String() string {
	switch n {
	case Surplus:
		return "Surplus"
	case Maintenance:
		return "Maintenance"
	case Deficit:
		return "Deficit"
	}
	return fmt.Sprintf("Nutrition(%d)", int(n))
}

// Multiplier returns the growth-rate multiplier for the caloric status.
func (n Nutrition) Multiplier() float64 {
	switch n {
	case Surplus:
		return 1.2
	case Maintenance:
		return 0.9
	case Deficit:
		return 0.5
	}
	return 0
}

// ExperienceLevels lists all brackets in ascending training age.
func ExperienceLevels() []Experience {
	return []Experience{Beginner, Intermediate, Advanced, Elite}
}

// NutritionStatuses lists all caloric statuses.
func NutritionStatuses() []Nutrition {
	return []Nutrition{Surplus, Maintenance, Deficit}
}

// ParseExperience maps a label to its Experience bracket, case-insensitively.
func ParseExperience(s string) (Experience, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return Beginner, nil
	case "intermediate":
		return Intermediate, nil
	case "advanced":
		return Advanced, nil
	case "elite":
		return Elite, nil
	}
	return 0, fmt.Errorf("strength: unknown experience level %q", s)
}

// ParseNutrition maps a label to its Nutrition status, case-insensitively.
func ParseNutrition(s string) (Nutrition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "surplus":
		return Surplus, nil
	case "maintenance":
		return Maintenance, nil
	case "deficit":
		return Deficit, nil
	}
	return 0, fmt.Errorf("strength: unknown nutrition status %q", s)
}

// ProjectionRow is one week of the projected series. Week 0 is the
// starting 1RM in every column.
type ProjectionRow struct {
	Week         int     `json:"week"`
	Average      float64 `json:"average"`
	Optimistic   float64 `json:"optimistic"`
	Conservative float64 `json:"conservative"`
}

// Projection is a week-indexed compound-growth series with its derived
// weekly rates. Rows has exactly Weeks+1 entries.
type Projection struct {
	Start            float64         `json:"start"`
	Weeks            int             `json:"weeks"`
	RateAverage      float64         `json:"rate_average"`
	RateOptimistic   float64         `json:"rate_optimistic"`
	RateConservative float64         `json:"rate_conservative"`
	Rows             []ProjectionRow `json:"rows"`
}

// Project builds the growth projection for a starting 1RM. baseRate is the
// experience bracket's weekly fractional rate and multiplier the nutrition
// adjustment; the optimistic and conservative columns run at 1.5x and 0.5x
// the combined rate. Each row is computed in closed form,
// start*(1+rate)^week, so no floating-point drift accumulates across weeks.
func Project(start, baseRate, multiplier float64, weeks int) (*Projection, error) {
	if weeks < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRange, weeks)
	}

	avg := baseRate * multiplier
	p := &Projection{
		Start:            start,
		Weeks:            weeks,
		RateAverage:      avg,
		RateOptimistic:   avg * 1.5,
		RateConservative: avg * 0.5,
		Rows:             make([]ProjectionRow, 0, weeks+1),
	}

	for week := 0; week <= weeks; week++ {
		p.Rows = append(p.Rows, ProjectionRow{
			Week:         week,
			Average:      compound(start, p.RateAverage, week),
			Optimistic:   compound(start, p.RateOptimistic, week),
			Conservative: compound(start, p.RateConservative, week),
		})
	}
	return p, nil
}

// ProjectProfile is Project with the rate parameters derived from an
// athlete profile.
func ProjectProfile(start float64, exp Experience, nut Nutrition, weeks int) (*Projection, error) {
	return Project(start, exp.WeeklyRate(), nut.Multiplier(), weeks)
}

// Final returns the last row of the series.
func (p *Projection) Final() ProjectionRow {
	return p.Rows[len(p.Rows)-1]
}

// Gain returns the projected absolute increase of the average column over
// the full horizon.
func (p *Projection) Gain() float64 {
	return p.Final().Average - p.Start
}

func compound(start, rate float64, week int) float64 {
	if week == 0 {
		return start
	}
	return start * math.Pow(1+rate, float64(week))
}
