package strength

import (
	"errors"
	"math"
	"testing"
)

// TestProjectRowZeroEqualsStart verifies week 0 is the starting 1RM in all
// three columns, regardless of rates.
func TestProjectRowZeroEqualsStart(t *testing.T) {
	cases := []struct {
		start      float64
		rate, mult float64
		weeks      int
	}{
		{100, 0.0125, 1.2, 8},
		{62.5, 0.001, 0.5, 0},
		{200, 0.006, 0.9, 24},
	}
	for _, c := range cases {
		p, err := Project(c.start, c.rate, c.mult, c.weeks)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r0 := p.Rows[0]
		if r0.Week != 0 || r0.Average != c.start || r0.Optimistic != c.start || r0.Conservative != c.start {
			t.Errorf("row 0 = %+v, want all columns %g at week 0", r0, c.start)
		}
	}
}

// TestProjectSeriesLength verifies the series has exactly weeks+1 rows with
// weeks indexed 0..weeks.
func TestProjectSeriesLength(t *testing.T) {
	for _, weeks := range []int{0, 1, 2, 8, 24} {
		p, err := Project(100, 0.0125, 1.2, weeks)
		if err != nil {
			t.Fatalf("weeks=%d: unexpected error: %v", weeks, err)
		}
		if len(p.Rows) != weeks+1 {
			t.Fatalf("weeks=%d: len(Rows) = %d, want %d", weeks, len(p.Rows), weeks+1)
		}
		for i, r := range p.Rows {
			if r.Week != i {
				t.Errorf("row %d has week %d", i, r.Week)
			}
		}
	}
}

// TestProjectCompoundGrowth checks the closed-form compound law for every
// row of a known scenario: Beginner in a caloric surplus.
func TestProjectCompoundGrowth(t *testing.T) {
	p, err := Project(100, 0.0125, 1.2, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(p.RateAverage, 0.015) {
		t.Fatalf("RateAverage = %g, want 0.015", p.RateAverage)
	}
	if !almostEqual(p.RateOptimistic, 0.0225) {
		t.Fatalf("RateOptimistic = %g, want 0.0225", p.RateOptimistic)
	}
	if !almostEqual(p.RateConservative, 0.0075) {
		t.Fatalf("RateConservative = %g, want 0.0075", p.RateConservative)
	}

	for _, r := range p.Rows {
		w := float64(r.Week)
		if want := 100 * math.Pow(1.015, w); !almostEqual(r.Average, want) {
			t.Errorf("week %d average = %g, want %g", r.Week, r.Average, want)
		}
		if want := 100 * math.Pow(1.0225, w); !almostEqual(r.Optimistic, want) {
			t.Errorf("week %d optimistic = %g, want %g", r.Week, r.Optimistic, want)
		}
		if want := 100 * math.Pow(1.0075, w); !almostEqual(r.Conservative, want) {
			t.Errorf("week %d conservative = %g, want %g", r.Week, r.Conservative, want)
		}
	}

	// Spot values from the two-week scenario.
	if !almostEqual(p.Rows[1].Average, 101.5) {
		t.Errorf("week 1 average = %g, want 101.5", p.Rows[1].Average)
	}
	if !almostEqual(p.Rows[1].Optimistic, 102.25) {
		t.Errorf("week 1 optimistic = %g, want 102.25", p.Rows[1].Optimistic)
	}
	if !almostEqual(p.Rows[1].Conservative, 100.75) {
		t.Errorf("week 1 conservative = %g, want 100.75", p.Rows[1].Conservative)
	}
	if !almostEqual(p.Rows[2].Average, 103.0225) {
		t.Errorf("week 2 average = %g, want 103.0225", p.Rows[2].Average)
	}
}

// TestProjectOrderingAndMonotonicity verifies optimistic >= average >=
// conservative in every row and that each column is non-decreasing.
func TestProjectOrderingAndMonotonicity(t *testing.T) {
	for _, exp := range ExperienceLevels() {
		for _, nut := range NutritionStatuses() {
			p, err := ProjectProfile(150, exp, nut, 24)
			if err != nil {
				t.Fatalf("%s/%s: unexpected error: %v", exp, nut, err)
			}
			var prev ProjectionRow
			for i, r := range p.Rows {
				if r.Optimistic < r.Average || r.Average < r.Conservative {
					t.Errorf("%s/%s week %d: ordering violated: %+v", exp, nut, r.Week, r)
				}
				if i > 0 {
					if r.Average < prev.Average || r.Optimistic < prev.Optimistic || r.Conservative < prev.Conservative {
						t.Errorf("%s/%s week %d: column decreased from %+v to %+v", exp, nut, r.Week, prev, r)
					}
				}
				prev = r
			}
		}
	}
}

// TestProjectInvalidRange verifies a negative horizon fails with
// ErrInvalidRange.
func TestProjectInvalidRange(t *testing.T) {
	for _, weeks := range []int{-1, -3, -100} {
		if _, err := Project(100, 0.01, 1.0, weeks); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("weeks=%d: error = %v, want ErrInvalidRange", weeks, err)
		}
	}
}

// TestProjectionSummary covers the Final and Gain accessors.
func TestProjectionSummary(t *testing.T) {
	p, err := Project(100, 0.0125, 1.2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Final().Week != 2 {
		t.Errorf("Final().Week = %d, want 2", p.Final().Week)
	}
	if want := 103.0225 - 100; !almostEqual(p.Gain(), want) {
		t.Errorf("Gain() = %g, want %g", p.Gain(), want)
	}
}

// TestProfileRates pins the experience rates and nutrition multipliers to
// their published values.
func TestProfileRates(t *testing.T) {
	rates := map[Experience]float64{
		Beginner:     0.0125,
		Intermediate: 0.006,
		Advanced:     0.0025,
		Elite:        0.001,
	}
	for exp, want := range rates {
		if got := exp.WeeklyRate(); got != want {
			t.Errorf("%s.WeeklyRate() = %g, want %g", exp, got, want)
		}
	}

	mults := map[Nutrition]float64{
		Surplus:     1.2,
		Maintenance: 0.9,
		Deficit:     0.5,
	}
	for nut, want := range mults {
		if got := nut.Multiplier(); got != want {
			t.Errorf("%s.Multiplier() = %g, want %g", nut, got, want)
		}
	}
}

// TestParseProfiles covers experience and nutrition label parsing.
func TestParseProfiles(t *testing.T) {
	for _, exp := range ExperienceLevels() {
		got, err := ParseExperience(exp.String())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", exp, err)
		}
		if got != exp {
			t.Errorf("ParseExperience(%q) = %v, want %v", exp.String(), got, exp)
		}
	}
	for _, nut := range NutritionStatuses() {
		got, err := ParseNutrition(nut.String())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", nut, err)
		}
		if got != nut {
			t.Errorf("ParseNutrition(%q) = %v, want %v", nut.String(), got, nut)
		}
	}

	if _, err := ParseExperience("novice"); err == nil {
		t.Error("ParseExperience(\"novice\") = nil error, want error")
	}
	if _, err := ParseNutrition("bulking"); err == nil {
		t.Error("ParseNutrition(\"bulking\") = nil error, want error")
	}
}
