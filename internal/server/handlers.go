package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/lkklausen/ironmax/internal/strength"
)

// EstimateResponse is the payload for /api/v1/onerm.
type EstimateResponse struct {
	Formula string  `json:"formula"`
	Weight  float64 `json:"weight"`
	Reps    int     `json:"reps"`
	OneRM   float64 `json:"one_rm"`
}

// ProjectionSummary carries the headline numbers the dashboard renders as
// metric tiles: current estimate, final projection, absolute gain, and the
// combined weekly rate as a percentage.
type ProjectionSummary struct {
	Current       float64 `json:"current"`
	Final         float64 `json:"final"`
	Gain          float64 `json:"gain"`
	WeeklyRatePct float64 `json:"weekly_rate_pct"`
}

// ProjectionResponse is the payload for /api/v1/projection.
type ProjectionResponse struct {
	Formula    string               `json:"formula"`
	Experience string               `json:"experience"`
	Nutrition  string               `json:"nutrition"`
	Summary    ProjectionSummary    `json:"summary"`
	Projection *strength.Projection `json:"projection"`
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	weight, reps, err := s.parseLift(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	formula, err := parseFormulaParam(r, strength.Average)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	oneRM, err := strength.Estimate(weight, reps, formula)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.metrics.CounterEstimates.WithLabelValues(formula.String()).Inc()

	writeJSON(w, http.StatusOK, EstimateResponse{
		Formula: formula.String(),
		Weight:  weight,
		Reps:    reps,
		OneRM:   oneRM,
	})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	weight, reps, err := s.parseLift(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	cmp, err := strength.EstimateAll(weight, reps)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	weight, reps, err := s.parseLift(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	formula, err := parseFormulaParam(r, strength.Average)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	exp := strength.Beginner
	if v := r.URL.Query().Get("experience"); v != "" {
		if exp, err = strength.ParseExperience(v); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}

	nut := strength.Surplus
	if v := r.URL.Query().Get("nutrition"); v != "" {
		if nut, err = strength.ParseNutrition(v); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}

	weeks := 8
	if v := r.URL.Query().Get("weeks"); v != "" {
		weeks, err = strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "weeks must be an integer"})
			return
		}
	}
	if weeks < 1 || weeks > s.limits.MaxWeeks {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("weeks must be between 1 and %d", s.limits.MaxWeeks)})
		return
	}

	oneRM, err := strength.Estimate(weight, reps, formula)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.metrics.CounterEstimates.WithLabelValues(formula.String()).Inc()

	proj, err := strength.ProjectProfile(oneRM, exp, nut, weeks)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ProjectionResponse{
		Formula:    formula.String(),
		Experience: exp.String(),
		Nutrition:  nut.String(),
		Summary: ProjectionSummary{
			Current:       oneRM,
			Final:         proj.Final().Average,
			Gain:          proj.Gain(),
			WeeklyRatePct: proj.RateAverage * 100,
		},
		Projection: proj,
	})
}

// catalogEntry pairs a selector label with its associated rate or multiplier.
type catalogEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	formulas := make([]string, 0, len(strength.Formulas()))
	for _, f := range strength.Formulas() {
		formulas = append(formulas, f.String())
	}

	levels := make([]catalogEntry, 0, len(strength.ExperienceLevels()))
	for _, e := range strength.ExperienceLevels() {
		levels = append(levels, catalogEntry{Label: e.String(), Value: e.WeeklyRate()})
	}

	statuses := make([]catalogEntry, 0, len(strength.NutritionStatuses()))
	for _, n := range strength.NutritionStatuses() {
		statuses = append(statuses, catalogEntry{Label: n.String(), Value: n.Multiplier()})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"formulas":           formulas,
		"experience_levels":  levels,
		"nutrition_statuses": statuses,
		"limits": map[string]int{
			"max_reps":  s.limits.MaxReps,
			"max_weeks": s.limits.MaxWeeks,
		},
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseLift reads and bounds the weight/reps query parameters shared by
// every estimation endpoint.
func (s *Server) parseLift(r *http.Request) (weight float64, reps int, err error) {
	weightStr := r.URL.Query().Get("weight")
	if weightStr == "" {
		return 0, 0, fmt.Errorf("weight parameter required")
	}
	weight, err = strconv.ParseFloat(weightStr, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("weight must be a number")
	}
	if weight <= 0 {
		return 0, 0, fmt.Errorf("weight must be positive")
	}

	repsStr := r.URL.Query().Get("reps")
	if repsStr == "" {
		return 0, 0, fmt.Errorf("reps parameter required")
	}
	reps, err = strconv.Atoi(repsStr)
	if err != nil {
		return 0, 0, fmt.Errorf("reps must be an integer")
	}
	if reps < 1 || reps > s.limits.MaxReps {
		return 0, 0, fmt.Errorf("reps must be between 1 and %d", s.limits.MaxReps)
	}
	return weight, reps, nil
}

func parseFormulaParam(r *http.Request, fallback strength.Formula) (strength.Formula, error) {
	v := r.URL.Query().Get("formula")
	if v == "" {
		return fallback, nil
	}
	return strength.ParseFormula(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
