package mcp

import (
	"context"

	"github.com/lkklausen/ironmax/internal/server"
	"github.com/lkklausen/ironmax/internal/strength"
)

// Calculator abstracts the computational core for MCP tools. Both Local
// (direct calls into the core) and HTTPClient (remote via REST API) satisfy
// this interface.
type Calculator interface {
	Estimate(ctx context.Context, weight float64, reps int, formula strength.Formula) (*server.EstimateResponse, error)
	Compare(ctx context.Context, weight float64, reps int) (*strength.Comparison, error)
	Project(ctx context.Context, weight float64, reps int, formula strength.Formula,
		exp strength.Experience, nut strength.Nutrition, weeks int) (*server.ProjectionResponse, error)
}

// Local runs the computational core in-process.
type Local struct{}

// Compile-time check: Local satisfies Calculator.
var _ Calculator = Local{}

func (Local) Estimate(_ context.Context, weight float64, reps int, formula strength.Formula) (*server.EstimateResponse, error) {
	oneRM, err := strength.Estimate(weight, reps, formula)
	if err != nil {
		return nil, err
	}
	return &server.EstimateResponse{
		Formula: formula.String(),
		Weight:  weight,
		Reps:    reps,
		OneRM:   oneRM,
	}, nil
}

func (Local) Compare(_ context.Context, weight float64, reps int) (*strength.Comparison, error) {
	return strength.EstimateAll(weight, reps)
}

func (Local) Project(_ context.Context, weight float64, reps int, formula strength.Formula,
	exp strength.Experience, nut strength.Nutrition, weeks int) (*server.ProjectionResponse, error) {
	oneRM, err := strength.Estimate(weight, reps, formula)
	if err != nil {
		return nil, err
	}
	proj, err := strength.ProjectProfile(oneRM, exp, nut, weeks)
	if err != nil {
		return nil, err
	}
	return &server.ProjectionResponse{
		Formula:    formula.String(),
		Experience: exp.String(),
		Nutrition:  nut.String(),
		Summary: server.ProjectionSummary{
			Current:       oneRM,
			Final:         proj.Final().Average,
			Gain:          proj.Gain(),
			WeeklyRatePct: proj.RateAverage * 100,
		},
		Projection: proj,
	}, nil
}
