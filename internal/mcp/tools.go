package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lkklausen/ironmax/internal/strength"
)

// --- Tool definitions ---

var toolEstimateOneRM = mcp.NewTool("estimate_one_rm",
	mcp.WithDescription("Estimate a one-rep max from a submaximal lift (weight and reps) using a chosen formula."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight lifted (kg or lb, unit-agnostic). Must be positive.")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions performed. Must be at least 1.")),
	mcp.WithString("formula", mcp.Description("Estimation formula. Defaults to Average."),
		mcp.Enum("Average", "Epley", "Brzycki", "Lombardi", "O'Conner")),
)

var toolCompareFormulas = mcp.NewTool("compare_formulas",
	mcp.WithDescription("Evaluate all four 1RM formulas (Epley, Brzycki, Lombardi, O'Conner) plus their mean at the same weight/reps pair."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight lifted. Must be positive.")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions performed. Must be at least 1.")),
)

var toolProjectStrength = mcp.NewTool("project_strength",
	mcp.WithDescription("Estimate a current 1RM and project its compound weekly growth over a training block. Returns average, optimistic, and conservative series."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight lifted. Must be positive.")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions performed. Must be at least 1.")),
	mcp.WithString("formula", mcp.Description("Estimation formula. Defaults to Average."),
		mcp.Enum("Average", "Epley", "Brzycki", "Lombardi", "O'Conner")),
	mcp.WithString("experience", mcp.Description("Training age bracket. Defaults to Beginner."),
		mcp.Enum("Beginner", "Intermediate", "Advanced", "Elite")),
	mcp.WithString("nutrition", mcp.Description("Caloric status. Defaults to Surplus."),
		mcp.Enum("Surplus", "Maintenance", "Deficit")),
	mcp.WithNumber("weeks", mcp.Description("Projection horizon in weeks. Defaults to 8.")),
)

// --- Tool handlers ---

func (h *handlers) estimateOneRM(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	reps, err := req.RequireInt("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}
	formula, err := strength.ParseFormula(req.GetString("formula", "Average"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := h.calc.Estimate(ctx, weight, reps, formula)
	if err != nil {
		h.log.Error("mcp estimate_one_rm", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(resp)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) compareFormulas(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	reps, err := req.RequireInt("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}

	cmp, err := h.calc.Compare(ctx, weight, reps)
	if err != nil {
		h.log.Error("mcp compare_formulas", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(cmp)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) projectStrength(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	reps, err := req.RequireInt("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}
	formula, err := strength.ParseFormula(req.GetString("formula", "Average"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	exp, err := strength.ParseExperience(req.GetString("experience", "Beginner"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	nut, err := strength.ParseNutrition(req.GetString("nutrition", "Surplus"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	weeks := req.GetInt("weeks", 8)

	resp, err := h.calc.Project(ctx, weight, reps, formula, exp, nut, weeks)
	if err != nil {
		h.log.Error("mcp project_strength", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(resp)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
