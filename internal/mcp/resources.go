package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lkklausen/ironmax/internal/strength"
)

func (h *handlers) formulaCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	catalog := []map[string]string{
		{"label": "Average", "definition": "arithmetic mean of Epley, Brzycki, Lombardi, and O'Conner"},
		{"label": "Epley", "definition": "weight * (1 + reps/30)"},
		{"label": "Brzycki", "definition": "weight * 36 / (37 - reps)"},
		{"label": "Lombardi", "definition": "weight * reps^0.10"},
		{"label": "O'Conner", "definition": "weight * (1 + 0.025*reps)"},
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) athleteProfiles(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	levels := make([]map[string]any, 0, 4)
	for _, e := range strength.ExperienceLevels() {
		levels = append(levels, map[string]any{
			"label":       e.String(),
			"weekly_rate": e.WeeklyRate(),
		})
	}

	statuses := make([]map[string]any, 0, 3)
	for _, n := range strength.NutritionStatuses() {
		statuses = append(statuses, map[string]any{
			"label":      n.String(),
			"multiplier": n.Multiplier(),
		})
	}

	data, err := json.Marshal(map[string]any{
		"experience_levels":  levels,
		"nutrition_statuses": statuses,
	})
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
