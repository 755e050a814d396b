package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(calc Calculator, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("IronMax", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("IronMax strength calculator. Estimate one-rep maxes from submaximal lifts, compare estimation formulas, and project strength growth over a training block."),
	)

	h := &handlers{calc: calc, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolEstimateOneRM, Handler: h.estimateOneRM},
		server.ServerTool{Tool: toolCompareFormulas, Handler: h.compareFormulas},
		server.ServerTool{Tool: toolProjectStrength, Handler: h.projectStrength},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resFormulaCatalog, Handler: h.formulaCatalog},
		server.ServerResource{Resource: resAthleteProfiles, Handler: h.athleteProfiles},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	calc Calculator
	log  *slog.Logger
}

// --- Resource definitions ---

var resFormulaCatalog = mcp.NewResource(
	"ironmax://formula_catalog",
	"Formula Catalog",
	mcp.WithResourceDescription("The selectable 1RM estimation formulas with their definitions"),
	mcp.WithMIMEType("application/json"),
)

var resAthleteProfiles = mcp.NewResource(
	"ironmax://athlete_profiles",
	"Athlete Profiles",
	mcp.WithResourceDescription("Experience levels with base weekly growth rates and nutrition statuses with their multipliers"),
	mcp.WithMIMEType("application/json"),
)
