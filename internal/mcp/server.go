package mcp

import (
	"log/slog"

	"github.com/claude/planfit/internal/plan"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PlanSource abstracts the plan store for MCP tools.
type PlanSource interface {
	Sessions() []plan.Session
	AddSession(draft plan.SessionDraft, rows []plan.ExerciseDraft) plan.Session
	RemoveSession(id string) bool
	ClearDay(day plan.Day) int
	ApplyTemplate(day plan.Day, index int) (plan.Session, bool)
	DuplicateSession(id string, dir plan.Direction) (plan.Session, bool)
}

// Compile-time check: *plan.Store satisfies PlanSource.
var _ PlanSource = (*plan.Store)(nil)

// New creates an MCP server with all tools and resources registered.
func New(store PlanSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("PlanFit", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("PlanFit weekly workout scheduler. Compose training sessions into a week plan, apply templates, duplicate sessions across days, and read derived summaries. All state is in memory for the server's lifetime."),
	)

	h := &handlers{store: store, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWeek, Handler: h.getWeek},
		server.ServerTool{Tool: toolGetPlanSummary, Handler: h.getPlanSummary},
		server.ServerTool{Tool: toolListTemplates, Handler: h.listTemplates},
		server.ServerTool{Tool: toolAddSession, Handler: h.addSession},
		server.ServerTool{Tool: toolRemoveSession, Handler: h.removeSession},
		server.ServerTool{Tool: toolClearDay, Handler: h.clearDay},
		server.ServerTool{Tool: toolApplyTemplate, Handler: h.applyTemplate},
		server.ServerTool{Tool: toolDuplicateSession, Handler: h.duplicateSession},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWeekOverview, Handler: h.weekOverview},
		server.ServerResource{Resource: resPlanSummary, Handler: h.planSummary},
		server.ServerResource{Resource: resTemplateCatalog, Handler: h.templateCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	store PlanSource
	log   *slog.Logger
}

// --- Resource definitions ---

var resWeekOverview = mcp.NewResource(
	"planfit://week_overview",
	"Week Overview",
	mcp.WithResourceDescription("The full week: sessions grouped by day with per-day load ratings"),
	mcp.WithMIMEType("application/json"),
)

var resPlanSummary = mcp.NewResource(
	"planfit://plan_summary",
	"Plan Summary",
	mcp.WithResourceDescription("Aggregate plan view: session count, focus histogram, and the next scheduled session"),
	mcp.WithMIMEType("application/json"),
)

var resTemplateCatalog = mcp.NewResource(
	"planfit://template_catalog",
	"Template Catalog",
	mcp.WithResourceDescription("The three built-in session templates available to apply to a day"),
	mcp.WithMIMEType("application/json"),
)
