package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/planfit/internal/plan"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetWeek = mcp.NewTool("get_week",
	mcp.WithDescription("Get the full week plan: all seven days with their sessions (sorted by start time) and per-day load ratings (Recovery/Build/Load)."),
)

var toolGetPlanSummary = mcp.NewTool("get_plan_summary",
	mcp.WithDescription("Get aggregate plan statistics: total session count, session count per focus label, and the next scheduled session under the Monday-start week ordering."),
)

var toolListTemplates = mcp.NewTool("list_templates",
	mcp.WithDescription("List the built-in session templates. Apply one to a day with apply_template using its index in this list."),
)

var toolAddSession = mcp.NewTool("add_session",
	mcp.WithDescription("Schedule a new training session. Exercise entries with an empty name are dropped; if none remain, a default full-body circuit is substituted so the session always has at least one exercise."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Day of week (Monday..Sunday)"), mcp.Enum("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday")),
	mcp.WithString("start", mcp.Required(), mcp.Description("Start time, zero-padded 24h HH:MM (e.g. 07:30)")),
	mcp.WithString("end", mcp.Required(), mcp.Description("End time, HH:MM")),
	mcp.WithString("focus", mcp.Description("Focus label (e.g. Strength, Conditioning)")),
	mcp.WithString("intensity", mcp.Description("Intensity level"), mcp.Enum("Light", "Moderate", "Intense")),
	mcp.WithString("location", mcp.Description("Where the session happens")),
	mcp.WithString("target", mcp.Description("Target outcome for the session")),
	mcp.WithString("notes", mcp.Description("Free-form notes")),
	mcp.WithArray("exercises", mcp.Description("Exercise list; each entry has name, focus, sets (number), reps, notes")),
)

var toolRemoveSession = mcp.NewTool("remove_session",
	mcp.WithDescription("Remove a session by id. Removing an unknown id is a no-op."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Session id")),
)

var toolClearDay = mcp.NewTool("clear_day",
	mcp.WithDescription("Remove every session scheduled on the given day."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Day of week (Monday..Sunday)"), mcp.Enum("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday")),
)

var toolApplyTemplate = mcp.NewTool("apply_template",
	mcp.WithDescription("Create a session on the given day from a built-in template, in the default 18:00-19:00 slot."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Day of week (Monday..Sunday)"), mcp.Enum("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday")),
	mcp.WithNumber("template", mcp.Required(), mcp.Description("Template index from list_templates (0-based)")),
)

var toolDuplicateSession = mcp.NewTool("duplicate_session",
	mcp.WithDescription("Copy a session onto the adjacent day (wrapping the week), shifting its times one hour in the same direction (wrapping midnight). The original session is unchanged."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Session id to copy")),
	mcp.WithString("direction", mcp.Required(), mcp.Description("Which adjacent day"), mcp.Enum("next", "previous")),
)

// --- Tool handlers ---

func (h *handlers) getWeek(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(plan.GroupByDay(h.store.Sessions()))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPlanSummary(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(plan.Summarize(h.store.Sessions()))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listTemplates(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(plan.Templates())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) addSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dayStr, err := req.RequireString("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}
	day, ok := plan.ParseDay(dayStr)
	if !ok {
		return mcp.NewToolResultError("unknown day: " + dayStr), nil
	}
	start, err := req.RequireString("start")
	if err != nil {
		return mcp.NewToolResultError("start parameter is required"), nil
	}
	end, err := req.RequireString("end")
	if err != nil {
		return mcp.NewToolResultError("end parameter is required"), nil
	}

	draft := plan.SessionDraft{
		Day:       day,
		Start:     start,
		End:       end,
		Focus:     req.GetString("focus", ""),
		Intensity: plan.Intensity(req.GetString("intensity", "")),
		Location:  req.GetString("location", ""),
		Target:    req.GetString("target", ""),
		Notes:     req.GetString("notes", ""),
	}

	rows, err := exerciseRows(req)
	if err != nil {
		return mcp.NewToolResultError("invalid exercises: " + err.Error()), nil
	}

	session := h.store.AddSession(draft, rows)
	h.log.Info("mcp add_session", "id", session.ID, "day", session.Day)

	result, err := mcp.NewToolResultJSON(session)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// exerciseRows decodes the free-form exercises argument through a JSON
// round-trip into typed draft rows.
func exerciseRows(req mcp.CallToolRequest) ([]plan.ExerciseDraft, error) {
	raw, ok := req.GetArguments()["exercises"]
	if !ok || raw == nil {
		return nil, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var rows []plan.ExerciseDraft
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (h *handlers) removeSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	removed := h.store.RemoveSession(id)
	result, err := mcp.NewToolResultJSON(map[string]bool{"removed": removed})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) clearDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dayStr, err := req.RequireString("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}
	day, ok := plan.ParseDay(dayStr)
	if !ok {
		return mcp.NewToolResultError("unknown day: " + dayStr), nil
	}

	removed := h.store.ClearDay(day)
	result, err := mcp.NewToolResultJSON(map[string]int{"removed": removed})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) applyTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dayStr, err := req.RequireString("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}
	day, ok := plan.ParseDay(dayStr)
	if !ok {
		return mcp.NewToolResultError("unknown day: " + dayStr), nil
	}
	index, err := req.RequireInt("template")
	if err != nil {
		return mcp.NewToolResultError("template parameter is required"), nil
	}

	session, ok := h.store.ApplyTemplate(day, index)
	if !ok {
		return mcp.NewToolResultError("template index out of range"), nil
	}
	h.log.Info("mcp apply_template", "id", session.ID, "day", day, "template", index)

	result, err := mcp.NewToolResultJSON(session)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) duplicateSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	dirStr, err := req.RequireString("direction")
	if err != nil {
		return mcp.NewToolResultError("direction parameter is required"), nil
	}
	dir, ok := plan.ParseDirection(dirStr)
	if !ok {
		return mcp.NewToolResultError("direction must be next or previous"), nil
	}

	session, ok := h.store.DuplicateSession(id, dir)
	if !ok {
		return mcp.NewToolResultError("session not found: " + id), nil
	}
	h.log.Info("mcp duplicate_session", "source", id, "copy", session.ID, "day", session.Day)

	result, err := mcp.NewToolResultJSON(session)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
