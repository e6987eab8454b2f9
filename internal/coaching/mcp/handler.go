package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// ExerciseProgressInput is the input for get_exercise_progress.
type ExerciseProgressInput struct {
	ClientID   string `json:"client_id" jsonschema:"Client id"`
	ExerciseID string `json:"exercise_id" jsonschema:"Catalog exercise id (e.g. bench_press)"`
}

// GetExerciseProgressTool returns the MCP tool handler for get_exercise_progress.
func (h *Handler) GetExerciseProgressTool() func(context.Context, *mcp.CallToolRequest, ExerciseProgressInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseProgressInput) (*mcp.CallToolResult, any, error) {
		clientID := strings.TrimSpace(in.ClientID)
		exerciseID := strings.TrimSpace(in.ExerciseID)
		if clientID == "" || exerciseID == "" {
			return errorResult("client_id and exercise_id are required"), nil, nil
		}

		progress, err := h.service.GetExerciseProgress(ctx, clientID, exerciseID)
		if err != nil {
			return errorResult("Error fetching exercise progress: " + err.Error()), nil, nil
		}
		return jsonResult(progress), nil, nil
	}
}

// ProgramCompletionInput is the input for get_program_completion.
type ProgramCompletionInput struct {
	ProgramID string `json:"program_id" jsonschema:"Program id"`
}

// GetProgramCompletionTool returns the MCP tool handler for get_program_completion.
func (h *Handler) GetProgramCompletionTool() func(context.Context, *mcp.CallToolRequest, ProgramCompletionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProgramCompletionInput) (*mcp.CallToolResult, any, error) {
		programID := strings.TrimSpace(in.ProgramID)
		if programID == "" {
			return errorResult("program_id is required"), nil, nil
		}

		completion, err := h.service.GetProgramCompletion(ctx, programID)
		if err != nil {
			return errorResult("Error fetching program: " + err.Error()), nil, nil
		}
		return jsonResult(completion), nil, nil
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
