package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the coaching tools: exercise progress
// of a client and completion state of a program.
func NewServer(api CoachingApi) *mcp.Server {
	h := NewHandler(NewContextService(api))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "coachboard",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_progress",
		Description: "Returns the logged sets (date, weight, reps) of one exercise for a client, plus per-day max weight, volume and set count. Args: client_id, exercise_id. Use when asked how a client progressed on an exercise.",
	}, h.GetExerciseProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_program_completion",
		Description: "Returns the status of a training program and, per exercise, how many sets have recorded actuals and whether it is complete. Arg: program_id. Use when asked what is left to do in a program.",
	}, h.GetProgramCompletionTool())

	return s
}
