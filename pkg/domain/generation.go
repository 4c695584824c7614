package domain

type TaskType string

const (
	TaskWorkout      TaskType = "workout"
	TaskPainAnalysis TaskType = "pain_analysis"
	TaskNutrition    TaskType = "nutrition"
	TaskMentalCoach  TaskType = "mental_coach"
	TaskHabits       TaskType = "habits"
	TaskGeneral      TaskType = "general"
)

// GenerationRequest is a single text-generation call. It lives for one
// request/response cycle and is never stored as-is.
type GenerationRequest struct {
	Prompt     string
	Context    string
	Type       TaskType
	RenderHTML bool
}

type GenerationResponse struct {
	Text string
	Type TaskType
	HTML string
}

// ChatParams is the provider-agnostic shape of one chat-completion call.
type ChatParams struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}
