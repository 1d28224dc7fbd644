package constants

// NATS Subjects
const (
	// Planner Service
	SubjectOptimizationCompleted = "optimization.completed"
)
