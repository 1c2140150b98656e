package ai

import (
	"context"

	"github.com/mathaes-33/Hanover-Helpers/internal/models"
)

// ParsedBudget is the budget extracted from a free-text job request.
type ParsedBudget struct {
	Type   models.BudgetType `json:"type"`
	Amount float64           `json:"amount"`
}

// ParsedJob is the structured job a parser extracts from a free-text
// request. Budget is nil when the text mentions no amount.
type ParsedJob struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    models.JobCategory `json:"category"`
	Budget      *ParsedBudget      `json:"budget,omitempty"`
	Date        string             `json:"date"`
	IsUrgent    bool               `json:"isUrgent"`
}

// JobParser turns a free-text job request into a structured job. The
// provider behind it can be swapped or stubbed without touching callers.
type JobParser interface {
	ParseJob(ctx context.Context, prompt string) (*ParsedJob, error)
}
