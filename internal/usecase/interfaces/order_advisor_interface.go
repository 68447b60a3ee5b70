package interfaces

import (
	"context"
	"morais_erp/internal/domain/entities"
)

// IOrderAdvisor produces short cost-saving tips for a project's requisitions.
// Like the classifier it answers a fixed fallback list instead of failing.
type IOrderAdvisor interface {
	Insights(ctx context.Context, orders []entities.MaterialOrder, projectBudget float64) []string
}
