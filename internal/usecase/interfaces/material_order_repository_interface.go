package interfaces

import (
	"context"
	"morais_erp/internal/domain/entities"
)

// IMaterialOrderRepository abstracts DynamoDB persistence for MaterialOrder.
//
// Items and quotes are stored inside the order record; the aggregate is always
// written as a whole. GetByID returns a zero order (empty ID) when nothing is stored.

type IMaterialOrderRepository interface {
	Create(ctx context.Context, o entities.MaterialOrder) (entities.MaterialOrder, error)
	Save(ctx context.Context, o entities.MaterialOrder) (entities.MaterialOrder, error)
	GetByID(ctx context.Context, id string) (entities.MaterialOrder, error)
	List(ctx context.Context) ([]entities.MaterialOrder, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.MaterialOrder, error)
}
