package interfaces

import (
	"context"
	"morais_erp/internal/domain/entities"
)

// IAccountReceivableRepository abstracts DynamoDB persistence for AccountReceivable.

type IAccountReceivableRepository interface {
	Create(ctx context.Context, ar entities.AccountReceivable) (entities.AccountReceivable, error)
	Save(ctx context.Context, ar entities.AccountReceivable) (entities.AccountReceivable, error)
	GetByID(ctx context.Context, id string) (entities.AccountReceivable, error)
	List(ctx context.Context, filter entities.ReceivableFilter) ([]entities.AccountReceivable, error)
}
