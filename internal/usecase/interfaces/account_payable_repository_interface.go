package interfaces

import (
	"context"
	"morais_erp/internal/domain/entities"
)

// IAccountPayableRepository abstracts DynamoDB persistence for AccountPayable.
//
// ListByOrderID reads the order_id-index and is what keeps payable generation
// at one record per approved requisition.

type IAccountPayableRepository interface {
	Create(ctx context.Context, ap entities.AccountPayable) (entities.AccountPayable, error)
	Save(ctx context.Context, ap entities.AccountPayable) (entities.AccountPayable, error)
	GetByID(ctx context.Context, id string) (entities.AccountPayable, error)
	List(ctx context.Context, filter entities.PayableFilter) ([]entities.AccountPayable, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.AccountPayable, error)
}
