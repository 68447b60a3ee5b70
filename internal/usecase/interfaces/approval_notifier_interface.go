package interfaces

import (
	"context"
	"morais_erp/internal/domain/entities"
)

// IApprovalNotifier is called once after a requisition is stored as APPROVED.
type IApprovalNotifier interface {
	OnOrderApproved(ctx context.Context, order entities.MaterialOrder) (entities.AccountPayable, error)
}
