package interfaces

import (
	"context"
	"morais_erp/internal/domain/entities"
)

// IRegistryRepository persists one kind of registry record (projects, suppliers,
// clients, materials). GetByID returns the zero record when nothing is stored.
type IRegistryRepository[T entities.Record[T]] interface {
	Create(ctx context.Context, rec T) (T, error)
	Save(ctx context.Context, rec T) (T, error)
	GetByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
}
