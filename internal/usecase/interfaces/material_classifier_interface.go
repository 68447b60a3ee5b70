package interfaces

import (
	"context"
	"morais_erp/internal/domain/entities"
)

// IMaterialClassifier suggests a category and unit for a free-text material name.
// Implementations never fail the caller: they answer the Outros/un fallback instead.
type IMaterialClassifier interface {
	Classify(ctx context.Context, materialName string) entities.MaterialClassification
}
