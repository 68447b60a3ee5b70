package interfaces

import (
	"context"
	"io"
	"morais_erp/internal/domain/entities"
)

// PayableSheetRow is one payable with its references already resolved for display.
type PayableSheetRow struct {
	Payable      entities.AccountPayable
	ProjectName  string
	SupplierName string
}

// IPayableExporter writes payables as a spreadsheet document.
type IPayableExporter interface {
	WritePayables(ctx context.Context, w io.Writer, rows []PayableSheetRow) error
}
