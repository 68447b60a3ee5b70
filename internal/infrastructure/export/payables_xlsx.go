package export

import (
	"context"
	"io"
	"time"

	"morais_erp/internal/infrastructure/logging"
	"morais_erp/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	PayablesSheet = "Contas a Pagar"
	dateLayout    = "02/01/2006"
	amountColumn  = "F"
	lastColumn    = "K"
)

var payableHeaders = []interface{}{
	"ID", "Descrição", "Obra", "Fornecedor", "Categoria", "Valor",
	"Vencimento", "Status", "Forma de Pagamento", "Data de Pagamento", "Pedido",
}

// PayablesXLSX renders payables as a single sheet workbook.
type PayablesXLSX struct {
	log *logrus.Logger
}

var _ interfaces.IPayableExporter = (*PayablesXLSX)(nil)

func NewPayablesXLSX() *PayablesXLSX {
	return &PayablesXLSX{log: logging.GetLogger()}
}

func (x *PayablesXLSX) WritePayables(ctx context.Context, w io.Writer, rows []interfaces.PayableSheetRow) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}()

	if err := f.SetSheetName("Sheet1", PayablesSheet); err != nil {
		return err
	}
	if err := x.writeHeader(f); err != nil {
		return err
	}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(PayablesSheet, cell, sheetRow(row)); err != nil {
			return err
		}
	}

	if len(rows) > 0 {
		style, err := f.NewStyle(&excelize.Style{NumFmt: 4})
		if err != nil {
			return err
		}
		last, _ := excelize.CoordinatesToCellName(6, len(rows)+1)
		if err := f.SetCellStyle(PayablesSheet, amountColumn+"2", last, style); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		logging.LogError(x.log, "export", "WritePayables", logrus.Fields{"rows": len(rows)}, err)
		return err
	}
	x.log.WithField("rows", len(rows)).Info("[payable][export] workbook written")
	return nil
}

func (x *PayablesXLSX) writeHeader(f *excelize.File) error {
	if err := f.SetSheetRow(PayablesSheet, "A1", &payableHeaders); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(PayablesSheet, "A1", lastColumn+"1", style); err != nil {
		return err
	}
	if err := f.SetColWidth(PayablesSheet, "A", lastColumn, 18); err != nil {
		return err
	}
	return f.SetColWidth(PayablesSheet, "B", "B", 40)
}

func sheetRow(row interfaces.PayableSheetRow) *[]interface{} {
	p := row.Payable
	return &[]interface{}{
		p.ID,
		p.Description,
		orNA(row.ProjectName),
		orNA(row.SupplierName),
		string(p.Category),
		p.Amount,
		formatDate(&p.DueDate),
		string(p.Status),
		string(p.PaymentMethod),
		formatDate(p.PaymentDate),
		p.OrderID,
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
