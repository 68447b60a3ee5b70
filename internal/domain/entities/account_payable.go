package entities

import "time"

// PaymentStatus is shared by payables and receivables.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pendente"
	PaymentStatusPaid      PaymentStatus = "Pago"
	PaymentStatusOverdue   PaymentStatus = "Vencido"
	PaymentStatusCancelled PaymentStatus = "Cancelado"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue, PaymentStatusCancelled:
		return true
	}
	return false
}

// Open reports whether the obligation still awaits settlement.
func (s PaymentStatus) Open() bool {
	return s == PaymentStatusPending || s == PaymentStatusOverdue
}

type TransactionCategory string

const (
	CategoryMateriais      TransactionCategory = "Materiais"
	CategoryServicos       TransactionCategory = "Serviços"
	CategoryAdministrativo TransactionCategory = "Administrativo"
	CategoryMaoDeObra      TransactionCategory = "Mão de Obra"
	CategoryEquipamentos   TransactionCategory = "Equipamentos"
	CategoryOutros         TransactionCategory = "Outros"
)

// TransactionCategories lists every category in report order.
var TransactionCategories = []TransactionCategory{
	CategoryMateriais,
	CategoryServicos,
	CategoryAdministrativo,
	CategoryMaoDeObra,
	CategoryEquipamentos,
	CategoryOutros,
}

func (c TransactionCategory) Valid() bool {
	for _, v := range TransactionCategories {
		if v == c {
			return true
		}
	}
	return false
}

// AccountPayable is a financial obligation, either entered by hand or derived
// from an approved requisition (OrderID set).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
type AccountPayable struct {
	ID            string              `json:"id"`
	OrderID       string              `json:"order_id,omitempty"`
	ProjectID     string              `json:"project_id"`
	SupplierID    string              `json:"supplier_id"`
	Description   string              `json:"description"`
	Amount        float64             `json:"amount"`
	DueDate       time.Time           `json:"due_date"`
	Status        PaymentStatus       `json:"status"`
	PaymentMethod PaymentMethod       `json:"payment_method,omitempty"`
	PaymentDate   *time.Time          `json:"payment_date,omitempty"`
	Category      TransactionCategory `json:"category"`
	BillingTerms  string              `json:"billing_terms,omitempty"`
	Observations  string              `json:"observations,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	CreatedBy     string              `json:"created_by"`
}

// IsOverdue reports an open payable whose due date is before today.
func (a *AccountPayable) IsOverdue(now time.Time) bool {
	if a.Status == PaymentStatusOverdue {
		return true
	}
	return a.Status == PaymentStatusPending && a.DueDate.Before(DateOnly(now))
}

// MarkPaid settles an open payable.
func (a *AccountPayable) MarkPaid(paidAt time.Time, method PaymentMethod) bool {
	if !a.Status.Open() {
		return false
	}
	d := DateOnly(paidAt)
	a.Status = PaymentStatusPaid
	a.PaymentDate = &d
	a.PaymentMethod = method
	return true
}

// Cancel voids an open payable. Payables are never deleted.
func (a *AccountPayable) Cancel() bool {
	if !a.Status.Open() {
		return false
	}
	a.Status = PaymentStatusCancelled
	return true
}

// DateOnly truncates t to midnight UTC of its UTC calendar day.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// PayableFilter narrows payable listings. Empty fields match everything.
type PayableFilter struct {
	Status     PaymentStatus
	ProjectID  string
	SupplierID string
}

func (f PayableFilter) Match(ap AccountPayable) bool {
	if f.Status != "" && ap.Status != f.Status {
		return false
	}
	if f.ProjectID != "" && ap.ProjectID != f.ProjectID {
		return false
	}
	return f.SupplierID == "" || ap.SupplierID == f.SupplierID
}
