package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AccountReceivable is an amount owed by a client for a project, optionally one
// installment of a series.
//
// Provider fields keep the payment provider response of the last charge for
// traceability, the same way billing payments keep the Mercado Pago payload.
type AccountReceivable struct {
	ID                string        `json:"id"`
	ProjectID         string        `json:"project_id"`
	ClientID          string        `json:"client_id"`
	Description       string        `json:"description"`
	Amount            float64       `json:"amount"`
	DueDate           time.Time     `json:"due_date"`
	Status            PaymentStatus `json:"status"`
	PaymentMethod     PaymentMethod `json:"payment_method,omitempty"`
	PaymentDate       *time.Time    `json:"payment_date,omitempty"`
	InstallmentNumber int           `json:"installment_number"`
	TotalInstallments int           `json:"total_installments"`
	Observations      string        `json:"observations,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	CreatedBy         string        `json:"created_by"`

	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderStatus    string          `json:"provider_status,omitempty"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty"`
}

func (a *AccountReceivable) IsOverdue(now time.Time) bool {
	if a.Status == PaymentStatusOverdue {
		return true
	}
	return a.Status == PaymentStatusPending && a.DueDate.Before(DateOnly(now))
}

// MarkReceived settles an open receivable.
func (a *AccountReceivable) MarkReceived(paidAt time.Time, method PaymentMethod) bool {
	if !a.Status.Open() {
		return false
	}
	d := DateOnly(paidAt)
	a.Status = PaymentStatusPaid
	a.PaymentDate = &d
	a.PaymentMethod = method
	return true
}

// ReceivableFilter narrows receivable listings. Empty fields match everything.
type ReceivableFilter struct {
	Status    PaymentStatus
	ProjectID string
	ClientID  string
}

func (f ReceivableFilter) Match(ar AccountReceivable) bool {
	if f.Status != "" && ar.Status != f.Status {
		return false
	}
	if f.ProjectID != "" && ar.ProjectID != f.ProjectID {
		return false
	}
	return f.ClientID == "" || ar.ClientID == f.ClientID
}

// SplitInstallments turns base into n monthly installments. The amount is split
// in cents; the last installment absorbs the rounding remainder. Due dates move
// one calendar month per installment and descriptions get a "Parcela i/n" suffix
// when n > 1.
func SplitInstallments(base AccountReceivable, n int, newID func() string) []AccountReceivable {
	if n < 1 {
		n = 1
	}
	total := decimal.NewFromFloat(base.Amount)
	share := total.Div(decimal.NewFromInt(int64(n))).RoundDown(2)
	remainder := total.Sub(share.Mul(decimal.NewFromInt(int64(n - 1))))

	out := make([]AccountReceivable, 0, n)
	for i := 0; i < n; i++ {
		ar := base
		ar.ID = newID()
		ar.InstallmentNumber = i + 1
		ar.TotalInstallments = n
		ar.DueDate = base.DueDate.AddDate(0, i, 0)
		ar.Amount = share.InexactFloat64()
		if i == n-1 {
			ar.Amount = remainder.InexactFloat64()
		}
		if n > 1 {
			ar.Description = fmt.Sprintf("%s - Parcela %d/%d", base.Description, i+1, n)
		}
		out = append(out, ar)
	}
	return out
}
