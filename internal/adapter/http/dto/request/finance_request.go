package request

import (
	"errors"
	"morais_erp/internal/usecase"
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = time.DateOnly

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// ParseDate reads an optional calendar date; blank means the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

type CreatePayableRequest struct {
	ProjectID     string  `json:"project_id" binding:"required"`
	SupplierID    string  `json:"supplier_id" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Amount        float64 `json:"amount" binding:"gt=0"`
	DueDate       string  `json:"due_date"`
	Category      string  `json:"category"`
	PaymentMethod string  `json:"payment_method"`
	BillingTerms  string  `json:"billing_terms"`
	Observations  string  `json:"observations"`
	CreatedBy     string  `json:"created_by"`
}

func (r CreatePayableRequest) ToInput() (usecase.CreatePayableInput, error) {
	due, err := ParseDate(r.DueDate)
	if err != nil {
		return usecase.CreatePayableInput{}, err
	}
	return usecase.CreatePayableInput{
		ProjectID:     r.ProjectID,
		SupplierID:    r.SupplierID,
		Description:   r.Description,
		Amount:        r.Amount,
		DueDate:       due,
		Category:      r.Category,
		PaymentMethod: r.PaymentMethod,
		BillingTerms:  r.BillingTerms,
		Observations:  r.Observations,
		CreatedBy:     r.CreatedBy,
	}, nil
}

// SettleRequest marks a payable as paid or a receivable as received. A blank
// payment_date means today.
type SettleRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	PaymentDate   string `json:"payment_date"`
}

func (r SettleRequest) ResolvePaymentDate() (time.Time, error) {
	return ParseDate(r.PaymentDate)
}

type CreateReceivableRequest struct {
	ProjectID         string  `json:"project_id" binding:"required"`
	ClientID          string  `json:"client_id" binding:"required"`
	Description       string  `json:"description" binding:"required"`
	Amount            float64 `json:"amount" binding:"gt=0"`
	DueDate           string  `json:"due_date"`
	TotalInstallments int     `json:"total_installments" binding:"gte=0,lte=120"`
	Observations      string  `json:"observations"`
	CreatedBy         string  `json:"created_by"`
}

func (r CreateReceivableRequest) ToInput() (usecase.CreateReceivableInput, error) {
	due, err := ParseDate(r.DueDate)
	if err != nil {
		return usecase.CreateReceivableInput{}, err
	}
	return usecase.CreateReceivableInput{
		ProjectID:         r.ProjectID,
		ClientID:          r.ClientID,
		Description:       r.Description,
		Amount:            r.Amount,
		DueDate:           due,
		TotalInstallments: r.TotalInstallments,
		Observations:      r.Observations,
		CreatedBy:         r.CreatedBy,
	}, nil
}
