package response

import (
	"encoding/json"
	"morais_erp/internal/domain/entities"
	"time"
)

type PayableResponse struct {
	ID            string  `json:"id"`
	OrderID       string  `json:"order_id,omitempty"`
	ProjectID     string  `json:"project_id"`
	SupplierID    string  `json:"supplier_id"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"due_date"`
	Status        string  `json:"status"`
	IsOverdue     bool    `json:"is_overdue"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	PaymentDate   string  `json:"payment_date,omitempty"`
	Category      string  `json:"category"`
	BillingTerms  string  `json:"billing_terms,omitempty"`
	Observations  string  `json:"observations,omitempty"`
	CreatedAt     string  `json:"created_at"`
	CreatedBy     string  `json:"created_by"`
}

// FromPayable maps a payable; now decides the overdue flag.
func FromPayable(ap entities.AccountPayable, now time.Time) PayableResponse {
	return PayableResponse{
		ID:            ap.ID,
		OrderID:       ap.OrderID,
		ProjectID:     ap.ProjectID,
		SupplierID:    ap.SupplierID,
		Description:   ap.Description,
		Amount:        ap.Amount,
		DueDate:       formatDate(ap.DueDate),
		Status:        string(ap.Status),
		IsOverdue:     ap.IsOverdue(now),
		PaymentMethod: string(ap.PaymentMethod),
		PaymentDate:   formatDatePtr(ap.PaymentDate),
		Category:      string(ap.Category),
		BillingTerms:  ap.BillingTerms,
		Observations:  ap.Observations,
		CreatedAt:     ap.CreatedAt.UTC().Format(time.RFC3339),
		CreatedBy:     ap.CreatedBy,
	}
}

func FromPayables(list []entities.AccountPayable, now time.Time) []PayableResponse {
	out := make([]PayableResponse, 0, len(list))
	for _, ap := range list {
		out = append(out, FromPayable(ap, now))
	}
	return out
}

type ReceivableResponse struct {
	ID                string  `json:"id"`
	ProjectID         string  `json:"project_id"`
	ClientID          string  `json:"client_id"`
	Description       string  `json:"description"`
	Amount            float64 `json:"amount"`
	DueDate           string  `json:"due_date"`
	Status            string  `json:"status"`
	IsOverdue         bool    `json:"is_overdue"`
	PaymentMethod     string  `json:"payment_method,omitempty"`
	PaymentDate       string  `json:"payment_date,omitempty"`
	InstallmentNumber int     `json:"installment_number"`
	TotalInstallments int     `json:"total_installments"`
	Observations      string  `json:"observations,omitempty"`
	CreatedAt         string  `json:"created_at"`
	CreatedBy         string  `json:"created_by"`

	ProviderPaymentID string         `json:"provider_payment_id,omitempty"`
	ProviderStatus    string         `json:"provider_status,omitempty"`
	ProviderPayload   map[string]any `json:"provider_payload,omitempty"`
}

func FromReceivable(ar entities.AccountReceivable, now time.Time) ReceivableResponse {
	return ReceivableResponse{
		ID:                ar.ID,
		ProjectID:         ar.ProjectID,
		ClientID:          ar.ClientID,
		Description:       ar.Description,
		Amount:            ar.Amount,
		DueDate:           formatDate(ar.DueDate),
		Status:            string(ar.Status),
		IsOverdue:         ar.IsOverdue(now),
		PaymentMethod:     string(ar.PaymentMethod),
		PaymentDate:       formatDatePtr(ar.PaymentDate),
		InstallmentNumber: ar.InstallmentNumber,
		TotalInstallments: ar.TotalInstallments,
		Observations:      ar.Observations,
		CreatedAt:         ar.CreatedAt.UTC().Format(time.RFC3339),
		CreatedBy:         ar.CreatedBy,
		ProviderPaymentID: ar.ProviderPaymentID,
		ProviderStatus:    ar.ProviderStatus,
		ProviderPayload:   decodePayload(ar.ProviderPayload),
	}
}

func FromReceivables(list []entities.AccountReceivable, now time.Time) []ReceivableResponse {
	out := make([]ReceivableResponse, 0, len(list))
	for _, ar := range list {
		out = append(out, FromReceivable(ar, now))
	}
	return out
}

type InsightsResponse struct {
	ProjectID string   `json:"project_id"`
	Insights  []string `json:"insights"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.DateOnly)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

// decodePayload exposes the stored provider response as JSON; undecodable
// payloads are omitted.
func decodePayload(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
