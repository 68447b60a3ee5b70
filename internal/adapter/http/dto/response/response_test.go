package response

import (
	"encoding/json"
	"testing"
	"time"

	"morais_erp/internal/domain/entities"
)

func TestFromMaterialOrder(t *testing.T) {
	o := entities.MaterialOrder{
		ID:        "REQ-1234",
		ProjectID: "p1",
		Status:    entities.OrderStatusPendingQuotes,
		Quotes: []entities.OrderQuote{
			{ID: "q1", TotalPrice: 300},
			{ID: "q2", TotalPrice: 250},
		},
	}

	res := FromMaterialOrder(o)
	if res.ID != "REQ-1234" || res.Status != "Aguardando Cotações" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.TotalCost != 250 {
		t.Fatalf("expected cheapest quote as cost, got %v", res.TotalCost)
	}
	if res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("expected empty items slice, got %#v", res.Items)
	}
	if res.Approval.CanApprove || res.Approval.QuoteCount != 2 {
		t.Fatalf("unexpected approval: %+v", res.Approval)
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	_ = json.Unmarshal(body, &decoded)
	if _, ok := decoded["order_quotes"]; !ok {
		t.Fatalf("expected order_quotes key in %s", body)
	}

	if list := FromMaterialOrders(nil); list == nil || len(list) != 0 {
		t.Fatalf("expected empty list, got %#v", list)
	}
}

func TestFromPayable(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	paid := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	ap := entities.AccountPayable{
		ID:        "AP-1",
		OrderID:   "REQ-1",
		Amount:    390,
		DueDate:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Status:    entities.PaymentStatusPending,
		Category:  entities.CategoryMateriais,
		CreatedAt: now,
	}

	res := FromPayable(ap, now)
	if res.DueDate != "2024-03-05" || !res.IsOverdue || res.PaymentDate != "" {
		t.Fatalf("unexpected payable: %+v", res)
	}

	ap.Status = entities.PaymentStatusPaid
	ap.PaymentDate = &paid
	res = FromPayable(ap, now)
	if res.IsOverdue || res.PaymentDate != "2024-03-01" || res.CreatedAt != "2024-03-10T09:00:00Z" {
		t.Fatalf("unexpected paid payable: %+v", res)
	}
}

func TestFromReceivable(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	ar := entities.AccountReceivable{
		ID:                "AR-1",
		Amount:            500,
		DueDate:           time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Status:            entities.PaymentStatusPending,
		InstallmentNumber: 2,
		TotalInstallments: 3,
		ProviderStatus:    "pending",
		ProviderPayload:   json.RawMessage(`{"id":123,"status":"pending"}`),
	}

	res := FromReceivable(ar, now)
	if res.IsOverdue || res.InstallmentNumber != 2 || res.TotalInstallments != 3 {
		t.Fatalf("unexpected receivable: %+v", res)
	}
	if res.ProviderPayload["status"] != "pending" {
		t.Fatalf("unexpected provider payload: %+v", res.ProviderPayload)
	}

	ar.ProviderPayload = json.RawMessage(`not-json`)
	if res := FromReceivable(ar, now); res.ProviderPayload != nil {
		t.Fatalf("expected undecodable payload to be omitted")
	}
	if list := FromReceivables([]entities.AccountReceivable{ar}, now); len(list) != 1 {
		t.Fatalf("unexpected list: %+v", list)
	}
}
