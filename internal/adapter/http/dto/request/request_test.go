package request

import (
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
)

func TestCreateMaterialOrderRequest(t *testing.T) {
	r := CreateMaterialOrderRequest{
		ProjectID: "p1",
		Items:     []MaterialItemRequest{{Name: "Cimento", Quantity: 10, Unit: "saco"}},
	}
	if err := binding.Validator.ValidateStruct(r); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	in := r.ToInput()
	if in.ProjectID != "p1" || len(in.Items) != 1 || in.Items[0].Unit != "saco" || in.Items[0].Quantity != 10 {
		t.Fatalf("unexpected input: %+v", in)
	}

	t.Run("item without name", func(t *testing.T) {
		bad := CreateMaterialOrderRequest{ProjectID: "p1", Items: []MaterialItemRequest{{Quantity: 1}}}
		if err := binding.Validator.ValidateStruct(bad); err == nil {
			t.Fatalf("expected validation error")
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		bad := CreateMaterialOrderRequest{ProjectID: "p1", Items: []MaterialItemRequest{{Name: "Areia"}}}
		if err := binding.Validator.ValidateStruct(bad); err == nil {
			t.Fatalf("expected validation error")
		}
	})

	t.Run("no items", func(t *testing.T) {
		bad := CreateMaterialOrderRequest{ProjectID: "p1", Items: []MaterialItemRequest{}}
		if err := binding.Validator.ValidateStruct(bad); err == nil {
			t.Fatalf("expected validation error")
		}
	})
}

func TestAddQuoteRequest_ToInput(t *testing.T) {
	r := AddQuoteRequest{
		SupplierID:   "s1",
		BillingTerms: "Faturamento 28 dias",
		ItemPrices:   []ItemPriceRequest{{ItemID: "i1", UnitPrice: 36.5}},
	}
	in := r.ToInput()
	if in.SupplierID != "s1" || len(in.ItemPrices) != 1 || in.ItemPrices[0].UnitPrice != 36.5 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in := (AddQuoteRequest{SupplierID: "s1", TotalPrice: 10}).ToInput(); in.ItemPrices != nil || in.TotalPrice != 10 {
		t.Fatalf("expected total price input, got %+v", in)
	}

	bad := AddQuoteRequest{SupplierID: "s1", FreightCost: -1}
	if err := binding.Validator.ValidateStruct(bad); err == nil {
		t.Fatalf("expected validation error for negative freight")
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-02-29 ")
	if err != nil || !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v %v", got, err)
	}
	if got, err := ParseDate(""); err != nil || !got.IsZero() {
		t.Fatalf("expected zero time, got %v %v", got, err)
	}
	if _, err := ParseDate("29/02/2024"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestFinanceRequests(t *testing.T) {
	p := CreatePayableRequest{ProjectID: "p1", SupplierID: "s1", Description: "Frete", Amount: 120, DueDate: "2024-05-10"}
	in, err := p.ToInput()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if in.DueDate.Day() != 10 || in.Amount != 120 {
		t.Fatalf("unexpected input: %+v", in)
	}
	p.DueDate = "10-05-2024"
	if _, err := p.ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	r := CreateReceivableRequest{ProjectID: "p1", ClientID: "c1", Description: "Contrato", Amount: 900, TotalInstallments: 3}
	rin, err := r.ToInput()
	if err != nil || rin.TotalInstallments != 3 || !rin.DueDate.IsZero() {
		t.Fatalf("unexpected input: %+v %v", rin, err)
	}
	r.TotalInstallments = 500
	if err := binding.Validator.ValidateStruct(r); err == nil {
		t.Fatalf("expected validation error for installments")
	}

	s := SettleRequest{PaymentMethod: "PIX"}
	if d, err := s.ResolvePaymentDate(); err != nil || !d.IsZero() {
		t.Fatalf("expected zero payment date, got %v %v", d, err)
	}
}

func TestRegistryRequests(t *testing.T) {
	p, err := ProjectRequest{Name: "Aurora", Budget: 100, StartDate: "2024-01-15", Status: "In Progress"}.ToEntity()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Status != "In Progress" || p.StartDate.Month() != time.January {
		t.Fatalf("unexpected project: %+v", p)
	}
	if _, err := (ProjectRequest{Name: "x", StartDate: "ontem"}).ToEntity(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	if s := (SupplierRequest{Name: "Casa", Rating: 4.5}).ToEntity(); s.Rating != 4.5 || s.Name != "Casa" {
		t.Fatalf("unexpected supplier: %+v", s)
	}
	if err := binding.Validator.ValidateStruct(SupplierRequest{Name: "Casa", Rating: 7}); err == nil {
		t.Fatalf("expected validation error for rating")
	}
	if c := (ClientRequest{Name: "Lima", Email: "a@b.com"}).ToEntity(); c.Email != "a@b.com" {
		t.Fatalf("unexpected client: %+v", c)
	}
	if m := (MaterialRequest{Name: "Areia", Unit: "m3"}).ToEntity(); m.Unit != "m3" {
		t.Fatalf("unexpected material: %+v", m)
	}
}
