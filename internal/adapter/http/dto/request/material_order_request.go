package request

import (
	"morais_erp/internal/domain/entities"
	"morais_erp/internal/usecase"
)

type MaterialItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"gt=0"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

func (r MaterialItemRequest) ToInput() usecase.NewMaterialItem {
	return usecase.NewMaterialItem{
		Name:     r.Name,
		Quantity: r.Quantity,
		Unit:     r.Unit,
		Category: r.Category,
	}
}

// CreateMaterialOrderRequest opens a requisition. Items left without unit or
// category are classified on creation.
type CreateMaterialOrderRequest struct {
	ProjectID   string                `json:"project_id" binding:"required"`
	RequestedBy string                `json:"requested_by"`
	Items       []MaterialItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreateMaterialOrderRequest) ToInput() usecase.CreateOrderInput {
	items := make([]usecase.NewMaterialItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.ToInput())
	}
	return usecase.CreateOrderInput{
		ProjectID:   r.ProjectID,
		RequestedBy: r.RequestedBy,
		Items:       items,
	}
}

type ItemPriceRequest struct {
	ItemID    string  `json:"item_id" binding:"required"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
}

// AddQuoteRequest registers one supplier bid. When item_prices is sent the total
// is computed from it and total_price is ignored.
type AddQuoteRequest struct {
	SupplierID        string             `json:"supplier_id" binding:"required"`
	DeliveryDays      int                `json:"delivery_days" binding:"gte=0"`
	IsFreightIncluded bool               `json:"is_freight_included"`
	FreightCost       float64            `json:"freight_cost" binding:"gte=0"`
	BillingTerms      string             `json:"billing_terms"`
	TermDays          int                `json:"term_days" binding:"gte=0"`
	PaymentMethod     string             `json:"payment_method"`
	Observations      string             `json:"observations"`
	Justification     string             `json:"justification"`
	ItemPrices        []ItemPriceRequest `json:"item_prices" binding:"dive"`
	TotalPrice        float64            `json:"total_price" binding:"gte=0"`
}

func (r AddQuoteRequest) ToInput() usecase.NewQuoteInput {
	var prices []entities.ItemQuoteEntry
	for _, p := range r.ItemPrices {
		prices = append(prices, entities.ItemQuoteEntry{ItemID: p.ItemID, UnitPrice: p.UnitPrice})
	}
	return usecase.NewQuoteInput{
		SupplierID:        r.SupplierID,
		DeliveryDays:      r.DeliveryDays,
		IsFreightIncluded: r.IsFreightIncluded,
		FreightCost:       r.FreightCost,
		BillingTerms:      r.BillingTerms,
		TermDays:          r.TermDays,
		PaymentMethod:     r.PaymentMethod,
		Observations:      r.Observations,
		Justification:     r.Justification,
		ItemPrices:        prices,
		TotalPrice:        r.TotalPrice,
	}
}

// QuoteDetailsRequest edits a quote in place; omitted fields are kept.
type QuoteDetailsRequest struct {
	PaymentMethod *string `json:"payment_method"`
	Observations  *string `json:"observations"`
}

func (r QuoteDetailsRequest) ToInput() usecase.QuoteDetailsInput {
	return usecase.QuoteDetailsInput{PaymentMethod: r.PaymentMethod, Observations: r.Observations}
}
