package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodPIX          PaymentMethod = "PIX"
	PaymentMethodBoleto       PaymentMethod = "Boleto"
	PaymentMethodCartaoCredit PaymentMethod = "Cartão Crédito"
	PaymentMethodCartaoDebito PaymentMethod = "Cartão Débito"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPIX, PaymentMethodBoleto, PaymentMethodCartaoCredit, PaymentMethodCartaoDebito:
		return true
	}
	return false
}

// ParsePaymentMethod accepts the canonical labels and the payment_method_id
// values used by payment providers ("pix", "bolbradesco", "master", ...).
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	s := strings.TrimSpace(raw)
	if m := PaymentMethod(s); m.Valid() {
		return m, true
	}
	switch strings.ToLower(s) {
	case "pix":
		return PaymentMethodPIX, true
	case "boleto", "bolbradesco", "pec":
		return PaymentMethodBoleto, true
	case "credit_card", "cartao credito", "cartão crédito", "visa", "master", "amex", "elo", "hipercard":
		return PaymentMethodCartaoCredit, true
	case "debit_card", "cartao debito", "cartão débito", "debvisa", "debmaster", "debelo":
		return PaymentMethodCartaoDebito, true
	}
	return "", false
}

// ItemQuoteEntry is the unit price a supplier quoted for one requisition item.
type ItemQuoteEntry struct {
	ItemID    string  `json:"item_id"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderQuote is one supplier bid against a requisition.
//
// BillingTerms is free text ("Faturamento 28 dias"); TermDays, when positive,
// is the structured payment term and takes precedence over parsing the text.
type OrderQuote struct {
	ID                string           `json:"id"`
	SupplierID        string           `json:"supplier_id"`
	TotalPrice        float64          `json:"total_price"`
	DeliveryDays      int              `json:"delivery_days"`
	IsSelected        bool             `json:"is_selected"`
	Justification     string           `json:"justification,omitempty"`
	PaymentMethod     PaymentMethod    `json:"payment_method,omitempty"`
	Observations      string           `json:"observations,omitempty"`
	IsFreightIncluded bool             `json:"is_freight_included"`
	FreightCost       float64          `json:"freight_cost,omitempty"`
	BillingTerms      string           `json:"billing_terms,omitempty"`
	TermDays          int              `json:"term_days,omitempty"`
	ItemPrices        []ItemQuoteEntry `json:"item_prices"`
}

// QuoteTotal derives a quote total from per-item unit prices:
// Σ(unit price × quantity) plus the freight cost when freight is not included.
// Prices for unknown items are ignored.
func QuoteTotal(items []MaterialItem, prices []ItemQuoteEntry, freightIncluded bool, freightCost float64) float64 {
	byItem := make(map[string]float64, len(prices))
	for _, p := range prices {
		byItem[p.ItemID] = p.UnitPrice
	}

	total := decimal.Zero
	for _, it := range items {
		price, ok := byItem[it.ID]
		if !ok {
			continue
		}
		total = total.Add(decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(it.Quantity)))
	}
	if !freightIncluded {
		total = total.Add(decimal.NewFromFloat(freightCost))
	}
	f, _ := total.Float64()
	return f
}
