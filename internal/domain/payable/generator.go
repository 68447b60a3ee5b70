// Package payable derives the accounts-payable record of an approved requisition.
package payable

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"morais_erp/internal/domain/entities"
)

// DefaultTermDays applies when the billing terms carry no "<N> dia(s)" pattern.
const DefaultTermDays = 30

// MaxTermDays bounds any payment term, structured or parsed.
const MaxTermDays = 365

// DefaultItemCategory is assumed for items the classifier could not categorize.
const DefaultItemCategory = "Outros"

var termDaysPattern = regexp.MustCompile(`(?i)(\d+)\s*dia`)

// categoryTable maps item categories to expense categories.
// Anything not listed is booked as Materiais.
var categoryTable = map[string]entities.TransactionCategory{
	"Estrutural":     entities.CategoryMateriais,
	"Básico":         entities.CategoryMateriais,
	"Agregados":      entities.CategoryMateriais,
	"Fixação":        entities.CategoryMateriais,
	"Madeiramento":   entities.CategoryMateriais,
	"Acabamento":     entities.CategoryMateriais,
	"Elétrica":       entities.CategoryMateriais,
	"Hidráulica":     entities.CategoryMateriais,
	"Serviços":       entities.CategoryServicos,
	"Mão de Obra":    entities.CategoryMaoDeObra,
	"Equipamentos":   entities.CategoryEquipamentos,
	"Administrativo": entities.CategoryAdministrativo,
}

// Generator turns one approval into one AccountPayable. The payable id is
// derived from the order id, so storing it twice collides.
type Generator struct {
	Now func() time.Time
}

func NewGenerator(now func() time.Time) *Generator {
	return &Generator{Now: now}
}

// PayableID is the id of the payable generated for orderID.
func PayableID(orderID string) string {
	return "AP-" + orderID
}

// Generate builds the pending payable for order using its selected quote.
func (g *Generator) Generate(order entities.MaterialOrder, quote entities.OrderQuote) entities.AccountPayable {
	now := g.Now()
	return entities.AccountPayable{
		ID:            PayableID(order.ID),
		OrderID:       order.ID,
		ProjectID:     order.ProjectID,
		SupplierID:    quote.SupplierID,
		Description:   Description(order),
		Amount:        quote.TotalPrice,
		DueDate:       DueDate(now, quote),
		Status:        entities.PaymentStatusPending,
		PaymentMethod: quote.PaymentMethod,
		Category:      CategoryFor(order.Items),
		BillingTerms:  quote.BillingTerms,
		Observations:  quote.Observations,
		CreatedAt:     now.UTC(),
		CreatedBy:     order.RequestedBy,
	}
}

func Description(order entities.MaterialOrder) string {
	return fmt.Sprintf("Pedido %s - %s", order.ID, strings.Join(order.ItemNames(), ", "))
}

// DueDate is today plus the quote's payment term.
func DueDate(now time.Time, quote entities.OrderQuote) time.Time {
	return entities.DateOnly(now).AddDate(0, 0, TermDays(quote))
}

// TermSource tells where a payment term came from.
type TermSource string

const (
	TermStructured TermSource = "structured"
	TermParsed     TermSource = "parsed"
	TermCapped     TermSource = "capped"
	TermDefault    TermSource = "default"
)

// TermDays prefers the structured term and falls back to parsing the billing terms.
func TermDays(quote entities.OrderQuote) int {
	days, _ := ResolveTermDays(quote)
	return days
}

// ResolveTermDays returns the term in days and its source. Terms above
// MaxTermDays, including digit runs too long for an int, are capped.
func ResolveTermDays(quote entities.OrderQuote) (int, TermSource) {
	if quote.TermDays > 0 {
		if quote.TermDays > MaxTermDays {
			return MaxTermDays, TermCapped
		}
		return quote.TermDays, TermStructured
	}
	m := termDaysPattern.FindStringSubmatch(quote.BillingTerms)
	if m == nil {
		return DefaultTermDays, TermDefault
	}
	days, err := strconv.Atoi(m[1])
	if err != nil || days > MaxTermDays {
		return MaxTermDays, TermCapped
	}
	return days, TermParsed
}

// ParseTermDays extracts N from the first "<N> dia" occurrence (case-insensitive),
// capped at MaxTermDays.
func ParseTermDays(billingTerms string) (int, bool) {
	days, src := ResolveTermDays(entities.OrderQuote{BillingTerms: billingTerms})
	if src == TermDefault {
		return 0, false
	}
	return days, true
}

// MajorityCategory returns the most frequent item category; ties go to the
// category seen first.
func MajorityCategory(items []entities.MaterialItem) string {
	counts := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, it := range items {
		c := it.Category
		if c == "" {
			c = DefaultItemCategory
		}
		if _, seen := counts[c]; !seen {
			order = append(order, c)
		}
		counts[c]++
	}

	best := DefaultItemCategory
	bestCount := 0
	for _, c := range order {
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return best
}

// MapCategory resolves an item category through the fixed table.
func MapCategory(itemCategory string) entities.TransactionCategory {
	if c, ok := categoryTable[itemCategory]; ok {
		return c
	}
	return entities.CategoryMateriais
}

func CategoryFor(items []entities.MaterialItem) entities.TransactionCategory {
	return MapCategory(MajorityCategory(items))
}
