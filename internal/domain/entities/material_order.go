package entities

import "time"

// OrderStatus represents the lifecycle of a material requisition (pedido de material).
//
// Transitions:
//   - PENDING_QUOTES <-> READY_FOR_APPROVAL: recomputed from the quote count on every AddQuote.
//   - READY_FOR_APPROVAL -> APPROVED: Approve().
//   - any non-terminal -> REJECTED: Reject().
//   - DELIVERED is set by the fulfillment process only.
type OrderStatus string

const (
	OrderStatusPendingQuotes    OrderStatus = "Aguardando Cotações"
	OrderStatusReadyForApproval OrderStatus = "Pronto para Aprovação"
	OrderStatusApproved         OrderStatus = "Aprovado"
	OrderStatusRejected         OrderStatus = "Rejeitado"
	OrderStatusDelivered        OrderStatus = "Entregue"
)

// MinQuotesForApproval is the number of competing quotes a requisition needs before approval.
const MinQuotesForApproval = 3

func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusApproved, OrderStatusRejected, OrderStatusDelivered:
		return true
	}
	return false
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendingQuotes, OrderStatusReadyForApproval, OrderStatusApproved, OrderStatusRejected, OrderStatusDelivered:
		return true
	}
	return false
}

// MaterialItem is one requisitioned line. Items are never edited once added.
type MaterialItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category,omitempty"`
}

// MaterialOrder is the requisition aggregate. It owns its items and quotes.
type MaterialOrder struct {
	ID          string         `json:"id"`
	ProjectID   string         `json:"project_id"`
	RequestDate time.Time      `json:"request_date"`
	Status      OrderStatus    `json:"status"`
	RequestedBy string         `json:"requested_by"`
	Items       []MaterialItem `json:"items"`
	Quotes      []OrderQuote   `json:"order_quotes"`
}

// SelectedQuote returns the quote marked as chosen, if any.
func (o *MaterialOrder) SelectedQuote() (OrderQuote, bool) {
	for _, q := range o.Quotes {
		if q.IsSelected {
			return q, true
		}
	}
	return OrderQuote{}, false
}

// TotalCost is the effective cost of the requisition: the selected quote price,
// otherwise the cheapest quote, otherwise zero. Every rollup must use it.
func (o *MaterialOrder) TotalCost() float64 {
	if q, ok := o.SelectedQuote(); ok {
		return nonNegative(q.TotalPrice)
	}
	if i := o.cheapestQuoteIndex(); i >= 0 {
		return nonNegative(o.Quotes[i].TotalPrice)
	}
	return 0
}

// AddItem appends a line to an open requisition.
func (o *MaterialOrder) AddItem(item MaterialItem) bool {
	if o.Status.IsTerminal() {
		return false
	}
	o.Items = append(o.Items, item)
	return true
}

// AddQuote appends an unselected quote and recomputes the status from the quote count.
// Closed requisitions are left untouched.
func (o *MaterialOrder) AddQuote(q OrderQuote) bool {
	if o.Status.IsTerminal() {
		return false
	}
	q.IsSelected = false
	o.Quotes = append(o.Quotes, q)
	if len(o.Quotes) >= MinQuotesForApproval {
		o.Status = OrderStatusReadyForApproval
	} else {
		o.Status = OrderStatusPendingQuotes
	}
	return true
}

// SelectQuote marks quoteID as the chosen quote and clears every other one.
// Selection is frozen once the requisition is approved.
func (o *MaterialOrder) SelectQuote(quoteID string) bool {
	if o.Status == OrderStatusApproved {
		return false
	}
	for i := range o.Quotes {
		o.Quotes[i].IsSelected = o.Quotes[i].ID == quoteID
	}
	return true
}

// UpdateQuoteDetails sets the payment method and/or observations of one quote.
// Nil arguments keep the current value.
func (o *MaterialOrder) UpdateQuoteDetails(quoteID string, method *PaymentMethod, observations *string) bool {
	if o.Status == OrderStatusApproved {
		return false
	}
	for i := range o.Quotes {
		if o.Quotes[i].ID != quoteID {
			continue
		}
		if method != nil {
			o.Quotes[i].PaymentMethod = *method
		}
		if observations != nil {
			o.Quotes[i].Observations = *observations
		}
		return true
	}
	return false
}

func (o *MaterialOrder) FindQuote(quoteID string) (OrderQuote, bool) {
	for _, q := range o.Quotes {
		if q.ID == quoteID {
			return q, true
		}
	}
	return OrderQuote{}, false
}

// ApprovalBlocker names the precondition that keeps a requisition from being approved.
type ApprovalBlocker string

const (
	ApprovalBlockerNone            ApprovalBlocker = ""
	ApprovalBlockerClosed          ApprovalBlocker = "ORDER_CLOSED"
	ApprovalBlockerNotEnoughQuotes ApprovalBlocker = "NOT_ENOUGH_QUOTES"
	ApprovalBlockerNoSelection     ApprovalBlocker = "NO_QUOTE_SELECTED"
	ApprovalBlockerNoPayment       ApprovalBlocker = "PAYMENT_METHOD_MISSING"
)

// ApprovalCheck holds the computed flags callers use to enable the approve action.
type ApprovalCheck struct {
	QuoteCount       int             `json:"quote_count"`
	HasSelection     bool            `json:"has_selection"`
	HasPaymentMethod bool            `json:"has_payment_method"`
	CanApprove       bool            `json:"can_approve"`
	Blocker          ApprovalBlocker `json:"blocker,omitempty"`
}

// CheckApproval reports the approval flags as they stand, without the auto-selection fallback.
func (o *MaterialOrder) CheckApproval() ApprovalCheck {
	c := ApprovalCheck{QuoteCount: len(o.Quotes)}
	selected, ok := o.SelectedQuote()
	c.HasSelection = ok
	c.HasPaymentMethod = ok && selected.PaymentMethod != ""

	switch {
	case o.Status.IsTerminal():
		c.Blocker = ApprovalBlockerClosed
	case c.QuoteCount < MinQuotesForApproval:
		c.Blocker = ApprovalBlockerNotEnoughQuotes
	case !c.HasSelection:
		c.Blocker = ApprovalBlockerNoSelection
	case !c.HasPaymentMethod:
		c.Blocker = ApprovalBlockerNoPayment
	}
	c.CanApprove = c.Blocker == ApprovalBlockerNone
	return c
}

// Approve moves the requisition to APPROVED. When no quote is selected the cheapest
// one is selected first; if the resulting selection has no payment method nothing
// changes, the tentative selection included.
func (o *MaterialOrder) Approve() (bool, ApprovalBlocker) {
	if o.Status.IsTerminal() {
		return false, ApprovalBlockerClosed
	}
	if len(o.Quotes) < MinQuotesForApproval {
		return false, ApprovalBlockerNotEnoughQuotes
	}

	idx := o.selectedQuoteIndex()
	if idx < 0 {
		idx = o.cheapestQuoteIndex()
	}
	if o.Quotes[idx].PaymentMethod == "" {
		return false, ApprovalBlockerNoPayment
	}

	for i := range o.Quotes {
		o.Quotes[i].IsSelected = i == idx
	}
	o.Status = OrderStatusApproved
	return true, ApprovalBlockerNone
}

// Reject moves any non-terminal requisition to REJECTED.
func (o *MaterialOrder) Reject() bool {
	if o.Status.IsTerminal() {
		return false
	}
	o.Status = OrderStatusRejected
	return true
}

func (o *MaterialOrder) ItemNames() []string {
	names := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		names = append(names, it.Name)
	}
	return names
}

func (o *MaterialOrder) selectedQuoteIndex() int {
	for i, q := range o.Quotes {
		if q.IsSelected {
			return i
		}
	}
	return -1
}

// cheapestQuoteIndex returns the first quote holding the minimum price, -1 when empty.
func (o *MaterialOrder) cheapestQuoteIndex() int {
	idx := -1
	for i, q := range o.Quotes {
		if idx < 0 || q.TotalPrice < o.Quotes[idx].TotalPrice {
			idx = i
		}
	}
	return idx
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// MaterialClassification is the suggested category and unit of a material name.
type MaterialClassification struct {
	Category string `json:"category"`
	Unit     string `json:"unit"`
}

// FallbackClassification is used whenever no suggestion is available.
var FallbackClassification = MaterialClassification{Category: "Outros", Unit: "un"}
