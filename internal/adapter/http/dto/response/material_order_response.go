package response

import (
	"morais_erp/internal/domain/entities"
	"time"
)

type MaterialOrderResponse struct {
	ID          string                  `json:"id"`
	ProjectID   string                  `json:"project_id"`
	RequestDate time.Time               `json:"request_date"`
	Status      string                  `json:"status"`
	RequestedBy string                  `json:"requested_by"`
	Items       []entities.MaterialItem `json:"items"`
	Quotes      []entities.OrderQuote   `json:"order_quotes"`
	TotalCost   float64                 `json:"total_cost"`
	Approval    entities.ApprovalCheck  `json:"approval"`
}

func FromMaterialOrder(o entities.MaterialOrder) MaterialOrderResponse {
	items := o.Items
	if items == nil {
		items = []entities.MaterialItem{}
	}
	quotes := o.Quotes
	if quotes == nil {
		quotes = []entities.OrderQuote{}
	}
	return MaterialOrderResponse{
		ID:          o.ID,
		ProjectID:   o.ProjectID,
		RequestDate: o.RequestDate,
		Status:      string(o.Status),
		RequestedBy: o.RequestedBy,
		Items:       items,
		Quotes:      quotes,
		TotalCost:   o.TotalCost(),
		Approval:    o.CheckApproval(),
	}
}

func FromMaterialOrders(orders []entities.MaterialOrder) []MaterialOrderResponse {
	out := make([]MaterialOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromMaterialOrder(o))
	}
	return out
}

// ApprovalResponse is the approved requisition and, when generation succeeded,
// its payable. Warning is set when the payable could not be generated.
type ApprovalResponse struct {
	Order   MaterialOrderResponse `json:"order"`
	Payable *PayableResponse      `json:"payable,omitempty"`
	Warning string                `json:"warning,omitempty"`
}
