// Package finance aggregates requisitions, payables and receivables into the
// figures shown by dashboards and reports. Every function is pure.
package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"morais_erp/internal/domain/entities"
)

// OrderCounts tallies requisitions by lifecycle status.
type OrderCounts struct {
	PendingQuotes    int `json:"pending_quotes"`
	ReadyForApproval int `json:"ready_for_approval"`
	Approved         int `json:"approved"`
	Rejected         int `json:"rejected"`
	Delivered        int `json:"delivered"`
}

type ProjectSpend struct {
	ProjectID string  `json:"project_id"`
	Name      string  `json:"name"`
	Budget    float64 `json:"budget"`
	Spent     float64 `json:"spent"`
}

type Dashboard struct {
	TotalBudget    float64        `json:"total_budget"`
	ActualSpend    float64        `json:"actual_spend"`
	ActiveProjects int            `json:"active_projects"`
	Projects       []ProjectSpend `json:"projects"`
	Orders         OrderCounts    `json:"orders"`
}

type ProjectSummary struct {
	ProjectID    string  `json:"project_id"`
	Name         string  `json:"name"`
	Budget       float64 `json:"budget"`
	ActualSpent  float64 `json:"actual_spent"`
	PendingSpent float64 `json:"pending_spent"`
	BudgetUsage  float64 `json:"budget_usage"`
	OrderCount   int     `json:"order_count"`
}

// Committed reports orders whose cost is already spent.
func Committed(o entities.MaterialOrder) bool {
	return o.Status == entities.OrderStatusApproved || o.Status == entities.OrderStatusDelivered
}

// InFlight reports orders whose cost is still expected.
func InFlight(o entities.MaterialOrder) bool {
	return !Committed(o) && o.Status != entities.OrderStatusRejected
}

// SpendOf sums TotalCost over the orders accepted by keep.
func SpendOf(orders []entities.MaterialOrder, keep func(entities.MaterialOrder) bool) float64 {
	total := decimal.Zero
	for i := range orders {
		if keep(orders[i]) {
			total = total.Add(decimal.NewFromFloat(orders[i].TotalCost()))
		}
	}
	return total.InexactFloat64()
}

func CountOrders(orders []entities.MaterialOrder) OrderCounts {
	var c OrderCounts
	for _, o := range orders {
		switch o.Status {
		case entities.OrderStatusPendingQuotes:
			c.PendingQuotes++
		case entities.OrderStatusReadyForApproval:
			c.ReadyForApproval++
		case entities.OrderStatusApproved:
			c.Approved++
		case entities.OrderStatusRejected:
			c.Rejected++
		case entities.OrderStatusDelivered:
			c.Delivered++
		}
	}
	return c
}

func BuildDashboard(projects []entities.Project, orders []entities.MaterialOrder) Dashboard {
	budget := decimal.Zero
	d := Dashboard{Projects: make([]ProjectSpend, 0, len(projects))}
	for _, p := range projects {
		budget = budget.Add(decimal.NewFromFloat(p.Budget))
		if p.Status == entities.ProjectStatusInProgress {
			d.ActiveProjects++
		}
		d.Projects = append(d.Projects, ProjectSpend{
			ProjectID: p.ID,
			Name:      p.Name,
			Budget:    p.Budget,
			Spent:     SpendOf(ordersOf(orders, p.ID), Committed),
		})
	}
	d.TotalBudget = budget.InexactFloat64()
	d.ActualSpend = SpendOf(orders, Committed)
	d.Orders = CountOrders(orders)
	return d
}

// SummarizeProject rolls up the requisitions of project p. Orders of other
// projects are ignored.
func SummarizeProject(p entities.Project, orders []entities.MaterialOrder) ProjectSummary {
	own := ordersOf(orders, p.ID)
	s := ProjectSummary{
		ProjectID:    p.ID,
		Name:         p.Name,
		Budget:       p.Budget,
		ActualSpent:  SpendOf(own, Committed),
		PendingSpent: SpendOf(own, InFlight),
		OrderCount:   len(own),
	}
	s.BudgetUsage = percent(s.ActualSpent, p.Budget)
	return s
}

func ordersOf(orders []entities.MaterialOrder, projectID string) []entities.MaterialOrder {
	out := make([]entities.MaterialOrder, 0)
	for _, o := range orders {
		if o.ProjectID == projectID {
			out = append(out, o)
		}
	}
	return out
}

// percent returns part/whole*100, 0 when whole is not positive.
func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return decimal.NewFromFloat(part).
		Div(decimal.NewFromFloat(whole)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}

// PayableStats summarises the payables list.
type PayableStats struct {
	Pending      int     `json:"pending"`
	Paid         int     `json:"paid"`
	Overdue      int     `json:"overdue"`
	Cancelled    int     `json:"cancelled"`
	TotalPending float64 `json:"total_pending"`
	TotalPaid    float64 `json:"total_paid"`
}

// StatsOf counts payables by status. Overdue counts open payables past their due
// date as well as those flagged overdue; TotalPending covers every open payable.
func StatsOf(payables []entities.AccountPayable, now time.Time) PayableStats {
	var s PayableStats
	pending, paid := decimal.Zero, decimal.Zero
	for i := range payables {
		ap := payables[i]
		amount := decimal.NewFromFloat(ap.Amount)
		switch ap.Status {
		case entities.PaymentStatusPending:
			s.Pending++
			pending = pending.Add(amount)
		case entities.PaymentStatusOverdue:
			pending = pending.Add(amount)
		case entities.PaymentStatusPaid:
			s.Paid++
			paid = paid.Add(amount)
		case entities.PaymentStatusCancelled:
			s.Cancelled++
		}
		if ap.IsOverdue(now) {
			s.Overdue++
		}
	}
	s.TotalPending = pending.InexactFloat64()
	s.TotalPaid = paid.InexactFloat64()
	return s
}

// CategoryAmount is one slice of the expenses-by-category breakdown.
type CategoryAmount struct {
	Category entities.TransactionCategory `json:"category"`
	Amount   float64                      `json:"amount"`
}

// ExpensesByCategory sums paid payables per category, drops empty categories
// and sorts by amount descending.
func ExpensesByCategory(payables []entities.AccountPayable) []CategoryAmount {
	totals := make(map[entities.TransactionCategory]decimal.Decimal, len(entities.TransactionCategories))
	for _, ap := range payables {
		if ap.Status != entities.PaymentStatusPaid {
			continue
		}
		cat := ap.Category
		if !cat.Valid() {
			cat = entities.CategoryOutros
		}
		totals[cat] = totals[cat].Add(decimal.NewFromFloat(ap.Amount))
	}

	out := make([]CategoryAmount, 0, len(totals))
	for _, cat := range entities.TransactionCategories {
		if v, ok := totals[cat]; ok && v.IsPositive() {
			out = append(out, CategoryAmount{Category: cat, Amount: v.InexactFloat64()})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out
}
