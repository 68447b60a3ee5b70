package finance

import (
	"testing"
	"time"

	"morais_erp/internal/domain/entities"
)

func order(project string, status entities.OrderStatus, prices ...float64) entities.MaterialOrder {
	o := entities.MaterialOrder{ProjectID: project, Status: status}
	for i, p := range prices {
		o.Quotes = append(o.Quotes, entities.OrderQuote{ID: string(rune('a' + i)), TotalPrice: p})
	}
	return o
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func TestSpend(t *testing.T) {
	selected := order("P1", entities.OrderStatusApproved, 5000, 4800, 5200)
	selected.Quotes[2].IsSelected = true

	orders := []entities.MaterialOrder{
		selected,
		order("P1", entities.OrderStatusDelivered, 100),
		order("P1", entities.OrderStatusPendingQuotes, 70, 50),
		order("P1", entities.OrderStatusReadyForApproval, 10, 20, 30),
		order("P1", entities.OrderStatusRejected, 999),
		order("P2", entities.OrderStatusApproved, 1000),
		order("P1", entities.OrderStatusPendingQuotes),
	}
	project := entities.Project{ID: "P1", Name: "Residencial Jardins", Budget: 10600}

	s := SummarizeProject(project, orders)
	if s.ActualSpent != 5300 {
		t.Fatalf("actual spent = %v, want 5300", s.ActualSpent)
	}
	if s.PendingSpent != 60 {
		t.Fatalf("pending spent = %v, want 60", s.PendingSpent)
	}
	if s.BudgetUsage != 50 {
		t.Fatalf("budget usage = %v, want 50", s.BudgetUsage)
	}
	if s.OrderCount != 6 {
		t.Fatalf("order count = %d, want 6", s.OrderCount)
	}

	t.Run("zero budget", func(t *testing.T) {
		s := SummarizeProject(entities.Project{ID: "P1"}, orders)
		if s.BudgetUsage != 0 {
			t.Fatalf("expected 0 usage, got %v", s.BudgetUsage)
		}
	})

	t.Run("dashboard", func(t *testing.T) {
		d := BuildDashboard([]entities.Project{project, {ID: "P2", Budget: 400, Status: entities.ProjectStatusInProgress}}, orders)
		if d.ActualSpend != 6300 || d.TotalBudget != 11000 {
			t.Fatalf("unexpected dashboard totals: %+v", d)
		}
		if d.ActiveProjects != 1 || len(d.Projects) != 2 || d.Projects[1].Spent != 1000 {
			t.Fatalf("unexpected projects: %+v", d.Projects)
		}
		want := OrderCounts{PendingQuotes: 2, ReadyForApproval: 1, Approved: 2, Rejected: 1, Delivered: 1}
		if d.Orders != want {
			t.Fatalf("counts = %+v, want %+v", d.Orders, want)
		}
	})
}

func TestStatsOf(t *testing.T) {
	now := day(2024, 3, 10)
	payables := []entities.AccountPayable{
		{Status: entities.PaymentStatusPending, Amount: 100, DueDate: day(2024, 3, 20)},
		{Status: entities.PaymentStatusPending, Amount: 50, DueDate: day(2024, 3, 1)},
		{Status: entities.PaymentStatusOverdue, Amount: 25, DueDate: day(2024, 2, 1)},
		{Status: entities.PaymentStatusPaid, Amount: 300, DueDate: day(2024, 1, 1)},
		{Status: entities.PaymentStatusCancelled, Amount: 999, DueDate: day(2024, 1, 1)},
	}
	s := StatsOf(payables, now)
	want := PayableStats{Pending: 2, Paid: 1, Overdue: 2, Cancelled: 1, TotalPending: 175, TotalPaid: 300}
	if s != want {
		t.Fatalf("stats = %+v, want %+v", s, want)
	}
}

func TestFinancialReport(t *testing.T) {
	projects := []entities.Project{
		{ID: "P1", Name: "Residencial Jardins", Budget: 1000},
		{ID: "P2", Name: "Galpão Norte", Budget: 0},
	}
	payables := []entities.AccountPayable{
		{ProjectID: "P1", Status: entities.PaymentStatusPaid, Amount: 200, Category: entities.CategoryMateriais},
		{ProjectID: "P1", Status: entities.PaymentStatusPaid, Amount: 300, Category: entities.CategoryServicos},
		{ProjectID: "P2", Status: entities.PaymentStatusPaid, Amount: 100, Category: entities.CategoryMateriais},
		{ProjectID: "P1", Status: entities.PaymentStatusPending, Amount: 5000, Category: entities.CategoryEquipamentos},
	}
	receivables := []entities.AccountReceivable{
		{ProjectID: "P1", Status: entities.PaymentStatusPaid, Amount: 800},
		{ProjectID: "GONE", Status: entities.PaymentStatusPaid, Amount: 1200},
		{ProjectID: "P2", Status: entities.PaymentStatusPending, Amount: 400},
	}

	r := BuildFinancialReport(projects, payables, receivables)

	if r.DRE != (DRE{Revenue: 2000, Expenses: 600, GrossProfit: 1400, ProfitMargin: 70}) {
		t.Fatalf("unexpected DRE: %+v", r.DRE)
	}
	if len(r.ExpensesByCategory) != 2 || r.ExpensesByCategory[0].Category != entities.CategoryMateriais || r.ExpensesByCategory[1].Amount != 300 {
		t.Fatalf("unexpected categories: %+v", r.ExpensesByCategory)
	}
	if len(r.RevenueByProject) != 2 || r.RevenueByProject[0].Name != entities.NotAvailable || r.RevenueByProject[1].Usage != 80 {
		t.Fatalf("unexpected revenue by project: %+v", r.RevenueByProject)
	}
	if r.BudgetVsActual[0].Variance != -200 || r.BudgetVsActual[0].Expenses != 500 || r.BudgetVsActual[1].Revenue != 0 {
		t.Fatalf("unexpected budget vs actual: %+v", r.BudgetVsActual)
	}
	if r.PaidPayables != 3 || r.PaidReceivables != 2 {
		t.Fatalf("unexpected paid counts: %+v", r)
	}

	t.Run("no revenue means zero margin", func(t *testing.T) {
		if d := BuildDRE(payables, nil); d.ProfitMargin != 0 || d.GrossProfit != -600 {
			t.Fatalf("unexpected DRE: %+v", d)
		}
	})
}

func TestCashFlow(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	receivables := []entities.AccountReceivable{
		{Status: entities.PaymentStatusPaid, Amount: 1000, PaymentDate: ptr(day(2024, 1, 5))},
		{Status: entities.PaymentStatusPaid, Amount: 500, PaymentDate: ptr(day(2024, 3, 2))},
		{Status: entities.PaymentStatusPaid, Amount: 9999, PaymentDate: ptr(day(2023, 1, 2))},
		{Status: entities.PaymentStatusPending, Amount: 700, DueDate: day(2024, 4, 10)},
		{Status: entities.PaymentStatusPending, Amount: 300, DueDate: day(2024, 7, 1)},
	}
	payables := []entities.AccountPayable{
		{Status: entities.PaymentStatusPaid, Amount: 400, PaymentDate: ptr(day(2024, 2, 20))},
		{Status: entities.PaymentStatusPending, Amount: 250, DueDate: day(2024, 6, 30)},
		{Status: entities.PaymentStatusOverdue, Amount: 80, DueDate: day(2024, 5, 1)},
	}

	t.Run("quarter shows four months newest first", func(t *testing.T) {
		months := CashFlow(now, PeriodQuarter, payables, receivables)
		if len(months) != 4 {
			t.Fatalf("expected 4 months, got %d", len(months))
		}
		want := []CashFlowMonth{
			{Month: "2024-03", Income: 500, Balance: 1100},
			{Month: "2024-02", Expense: 400, Balance: 600},
			{Month: "2024-01", Income: 1000, Balance: 1000},
			{Month: "2023-12"},
		}
		for i := range want {
			if months[i] != want[i] {
				t.Fatalf("month %d = %+v, want %+v", i, months[i], want[i])
			}
		}
	})

	t.Run("period sizes", func(t *testing.T) {
		if PeriodMonth.Months() != 6 || PeriodYear.Months() != 2 || Period("").Months() != 6 {
			t.Fatalf("unexpected period sizes")
		}
	})

	t.Run("projection covers next three months", func(t *testing.T) {
		p := Projection(now, payables, receivables)
		want := []ProjectionMonth{
			{Month: "2024-04", ProjectedIncome: 700},
			{Month: "2024-05"},
			{Month: "2024-06", ProjectedExpense: 250},
		}
		for i := range want {
			if p[i] != want[i] {
				t.Fatalf("projection %d = %+v, want %+v", i, p[i], want[i])
			}
		}
	})

	t.Run("position", func(t *testing.T) {
		pos := Position(payables, receivables)
		if pos != (CashPosition{CurrentBalance: 11099, PendingIncome: 1000, PendingExpense: 250}) {
			t.Fatalf("unexpected position: %+v", pos)
		}
	})

	t.Run("year boundary", func(t *testing.T) {
		p := Projection(time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC), nil, nil)
		if p[0].Month != "2024-12" || p[2].Month != "2025-02" {
			t.Fatalf("unexpected months: %+v", p)
		}
	})
}
