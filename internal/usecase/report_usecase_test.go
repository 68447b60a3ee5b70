package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"morais_erp/internal/domain/entities"
	"morais_erp/internal/domain/finance"
	mock_interfaces "morais_erp/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reportMocks struct {
	orders      *mock_interfaces.MockIMaterialOrderRepository
	payables    *mock_interfaces.MockIAccountPayableRepository
	receivables *mock_interfaces.MockIAccountReceivableRepository
	projects    *mock_interfaces.MockIRegistryRepository[entities.Project]
	advisor     *mock_interfaces.MockIOrderAdvisor
}

func newReportUseCase(t *testing.T) (*ReportUseCase, reportMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := reportMocks{
		orders:      mock_interfaces.NewMockIMaterialOrderRepository(ctrl),
		payables:    mock_interfaces.NewMockIAccountPayableRepository(ctrl),
		receivables: mock_interfaces.NewMockIAccountReceivableRepository(ctrl),
		projects:    mock_interfaces.NewMockIRegistryRepository[entities.Project](ctrl),
		advisor:     mock_interfaces.NewMockIOrderAdvisor(ctrl),
	}
	uc := NewReportUseCase(m.orders, m.payables, m.receivables, m.projects, m.advisor)
	fixed := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }
	return uc, m
}

func pricedOrder(id, project string, status entities.OrderStatus, price float64) entities.MaterialOrder {
	return entities.MaterialOrder{
		ID:        id,
		ProjectID: project,
		Status:    status,
		Quotes:    []entities.OrderQuote{{ID: id + "-q", TotalPrice: price, IsSelected: true}},
	}
}

func TestReportUseCase_Dashboard(t *testing.T) {
	uc, m := newReportUseCase(t)
	m.projects.EXPECT().List(gomock.Any()).Return([]entities.Project{
		{ID: "p1", Name: "Aurora", Budget: 10000, Status: entities.ProjectStatusInProgress},
	}, nil)
	m.orders.EXPECT().List(gomock.Any()).Return([]entities.MaterialOrder{
		pricedOrder("REQ-1", "p1", entities.OrderStatusApproved, 3000),
		pricedOrder("REQ-2", "p1", entities.OrderStatusReadyForApproval, 900),
	}, nil)

	d, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.TotalBudget != 10000 || d.ActualSpend != 3000 || d.Orders.Approved != 1 || d.Orders.ReadyForApproval != 1 {
		t.Fatalf("unexpected dashboard: %+v", d)
	}
}

func TestReportUseCase_ProjectSummary(t *testing.T) {
	uc, m := newReportUseCase(t)

	if _, err := uc.ProjectSummary(context.Background(), " "); !errors.Is(err, ErrInvalidProjectID) {
		t.Fatalf("expected ErrInvalidProjectID, got %v", err)
	}

	m.projects.EXPECT().GetByID(gomock.Any(), "p9").Return(entities.Project{}, nil)
	if _, err := uc.ProjectSummary(context.Background(), "p9"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}

	m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Project{ID: "p1", Name: "Aurora", Budget: 10000}, nil)
	m.orders.EXPECT().ListByProjectID(gomock.Any(), "p1").Return([]entities.MaterialOrder{
		pricedOrder("REQ-1", "p1", entities.OrderStatusApproved, 2500),
		pricedOrder("REQ-2", "p1", entities.OrderStatusPendingQuotes, 400),
	}, nil)
	s, err := uc.ProjectSummary(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.ActualSpent != 2500 || s.PendingSpent != 400 || s.BudgetUsage != 25 || s.OrderCount != 2 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestReportUseCase_FinancialReport(t *testing.T) {
	uc, m := newReportUseCase(t)
	paid := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	m.projects.EXPECT().List(gomock.Any()).Return([]entities.Project{{ID: "p1", Name: "Aurora", Budget: 5000}}, nil)
	m.payables.EXPECT().List(gomock.Any(), entities.PayableFilter{}).Return([]entities.AccountPayable{
		{ID: "AP-1", ProjectID: "p1", Amount: 1000, Status: entities.PaymentStatusPaid, Category: entities.CategoryMateriais, PaymentDate: &paid},
	}, nil)
	m.receivables.EXPECT().List(gomock.Any(), entities.ReceivableFilter{}).Return([]entities.AccountReceivable{
		{ID: "AR-1", ProjectID: "p1", Amount: 4000, Status: entities.PaymentStatusPaid, PaymentDate: &paid},
	}, nil)

	r, err := uc.FinancialReport(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.DRE.Revenue != 4000 || r.DRE.Expenses != 1000 || r.DRE.GrossProfit != 3000 || r.DRE.ProfitMargin != 75 {
		t.Fatalf("unexpected dre: %+v", r.DRE)
	}
	if r.PaidPayables != 1 || r.PaidReceivables != 1 || len(r.BudgetVsActual) != 1 {
		t.Fatalf("unexpected report: %+v", r)
	}
}

func TestReportUseCase_CashFlow(t *testing.T) {
	uc, m := newReportUseCase(t)

	if _, err := uc.CashFlow(context.Background(), "decade"); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}

	m.payables.EXPECT().List(gomock.Any(), entities.PayableFilter{}).Return(nil, nil)
	m.receivables.EXPECT().List(gomock.Any(), entities.ReceivableFilter{}).Return(nil, nil)
	r, err := uc.CashFlow(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Period != finance.PeriodMonth || len(r.Months) != 6 || len(r.Projection) != finance.ProjectionMonths {
		t.Fatalf("unexpected cash flow: %+v", r)
	}
	if r.Months[0].Month != "2024-03" {
		t.Fatalf("expected newest month first, got %s", r.Months[0].Month)
	}

	m.payables.EXPECT().List(gomock.Any(), entities.PayableFilter{}).Return(nil, errors.New("db"))
	if _, err := uc.CashFlow(context.Background(), finance.PeriodYear); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestReportUseCase_ProjectInsights(t *testing.T) {
	uc, m := newReportUseCase(t)
	orders := []entities.MaterialOrder{pricedOrder("REQ-1", "p1", entities.OrderStatusApproved, 100)}

	m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Project{ID: "p1", Budget: 8000}, nil).Times(2)
	m.orders.EXPECT().ListByProjectID(gomock.Any(), "p1").Return(orders, nil)
	m.advisor.EXPECT().Insights(gomock.Any(), orders, float64(8000)).Return([]string{"Considere compras em volume."})

	tips, err := uc.ProjectInsights(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(tips) != 1 || tips[0] != "Considere compras em volume." {
		t.Fatalf("unexpected tips: %v", tips)
	}

	uc.advisor = nil
	tips, err = uc.ProjectInsights(context.Background(), "p1")
	if err != nil || len(tips) != 0 {
		t.Fatalf("expected no tips without advisor, got %v %v", tips, err)
	}
}
