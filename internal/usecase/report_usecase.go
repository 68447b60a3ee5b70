package usecase

import (
	"context"
	"errors"
	"morais_erp/internal/domain/entities"
	"morais_erp/internal/domain/finance"
	"morais_erp/internal/infrastructure/logging"
	"morais_erp/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrInvalidPeriod = errors.New("invalid period, use month, quarter or year")

// IReportUseCase serves the read-only rollups. Every figure comes from the
// finance package so dashboards and reports agree with each other.
type IReportUseCase interface {
	Dashboard(ctx context.Context) (finance.Dashboard, error)
	ProjectSummary(ctx context.Context, projectID string) (finance.ProjectSummary, error)
	FinancialReport(ctx context.Context) (finance.FinancialReport, error)
	CashFlow(ctx context.Context, period finance.Period) (finance.CashFlowReport, error)
	ProjectInsights(ctx context.Context, projectID string) ([]string, error)
}

type ReportUseCase struct {
	orders      interfaces.IMaterialOrderRepository
	payables    interfaces.IAccountPayableRepository
	receivables interfaces.IAccountReceivableRepository
	projects    interfaces.IRegistryRepository[entities.Project]
	advisor     interfaces.IOrderAdvisor

	now func() time.Time
	log *logrus.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	orders interfaces.IMaterialOrderRepository,
	payables interfaces.IAccountPayableRepository,
	receivables interfaces.IAccountReceivableRepository,
	projects interfaces.IRegistryRepository[entities.Project],
	advisor interfaces.IOrderAdvisor,
) *ReportUseCase {
	return &ReportUseCase{
		orders:      orders,
		payables:    payables,
		receivables: receivables,
		projects:    projects,
		advisor:     advisor,
		now:         func() time.Time { return time.Now().UTC() },
		log:         logging.GetLogger(),
	}
}

func (u *ReportUseCase) Dashboard(ctx context.Context) (finance.Dashboard, error) {
	projects, err := u.projects.List(ctx)
	if err != nil {
		return finance.Dashboard{}, err
	}
	orders, err := u.orders.List(ctx)
	if err != nil {
		return finance.Dashboard{}, err
	}
	return finance.BuildDashboard(projects, orders), nil
}

func (u *ReportUseCase) ProjectSummary(ctx context.Context, projectID string) (finance.ProjectSummary, error) {
	p, err := u.project(ctx, projectID)
	if err != nil {
		return finance.ProjectSummary{}, err
	}
	orders, err := u.orders.ListByProjectID(ctx, p.ID)
	if err != nil {
		return finance.ProjectSummary{}, err
	}
	return finance.SummarizeProject(p, orders), nil
}

func (u *ReportUseCase) FinancialReport(ctx context.Context) (finance.FinancialReport, error) {
	projects, err := u.projects.List(ctx)
	if err != nil {
		return finance.FinancialReport{}, err
	}
	payables, receivables, err := u.ledgers(ctx)
	if err != nil {
		return finance.FinancialReport{}, err
	}
	return finance.BuildFinancialReport(projects, payables, receivables), nil
}

// CashFlow reports paid movements over the period window. An empty period is
// treated as month.
func (u *ReportUseCase) CashFlow(ctx context.Context, period finance.Period) (finance.CashFlowReport, error) {
	if period == "" {
		period = finance.PeriodMonth
	}
	if !period.Valid() {
		return finance.CashFlowReport{}, ErrInvalidPeriod
	}
	payables, receivables, err := u.ledgers(ctx)
	if err != nil {
		return finance.CashFlowReport{}, err
	}
	return finance.BuildCashFlow(u.now(), period, payables, receivables), nil
}

// ProjectInsights asks the advisor for purchasing tips over the project's
// requisitions. Without an advisor no tips are returned.
func (u *ReportUseCase) ProjectInsights(ctx context.Context, projectID string) ([]string, error) {
	p, err := u.project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if u.advisor == nil {
		return []string{}, nil
	}
	orders, err := u.orders.ListByProjectID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	tips := u.advisor.Insights(ctx, orders, p.Budget)
	u.log.WithFields(logrus.Fields{"project_id": p.ID, "orders": len(orders), "tips": len(tips)}).Info("[report][usecase] insights")
	return tips, nil
}

func (u *ReportUseCase) project(ctx context.Context, projectID string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ReportUseCase) ledgers(ctx context.Context) ([]entities.AccountPayable, []entities.AccountReceivable, error) {
	payables, err := u.payables.List(ctx, entities.PayableFilter{})
	if err != nil {
		return nil, nil, err
	}
	receivables, err := u.receivables.List(ctx, entities.ReceivableFilter{})
	if err != nil {
		return nil, nil, err
	}
	return payables, receivables, nil
}
