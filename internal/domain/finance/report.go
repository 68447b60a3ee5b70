package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"morais_erp/internal/domain/entities"
)

// DRE is the simplified income statement over settled movements.
type DRE struct {
	Revenue      float64 `json:"revenue"`
	Expenses     float64 `json:"expenses"`
	GrossProfit  float64 `json:"gross_profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

type ProjectRevenue struct {
	ProjectID string  `json:"project_id"`
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
	Budget    float64 `json:"budget"`
	Usage     float64 `json:"usage"`
}

type BudgetLine struct {
	ProjectID string  `json:"project_id"`
	Name      string  `json:"name"`
	Budget    float64 `json:"budget"`
	Revenue   float64 `json:"revenue"`
	Expenses  float64 `json:"expenses"`
	Variance  float64 `json:"variance"`
}

type FinancialReport struct {
	DRE                DRE              `json:"dre"`
	ExpensesByCategory []CategoryAmount `json:"expenses_by_category"`
	RevenueByProject   []ProjectRevenue `json:"revenue_by_project"`
	BudgetVsActual     []BudgetLine     `json:"budget_vs_actual"`
	PaidReceivables    int              `json:"paid_receivables"`
	PaidPayables       int              `json:"paid_payables"`
}

func BuildFinancialReport(projects []entities.Project, payables []entities.AccountPayable, receivables []entities.AccountReceivable) FinancialReport {
	r := FinancialReport{
		DRE:                BuildDRE(payables, receivables),
		ExpensesByCategory: ExpensesByCategory(payables),
		RevenueByProject:   RevenueByProject(receivables, projects),
		BudgetVsActual:     BudgetVsActual(projects, payables, receivables),
	}
	for _, ar := range receivables {
		if ar.Status == entities.PaymentStatusPaid {
			r.PaidReceivables++
		}
	}
	for _, ap := range payables {
		if ap.Status == entities.PaymentStatusPaid {
			r.PaidPayables++
		}
	}
	return r
}

func BuildDRE(payables []entities.AccountPayable, receivables []entities.AccountReceivable) DRE {
	revenue := paidReceived(receivables, "")
	expenses := paidSpent(payables, "")
	profit := revenue.Sub(expenses)
	return DRE{
		Revenue:      revenue.InexactFloat64(),
		Expenses:     expenses.InexactFloat64(),
		GrossProfit:  profit.InexactFloat64(),
		ProfitMargin: percent(profit.InexactFloat64(), revenue.InexactFloat64()),
	}
}

// RevenueByProject sums paid receivables per project, sorted by revenue
// descending. Unknown projects are reported as N/A with a zero budget.
func RevenueByProject(receivables []entities.AccountReceivable, projects []entities.Project) []ProjectRevenue {
	byID := indexProjects(projects)
	totals := make(map[string]decimal.Decimal)
	seen := make([]string, 0)
	for _, ar := range receivables {
		if ar.Status != entities.PaymentStatusPaid {
			continue
		}
		if _, ok := totals[ar.ProjectID]; !ok {
			seen = append(seen, ar.ProjectID)
		}
		totals[ar.ProjectID] = totals[ar.ProjectID].Add(decimal.NewFromFloat(ar.Amount))
	}

	out := make([]ProjectRevenue, 0, len(seen))
	for _, id := range seen {
		p, found := byID[id]
		revenue := totals[id].InexactFloat64()
		out = append(out, ProjectRevenue{
			ProjectID: id,
			Name:      entities.NameOf(p.Name, found),
			Revenue:   revenue,
			Budget:    p.Budget,
			Usage:     percent(revenue, p.Budget),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out
}

// BudgetVsActual compares each project's budget with its paid revenue.
func BudgetVsActual(projects []entities.Project, payables []entities.AccountPayable, receivables []entities.AccountReceivable) []BudgetLine {
	out := make([]BudgetLine, 0, len(projects))
	for _, p := range projects {
		revenue := paidReceived(receivables, p.ID)
		out = append(out, BudgetLine{
			ProjectID: p.ID,
			Name:      p.Name,
			Budget:    p.Budget,
			Revenue:   revenue.InexactFloat64(),
			Expenses:  paidSpent(payables, p.ID).InexactFloat64(),
			Variance:  revenue.Sub(decimal.NewFromFloat(p.Budget)).InexactFloat64(),
		})
	}
	return out
}

// Period selects how many months the cash flow covers.
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// Months returns the number of calendar months shown for the period.
func (p Period) Months() int {
	switch p {
	case PeriodQuarter:
		return 4
	case PeriodYear:
		return 2
	default:
		return 6
	}
}

func (p Period) Valid() bool {
	return p == PeriodMonth || p == PeriodQuarter || p == PeriodYear
}

type CashFlowMonth struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type ProjectionMonth struct {
	Month            string  `json:"month"`
	ProjectedIncome  float64 `json:"projected_income"`
	ProjectedExpense float64 `json:"projected_expense"`
}

type CashPosition struct {
	CurrentBalance float64 `json:"current_balance"`
	PendingIncome  float64 `json:"pending_income"`
	PendingExpense float64 `json:"pending_expense"`
}

type CashFlowReport struct {
	Period     Period            `json:"period"`
	Position   CashPosition      `json:"position"`
	Months     []CashFlowMonth   `json:"months"`
	Projection []ProjectionMonth `json:"projection"`
	Expenses   []CategoryAmount  `json:"expenses_by_category"`
}

// ProjectionMonths is how far ahead pending movements are projected.
const ProjectionMonths = 3

func BuildCashFlow(now time.Time, period Period, payables []entities.AccountPayable, receivables []entities.AccountReceivable) CashFlowReport {
	return CashFlowReport{
		Period:     period,
		Position:   Position(payables, receivables),
		Months:     CashFlow(now, period, payables, receivables),
		Projection: Projection(now, payables, receivables),
		Expenses:   ExpensesByCategory(payables),
	}
}

// CashFlow buckets paid movements by payment month over the last
// period.Months() months, the current one included. The balance accumulates
// from the oldest month; the result lists the newest month first.
func CashFlow(now time.Time, period Period, payables []entities.AccountPayable, receivables []entities.AccountReceivable) []CashFlowMonth {
	n := period.Months()
	keys := make([]string, n)
	income := make(map[string]decimal.Decimal, n)
	expense := make(map[string]decimal.Decimal, n)
	for i := 0; i < n; i++ {
		keys[n-1-i] = MonthKey(monthStart(now, -i))
		income[keys[n-1-i]] = decimal.Zero
		expense[keys[n-1-i]] = decimal.Zero
	}

	for _, ar := range receivables {
		if ar.Status != entities.PaymentStatusPaid || ar.PaymentDate == nil {
			continue
		}
		if v, ok := income[MonthKey(*ar.PaymentDate)]; ok {
			income[MonthKey(*ar.PaymentDate)] = v.Add(decimal.NewFromFloat(ar.Amount))
		}
	}
	for _, ap := range payables {
		if ap.Status != entities.PaymentStatusPaid || ap.PaymentDate == nil {
			continue
		}
		if v, ok := expense[MonthKey(*ap.PaymentDate)]; ok {
			expense[MonthKey(*ap.PaymentDate)] = v.Add(decimal.NewFromFloat(ap.Amount))
		}
	}

	out := make([]CashFlowMonth, n)
	balance := decimal.Zero
	for i, k := range keys {
		balance = balance.Add(income[k]).Sub(expense[k])
		out[n-1-i] = CashFlowMonth{
			Month:   k,
			Income:  income[k].InexactFloat64(),
			Expense: expense[k].InexactFloat64(),
			Balance: balance.InexactFloat64(),
		}
	}
	return out
}

// Projection buckets pending movements by due month over the next
// ProjectionMonths months, the current month excluded.
func Projection(now time.Time, payables []entities.AccountPayable, receivables []entities.AccountReceivable) []ProjectionMonth {
	out := make([]ProjectionMonth, ProjectionMonths)
	index := make(map[string]int, ProjectionMonths)
	in := make([]decimal.Decimal, ProjectionMonths)
	exp := make([]decimal.Decimal, ProjectionMonths)
	for i := 0; i < ProjectionMonths; i++ {
		k := MonthKey(monthStart(now, i+1))
		out[i].Month = k
		index[k] = i
	}

	for _, ar := range receivables {
		if ar.Status != entities.PaymentStatusPending {
			continue
		}
		if i, ok := index[MonthKey(ar.DueDate)]; ok {
			in[i] = in[i].Add(decimal.NewFromFloat(ar.Amount))
		}
	}
	for _, ap := range payables {
		if ap.Status != entities.PaymentStatusPending {
			continue
		}
		if i, ok := index[MonthKey(ap.DueDate)]; ok {
			exp[i] = exp[i].Add(decimal.NewFromFloat(ap.Amount))
		}
	}
	for i := range out {
		out[i].ProjectedIncome = in[i].InexactFloat64()
		out[i].ProjectedExpense = exp[i].InexactFloat64()
	}
	return out
}

// Position is the balance of everything settled plus what is still pending.
func Position(payables []entities.AccountPayable, receivables []entities.AccountReceivable) CashPosition {
	pendingIn, pendingOut := decimal.Zero, decimal.Zero
	for _, ar := range receivables {
		if ar.Status == entities.PaymentStatusPending {
			pendingIn = pendingIn.Add(decimal.NewFromFloat(ar.Amount))
		}
	}
	for _, ap := range payables {
		if ap.Status == entities.PaymentStatusPending {
			pendingOut = pendingOut.Add(decimal.NewFromFloat(ap.Amount))
		}
	}
	return CashPosition{
		CurrentBalance: paidReceived(receivables, "").Sub(paidSpent(payables, "")).InexactFloat64(),
		PendingIncome:  pendingIn.InexactFloat64(),
		PendingExpense: pendingOut.InexactFloat64(),
	}
}

// MonthKey formats t as YYYY-MM in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func monthStart(t time.Time, offset int) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
}

// paidReceived sums paid receivables, restricted to projectID when not empty.
func paidReceived(receivables []entities.AccountReceivable, projectID string) decimal.Decimal {
	total := decimal.Zero
	for _, ar := range receivables {
		if ar.Status == entities.PaymentStatusPaid && (projectID == "" || ar.ProjectID == projectID) {
			total = total.Add(decimal.NewFromFloat(ar.Amount))
		}
	}
	return total
}

func paidSpent(payables []entities.AccountPayable, projectID string) decimal.Decimal {
	total := decimal.Zero
	for _, ap := range payables {
		if ap.Status == entities.PaymentStatusPaid && (projectID == "" || ap.ProjectID == projectID) {
			total = total.Add(decimal.NewFromFloat(ap.Amount))
		}
	}
	return total
}

func indexProjects(projects []entities.Project) map[string]entities.Project {
	m := make(map[string]entities.Project, len(projects))
	for _, p := range projects {
		m[p.ID] = p
	}
	return m
}
