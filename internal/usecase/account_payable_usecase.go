package usecase

import (
	"context"
	"errors"
	"io"
	"morais_erp/internal/domain/entities"
	"morais_erp/internal/domain/finance"
	"morais_erp/internal/domain/payable"
	"morais_erp/internal/infrastructure/logging"
	"morais_erp/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPayableNotFound      = errors.New("account payable not found")
	ErrPayableAlreadyExists = errors.New("account payable already generated for this order")
	ErrInvalidPayableID     = errors.New("invalid payable id")
	ErrInvalidPayable       = errors.New("invalid account payable")
	ErrPayableNotOpen       = errors.New("account payable is not open")
	ErrOrderNotApproved     = errors.New("material order is not approved")
	ErrNoSelectedQuote      = errors.New("material order has no selected quote")
	ErrInvalidCategory      = errors.New("invalid transaction category")
	ErrExporterUnavailable  = errors.New("payables exporter not configured")
)

type CreatePayableInput struct {
	ProjectID     string
	SupplierID    string
	Description   string
	Amount        float64
	DueDate       time.Time
	Category      string
	PaymentMethod string
	BillingTerms  string
	Observations  string
	CreatedBy     string
}

// IAccountPayableUseCase manages accounts payable. Payables are never deleted:
// they are settled with MarkAsPaid or voided with Cancel.

type IAccountPayableUseCase interface {
	interfaces.IApprovalNotifier
	GenerateForOrder(ctx context.Context, orderID string) (entities.AccountPayable, error)
	Create(ctx context.Context, in CreatePayableInput) (entities.AccountPayable, error)
	GetByID(ctx context.Context, id string) (entities.AccountPayable, error)
	MarkAsPaid(ctx context.Context, id string, paidAt time.Time, method string) (entities.AccountPayable, error)
	Cancel(ctx context.Context, id string) (entities.AccountPayable, error)
	List(ctx context.Context, filter entities.PayableFilter) ([]entities.AccountPayable, error)
	Stats(ctx context.Context, filter entities.PayableFilter) (finance.PayableStats, error)
	Export(ctx context.Context, w io.Writer, filter entities.PayableFilter) error
}

type AccountPayableUseCase struct {
	repo      interfaces.IAccountPayableRepository
	orders    interfaces.IMaterialOrderRepository
	projects  interfaces.IRegistryRepository[entities.Project]
	suppliers interfaces.IRegistryRepository[entities.Supplier]
	exporter  interfaces.IPayableExporter
	locker    interfaces.IOrderLocker
	generator *payable.Generator

	now func() time.Time
	log *logrus.Logger
}

var _ IAccountPayableUseCase = (*AccountPayableUseCase)(nil)

func NewAccountPayableUseCase(
	repo interfaces.IAccountPayableRepository,
	orders interfaces.IMaterialOrderRepository,
	projects interfaces.IRegistryRepository[entities.Project],
	suppliers interfaces.IRegistryRepository[entities.Supplier],
	exporter interfaces.IPayableExporter,
	locker interfaces.IOrderLocker,
) *AccountPayableUseCase {
	now := func() time.Time { return time.Now().UTC() }
	return &AccountPayableUseCase{
		repo:      repo,
		orders:    orders,
		projects:  projects,
		suppliers: suppliers,
		exporter:  exporter,
		locker:    locker,
		generator: payable.NewGenerator(now),
		now:       now,
		log:       logging.GetLogger(),
	}
}

func newPayableID() string {
	return "AP-" + uuid.NewString()
}

// OnOrderApproved creates the payable of an approved requisition. A second call
// for the same order is refused with ErrPayableAlreadyExists. The payable id is
// derived from the order id, so the conditional create rejects a duplicate even
// when the order index is stale. Callers hold the order lock.
func (u *AccountPayableUseCase) OnOrderApproved(ctx context.Context, order entities.MaterialOrder) (entities.AccountPayable, error) {
	fields := logrus.Fields{"order_id": order.ID}
	if order.Status != entities.OrderStatusApproved {
		return entities.AccountPayable{}, ErrOrderNotApproved
	}
	quote, ok := order.SelectedQuote()
	if !ok {
		return entities.AccountPayable{}, ErrNoSelectedQuote
	}

	existing, err := u.repo.ListByOrderID(ctx, order.ID)
	if err != nil {
		return entities.AccountPayable{}, err
	}
	if len(existing) > 0 {
		u.log.WithFields(fields).WithField("payable_id", existing[0].ID).Warn("[payable][usecase] already generated")
		return entities.AccountPayable{}, ErrPayableAlreadyExists
	}

	if days, src := payable.ResolveTermDays(quote); src == payable.TermCapped ||
		(src == payable.TermDefault && strings.TrimSpace(quote.BillingTerms) != "") {
		u.log.WithFields(fields).WithFields(logrus.Fields{
			"billing_terms": quote.BillingTerms,
			"term_days":     days,
			"term_source":   src,
		}).Warn("[payable][usecase] billing terms not usable as given")
	}

	ap := u.generator.Generate(order, quote)
	created, err := u.repo.Create(ctx, ap)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		u.log.WithFields(fields).WithField("payable_id", ap.ID).Warn("[payable][usecase] already generated")
		return entities.AccountPayable{}, ErrPayableAlreadyExists
	}
	if err != nil {
		return entities.AccountPayable{}, err
	}
	u.log.WithFields(fields).WithFields(logrus.Fields{
		"payable_id": created.ID,
		"amount":     created.Amount,
		"due_date":   created.DueDate.Format(time.DateOnly),
		"category":   created.Category,
	}).Info("[payable][usecase] generated from approval")
	return created, nil
}

// GenerateForOrder retries payable generation for an already approved order,
// under the same order lock the approval takes.
func (u *AccountPayableUseCase) GenerateForOrder(ctx context.Context, orderID string) (entities.AccountPayable, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.AccountPayable{}, ErrInvalidOrderID
	}
	if u.locker != nil {
		release, lockErr := u.locker.Lock(ctx, orderID)
		if lockErr != nil {
			return entities.AccountPayable{}, lockErr
		}
		defer func() {
			if relErr := release(context.WithoutCancel(ctx)); relErr != nil {
				logging.LogError(u.log, "payable", "GenerateForOrder", logrus.Fields{"order_id": orderID}, relErr)
			}
		}()
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.AccountPayable{}, err
	}
	if order.ID == "" {
		return entities.AccountPayable{}, ErrOrderNotFound
	}
	return u.OnOrderApproved(ctx, order)
}

func (u *AccountPayableUseCase) Create(ctx context.Context, in CreatePayableInput) (entities.AccountPayable, error) {
	ap := entities.AccountPayable{
		ID:           newPayableID(),
		ProjectID:    strings.TrimSpace(in.ProjectID),
		SupplierID:   strings.TrimSpace(in.SupplierID),
		Description:  strings.TrimSpace(in.Description),
		Amount:       in.Amount,
		Status:       entities.PaymentStatusPending,
		Category:     entities.CategoryMateriais,
		BillingTerms: strings.TrimSpace(in.BillingTerms),
		Observations: strings.TrimSpace(in.Observations),
		CreatedAt:    u.now(),
		CreatedBy:    getenvDefault("DEFAULT_REQUESTER", defaultRequester),
	}
	if ap.ProjectID == "" || ap.SupplierID == "" || ap.Description == "" || ap.Amount <= 0 {
		return entities.AccountPayable{}, ErrInvalidPayable
	}
	if c := strings.TrimSpace(in.Category); c != "" {
		ap.Category = entities.TransactionCategory(c)
		if !ap.Category.Valid() {
			return entities.AccountPayable{}, ErrInvalidCategory
		}
	}
	if m := strings.TrimSpace(in.PaymentMethod); m != "" {
		method, ok := entities.ParsePaymentMethod(m)
		if !ok {
			return entities.AccountPayable{}, ErrInvalidPaymentMethod
		}
		ap.PaymentMethod = method
	}
	if by := strings.TrimSpace(in.CreatedBy); by != "" {
		ap.CreatedBy = by
	}
	ap.DueDate = entities.DateOnly(in.DueDate)
	if in.DueDate.IsZero() {
		ap.DueDate = entities.DateOnly(u.now())
	}

	created, err := u.repo.Create(ctx, ap)
	if err != nil {
		return entities.AccountPayable{}, err
	}
	u.log.WithFields(logrus.Fields{"payable_id": created.ID, "amount": created.Amount}).Info("[payable][usecase] created")
	return created, nil
}

func (u *AccountPayableUseCase) GetByID(ctx context.Context, id string) (entities.AccountPayable, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AccountPayable{}, ErrInvalidPayableID
	}
	ap, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.AccountPayable{}, err
	}
	if ap.ID == "" {
		return entities.AccountPayable{}, ErrPayableNotFound
	}
	return ap, nil
}

// MarkAsPaid settles an open payable. A zero paidAt means today.
func (u *AccountPayableUseCase) MarkAsPaid(ctx context.Context, id string, paidAt time.Time, method string) (entities.AccountPayable, error) {
	pm, ok := entities.ParsePaymentMethod(method)
	if !ok {
		return entities.AccountPayable{}, ErrInvalidPaymentMethod
	}
	if paidAt.IsZero() {
		paidAt = u.now()
	}
	ap, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.AccountPayable{}, err
	}
	if !ap.MarkPaid(paidAt, pm) {
		return entities.AccountPayable{}, ErrPayableNotOpen
	}
	u.log.WithFields(logrus.Fields{"payable_id": ap.ID, "method": pm}).Info("[payable][usecase] paid")
	return u.repo.Save(ctx, ap)
}

func (u *AccountPayableUseCase) Cancel(ctx context.Context, id string) (entities.AccountPayable, error) {
	ap, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.AccountPayable{}, err
	}
	if !ap.Cancel() {
		return entities.AccountPayable{}, ErrPayableNotOpen
	}
	u.log.WithField("payable_id", ap.ID).Info("[payable][usecase] cancelled")
	return u.repo.Save(ctx, ap)
}

// List returns matching payables ordered by due date.
func (u *AccountPayableUseCase) List(ctx context.Context, filter entities.PayableFilter) ([]entities.AccountPayable, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidPayable
	}
	list, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].DueDate.Before(list[j].DueDate) })
	return list, nil
}

func (u *AccountPayableUseCase) Stats(ctx context.Context, filter entities.PayableFilter) (finance.PayableStats, error) {
	list, err := u.List(ctx, filter)
	if err != nil {
		return finance.PayableStats{}, err
	}
	return finance.StatsOf(list, u.now()), nil
}

// Export writes the matching payables with supplier and project names resolved;
// references that no longer resolve are written as N/A.
func (u *AccountPayableUseCase) Export(ctx context.Context, w io.Writer, filter entities.PayableFilter) error {
	if u.exporter == nil {
		return ErrExporterUnavailable
	}
	list, err := u.List(ctx, filter)
	if err != nil {
		return err
	}
	projects, err := u.projects.List(ctx)
	if err != nil {
		return err
	}
	suppliers, err := u.suppliers.List(ctx)
	if err != nil {
		return err
	}
	projectNames := namesByID(projects, func(p entities.Project) string { return p.Name })
	supplierNames := namesByID(suppliers, func(s entities.Supplier) string { return s.Name })

	rows := make([]interfaces.PayableSheetRow, 0, len(list))
	for _, ap := range list {
		pn, pok := projectNames[ap.ProjectID]
		sn, sok := supplierNames[ap.SupplierID]
		rows = append(rows, interfaces.PayableSheetRow{
			Payable:      ap,
			ProjectName:  entities.NameOf(pn, pok),
			SupplierName: entities.NameOf(sn, sok),
		})
	}
	u.log.WithField("rows", len(rows)).Info("[payable][usecase] export")
	return u.exporter.WritePayables(ctx, w, rows)
}

func namesByID[T entities.Record[T]](records []T, name func(T) string) map[string]string {
	out := make(map[string]string, len(records))
	for _, r := range records {
		out[r.RecordID()] = name(r)
	}
	return out
}
