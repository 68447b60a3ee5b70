package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"morais_erp/internal/domain/entities"
	"morais_erp/internal/infrastructure/logging"
	"morais_erp/internal/usecase/interfaces"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidOrderID       = errors.New("invalid order_id")
	ErrInvalidQuoteID       = errors.New("invalid quote_id")
	ErrInvalidProjectID     = errors.New("invalid project_id")
	ErrInvalidSupplierID    = errors.New("invalid supplier_id")
	ErrOrderWithoutItems    = errors.New("order requires at least one item")
	ErrInvalidItem          = errors.New("invalid material item")
	ErrInvalidQuote         = errors.New("invalid quote")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrOrderNotFound        = errors.New("material order not found")
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrOrderClosed          = errors.New("material order is closed")
	ErrQuotesFrozen         = errors.New("quotes are frozen after approval")
	ErrNotEnoughQuotes      = fmt.Errorf("at least %d quotes are required for approval", entities.MinQuotesForApproval)
	ErrPaymentMethodMissing = errors.New("selected quote has no payment method")
	ErrOrderIDUnavailable   = errors.New("could not allocate a requisition id")
	ErrPayableGeneration    = errors.New("order approved but payable generation failed")
)

const (
	orderIDAttempts  = 5
	defaultRequester = "Felipe Paiva"
)

// NewMaterialItem is an item as typed by the requester. Category and unit are
// suggested by the classifier when left blank.
type NewMaterialItem struct {
	Name     string
	Quantity float64
	Unit     string
	Category string
}

type CreateOrderInput struct {
	ProjectID   string
	RequestedBy string
	Items       []NewMaterialItem
}

// NewQuoteInput describes one supplier bid. When ItemPrices is not empty the
// total is derived from it, otherwise TotalPrice is taken as entered.
type NewQuoteInput struct {
	SupplierID        string
	DeliveryDays      int
	IsFreightIncluded bool
	FreightCost       float64
	BillingTerms      string
	TermDays          int
	PaymentMethod     string
	Observations      string
	Justification     string
	ItemPrices        []entities.ItemQuoteEntry
	TotalPrice        float64
}

// QuoteDetailsInput carries the editable quote fields; nil keeps the current value.
type QuoteDetailsInput struct {
	PaymentMethod *string
	Observations  *string
}

// ApprovalOutcome is the approved requisition and the payable generated for it.
type ApprovalOutcome struct {
	Order   entities.MaterialOrder
	Payable *entities.AccountPayable
}

// IMaterialOrderUseCase exposes the requisition quoting and approval workflow.
//
//   - quotes are appended, never removed; three of them make the order ready for approval
//   - one quote at most is selected; selection is frozen once approved
//   - approval auto-selects the cheapest quote and generates exactly one payable

type IMaterialOrderUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.MaterialOrder, error)
	AddItem(ctx context.Context, orderID string, item NewMaterialItem) (entities.MaterialOrder, error)
	AddQuote(ctx context.Context, orderID string, in NewQuoteInput) (entities.MaterialOrder, error)
	SelectQuote(ctx context.Context, orderID, quoteID string) (entities.MaterialOrder, error)
	UpdateQuoteDetails(ctx context.Context, orderID, quoteID string, in QuoteDetailsInput) (entities.MaterialOrder, error)
	ApprovalStatus(ctx context.Context, orderID string) (entities.ApprovalCheck, error)
	Approve(ctx context.Context, orderID string) (ApprovalOutcome, error)
	Reject(ctx context.Context, orderID string) (entities.MaterialOrder, error)
	GetByID(ctx context.Context, orderID string) (entities.MaterialOrder, error)
	List(ctx context.Context, projectID string) ([]entities.MaterialOrder, error)
}

type MaterialOrderUseCase struct {
	repo       interfaces.IMaterialOrderRepository
	projects   interfaces.IRegistryRepository[entities.Project]
	classifier interfaces.IMaterialClassifier
	locker     interfaces.IOrderLocker
	notifier   interfaces.IApprovalNotifier

	now    func() time.Time
	nextID func() string
	log    *logrus.Logger
}

var _ IMaterialOrderUseCase = (*MaterialOrderUseCase)(nil)

func NewMaterialOrderUseCase(
	repo interfaces.IMaterialOrderRepository,
	projects interfaces.IRegistryRepository[entities.Project],
	classifier interfaces.IMaterialClassifier,
	locker interfaces.IOrderLocker,
	notifier interfaces.IApprovalNotifier,
) *MaterialOrderUseCase {
	return &MaterialOrderUseCase{
		repo:       repo,
		projects:   projects,
		classifier: classifier,
		locker:     locker,
		notifier:   notifier,
		now:        func() time.Time { return time.Now().UTC() },
		nextID:     randomOrderID,
		log:        logging.GetLogger(),
	}
}

func randomOrderID() string {
	return fmt.Sprintf("REQ-%d", 1000+rand.Intn(9000))
}

func (u *MaterialOrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.MaterialOrder, error) {
	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return entities.MaterialOrder{}, ErrInvalidProjectID
	}
	if len(in.Items) == 0 {
		return entities.MaterialOrder{}, ErrOrderWithoutItems
	}
	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.MaterialOrder{}, err
	}
	if project.ID == "" {
		return entities.MaterialOrder{}, ErrProjectNotFound
	}

	items := make([]entities.MaterialItem, 0, len(in.Items))
	for _, raw := range in.Items {
		item, err := u.buildItem(ctx, raw)
		if err != nil {
			return entities.MaterialOrder{}, err
		}
		items = append(items, item)
	}

	requester := strings.TrimSpace(in.RequestedBy)
	if requester == "" {
		requester = getenvDefault("DEFAULT_REQUESTER", defaultRequester)
	}

	order := entities.MaterialOrder{
		ProjectID:   projectID,
		RequestDate: u.now(),
		Status:      entities.OrderStatusPendingQuotes,
		RequestedBy: requester,
		Items:       items,
		Quotes:      []entities.OrderQuote{},
	}

	for attempt := 0; attempt < orderIDAttempts; attempt++ {
		order.ID = u.nextID()
		created, err := u.repo.Create(ctx, order)
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			u.log.WithFields(logrus.Fields{"order_id": order.ID, "attempt": attempt + 1}).Warn("[order][usecase] id collision")
			continue
		}
		if err != nil {
			return entities.MaterialOrder{}, err
		}
		u.log.WithFields(logrus.Fields{"order_id": created.ID, "project_id": projectID, "items": len(items)}).Info("[order][usecase] created")
		return created, nil
	}
	return entities.MaterialOrder{}, ErrOrderIDUnavailable
}

func (u *MaterialOrderUseCase) AddItem(ctx context.Context, orderID string, raw NewMaterialItem) (entities.MaterialOrder, error) {
	item, err := u.buildItem(ctx, raw)
	if err != nil {
		return entities.MaterialOrder{}, err
	}
	return u.mutate(ctx, orderID, func(o *entities.MaterialOrder) error {
		if !o.AddItem(item) {
			return ErrOrderClosed
		}
		return nil
	})
}

// buildItem validates one item and fills category/unit through the classifier.
func (u *MaterialOrderUseCase) buildItem(ctx context.Context, raw NewMaterialItem) (entities.MaterialItem, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" || raw.Quantity <= 0 {
		return entities.MaterialItem{}, ErrInvalidItem
	}
	item := entities.MaterialItem{
		ID:       uuid.NewString(),
		Name:     name,
		Quantity: raw.Quantity,
		Unit:     strings.TrimSpace(raw.Unit),
		Category: strings.TrimSpace(raw.Category),
	}
	if item.Unit != "" && item.Category != "" {
		return item, nil
	}

	suggestion := entities.FallbackClassification
	if u.classifier != nil {
		suggestion = u.classifier.Classify(ctx, name)
	}
	if item.Unit == "" {
		item.Unit = suggestion.Unit
	}
	if item.Category == "" {
		item.Category = suggestion.Category
	}
	return item, nil
}

func (u *MaterialOrderUseCase) AddQuote(ctx context.Context, orderID string, in NewQuoteInput) (entities.MaterialOrder, error) {
	supplierID := strings.TrimSpace(in.SupplierID)
	if supplierID == "" {
		return entities.MaterialOrder{}, ErrInvalidSupplierID
	}
	if in.DeliveryDays < 0 || in.FreightCost < 0 || in.TermDays < 0 || in.TotalPrice < 0 {
		return entities.MaterialOrder{}, ErrInvalidQuote
	}
	for _, p := range in.ItemPrices {
		if p.UnitPrice < 0 {
			return entities.MaterialOrder{}, ErrInvalidQuote
		}
	}
	var method entities.PaymentMethod
	if strings.TrimSpace(in.PaymentMethod) != "" {
		m, ok := entities.ParsePaymentMethod(in.PaymentMethod)
		if !ok {
			return entities.MaterialOrder{}, ErrInvalidPaymentMethod
		}
		method = m
	}

	return u.mutate(ctx, orderID, func(o *entities.MaterialOrder) error {
		q := entities.OrderQuote{
			ID:                uuid.NewString(),
			SupplierID:        supplierID,
			DeliveryDays:      in.DeliveryDays,
			Justification:     strings.TrimSpace(in.Justification),
			PaymentMethod:     method,
			Observations:      strings.TrimSpace(in.Observations),
			IsFreightIncluded: in.IsFreightIncluded,
			FreightCost:       in.FreightCost,
			BillingTerms:      strings.TrimSpace(in.BillingTerms),
			TermDays:          in.TermDays,
			ItemPrices:        in.ItemPrices,
			TotalPrice:        in.TotalPrice,
		}
		if len(in.ItemPrices) > 0 {
			q.TotalPrice = entities.QuoteTotal(o.Items, in.ItemPrices, in.IsFreightIncluded, in.FreightCost)
		}
		if !o.AddQuote(q) {
			return ErrOrderClosed
		}
		return nil
	})
}

func (u *MaterialOrderUseCase) SelectQuote(ctx context.Context, orderID, quoteID string) (entities.MaterialOrder, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.MaterialOrder{}, ErrInvalidQuoteID
	}
	return u.mutate(ctx, orderID, func(o *entities.MaterialOrder) error {
		if _, ok := o.FindQuote(quoteID); !ok {
			return ErrQuoteNotFound
		}
		if !o.SelectQuote(quoteID) {
			return ErrQuotesFrozen
		}
		return nil
	})
}

func (u *MaterialOrderUseCase) UpdateQuoteDetails(ctx context.Context, orderID, quoteID string, in QuoteDetailsInput) (entities.MaterialOrder, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.MaterialOrder{}, ErrInvalidQuoteID
	}
	var method *entities.PaymentMethod
	if in.PaymentMethod != nil {
		m, ok := entities.ParsePaymentMethod(*in.PaymentMethod)
		if !ok {
			return entities.MaterialOrder{}, ErrInvalidPaymentMethod
		}
		method = &m
	}

	return u.mutate(ctx, orderID, func(o *entities.MaterialOrder) error {
		if o.Status == entities.OrderStatusApproved {
			return ErrQuotesFrozen
		}
		if !o.UpdateQuoteDetails(quoteID, method, in.Observations) {
			return ErrQuoteNotFound
		}
		return nil
	})
}

func (u *MaterialOrderUseCase) ApprovalStatus(ctx context.Context, orderID string) (entities.ApprovalCheck, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.ApprovalCheck{}, err
	}
	return o.CheckApproval(), nil
}

// Approve approves the requisition and hands it to the approval notifier once,
// before the order lock is released. A notifier failure leaves the order
// approved and is reported as ErrPayableGeneration together with the approved
// order.
func (u *MaterialOrderUseCase) Approve(ctx context.Context, orderID string) (ApprovalOutcome, error) {
	fields := logrus.Fields{"order_id": orderID}
	u.log.WithFields(fields).Info("[order][usecase] approve start")

	var (
		out       ApprovalOutcome
		notifyErr error
	)
	change := func(o *entities.MaterialOrder) error {
		ok, blocker := o.Approve()
		if !ok {
			u.log.WithFields(fields).WithField("blocker", blocker).Info("[order][usecase] approve refused")
			return blockerError(blocker)
		}
		return nil
	}
	notify := func(approved entities.MaterialOrder) {
		if u.notifier == nil {
			return
		}
		ap, err := u.notifier.OnOrderApproved(ctx, approved)
		if err != nil {
			notifyErr = err
			return
		}
		out.Payable = &ap
	}

	approved, err := u.mutateThen(ctx, orderID, change, notify)
	if err != nil {
		return ApprovalOutcome{}, err
	}
	out.Order = approved
	if notifyErr != nil {
		logging.LogError(u.log, "order", "Approve", fields, notifyErr)
		return out, fmt.Errorf("%w: %v", ErrPayableGeneration, notifyErr)
	}
	if out.Payable != nil {
		fields["payable_id"] = out.Payable.ID
	}
	u.log.WithFields(fields).Info("[order][usecase] approve success")
	return out, nil
}

func blockerError(b entities.ApprovalBlocker) error {
	switch b {
	case entities.ApprovalBlockerClosed:
		return ErrOrderClosed
	case entities.ApprovalBlockerNotEnoughQuotes:
		return ErrNotEnoughQuotes
	default:
		return ErrPaymentMethodMissing
	}
}

func (u *MaterialOrderUseCase) Reject(ctx context.Context, orderID string) (entities.MaterialOrder, error) {
	return u.mutate(ctx, orderID, func(o *entities.MaterialOrder) error {
		if !o.Reject() {
			return ErrOrderClosed
		}
		return nil
	})
}

func (u *MaterialOrderUseCase) GetByID(ctx context.Context, orderID string) (entities.MaterialOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.MaterialOrder{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.MaterialOrder{}, err
	}
	if o.ID == "" {
		return entities.MaterialOrder{}, ErrOrderNotFound
	}
	return o, nil
}

// List returns requisitions newest first, restricted to projectID when given.
func (u *MaterialOrderUseCase) List(ctx context.Context, projectID string) ([]entities.MaterialOrder, error) {
	var (
		orders []entities.MaterialOrder
		err    error
	)
	if projectID = strings.TrimSpace(projectID); projectID != "" {
		orders, err = u.repo.ListByProjectID(ctx, projectID)
	} else {
		orders, err = u.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].RequestDate.After(orders[j].RequestDate) })
	return orders, nil
}

// mutate loads the order under its lock, applies change and stores the result.
// Nothing is written when change fails.
func (u *MaterialOrderUseCase) mutate(ctx context.Context, orderID string, change func(o *entities.MaterialOrder) error) (entities.MaterialOrder, error) {
	return u.mutateThen(ctx, orderID, change, nil)
}

// mutateThen is mutate with a hook run on the saved order while the lock is
// still held.
func (u *MaterialOrderUseCase) mutateThen(
	ctx context.Context,
	orderID string,
	change func(o *entities.MaterialOrder) error,
	after func(saved entities.MaterialOrder),
) (entities.MaterialOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.MaterialOrder{}, ErrInvalidOrderID
	}

	if u.locker != nil {
		release, err := u.locker.Lock(ctx, orderID)
		if err != nil {
			return entities.MaterialOrder{}, err
		}
		defer func() {
			if rErr := release(context.WithoutCancel(ctx)); rErr != nil {
				logging.LogError(u.log, "order", "mutate", logrus.Fields{"order_id": orderID}, rErr)
			}
		}()
	}

	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.MaterialOrder{}, err
	}
	if err := change(&o); err != nil {
		return entities.MaterialOrder{}, err
	}
	saved, err := u.repo.Save(ctx, o)
	if err != nil {
		return entities.MaterialOrder{}, err
	}
	if after != nil {
		after(saved)
	}
	return saved, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
