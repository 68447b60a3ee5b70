package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"morais_erp/internal/domain/entities"
	"morais_erp/internal/infrastructure/logging"
	"morais_erp/internal/usecase/interfaces"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrReceivableNotFound  = errors.New("account receivable not found")
	ErrInvalidReceivableID = errors.New("invalid receivable id")
	ErrInvalidReceivable   = errors.New("invalid account receivable")
	ErrReceivableNotOpen   = errors.New("account receivable is not open")
	ErrPaymentNotApproved  = errors.New("payment not approved by provider")
)

type CreateReceivableInput struct {
	ProjectID         string
	ClientID          string
	Description       string
	Amount            float64
	DueDate           time.Time
	TotalInstallments int
	Observations      string
	CreatedBy         string
}

// IAccountReceivableUseCase manages amounts owed by clients, including charging
// them through the payment provider.

type IAccountReceivableUseCase interface {
	Create(ctx context.Context, in CreateReceivableInput) ([]entities.AccountReceivable, error)
	GetByID(ctx context.Context, id string) (entities.AccountReceivable, error)
	MarkAsReceived(ctx context.Context, id string, paidAt time.Time, method string) (entities.AccountReceivable, error)
	Charge(ctx context.Context, id string, mpPayload json.RawMessage) (entities.AccountReceivable, error)
	List(ctx context.Context, filter entities.ReceivableFilter, search string) ([]entities.AccountReceivable, error)
}

type AccountReceivableUseCase struct {
	repo     interfaces.IAccountReceivableRepository
	projects interfaces.IRegistryRepository[entities.Project]
	clients  interfaces.IRegistryRepository[entities.Client]
	gateway  interfaces.IPaymentGateway

	now func() time.Time
	log *logrus.Logger
}

var _ IAccountReceivableUseCase = (*AccountReceivableUseCase)(nil)

func NewAccountReceivableUseCase(
	repo interfaces.IAccountReceivableRepository,
	projects interfaces.IRegistryRepository[entities.Project],
	clients interfaces.IRegistryRepository[entities.Client],
	gateway interfaces.IPaymentGateway,
) *AccountReceivableUseCase {
	return &AccountReceivableUseCase{
		repo:     repo,
		projects: projects,
		clients:  clients,
		gateway:  gateway,
		now:      func() time.Time { return time.Now().UTC() },
		log:      logging.GetLogger(),
	}
}

func newReceivableID() string {
	return "AR-" + uuid.NewString()
}

// Create registers a receivable, split into monthly installments when
// TotalInstallments > 1. The project must exist.
func (u *AccountReceivableUseCase) Create(ctx context.Context, in CreateReceivableInput) ([]entities.AccountReceivable, error) {
	base := entities.AccountReceivable{
		ProjectID:    strings.TrimSpace(in.ProjectID),
		ClientID:     strings.TrimSpace(in.ClientID),
		Description:  strings.TrimSpace(in.Description),
		Amount:       in.Amount,
		DueDate:      entities.DateOnly(in.DueDate),
		Status:       entities.PaymentStatusPending,
		Observations: strings.TrimSpace(in.Observations),
		CreatedAt:    u.now(),
		CreatedBy:    strings.TrimSpace(in.CreatedBy),
	}
	if base.ProjectID == "" || base.ClientID == "" || base.Description == "" || base.Amount <= 0 || in.TotalInstallments < 0 {
		return nil, ErrInvalidReceivable
	}
	if in.DueDate.IsZero() {
		base.DueDate = entities.DateOnly(u.now())
	}
	if base.CreatedBy == "" {
		base.CreatedBy = getenvDefault("DEFAULT_REQUESTER", defaultRequester)
	}

	project, err := u.projects.GetByID(ctx, base.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.ID == "" {
		return nil, ErrProjectNotFound
	}

	parts := entities.SplitInstallments(base, in.TotalInstallments, newReceivableID)
	created := make([]entities.AccountReceivable, 0, len(parts))
	for _, ar := range parts {
		c, err := u.repo.Create(ctx, ar)
		if err != nil {
			return nil, err
		}
		created = append(created, c)
	}
	u.log.WithFields(logrus.Fields{"project_id": base.ProjectID, "installments": len(created)}).Info("[receivable][usecase] created")
	return created, nil
}

func (u *AccountReceivableUseCase) GetByID(ctx context.Context, id string) (entities.AccountReceivable, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AccountReceivable{}, ErrInvalidReceivableID
	}
	ar, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.AccountReceivable{}, err
	}
	if ar.ID == "" {
		return entities.AccountReceivable{}, ErrReceivableNotFound
	}
	return ar, nil
}

func (u *AccountReceivableUseCase) MarkAsReceived(ctx context.Context, id string, paidAt time.Time, method string) (entities.AccountReceivable, error) {
	pm, ok := entities.ParsePaymentMethod(method)
	if !ok {
		return entities.AccountReceivable{}, ErrInvalidPaymentMethod
	}
	if paidAt.IsZero() {
		paidAt = u.now()
	}
	ar, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.AccountReceivable{}, err
	}
	if !ar.MarkReceived(paidAt, pm) {
		return entities.AccountReceivable{}, ErrReceivableNotOpen
	}
	u.log.WithFields(logrus.Fields{"receivable_id": ar.ID, "method": pm}).Info("[receivable][usecase] received")
	return u.repo.Save(ctx, ar)
}

// Charge sends the receivable to the payment provider. The transaction amount is
// always the receivable amount and external_reference its id. An approved
// provider status settles the receivable; any other status is stored and
// reported as ErrPaymentNotApproved.
func (u *AccountReceivableUseCase) Charge(ctx context.Context, id string, mpPayload json.RawMessage) (entities.AccountReceivable, error) {
	fields := logrus.Fields{"receivable_id": id, "payload_len": len(mpPayload)}
	u.log.WithFields(fields).Info("[receivable][usecase] charge start")
	mockMode := isPaymentGatewayMockEnabled()

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			return entities.AccountReceivable{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.AccountReceivable{}, ErrPaymentGatewayUnavailable
	}

	ar, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.AccountReceivable{}, err
	}
	if !ar.Status.Open() {
		return entities.AccountReceivable{}, ErrReceivableNotOpen
	}

	req := map[string]any{}
	if err := json.Unmarshal(mpPayload, &req); err != nil {
		return entities.AccountReceivable{}, ErrInvalidMPPayload
	}
	if !mockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			return entities.AccountReceivable{}, ErrInvalidMPPayload
		}
		normalizeSandboxPayer(req)
		ensurePayerDefaults(req)
		if !hasPayer(req) {
			return entities.AccountReceivable{}, ErrInvalidMPPayload
		}
	}
	if _, ok := req["description"]; !ok {
		req["description"] = ar.Description
	}
	req["external_reference"] = ar.ID
	req["transaction_amount"] = ar.Amount
	payload, err := json.Marshal(req)
	if err != nil {
		return entities.AccountReceivable{}, err
	}

	var (
		providerID     string
		providerStatus string
		providerResp   json.RawMessage
	)
	if mockMode {
		u.log.WithFields(fields).Info("[receivable][usecase] mock mode; skipping payment gateway")
		providerID, providerStatus, providerResp, err = mockProviderResponse(req, u.now())
	} else {
		providerID, providerStatus, providerResp, err = u.gateway.Charge(ctx, payload)
		err = classifyGatewayError(err)
	}
	if err != nil {
		logging.LogError(u.log, "receivable", "Charge", fields, err)
		return entities.AccountReceivable{}, err
	}

	ar.ProviderPaymentID = providerID
	ar.ProviderStatus = providerStatus
	ar.ProviderPayload = providerResp

	approved := strings.EqualFold(providerStatus, "approved")
	if approved {
		method, ok := entities.ParsePaymentMethod(fmt.Sprint(req["payment_method_id"]))
		if !ok {
			method = entities.PaymentMethodPIX
		}
		ar.MarkReceived(u.now(), method)
	}

	saved, err := u.repo.Save(ctx, ar)
	if err != nil {
		return entities.AccountReceivable{}, err
	}
	u.log.WithFields(fields).WithFields(logrus.Fields{"provider_payment_id": providerID, "provider_status": providerStatus}).Info("[receivable][usecase] charge done")
	if !approved {
		return saved, ErrPaymentNotApproved
	}
	return saved, nil
}

func mockProviderResponse(req map[string]any, now time.Time) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	ts := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = ts
	resp["date_approved"] = ts
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

// List returns matching receivables ordered by due date. search matches, case
// insensitively, the description, id, amount, client name or project name.
func (u *AccountReceivableUseCase) List(ctx context.Context, filter entities.ReceivableFilter, search string) ([]entities.AccountReceivable, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidReceivable
	}
	list, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if search = strings.ToLower(strings.TrimSpace(search)); search != "" {
		projects, err := u.projects.List(ctx)
		if err != nil {
			return nil, err
		}
		clients, err := u.clients.List(ctx)
		if err != nil {
			return nil, err
		}
		projectNames := namesByID(projects, func(p entities.Project) string { return p.Name })
		clientNames := namesByID(clients, func(c entities.Client) string { return c.Name })

		matched := list[:0]
		for _, ar := range list {
			haystack := []string{
				ar.Description,
				ar.ID,
				strconv.FormatFloat(ar.Amount, 'f', -1, 64),
				clientNames[ar.ClientID],
				projectNames[ar.ProjectID],
			}
			for _, h := range haystack {
				if h != "" && strings.Contains(strings.ToLower(h), search) {
					matched = append(matched, ar)
					break
				}
			}
		}
		list = matched
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].DueDate.Before(list[j].DueDate) })
	return list, nil
}
