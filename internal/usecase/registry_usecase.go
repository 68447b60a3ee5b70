package usecase

import (
	"context"
	"errors"
	"morais_erp/internal/domain/entities"
	"morais_erp/internal/infrastructure/logging"
	"morais_erp/internal/usecase/interfaces"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidRecordID  = errors.New("invalid id")
	ErrProjectNotFound  = errors.New("project not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrMaterialNotFound = errors.New("material not found")
	ErrInvalidProject   = errors.New("invalid project")
	ErrInvalidSupplier  = errors.New("invalid supplier")
	ErrInvalidClient    = errors.New("invalid client")
	ErrInvalidMaterial  = errors.New("invalid material")
)

// IRegistryUseCase is the CRUD surface shared by the registries (projects,
// suppliers, clients and the material catalog). Records are never deleted.
type IRegistryUseCase[T entities.Record[T]] interface {
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id string, rec T) (T, error)
	GetByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
}

type RegistryUseCase[T entities.Record[T]] struct {
	repo      interfaces.IRegistryRepository[T]
	kind      string
	normalize func(T) (T, error)
	name      func(T) string
	notFound  error

	log *logrus.Logger
}

var _ IRegistryUseCase[entities.Project] = (*RegistryUseCase[entities.Project])(nil)

func NewProjectUseCase(repo interfaces.IRegistryRepository[entities.Project]) *RegistryUseCase[entities.Project] {
	return newRegistryUseCase(repo, "project", normalizeProject, func(p entities.Project) string { return p.Name }, ErrProjectNotFound)
}

func NewSupplierUseCase(repo interfaces.IRegistryRepository[entities.Supplier]) *RegistryUseCase[entities.Supplier] {
	return newRegistryUseCase(repo, "supplier", normalizeSupplier, func(s entities.Supplier) string { return s.Name }, ErrSupplierNotFound)
}

func NewClientUseCase(repo interfaces.IRegistryRepository[entities.Client]) *RegistryUseCase[entities.Client] {
	return newRegistryUseCase(repo, "client", normalizeClient, func(c entities.Client) string { return c.Name }, ErrClientNotFound)
}

func NewMaterialUseCase(repo interfaces.IRegistryRepository[entities.Material]) *RegistryUseCase[entities.Material] {
	return newRegistryUseCase(repo, "material", normalizeMaterial, func(m entities.Material) string { return m.Name }, ErrMaterialNotFound)
}

func newRegistryUseCase[T entities.Record[T]](
	repo interfaces.IRegistryRepository[T],
	kind string,
	normalize func(T) (T, error),
	name func(T) string,
	notFound error,
) *RegistryUseCase[T] {
	return &RegistryUseCase[T]{
		repo:      repo,
		kind:      kind,
		normalize: normalize,
		name:      name,
		notFound:  notFound,
		log:       logging.GetLogger(),
	}
}

// Create stores a new record under a generated id; any id on rec is ignored.
func (u *RegistryUseCase[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	rec, err := u.normalize(rec.WithID(uuid.NewString()))
	if err != nil {
		return zero, err
	}
	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		return zero, err
	}
	u.log.WithFields(logrus.Fields{"kind": u.kind, "id": created.RecordID()}).Info("[registry][usecase] created")
	return created, nil
}

// Update replaces the stored record id with rec.
func (u *RegistryUseCase[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	var zero T
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	rec, err = u.normalize(rec.WithID(current.RecordID()))
	if err != nil {
		return zero, err
	}
	saved, err := u.repo.Save(ctx, rec)
	if err != nil {
		return zero, err
	}
	u.log.WithFields(logrus.Fields{"kind": u.kind, "id": saved.RecordID()}).Info("[registry][usecase] updated")
	return saved, nil
}

func (u *RegistryUseCase[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, ErrInvalidRecordID
	}
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if rec.RecordID() == "" {
		return zero, u.notFound
	}
	return rec, nil
}

// List returns every record ordered by name.
func (u *RegistryUseCase[T]) List(ctx context.Context) ([]T, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(u.name(list[i])) < strings.ToLower(u.name(list[j]))
	})
	return list, nil
}

func normalizeProject(p entities.Project) (entities.Project, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.ClientID = strings.TrimSpace(p.ClientID)
	if p.Status == "" {
		p.Status = entities.ProjectStatusPlanning
	}
	if p.Name == "" || p.Budget < 0 || !p.Status.Valid() {
		return entities.Project{}, ErrInvalidProject
	}
	if !p.StartDate.IsZero() {
		p.StartDate = entities.DateOnly(p.StartDate)
	}
	return p, nil
}

func normalizeSupplier(s entities.Supplier) (entities.Supplier, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Category = strings.TrimSpace(s.Category)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Document = strings.TrimSpace(s.Document)
	s.ContactPerson = strings.TrimSpace(s.ContactPerson)
	s.Website = strings.TrimSpace(s.Website)
	if s.Name == "" || s.Rating < 0 || s.Rating > 5 || !validEmail(s.Email) {
		return entities.Supplier{}, ErrInvalidSupplier
	}
	return s, nil
}

func normalizeClient(c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Document = strings.TrimSpace(c.Document)
	if c.Name == "" || !validEmail(c.Email) {
		return entities.Client{}, ErrInvalidClient
	}
	return c, nil
}

func normalizeMaterial(m entities.Material) (entities.Material, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Category = strings.TrimSpace(m.Category)
	m.Unit = strings.TrimSpace(m.Unit)
	m.Description = strings.TrimSpace(m.Description)
	if m.Name == "" || m.MinStock < 0 {
		return entities.Material{}, ErrInvalidMaterial
	}
	if m.Unit == "" {
		m.Unit = entities.FallbackClassification.Unit
	}
	if m.Category == "" {
		m.Category = entities.FallbackClassification.Category
	}
	return m, nil
}

var validate = validator.New()

// validEmail accepts an empty address. Display-name forms such as
// "Ana <ana@x.com>" are refused.
func validEmail(s string) bool {
	return validate.Var(s, "omitempty,email") == nil
}
