package usecase

import (
	"context"
	"errors"
	"testing"

	"morais_erp/internal/domain/entities"
	mock_interfaces "morais_erp/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRegistryUseCase_Create(t *testing.T) {
	t.Run("project defaults and generated id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRegistryRepository[entities.Project](ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Project) (entities.Project, error) {
			return p, nil
		})

		got, err := uc.Create(context.Background(), entities.Project{ID: "ignored", Name: "  Residencial Aurora ", Budget: 150000})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID == "" || got.ID == "ignored" {
			t.Fatalf("expected generated id, got %q", got.ID)
		}
		if got.Name != "Residencial Aurora" || got.Status != entities.ProjectStatusPlanning {
			t.Fatalf("unexpected project: %+v", got)
		}
	})

	t.Run("invalid records", func(t *testing.T) {
		if _, err := NewProjectUseCase(nil).Create(context.Background(), entities.Project{Name: "x", Budget: -1}); !errors.Is(err, ErrInvalidProject) {
			t.Fatalf("expected ErrInvalidProject, got %v", err)
		}
		if _, err := NewProjectUseCase(nil).Create(context.Background(), entities.Project{Name: "x", Status: "Paused"}); !errors.Is(err, ErrInvalidProject) {
			t.Fatalf("expected ErrInvalidProject, got %v", err)
		}
		if _, err := NewSupplierUseCase(nil).Create(context.Background(), entities.Supplier{Name: "Casa do Construtor", Email: "not-an-email"}); !errors.Is(err, ErrInvalidSupplier) {
			t.Fatalf("expected ErrInvalidSupplier, got %v", err)
		}
		if _, err := NewSupplierUseCase(nil).Create(context.Background(), entities.Supplier{Name: "Casa do Construtor", Rating: 6}); !errors.Is(err, ErrInvalidSupplier) {
			t.Fatalf("expected ErrInvalidSupplier, got %v", err)
		}
		if _, err := NewClientUseCase(nil).Create(context.Background(), entities.Client{Name: " "}); !errors.Is(err, ErrInvalidClient) {
			t.Fatalf("expected ErrInvalidClient, got %v", err)
		}
		if _, err := NewMaterialUseCase(nil).Create(context.Background(), entities.Material{}); !errors.Is(err, ErrInvalidMaterial) {
			t.Fatalf("expected ErrInvalidMaterial, got %v", err)
		}
	})

	t.Run("material falls back to default classification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRegistryRepository[entities.Material](ctrl)
		uc := NewMaterialUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m entities.Material) (entities.Material, error) {
			return m, nil
		})

		got, err := uc.Create(context.Background(), entities.Material{Name: "Vergalhão 10mm"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Unit != "un" || got.Category != "Outros" {
			t.Fatalf("unexpected material: %+v", got)
		}
	})
}

func TestRegistryUseCase_UpdateAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRegistryRepository[entities.Client](ctrl)
	uc := NewClientUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1", Name: "Old"}, nil)
	repo.EXPECT().Save(gomock.Any(), entities.Client{ID: "c1", Name: "Construtora Lima", Email: "contato@lima.com"}).
		DoAndReturn(func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil })

	got, err := uc.Update(context.Background(), "c1", entities.Client{ID: "other", Name: "Construtora Lima", Email: " contato@lima.com "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != "c1" {
		t.Fatalf("expected id to be kept, got %q", got.ID)
	}

	repo.EXPECT().GetByID(gomock.Any(), "c9").Return(entities.Client{}, nil)
	if _, err := uc.Update(context.Background(), "c9", entities.Client{Name: "x"}); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}

	if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidRecordID) {
		t.Fatalf("expected ErrInvalidRecordID, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "c2").Return(entities.Client{}, errors.New("db"))
	if _, err := uc.GetByID(context.Background(), "c2"); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestRegistryUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRegistryRepository[entities.Supplier](ctrl)
	uc := NewSupplierUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Supplier{{ID: "s2", Name: "leroy"}, {ID: "s1", Name: "Casa do Construtor"}}, nil)

	got, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got[0].ID != "s1" || got[1].ID != "s2" {
		t.Fatalf("expected name order, got %+v", got)
	}
}

func TestValidEmail(t *testing.T) {
	cases := map[string]bool{
		"":                        true,
		"compras@morais.com.br":   true,
		"not-an-email":            false,
		"Ana <ana@morais.com.br>": false,
		"ana@":                    false,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			if got := validEmail(in); got != want {
				t.Fatalf("validEmail(%q) = %v, want %v", in, got, want)
			}
		})
	}
}
