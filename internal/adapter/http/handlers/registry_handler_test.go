package handlers

import (
	"net/http"
	"testing"
	"time"

	"morais_erp/internal/adapter/http/handlers/mocks"
	"morais_erp/internal/domain/entities"
	"morais_erp/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func registryRoutes[T entities.Record[T]](h *RegistryHandler[T], path string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST(path, h.Create)
	r.GET(path, h.List)
	r.GET(path+"/:id", h.Get)
	r.PUT(path+"/:id", h.Update)
	return r
}

func TestRegistryHandler_Projects(t *testing.T) {
	t.Run("invalid start date", func(t *testing.T) {
		uc := mocks.NewMockIRegistryUseCase[entities.Project](gomock.NewController(t))
		r := registryRoutes(NewProjectHandler(uc), "/v1/projects")

		w := doJSON(r, http.MethodPost, "/v1/projects", `{"name":"Residencial Aurora","start_date":"2024/01/01"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		uc := mocks.NewMockIRegistryUseCase[entities.Project](gomock.NewController(t))
		r := registryRoutes(NewProjectHandler(uc), "/v1/projects")

		want := entities.Project{Name: "Residencial Aurora", Budget: 150000, StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
		uc.EXPECT().Create(gomock.Any(), want).Return(want.WithID("p1"), nil)

		w := doJSON(r, http.MethodPost, "/v1/projects", `{"name":"Residencial Aurora","budget":150000,"start_date":"2024-01-01"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if body := decodeBody(t, w); body["id"] != "p1" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := mocks.NewMockIRegistryUseCase[entities.Project](gomock.NewController(t))
		r := registryRoutes(NewProjectHandler(uc), "/v1/projects")
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Project{}, usecase.ErrInvalidProject)

		w := doJSON(r, http.MethodPost, "/v1/projects", `{"name":"Aurora","status":"Sei lá"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		uc := mocks.NewMockIRegistryUseCase[entities.Project](gomock.NewController(t))
		r := registryRoutes(NewProjectHandler(uc), "/v1/projects")
		uc.EXPECT().GetByID(gomock.Any(), "p404").Return(entities.Project{}, usecase.ErrProjectNotFound)

		w := doJSON(r, http.MethodGet, "/v1/projects/p404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRegistryHandler_Suppliers(t *testing.T) {
	t.Run("rating out of range", func(t *testing.T) {
		uc := mocks.NewMockIRegistryUseCase[entities.Supplier](gomock.NewController(t))
		r := registryRoutes(NewSupplierHandler(uc), "/v1/suppliers")

		w := doJSON(r, http.MethodPost, "/v1/suppliers", `{"name":"Casa do Construtor","rating":6}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		uc := mocks.NewMockIRegistryUseCase[entities.Supplier](gomock.NewController(t))
		r := registryRoutes(NewSupplierHandler(uc), "/v1/suppliers")
		uc.EXPECT().Update(gomock.Any(), "s1", entities.Supplier{Name: "Casa do Construtor", Rating: 4.5}).
			Return(entities.Supplier{ID: "s1", Name: "Casa do Construtor", Rating: 4.5}, nil)

		w := doJSON(r, http.MethodPut, "/v1/suppliers/s1", `{"name":"Casa do Construtor","rating":4.5}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		uc := mocks.NewMockIRegistryUseCase[entities.Supplier](gomock.NewController(t))
		r := registryRoutes(NewSupplierHandler(uc), "/v1/suppliers")
		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/suppliers", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestRegistryHandler_ClientsAndMaterials(t *testing.T) {
	t.Run("client missing name", func(t *testing.T) {
		uc := mocks.NewMockIRegistryUseCase[entities.Client](gomock.NewController(t))
		r := registryRoutes(NewClientHandler(uc), "/v1/clients")

		w := doJSON(r, http.MethodPost, "/v1/clients", `{"email":"obra@cliente.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client bad email", func(t *testing.T) {
		uc := mocks.NewMockIRegistryUseCase[entities.Client](gomock.NewController(t))
		r := registryRoutes(NewClientHandler(uc), "/v1/clients")
		uc.EXPECT().Create(gomock.Any(), entities.Client{Name: "Ana", Email: "nope"}).Return(entities.Client{}, usecase.ErrInvalidClient)

		w := doJSON(r, http.MethodPost, "/v1/clients", `{"name":"Ana","email":"nope"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("material create", func(t *testing.T) {
		uc := mocks.NewMockIRegistryUseCase[entities.Material](gomock.NewController(t))
		r := registryRoutes(NewMaterialHandler(uc), "/v1/materials")
		uc.EXPECT().Create(gomock.Any(), entities.Material{Name: "Areia média", Unit: "m³"}).
			Return(entities.Material{ID: "m1", Name: "Areia média", Unit: "m³", Category: "Agregados"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/materials", `{"name":"Areia média","unit":"m³"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["category"] != "Agregados" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}
