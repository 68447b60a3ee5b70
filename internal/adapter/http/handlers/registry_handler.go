package handlers

import (
	"errors"
	request "morais_erp/internal/adapter/http/dto/request"
	"morais_erp/internal/domain/entities"
	"morais_erp/internal/usecase"
	"morais_erp/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegistryHandler serves the CRUD routes of one master data registry. bind
// decodes the request body into a record and reports whether the handler may
// proceed; it answers the request itself on failure.
type RegistryHandler[T entities.Record[T]] struct {
	usecase usecase.IRegistryUseCase[T]
	bind    func(c *gin.Context) (T, bool)
}

func NewProjectHandler(uc usecase.IRegistryUseCase[entities.Project]) *RegistryHandler[entities.Project] {
	return &RegistryHandler[entities.Project]{usecase: uc, bind: func(c *gin.Context) (entities.Project, bool) {
		var payload request.ProjectRequest
		if !bindJSON(c, &payload) {
			return entities.Project{}, false
		}
		p, err := payload.ToEntity()
		if err != nil {
			writeError(c, errInvalidDate)
			return entities.Project{}, false
		}
		return p, true
	}}
}

func NewSupplierHandler(uc usecase.IRegistryUseCase[entities.Supplier]) *RegistryHandler[entities.Supplier] {
	return &RegistryHandler[entities.Supplier]{usecase: uc, bind: func(c *gin.Context) (entities.Supplier, bool) {
		var payload request.SupplierRequest
		if !bindJSON(c, &payload) {
			return entities.Supplier{}, false
		}
		return payload.ToEntity(), true
	}}
}

func NewClientHandler(uc usecase.IRegistryUseCase[entities.Client]) *RegistryHandler[entities.Client] {
	return &RegistryHandler[entities.Client]{usecase: uc, bind: func(c *gin.Context) (entities.Client, bool) {
		var payload request.ClientRequest
		if !bindJSON(c, &payload) {
			return entities.Client{}, false
		}
		return payload.ToEntity(), true
	}}
}

func NewMaterialHandler(uc usecase.IRegistryUseCase[entities.Material]) *RegistryHandler[entities.Material] {
	return &RegistryHandler[entities.Material]{usecase: uc, bind: func(c *gin.Context) (entities.Material, bool) {
		var payload request.MaterialRequest
		if !bindJSON(c, &payload) {
			return entities.Material{}, false
		}
		return payload.ToEntity(), true
	}}
}

func (h *RegistryHandler[T]) Create(c *gin.Context) {
	rec, ok := h.bind(c)
	if !ok {
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), rec)
	if err != nil {
		writeError(c, mapRegistryError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *RegistryHandler[T]) Update(c *gin.Context) {
	rec, ok := h.bind(c)
	if !ok {
		return
	}
	saved, err := h.usecase.Update(c.Request.Context(), c.Param("id"), rec)
	if err != nil {
		writeError(c, mapRegistryError(err))
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *RegistryHandler[T]) Get(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapRegistryError(err))
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *RegistryHandler[T]) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapRegistryError(err))
		return
	}
	if list == nil {
		list = []T{}
	}
	c.JSON(http.StatusOK, list)
}

func mapRegistryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordID), errors.Is(err, usecase.ErrInvalidProject),
		errors.Is(err, usecase.ErrInvalidSupplier), errors.Is(err, usecase.ErrInvalidClient),
		errors.Is(err, usecase.ErrInvalidMaterial):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSupplierNotFound):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_FOUND", "Supplier not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
