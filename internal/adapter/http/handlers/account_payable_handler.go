package handlers

import (
	"bytes"
	"errors"
	request "morais_erp/internal/adapter/http/dto/request"
	response "morais_erp/internal/adapter/http/dto/response"
	"morais_erp/internal/domain/entities"
	"morais_erp/internal/usecase"
	"morais_erp/internal/usecase/interfaces"
	"morais_erp/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AccountPayableHandler struct {
	usecase usecase.IAccountPayableUseCase
}

func NewAccountPayableHandler(uc usecase.IAccountPayableUseCase) *AccountPayableHandler {
	return &AccountPayableHandler{usecase: uc}
}

func (h *AccountPayableHandler) Create(c *gin.Context) {
	var payload request.CreatePayableRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}
	ap, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapPayableError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPayable(ap, clock()))
}

// GenerateForOrder builds the payable of an approved requisition. It is the
// retry path when generation failed during approval.
func (h *AccountPayableHandler) GenerateForOrder(c *gin.Context) {
	ap, err := h.usecase.GenerateForOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPayableError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPayable(ap, clock()))
}

func (h *AccountPayableHandler) Get(c *gin.Context) {
	ap, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPayableError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayable(ap, clock()))
}

func (h *AccountPayableHandler) List(c *gin.Context) {
	filter, ok := payableFilter(c)
	if !ok {
		return
	}
	list, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapPayableError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayables(list, clock()))
}

func (h *AccountPayableHandler) Stats(c *gin.Context) {
	filter, ok := payableFilter(c)
	if !ok {
		return
	}
	stats, err := h.usecase.Stats(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapPayableError(err))
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AccountPayableHandler) Export(c *gin.Context) {
	filter, ok := payableFilter(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.usecase.Export(c.Request.Context(), &buf, filter); err != nil {
		writeError(c, mapPayableError(err))
		return
	}
	filename := "contas-a-pagar-" + clock().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *AccountPayableHandler) MarkAsPaid(c *gin.Context) {
	var payload request.SettleRequest
	if !bindJSON(c, &payload) {
		return
	}
	paidAt, err := payload.ResolvePaymentDate()
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}
	if paidAt.IsZero() {
		paidAt = clock()
	}
	ap, err := h.usecase.MarkAsPaid(c.Request.Context(), c.Param("id"), paidAt, payload.PaymentMethod)
	if err != nil {
		writeError(c, mapPayableError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayable(ap, clock()))
}

func (h *AccountPayableHandler) Cancel(c *gin.Context) {
	ap, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPayableError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayable(ap, clock()))
}

func payableFilter(c *gin.Context) (entities.PayableFilter, bool) {
	status := entities.PaymentStatus(strings.TrimSpace(c.Query("status")))
	if status != "" && !status.Valid() {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		appErr.Details = map[string]string{"status": "unknown payment status"}
		writeError(c, appErr)
		return entities.PayableFilter{}, false
	}
	return entities.PayableFilter{
		Status:     status,
		ProjectID:  strings.TrimSpace(c.Query("project_id")),
		SupplierID: strings.TrimSpace(c.Query("supplier_id")),
	}, true
}

func mapPayableError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPayableID), errors.Is(err, usecase.ErrInvalidPayable),
		errors.Is(err, usecase.ErrInvalidCategory), errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPayableNotFound):
		return pkg.NewDomainErrorSimple("PAYABLE_NOT_FOUND", "Account payable not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Material order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPayableNotOpen):
		return pkg.NewDomainErrorSimple("PAYABLE_NOT_OPEN", "Account payable is already settled or cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrPayableAlreadyExists):
		return pkg.NewDomainErrorSimple("PAYABLE_ALREADY_EXISTS", "Account payable already generated for this order", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotApproved):
		return pkg.NewDomainErrorSimple("ORDER_NOT_APPROVED", "Material order is not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoSelectedQuote):
		return pkg.NewDomainErrorSimple("NO_SELECTED_QUOTE", "Material order has no selected quote", http.StatusConflict)
	case errors.Is(err, interfaces.ErrLockNotObtained):
		return pkg.NewDomainError("ORDER_LOCKED", "Order is being changed by another request, try again", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrExporterUnavailable):
		return pkg.NewDomainErrorSimple("EXPORT_UNAVAILABLE", "Spreadsheet export is not configured", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
