package handlers

import (
	"errors"
	request "morais_erp/internal/adapter/http/dto/request"
	response "morais_erp/internal/adapter/http/dto/response"
	"morais_erp/internal/domain/entities"
	"morais_erp/internal/infrastructure/logging"
	"morais_erp/internal/usecase"
	"morais_erp/internal/usecase/interfaces"
	"morais_erp/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MaterialOrderHandler handles HTTP requests for material requisitions and their quotes.

type MaterialOrderHandler struct {
	usecase usecase.IMaterialOrderUseCase
}

func NewMaterialOrderHandler(uc usecase.IMaterialOrderUseCase) *MaterialOrderHandler {
	return &MaterialOrderHandler{usecase: uc}
}

func (h *MaterialOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateMaterialOrderRequest
	if !bindJSON(c, &payload) {
		return
	}
	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMaterialOrder(order))
}

func (h *MaterialOrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialOrders(orders))
}

func (h *MaterialOrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialOrder(order))
}

func (h *MaterialOrderHandler) AddItem(c *gin.Context) {
	var payload request.MaterialItemRequest
	if !bindJSON(c, &payload) {
		return
	}
	order, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialOrder(order))
}

func (h *MaterialOrderHandler) AddQuote(c *gin.Context) {
	var payload request.AddQuoteRequest
	if !bindJSON(c, &payload) {
		return
	}
	order, err := h.usecase.AddQuote(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMaterialOrder(order))
}

func (h *MaterialOrderHandler) SelectQuote(c *gin.Context) {
	order, err := h.usecase.SelectQuote(c.Request.Context(), c.Param("id"), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialOrder(order))
}

func (h *MaterialOrderHandler) UpdateQuoteDetails(c *gin.Context) {
	var payload request.QuoteDetailsRequest
	if !bindJSON(c, &payload) {
		return
	}
	order, err := h.usecase.UpdateQuoteDetails(c.Request.Context(), c.Param("id"), c.Param("quote_id"), payload.ToInput())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialOrder(order))
}

func (h *MaterialOrderHandler) ApprovalStatus(c *gin.Context) {
	check, err := h.usecase.ApprovalStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, check)
}

// Approve answers 200 once the requisition is approved. When the payable could
// not be generated the body carries a warning and no payable; generation can be
// retried through the payables API.
func (h *MaterialOrderHandler) Approve(c *gin.Context) {
	orderID := c.Param("id")
	out, err := h.usecase.Approve(c.Request.Context(), orderID)
	if err != nil && !errors.Is(err, usecase.ErrPayableGeneration) {
		writeError(c, mapOrderError(err))
		return
	}

	res := response.ApprovalResponse{Order: response.FromMaterialOrder(out.Order)}
	if out.Payable != nil {
		p := response.FromPayable(*out.Payable, clock())
		res.Payable = &p
	}
	if err != nil {
		logging.GetLogger().WithFields(logrus.Fields{"order_id": orderID}).WithError(err).Warn("[order][handler] approved without payable")
		res.Warning = "Order approved but the account payable could not be generated; retry with POST /v1/orders/" + out.Order.ID + "/payable"
	}
	c.JSON(http.StatusOK, res)
}

func (h *MaterialOrderHandler) Reject(c *gin.Context) {
	order, err := h.usecase.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialOrder(order))
}

func blockerConflict(code, message string, blocker entities.ApprovalBlocker) *pkg.AppError {
	appErr := pkg.NewDomainErrorSimple(code, message, http.StatusConflict)
	appErr.Details = map[string]string{"blocker": string(blocker)}
	return appErr
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidSupplierID),
		errors.Is(err, usecase.ErrOrderWithoutItems), errors.Is(err, usecase.ErrInvalidItem),
		errors.Is(err, usecase.ErrInvalidQuote), errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Material order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderClosed):
		return blockerConflict("ORDER_CLOSED", "Material order is closed", entities.ApprovalBlockerClosed)
	case errors.Is(err, usecase.ErrNotEnoughQuotes):
		return blockerConflict("ORDER_NOT_APPROVABLE", "At least 3 quotes are required", entities.ApprovalBlockerNotEnoughQuotes)
	case errors.Is(err, usecase.ErrPaymentMethodMissing):
		return blockerConflict("ORDER_NOT_APPROVABLE", "Selected quote has no payment method", entities.ApprovalBlockerNoPayment)
	case errors.Is(err, usecase.ErrQuotesFrozen):
		return pkg.NewDomainErrorSimple("QUOTES_FROZEN", "Quotes cannot change after approval", http.StatusConflict)
	case errors.Is(err, interfaces.ErrLockNotObtained):
		return pkg.NewDomainError("ORDER_LOCKED", "Order is being changed by another request, try again", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderIDUnavailable):
		return pkg.NewDomainError("ORDER_ID_UNAVAILABLE", "Could not allocate a requisition id, try again", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
