package handlers

import (
	"encoding/json"
	"errors"
	request "morais_erp/internal/adapter/http/dto/request"
	response "morais_erp/internal/adapter/http/dto/response"
	"morais_erp/internal/domain/entities"
	"morais_erp/internal/usecase"
	"morais_erp/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type AccountReceivableHandler struct {
	usecase usecase.IAccountReceivableUseCase
}

func NewAccountReceivableHandler(uc usecase.IAccountReceivableUseCase) *AccountReceivableHandler {
	return &AccountReceivableHandler{usecase: uc}
}

// Create answers with every installment generated for the request.
func (h *AccountReceivableHandler) Create(c *gin.Context) {
	var payload request.CreateReceivableRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}
	list, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapReceivableError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromReceivables(list, clock()))
}

func (h *AccountReceivableHandler) Get(c *gin.Context) {
	ar, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapReceivableError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReceivable(ar, clock()))
}

func (h *AccountReceivableHandler) List(c *gin.Context) {
	status := entities.PaymentStatus(strings.TrimSpace(c.Query("status")))
	if status != "" && !status.Valid() {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		appErr.Details = map[string]string{"status": "unknown payment status"}
		writeError(c, appErr)
		return
	}
	filter := entities.ReceivableFilter{
		Status:    status,
		ProjectID: strings.TrimSpace(c.Query("project_id")),
		ClientID:  strings.TrimSpace(c.Query("client_id")),
	}
	list, err := h.usecase.List(c.Request.Context(), filter, c.Query("q"))
	if err != nil {
		writeError(c, mapReceivableError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReceivables(list, clock()))
}

func (h *AccountReceivableHandler) MarkAsReceived(c *gin.Context) {
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
	ar, err := h.usecase.MarkAsReceived(c.Request.Context(), c.Param("id"), paidAt, payload.PaymentMethod)
	if err != nil {
		writeError(c, mapReceivableError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReceivable(ar, clock()))
}

// Charge sends the Mercado Pago payment for a receivable. The body is the
// provider payload, optionally wrapped in {"mp_payload": {...}}. A payment the
// provider left pending is answered with 202 and the stored receivable.
func (h *AccountReceivableHandler) Charge(c *gin.Context) {
	payload, err := readMPPayload(c)
	if err != nil {
		writeError(c, pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest))
		return
	}
	ar, err := h.usecase.Charge(c.Request.Context(), c.Param("id"), payload)
	if errors.Is(err, usecase.ErrPaymentNotApproved) {
		c.JSON(http.StatusAccepted, response.FromReceivable(ar, clock()))
		return
	}
	if err != nil {
		writeError(c, mapReceivableError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReceivable(ar, clock()))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapReceivableError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReceivableID), errors.Is(err, usecase.ErrInvalidReceivable),
		errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, usecase.ErrInvalidMPPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrReceivableNotFound):
		return pkg.NewDomainErrorSimple("RECEIVABLE_NOT_FOUND", "Account receivable not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReceivableNotOpen):
		return pkg.NewDomainErrorSimple("RECEIVABLE_NOT_OPEN", "Account receivable is already settled or cancelled", http.StatusConflict)
	default:
		return internalError(err)
	}
}
