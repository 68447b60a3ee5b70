package handlers

import (
	"errors"
	response "morais_erp/internal/adapter/http/dto/response"
	"morais_erp/internal/domain/finance"
	"morais_erp/internal/usecase"
	"morais_erp/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *ReportHandler) ProjectSummary(c *gin.Context) {
	s, err := h.usecase.ProjectSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *ReportHandler) ProjectInsights(c *gin.Context) {
	projectID := c.Param("id")
	insights, err := h.usecase.ProjectInsights(c.Request.Context(), projectID)
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	if insights == nil {
		insights = []string{}
	}
	c.JSON(http.StatusOK, response.InsightsResponse{ProjectID: projectID, Insights: insights})
}

func (h *ReportHandler) FinancialReport(c *gin.Context) {
	r, err := h.usecase.FinancialReport(c.Request.Context())
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, r)
}

// CashFlow reads ?period=month|quarter|year; month is the default.
func (h *ReportHandler) CashFlow(c *gin.Context) {
	period := finance.Period(strings.ToLower(strings.TrimSpace(c.Query("period"))))
	r, err := h.usecase.CashFlow(c.Request.Context(), period)
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, r)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod), errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
