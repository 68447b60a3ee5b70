package routes

import (
	"morais_erp/internal/adapter/http/handlers"
	"morais_erp/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders      = "/orders"
	PathPayables    = "/payables"
	PathReceivables = "/receivables"
	PathProjects    = "/projects"
	PathSuppliers   = "/suppliers"
	PathClients     = "/clients"
	PathMaterials   = "/materials"
	PathReports     = "/reports"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.MaterialOrderHandler, payableHandler *handlers.AccountPayableHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.POST("/:id/items", orderHandler.AddItem)
		orders.POST("/:id/quotes", orderHandler.AddQuote)
		orders.PATCH("/:id/quotes/:quote_id", orderHandler.UpdateQuoteDetails)
		orders.POST("/:id/quotes/:quote_id/select", orderHandler.SelectQuote)
		orders.GET("/:id/approval", orderHandler.ApprovalStatus)
		orders.POST("/:id/approve", orderHandler.Approve)
		orders.POST("/:id/reject", orderHandler.Reject)
		// Retry path when approval succeeded but the payable could not be stored.
		orders.POST("/:id/payable", payableHandler.GenerateForOrder)
	}
}

func addFinanceRoutes(rg *gin.RouterGroup, payableHandler *handlers.AccountPayableHandler, receivableHandler *handlers.AccountReceivableHandler) {
	payables := rg.Group(PathPayables)
	{
		payables.POST("", payableHandler.Create)
		payables.GET("", payableHandler.List)
		payables.GET("/stats", payableHandler.Stats)
		payables.GET("/export", payableHandler.Export)
		payables.GET("/:id", payableHandler.Get)
		payables.POST("/:id/pay", payableHandler.MarkAsPaid)
		payables.POST("/:id/cancel", payableHandler.Cancel)
	}

	receivables := rg.Group(PathReceivables)
	{
		receivables.POST("", receivableHandler.Create)
		receivables.GET("", receivableHandler.List)
		receivables.GET("/:id", receivableHandler.Get)
		receivables.POST("/:id/receive", receivableHandler.MarkAsReceived)
		receivables.POST("/:id/charge", receivableHandler.Charge)
	}
}

type registryHandlers struct {
	projects  *handlers.RegistryHandler[entities.Project]
	suppliers *handlers.RegistryHandler[entities.Supplier]
	clients   *handlers.RegistryHandler[entities.Client]
	materials *handlers.RegistryHandler[entities.Material]
}

func addRegistryRoutes(rg *gin.RouterGroup, h registryHandlers) {
	addRegistry(rg.Group(PathProjects), h.projects)
	addRegistry(rg.Group(PathSuppliers), h.suppliers)
	addRegistry(rg.Group(PathClients), h.clients)
	addRegistry(rg.Group(PathMaterials), h.materials)
}

func addRegistry[T entities.Record[T]](g *gin.RouterGroup, h *handlers.RegistryHandler[T]) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	rg.GET("/dashboard", reportHandler.Dashboard)
	rg.GET(PathProjects+"/:id/summary", reportHandler.ProjectSummary)
	rg.GET(PathProjects+"/:id/insights", reportHandler.ProjectInsights)

	reports := rg.Group(PathReports)
	{
		reports.GET("/financial", reportHandler.FinancialReport)
		reports.GET("/cash-flow", reportHandler.CashFlow)
	}
}
