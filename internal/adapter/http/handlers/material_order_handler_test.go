package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"morais_erp/internal/adapter/http/handlers/mocks"
	"morais_erp/internal/domain/entities"
	"morais_erp/internal/usecase"
	"morais_erp/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIMaterialOrderUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIMaterialOrderUseCase(ctrl)
	h := NewMaterialOrderHandler(uc)

	r := gin.New()
	r.POST("/v1/orders", h.CreateOrder)
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.POST("/v1/orders/:id/quotes", h.AddQuote)
	r.POST("/v1/orders/:id/quotes/:quote_id/select", h.SelectQuote)
	r.PATCH("/v1/orders/:id/quotes/:quote_id", h.UpdateQuoteDetails)
	r.GET("/v1/orders/:id/approval", h.ApprovalStatus)
	r.POST("/v1/orders/:id/approve", h.Approve)
	r.POST("/v1/orders/:id/reject", h.Reject)
	return r, uc
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestMaterialOrderHandler_CreateOrder(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/orders", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing items", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/orders", `{"project_id":"p1","items":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		details, _ := decodeBody(t, w)["details"].(map[string]any)
		if _, ok := details["Items"]; !ok {
			t.Fatalf("expected Items detail, got %v", details)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/orders", `{"project_id":"p1","items":[{"name":"Cimento","quantity":0}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("id allocation exhausted", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.MaterialOrder{}, usecase.ErrOrderIDUnavailable)

		w := doJSON(r, http.MethodPost, "/v1/orders", `{"project_id":"p1","items":[{"name":"Cimento","quantity":10}]}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		want := usecase.CreateOrderInput{
			ProjectID: "p1",
			Items:     []usecase.NewMaterialItem{{Name: "Cimento", Quantity: 10}},
		}
		uc.EXPECT().CreateOrder(gomock.Any(), want).Return(entities.MaterialOrder{
			ID:          "REQ-4821",
			ProjectID:   "p1",
			Status:      entities.OrderStatusPendingQuotes,
			RequestDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Items:       []entities.MaterialItem{{ID: "i1", Name: "Cimento", Quantity: 10, Unit: "saco", Category: "Cimento"}},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/orders", `{"project_id":"p1","items":[{"name":"Cimento","quantity":10}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if body := decodeBody(t, w); body["id"] != "REQ-4821" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestMaterialOrderHandler_GetAndList(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "REQ-0001").Return(entities.MaterialOrder{}, usecase.ErrOrderNotFound)

		w := doJSON(r, http.MethodGet, "/v1/orders/REQ-0001", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := decodeBody(t, w)["code"]; code != "ORDER_NOT_FOUND" {
			t.Fatalf("unexpected code %v", code)
		}
	})

	t.Run("list by project", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().List(gomock.Any(), "p1").Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/orders?project_id=p1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().List(gomock.Any(), "").Return(nil, fmt.Errorf("dynamodb down"))

		w := doJSON(r, http.MethodGet, "/v1/orders", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMaterialOrderHandler_Quotes(t *testing.T) {
	t.Run("add quote after approval", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().AddQuote(gomock.Any(), "REQ-1", gomock.Any()).Return(entities.MaterialOrder{}, usecase.ErrOrderClosed)

		w := doJSON(r, http.MethodPost, "/v1/orders/REQ-1/quotes", `{"supplier_id":"s1","total_price":100}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("add quote negative freight", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/orders/REQ-1/quotes", `{"supplier_id":"s1","freight_cost":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("add quote with item prices", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		want := usecase.NewQuoteInput{
			SupplierID:    "s1",
			FreightCost:   25,
			PaymentMethod: "PIX",
			ItemPrices:    []entities.ItemQuoteEntry{{ItemID: "i1", UnitPrice: 36.5}},
		}
		uc.EXPECT().AddQuote(gomock.Any(), "REQ-1", want).Return(entities.MaterialOrder{ID: "REQ-1"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/orders/REQ-1/quotes", `{"supplier_id":"s1","freight_cost":25,"payment_method":"PIX","item_prices":[{"item_id":"i1","unit_price":36.5}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("select quote", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().SelectQuote(gomock.Any(), "REQ-1", "q2").Return(entities.MaterialOrder{ID: "REQ-1"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/orders/REQ-1/quotes/q2/select", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("select unknown quote", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().SelectQuote(gomock.Any(), "REQ-1", "nope").Return(entities.MaterialOrder{}, usecase.ErrQuoteNotFound)

		w := doJSON(r, http.MethodPost, "/v1/orders/REQ-1/quotes/nope/select", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update frozen quote", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().UpdateQuoteDetails(gomock.Any(), "REQ-1", "q1", gomock.Any()).Return(entities.MaterialOrder{}, usecase.ErrQuotesFrozen)

		w := doJSON(r, http.MethodPatch, "/v1/orders/REQ-1/quotes/q1", `{"payment_method":"Boleto"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := decodeBody(t, w)["code"]; code != "QUOTES_FROZEN" {
			t.Fatalf("unexpected code %v", code)
		}
	})

	t.Run("order locked by another request", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().SelectQuote(gomock.Any(), "REQ-1", "q1").Return(entities.MaterialOrder{}, interfaces.ErrLockNotObtained)

		w := doJSON(r, http.MethodPost, "/v1/orders/REQ-1/quotes/q1/select", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := decodeBody(t, w)["code"]; code != "ORDER_LOCKED" {
			t.Fatalf("unexpected code %v", code)
		}
	})
}

func TestMaterialOrderHandler_Approval(t *testing.T) {
	due := time.Date(2024, 2, 17, 0, 0, 0, 0, time.UTC)
	approved := entities.MaterialOrder{ID: "REQ-1", ProjectID: "p1", Status: entities.OrderStatusApproved}

	t.Run("approval status", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().ApprovalStatus(gomock.Any(), "REQ-1").Return(entities.ApprovalCheck{QuoteCount: 2, Blocker: entities.ApprovalBlockerNotEnoughQuotes}, nil)

		w := doJSON(r, http.MethodGet, "/v1/orders/REQ-1/approval", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["can_approve"] != false || body["blocker"] != "NOT_ENOUGH_QUOTES" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("blocked by quote count", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "REQ-1").Return(usecase.ApprovalOutcome{}, usecase.ErrNotEnoughQuotes)

		w := doJSON(r, http.MethodPost, "/v1/orders/REQ-1/approve", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		details, _ := decodeBody(t, w)["details"].(map[string]any)
		if details["blocker"] != "NOT_ENOUGH_QUOTES" {
			t.Fatalf("unexpected details %v", details)
		}
	})

	t.Run("blocked by payment method", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "REQ-1").Return(usecase.ApprovalOutcome{}, usecase.ErrPaymentMethodMissing)

		w := doJSON(r, http.MethodPost, "/v1/orders/REQ-1/approve", "")
		details, _ := decodeBody(t, w)["details"].(map[string]any)
		if w.Code != http.StatusConflict || details["blocker"] != "PAYMENT_METHOD_MISSING" {
			t.Fatalf("unexpected response %d %v", w.Code, details)
		}
	})

	t.Run("approved with payable", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		ap := entities.AccountPayable{ID: "AP-1", OrderID: "REQ-1", Amount: 390, DueDate: due, Status: entities.PaymentStatusPending}
		uc.EXPECT().Approve(gomock.Any(), "REQ-1").Return(usecase.ApprovalOutcome{Order: approved, Payable: &ap}, nil)

		w := doJSON(r, http.MethodPost, "/v1/orders/REQ-1/approve", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		payable, _ := body["payable"].(map[string]any)
		if payable["id"] != "AP-1" || payable["due_date"] != "2024-02-17" {
			t.Fatalf("unexpected payable %v", body["payable"])
		}
		if _, ok := body["warning"]; ok {
			t.Fatalf("unexpected warning in %v", body)
		}
	})

	t.Run("approved but payable failed", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "REQ-1").Return(usecase.ApprovalOutcome{Order: approved}, fmt.Errorf("%w: boom", usecase.ErrPayableGeneration))

		w := doJSON(r, http.MethodPost, "/v1/orders/REQ-1/approve", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["warning"] == nil || body["payable"] != nil {
			t.Fatalf("expected warning without payable, got %v", body)
		}
	})

	t.Run("reject closed order", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().Reject(gomock.Any(), "REQ-1").Return(entities.MaterialOrder{}, usecase.ErrOrderClosed)

		w := doJSON(r, http.MethodPost, "/v1/orders/REQ-1/reject", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
