package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodcart/internal/dto"
	apperrors "foodcart/internal/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type mockOrderService struct {
	CreateOrderFunc    func(ctx context.Context, req dto.OrderRequest) (uint, error)
	GetOrderDetailFunc func(ctx context.Context, orderID uint) (*dto.OrderDetail, error)
}

func (m *mockOrderService) CreateOrder(ctx context.Context, req dto.OrderRequest) (uint, error) {
	return m.CreateOrderFunc(ctx, req)
}

func (m *mockOrderService) GetOrderDetail(ctx context.Context, orderID uint) (*dto.OrderDetail, error) {
	return m.GetOrderDetailFunc(ctx, orderID)
}

func newTestRouter(svc OrderService) http.Handler {
	ctrl := NewOrderController(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/orders", ctrl.HandleCreateOrder)
	r.Get("/orders/{orderID}", ctrl.HandleGetOrder)
	return r
}

const validBody = `{
	"name": "Asha",
	"phone_number": "9876543210",
	"email": "asha@example.com",
	"address": "12 Lake Rd",
	"city": "Pune",
	"state": "MH",
	"items": [{"menu_id": 7, "quantity": 2}]
}`

func TestHandleCreateOrder_Success(t *testing.T) {
	svc := &mockOrderService{
		CreateOrderFunc: func(ctx context.Context, req dto.OrderRequest) (uint, error) {
			if len(req.Items) != 1 || req.Items[0].MenuID != 7 {
				t.Errorf("unexpected request %+v", req)
			}
			return 42, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(validBody))
	req.Header.Set("Authorization", "Bearer tok123")
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp dto.OrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.OrderID != 42 {
		t.Errorf("order_id = %d, want 42", resp.OrderID)
	}
}

func TestHandleCreateOrder_MissingToken(t *testing.T) {
	svc := &mockOrderService{
		CreateOrderFunc: func(ctx context.Context, req dto.OrderRequest) (uint, error) {
			t.Fatalf("service must not be called without a token")
			return 0, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestHandleCreateOrder_InvalidJSON(t *testing.T) {
	svc := &mockOrderService{}

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{broken"))
	req.Header.Set("Authorization", "Bearer tok123")
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleCreateOrder_MissingFields(t *testing.T) {
	svc := &mockOrderService{}

	body := `{"name": "Asha", "items": [{"menu_id": 7, "quantity": 1}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer tok123")
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Error   string                       `json:"error"`
		Details []apperrors.ValidationDetail `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error != "VALIDATION_ERROR" {
		t.Errorf("error = %q", resp.Error)
	}
	if len(resp.Details) != 5 {
		t.Errorf("details = %d, want 5 missing fields", len(resp.Details))
	}
}

func TestHandleCreateOrder_EmptyItems(t *testing.T) {
	svc := &mockOrderService{}

	body := strings.Replace(validBody, `[{"menu_id": 7, "quantity": 2}]`, `[]`, 1)
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer tok123")
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleCreateOrder_UnknownMenuItem(t *testing.T) {
	svc := &mockOrderService{
		CreateOrderFunc: func(ctx context.Context, req dto.OrderRequest) (uint, error) {
			return 0, apperrors.NewNotFoundError("menu item 7 not found")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(validBody))
	req.Header.Set("Authorization", "Bearer tok123")
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleGetOrder_Success(t *testing.T) {
	svc := &mockOrderService{
		GetOrderDetailFunc: func(ctx context.Context, orderID uint) (*dto.OrderDetail, error) {
			return &dto.OrderDetail{OrderID: orderID, Status: "PLACED", Items: []dto.OrderDetailItem{}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/orders/42", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var detail dto.OrderDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if detail.OrderID != 42 {
		t.Errorf("order_id = %d, want 42", detail.OrderID)
	}
}

func TestHandleGetOrder_InvalidID(t *testing.T) {
	svc := &mockOrderService{}

	req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleGetOrder_NotFound(t *testing.T) {
	svc := &mockOrderService{
		GetOrderDetailFunc: func(ctx context.Context, orderID uint) (*dto.OrderDetail, error) {
			return nil, apperrors.NewNotFoundError("order with id 404 not found")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/orders/404", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
