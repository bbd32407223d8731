package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodcart/internal/dto"
	apperrors "foodcart/internal/errors"

	"go.uber.org/zap"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, 5*time.Second, zap.NewNop())
	return client, server
}

func TestFetchMenu_Success(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/menu" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":7,"name":"Burger","price":150}]`))
	}))
	defer server.Close()

	items, err := client.FetchMenu(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != 7 || items[0].Name != "Burger" || items[0].Price != 150 {
		t.Errorf("unexpected items %+v", items)
	}
}

func TestFetchMenu_EmptyMenu_IsNotAnError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	items, err := client.FetchMenu(context.Background())
	if err != nil {
		t.Fatalf("empty menu must not error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", items)
	}
}

func TestFetchMenu_ServerError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := client.FetchMenu(context.Background())
	if _, ok := apperrors.IsTransientError(err); !ok {
		t.Errorf("expected transient error, got %v", err)
	}
}

func TestSubmitOrder_SendsHeadersAndBody(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody dto.OrderRequest

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Order created successfully!","order_id":42}`))
	}))
	defer server.Close()

	order := dto.OrderRequest{
		Name:        "Asha",
		PhoneNumber: "9876543210",
		Email:       "asha@example.com",
		Address:     "12 Lake Rd",
		City:        "Pune",
		State:       "MH",
		Items:       []dto.OrderItemBody{{MenuID: 7, Quantity: 2}},
	}

	resp, err := client.SubmitOrder(context.Background(), order, "tok123")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if resp.OrderID != 42 {
		t.Errorf("order id = %d, want 42", resp.OrderID)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if len(gotBody.Items) != 1 || gotBody.Items[0].MenuID != 7 || gotBody.Items[0].Quantity != 2 {
		t.Errorf("unexpected items %+v", gotBody.Items)
	}
	if gotBody.City != "Pune" {
		t.Errorf("city = %q", gotBody.City)
	}
}

func TestSubmitOrder_EmptyToken_StillSendsHeader(t *testing.T) {
	var gotAuth string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"order_id":1}`))
	}))
	defer server.Close()

	if _, err := client.SubmitOrder(context.Background(), dto.OrderRequest{}, ""); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if gotAuth != "Bearer " {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestSubmitOrder_NonOK_IsTransient(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := client.SubmitOrder(context.Background(), dto.OrderRequest{}, "expired")
	if _, ok := apperrors.IsTransientError(err); !ok {
		t.Errorf("expected transient error, got %v", err)
	}
}

func TestFetchOrder_Success(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/42" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"order_id":42,"status":"PLACED","total_price":300,"items":[{"name":"Burger","quantity":2,"price_per_item":150,"total_item_price":300}]}`))
	}))
	defer server.Close()

	detail, err := client.FetchOrder(context.Background(), 42, "tok")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if detail.OrderID != 42 || detail.Status != "PLACED" || detail.TotalPrice != 300 {
		t.Errorf("unexpected detail %+v", detail)
	}
	if len(detail.Items) != 1 || detail.Items[0].TotalItemPrice != 300 {
		t.Errorf("unexpected items %+v", detail.Items)
	}
}

func TestFetchOrder_NotFound(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := client.FetchOrder(context.Background(), 404, "tok")
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected not found error, got %v", err)
	}
}
