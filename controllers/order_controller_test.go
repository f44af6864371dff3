package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Schnretzl/e-commerce-api/controllers"
	"github.com/Schnretzl/e-commerce-api/models"
	"github.com/Schnretzl/e-commerce-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mock OrderService ---

type mockOrderService struct {
	placeFn   func(ctx context.Context, req *models.PlaceOrderRequest) (*models.Order, *services.ServiceError)
	getFn     func(ctx context.Context, id uint) (*models.OrderResponse, *services.ServiceError)
	listFn    func(ctx context.Context) ([]models.OrderResponse, *services.ServiceError)
	historyFn func(ctx context.Context, customerID uint) ([]models.OrderResponse, *services.ServiceError)
}

func (m *mockOrderService) PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.Order, *services.ServiceError) {
	return m.placeFn(ctx, req)
}
func (m *mockOrderService) GetOrder(ctx context.Context, id uint) (*models.OrderResponse, *services.ServiceError) {
	return m.getFn(ctx, id)
}
func (m *mockOrderService) ListOrders(ctx context.Context) ([]models.OrderResponse, *services.ServiceError) {
	return m.listFn(ctx)
}
func (m *mockOrderService) GetCustomerOrderHistory(ctx context.Context, customerID uint) ([]models.OrderResponse, *services.ServiceError) {
	return m.historyFn(ctx, customerID)
}

func setupOrderRouter(svc services.OrderService) *gin.Engine {
	r := gin.New()
	oc := controllers.NewOrderController(svc)
	r.POST("/orders", oc.PlaceOrder)
	r.GET("/orders", oc.ListOrders)
	r.GET("/orders/:id", oc.GetOrder)
	return r
}

// --- Tests ---

func TestPlaceOrderEndpoint_Success(t *testing.T) {
	svc := &mockOrderService{
		placeFn: func(_ context.Context, req *models.PlaceOrderRequest) (*models.Order, *services.ServiceError) {
			assert.Equal(t, uint(1), req.CustomerID)
			assert.Len(t, req.OrderItems, 1)
			return &models.Order{ID: 1, CustomerID: 1, TotalPrice: 30.0}, nil
		},
	}
	r := setupOrderRouter(svc)

	body := map[string]interface{}{
		"customer_id": 1,
		"order_date":  "2024-01-01",
		"order_items": []map[string]interface{}{{"product_id": 1, "quantity": 3}},
	}
	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(b))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Order placed successfully!", resp["message"])
}

func TestPlaceOrderEndpoint_EmptyItemsRejected(t *testing.T) {
	svc := &mockOrderService{
		placeFn: func(_ context.Context, _ *models.PlaceOrderRequest) (*models.Order, *services.ServiceError) {
			t.Fatal("service must not be called for an invalid body")
			return nil, nil
		},
	}
	r := setupOrderRouter(svc)

	body := map[string]interface{}{
		"customer_id": 1,
		"order_date":  "2024-01-01",
		"order_items": []map[string]interface{}{},
	}
	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(b))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderEndpoint_WorkflowFailureIs500WithDetail(t *testing.T) {
	svc := &mockOrderService{
		placeFn: func(_ context.Context, _ *models.PlaceOrderRequest) (*models.Order, *services.ServiceError) {
			return nil, &services.ServiceError{StatusCode: 500, Message: "connection reset"}
		},
	}
	r := setupOrderRouter(svc)

	body := map[string]interface{}{
		"customer_id": 1,
		"order_date":  "2024-01-01",
		"order_items": []map[string]interface{}{{"product_id": 1, "quantity": 3}},
	}
	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(b))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "connection reset", resp["error"])
}

func TestGetOrderEndpoint_NotFound(t *testing.T) {
	svc := &mockOrderService{
		getFn: func(_ context.Context, _ uint) (*models.OrderResponse, *services.ServiceError) {
			return nil, &services.ServiceError{StatusCode: 404, Message: "Order not found!"}
		},
	}
	r := setupOrderRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Order not found!", resp["message"])
}

func TestGetOrderEndpoint_CompositeRecord(t *testing.T) {
	svc := &mockOrderService{
		getFn: func(_ context.Context, id uint) (*models.OrderResponse, *services.ServiceError) {
			return &models.OrderResponse{
				ID:                   id,
				CustomerID:           1,
				OrderDate:            "2024-01-01",
				ExpectedDeliveryDate: "2024-01-06",
				TotalPrice:           30.0,
				OrderItems:           []models.OrderItemResponse{{ProductID: 1, Quantity: 3, Price: 10.0}},
			}, nil
		},
	}
	r := setupOrderRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.OrderResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, "2024-01-06", resp.ExpectedDeliveryDate)
	assert.Len(t, resp.OrderItems, 1)
}

func TestGetOrderEndpoint_InvalidID(t *testing.T) {
	svc := &mockOrderService{
		getFn: func(_ context.Context, _ uint) (*models.OrderResponse, *services.ServiceError) {
			t.Fatal("service must not be called for an invalid id")
			return nil, nil
		},
	}
	r := setupOrderRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrdersEndpoint_Success(t *testing.T) {
	svc := &mockOrderService{
		listFn: func(_ context.Context) ([]models.OrderResponse, *services.ServiceError) {
			return []models.OrderResponse{
				{ID: 1, CustomerID: 1, TotalPrice: 30.0},
				{ID: 2, CustomerID: 2, TotalPrice: 5.0},
			}, nil
		},
	}
	r := setupOrderRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.OrderResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
