package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Schnretzl/e-commerce-api/models"
	"github.com/Schnretzl/e-commerce-api/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Orders are promised within a fixed five calendar days of the order date.
const deliveryOffsetDays = 5

// ProductNotFoundError is returned when a requested line item references an
// unknown product. The whole placement rolls back.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// InsufficientStockError is returned when a line item requests more units
// than the product has in stock. The whole placement rolls back.
type InsufficientStockError struct {
	ProductID uint
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// OrderService defines the order workflow: transactional placement and
// composite reads.
type OrderService interface {
	PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.Order, *ServiceError)
	GetOrder(ctx context.Context, id uint) (*models.OrderResponse, *ServiceError)
	ListOrders(ctx context.Context) ([]models.OrderResponse, *ServiceError)
	GetCustomerOrderHistory(ctx context.Context, customerID uint) ([]models.OrderResponse, *ServiceError)
}

type orderServiceImpl struct {
	repo   repository.OrderRepository
	logger *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repository.OrderRepository, logger *zap.Logger) OrderService {
	return &orderServiceImpl{repo: repo, logger: logger}
}

// PlaceOrder creates an order header and its line items as one atomic unit.
// Each referenced product is read once under a row lock: its price is
// snapshotted onto the line item and its stock decremented by the requested
// quantity. Any failure rolls back the entire order.
func (s *orderServiceImpl) PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.Order, *ServiceError) {
	orderDate, err := time.Parse(time.DateOnly, req.OrderDate)
	if err != nil {
		return nil, &ServiceError{StatusCode: 400, Message: "order_date must be in YYYY-MM-DD format"}
	}

	order := &models.Order{
		CustomerID:           req.CustomerID,
		OrderDate:            orderDate,
		ExpectedDeliveryDate: orderDate.AddDate(0, 0, deliveryOffsetDays),
	}

	txErr := s.repo.Transact(ctx, func(tx *gorm.DB) error {
		var totalPrice float64
		items := make([]models.OrderItem, 0, len(req.OrderItems))

		// A product may appear on several line items; sufficiency is
		// checked against the combined quantity, not each item alone.
		demand := make(map[uint]int, len(req.OrderItems))

		for _, item := range req.OrderItems {
			product, err := s.repo.LockProduct(ctx, tx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductNotFoundError{ProductID: item.ProductID}
				}
				return err
			}
			demand[item.ProductID] += item.Quantity
			if product.Stock < demand[item.ProductID] {
				return &InsufficientStockError{
					ProductID: product.ID,
					Requested: demand[item.ProductID],
					Available: product.Stock,
				}
			}

			totalPrice += product.Price * float64(item.Quantity)
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
		}

		order.TotalPrice = totalPrice
		order.OrderItems = items
		if err := s.repo.CreateOrder(ctx, tx, order); err != nil {
			return err
		}

		for _, item := range req.OrderItems {
			if err := s.repo.DecrementStock(ctx, tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})

	if txErr != nil {
		var notFound *ProductNotFoundError
		if errors.As(txErr, &notFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found!"}
		}
		var insufficient *InsufficientStockError
		if errors.As(txErr, &insufficient) {
			return nil, &ServiceError{StatusCode: 400, Message: insufficient.Error()}
		}
		// Product ids were verified under lock, so a foreign-key
		// violation on the insert can only be the customer reference.
		if errors.Is(txErr, gorm.ErrForeignKeyViolated) {
			return nil, &ServiceError{StatusCode: 404, Message: "Customer not found!"}
		}
		s.logger.Error("Order placement failed", zap.Error(txErr))
		return nil, &ServiceError{StatusCode: 500, Message: txErr.Error()}
	}

	s.logger.Info("Order placed",
		zap.Uint("order_id", order.ID),
		zap.Uint("customer_id", order.CustomerID),
		zap.Float64("total_price", order.TotalPrice),
		zap.Int("items", len(order.OrderItems)),
	)
	return order, nil
}

// GetOrder returns the order header merged with its line items.
func (s *orderServiceImpl) GetOrder(ctx context.Context, id uint) (*models.OrderResponse, *ServiceError) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found!"}
		}
		s.logger.Error("Failed to fetch order", zap.Uint("order_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch order"}
	}
	resp := models.NewOrderResponse(order, true)
	return &resp, nil
}

// ListOrders returns all order headers, without line items.
func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]models.OrderResponse, *ServiceError) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}
	resp := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, models.NewOrderResponse(&orders[i], false))
	}
	return resp, nil
}

// GetCustomerOrderHistory returns every order of a customer as a composite
// record. A customer with no orders is reported as not found, not as an
// empty list.
func (s *orderServiceImpl) GetCustomerOrderHistory(ctx context.Context, customerID uint) ([]models.OrderResponse, *ServiceError) {
	orders, err := s.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("Failed to fetch order history", zap.Uint("customer_id", customerID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}
	if len(orders) == 0 {
		return nil, &ServiceError{StatusCode: 404, Message: "No orders found!"}
	}
	resp := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, models.NewOrderResponse(&orders[i], true))
	}
	return resp, nil
}
