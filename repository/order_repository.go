package repository

import (
	"context"

	"github.com/Schnretzl/e-commerce-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository defines data-access operations for orders. Placement
// spans several writes, so the transaction handle is explicit: Transact
// opens it and the tx-scoped methods run inside it.
type OrderRepository interface {
	Transact(ctx context.Context, fn func(tx *gorm.DB) error) error
	LockProduct(ctx context.Context, tx *gorm.DB, productID uint) (*models.Product, error)
	CreateOrder(ctx context.Context, tx *gorm.DB, order *models.Order) error
	DecrementStock(ctx context.Context, tx *gorm.DB, productID uint, quantity int) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByCustomerID(ctx context.Context, customerID uint) ([]models.Order, error)
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// Transact runs fn inside one database transaction, committed exactly once
// on success and rolled back on any error or panic.
func (r *GormOrderRepository) Transact(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// LockProduct reads a product under a row-level FOR UPDATE lock so that
// concurrent placements cannot interleave stock checks and decrements.
func (r *GormOrderRepository) LockProduct(ctx context.Context, tx *gorm.DB, productID uint) (*models.Product, error) {
	var p models.Product
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, productID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateOrder inserts the order header together with its line items.
func (r *GormOrderRepository) CreateOrder(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

// DecrementStock subtracts quantity from the product's stock. The caller
// holds the row lock and has already verified sufficiency.
func (r *GormOrderRepository) DecrementStock(ctx context.Context, tx *gorm.DB, productID uint, quantity int) error {
	return tx.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity)).Error
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	if err := r.db.WithContext(ctx).
		Preload("OrderItems").
		First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("customer_id = ?", customerID).
		Order("id").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
