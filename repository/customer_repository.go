package repository

import (
	"context"

	"github.com/Schnretzl/e-commerce-api/models"

	"gorm.io/gorm"
)

// CustomerRepository defines data-access operations for customers. A
// customer and its account are always created, and deleted, together.
type CustomerRepository interface {
	CreateWithAccount(ctx context.Context, customer *models.Customer, account *models.CustomerAccount) error
	FindByID(ctx context.Context, id uint) (*models.Customer, error)
	FindAll(ctx context.Context) ([]models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id uint) error
}

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository.
func NewGormCustomerRepository(db *gorm.DB) CustomerRepository {
	return &GormCustomerRepository{db: db}
}

// CreateWithAccount inserts the customer and its account in one
// transaction; neither row is visible unless both inserts succeed.
func (r *GormCustomerRepository) CreateWithAccount(ctx context.Context, customer *models.Customer, account *models.CustomerAccount) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(customer).Error; err != nil {
			return err
		}
		account.CustomerID = customer.ID
		return tx.Create(account).Error
	})
}

func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *GormCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// Delete removes the customer and cascades to its account inside one
// transaction. Returns gorm.ErrRecordNotFound when the id is unknown.
func (r *GormCustomerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Customer
		if err := tx.First(&c, id).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.CustomerAccount{}).Error; err != nil {
			return err
		}
		return tx.Delete(&c).Error
	})
}
