package repository

import (
	"context"

	"github.com/Schnretzl/e-commerce-api/models"

	"gorm.io/gorm"
)

// AccountRepository defines data-access operations for customer accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *models.CustomerAccount) error
	FindByID(ctx context.Context, id uint) (*models.CustomerAccount, error)
	FindAll(ctx context.Context) ([]models.CustomerAccount, error)
	Update(ctx context.Context, account *models.CustomerAccount) error
}

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository.
func NewGormAccountRepository(db *gorm.DB) AccountRepository {
	return &GormAccountRepository{db: db}
}

func (r *GormAccountRepository) Create(ctx context.Context, account *models.CustomerAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *GormAccountRepository) FindByID(ctx context.Context, id uint) (*models.CustomerAccount, error) {
	var a models.CustomerAccount
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAccountRepository) FindAll(ctx context.Context) ([]models.CustomerAccount, error) {
	var accounts []models.CustomerAccount
	if err := r.db.WithContext(ctx).Order("id").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *GormAccountRepository) Update(ctx context.Context, account *models.CustomerAccount) error {
	return r.db.WithContext(ctx).Save(account).Error
}
