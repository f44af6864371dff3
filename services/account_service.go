package services

import (
	"context"
	"errors"

	"github.com/Schnretzl/e-commerce-api/models"
	"github.com/Schnretzl/e-commerce-api/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccountService defines business logic for customer accounts.
type AccountService interface {
	Create(ctx context.Context, req *models.CreateAccountRequest) (*models.AccountResponse, *ServiceError)
	Get(ctx context.Context, id uint) (*models.AccountResponse, *ServiceError)
	List(ctx context.Context) ([]models.AccountResponse, *ServiceError)
	Update(ctx context.Context, id uint, req *models.UpdateAccountRequest) *ServiceError
}

type accountServiceImpl struct {
	repo         repository.AccountRepository
	customerRepo repository.CustomerRepository
	logger       *zap.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo repository.AccountRepository, customerRepo repository.CustomerRepository, logger *zap.Logger) AccountService {
	return &accountServiceImpl{repo: repo, customerRepo: customerRepo, logger: logger}
}

// Create adds an account for an existing customer, hashing the password.
func (s *accountServiceImpl) Create(ctx context.Context, req *models.CreateAccountRequest) (*models.AccountResponse, *ServiceError) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Customer not found!"}
		}
		s.logger.Error("Failed to fetch customer", zap.Uint("customer_id", req.CustomerID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create customer account"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create customer account"}
	}

	account := &models.CustomerAccount{
		CustomerID: req.CustomerID,
		Username:   req.Username,
		Password:   string(hashed),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ServiceError{StatusCode: 409, Message: "Username already exists!"}
		}
		s.logger.Error("Failed to create account", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create customer account"}
	}

	s.logger.Info("Customer account created", zap.Uint("account_id", account.ID))
	resp := models.NewAccountResponse(account)
	return &resp, nil
}

func (s *accountServiceImpl) Get(ctx context.Context, id uint) (*models.AccountResponse, *ServiceError) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Customer account not found!"}
		}
		s.logger.Error("Failed to fetch account", zap.Uint("account_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch customer account"}
	}
	resp := models.NewAccountResponse(account)
	return &resp, nil
}

func (s *accountServiceImpl) List(ctx context.Context) ([]models.AccountResponse, *ServiceError) {
	accounts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch accounts", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch customer accounts"}
	}
	resp := make([]models.AccountResponse, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, models.NewAccountResponse(&accounts[i]))
	}
	return resp, nil
}

func (s *accountServiceImpl) Update(ctx context.Context, id uint, req *models.UpdateAccountRequest) *ServiceError {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Customer account not found!"}
		}
		s.logger.Error("Failed to fetch account", zap.Uint("account_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to update customer account"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to update customer account"}
	}

	account.Username = req.Username
	account.Password = string(hashed)

	if err := s.repo.Update(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &ServiceError{StatusCode: 409, Message: "Username already exists!"}
		}
		s.logger.Error("Failed to update account", zap.Uint("account_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to update customer account"}
	}
	return nil
}
