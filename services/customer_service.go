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

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// CustomerService defines business logic for customers and their coupled
// accounts.
type CustomerService interface {
	Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, *ServiceError)
	Get(ctx context.Context, id uint) (*models.CustomerResponse, *ServiceError)
	List(ctx context.Context) ([]models.CustomerResponse, *ServiceError)
	Update(ctx context.Context, id uint, req *models.UpdateCustomerRequest) *ServiceError
	Delete(ctx context.Context, id uint) *ServiceError
}

type customerServiceImpl struct {
	repo   repository.CustomerRepository
	logger *zap.Logger
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repository.CustomerRepository, logger *zap.Logger) CustomerService {
	return &customerServiceImpl{repo: repo, logger: logger}
}

// Create persists a customer and its account together. The account password
// is bcrypt-hashed before it reaches the repository.
func (s *customerServiceImpl) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, *ServiceError) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create customer"}
	}

	customer := &models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	account := &models.CustomerAccount{
		Username: req.Username,
		Password: string(hashed),
	}

	if err := s.repo.CreateWithAccount(ctx, customer, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ServiceError{StatusCode: 409, Message: "Email or username already exists!"}
		}
		s.logger.Error("Failed to create customer", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create customer"}
	}

	s.logger.Info("Customer created", zap.Uint("customer_id", customer.ID))
	return customer, nil
}

func (s *customerServiceImpl) Get(ctx context.Context, id uint) (*models.CustomerResponse, *ServiceError) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Customer not found!"}
		}
		s.logger.Error("Failed to fetch customer", zap.Uint("customer_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch customer"}
	}
	resp := models.NewCustomerResponse(customer)
	return &resp, nil
}

func (s *customerServiceImpl) List(ctx context.Context) ([]models.CustomerResponse, *ServiceError) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch customers", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch customers"}
	}
	resp := make([]models.CustomerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, models.NewCustomerResponse(&customers[i]))
	}
	return resp, nil
}

func (s *customerServiceImpl) Update(ctx context.Context, id uint, req *models.UpdateCustomerRequest) *ServiceError {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Customer not found!"}
		}
		s.logger.Error("Failed to fetch customer", zap.Uint("customer_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to update customer"}
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Address = req.Address

	if err := s.repo.Update(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &ServiceError{StatusCode: 409, Message: "Email already exists!"}
		}
		s.logger.Error("Failed to update customer", zap.Uint("customer_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to update customer"}
	}
	return nil
}

// Delete removes the customer and its account. A customer with order
// history cannot be deleted.
func (s *customerServiceImpl) Delete(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Customer not found!"}
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return &ServiceError{StatusCode: 409, Message: "Customer has existing orders!"}
		}
		s.logger.Error("Failed to delete customer", zap.Uint("customer_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete customer"}
	}
	s.logger.Info("Customer deleted", zap.Uint("customer_id", id))
	return nil
}
