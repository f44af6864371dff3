package services

import (
	"context"
	"errors"

	"github.com/Schnretzl/e-commerce-api/models"
	"github.com/Schnretzl/e-commerce-api/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductService defines business logic for products.
type ProductService interface {
	Create(ctx context.Context, req *models.ProductRequest) (*models.ProductResponse, *ServiceError)
	Get(ctx context.Context, id uint) (*models.ProductResponse, *ServiceError)
	List(ctx context.Context) ([]models.ProductResponse, *ServiceError)
	Update(ctx context.Context, id uint, req *models.ProductRequest) *ServiceError
	Delete(ctx context.Context, id uint) *ServiceError
}

type productServiceImpl struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(repo repository.ProductRepository, logger *zap.Logger) ProductService {
	return &productServiceImpl{repo: repo, logger: logger}
}

func (s *productServiceImpl) Create(ctx context.Context, req *models.ProductRequest) (*models.ProductResponse, *ServiceError) {
	product := &models.Product{
		Name:  req.Name,
		Price: *req.Price,
		Stock: *req.Stock,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create product"}
	}
	s.logger.Info("Product created", zap.Uint("product_id", product.ID), zap.String("name", product.Name))
	resp := models.NewProductResponse(product)
	return &resp, nil
}

func (s *productServiceImpl) Get(ctx context.Context, id uint) (*models.ProductResponse, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found!"}
		}
		s.logger.Error("Failed to fetch product", zap.Uint("product_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch product"}
	}
	resp := models.NewProductResponse(product)
	return &resp, nil
}

func (s *productServiceImpl) List(ctx context.Context) ([]models.ProductResponse, *ServiceError) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch products", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch products"}
	}
	resp := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, models.NewProductResponse(&products[i]))
	}
	return resp, nil
}

func (s *productServiceImpl) Update(ctx context.Context, id uint, req *models.ProductRequest) *ServiceError {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Product not found!"}
		}
		s.logger.Error("Failed to fetch product", zap.Uint("product_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to update product"}
	}

	product.Name = req.Name
	product.Price = *req.Price
	product.Stock = *req.Stock

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", zap.Uint("product_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to update product"}
	}
	return nil
}

// Delete removes a product. A product referenced by order items cannot
// be deleted.
func (s *productServiceImpl) Delete(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Product not found!"}
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return &ServiceError{StatusCode: 409, Message: "Product is referenced by existing orders!"}
		}
		s.logger.Error("Failed to delete product", zap.Uint("product_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete product"}
	}
	s.logger.Info("Product deleted", zap.Uint("product_id", id))
	return nil
}
