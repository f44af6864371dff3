package services_test

import (
	"context"
	"testing"

	"github.com/Schnretzl/e-commerce-api/models"
	"github.com/Schnretzl/e-commerce-api/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ---- mock product repository ----

type mockProductRepo struct {
	created *models.Product

	findByIDProduct *models.Product
	findByIDErr     error
	updateErr       error
	deleteErr       error
}

func (m *mockProductRepo) Create(_ context.Context, p *models.Product) error {
	p.ID = 1
	m.created = p
	return nil
}

func (m *mockProductRepo) FindByID(_ context.Context, _ uint) (*models.Product, error) {
	return m.findByIDProduct, m.findByIDErr
}

func (m *mockProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	return nil, nil
}

func (m *mockProductRepo) Update(_ context.Context, _ *models.Product) error {
	return m.updateErr
}

func (m *mockProductRepo) Delete(_ context.Context, _ uint) error {
	return m.deleteErr
}

func newTestProductService(repo *mockProductRepo) services.ProductService {
	logger, _ := zap.NewDevelopment()
	return services.NewProductService(repo, logger)
}

// ---- tests ----

func TestProductCreate_PersistsPriceAndStock(t *testing.T) {
	repo := &mockProductRepo{}
	svc := newTestProductService(repo)

	price := 9.99
	stock := 20
	resp, svcErr := svc.Create(context.Background(), &models.ProductRequest{
		Name:  "Widget",
		Price: &price,
		Stock: &stock,
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, 9.99, repo.created.Price)
	assert.Equal(t, 20, repo.created.Stock)
}

func TestProductUpdate_AppliesAllFields(t *testing.T) {
	existing := &models.Product{ID: 1, Name: "Old", Price: 1.0, Stock: 5}
	repo := &mockProductRepo{findByIDProduct: existing}
	svc := newTestProductService(repo)

	price := 2.5
	stock := 7
	svcErr := svc.Update(context.Background(), 1, &models.ProductRequest{
		Name:  "New",
		Price: &price,
		Stock: &stock,
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, "New", existing.Name)
	assert.Equal(t, 2.5, existing.Price)
	assert.Equal(t, 7, existing.Stock)
}

func TestProductDelete_ReferencedByOrdersIsConflict(t *testing.T) {
	repo := &mockProductRepo{deleteErr: gorm.ErrForeignKeyViolated}
	svc := newTestProductService(repo)

	svcErr := svc.Delete(context.Background(), 1)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.StatusCode)
	assert.Equal(t, "Product is referenced by existing orders!", svcErr.Message)
}

func TestProductDelete_NotFound(t *testing.T) {
	repo := &mockProductRepo{deleteErr: gorm.ErrRecordNotFound}
	svc := newTestProductService(repo)

	svcErr := svc.Delete(context.Background(), 99)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
