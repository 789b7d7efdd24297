package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gocatalog/catalog-api/internal/models"
	"github.com/gocatalog/catalog-api/internal/repository"
	"github.com/gocatalog/catalog-api/internal/service"
	"github.com/gocatalog/catalog-api/internal/utils"
)

// MockProductStore is a mock implementation of service.ProductStore.
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) Create(p *models.Product) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockProductStore) GetByID(id int) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductStore) Update(p *models.Product) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockProductStore) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductStore) List(f repository.ListFilter) ([]models.Product, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductStore) Like(id int) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func newService(store service.ProductStore) *service.ProductService {
	return service.NewProductService(store, nil, models.StatusAvailable)
}

func validRequest() *service.ProductRequest {
	return &service.ProductRequest{
		Name:        "Banana",
		ImgURL:      "http://test/banana",
		Description: "A banana",
		Price:       floatPtr(0.5),
		Rating:      floatPtr(4.2),
		Category:    "fruit",
		Status:      "DISABLED",
		Likes:       intPtr(0),
	}
}

func TestProductService_Create(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	mockStore.On("Create", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Product).ID = 1
	}).Return(nil).Once()

	product, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	assert.Equal(t, "Banana", product.Name)
	assert.Equal(t, models.StatusDisabled, product.Status)
	assert.Equal(t, 0, product.Likes)
	mockStore.AssertExpectations(t)
}

func TestProductService_CreateMissingPrice(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	req := validRequest()
	req.Price = nil

	product, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.IsType(t, &models.ValidationError{}, err)
	// Validation fails before any store call.
	mockStore.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_CreateMissingName(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	req := validRequest()
	req.Name = ""

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	mockStore.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_CreateInvalidStatus(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	req := validRequest()
	req.Status = "GONE"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.IsType(t, &models.ValidationError{}, err)
}

func TestProductService_CreateAppliesDefaultStatus(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	req := validRequest()
	req.Status = ""
	req.Likes = nil

	mockStore.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, product.Status)
	assert.Equal(t, 0, product.Likes)
	mockStore.AssertExpectations(t)
}

func TestProductService_CreateStoreFailure(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	storeErr := &utils.PersistenceError{Op: "create product", Err: errors.New("connection refused")}
	mockStore.On("Create", mock.AnythingOfType("*models.Product")).Return(storeErr).Once()

	_, err := svc.Create(context.Background(), validRequest())
	require.Error(t, err)
	var perr *utils.PersistenceError
	assert.ErrorAs(t, err, &perr)
	mockStore.AssertExpectations(t)
}

func TestProductService_Get(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	expected := &models.Product{ID: 1, Name: "Banana", Price: 0.5, Status: models.StatusAvailable}
	mockStore.On("GetByID", 1).Return(expected, nil).Once()

	product, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, expected, product)
	mockStore.AssertExpectations(t)
}

func TestProductService_GetAbsent(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	// Absence is a normal result, not an error.
	mockStore.On("GetByID", 99).Return(nil, nil).Once()

	product, err := svc.Get(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, product)
	mockStore.AssertExpectations(t)
}

func TestProductService_Update(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	mockStore.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	req := validRequest()
	req.Category = "unknown"

	product, err := svc.Update(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	assert.Equal(t, "unknown", product.Category)
	mockStore.AssertExpectations(t)
}

func TestProductService_UpdateNotFound(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	mockStore.On("Update", mock.AnythingOfType("*models.Product")).Return(utils.ErrNotFound).Once()

	_, err := svc.Update(context.Background(), 42, validRequest())
	assert.ErrorIs(t, err, utils.ErrNotFound)
	mockStore.AssertExpectations(t)
}

func TestProductService_UpdateInvalidCategory(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	req := validRequest()
	req.Category = "unknownunknownunknownunknownunknownunknownunknownunknownunknownunknownunknownunknownunknownunknownunknownunknownunknownunknown"

	_, err := svc.Update(context.Background(), 1, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most 120")
	mockStore.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProductService_Delete(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	mockStore.On("Delete", 1).Return(nil).Once()
	assert.NoError(t, svc.Delete(context.Background(), 1))
	mockStore.AssertExpectations(t)
}

func TestProductService_List(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	category := "fruit"
	expected := []models.Product{{ID: 1, Name: "Banana", Category: "fruit"}}
	mockStore.On("List", mock.MatchedBy(func(f repository.ListFilter) bool {
		return f.Category != nil && *f.Category == category
	})).Return(expected, nil).Once()

	products, err := svc.List(context.Background(), repository.ListFilter{Category: &category})
	require.NoError(t, err)
	assert.Equal(t, expected, products)
	mockStore.AssertExpectations(t)
}

func TestProductService_Like(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	liked := &models.Product{ID: 1, Name: "Banana", Likes: 1}
	mockStore.On("Like", 1).Return(liked, nil).Once()

	product, err := svc.Like(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, product.Likes)
	mockStore.AssertExpectations(t)
}

func TestProductService_LikeAbsent(t *testing.T) {
	mockStore := new(MockProductStore)
	svc := newService(mockStore)

	mockStore.On("Like", 99).Return(nil, nil).Once()

	product, err := svc.Like(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, product)
	mockStore.AssertExpectations(t)
}
