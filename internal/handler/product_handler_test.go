package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"villavet/internal/model"
	"villavet/internal/service"
)

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, category string, limit int) ([]model.Product, error) {
	args := m.Called(ctx, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, input service.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id uuid.UUID, input service.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProductHandler_Create(t *testing.T) {
	mockService := new(MockProductService)
	h := NewProductHandler(mockService)

	created := &model.Product{
		ID:        uuid.New(),
		Name:      "Royal Canin Adult",
		Category:  "alimento",
		Price:     decimal.RequireFromString("45.50"),
		Stock:     10,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(in service.ProductInput) bool {
		return in.Name == "Royal Canin Adult" &&
			in.Category == "alimento" &&
			in.Price.Equal(decimal.RequireFromString("45.50")) &&
			in.Stock == 10
	})).Return(created, nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/products",
		`{"name":"Royal Canin Adult","category":"alimento","price":"45.50","stock":"10"}`)

	err := h.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 45.5, got["price"])
	assert.Equal(t, float64(10), got["stock"])
	mockService.AssertExpectations(t)
}

// Price and stock may arrive as bare JSON numbers instead of strings.
func TestProductHandler_Create_NumericPayload(t *testing.T) {
	mockService := new(MockProductService)
	h := NewProductHandler(mockService)

	created := &model.Product{
		ID:       uuid.New(),
		Name:     "Royal Canin Adult",
		Category: "alimento",
		Price:    decimal.RequireFromString("45.5"),
		Stock:    10,
	}
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(in service.ProductInput) bool {
		return in.Price.Equal(decimal.RequireFromString("45.5")) && in.Stock == 10
	})).Return(created, nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/products",
		`{"name":"Royal Canin Adult","category":"alimento","price":45.5,"stock":10}`)

	err := h.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	mockService.AssertExpectations(t)
}

func TestProductHandler_Create_MixedStringAndNumber(t *testing.T) {
	mockService := new(MockProductService)
	h := NewProductHandler(mockService)

	created := &model.Product{ID: uuid.New(), Name: "Pelota", Category: "juguete", Price: decimal.NewFromInt(5), Stock: 3}
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(in service.ProductInput) bool {
		return in.Price.Equal(decimal.NewFromInt(5)) && in.Stock == 3
	})).Return(created, nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/products",
		`{"name":"Pelota","category":"juguete","price":"5.00","stock":3}`)

	err := h.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	mockService.AssertExpectations(t)
}

func TestProductHandler_Create_FractionalStock(t *testing.T) {
	mockService := new(MockProductService)
	h := NewProductHandler(mockService)

	c, _ := newTestContext(t, http.MethodPost, "/api/products",
		`{"name":"Pelota","category":"juguete","price":"5.00","stock":3.5}`)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductHandler_Create_NonNumericPrice(t *testing.T) {
	mockService := new(MockProductService)
	h := NewProductHandler(mockService)

	c, _ := newTestContext(t, http.MethodPost, "/api/products",
		`{"name":"Collar","category":"accesorio","price":"cheap","stock":"5"}`)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductHandler_Create_MissingFields(t *testing.T) {
	mockService := new(MockProductService)
	h := NewProductHandler(mockService)

	c, _ := newTestContext(t, http.MethodPost, "/api/products", `{"name":"Collar"}`)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductHandler_Get_InvalidID(t *testing.T) {
	mockService := new(MockProductService)
	h := NewProductHandler(mockService)

	c, _ := newTestContext(t, http.MethodGet, "/api/products/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	mockService.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestProductHandler_List(t *testing.T) {
	mockService := new(MockProductService)
	h := NewProductHandler(mockService)

	mockService.On("List", mock.Anything, "alimento", 4).Return([]model.Product{
		{Name: "Royal Canin Adult", Category: "alimento"},
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/products?category=alimento&limit=4", "")

	err := h.List(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestProductHandler_Delete(t *testing.T) {
	mockService := new(MockProductService)
	h := NewProductHandler(mockService)

	id := uuid.New()
	mockService.On("Delete", mock.Anything, id).Return(nil)

	c, rec := newTestContext(t, http.MethodDelete, "/api/products/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := h.Delete(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	mockService.AssertExpectations(t)
}
