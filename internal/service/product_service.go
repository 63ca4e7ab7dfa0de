package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"villavet/internal/cache"
	"villavet/internal/errors"
	"villavet/internal/model"
	"villavet/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// ProductInput carries the already-parsed, typed fields of a create or
// update request. Handlers coerce raw payloads into this before calling the
// service.
type ProductInput struct {
	Name        string
	Category    string
	Price       decimal.Decimal
	Stock       int
	Description *string
	ImageURL    *string
}

// Validate checks the field-level invariants.
func (in *ProductInput) Validate() error {
	if in.Name == "" || in.Category == "" {
		return errors.ErrMissingFields
	}
	if in.Price.IsNegative() {
		return errors.ErrInvalidPrice
	}
	if in.Stock < 0 {
		return errors.ErrInvalidStock
	}
	return nil
}

// ProductService handles catalog operations.
type ProductService interface {
	List(ctx context.Context, category string, limit int) ([]model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Create(ctx context.Context, input ProductInput) (*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, input ProductInput) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo  repository.ProductRepository
	cache *cache.Client
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, cache *cache.Client) ProductService {
	return &productService{
		repo:  repo,
		cache: cache,
	}
}

func (s *productService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id.String())
}

// List returns products most recently created first, optionally filtered by
// category and truncated to limit.
func (s *productService) List(ctx context.Context, category string, limit int) ([]model.Product, error) {
	return s.repo.List(ctx, repository.ProductFilter{Category: category, Limit: limit})
}

// Get retrieves a product by ID with caching.
func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, productCacheTTL)
	}

	return product, nil
}

// Create validates the input and stores a new product.
func (s *productService) Create(ctx context.Context, input ProductInput) (*model.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Update replaces all mutable fields of an existing product.
func (s *productService) Update(ctx context.Context, id uuid.UUID, input ProductInput) (*model.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}

	product.Name = input.Name
	product.Category = input.Category
	product.Price = input.Price
	product.Stock = input.Stock
	product.Description = input.Description
	product.ImageURL = input.ImageURL

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return product, nil
}

// Delete removes an existing product. The product's image, if any, is left
// in place; nothing references it afterwards.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProductNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
