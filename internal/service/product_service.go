package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/cache"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// ProductService exposes catalog operations. Listing and lookup are
// read-only; mutations are gated to admins at the HTTP layer.
type ProductService interface {
	List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int64, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, id string, fields *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	repo  repository.ProductRepository
	cache *cache.Client
}

// NewProductService builds a ProductService with repository and cache.
func NewProductService(repo repository.ProductRepository, cache *cache.Client) ProductService {
	return &productService{repo: repo, cache: cache}
}

func (s *productService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id)
}

func (s *productService) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int64, error) {
	return s.repo.List(ctx, filter)
}

// Get resolves a product by its identifier. A structurally invalid
// identifier reads the same as an absent one.
func (s *productService) Get(ctx context.Context, id string) (*model.Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ErrProductNotFound
	}

	var cached model.Product
	if s.cache.GetJSON(ctx, s.cacheKey(productID), &cached) {
		return &cached, nil
	}

	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	_ = s.cache.SetJSON(ctx, s.cacheKey(productID), product, productCacheTTL)
	return product, nil
}

func (s *productService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Update replaces the mutable fields of an existing product. CreatedAt is
// kept from the stored record.
func (s *productService) Update(ctx context.Context, id string, fields *model.Product) (*model.Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ErrProductNotFound
	}

	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	product.Name = fields.Name
	product.Description = fields.Description
	product.Price = fields.Price
	product.Category = fields.Category
	product.Stock = fields.Stock
	product.Rating = fields.Rating
	product.Image = fields.Image

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(productID))
	return product, nil
}

// Delete removes a product. Deleting an already-deleted product still
// reports not found.
func (s *productService) Delete(ctx context.Context, id string) error {
	productID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.ErrProductNotFound
	}

	if err := s.repo.Delete(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(productID))
	return nil
}
