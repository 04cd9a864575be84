package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/model"
)

// ProductFilter describes a filtered, sorted, paginated view over the
// catalog. All filter fields are optional and conjunctive.
type ProductFilter struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
	SortBy   string
	SortDesc bool
	Page     int
	Limit    int
}

// sortColumns whitelists sortable fields so untrusted query input never
// reaches the ORDER BY clause directly.
var sortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"category":   "category",
	"stock":      "stock",
	"rating":     "rating",
	"created_at": "created_at",
}

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a GORM-backed repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes the record. Deleting an absent product reports
// gorm.ErrRecordNotFound so the caller can map it to 404.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns one page of products matching the filter plus the total
// count of matches independent of pagination.
func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", filter.MaxPrice)
	}
	if filter.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if column, ok := sortColumns[filter.SortBy]; ok {
		direction := "ASC"
		if filter.SortDesc {
			direction = "DESC"
		}
		q = q.Order(column + " " + direction)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var products []model.Product
	if err := q.Offset((page - 1) * limit).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
