package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/service"
)

const defaultPageSize = 10

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductRequest represents a create or full-replace update payload.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Rating      float64  `json:"rating" validate:"gte=0"`
	Image       string   `json:"image" validate:"required,url"`
}

// ProductListResponse represents one page of the catalog.
type ProductListResponse struct {
	Products []model.Product `json:"products"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	Pages    int             `json:"pages"`
}

// ListProducts godoc
// @Summary List products with filtering, sorting and pagination
// @Tags products
// @Produce json
// @Param category query string false "Exact category match"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param search query string false "Case-insensitive name substring"
// @Param sort query string false "Sort field (name, price, category, stock, rating, created_at)"
// @Param order query string false "Sort direction (asc or desc)"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} ProductListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := parseProductFilter(c)

	products, total, err := h.productService.List(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if products == nil {
		products = []model.Product{}
	}

	pages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return c.JSON(http.StatusOK, ProductListResponse{
		Products: products,
		Total:    total,
		Page:     filter.Page,
		Pages:    pages,
	})
}

// GetProduct godoc
// @Summary Get a product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductRequest true "Product data"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	req, err := bindProductRequest(c)
	if err != nil {
		return err
	}

	product, err := h.productService.Create(c.Request().Context(), req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Replace a product's mutable fields
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body ProductRequest true "Product data"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	req, err := bindProductRequest(c)
	if err != nil {
		return err
	}

	product, err := h.productService.Update(c.Request().Context(), c.Param("id"), req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "product deleted successfully",
	})
}

func (r *ProductRequest) toModel() *model.Product {
	return &model.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       decimal.NewFromFloat(*r.Price),
		Category:    r.Category,
		Stock:       r.Stock,
		Rating:      r.Rating,
		Image:       r.Image,
	}
}

func bindProductRequest(c echo.Context) (*ProductRequest, error) {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return &req, nil
}

// parseProductFilter builds a filter from untrusted query input. Junk
// values fall back to defaults instead of failing the request.
func parseProductFilter(c echo.Context) repository.ProductFilter {
	filter := repository.ProductFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		SortBy:   c.QueryParam("sort"),
		SortDesc: strings.EqualFold(c.QueryParam("order"), "desc"),
		Page:     1,
		Limit:    defaultPageSize,
	}

	if v := c.QueryParam("minPrice"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MinPrice = &d
		}
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MaxPrice = &d
		}
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil && page >= 1 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit >= 1 {
		filter.Limit = limit
	}
	return filter
}
