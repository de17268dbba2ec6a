package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/repositories"
	"github.com/chitralaya/chitralaya/app/services/apperr"
	"github.com/chitralaya/chitralaya/pkg/cache"
	"github.com/chitralaya/chitralaya/pkg/orm"
)

const productCacheTTL = 5 * time.Minute

type CatalogService struct {
	products *repositories.ProductRepository
}

func NewCatalogService(products *repositories.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

type ProductInput struct {
	Name        string   `json:"name" validate:"required|max:200"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"gte:0"`
	Category    string   `json:"category" validate:"required|in:canvas,sketches,color"`
	Images      []string `json:"images" validate:"required|min:1"`
	Artist      string   `json:"artist" validate:"nullable|max:120"`
	Size        string   `json:"size" validate:"nullable|max:60"`
	Medium      string   `json:"medium" validate:"nullable|max:120"`

	CardClass     string `json:"cardClass" validate:"nullable|max:60"`
	AdjustClass   string `json:"adjustClass" validate:"nullable|max:60"`
	ImagePosition string `json:"imagePosition" validate:"nullable|max:60"`
}

// ProductPage is the storefront listing contract: pagination nested
// under the data object.
type ProductPage struct {
	Products   []models.Product `json:"products"`
	Pagination ListPagination   `json:"pagination"`
}

type ListPagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalProducts int64 `json:"totalProducts"`
	HasNext       bool  `json:"hasNext"`
	HasPrev       bool  `json:"hasPrev"`
}

// List serves the public catalog: active products, optional category
// and substring search, cached per query in Redis.
func (s *CatalogService) List(ctx context.Context, category, search string, page, limit int) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	key := fmt.Sprintf("chitralaya:products:%s:%s:%d:%d", category, search, page, limit)
	var cached ProductPage
	if cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	products, p, err := s.products.List(repositories.ProductFilter{
		Category:   category,
		Search:     search,
		ActiveOnly: true,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, apperr.Server("Failed to load products", err)
	}

	result := &ProductPage{
		Products: products,
		Pagination: ListPagination{
			CurrentPage:   p.Page,
			TotalPages:    p.Pages,
			TotalProducts: p.Total,
			HasNext:       p.HasNext(),
			HasPrev:       p.HasPrev(),
		},
	}

	cache.Set(ctx, key, result, productCacheTTL)
	return result, nil
}

// Get returns one active product; inactive rows read as missing to
// the storefront.
func (s *CatalogService) Get(id uint) (*models.Product, error) {
	product, err := s.products.FindByID(id, true)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, apperr.Server("Failed to load product", err)
	}
	return product, nil
}

// AdminGet also sees inactive products.
func (s *CatalogService) AdminGet(id uint) (*models.Product, error) {
	product, err := s.products.FindByID(id, false)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, apperr.Server("Failed to load product", err)
	}
	return product, nil
}

// AdminList includes soft-deleted products.
func (s *CatalogService) AdminList(category, search string, page, limit int) ([]models.Product, orm.Pagination, error) {
	products, p, err := s.products.List(repositories.ProductFilter{
		Category: category,
		Search:   search,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, p, apperr.Server("Failed to load products", err)
	}
	return products, p, nil
}

func (s *CatalogService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Category:      input.Category,
		Images:        models.StringList(input.Images),
		Artist:        input.Artist,
		Size:          input.Size,
		Medium:        input.Medium,
		CardClass:     input.CardClass,
		AdjustClass:   input.AdjustClass,
		ImagePosition: input.ImagePosition,
		IsActive:      true,
	}
	if product.Artist == "" {
		product.Artist = "Chitralaya Artist"
	}

	if err := s.products.Create(product); err != nil {
		return nil, apperr.Server("Failed to create product", err)
	}

	s.invalidateListings(ctx)
	return product, nil
}

func (s *CatalogService) Update(ctx context.Context, id uint, input ProductInput) (*models.Product, error) {
	product, err := s.AdminGet(id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category
	product.Images = models.StringList(input.Images)
	product.Artist = input.Artist
	product.Size = input.Size
	product.Medium = input.Medium
	product.CardClass = input.CardClass
	product.AdjustClass = input.AdjustClass
	product.ImagePosition = input.ImagePosition

	if err := s.products.Save(product); err != nil {
		return nil, apperr.Server("Failed to update product", err)
	}

	s.invalidateListings(ctx)
	return product, nil
}

// Delete soft-deletes: the product disappears from the storefront but
// stays in the admin list and in past orders.
func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	if err := s.products.Deactivate(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperr.NotFound("Product not found")
		}
		return apperr.Server("Failed to delete product", err)
	}

	s.invalidateListings(ctx)
	return nil
}

// invalidateListings bumps nothing per-key: listing keys encode the
// query, so they are left to expire; here we clear the most common
// first-page keys eagerly.
func (s *CatalogService) invalidateListings(ctx context.Context) {
	keys := make([]string, 0, 8)
	for _, category := range []string{"", models.CategoryAll, models.CategoryCanvas, models.CategorySketches, models.CategoryColor} {
		keys = append(keys, fmt.Sprintf("chitralaya:products:%s::1:12", category))
	}
	cache.Forget(ctx, keys...)
}
