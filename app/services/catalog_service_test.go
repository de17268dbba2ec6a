package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/repositories"
	"github.com/chitralaya/chitralaya/app/services/apperr"
)

func TestSoftDeleteHidesFromStorefrontOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewProductRepository(db))
	p := seedProduct(t, db, "Radha Krishna", 3500, true)

	require.NoError(t, svc.Delete(context.Background(), p.ID))

	// public surfaces no longer see it
	_, err := svc.Get(p.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	page, err := svc.List(context.Background(), "", "", 1, 12)
	require.NoError(t, err)
	assert.Empty(t, page.Products)

	// the back office still does
	product, err := svc.AdminGet(p.ID)
	require.NoError(t, err)
	assert.False(t, product.IsActive)

	adminProducts, _, err := svc.AdminList("", "", 1, 12)
	require.NoError(t, err)
	assert.Len(t, adminProducts, 1)
}

func TestListFiltersByCategoryAndSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewProductRepository(db))

	canvas := seedProduct(t, db, "Majestic Peacock", 2799, true)
	sketch := &models.Product{
		Name:        "Divine Ganesha Portrait",
		Description: "charcoal sketch",
		Price:       1999,
		Category:    models.CategorySketches,
		Images:      models.StringList{"assets/sketch/sketch1.jpeg"},
		IsActive:    true,
	}
	require.NoError(t, db.Create(sketch).Error)

	page, err := svc.List(context.Background(), models.CategorySketches, "", 1, 12)
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, sketch.Name, page.Products[0].Name)

	// "all" means no category filter
	page, err = svc.List(context.Background(), models.CategoryAll, "", 1, 12)
	require.NoError(t, err)
	assert.Len(t, page.Products, 2)

	// search matches name or description substrings
	page, err = svc.List(context.Background(), "", "Peacock", 1, 12)
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, canvas.Name, page.Products[0].Name)

	page, err = svc.List(context.Background(), "", "charcoal", 1, 12)
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, sketch.Name, page.Products[0].Name)
}

func TestListPaginationMetadata(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewProductRepository(db))

	for i := 0; i < 5; i++ {
		seedProduct(t, db, "Artwork", 1000, true)
	}

	page, err := svc.List(context.Background(), "", "", 1, 2)
	require.NoError(t, err)

	assert.Len(t, page.Products, 2)
	assert.Equal(t, 1, page.Pagination.CurrentPage)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.EqualValues(t, 5, page.Pagination.TotalProducts)
	assert.True(t, page.Pagination.HasNext)
	assert.False(t, page.Pagination.HasPrev)

	last, err := svc.List(context.Background(), "", "", 3, 2)
	require.NoError(t, err)
	assert.Len(t, last.Products, 1)
	assert.False(t, last.Pagination.HasNext)
	assert.True(t, last.Pagination.HasPrev)
}

func TestCreateDefaultsArtist(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewProductRepository(db))

	product, err := svc.Create(context.Background(), ProductInput{
		Name:        "New Piece",
		Description: "fresh off the easel",
		Price:       1500,
		Category:    models.CategoryCanvas,
		Images:      []string{"assets/canvas/new.jpeg"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Chitralaya Artist", product.Artist)
	assert.True(t, product.IsActive)
}
