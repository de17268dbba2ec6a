package controllers

import (
	"github.com/chitralaya/chitralaya/app/services"
	"github.com/chitralaya/chitralaya/pkg/ctx"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// List is the public catalog: active products only, filterable by
// category and search, pagination nested in the data object.
func (p *ProductController) List(c *ctx.Context) {
	page, err := p.catalog.List(
		c.Request.Context(),
		c.Query("category"),
		c.Query("search"),
		c.QueryInt("page", 1),
		c.QueryInt("limit", 12),
	)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(page)
}

func (p *ProductController) Get(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := p.catalog.Get(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(product)
}

func (p *ProductController) Create(c *ctx.Context) {
	var input services.ProductInput
	if !c.BindJSON(&input) {
		return
	}

	product, err := p.catalog.Create(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created("Product created", product)
}

func (p *ProductController) Update(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.ProductInput
	if !c.BindJSON(&input) {
		return
	}

	product, err := p.catalog.Update(c.Request.Context(), id, input)
	if err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("Product updated", product)
}

func (p *ProductController) Delete(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := p.catalog.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("Product deleted", nil)
}
