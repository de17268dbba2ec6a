package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/services"
	"github.com/chitralaya/chitralaya/pkg/ctx"
	"github.com/chitralaya/chitralaya/pkg/storage"
	"github.com/chitralaya/chitralaya/pkg/validate"
)

// maxUploadBytes caps each uploaded artwork image at 5 MB.
const maxUploadBytes = 5 << 20

var (
	errTooLarge = errors.New("upload too large")
	errBadType  = errors.New("upload is not an image")
)

type AdminController struct {
	admin   *services.AdminService
	catalog *services.CatalogService
}

func NewAdminController(admin *services.AdminService, catalog *services.CatalogService) *AdminController {
	return &AdminController{admin: admin, catalog: catalog}
}

func (a *AdminController) Dashboard(c *ctx.Context) {
	stats, err := a.admin.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(stats)
}

func (a *AdminController) ListUsers(c *ctx.Context) {
	users, p, err := a.admin.ListUsers(c.QueryInt("page", 1), c.QueryInt("limit", 20))
	if err != nil {
		fail(c, err)
		return
	}

	c.Paginated(users, p)
}

func (a *AdminController) GetUser(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := a.admin.GetUser(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(user)
}

func (a *AdminController) UpdateUser(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.AdminUserUpdateInput
	if !c.BindJSON(&input) {
		return
	}

	user, err := a.admin.UpdateUser(id, input)
	if err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("User updated", user)
}

func (a *AdminController) DeleteUser(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.admin.DeleteUser(id); err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("User deleted", nil)
}

// ListProducts includes soft-deleted rows, unlike the public catalog.
func (a *AdminController) ListProducts(c *ctx.Context) {
	products, p, err := a.catalog.AdminList(
		c.Query("category"),
		c.Query("search"),
		c.QueryInt("page", 1),
		c.QueryInt("limit", 20),
	)
	if err != nil {
		fail(c, err)
		return
	}

	c.Paginated(products, p)
}

func (a *AdminController) GetProduct(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := a.catalog.AdminGet(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(product)
}

// CreateProduct accepts a multipart form: product fields plus one or
// more "images" files (≤5 MB each, image/* only). Files land in the
// category's asset folder on the configured storage disk.
func (a *AdminController) CreateProduct(c *ctx.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		c.Error(http.StatusBadRequest, "Invalid multipart form")
		return
	}

	input := services.ProductInput{
		Name:          c.FormValue("name"),
		Description:   c.FormValue("description"),
		Category:      c.FormValue("category"),
		Artist:        c.FormValue("artist"),
		Size:          c.FormValue("size"),
		Medium:        c.FormValue("medium"),
		CardClass:     c.FormValue("cardClass"),
		AdjustClass:   c.FormValue("adjustClass"),
		ImagePosition: c.FormValue("imagePosition"),
	}
	if raw := c.FormValue("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.Error(http.StatusBadRequest, "Invalid price")
			return
		}
		input.Price = price
	}

	form := c.Request.MultipartForm
	for _, header := range form.File["images"] {
		url, err := a.storeImage(c, input.Category, header)
		if err != nil {
			return // storeImage already wrote the response
		}
		input.Images = append(input.Images, url)
	}

	// Multipart bodies skip BindJSON, so validate explicitly.
	if errs := validate.Struct(input); errs.Any() {
		c.ValidationError(errs)
		return
	}

	product, err := a.catalog.Create(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created("Product created", product)
}

func (a *AdminController) storeImage(c *ctx.Context, category string, header *multipart.FileHeader) (string, error) {
	if header.Size > maxUploadBytes {
		c.Error(http.StatusBadRequest, "Image exceeds the 5 MB limit")
		return "", errTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.Error(http.StatusBadRequest, "Only image uploads are allowed")
		return "", errBadType
	}

	file, err := header.Open()
	if err != nil {
		c.Error(http.StatusBadRequest, "Could not read upload")
		return "", err
	}
	defer file.Close()

	// Only known categories get their own asset folder.
	if !models.ValidCategory(category) {
		category = "uncategorized"
	}
	key := fmt.Sprintf("products/%s/%d%s",
		category, time.Now().UnixNano(), strings.ToLower(filepath.Ext(header.Filename)))

	url, err := storage.Default().Put(c.Request.Context(), key, file, contentType)
	if err != nil {
		fail(c, err)
		return "", err
	}

	return url, nil
}
