// Package ctx carries per-request state for controllers: URL params,
// query helpers, body binding and envelope responses. Contexts are
// pooled and must not be retained past the request.
package ctx

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/chitralaya/chitralaya/pkg/bind"
	"github.com/chitralaya/chitralaya/pkg/orm"
	"github.com/chitralaya/chitralaya/pkg/response"
	"github.com/chitralaya/chitralaya/pkg/validate"
)

type Context struct {
	Writer  http.ResponseWriter
	Request *http.Request
	values  map[string]any
}

var pool = sync.Pool{
	New: func() any {
		return &Context{values: make(map[string]any, 4)}
	},
}

// Handler adapts a controller method onto http.HandlerFunc.
func Handler(fn func(*Context)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := pool.Get().(*Context)
		c.Writer = w
		c.Request = r

		defer func() {
			c.Writer = nil
			c.Request = nil
			clear(c.values)
			pool.Put(c)
		}()

		fn(c)
	}
}

// Set stores a request-scoped value (e.g. the authenticated user).
func (c *Context) Set(key string, value any) {
	c.values[key] = value
}

func (c *Context) Get(key string) (any, bool) {
	value, ok := c.values[key]
	if !ok {
		value = c.Request.Context().Value(ctxValueKey(key))
		ok = value != nil
	}
	return value, ok
}

type ctxValueKey string

// ValueKey returns the context key middleware should use so that
// values set before the controller runs are visible through Get.
func ValueKey(key string) any { return ctxValueKey(key) }

// Param returns a URL path parameter, e.g. Param("id") for /products/{id}.
func (c *Context) Param(name string) string {
	return chi.URLParam(c.Request, name)
}

func (c *Context) Query(name string) string {
	return c.Request.URL.Query().Get(name)
}

// QueryInt parses a query parameter as int, falling back to def.
func (c *Context) QueryInt(name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// QueryFloat parses a query parameter as float64, falling back to def.
func (c *Context) QueryFloat(name string, def float64) float64 {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return f
}

// BindJSON decodes and validates the body into dest. On failure it
// writes the error envelope and returns false; controllers should
// simply return.
func (c *Context) BindJSON(dest any) bool {
	err := bind.JSON(c.Writer, c.Request, dest)
	if err == nil {
		return true
	}

	var verrs validate.Errors
	if ok := asValidationErrors(err, &verrs); ok {
		response.ValidationError(c.Writer, verrs)
		return false
	}

	response.Error(c.Writer, http.StatusBadRequest, "Invalid request body")
	return false
}

func asValidationErrors(err error, dest *validate.Errors) bool {
	verrs, ok := err.(validate.Errors)
	if ok {
		*dest = verrs
	}
	return ok
}

// FormFile returns an uploaded file from a multipart form, parsing the
// form with the given memory cap on first use.
func (c *Context) FormFile(name string, maxMemory int64) (multipart.File, *multipart.FileHeader, error) {
	if c.Request.MultipartForm == nil {
		if err := c.Request.ParseMultipartForm(maxMemory); err != nil {
			return nil, nil, err
		}
	}
	return c.Request.FormFile(name)
}

// FormValue returns a multipart/urlencoded form field.
func (c *Context) FormValue(name string) string {
	return c.Request.FormValue(name)
}

func (c *Context) Success(data any) {
	response.Success(c.Writer, data)
}

func (c *Context) SuccessMessage(message string, data any) {
	response.SuccessMessage(c.Writer, message, data)
}

func (c *Context) Created(message string, data any) {
	response.Created(c.Writer, message, data)
}

func (c *Context) Paginated(data any, p orm.Pagination) {
	response.Paginated(c.Writer, data, p)
}

func (c *Context) Error(status int, message string) {
	response.Error(c.Writer, status, message)
}

func (c *Context) ValidationError(errs validate.Errors) {
	response.ValidationError(c.Writer, errs)
}
