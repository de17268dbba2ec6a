package ctx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerPoolsContexts(t *testing.T) {
	var seen *Context

	h := Handler(func(c *Context) {
		c.Set("role", "admin")
		seen = c
		c.Success(map[string]string{"ok": "yes"})
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, seen)
	assert.Nil(t, seen.Request, "request must be cleared before the context returns to the pool")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQueryInt(t *testing.T) {
	h := Handler(func(c *Context) {
		assert.Equal(t, 3, c.QueryInt("page", 1))
		assert.Equal(t, 12, c.QueryInt("limit", 12))
		assert.Equal(t, 1, c.QueryInt("bogus", 1))
		c.Success(nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/products?page=3&bogus=abc", nil)
	h(httptest.NewRecorder(), req)
}

func TestBindJSONValidationFailureWritesEnvelope(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required|email"`
	}

	h := Handler(func(c *Context) {
		var p payload
		if !c.BindJSON(&p) {
			return
		}
		c.Success(p)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"nope"}`))
	h(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Errors, "email")
}

func TestBindJSONMalformedBody(t *testing.T) {
	h := Handler(func(c *Context) {
		var p struct{}
		if !c.BindJSON(&p) {
			return
		}
		c.Success(nil)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
