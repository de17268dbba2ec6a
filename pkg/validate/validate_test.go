package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Name     string `json:"name" validate:"required|min:2|max:60"`
	Email    string `json:"email" validate:"required|email"`
	Password string `json:"password" validate:"required|min:8"`
	Phone    string `json:"phone" validate:"nullable|digits:10"`
}

func TestStructRequired(t *testing.T) {
	errs := Struct(signupPayload{})

	require.True(t, errs.Any())
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.NotContains(t, errs, "phone")
}

func TestStructValidPayload(t *testing.T) {
	errs := Struct(signupPayload{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Password: "correct horse",
		Phone:    "9876543210",
	})

	assert.False(t, errs.Any(), "expected no errors, got %v", errs)
}

func TestStructEmail(t *testing.T) {
	errs := Struct(signupPayload{
		Name:     "Asha",
		Email:    "not-an-email",
		Password: "correct horse",
	})

	require.Contains(t, errs, "email")
}

func TestStructNullableSkipsEmpty(t *testing.T) {
	payload := signupPayload{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "correct horse",
	}

	assert.False(t, Struct(payload).Any())

	payload.Phone = "12345"
	errs := Struct(payload)
	require.Contains(t, errs, "phone")
}

func TestStructNumericBounds(t *testing.T) {
	type item struct {
		Quantity int     `json:"quantity" validate:"required|gte:1"`
		Price    float64 `json:"price" validate:"gte:0"`
	}

	errs := Struct(item{Quantity: 0, Price: -1})
	assert.Contains(t, errs, "quantity")
	assert.Contains(t, errs, "price")

	errs = Struct(item{Quantity: 2, Price: 1500})
	assert.False(t, errs.Any())
}

func TestStructIn(t *testing.T) {
	type update struct {
		Status string `json:"status" validate:"required|in:pending,confirmed,shipped,delivered,cancelled"`
	}

	assert.False(t, Struct(update{Status: "shipped"}).Any())
	assert.Contains(t, Struct(update{Status: "teleported"}), "status")
}

func TestStructNestedPrefixesFieldNames(t *testing.T) {
	type address struct {
		Street string `json:"street" validate:"required"`
		City   string `json:"city" validate:"required"`
	}
	type order struct {
		Shipping address `json:"shippingAddress"`
	}

	errs := Struct(order{})
	assert.Contains(t, errs, "shippingAddress.street")
	assert.Contains(t, errs, "shippingAddress.city")
}

func TestStructSliceElementsIndexed(t *testing.T) {
	type item struct {
		ProductID uint `json:"productId" validate:"required"`
		Quantity  int  `json:"quantity" validate:"required|gte:1"`
	}
	type order struct {
		Items []item `json:"items" validate:"required|min:1"`
	}

	errs := Struct(order{Items: []item{
		{ProductID: 7, Quantity: 2},
		{ProductID: 0, Quantity: 0},
	}})

	assert.NotContains(t, errs, "items")
	assert.Contains(t, errs, "items.1.productId")
	assert.Contains(t, errs, "items.1.quantity")
	assert.NotContains(t, errs, "items.0.productId")
}

func TestStructSliceMin(t *testing.T) {
	type order struct {
		Items []string `json:"items" validate:"required|min:1"`
	}

	errs := Struct(order{})
	require.Contains(t, errs, "items")

	assert.False(t, Struct(order{Items: []string{"a"}}).Any())
}
