package transport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestProductRequest_Validate(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name  string
		req   ProductRequest
		valid bool
	}{
		{"minimal", ProductRequest{Name: "a", Price: ptr(0.0)}, true},
		{"full", ProductRequest{Name: "a", Category: ptr("c"), Price: ptr(1.5), Images: map[string]string{"k": "v"}}, true},
		{"100 runes", ProductRequest{Name: strings.Repeat("ж", 100), Price: ptr(1.0)}, true},
		{"101 chars", ProductRequest{Name: strings.Repeat("x", 101), Price: ptr(1.0)}, false},
		{"empty name", ProductRequest{Price: ptr(1.0)}, false},
		{"no price", ProductRequest{Name: "a"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.req)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestProductRequest_ToModel(t *testing.T) {
	req := ProductRequest{Name: "a", Category: ptr("c"), Price: ptr(2.5), Images: map[string]string{"k": "v"}}
	p := req.ToModel()

	assert.Zero(t, p.ID)
	assert.Equal(t, "a", p.Name)
	assert.Equal(t, "c", *p.Category)
	assert.Equal(t, 2.5, p.Price)
	assert.Equal(t, map[string]string{"k": "v"}, p.Images)
}

func TestCartRequests_Validate(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&AddToCartRequest{ProductID: 1}))
	assert.NoError(t, v.Validate(&AddToCartRequest{ProductID: 1, Quantity: ptr(3)}))
	assert.Error(t, v.Validate(&AddToCartRequest{ProductID: 1, Quantity: ptr(0)}))
	assert.Error(t, v.Validate(&AddToCartRequest{Quantity: ptr(1)}))

	assert.NoError(t, v.Validate(&UpdateCartItemRequest{Quantity: 1}))
	assert.Error(t, v.Validate(&UpdateCartItemRequest{ProductID: 1}))
	assert.Error(t, v.Validate(&UpdateCartItemRequest{Quantity: -1}))
}

func TestAddToCartRequest_QuantityOrDefault(t *testing.T) {
	assert.Equal(t, 1, (&AddToCartRequest{ProductID: 1}).QuantityOrDefault(1))
	assert.Equal(t, 4, (&AddToCartRequest{ProductID: 1, Quantity: ptr(4)}).QuantityOrDefault(1))
}
