package products

import (
	"testing"

	"mandi/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestNewProductDerivesAvailabilityFromStock(t *testing.T) {
	p, err := NewProduct("v1", CreateInput{
		Name:     "Basmati Rice",
		Price:    120,
		Category: "Grocery",
		Stock:    intPtr(8),
	})

	require.NoError(t, err)
	assert.True(t, p.IsAvailable)
	assert.Equal(t, "v1", p.VendorID)
	assert.Equal(t, 8, p.Stock)
	assert.True(t, p.IsVeg)
	assert.NotEmpty(t, p.ProductID)
}

func TestNewProductZeroStockStartsUnavailable(t *testing.T) {
	p, err := NewProduct("v1", CreateInput{
		Name:     "Seasonal Mangoes",
		Price:    90,
		Category: "Fruits",
		Stock:    intPtr(0),
	})

	require.NoError(t, err)
	assert.False(t, p.IsAvailable)
}

func TestNewProductMissingStockDefaultsToZero(t *testing.T) {
	p, err := NewProduct("v1", CreateInput{
		Name:     "Jaggery",
		Price:    60,
		Category: "Grocery",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)
	assert.False(t, p.IsAvailable)
}

func TestNewProductValidation(t *testing.T) {
	cases := []struct {
		name  string
		input CreateInput
	}{
		{"missing name", CreateInput{Price: 10, Category: "Grocery"}},
		{"zero price", CreateInput{Name: "Salt", Price: 0, Category: "Grocery"}},
		{"negative price", CreateInput{Name: "Salt", Price: -5, Category: "Grocery"}},
		{"missing category", CreateInput{Name: "Salt", Price: 10}},
		{"negative stock", CreateInput{Name: "Salt", Price: 10, Category: "Grocery", Stock: intPtr(-1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProduct("v1", tc.input)

			require.Error(t, err)
			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.CodeValidation, appErr.Code)
		})
	}
}

func TestApplyPatchZeroStockForcesUnavailable(t *testing.T) {
	p, err := NewProduct("v1", CreateInput{
		Name:     "Paneer",
		Price:    100,
		Category: "Dairy",
		Stock:    intPtr(5),
	})
	require.NoError(t, err)
	require.True(t, p.IsAvailable)

	err = ApplyPatch(p, Patch{Stock: intPtr(0)})

	require.NoError(t, err)
	assert.False(t, p.IsAvailable)
}

func TestApplyPatchAvailabilityLosesToZeroStock(t *testing.T) {
	p, err := NewProduct("v1", CreateInput{
		Name:     "Paneer",
		Price:    100,
		Category: "Dairy",
		Stock:    intPtr(5),
	})
	require.NoError(t, err)

	err = ApplyPatch(p, Patch{Stock: intPtr(0), IsAvailable: boolPtr(true)})

	require.NoError(t, err)
	assert.False(t, p.IsAvailable)
}

func TestApplyPatchManualAvailabilitySticksWithStock(t *testing.T) {
	p, err := NewProduct("v1", CreateInput{
		Name:     "Paneer",
		Price:    100,
		Category: "Dairy",
		Stock:    intPtr(5),
	})
	require.NoError(t, err)

	// vendor hides a stocked product, then shows it again
	require.NoError(t, ApplyPatch(p, Patch{IsAvailable: boolPtr(false)}))
	assert.False(t, p.IsAvailable)

	require.NoError(t, ApplyPatch(p, Patch{IsAvailable: boolPtr(true)}))
	assert.True(t, p.IsAvailable)
}

func TestApplyPatchLeavesAbsentFieldsUntouched(t *testing.T) {
	p, err := NewProduct("v1", CreateInput{
		Name:            "Paneer",
		Price:           100,
		DiscountedPrice: 90,
		Category:        "Dairy",
		Stock:           intPtr(5),
		Image:           "p123.jpg",
		IsVeg:           boolPtr(true),
	})
	require.NoError(t, err)

	err = ApplyPatch(p, Patch{Price: floatPtr(110)})

	require.NoError(t, err)
	assert.Equal(t, 110.0, p.Price)
	assert.Equal(t, "Paneer", p.Name)
	assert.Equal(t, 90.0, p.DiscountedPrice)
	assert.Equal(t, "Dairy", p.Category)
	assert.Equal(t, 5, p.Stock)
	assert.Equal(t, "p123.jpg", p.Image)
	assert.True(t, p.IsVeg)
	assert.True(t, p.IsAvailable)
}

func TestApplyPatchValidation(t *testing.T) {
	p, err := NewProduct("v1", CreateInput{
		Name:     "Paneer",
		Price:    100,
		Category: "Dairy",
		Stock:    intPtr(5),
	})
	require.NoError(t, err)

	cases := []struct {
		name  string
		patch Patch
	}{
		{"negative stock", Patch{Stock: intPtr(-2)}},
		{"zero price", Patch{Price: floatPtr(0)}},
		{"empty name", Patch{Name: strPtr("")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ApplyPatch(p, tc.patch)

			require.Error(t, err)
			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.CodeValidation, appErr.Code)
		})
	}

	// a rejected patch leaves the product unchanged
	assert.Equal(t, "Paneer", p.Name)
	assert.Equal(t, 100.0, p.Price)
	assert.Equal(t, 5, p.Stock)
}
