package products

import (
	"time"

	"mandi/apperrors"
	"mandi/models"
	"mandi/utils"
)

// CreateInput is the caller-supplied shape for a new product. Any
// isAvailable value is deliberately absent: availability at creation is
// derived from stock, never accepted as input.
type CreateInput struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Category        string  `json:"category"`
	Stock           *int    `json:"stock"`
	Image           string  `json:"image"`
	IsVeg           *bool   `json:"isVeg"`
}

// Patch carries a partial update. A nil field is left untouched on the
// stored product, never reset to a default.
type Patch struct {
	Name            *string  `json:"name"`
	Price           *float64 `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice"`
	Category        *string  `json:"category"`
	Stock           *int     `json:"stock"`
	Image           *string  `json:"image"`
	IsAvailable     *bool    `json:"isAvailable"`
	IsVeg           *bool    `json:"isVeg"`
}

// NewProduct validates input and builds the product record for a
// vendor. Availability is stock-derived: a product created with zero
// stock starts unavailable no matter what the caller intended.
func NewProduct(vendorID string, input CreateInput) (*models.Product, error) {
	if input.Name == "" || input.Price <= 0 || input.Category == "" {
		return nil, apperrors.ValidationError("Name, price and category are required")
	}

	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}
	if stock < 0 {
		return nil, apperrors.ValidationError("Stock must be a non-negative integer")
	}

	isVeg := true
	if input.IsVeg != nil {
		isVeg = *input.IsVeg
	}

	now := time.Now()
	return &models.Product{
		ProductID:       "p" + utils.GenerateID(14),
		VendorID:        vendorID,
		Name:            input.Name,
		Price:           input.Price,
		DiscountedPrice: input.DiscountedPrice,
		Category:        input.Category,
		Stock:           stock,
		Image:           input.Image,
		IsAvailable:     stock > 0,
		IsVeg:           isVeg,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// ApplyPatch merges the supplied fields into the product, then
// re-enforces the stock/availability rule: zero stock forces the
// product unavailable, overriding any isAvailable in the same patch.
// Re-enabling availability by hand only sticks while stock > 0.
func ApplyPatch(p *models.Product, patch Patch) error {
	if patch.Stock != nil && *patch.Stock < 0 {
		return apperrors.ValidationError("Stock must be a non-negative integer")
	}
	if patch.Price != nil && *patch.Price <= 0 {
		return apperrors.ValidationError("Price must be a positive number")
	}
	if patch.Name != nil && *patch.Name == "" {
		return apperrors.ValidationError("Name cannot be empty")
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.DiscountedPrice != nil {
		p.DiscountedPrice = *patch.DiscountedPrice
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.IsAvailable != nil {
		p.IsAvailable = *patch.IsAvailable
	}
	if patch.IsVeg != nil {
		p.IsVeg = *patch.IsVeg
	}

	if p.Stock == 0 {
		p.IsAvailable = false
	}

	p.UpdatedAt = time.Now()
	return nil
}
