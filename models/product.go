package models

import "time"

// Product is a vendor-owned catalog entry. The stock/availability rule
// (stock == 0 forces isAvailable == false) is enforced on every write
// path in the products package, never here.
type Product struct {
	ProductID       string    `json:"productid" bson:"productid"`
	VendorID        string    `json:"vendorid" bson:"vendorid"`
	Name            string    `json:"name" bson:"name"`
	Price           float64   `json:"price" bson:"price"`
	DiscountedPrice float64   `json:"discountedPrice,omitempty" bson:"discounted_price,omitempty"`
	Category        string    `json:"category" bson:"category"`
	Stock           int       `json:"stock" bson:"stock"`
	Image           string    `json:"image,omitempty" bson:"image,omitempty"`
	IsAvailable     bool      `json:"isAvailable" bson:"is_available"`
	IsVeg           bool      `json:"isVeg" bson:"is_veg"`
	CreatedAt       time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updated_at"`
}
