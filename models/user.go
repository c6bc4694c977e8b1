package models

import "time"

// Roles a user account can hold.
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleRider    = "rider"
)

type User struct {
	UserID       string    `json:"userid" bson:"userid"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone" bson:"phone"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`

	// Vendor-only fields; empty for customers and riders.
	StoreName  string `json:"storeName,omitempty" bson:"store_name,omitempty"`
	StoreImage string `json:"storeImage,omitempty" bson:"store_image,omitempty"`
	StoreOpen  bool   `json:"storeOpen" bson:"store_open"`

	IsActive  bool      `json:"isActive" bson:"is_active"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
	LastLogin time.Time `json:"lastLogin,omitempty" bson:"last_login,omitempty"`
}
