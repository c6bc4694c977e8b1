package routes

import (
	"net/http"

	"mandi/auth"
	"mandi/cart"
	"mandi/live"
	"mandi/middleware"
	"mandi/models"
	"mandi/products"
	"mandi/profile"
	"mandi/ratelim"
	"mandi/shops"
	"mandi/vendors"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
	router.ServeFiles("/static/storepic/*filepath", http.Dir("static/storepic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/customer/signup", ratelim.RateLimit(auth.CustomerSignup))
	router.POST("/api/auth/customer/login", ratelim.RateLimit(auth.CustomerLogin))
	router.POST("/api/auth/vendor/signup", ratelim.RateLimit(auth.VendorSignup))
	router.POST("/api/auth/vendor/login", ratelim.RateLimit(auth.VendorLogin))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
}

func AddShopRoutes(router *httprouter.Router) {
	router.GET("/api/home/categories", shops.GetCategories)
	router.GET("/api/shops", shops.GetShops)
	router.GET("/api/shops/:shopid", shops.GetShop)
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart", middleware.Authenticate(cart.GetCart))
	router.POST("/api/cart/items", middleware.Authenticate(cart.AddItem))
	router.PUT("/api/cart/items/:index", middleware.Authenticate(cart.UpdateQuantity))
	router.DELETE("/api/cart/items/:index", middleware.Authenticate(cart.RemoveItem))
	router.POST("/api/cart/coupon", middleware.Authenticate(cart.ApplyCouponHandler))
	router.DELETE("/api/cart/coupon", middleware.Authenticate(cart.RemoveCouponHandler))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/customer/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/customer/profile", middleware.Authenticate(profile.UpdateProfile))
}

func vendorOnly(h httprouter.Handle) httprouter.Handle {
	return middleware.Authenticate(middleware.RequireRole(models.RoleVendor, h))
}

func AddVendorRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/api/vendor/profile", vendorOnly(vendors.GetProfile))
	router.PUT("/api/vendor/profile", vendorOnly(vendors.UpdateProfile))
	router.GET("/api/vendor/dashboard", vendorOnly(vendors.Dashboard))
	router.GET("/api/vendor/dashboard/live", vendorOnly(live.DashboardSocket(hub)))

	router.GET("/api/vendor/products", vendorOnly(products.GetVendorProducts))
	router.POST("/api/vendor/products", ratelim.RateLimit(vendorOnly(products.CreateProduct)))
	router.PUT("/api/vendor/products/:productid", ratelim.RateLimit(vendorOnly(products.UpdateProduct)))
	router.DELETE("/api/vendor/products/:productid", ratelim.RateLimit(vendorOnly(products.DeleteProduct)))
	router.POST("/api/vendor/products/:productid/image", ratelim.RateLimit(vendorOnly(products.UploadProductImage)))
	router.GET("/api/vendor/products/export/pdf", vendorOnly(vendors.ExportCatalogPDF))
}
