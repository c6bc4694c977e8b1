package shops

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mandi/db"
	"mandi/models"
	"mandi/rdx"
	"mandi/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ShopSummary is the public storefront view of a vendor.
type ShopSummary struct {
	ShopID  string `json:"shopId" bson:"userid"`
	Name    string `json:"name" bson:"store_name"`
	Image   string `json:"image,omitempty" bson:"store_image,omitempty"`
	Open    bool   `json:"open" bson:"store_open"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
}

// GetCategories returns the storefront category tiles.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	categories := []map[string]string{
		{"id": "vegetables", "name": "Vegetables"},
		{"id": "fruits", "name": "Fruits"},
		{"id": "grains", "name": "Grains & Pulses"},
		{"id": "spices", "name": "Spices"},
		{"id": "dairy", "name": "Dairy"},
		{"id": "snacks", "name": "Snacks"},
	}
	w.Header().Set("Cache-Control", "public, max-age=300")
	utils.RespondWithJSON(w, http.StatusOK, categories)
}

// GetShops lists active vendors, optionally narrowed to those with an
// available product in ?category=. The unfiltered listing is cached in
// Redis and invalidated by the catalog worker on product writes.
func GetShops(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	category := r.URL.Query().Get("category")

	if category == "" {
		if cached, _ := rdx.RdxGet("shops"); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	filter := bson.M{"role": models.RoleVendor, "is_active": true}

	if category != "" {
		vendorIDs, err := db.ProductCollection.Distinct(ctx, "vendorid", bson.M{
			"category":     category,
			"is_available": true,
		})
		if err != nil {
			log.Println("GetShops Distinct error:", err)
			http.Error(w, "Could not retrieve shops", http.StatusInternalServerError)
			return
		}
		if len(vendorIDs) == 0 {
			utils.RespondWithJSON(w, http.StatusOK, []ShopSummary{})
			return
		}
		filter["userid"] = bson.M{"$in": vendorIDs}
	}

	cursor, err := db.UserCollection.Find(ctx, filter)
	if err != nil {
		log.Println("GetShops Find error:", err)
		http.Error(w, "Could not retrieve shops", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []ShopSummary
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetShops cursor.All error:", err)
		http.Error(w, "Error reading shop data", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []ShopSummary{}
	}

	if category == "" {
		if data, err := json.Marshal(list); err == nil {
			rdx.RdxSet("shops", string(data))
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetShop returns one shop with its available products.
func GetShop(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	shopID := ps.ByName("shopid")

	if cached, _ := rdx.RdxGet("shop:" + shopID); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	var shop ShopSummary
	err := db.UserCollection.FindOne(ctx, bson.M{
		"userid": shopID, "role": models.RoleVendor, "is_active": true,
	}).Decode(&shop)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Shop not found")
			return
		}
		log.Println("GetShop FindOne error:", err)
		http.Error(w, "Could not retrieve shop", http.StatusInternalServerError)
		return
	}

	findOpts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := db.ProductCollection.Find(ctx, bson.M{
		"vendorid": shopID, "is_available": true,
	}, findOpts)
	if err != nil {
		log.Println("GetShop products Find error:", err)
		http.Error(w, "Could not retrieve shop products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var items []models.Product
	if err := cursor.All(ctx, &items); err != nil {
		log.Println("GetShop cursor.All error:", err)
		http.Error(w, "Error reading product data", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.Product{}
	}

	payload := map[string]any{"shop": shop, "products": items}
	if data, err := json.Marshal(payload); err == nil {
		rdx.RdxSet("shop:"+shopID, string(data))
	}

	utils.RespondWithJSON(w, http.StatusOK, payload)
}
