package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mandi/apperrors"
	"mandi/db"
	"mandi/models"
	"mandi/mq"
	"mandi/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateProduct inserts a new product for the authenticated vendor.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendorID := utils.GetUserIDFromContext(r.Context())
	if vendorID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Println("CreateProduct decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	product, err := NewProduct(vendorID, input)
	if err != nil {
		respondWithOpError(w, err)
		return
	}

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		log.Println("CreateProduct InsertOne error:", err)
		http.Error(w, "Failed to create product", http.StatusInternalServerError)
		return
	}

	go mq.Emit(context.Background(), "product-created", models.Index{
		EntityType: "product", Method: "POST", EntityId: product.ProductID, VendorId: vendorID,
	})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"product": product,
	})
}

// GetVendorProducts lists the vendor's products, newest first.
func GetVendorProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendorID := utils.GetUserIDFromContext(r.Context())
	if vendorID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	opts := utils.ParseQueryOptions(r)
	findOpts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64((opts.Page - 1) * opts.Limit)).
		SetLimit(int64(opts.Limit))

	filter := bson.M{"vendorid": vendorID}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}

	cursor, err := db.ProductCollection.Find(ctx, filter, findOpts)
	if err != nil {
		log.Println("GetVendorProducts Find error:", err)
		http.Error(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetVendorProducts cursor.All error:", err)
		http.Error(w, "Error reading product data", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"products": list,
	})
}

// UpdateProduct applies a partial update to a product owned by the
// authenticated vendor. A product under another vendor is reported as
// not found, indistinguishable from one that never existed.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendorID := utils.GetUserIDFromContext(r.Context())
	if vendorID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	productID := ps.ByName("productid")

	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	filter := bson.M{"productid": productID, "vendorid": vendorID}

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, filter).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Println("UpdateProduct FindOne error:", err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}

	if err := ApplyPatch(&product, patch); err != nil {
		respondWithOpError(w, err)
		return
	}

	// Last write wins; concurrent edits from two vendor tabs are not
	// conflict-checked.
	if _, err := db.ProductCollection.ReplaceOne(ctx, filter, product); err != nil {
		log.Println("UpdateProduct ReplaceOne error:", err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}

	go mq.Emit(context.Background(), "product-updated", models.Index{
		EntityType: "product", Method: "PUT", EntityId: productID, VendorId: vendorID,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"product": product,
	})
}

// DeleteProduct hard-deletes a product owned by the authenticated
// vendor. Same uniform not-found rule as update.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendorID := utils.GetUserIDFromContext(r.Context())
	if vendorID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	productID := ps.ByName("productid")

	res := db.ProductCollection.FindOneAndDelete(ctx, bson.M{"productid": productID, "vendorid": vendorID})
	if err := res.Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Println("DeleteProduct FindOneAndDelete error:", err)
		http.Error(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}

	go mq.Emit(context.Background(), "product-deleted", models.Index{
		EntityType: "product", Method: "DELETE", EntityId: productID, VendorId: vendorID,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Product deleted",
	})
}

func respondWithOpError(w http.ResponseWriter, err error) {
	if appErr, ok := apperrors.As(err); ok {
		utils.RespondWithError(w, appErr.StatusCode, appErr.Message)
		return
	}
	http.Error(w, "Operation failed", http.StatusInternalServerError)
}
