package products

import (
	"context"
	"log"
	"net/http"
	"time"

	"mandi/db"
	"mandi/filemgr"
	"mandi/models"
	"mandi/mq"
	"mandi/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// UploadProductImage accepts a multipart image for a product owned by
// the authenticated vendor and stores it with a thumbnail.
func UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	vendorID := utils.GetUserIDFromContext(r.Context())
	if vendorID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	productID := ps.ByName("productid")

	filter := bson.M{"productid": productID, "vendorid": vendorID}
	if err := db.ProductCollection.FindOne(ctx, filter).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename, err := filemgr.SaveProductImage(file, header, productID)
	if err != nil {
		log.Println("UploadProductImage save error:", err)
		http.Error(w, "Unsupported image type. Only JPG, PNG and WEBP are allowed.", http.StatusUnsupportedMediaType)
		return
	}

	if _, err := db.ProductCollection.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{"image": filename, "updated_at": time.Now()},
	}); err != nil {
		log.Println("UploadProductImage UpdateOne error:", err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}

	go mq.Emit(context.Background(), "product-updated", models.Index{
		EntityType: "product", Method: "PUT", EntityId: productID, VendorId: vendorID,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"image":   filename,
	})
}
