package vendors

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
)

// GetProfile returns the authenticated vendor's store record.
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendorID := utils.GetUserIDFromContext(r.Context())
	if vendorID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var vendor models.User
	err := db.UserCollection.FindOne(ctx, bson.M{
		"userid": vendorID, "role": models.RoleVendor,
	}).Decode(&vendor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Vendor not found")
			return
		}
		log.Println("GetProfile FindOne error:", err)
		http.Error(w, "Could not retrieve profile", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, vendor)
}

// UpdateProfile applies the supplied subset of store fields, including
// the store-open toggle. Absent fields keep their stored value.
func UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendorID := utils.GetUserIDFromContext(r.Context())
	if vendorID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Name       *string `json:"name"`
		Phone      *string `json:"phone"`
		Address    *string `json:"address"`
		StoreName  *string `json:"storeName"`
		StoreImage *string `json:"storeImage"`
		StoreOpen  *bool   `json:"storeOpen"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	updates := bson.M{"updated_at": time.Now()}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.StoreName != nil {
		if *input.StoreName == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Store name cannot be empty")
			return
		}
		updates["store_name"] = *input.StoreName
	}
	if input.StoreImage != nil {
		updates["store_image"] = *input.StoreImage
	}
	if input.StoreOpen != nil {
		updates["store_open"] = *input.StoreOpen
	}

	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": vendorID, "role": models.RoleVendor},
		bson.M{"$set": updates},
	)
	if err != nil {
		log.Println("UpdateProfile error:", err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Vendor not found")
		return
	}

	// Storefront caches show store name and open state.
	rdx.RdxDel("shops")
	rdx.RdxDel("shop:" + vendorID)

	utils.SendResponse(w, http.StatusOK, nil, "Profile updated", nil)
}
