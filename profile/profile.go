package profile

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mandi/db"
	"mandi/models"
	"mandi/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetProfile returns the authenticated user's own record.
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Println("GetProfile FindOne error:", err)
		http.Error(w, "Could not retrieve profile", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// UpdateProfile applies the supplied subset of editable fields.
func UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Name    *string `json:"name"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	updates := bson.M{"updated_at": time.Now()}
	if input.Name != nil {
		if *input.Name == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Name cannot be empty")
			return
		}
		updates["name"] = *input.Name
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}

	var user models.User
	err := db.UserCollection.FindOneAndUpdate(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": updates},
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Println("UpdateProfile error:", err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Profile updated", nil)
}
