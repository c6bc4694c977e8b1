package vendors

import (
	"context"
	"log"
	"net/http"
	"time"

	"mandi/db"
	"mandi/models"
	"mandi/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Dashboard returns the KPI summary backing the vendor back-office
// landing page.
func Dashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendorID := utils.GetUserIDFromContext(r.Context())
	if vendorID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	total, err := db.ProductCollection.CountDocuments(ctx, bson.M{"vendorid": vendorID})
	if err != nil {
		log.Println("Dashboard count error:", err)
		http.Error(w, "Could not load dashboard", http.StatusInternalServerError)
		return
	}

	outOfStock, err := db.ProductCollection.CountDocuments(ctx, bson.M{
		"vendorid": vendorID, "stock": 0,
	})
	if err != nil {
		log.Println("Dashboard count error:", err)
		http.Error(w, "Could not load dashboard", http.StatusInternalServerError)
		return
	}

	available, err := db.ProductCollection.CountDocuments(ctx, bson.M{
		"vendorid": vendorID, "is_available": true,
	})
	if err != nil {
		log.Println("Dashboard count error:", err)
		http.Error(w, "Could not load dashboard", http.StatusInternalServerError)
		return
	}

	var vendor models.User
	storeOpen := false
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": vendorID}).Decode(&vendor); err == nil {
		storeOpen = vendor.StoreOpen
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"totalProducts": total,
		"available":     available,
		"outOfStock":    outOfStock,
		"storeOpen":     storeOpen,
	})
}
