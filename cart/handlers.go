package cart

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"mandi/utils"

	"github.com/julienschmidt/httprouter"
)

// Sessions is the process-wide cart store. Auth logout drops a
// customer's session through it.
var Sessions = NewStore()

func sessionPayload(s *Session) map[string]any {
	return map[string]any{
		"items":         s.Lines(),
		"appliedCoupon": s.Coupon(),
		"bill":          s.Bill(),
		"count":         s.Count(),
	}
}

// GetCart returns the cart lines, applied coupon and derived bill.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sessionPayload(Sessions.Get(userID)))
}

// AddItem adds one unit of an item, merging into an existing line.
func AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		ItemID    string  `json:"itemId"`
		Name      string  `json:"name"`
		UnitPrice float64 `json:"unitPrice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Println("AddItem decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if input.ItemID == "" || input.Name == "" || input.UnitPrice < 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	s := Sessions.Get(userID)
	s.AddItem(input.ItemID, input.Name, input.UnitPrice)
	utils.RespondWithJSON(w, http.StatusCreated, sessionPayload(s))
}

// UpdateQuantity sets the quantity of the line at :index. Quantity 0
// removes the line.
func UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	index, err := strconv.Atoi(ps.ByName("index"))
	if err != nil {
		http.Error(w, "Invalid line index", http.StatusBadRequest)
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	s := Sessions.Get(userID)
	s.UpdateQuantity(index, input.Quantity)
	utils.RespondWithJSON(w, http.StatusOK, sessionPayload(s))
}

// RemoveItem drops the line at :index.
func RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	index, err := strconv.Atoi(ps.ByName("index"))
	if err != nil {
		http.Error(w, "Invalid line index", http.StatusBadRequest)
		return
	}

	s := Sessions.Get(userID)
	s.RemoveItem(index)
	utils.RespondWithJSON(w, http.StatusOK, sessionPayload(s))
}

// ApplyCouponHandler applies a coupon code to the cart.
func ApplyCouponHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	s := Sessions.Get(userID)
	if err := s.ApplyCoupon(input.Code); err != nil {
		var invalid *InvalidCouponError
		if errors.As(err, &invalid) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid coupon code")
			return
		}
		http.Error(w, "Failed to apply coupon", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sessionPayload(s))
}

// RemoveCouponHandler clears the applied coupon, if any.
func RemoveCouponHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	s := Sessions.Get(userID)
	s.RemoveCoupon()
	utils.RespondWithJSON(w, http.StatusOK, sessionPayload(s))
}
