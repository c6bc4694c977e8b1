package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mandi/globals"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedRequest(method, target, body, userID string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), globals.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestGetCartRequiresAuth(t *testing.T) {
	rr := httptest.NewRecorder()
	GetCart(rr, httptest.NewRequest("GET", "/api/cart", nil), nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAddItemAndGetCart(t *testing.T) {
	userID := "u-handler-add"
	defer Sessions.Drop(userID)

	rr := httptest.NewRecorder()
	AddItem(rr, authedRequest("POST", "/api/cart/items",
		`{"itemId":"p1","name":"Tomatoes","unitPrice":40}`, userID), nil)

	require.Equal(t, http.StatusCreated, rr.Code)

	var payload struct {
		Items []CartLine `json:"items"`
		Bill  Bill       `json:"bill"`
		Count int        `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	require.Len(t, payload.Items, 1)
	assert.Equal(t, 1, payload.Count)
	assert.Equal(t, 40.0, payload.Bill.Subtotal)
	assert.Equal(t, 30.0, payload.Bill.DeliveryFee)
}

func TestAddItemRejectsMissingFields(t *testing.T) {
	userID := "u-handler-bad"
	defer Sessions.Drop(userID)

	rr := httptest.NewRecorder()
	AddItem(rr, authedRequest("POST", "/api/cart/items",
		`{"itemId":"","name":"Tomatoes","unitPrice":40}`, userID), nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.True(t, Sessions.Get(userID).Empty())
}

func TestUpdateQuantityZeroRemovesViaHandler(t *testing.T) {
	userID := "u-handler-qty"
	defer Sessions.Drop(userID)
	Sessions.Get(userID).AddItem("p1", "Tomatoes", 40)

	rr := httptest.NewRecorder()
	UpdateQuantity(rr, authedRequest("PUT", "/api/cart/items/0",
		`{"quantity":0}`, userID),
		httprouter.Params{{Key: "index", Value: "0"}})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, Sessions.Get(userID).Empty())
}

func TestApplyCouponHandlerInvalidCode(t *testing.T) {
	userID := "u-handler-coupon"
	defer Sessions.Drop(userID)
	Sessions.Get(userID).AddItem("p1", "Tomatoes", 40)

	rr := httptest.NewRecorder()
	ApplyCouponHandler(rr, authedRequest("POST", "/api/cart/coupon",
		`{"code":"NOPE"}`, userID), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid coupon code")
	assert.Nil(t, Sessions.Get(userID).Coupon())
}

func TestRemoveCouponHandler(t *testing.T) {
	userID := "u-handler-rmcoupon"
	defer Sessions.Drop(userID)
	s := Sessions.Get(userID)
	s.AddItem("p1", "Tomatoes", 40)
	require.NoError(t, s.ApplyCoupon("SAVE20"))

	rr := httptest.NewRecorder()
	RemoveCouponHandler(rr, authedRequest("DELETE", "/api/cart/coupon", "", userID), nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, Sessions.Get(userID).Coupon())
}
