package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreGetReturnsSameSession(t *testing.T) {
	store := NewStore()

	a := store.Get("u1")
	b := store.Get("u1")

	assert.Same(t, a, b)
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	store := NewStore()

	store.Get("u1").AddItem("p1", "Tomatoes", 40)

	assert.True(t, store.Get("u2").Empty())
	assert.False(t, store.Get("u1").Empty())
}

func TestStoreDropClearsSession(t *testing.T) {
	store := NewStore()
	store.Get("u1").AddItem("p1", "Tomatoes", 40)

	store.Drop("u1")

	assert.True(t, store.Get("u1").Empty())
}

func TestStoreOptionsPropagate(t *testing.T) {
	store := NewStore(WithLiteralDiscount())

	s := store.Get("u1")
	s.AddItem("p1", "Chillies", 20)
	assert.NoError(t, s.ApplyCoupon("FIRST50"))

	assert.Equal(t, 50.0, s.Bill().Discount)
}
