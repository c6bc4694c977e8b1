package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesSameItem(t *testing.T) {
	s := NewSession()

	s.AddItem("p1", "Tomatoes", 40)
	s.AddItem("p2", "Onions", 30)
	s.AddItem("p1", "Tomatoes", 40)

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "p1", lines[0].ItemID)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 2, s.Count())
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	s := NewSession()
	s.AddItem("p1", "Tomatoes", 40)
	s.AddItem("p2", "Onions", 30)

	s.UpdateQuantity(0, 0)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ItemID)
}

func TestUpdateQuantityNegativeRemovesLine(t *testing.T) {
	s := NewSession()
	s.AddItem("p1", "Tomatoes", 40)

	s.UpdateQuantity(0, -3)

	assert.True(t, s.Empty())
}

func TestUpdateQuantitySetsQuantity(t *testing.T) {
	s := NewSession()
	s.AddItem("p1", "Tomatoes", 40)

	s.UpdateQuantity(0, 5)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 200.0, s.Bill().Subtotal)
}

func TestRemoveItemOutOfRangeIsNoop(t *testing.T) {
	s := NewSession()
	s.AddItem("p1", "Tomatoes", 40)

	s.RemoveItem(-1)
	s.RemoveItem(5)
	s.UpdateQuantity(7, 2)

	assert.Equal(t, 1, s.Count())
}

func TestBillEmptyCart(t *testing.T) {
	s := NewSession()

	bill := s.Bill()

	assert.Equal(t, 0.0, bill.Subtotal)
	assert.Equal(t, 0.0, bill.DeliveryFee)
	assert.Equal(t, 0.0, bill.GST)
	assert.Equal(t, 0.0, bill.Total)
}

func TestBillDeliveryFeeBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		subtotal float64
		fee      float64
	}{
		{"below threshold", 199, 30},
		{"at threshold", 200, 0},
		{"above threshold", 201, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession()
			s.AddItem("p1", "Item", tc.subtotal)

			assert.Equal(t, tc.fee, s.Bill().DeliveryFee)
		})
	}
}

func TestBillLargeOrder(t *testing.T) {
	s := NewSession()
	s.AddItem("p1", "Basmati Rice", 120)
	s.AddItem("p2", "Ghee", 450)

	bill := s.Bill()

	assert.Equal(t, 570.0, bill.Subtotal)
	assert.Equal(t, 0.0, bill.DeliveryFee)
	assert.Equal(t, 0.0, bill.Discount)
	assert.Equal(t, 29.0, bill.GST)
	assert.Equal(t, 599.0, bill.Total)
}

func TestBillSmallOrderWithCoupon(t *testing.T) {
	s := NewSession()
	s.AddItem("p1", "Paneer", 100)
	require.NoError(t, s.ApplyCoupon("WELCOME10"))

	bill := s.Bill()

	assert.Equal(t, 100.0, bill.Subtotal)
	assert.Equal(t, 10.0, bill.Discount)
	assert.Equal(t, 30.0, bill.DeliveryFee)
	assert.Equal(t, 5.0, bill.GST)
	assert.Equal(t, 125.0, bill.Total)
}

func TestBillIsPure(t *testing.T) {
	s := NewSession()
	s.AddItem("p1", "Paneer", 100)
	require.NoError(t, s.ApplyCoupon("SAVE20"))

	first := s.Bill()
	second := s.Bill()

	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.Count())
}

func TestBillClampsDiscountToSubtotal(t *testing.T) {
	s := NewSession()
	s.AddItem("p1", "Chillies", 20)
	require.NoError(t, s.ApplyCoupon("FIRST50"))

	bill := s.Bill()

	assert.Equal(t, 20.0, bill.Discount)
	assert.Equal(t, 0.0, bill.GST)
	assert.Equal(t, 30.0, bill.Total)
}

func TestBillLiteralDiscountGoesNegative(t *testing.T) {
	s := NewSession(WithLiteralDiscount())
	s.AddItem("p1", "Chillies", 20)
	require.NoError(t, s.ApplyCoupon("FIRST50"))

	bill := s.Bill()

	assert.Equal(t, 50.0, bill.Discount)
	assert.Equal(t, -2.0, bill.GST)
	assert.Equal(t, -2.0, bill.Total)
}
