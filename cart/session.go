package cart

import (
	"math"
	"sync"
)

// CartLine is one priced, quantified entry in a cart. Quantity is fixed
// at construction; downstream math never needs a fallback default.
type CartLine struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// AppliedCoupon is the single coupon active on a session, if any.
type AppliedCoupon struct {
	Code           string  `json:"code"`
	DiscountAmount float64 `json:"discountAmount"`
}

// Bill is the derived pricing breakdown. It is recomputed from the
// session on every call and never stored.
type Bill struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Discount    float64 `json:"discount"`
	GST         float64 `json:"gst"`
	Total       float64 `json:"total"`
}

const (
	freeDeliveryThreshold = 200
	deliveryCharge        = 30
	gstRate               = 0.05
)

// Session owns one customer's cart state. All mutation goes through its
// methods; the zero coupon state means "no coupon applied".
type Session struct {
	mu              sync.Mutex
	lines           []CartLine
	coupon          *AppliedCoupon
	literalDiscount bool
}

// Option configures a Session at construction.
type Option func(*Session)

// WithLiteralDiscount disables clamping of the coupon discount to the
// subtotal. With it, a discount larger than the subtotal drives GST and
// total negative, matching the storefront's literal arithmetic.
func WithLiteralDiscount() Option {
	return func(s *Session) { s.literalDiscount = true }
}

func NewSession(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddItem puts one unit of the item into the cart. A line already
// holding the same itemId gains quantity 1 instead of a duplicate row.
func (s *Session) AddItem(itemID, name string, unitPrice float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, CartLine{
		ItemID:    itemID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// RemoveItem drops the line at index. An out-of-range index is ignored;
// the UI derives indices from the same collection it renders.
func (s *Session) RemoveItem(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(index)
}

func (s *Session) removeLocked(index int) {
	if index < 0 || index >= len(s.lines) {
		return
	}
	s.lines = append(s.lines[:index], s.lines[index+1:]...)
}

// UpdateQuantity sets the quantity at index. Zero removes the line;
// negative values are clamped to zero and behave the same, keeping the
// subtotal non-negative.
func (s *Session) UpdateQuantity(index, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.lines) {
		return
	}
	if quantity <= 0 {
		s.removeLocked(index)
		return
	}
	s.lines[index].Quantity = quantity
}

// RemoveCoupon clears any applied coupon. No-op when none is set.
func (s *Session) RemoveCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = nil
}

// Lines returns a copy of the current cart lines for rendering.
func (s *Session) Lines() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Coupon returns the applied coupon, or nil.
func (s *Session) Coupon() *AppliedCoupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.coupon == nil {
		return nil
	}
	c := *s.coupon
	return &c
}

// Empty reports whether the cart holds no lines.
func (s *Session) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// Count returns the number of distinct lines in the cart.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Bill derives the pricing breakdown from the current state. Delivery
// is free at subtotal 200 and above, and on an empty cart. GST is 5% of
// the discounted subtotal, rounded to the whole rupee.
func (s *Session) Bill() Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subtotal float64
	for _, l := range s.lines {
		subtotal += l.UnitPrice * float64(l.Quantity)
	}

	var deliveryFee float64
	if subtotal > 0 && subtotal < freeDeliveryThreshold {
		deliveryFee = deliveryCharge
	}

	var discount float64
	if s.coupon != nil {
		discount = s.coupon.DiscountAmount
		if !s.literalDiscount && discount > subtotal {
			discount = subtotal
		}
	}

	var gst float64
	if subtotal > 0 {
		gst = math.Round((subtotal - discount) * gstRate)
	}

	return Bill{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Discount:    discount,
		GST:         gst,
		Total:       subtotal - discount + deliveryFee + gst,
	}
}
