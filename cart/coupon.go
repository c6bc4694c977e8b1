package cart

import (
	"fmt"
	"strings"
)

// Static coupon table: code to flat rupee discount. Moves to config if
// marketing ever needs to edit it without a deploy.
var coupons = map[string]float64{
	"FIRST50":   50,
	"SAVE20":    20,
	"WELCOME10": 10,
}

// InvalidCouponError signals an unrecognized coupon code. The caller
// decides presentation; cart state is untouched.
type InvalidCouponError struct {
	Code string
}

func (e *InvalidCouponError) Error() string {
	return fmt.Sprintf("invalid coupon code: %s", e.Code)
}

// ApplyCoupon matches code against the coupon table, case-insensitively.
// A hit replaces any previously applied coupon; a miss returns
// *InvalidCouponError and leaves the session unchanged.
func (s *Session) ApplyCoupon(code string) error {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	amount, ok := coupons[normalized]
	if !ok {
		return &InvalidCouponError{Code: normalized}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = &AppliedCoupon{Code: normalized, DiscountAmount: amount}
	return nil
}
