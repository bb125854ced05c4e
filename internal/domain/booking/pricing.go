package booking

import "fmt"

// ServiceFeePercent is the flat fee applied by the detail-page preview.
const ServiceFeePercent = 10

// Quote is the coupon-aware price shown on the booking details step and
// handed to checkout. All amounts are integer cents.
type Quote struct {
	SubtotalCents int64
	DiscountCents int64
	TotalCents    int64
}

// ComputeQuote composes subtotal, discount and total. The discount is the
// absolute amount resolved by the coupon service; it is applied as-is and can
// never push the total below zero.
func ComputeQuote(unitPriceCents int64, quantity int, discountCents int64) Quote {
	subtotal := unitPriceCents * int64(quantity)
	total := subtotal - discountCents
	if total < 0 {
		total = 0
	}
	return Quote{
		SubtotalCents: subtotal,
		DiscountCents: discountCents,
		TotalCents:    total,
	}
}

// FeeInclusiveTotalCents is the event detail page total: subtotal plus a flat
// 10% service fee. It precedes date and coupon selection in the flow and
// deliberately shares nothing with ComputeQuote: the fee and the discount
// never interact.
func FeeInclusiveTotalCents(unitPriceCents int64, quantity int) int64 {
	subtotal := unitPriceCents * int64(quantity)
	return subtotal + subtotal*ServiceFeePercent/100
}

// FormatCents renders an amount with fixed two-decimal precision for display.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
