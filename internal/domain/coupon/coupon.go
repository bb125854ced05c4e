package coupon

import (
	"errors"
	"strings"
)

var ErrEmptyCode = errors.New("coupon code cannot be empty")

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed_amount"
)

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountFixed:
		return true
	default:
		return false
	}
}

// Applied is a coupon as resolved by the remote validation service for one
// specific order amount. DiscountCents is authoritative: it is never
// recomputed locally from Type and Value, which are carried for display only.
type Applied struct {
	Code          string
	Name          string
	Description   string
	Type          DiscountType
	Value         float64
	DiscountCents int64
}

// NormalizeCode trims the user-typed code before it is sent for validation.
func NormalizeCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrEmptyCode
	}
	return code, nil
}
