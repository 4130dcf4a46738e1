package kernel

import (
	"math"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when a zero-value Price is used.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice")

// Price is a monetary amount expressed in the currency's major unit.
// Amounts are kept exactly as supplied (no rounding) because line items
// snapshot the price a customer saw when ordering.
//
// Example:
//
//	p, err := kernel.NewPrice(3.5)
//	if err != nil {
//	    // negative, NaN or infinite amount
//	}
//	fmt.Println(p.Amount()) // 3.5
type Price struct {
	amount float64
	guard  guard.ConstructorGuard
}

// NewPrice validates amount and wraps it in a Price.
// Zero is a valid price; negative, NaN and infinite amounts are rejected.
func NewPrice(amount float64) (Price, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Price{}, errs.NewValueIsInvalidError("price")
	}
	if amount < 0 {
		return Price{}, errs.NewValueIsOutOfRangeError("price", amount, 0, "+Inf")
	}
	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MustNewPrice is NewPrice for literals known to be valid; it panics otherwise.
func MustNewPrice(amount float64) Price {
	p, err := NewPrice(amount)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate reports whether the price was built through NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the raw amount.
func (p Price) Amount() float64 {
	return p.amount
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}
