package domain

// Price is an optional rupiah amount for one table cell. Source tables mark
// gaps with a "-" token, and a genuine zero price must stay distinguishable
// from "no data", so validity is tracked explicitly instead of overloading
// the numeric value.
type Price struct {
	Rupiah int64 `json:"rupiah"`
	Valid  bool  `json:"valid"`
}

// NewPrice returns a valid price carrying the given amount.
func NewPrice(rupiah int64) Price {
	return Price{Rupiah: rupiah, Valid: true}
}

// MissingPrice returns the marker for cells without a usable value.
func MissingPrice() Price {
	return Price{}
}

// Int64 returns the amount and whether the price carries one.
func (p Price) Int64() (int64, bool) {
	return p.Rupiah, p.Valid
}

// IsMissing reports whether the cell carried no usable value.
func (p Price) IsMissing() bool {
	return !p.Valid
}
