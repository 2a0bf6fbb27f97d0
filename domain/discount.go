package domain

// DiscountInput uses pointers so a missing field is distinguishable from zero.
type DiscountInput struct {
	Age        *int `json:"age" validate:"required"`
	Experience *int `json:"experience" validate:"required"`
}

type DiscountResult struct {
	DiscountRate int `json:"discount_rate"`
}
