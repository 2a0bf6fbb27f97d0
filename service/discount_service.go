package service

import "insurance-agent/metrics"

type DiscountService struct{}

func NewDiscountService() *DiscountService {
	return &DiscountService{}
}

// CalculateDiscount returns the driver discount percentage.
func (s *DiscountService) CalculateDiscount(age, experience int) (int, error) {
	rate, verr := ComputeDiscount(age, experience)
	if verr != nil {
		metrics.IncreaseValidationFailureMetric(string(verr.Kind))
		return 0, verr
	}
	return rate, nil
}

// ComputeDiscount adds DiscountStep for each threshold reached and caps the
// total at MaxDiscountRate.
func ComputeDiscount(age, experience int) (int, *ValidationError) {
	if age < 0 || experience < 0 {
		return 0, newValidationError(KindNegativeValue)
	}
	if experience > age {
		return 0, newValidationError(KindExperienceExceedAge)
	}

	discount := 0
	if age >= AgeThreshold {
		discount += DiscountStep
	}
	if experience >= ExperienceThreshold {
		discount += DiscountStep
	}
	if age >= SeniorAgeThreshold {
		discount += DiscountStep
	}
	if experience >= SeniorExperienceThreshold {
		discount += DiscountStep
	}

	return min(discount, MaxDiscountRate), nil
}
