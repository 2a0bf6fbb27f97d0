package service

const (
	LetterSumMultiplier = 100 // valor sugerido = suma de letras * 100 + año

	MinRiskRating = 1
	MaxRiskRating = 5

	// Tramos de descuento por edad y experiencia
	DiscountStep              = 5
	MaxDiscountRate           = 20
	AgeThreshold              = 25
	SeniorAgeThreshold        = 40
	ExperienceThreshold       = 5
	SeniorExperienceThreshold = 10
)
