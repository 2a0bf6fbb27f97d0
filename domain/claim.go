package domain

type RiskRatingInput struct {
	ClaimHistory any `json:"claim_history"`
}

type RiskRatingResult struct {
	RiskRating int `json:"risk_rating"`
}
