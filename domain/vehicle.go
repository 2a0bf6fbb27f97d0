package domain

// VehicleValueInput is decoded straight from the request body. Fields stay
// untyped so validation can tell a missing year from a year of the wrong type.
type VehicleValueInput struct {
	Model any `json:"model"`
	Year  any `json:"year"`
}

type VehicleValueResult struct {
	SuggestedValue string `json:"suggestedValue"`
}
