package http

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"insurance-agent/domain"
	"insurance-agent/service"
)

type RiskRater interface {
	RateClaimHistory(ctx context.Context, input domain.RiskRatingInput) (domain.RiskRatingResult, error)
}

type RiskRatingHandler struct {
	service RiskRater
}

func NewRiskRatingHandler(service RiskRater) *RiskRatingHandler {
	return &RiskRatingHandler{service: service}
}

func (h *RiskRatingHandler) RateClaimHistory(w http.ResponseWriter, r *http.Request) {
	var input domain.RiskRatingInput
	if err := decodeBody(r, &input); err != nil {
		// a body that is not a JSON object carries no claim_history
		input = domain.RiskRatingInput{}
	}

	result, err := h.service.RateClaimHistory(r.Context(), input)
	if err != nil {
		if verr, ok := service.AsValidationError(err); ok {
			writeError(w, r, http.StatusBadRequest, verr.Message)
			return
		}
		zap.S().Named("risk_rating").Errorw("rating claim history", "error", err)
		writeError(w, r, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}
