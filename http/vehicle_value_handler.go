package http

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"insurance-agent/domain"
	"insurance-agent/service"
)

type VehicleValuer interface {
	CalculateValue(ctx context.Context, input domain.VehicleValueInput) (domain.VehicleValueResult, error)
}

type VehicleValueHandler struct {
	service VehicleValuer
}

func NewVehicleValueHandler(service VehicleValuer) *VehicleValueHandler {
	return &VehicleValueHandler{service: service}
}

func (h *VehicleValueHandler) SuggestValue(w http.ResponseWriter, r *http.Request) {
	var input domain.VehicleValueInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.CalculateValue(r.Context(), input)
	if err != nil {
		if verr, ok := service.AsValidationError(err); ok {
			writeError(w, r, http.StatusBadRequest, verr.Message)
			return
		}
		zap.S().Named("vehicle_value").Errorw("calculating vehicle value", "error", err)
		writeError(w, r, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}
