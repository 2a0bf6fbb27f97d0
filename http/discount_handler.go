package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"insurance-agent/domain"
	"insurance-agent/service"
)

type DiscountCalculator interface {
	CalculateDiscount(age, experience int) (int, error)
}

type DiscountHandler struct {
	service  DiscountCalculator
	validate *validator.Validate
}

func NewDiscountHandler(service DiscountCalculator) *DiscountHandler {
	return &DiscountHandler{service: service, validate: validator.New()}
}

// CalculateDiscount answers 422 when the body does not carry two integers and
// 400 when the values break a business rule.
func (h *DiscountHandler) CalculateDiscount(w http.ResponseWriter, r *http.Request) {
	var input domain.DiscountInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "age and experience must be integers")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "age and experience are required")
		return
	}

	rate, err := h.service.CalculateDiscount(*input.Age, *input.Experience)
	if err != nil {
		if verr, ok := service.AsValidationError(err); ok {
			writeError(w, r, http.StatusBadRequest, verr.Message)
			return
		}
		zap.S().Named("discount").Errorw("calculating discount", "error", err)
		writeError(w, r, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	writeJSON(w, r, http.StatusOK, domain.DiscountResult{DiscountRate: rate})
}
