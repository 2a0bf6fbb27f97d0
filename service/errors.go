package service

import "github.com/pkg/errors"

// ErrorKind classifies a client-caused failure.
type ErrorKind string

const (
	KindEmptyModel          ErrorKind = "EMPTY_MODEL"
	KindMissingYear         ErrorKind = "MISSING_YEAR"
	KindNegativeYear        ErrorKind = "NEGATIVE_YEAR"
	KindYearNotNumber       ErrorKind = "YEAR_NOT_NUMBER"
	KindModelNotString      ErrorKind = "MODEL_NOT_STRING"
	KindYearOutOfRange      ErrorKind = "YEAR_OUT_OF_RANGE"
	KindInvalidInput        ErrorKind = "INVALID_INPUT"
	KindNegativeValue       ErrorKind = "NEGATIVE_VALUE"
	KindExperienceExceedAge ErrorKind = "EXPERIENCE_EXCEEDS_AGE"
)

var messages = map[ErrorKind]string{
	KindEmptyModel:          "model must not be empty",
	KindMissingYear:         "year is required",
	KindNegativeYear:        "year must not be negative",
	KindYearNotNumber:       "year must be a whole number",
	KindModelNotString:      "model must be a string",
	KindYearOutOfRange:      "year is too large",
	KindInvalidInput:        "claim_history must be a non-empty string",
	KindNegativeValue:       "Invalid input: negative values are not allowed",
	KindExperienceExceedAge: "Invalid input: experience cannot exceed age",
}

// ValidationError is returned by the calculators when the input is rejected.
// Any other error coming out of a service is an internal failure.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(kind ErrorKind) *ValidationError {
	return &ValidationError{Kind: kind, Message: messages[kind]}
}

// AsValidationError reports whether err wraps a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
