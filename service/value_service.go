package service

import (
	"context"
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"insurance-agent/domain"
	"insurance-agent/metrics"
	"insurance-agent/repository"
)

type ValueService struct {
	cache repository.CacheRepository
}

func NewValueService(cache repository.CacheRepository) *ValueService {
	return &ValueService{cache: cache}
}

// CalculateValue validates the input and returns the suggested vehicle value.
func (s *ValueService) CalculateValue(
	ctx context.Context,
	input domain.VehicleValueInput,
) (domain.VehicleValueResult, error) {

	model, year, verr := ValidateVehicleValueInput(input)
	if verr != nil {
		metrics.IncreaseValidationFailureMetric(string(verr.Kind))
		return domain.VehicleValueResult{}, verr
	}

	yearText := strconv.FormatInt(year, 10)
	key := repository.CacheKey(repository.NamespaceVehicleValue, model, yearText)
	if cached, ok := cachedLookup(ctx, s.cache, repository.NamespaceVehicleValue, key); ok {
		return domain.VehicleValueResult{SuggestedValue: cached}, nil
	}

	computed, _ := ComputeValue(model, year)
	value := strconv.FormatInt(computed, 10)
	cachedStore(ctx, s.cache, repository.NamespaceVehicleValue, key, value)

	return domain.VehicleValueResult{SuggestedValue: value}, nil
}

// ComputeValue returns letterSum*100 + year, where letterSum adds the alphabet
// position (A=1 ... Z=26, case-insensitive) of every ASCII letter in model.
// Any other rune is ignored. ok is false when the result does not fit in an
// int64.
func ComputeValue(model string, year int64) (value int64, ok bool) {
	base := LetterSum(model) * LetterSumMultiplier
	if year > math.MaxInt64-base {
		return 0, false
	}
	return base + year, true
}

func LetterSum(model string) int64 {
	var sum int64
	for i := 0; i < len(model); i++ {
		c := model[i]
		switch {
		case c >= 'A' && c <= 'Z':
			sum += int64(c-'A') + 1
		case c >= 'a' && c <= 'z':
			sum += int64(c-'a') + 1
		}
	}
	return sum
}

type vehicleValueRule func(input domain.VehicleValueInput) *ValidationError

// vehicleValueRules run in order; the first failure wins.
var vehicleValueRules = []vehicleValueRule{
	func(in domain.VehicleValueInput) *ValidationError {
		if s, ok := in.Model.(string); ok && s == "" {
			return newValidationError(KindEmptyModel)
		}
		return nil
	},
	func(in domain.VehicleValueInput) *ValidationError {
		if in.Year == nil {
			return newValidationError(KindMissingYear)
		}
		return nil
	},
	func(in domain.VehicleValueInput) *ValidationError {
		if n, ok := parseNumber(in.Year); ok && n.negative {
			return newValidationError(KindNegativeYear)
		}
		return nil
	},
	func(in domain.VehicleValueInput) *ValidationError {
		if n, ok := parseNumber(in.Year); !ok || !n.whole {
			return newValidationError(KindYearNotNumber)
		}
		return nil
	},
	func(in domain.VehicleValueInput) *ValidationError {
		if _, ok := in.Model.(string); !ok {
			return newValidationError(KindModelNotString)
		}
		return nil
	},
	func(in domain.VehicleValueInput) *ValidationError {
		n, _ := parseNumber(in.Year)
		if !n.inRange {
			return newValidationError(KindYearOutOfRange)
		}
		if _, ok := ComputeValue(in.Model.(string), n.value); !ok {
			return newValidationError(KindYearOutOfRange)
		}
		return nil
	},
}

// ValidateVehicleValueInput runs the validation pipeline and returns the typed
// model and year when every rule passes.
func ValidateVehicleValueInput(input domain.VehicleValueInput) (string, int64, *ValidationError) {
	for _, rule := range vehicleValueRules {
		if verr := rule(input); verr != nil {
			return "", 0, verr
		}
	}
	n, _ := parseNumber(input.Year)
	return input.Model.(string), n.value, nil
}

type number struct {
	value    int64
	whole    bool
	negative bool
	// inRange is set when value holds the exact number.
	inRange bool
}

// parseNumber accepts the numeric shapes produced by encoding/json (with or
// without UseNumber) and by the CLI. ok is false for non-numeric values.
func parseNumber(v any) (number, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return fromInt(i), true
		}
		f, _, err := big.ParseFloat(string(n), 10, 256, big.ToNearestEven)
		if err != nil {
			// Exponents beyond what big.Float holds; a magnitude that large is
			// whole but can never be a usable year.
			return number{whole: true, negative: strings.HasPrefix(string(n), "-")}, true
		}
		return fromBigFloat(f), true
	case float64:
		return fromFloat(n), true
	case float32:
		return fromFloat(float64(n)), true
	case int:
		return fromInt(int64(n)), true
	case int32:
		return fromInt(int64(n)), true
	case int64:
		return fromInt(n), true
	default:
		return number{}, false
	}
}

func fromInt(i int64) number {
	return number{value: i, whole: true, negative: i < 0, inRange: true}
}

func fromFloat(f float64) number {
	if math.IsNaN(f) {
		return number{}
	}
	return fromBigFloat(new(big.Float).SetFloat64(f))
}

func fromBigFloat(f *big.Float) number {
	n := number{negative: f.Sign() < 0}
	if !f.IsInf() && !f.IsInt() {
		return n
	}
	n.whole = true
	if f.IsInf() {
		return n
	}
	if i, acc := f.Int64(); acc == big.Exact {
		n.value = i
		n.inRange = true
	}
	return n
}
