package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"insurance-agent/domain"
	"insurance-agent/metrics"
	"insurance-agent/repository"
)

// RiskService turns a free-text claim history into a risk rating between
// MinRiskRating and MaxRiskRating. Matchers are read-only after construction.
type RiskService struct {
	matchers []keywordMatcher
	cache    repository.CacheRepository
}

func NewRiskService(rules []KeywordRule, cache repository.CacheRepository) (*RiskService, error) {
	matchers, err := compileKeywordRules(rules)
	if err != nil {
		return nil, err
	}
	return &RiskService{matchers: matchers, cache: cache}, nil
}

func (s *RiskService) RateClaimHistory(
	ctx context.Context,
	input domain.RiskRatingInput,
) (domain.RiskRatingResult, error) {

	text, verr := validateClaimHistory(input.ClaimHistory)
	if verr != nil {
		metrics.IncreaseValidationFailureMetric(string(verr.Kind))
		return domain.RiskRatingResult{}, verr
	}

	key := repository.CacheKey(repository.NamespaceRiskRating, text)
	if cached, ok := cachedLookup(ctx, s.cache, repository.NamespaceRiskRating, key); ok {
		if rating, err := strconv.Atoi(cached); err == nil {
			metrics.IncreaseRiskRatingMetric(rating)
			return domain.RiskRatingResult{RiskRating: rating}, nil
		}
	}

	counts := s.KeywordCounts(text)
	total := 0
	for _, c := range counts {
		total += c
	}
	rating := ClampRating(total)
	zap.S().Named("risk").Debugw("rated claim history", "keyword_counts", counts, "risk_rating", rating)
	cachedStore(ctx, s.cache, repository.NamespaceRiskRating, key, strconv.Itoa(rating))
	metrics.IncreaseRiskRatingMetric(rating)

	return domain.RiskRatingResult{RiskRating: rating}, nil
}

// ComputeRiskRating rates text without touching the cache.
func (s *RiskService) ComputeRiskRating(text any) (int, error) {
	valid, verr := validateClaimHistory(text)
	if verr != nil {
		return 0, verr
	}
	return ClampRating(s.CountKeywords(valid)), nil
}

// CountKeywords sums the non-overlapping matches of every rule.
func (s *RiskService) CountKeywords(text string) int {
	count := 0
	for _, m := range s.matchers {
		count += len(m.re.FindAllStringIndex(text, -1))
	}
	return count
}

// KeywordCounts reports matches per rule name.
func (s *RiskService) KeywordCounts(text string) map[string]int {
	counts := make(map[string]int, len(s.matchers))
	for _, m := range s.matchers {
		counts[m.name] += len(m.re.FindAllStringIndex(text, -1))
	}
	return counts
}

func ClampRating(count int) int {
	return min(MaxRiskRating, max(MinRiskRating, count))
}

func validateClaimHistory(v any) (string, *ValidationError) {
	text, ok := v.(string)
	if !ok || strings.TrimSpace(text) == "" {
		return "", newValidationError(KindInvalidInput)
	}
	return text, nil
}
