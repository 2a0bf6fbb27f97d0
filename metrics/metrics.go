package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	insuranceAgent = "insurance_agent"

	validationFailuresTotal = "validation_failures_total"
	riskRatingsTotal        = "risk_ratings_total"
	cacheLookupsTotal       = "cache_lookups_total"

	// Labels
	kindLabel      = "kind"
	ratingLabel    = "rating"
	namespaceLabel = "namespace"
	resultLabel    = "result"
)

// Cache lookup outcomes.
const (
	CacheResultHit   = "hit"
	CacheResultMiss  = "miss"
	CacheResultError = "error"
)

var validationFailuresMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: insuranceAgent,
		Name:      validationFailuresTotal,
		Help:      "number of rejected requests partitioned by validation error kind",
	},
	[]string{kindLabel},
)

var riskRatingsMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: insuranceAgent,
		Name:      riskRatingsTotal,
		Help:      "number of risk ratings issued partitioned by rating",
	},
	[]string{ratingLabel},
)

var cacheLookupsMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: insuranceAgent,
		Name:      cacheLookupsTotal,
		Help:      "number of result cache lookups partitioned by namespace and outcome",
	},
	[]string{namespaceLabel, resultLabel},
)

func IncreaseValidationFailureMetric(kind string) {
	validationFailuresMetric.With(prometheus.Labels{kindLabel: kind}).Inc()
}

func IncreaseRiskRatingMetric(rating int) {
	riskRatingsMetric.With(prometheus.Labels{ratingLabel: strconv.Itoa(rating)}).Inc()
}

func IncreaseCacheLookupMetric(namespace, result string) {
	cacheLookupsMetric.With(prometheus.Labels{
		namespaceLabel: namespace,
		resultLabel:    result,
	}).Inc()
}

// Handler serves every collector registered on the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(validationFailuresMetric)
	prometheus.MustRegister(riskRatingsMetric)
	prometheus.MustRegister(cacheLookupsMetric)
}
