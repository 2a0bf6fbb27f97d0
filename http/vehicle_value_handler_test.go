package http_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	httpLayer "insurance-agent/http"
)

var _ = Describe("vehicle value handler", func() {
	var router http.Handler

	BeforeEach(func() {
		router = newTestRouter()
	})

	DescribeTable("suggests a value",
		func(path, body, expected string) {
			w := do(router, http.MethodPost, path, body)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))
			Expect(decode(w)).To(Equal(map[string]any{"suggestedValue": expected}))
		},
		Entry("Civic 2014", "/api/v1/vehicle-value", `{"model":"Civic","year":2014}`, "6614"),
		Entry("Hilux 2025", "/api/v1/vehicle-value", `{"model":"Hilux","year":2025}`, "9425"),
		Entry("digits only", "/api/v1/vehicle-value", `{"model":"911","year":2025}`, "2025"),
		Entry("mixed digits", "/api/v1/vehicle-value", `{"model":"X5","year":2023}`, "4423"),
		Entry("spaces ignored", "/api/v1/vehicle-value", `{"model":"Grand Cherokee","year":2018}`, "13418"),
		Entry("symbols ignored", "/api/v1/vehicle-value", `{"model":"F@St BO!","year":1946}`, "8146"),
		Entry("legacy path", "/route1", `{"model":"Civic","year":2014}`, "6614"),
		Entry("year in exponent form", "/api/v1/vehicle-value", `{"model":"Civic","year":2.014e3}`, "6614"),
		Entry("trailing whitespace", "/api/v1/vehicle-value", "{\"model\":\"Civic\",\"year\":2014}\n", "6614"),
	)

	DescribeTable("rejects invalid input with 400",
		func(body, message string) {
			w := do(router, http.MethodPost, "/api/v1/vehicle-value", body)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)).To(HaveKeyWithValue("error", message))
		},
		Entry("empty model", `{"model":"","year":1996}`, "model must not be empty"),
		Entry("missing year", `{"model":"Civic"}`, "year is required"),
		Entry("null year", `{"model":"Civic","year":null}`, "year is required"),
		Entry("negative year", `{"model":"Hilux","year":-2018}`, "year must not be negative"),
		Entry("year as text", `{"model":"Hilux","year":"Twenty Twenty"}`, "year must be a whole number"),
		Entry("fractional year", `{"model":"Hilux","year":2020.5}`, "year must be a whole number"),
		Entry("model as number", `{"model":1996,"year":2020}`, "model must be a string"),
		Entry("empty body", ``, "year is required"),
		Entry("malformed body", `{invalid-json}`, "invalid request body"),
		Entry("trailing data", `{"model":"Civic","year":2014} junk`, "invalid request body"),
		Entry("second object", `{"model":"Civic","year":2014}{}`, "invalid request body"),
		Entry("value too large", `{"model":"Civic","year":9223372036854775000}`, "year is too large"),
		Entry("large year in exponent form", `{"model":"Civic","year":1e20}`, "year is too large"),
	)

	It("answers GET on the legacy mount with a confirmation", func() {
		w := do(router, http.MethodGet, "/route1", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal("Route #1 hit!"))
	})

	It("rejects other methods", func() {
		w := do(router, http.MethodGet, "/api/v1/vehicle-value", "")
		Expect(w.Code).To(Equal(http.StatusMethodNotAllowed))
	})

	It("maps unexpected failures to 500 without leaking detail", func() {
		handler := httpLayer.NewRouter(httpLayer.Handlers{
			VehicleValue: httpLayer.NewVehicleValueHandler(failingValuer{}),
			RiskRating:   httpLayer.NewRiskRatingHandler(failingRater{}),
			Discount:     httpLayer.NewDiscountHandler(failingDiscounter{}),
		}, zap.NewNop())

		w := do(handler, http.MethodPost, "/api/v1/vehicle-value", `{"model":"Civic","year":2014}`)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(decode(w)).To(Equal(map[string]any{"error": "internal error"}))
	})
})
