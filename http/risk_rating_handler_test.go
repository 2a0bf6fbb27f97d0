package http_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	httpLayer "insurance-agent/http"
)

var _ = Describe("risk rating handler", func() {
	var router http.Handler

	BeforeEach(func() {
		router = newTestRouter()
	})

	DescribeTable("rates a claim history",
		func(path, body string, expected float64) {
			w := do(router, http.MethodPost, path, body)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)).To(Equal(map[string]any{"risk_rating": expected}))
		},
		Entry("sample claim", "/api/v1/risk-rating",
			`{"claim_history":"My only claim was a crash into my house's garage door that left a scratch on my car. There are no other crashes."}`, 3.0),
		Entry("keywords and variants", "/api/v1/risk-rating",
			`{"claim_history":"A crash scratched the door; two crashes later; smashed mirror."}`, 4.0),
		Entry("floor", "/api/v1/risk-rating", `{"claim_history":"Replaced the bumper, no incidents."}`, 1.0),
		Entry("ceiling", "/api/v1/risk-rating", `{"claim_history":"crash crash crash crash crash crash"}`, 5.0),
		Entry("legacy path", "/route2/api/v1/risk-rating", `{"claim_history":"They collided. Multiple collisions after."}`, 2.0),
	)

	DescribeTable("rejects invalid input with 400",
		func(body string) {
			w := do(router, http.MethodPost, "/api/v1/risk-rating", body)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)).To(Equal(map[string]any{"error": "claim_history must be a non-empty string"}))
		},
		Entry("empty", `{"claim_history":""}`),
		Entry("whitespace only", `{"claim_history":"   "}`),
		Entry("missing", `{}`),
		Entry("not a string", `{"claim_history":42}`),
		Entry("not an object", `"crash"`),
		Entry("malformed", `{claim_history`),
		Entry("empty body", ``),
		Entry("trailing data", `{"claim_history":"crash"} junk`),
	)

	It("answers GET on the legacy mount with a confirmation", func() {
		w := do(router, http.MethodGet, "/route2", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal("Route #2 hit!"))
	})

	It("maps unexpected failures to 500", func() {
		handler := httpLayer.NewRouter(httpLayer.Handlers{
			VehicleValue: httpLayer.NewVehicleValueHandler(failingValuer{}),
			RiskRating:   httpLayer.NewRiskRatingHandler(failingRater{}),
			Discount:     httpLayer.NewDiscountHandler(failingDiscounter{}),
		}, zap.NewNop())

		w := do(handler, http.MethodPost, "/api/v1/risk-rating", `{"claim_history":"crash"}`)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(decode(w)).To(Equal(map[string]any{"error": "internal error"}))
	})

	It("recovers from panics with a 500", func() {
		handler := httpLayer.NewRouter(httpLayer.Handlers{
			VehicleValue: httpLayer.NewVehicleValueHandler(failingValuer{}),
			RiskRating:   httpLayer.NewRiskRatingHandler(panickingRater{}),
			Discount:     httpLayer.NewDiscountHandler(failingDiscounter{}),
		}, zap.NewNop())

		w := do(handler, http.MethodPost, "/api/v1/risk-rating", `{"claim_history":"crash"}`)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(decode(w)).To(Equal(map[string]any{"error": "internal error"}))
	})
})
