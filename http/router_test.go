package http_test

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	httpLayer "insurance-agent/http"
)

var _ = Describe("router", func() {
	var router http.Handler

	BeforeEach(func() {
		router = newTestRouter()
	})

	It("answers the base endpoint with a fixed text", func() {
		w := do(router, http.MethodGet, "/", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal(httpLayer.BaseEndpointMessage))
	})

	It("reports health", func() {
		w := do(router, http.MethodGet, "/healthz", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)).To(Equal(map[string]any{"status": "ok"}))
	})

	It("exposes prometheus metrics", func() {
		do(router, http.MethodPost, "/api/v1/risk-rating", `{"claim_history":""}`)

		w := do(router, http.MethodGet, "/metrics", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("insurance_agent_validation_failures_total"))
	})

	It("generates a request id when none is sent", func() {
		w := do(router, http.MethodGet, "/healthz", "")
		Expect(w.Header().Get(httpLayer.RequestIDHeader)).ToNot(BeEmpty())
	})

	It("echoes the caller's request id", func() {
		req, err := http.NewRequest(http.MethodGet, "/healthz", nil)
		Expect(err).ToNot(HaveOccurred())
		req.Header.Set(httpLayer.RequestIDHeader, "abc-123")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Header().Get(httpLayer.RequestIDHeader)).To(Equal("abc-123"))
	})

	It("returns 404 for unknown paths", func() {
		w := do(router, http.MethodGet, "/route3", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
