package http

import (
	"net/http"

	"github.com/go-chi/render"
)

const BaseEndpointMessage = "Mission-02 base endpoint hit! 🎯"

type HealthResponse struct {
	Status string `json:"status"`
}

func Root(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, BaseEndpointMessage)
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

// confirm answers GET on a route mount with a fixed text.
func confirm(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, message)
	}
}
