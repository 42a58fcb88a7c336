package api

import (
	"fmt"
	"net/http"

	"surveybot/internal/middleware"

	"github.com/gorilla/mux"
)

// NewRouter wires the endpoints consumed by the bot
func NewRouter(h *Handler, adminHeader string) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)

	sub := r.PathPrefix("/api").Subrouter()
	sub.HandleFunc("/responses", h.SubmitResponse).Methods(http.MethodPost)
	sub.HandleFunc("/admin/login", h.Login).Methods(http.MethodPost)

	adminAuth := middleware.AdminAuth(h.auth, adminHeader, h.logger)
	sub.Handle("/admin/responses", adminAuth(http.HandlerFunc(h.ListResponses))).Methods(http.MethodGet)

	return r
}
