package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"surveybot/internal/domain"
	"surveybot/internal/middleware"
	"surveybot/internal/service"

	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies on the public endpoints
const maxBodyBytes = 16 << 10

// ResponseStore stores and lists survey responses
type ResponseStore interface {
	SaveResponse(record domain.SurveyRecord) error
	ListResponses() ([]domain.Response, error)
}

// Handler serves the submit, login and list endpoints
type Handler struct {
	responses ResponseStore
	auth      middleware.PasswordChecker
	logger    *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(responses ResponseStore, auth middleware.PasswordChecker, logger *zap.Logger) *Handler {
	return &Handler{
		responses: responses,
		auth:      auth,
		logger:    logger,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type listResponse struct {
	Responses []domain.Response `json:"responses"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// SubmitResponse stores a survey record
func (h *Handler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	var record domain.SurveyRecord
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&record); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if err := h.responses.SaveResponse(record); err != nil {
		if errors.Is(err, service.ErrInvalidRecord) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("Failed to save response", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save response"})
		return
	}

	h.logger.Info("Response saved", zap.String("city", record.City))
	w.WriteHeader(http.StatusCreated)
}

// Login checks the admin password
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if !h.auth.CheckPassword(req.Password) {
		h.logger.Warn("Invalid admin password", zap.String("remote_addr", r.RemoteAddr))
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid password"})
		return
	}

	w.WriteHeader(http.StatusOK)
}

// ListResponses returns all stored responses. The route is guarded by AdminAuth.
func (h *Handler) ListResponses(w http.ResponseWriter, r *http.Request) {
	responses, err := h.responses.ListResponses()
	if err != nil {
		h.logger.Error("Failed to list responses", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list responses"})
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Responses: responses})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
