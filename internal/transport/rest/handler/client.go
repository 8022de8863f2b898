package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"coachpulse/internal/model"
	"coachpulse/internal/service"
	"coachpulse/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// ClientHandler handles client management endpoints
type ClientHandler struct {
	clientSvc *service.ClientService
	authSvc   *service.AuthService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientSvc *service.ClientService, authSvc *service.AuthService) *ClientHandler {
	return &ClientHandler{
		clientSvc: clientSvc,
		authSvc:   authSvc,
	}
}

// CreateClientRequest is the request body for creating a client
type CreateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Goal  string `json:"goal"`
}

// Create handles POST /v1/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	coachID := middleware.GetCoachID(r.Context())
	if coachID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	client := &model.Client{
		CoachID: coachID,
		Name:    req.Name,
		Email:   req.Email,
		Goal:    req.Goal,
	}

	id, err := h.clientSvc.Create(r.Context(), client)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"clientId": id})
}

// List handles GET /v1/clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	coachID := middleware.GetCoachID(r.Context())
	if coachID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	clients, err := h.clientSvc.GetByCoachID(r.Context(), coachID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"clients": clients})
}

// Get handles GET /v1/clients/{clientId}
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	client, err := h.clientSvc.GetByID(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if client == nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}

	writeJSON(w, http.StatusOK, client)
}

// IssueToken handles POST /v1/clients/{clientId}/token. The coach hands the
// returned token to the client for check-in submissions.
func (h *ClientHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]
	coachID := middleware.GetCoachID(r.Context())
	if coachID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	client, err := h.clientSvc.GetByID(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if client == nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	if client.CoachID != coachID {
		writeError(w, http.StatusForbidden, "client belongs to another coach")
		return
	}

	token, err := h.authSvc.GenerateClientToken(coachID, clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token, "clientId": clientID})
}

// GetThresholds handles GET /v1/clients/{clientId}/thresholds
func (h *ClientHandler) GetThresholds(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	thresholds, err := h.clientSvc.GetThresholds(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "client not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, thresholds)
}

// UpdateThresholds handles PUT /v1/clients/{clientId}/thresholds. The body
// may carry canonical bounds, legacy floors, or a named profile.
func (h *ClientHandler) UpdateThresholds(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	var cfg model.ScoringConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	thresholds, err := h.clientSvc.UpdateThresholds(r.Context(), clientID, &cfg)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "client not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, thresholds)
}

// Caseload handles GET /v1/caseload. Clients come back lowest score first so
// the coach sees who needs attention.
func (h *ClientHandler) Caseload(w http.ResponseWriter, r *http.Request) {
	coachID := middleware.GetCoachID(r.Context())
	if coachID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	entries, err := h.clientSvc.GetCaseload(r.Context(), coachID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"caseload": entries})
}
