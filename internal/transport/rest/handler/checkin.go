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

// CheckInHandler handles check-in endpoints
type CheckInHandler struct {
	checkInSvc *service.CheckInService
}

// NewCheckInHandler creates a new check-in handler
func NewCheckInHandler(checkInSvc *service.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInSvc: checkInSvc}
}

// Submit handles POST /v1/checkins. The client is identified by their token,
// not the request body.
func (h *CheckInHandler) Submit(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetClientID(r.Context())
	if clientID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.SubmitCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "answers are required")
		return
	}

	result, err := h.checkInSvc.SubmitCheckIn(r.Context(), clientID, &req)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "client not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// List handles GET /v1/clients/{clientId}/checkins
func (h *CheckInHandler) List(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	checkIns, err := h.checkInSvc.ListCheckIns(r.Context(), clientID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"checkIns": checkIns})
}

// Status handles GET /v1/clients/{clientId}/status
func (h *CheckInHandler) Status(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	summary, status, err := h.checkInSvc.GetClientStatus(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "client not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if summary == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "no_checkins"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"summary": summary,
		"status":  status,
	})
}
