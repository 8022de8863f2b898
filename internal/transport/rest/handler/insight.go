package handler

import (
	"errors"
	"net/http"

	"coachpulse/internal/service"
	"coachpulse/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// InsightHandler handles AI analysis endpoints
type InsightHandler struct {
	insightSvc *service.InsightService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightSvc *service.InsightService) *InsightHandler {
	return &InsightHandler{insightSvc: insightSvc}
}

// Get handles GET /v1/clients/{clientId}/insights. A fresh stored analysis
// is served as-is; ?refresh=true forces regeneration.
func (h *InsightHandler) Get(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]
	coachID := middleware.GetCoachID(r.Context())
	if coachID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	force := r.URL.Query().Get("refresh") == "true"

	resp, err := h.insightSvc.GetInsights(r.Context(), clientID, force)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "client not found")
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
