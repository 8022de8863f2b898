package handler

import (
	"encoding/json"
	"net/http"

	"coachpulse/internal/model"
	"coachpulse/internal/service"
	"coachpulse/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// QuestionHandler handles question library endpoints
type QuestionHandler struct {
	questionSvc *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionSvc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// CreateQuestionRequest is the request body for creating a question
type CreateQuestionRequest struct {
	Prompt        string             `json:"prompt"`
	Type          model.QuestionType `json:"type"`
	Weight        int                `json:"weight"`
	Options       []model.Option     `json:"options,omitempty"`
	YesIsPositive *bool              `json:"yesIsPositive,omitempty"`
}

// Create handles POST /v1/questions
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	coachID := middleware.GetCoachID(r.Context())
	if coachID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Prompt == "" || req.Type == "" {
		writeError(w, http.StatusBadRequest, "prompt and type are required")
		return
	}

	question := &model.Question{
		CoachID:       coachID,
		Prompt:        req.Prompt,
		Type:          req.Type,
		Weight:        req.Weight,
		Options:       req.Options,
		YesIsPositive: req.YesIsPositive,
	}

	id, err := h.questionSvc.Create(r.Context(), question)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"questionId": id})
}

// List handles GET /v1/questions
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	coachID := middleware.GetCoachID(r.Context())
	if coachID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	questions, err := h.questionSvc.GetByCoachID(r.Context(), coachID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// Get handles GET /v1/questions/{questionId}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionId"]

	question, err := h.questionSvc.GetByID(r.Context(), questionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if question == nil {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}

	writeJSON(w, http.StatusOK, question)
}

// Update handles PUT /v1/questions/{questionId}
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionId"]
	coachID := middleware.GetCoachID(r.Context())
	if coachID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question := &model.Question{
		ID:            questionID,
		CoachID:       coachID,
		Prompt:        req.Prompt,
		Type:          req.Type,
		Weight:        req.Weight,
		Options:       req.Options,
		YesIsPositive: req.YesIsPositive,
	}

	if err := h.questionSvc.Update(r.Context(), question); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, question)
}

// Delete handles DELETE /v1/questions/{questionId}
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionId"]
	coachID := middleware.GetCoachID(r.Context())
	if coachID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.questionSvc.Delete(r.Context(), questionID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
