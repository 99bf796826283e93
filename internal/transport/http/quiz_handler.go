package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pokequiz-service/internal/app"
)

// QuizHandler serves the question list, enriched question reads, and
// answer submission.
type QuizHandler struct {
	service *app.QuizService
}

func NewQuizHandler(service *app.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// ListQuestions handles GET /api/quiz/questions.
func (h *QuizHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.ListQuestions(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to fetch questions")
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

// GetQuestion handles GET /api/quiz/question/{id}.
func (h *QuizHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid question id")
		return
	}
	question, err := h.service.GetQuestion(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch question")
		return
	}
	writeJSON(w, http.StatusOK, question)
}

type submitRequest struct {
	QuestionID      int    `json:"questionId"`
	SelectedPokemon string `json:"selectedPokemon"`
}

// SubmitAnswer handles POST /api/quiz/submit.
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.QuestionID == 0 || req.SelectedPokemon == "" {
		writeError(w, http.StatusBadRequest, "Missing questionId or selectedPokemon")
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), req.QuestionID, req.SelectedPokemon)
	if err != nil {
		writeServiceError(w, err, "Failed to submit answer")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
