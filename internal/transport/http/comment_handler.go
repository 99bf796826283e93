package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"pokequiz-service/internal/app"
	"pokequiz-service/internal/domain"
)

// CommentHandler serves the per-question comment board.
type CommentHandler struct {
	service *app.CommentService
}

func NewCommentHandler(service *app.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// List handles GET /api/comments/{questionId}.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	questionID, err := strconv.Atoi(mux.Vars(r)["questionId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid question id")
		return
	}
	comments, err := h.service.List(r.Context(), questionID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch comments")
		return
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	writeJSON(w, http.StatusOK, comments)
}

// ListForPokemon handles GET /api/comments/{questionId}/{pokemonName}.
// Kept for backward compatibility with older clients.
func (h *CommentHandler) ListForPokemon(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	questionID, err := strconv.Atoi(vars["questionId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid question id")
		return
	}
	name := vars["pokemonName"]
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	comments, err := h.service.ListForPokemon(r.Context(), questionID, name)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch comments")
		return
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	writeJSON(w, http.StatusOK, comments)
}

type addCommentRequest struct {
	QuestionID    int    `json:"questionId"`
	PokemonName   string `json:"pokemonName"`
	CommenterName string `json:"commenterName"`
	CommentText   string `json:"commentText"`
}

// Add handles POST /api/comments.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.service.Add(r.Context(), req.QuestionID, req.PokemonName, req.CommenterName, req.CommentText)
	if err != nil {
		writeServiceError(w, err, "Failed to add comment")
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

// Delete handles DELETE /api/comments/{commentId}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, err := strconv.Atoi(mux.Vars(r)["commentId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}
	deleted, err := h.service.Delete(r.Context(), commentID)
	if err != nil {
		writeServiceError(w, err, "Failed to delete comment")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"comment": deleted,
	})
}
