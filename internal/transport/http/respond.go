package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"pokequiz-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps domain sentinels onto the HTTP taxonomy and
// hides internal error text behind a generic message on 500s.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, "Question not found")
	case errors.Is(err, domain.ErrPokemonNotFound):
		writeError(w, http.StatusNotFound, "Selected Pokemon not found in question")
	case errors.Is(err, domain.ErrCommentNotFound):
		writeError(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "Missing required fields")
	default:
		log.Printf("%s: %v", fallback, err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
