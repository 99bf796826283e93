package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"pokequiz-service/internal/app"
)

// Container holds the dependencies the router wires together.
type Container struct {
	Quiz        *app.QuizService
	Comments    *app.CommentService
	Seeds       *app.SeedService
	Bootstrap   *app.Bootstrapper
	Pinger      Pinger
	SeedKey     string
	CORSOrigins []string
}

// NewRouter builds the full API surface.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	quizHandler := NewQuizHandler(c.Quiz)
	commentHandler := NewCommentHandler(c.Comments)
	seedHandler := NewSeedHandler(c.Seeds, c.SeedKey)
	healthHandler := NewHealthHandler(c.Bootstrap, c.Pinger, c.Seeds)

	r.Use(recoveryMiddleware)
	r.Use(corsMiddleware(c.CORSOrigins))

	api := r.PathPrefix("/api").Subrouter()

	// Health runs outside the readiness gate so it can report a broken
	// database instead of failing on it.
	api.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet, http.MethodOptions)

	guarded := api.NewRoute().Subrouter()
	guarded.Use(readinessMiddleware(c.Bootstrap))

	guarded.HandleFunc("/seed", seedHandler.Status).Methods(http.MethodGet, http.MethodOptions)
	guarded.HandleFunc("/seed", seedHandler.Reseed).Methods(http.MethodPost, http.MethodOptions)

	guarded.HandleFunc("/quiz/questions", quizHandler.ListQuestions).Methods(http.MethodGet, http.MethodOptions)
	guarded.HandleFunc("/quiz/question/{id}", quizHandler.GetQuestion).Methods(http.MethodGet, http.MethodOptions)
	guarded.HandleFunc("/quiz/submit", quizHandler.SubmitAnswer).Methods(http.MethodPost, http.MethodOptions)

	guarded.HandleFunc("/comments/{questionId:[0-9]+}", commentHandler.List).Methods(http.MethodGet, http.MethodOptions)
	guarded.HandleFunc("/comments/{questionId:[0-9]+}/{pokemonName}", commentHandler.ListForPokemon).Methods(http.MethodGet, http.MethodOptions)
	guarded.HandleFunc("/comments", commentHandler.Add).Methods(http.MethodPost, http.MethodOptions)
	guarded.HandleFunc("/comments/{commentId:[0-9]+}", commentHandler.Delete).Methods(http.MethodDelete, http.MethodOptions)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "API route not found"})
	})

	return r
}
