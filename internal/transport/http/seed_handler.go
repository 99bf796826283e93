package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"pokequiz-service/internal/app"
)

// SeedHandler exposes the admin reseed endpoint and its status check.
type SeedHandler struct {
	service *app.SeedService
	key     string
}

func NewSeedHandler(service *app.SeedService, key string) *SeedHandler {
	return &SeedHandler{service: service, key: key}
}

type seedRequest struct {
	SeedKey string `json:"seedKey"`
}

// Reseed handles POST /api/seed. The key is taken from the X-Seed-Key
// header or the request body.
func (h *SeedHandler) Reseed(w http.ResponseWriter, r *http.Request) {
	provided := r.Header.Get("X-Seed-Key")
	if provided == "" {
		var req seedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			provided = req.SeedKey
		}
	}
	if h.key == "" || provided != h.key {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":   "Unauthorized",
			"message": "Invalid seed key.",
		})
		return
	}

	report, err := h.service.Reseed(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to seed database")
		return
	}

	message := "Database seeded successfully! All questions verified."
	if !report.Complete() {
		message = fmt.Sprintf("Database seeded with %d questions (expected %d).", report.Verified, report.Expected)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
		"report":  report,
	})
}

// Status handles GET /api/seed; no auth, read-only.
func (h *SeedHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Status(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to check database state")
		return
	}
	writeJSON(w, http.StatusOK, status)
}
