package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pokequiz-service/internal/app"
)

// Pinger checks raw database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service and database state.
type HealthHandler struct {
	bootstrap *app.Bootstrapper
	pinger    Pinger
	seeds     *app.SeedService
}

func NewHealthHandler(bootstrap *app.Bootstrapper, pinger Pinger, seeds *app.SeedService) *HealthHandler {
	return &HealthHandler{bootstrap: bootstrap, pinger: pinger, seeds: seeds}
}

type healthDatabase struct {
	Connected     bool `json:"connected"`
	Seeded        bool `json:"seeded"`
	QuestionCount int  `json:"questionCount"`
	ExpectedCount int  `json:"expectedCount"`
}

type healthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Database  healthDatabase `json:"database"`
	Message   string         `json:"message,omitempty"`
}

// Health handles GET /api/health. Responds 503 when the database cannot
// be reached; a connected-but-unseeded database is a warning, not an
// outage.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	resp.Database.ExpectedCount = h.seeds.ExpectedCount()

	if err := h.bootstrap.Ensure(r.Context()); err != nil {
		resp.Status = "error"
		resp.Message = fmt.Sprintf("Database connection failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			resp.Status = "error"
			resp.Message = fmt.Sprintf("Database connection failed: %v", err)
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
	}
	resp.Database.Connected = true

	status, err := h.seeds.Status(r.Context())
	if err != nil {
		resp.Status = "error"
		resp.Message = fmt.Sprintf("Database query failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	resp.Database.Seeded = status.Seeded
	resp.Database.QuestionCount = status.QuestionCount

	switch {
	case status.QuestionCount == 0:
		resp.Status = "warning"
		resp.Message = "Database is connected but not seeded. No questions found."
	case status.QuestionCount < status.ExpectedCount:
		resp.Status = "warning"
		resp.Message = fmt.Sprintf("Database is partially seeded. Found %d of %d expected questions.", status.QuestionCount, status.ExpectedCount)
	default:
		resp.Message = fmt.Sprintf("Database is healthy. %d question(s) available.", status.QuestionCount)
	}
	writeJSON(w, http.StatusOK, resp)
}
