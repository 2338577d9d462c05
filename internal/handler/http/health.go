package http

import (
	"encoding/json"
	"net/http"
	"time"
)

type HealthHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct{}

func NewHealthHandler() HealthHandler {
	return &healthHandlerImpl{}
}

// Status implements HealthHandler. The payload is flat on purpose: uptime
// probes read it directly, without the API envelope.
func (h *healthHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "ok",
		"service":   "flos-attendance-bot",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
