package handlers

import (
	"net/http"
	"os"
	"time"
)

var processStart = time.Now()

type healthResponse struct {
	Status string  `json:"status"`
	PID    int     `json:"pid"`
	Uptime float64 `json:"uptime"`
}

// Health reports liveness: process id and uptime in seconds.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		PID:    os.Getpid(),
		Uptime: time.Since(processStart).Seconds(),
	})
}
