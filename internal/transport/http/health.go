package http

import (
	"encoding/json"
	"net/http"
)

// HealthHandler reports liveness. It says nothing about the storage
// backend; a 200 only means the process is serving requests.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
