package handler

import (
	"net/http"

	"github.com/rsilveira/roteiros-api/internal/httpx"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
// The route is public — no session required.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
