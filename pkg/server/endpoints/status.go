package endpoints

import (
	"net/http"
	"os"

	"devreg/pkg/server"
)

// StatusResponse represents the response from /status
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// RegisterStatusEndpoint registers the liveness endpoint.
func RegisterStatusEndpoint(s *server.Server) {
	s.Router.HandleFunc("/status", handleStatus()).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, StatusResponse{
			Status:  "ok",
			Version: os.Getenv("DEVREG_VERSION"),
		})
	}
}
