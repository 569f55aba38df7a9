package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondNotFound(w http.ResponseWriter) {
	respondWithJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
}

// respondServerError surfaces an unclassified failure through the default
// failure response, after logging it with the request-scoped logger.
func respondServerError(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
