package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/agrovision/fitometrics/internal/analysis"
	"github.com/agrovision/fitometrics/internal/storage"
)

// Server exposes the analysis pipeline over HTTP.
type Server struct {
	analyzer *analysis.Analyzer
	store    *storage.UploadStore
}

// New creates a server around an analyzer and an upload store.
func New(analyzer *analysis.Analyzer, store *storage.UploadStore) *Server {
	return &Server{
		analyzer: analyzer,
		store:    store,
	}
}

// Handler returns the routed HTTP handler, wrapped in the CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/analizar-muestra/", s.handleAnalyze)
	mux.HandleFunc("/analizar-muestra/vista-previa", s.handleOverlay)
	return allowCORS(mux)
}

// allowCORS permits cross-origin calls from any origin. The API is consumed
// by browser frontends served from other hosts.
func allowCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// writeDetail reports an error in the {"detail": ...} shape the frontend
// expects.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
