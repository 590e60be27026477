package devserver

import (
	"crypto/rand"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/skye-prog/ai-workorder-management/internal/logging"
)

const tokenTTL = 24 * time.Hour

type Server struct {
	store  *store
	secret []byte
	log    logging.Logger
	router *mux.Router
}

// New builds a Server with the seeded dataset and a random signing secret.
func New(log logging.Logger) *Server {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		panic(err)
	}

	s := &Server{
		store:  newStore(),
		secret: secret,
		log:    log,
	}
	s.routes()
	return s
}

// Handler returns the HTTP handler for the whole backend surface.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/login", s.handleLogin).Methods(http.MethodPost)

	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(s.requireToken)
	authed.HandleFunc("/inspections/scheduled/{employeeId:[0-9]+}", s.handleScheduled).Methods(http.MethodGet)
	authed.HandleFunc("/assets/{assetId:[0-9]+}", s.handleAssetDetail).Methods(http.MethodGet)
	authed.HandleFunc("/assets/{assetId:[0-9]+}/history", s.handleAssetHistory).Methods(http.MethodGet)
	authed.HandleFunc("/upload/photo", s.handleUploadPhoto).Methods(http.MethodPost)
	authed.HandleFunc("/upload/voice", s.handleUploadVoice).Methods(http.MethodPost)
	authed.HandleFunc("/audits/submit", s.handleSubmitAudit).Methods(http.MethodPost)
	authed.HandleFunc("/reports/generate", s.handleGenerateReport).Methods(http.MethodPost)

	s.router = r
}

// requireToken verifies the Authorization bearer token on every request
// behind the login endpoint.
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if _, err := employeeIDFromToken(token, s.secret); err != nil {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail reports a failure the way the backend contract does:
// {"detail": "..."}.
func writeDetail(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, map[string]string{"detail": detail})
}
