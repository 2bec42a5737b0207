// Package mockapi emulates the slice of the Kerberos.io cloud API the
// bot consumes. It exists for local development against cmd/mock_api,
// without real credentials.
package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Credentials accepted by the mock login endpoint.
const (
	DemoUsername = "demo@kerberos.io"
	DemoPassword = "demo"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handler returns the router serving the mock endpoints.
func Handler() http.Handler {
	r := chi.NewRouter()
	r.Post("/auth/login", handleLogin)
	r.Get("/profile", requireBearer(handleProfile))
	r.Get("/cameras", requireBearer(handleCameras))
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	return r
}

func handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username != DemoUsername || req.Password != DemoPassword {
		sendError(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	token := uuid.NewString()
	// The real API has answered with either field name over time, so the
	// mock sets both.
	sendJSON(w, map[string]any{
		"token":        token,
		"access_token": token,
	})
}

func handleProfile(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, map[string]any{
		"username":     DemoUsername,
		"name":         "Demo User",
		"subscription": "Premium",
		"cameras":      []string{"front-door", "garage", "warehouse"},
		"permissions":  []string{"read", "write", "admin"},
		"company":      "Kerberos.io",
	})
}

func handleCameras(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, map[string]any{
		"cameras": []map[string]any{
			{"key": "front-door", "name": "Front Door", "online": true},
			{"key": "garage", "name": "Garage", "online": true},
			{"key": "warehouse", "name": "Warehouse", "online": false},
		},
	})
}

func requireBearer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			sendError(w, "missing or invalid authorization header", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func sendJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
