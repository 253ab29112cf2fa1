package api

import (
	"net/http"

	"travel-check-service/internal/api/handlers"
	"travel-check-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.LoginEventRepository, cache ports.LocationCache) http.Handler {
	mux := http.NewServeMux()

	evalHandler := &handlers.EvaluationHandler{}
	loginHandler := &handlers.LoginHandler{
		Repo:  repo,
		Cache: cache,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/evaluations", evalHandler.Evaluate)
	mux.HandleFunc("/logins", loginHandler.Handle)

	return requestIDMiddleware(loggingMiddleware(mux))
}
