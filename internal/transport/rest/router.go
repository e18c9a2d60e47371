package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"capsdiag/internal/config"
	"capsdiag/internal/service"
	"capsdiag/internal/transport/rest/handler"
	"capsdiag/internal/transport/rest/middleware"
	"capsdiag/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService   *service.AuthService
	QuizService   *service.QuizService
	ReportService *service.ReportService
	WSHub         *ws.Hub
	CORS          config.CORSConfig
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	quizHandler := handler.NewQuizHandler(c.QuizService)
	adminHandler := handler.NewAdminHandler(c.ReportService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORS))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions", quizHandler.StartSession).Methods("POST", "OPTIONS")
	v1.HandleFunc("/categories", quizHandler.Categories).Methods("GET", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/admin", wsHandler.AdminWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Respondent routes (require session token)
	sessionRoutes := v1.NewRoute().Subrouter()
	sessionRoutes.Use(authMW.RequireSession)

	sessionRoutes.HandleFunc("/questions", quizHandler.Questions).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/answers/{index:[0-9]+}", quizHandler.SetAnswer).Methods("PUT", "OPTIONS")
	sessionRoutes.HandleFunc("/answers", quizHandler.Reset).Methods("DELETE", "OPTIONS")
	sessionRoutes.HandleFunc("/progress", quizHandler.Progress).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/result", quizHandler.Result).Methods("GET", "OPTIONS")

	// Admin routes (require admin token)
	adminRoutes := v1.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/results", adminHandler.Results).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/results/{id}", adminHandler.Result).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/stats", adminHandler.Stats).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(cfg config.CORSConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
