package rest

import (
	"net/http"
	"os"

	"coachpulse/internal/service"
	"coachpulse/internal/transport/rest/handler"
	"coachpulse/internal/transport/rest/middleware"
	"coachpulse/internal/transport/ws"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	QuestionService *service.QuestionService
	ClientService   *service.ClientService
	CheckInService  *service.CheckInService
	InsightService  *service.InsightService
	WSHub           *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	questionHandler := handler.NewQuestionHandler(c.QuestionService)
	clientHandler := handler.NewClientHandler(c.ClientService, c.AuthService)
	checkInHandler := handler.NewCheckInHandler(c.CheckInService)
	insightHandler := handler.NewInsightHandler(c.InsightService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/coach", wsHandler.CoachWS).Methods("GET")
	v1.HandleFunc("/ws/client", wsHandler.ClientWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Coach routes (require coach auth)
	coachRoutes := v1.NewRoute().Subrouter()
	coachRoutes.Use(authMW.RequireCoach)

	coachRoutes.HandleFunc("/questions", questionHandler.Create).Methods("POST", "OPTIONS")
	coachRoutes.HandleFunc("/questions", questionHandler.List).Methods("GET", "OPTIONS")
	coachRoutes.HandleFunc("/questions/{questionId}", questionHandler.Get).Methods("GET", "OPTIONS")
	coachRoutes.HandleFunc("/questions/{questionId}", questionHandler.Update).Methods("PUT", "OPTIONS")
	coachRoutes.HandleFunc("/questions/{questionId}", questionHandler.Delete).Methods("DELETE", "OPTIONS")

	coachRoutes.HandleFunc("/clients", clientHandler.Create).Methods("POST", "OPTIONS")
	coachRoutes.HandleFunc("/clients", clientHandler.List).Methods("GET", "OPTIONS")
	coachRoutes.HandleFunc("/clients/{clientId}", clientHandler.Get).Methods("GET", "OPTIONS")
	coachRoutes.HandleFunc("/clients/{clientId}/token", clientHandler.IssueToken).Methods("POST", "OPTIONS")
	coachRoutes.HandleFunc("/clients/{clientId}/thresholds", clientHandler.GetThresholds).Methods("GET", "OPTIONS")
	coachRoutes.HandleFunc("/clients/{clientId}/thresholds", clientHandler.UpdateThresholds).Methods("PUT", "OPTIONS")
	coachRoutes.HandleFunc("/clients/{clientId}/checkins", checkInHandler.List).Methods("GET", "OPTIONS")
	coachRoutes.HandleFunc("/clients/{clientId}/status", checkInHandler.Status).Methods("GET", "OPTIONS")
	coachRoutes.HandleFunc("/clients/{clientId}/insights", insightHandler.Get).Methods("GET", "OPTIONS")
	coachRoutes.HandleFunc("/caseload", clientHandler.Caseload).Methods("GET", "OPTIONS")

	// Client routes (require client auth)
	clientRoutes := v1.NewRoute().Subrouter()
	clientRoutes.Use(authMW.RequireClient)

	clientRoutes.HandleFunc("/checkins", checkInHandler.Submit).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
