package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coachpulse/internal/cache"
	"coachpulse/internal/config"
	"coachpulse/internal/repository"
	"coachpulse/internal/service"
	"coachpulse/internal/transport/rest"
	"coachpulse/internal/transport/ws"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Load AI config and log model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Insights model: %s", aiConfig.Model)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:   configured ✓")
	} else {
		log.Println("  API Key:   NOT SET (using mock insights)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	redisAddr := cfg.RedisAddr
	// Remove redis:// prefix if present
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	questionRepo := repository.NewQuestionRepo(db)
	clientRepo := repository.NewClientRepo(db)
	checkInRepo := repository.NewCheckInRepo(db)
	analysisRepo := repository.NewAnalysisRepo(db)

	// Initialize caches
	thresholdCache := cache.NewThresholdCache(rdb)
	scoreCache := cache.NewScoreCache(rdb)
	caseloadCache := cache.NewCaseloadCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	questionSvc := service.NewQuestionService(questionRepo)
	clientSvc := service.NewClientService(clientRepo, thresholdCache, caseloadCache)
	checkInSvc := service.NewCheckInService(questionRepo, checkInRepo, clientRepo, thresholdCache, scoreCache, caseloadCache)
	generator := service.NewInsightGenerator()
	insightSvc := service.NewInsightService(clientRepo, checkInRepo, analysisRepo, generator, cfg.InsightFreshnessDays)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	checkInSvc.SetBroadcaster(wsHub)
	insightSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:     authSvc,
		QuestionService: questionSvc,
		ClientService:   clientSvc,
		CheckInService:  checkInSvc,
		InsightService:  insightSvc,
		WSHub:           wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Printf("Coach auth: username=%s", os.Getenv("COACH_USERNAME"))
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/questions")
		log.Println("  POST/GET /v1/clients")
		log.Println("  PUT  /v1/clients/{clientId}/thresholds")
		log.Println("  GET  /v1/clients/{clientId}/status")
		log.Println("  GET  /v1/clients/{clientId}/insights")
		log.Println("  GET  /v1/caseload")
		log.Println("  POST /v1/checkins")
		log.Println("  WS   /v1/ws/coach")
		log.Println("  WS   /v1/ws/client")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
