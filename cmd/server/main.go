package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"capsdiag/internal/cache"
	"capsdiag/internal/config"
	"capsdiag/internal/repository"
	"capsdiag/internal/scoring"
	"capsdiag/internal/service"
	"capsdiag/internal/transport/rest"
	"capsdiag/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Questions are loaded once and held read-only
	questions, err := scoring.Load(cfg.QuestionsPath)
	var notFound *scoring.NotFoundError
	if errors.As(err, &notFound) {
		log.Fatalf("%s ファイルが見つかりません。", notFound.Path)
	}
	if err != nil {
		log.Fatal("Failed to load questions:", err)
	}
	log.Printf("Loaded %d questions from %s", len(questions), cfg.QuestionsPath)
	for _, q := range scoring.Unrecognized(questions) {
		log.Printf("Warning: question %d has an unrecognized rule %q; it will score zero", q.Index, q.Rule)
	}

	catalog, err := config.DefaultCatalog()
	if err != nil {
		log.Fatal("Failed to load category catalog:", err)
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	defer wsHub.Close()
	log.Println("WebSocket hub started")

	resultRepo := repository.NewResultRepo(db)
	sessionCache := cache.NewSessionCache(rdb, cfg.SessionTTL)
	statsCache := cache.NewStatsCache(rdb)

	authSvc := service.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret, cfg.SessionTTL)
	quizSvc := service.NewQuizService(questions, catalog, sessionCache, resultRepo, statsCache, authSvc)
	reportSvc := service.NewReportService(resultRepo, statsCache)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	quizSvc.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		AuthService:   authSvc,
		QuizService:   quizSvc,
		ReportService: reportSvc,
		WSHub:         wsHub,
		CORS:          cfg.CORS,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST   /v1/sessions")
		log.Println("  GET    /v1/questions")
		log.Println("  PUT    /v1/answers/{index}")
		log.Println("  DELETE /v1/answers")
		log.Println("  GET    /v1/progress")
		log.Println("  GET    /v1/result")
		log.Println("  GET    /v1/categories")
		log.Println("  POST   /v1/auth/login")
		log.Println("  GET    /v1/admin/results")
		log.Println("  GET    /v1/admin/stats")
		log.Println("  WS     /v1/ws/admin")

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
