package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/honeynil/sportteams-service/internal/api"
	"github.com/honeynil/sportteams-service/internal/config"
	"github.com/honeynil/sportteams-service/internal/handler"
	"github.com/honeynil/sportteams-service/internal/infrastructure/kafka"
	"github.com/honeynil/sportteams-service/internal/infrastructure/redis"
	"github.com/honeynil/sportteams-service/internal/observability"
	core "github.com/honeynil/sportteams-service/internal/repository/postgres"
	service "github.com/honeynil/sportteams-service/internal/services"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
)

func main() {
	shutdown, metricsHandler := observability.Setup("sportteams-service")
	defer shutdown(context.Background())

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer db.Close()

	userRepo := core.NewPostgresUserRepository(db)
	coachRepo := core.NewPostgresCoachRepository(db)
	playerRepo := core.NewPostgresPlayerRepository(db)
	parentRepo := core.NewPostgresParentRepository(db)
	teamRepo := core.NewPostgresTeamRepository(db)
	matchRepo := core.NewPostgresMatchRepository(db)

	redisClient := redis.NewClient(cfg.RedisAddr)
	defer redisClient.Close()

	producer := kafka.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	userSvc := service.NewUserService(userRepo, redisClient, producer, cfg.JWTSecret)
	coachSvc := service.NewCoachService(coachRepo, userRepo)
	playerSvc := service.NewPlayerService(playerRepo, userRepo)
	parentSvc := service.NewParentService(parentRepo, userRepo)
	teamSvc := service.NewTeamService(teamRepo, coachRepo, playerRepo, redisClient, producer)
	matchSvc := service.NewMatchService(matchRepo, producer)

	teamConsumer := kafka.NewConsumer(cfg.KafkaBrokers, "teams", "sportteams-service-group", redisClient)
	go teamConsumer.Consume(context.Background())
	defer teamConsumer.Close()

	h := handler.NewHandler(userSvc, coachSvc, playerSvc, parentSvc, teamSvc, matchSvc)
	router := api.SetupRouter(h, redisClient, cfg.JWTSecret, metricsHandler)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: cors.AllowAll().Handler(router),
	}
	go func() {
		log.Printf("Starting server on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
