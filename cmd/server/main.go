package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vibecheck-backend/internal/cache"
	"vibecheck-backend/internal/config"
	"vibecheck-backend/internal/database"
	"vibecheck-backend/internal/generate"
	"vibecheck-backend/internal/handlers"
	"vibecheck-backend/internal/history"
	"vibecheck-backend/internal/llm"
	"vibecheck-backend/internal/router"
)

func main() {
	log.Println("🚀 Starting Vibecheck Backend...")

	// ──── Step 1: Load Configuration ────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("✗ Configuration error: %v", err)
	}
	log.Println("✓ Configuration loaded")

	// ──── Step 2: Initialize Completion Client ────
	llmClient, err := llm.New(llm.Settings{
		Provider: cfg.LLMProvider,
		Model:    cfg.LLMModel,
		APIKey:   cfg.APIKey(),
	})
	if err != nil {
		log.Fatalf("✗ LLM client initialization failed: %v", err)
	}
	defer llmClient.Close()
	log.Printf("✓ Completion client ready (%s)", cfg.LLMProvider)

	// ──── Step 3: History Store (Postgres with in-memory fallback) ────
	memoryStore := history.NewMemoryStore()
	var store history.Store = memoryStore
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠ PostgreSQL unavailable, history is session-local only: %v", err)
		} else {
			defer pool.Close()
			if err := database.RunMigrations(pool, "migrations"); err != nil {
				log.Fatalf("✗ Database migration failed: %v", err)
			}
			store = history.NewFallbackStore(history.NewPostgresStore(pool, cfg.AppID), memoryStore)
			log.Println("✓ PostgreSQL connected, migrations applied")
		}
	} else {
		log.Println("⚠ DATABASE_URL not set, history is session-local only")
	}

	// ──── Step 4: Daily Quiz Cache (Redis when configured) ────
	var quizCache cache.Cache = cache.NewMemoryCache()
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠ Redis unavailable, quiz cache is process-local: %v", err)
		} else {
			defer redisClient.Close()
			quizCache = cache.NewRedisCache(redisClient)
			log.Println("✓ Redis connected")
		}
	}

	// ──── Step 5: Generators ────
	runner := generate.NewRunner(llmClient)
	pollGenerator := generate.NewPollGenerator(runner, cfg.Participants)
	quizGenerator := generate.NewQuizGenerator(runner, quizCache, cfg.QuizTopics, cfg.QuizTimezone)
	topicFilter := generate.NewTopicFilter(cfg.BannedWords)
	log.Printf("✓ Generators ready (%d participants, %d topics)", len(cfg.Participants), len(cfg.QuizTopics))

	// ──── Step 6: HTTP Server ────
	pollHandler := handlers.NewPollHandler(pollGenerator, topicFilter, cfg.QuizTopics)
	quizHandler := handlers.NewQuizHandler(quizGenerator, store)

	r := router.New(pollHandler, quizHandler, cfg.RateLimitPerMin, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // generation blocks through retries
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Vibecheck Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
