package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	webAdapter "pohi-platform/internal/adapters/web"
	"pohi-platform/internal/ai"
	"pohi-platform/internal/app"
	"pohi-platform/internal/core"
	"pohi-platform/internal/db"
	"pohi-platform/internal/store"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	var st store.Store
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		pool, err := db.Connect(ctx, connStr)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()
		pg, err := store.NewPostgres(ctx, pool)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		st = pg
	} else {
		log.Println("DATABASE_URL not set, using in-memory store")
		st = store.NewMemory()
	}

	var agent app.AIService
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		agent = ai.NewAgent(apiKey)
	} else {
		log.Println("Warning: OPENAI_API_KEY is not set, AI features disabled")
	}

	svc := app.NewAppService(
		core.NewDemandService(st),
		core.NewStockService(st),
		core.NewCompanyService(st),
		core.NewMatchService(st),
		core.NewReportingService(st),
		agent,
	)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
