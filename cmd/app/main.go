package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"pohi-platform/internal/adapters/cli"
	"pohi-platform/internal/ai"
	"pohi-platform/internal/app"
	"pohi-platform/internal/core"
	"pohi-platform/internal/db"
	"pohi-platform/internal/store"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		log.Fatal("Usage: app <seed|demands|stock|suggest|confirm|dashboard>")
	}

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
		log.Println("DATABASE_URL not set, using in-memory store (state is lost on exit)")
		st = store.NewMemory()
	}

	var agent app.AIService
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		agent = ai.NewAgent(apiKey)
	}

	svc := app.NewAppService(
		core.NewDemandService(st),
		core.NewStockService(st),
		core.NewCompanyService(st),
		core.NewMatchService(st),
		core.NewReportingService(st),
		agent,
	)

	cli.Run(ctx, svc, os.Args[1:])
}
