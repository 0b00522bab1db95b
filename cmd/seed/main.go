// seed is a one-shot tool to load the demo marketplace scenario into the
// configured database: two companies plus matching demand and stock records.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"pohi-platform/internal/app"
	"pohi-platform/internal/core"
	"pohi-platform/internal/db"
	"pohi-platform/internal/store"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.Connect(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	st, err := store.NewPostgres(ctx, pool)
	if err != nil {
		log.Fatalf("Failed to prepare store: %v", err)
	}

	svc := app.NewAppService(
		core.NewDemandService(st),
		core.NewStockService(st),
		core.NewCompanyService(st),
		core.NewMatchService(st),
		core.NewReportingService(st),
		nil,
	)

	seeded, err := svc.SeedDemoData(ctx)
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Printf("Seeded %d companies, %d demands, %d stock items.", seeded.Companies, seeded.Demands, seeded.Stock)
}
