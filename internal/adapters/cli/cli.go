package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"pohi-platform/internal/app"
	"pohi-platform/internal/core"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:]; the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	switch args[0] {
	case "seed":
		seeded, err := svc.SeedDemoData(ctx)
		if err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
		fmt.Printf("Seeded %d companies, %d demands, %d stock items.\n", seeded.Companies, seeded.Demands, seeded.Stock)

	case "demands":
		result, err := svc.ListDemands(ctx)
		if err != nil {
			log.Fatalf("Failed to list demands: %v", err)
		}
		printItems("CUSTOMER DEMANDS", len(result.Demands), func() {
			for _, d := range result.Demands {
				fmt.Printf("  %-14s %-10s %-22s Ø%g-%gcm %gm ×%g %8.2f m³\n",
					d.ID, d.Status, d.ProductName, d.DiameterFrom, d.DiameterTo, d.Length, d.Quantity, d.CubicMeters)
			}
		})

	case "stock":
		result, err := svc.ListStock(ctx)
		if err != nil {
			log.Fatalf("Failed to list stock: %v", err)
		}
		printItems("MANUFACTURER STOCK", len(result.Stock), func() {
			for _, s := range result.Stock {
				fmt.Printf("  %-14s %-10s %-22s Ø%g-%gcm %gm ×%g %8.2f m³  %s\n",
					s.ID, s.Status, s.ProductName, s.DiameterFrom, s.DiameterTo, s.Length, s.Quantity, s.CubicMeters, s.Price)
			}
		})

	case "suggest", "sug":
		result, err := svc.SuggestMatches(ctx)
		if err != nil {
			log.Fatalf("Matchmaking failed: %v", err)
		}
		if result.Advisory != "" {
			fmt.Fprintln(os.Stderr, result.Advisory)
			os.Exit(1)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(result.Suggestions)

	case "confirm", "con":
		var suggestion core.MatchmakingSuggestion
		if err := json.NewDecoder(os.Stdin).Decode(&suggestion); err != nil {
			log.Fatalf("Invalid JSON: %v", err)
		}
		result, err := svc.ConfirmMatch(ctx, suggestion, decimal.Zero)
		if err != nil {
			log.Fatalf("Confirm failed: %v", err)
		}
		if !result.Created {
			fmt.Println("Pair was already confirmed.")
		}
		fmt.Printf("Match %s: commission %s EUR at rate %s.\n",
			result.Match.ID, result.Match.CommissionAmount, result.Match.CommissionRate)

	case "dashboard", "dash":
		report, err := svc.DashboardReport(ctx)
		if err != nil {
			log.Fatalf("Failed to build dashboard: %v", err)
		}
		printDashboard(report)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: seed, demands, stock, suggest, confirm, dashboard", args[0])
	}
}

func printItems(title string, count int, rows func()) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %s (%d)\n", title, count)
	fmt.Println(strings.Repeat("-", 78))
	rows()
	fmt.Println(strings.Repeat("=", 78))
}

func printDashboard(report *core.DashboardReport) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  %-58s\n", "MARKETPLACE DASHBOARD")
	fmt.Printf("  Demands : %d    Stock items : %d\n", report.TotalDemands, report.TotalStockItems)
	fmt.Println(strings.Repeat("-", 62))
	for _, p := range report.DemandStatusSummary {
		fmt.Printf("  demand %-12s %4d  %5.1f%%\n", p.Status, p.Count, p.Percentage)
	}
	for _, p := range report.StockStatusSummary {
		fmt.Printf("  stock  %-12s %4d  %5.1f%%\n", p.Status, p.Count, p.Percentage)
	}
	if len(report.TopCustomers) > 0 {
		fmt.Println(strings.Repeat("-", 62))
		fmt.Println("  TOP CUSTOMERS BY VOLUME")
		for _, c := range report.TopCustomers {
			fmt.Printf("  %-40s %10.2f m³\n", c.CompanyName, c.TotalVolume)
		}
	}
	if len(report.TopManufacturers) > 0 {
		fmt.Println(strings.Repeat("-", 62))
		fmt.Println("  TOP MANUFACTURERS BY VOLUME")
		for _, c := range report.TopManufacturers {
			fmt.Printf("  %-40s %10.2f m³\n", c.CompanyName, c.TotalVolume)
		}
	}
	fmt.Println(strings.Repeat("=", 62))
}
