package core

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"pohi-platform/internal/store"
)

// seedMarketplace submits one demand and one stock item and returns their ids.
func seedMarketplace(t *testing.T, st store.Store) (demandID, stockID string) {
	t.Helper()
	ctx := context.Background()

	demand, err := NewDemandService(st).SubmitDemand(ctx, DemandInput{
		ProductName:  "Acacia posts",
		DiameterFrom: 14,
		DiameterTo:   18,
		Length:       3,
		Quantity:     166,
	}, nil)
	if err != nil {
		t.Fatalf("SubmitDemand: %v", err)
	}

	stock, err := NewStockService(st).UploadStock(ctx, StockInput{
		ProductName:  "Acacia posts",
		DiameterFrom: 14,
		DiameterTo:   18,
		Length:       3,
		Quantity:     133,
		Price:        "120 EUR/m³",
	}, nil)
	if err != nil {
		t.Fatalf("UploadStock: %v", err)
	}
	return demand.ID, stock.ID
}

func TestConfirmMatchCreatesSnapshot(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	demandID, stockID := seedMarketplace(t, st)
	svc := NewMatchService(st)

	match, created, err := svc.ConfirmMatch(ctx, MatchmakingSuggestion{
		ID:       "sug-1",
		DemandID: demandID,
		StockID:  stockID,
	}, DefaultCommissionRate)
	if err != nil {
		t.Fatalf("ConfirmMatch: %v", err)
	}
	if !created {
		t.Fatal("first confirmation should create a record")
	}
	if match.DemandDetails.ID != demandID || match.StockDetails.ID != stockID {
		t.Error("match should freeze demand and stock snapshots")
	}
	if match.CommissionRate != "0.05" {
		t.Errorf("rate = %q, want 0.05", match.CommissionRate)
	}
	// 120 EUR/m³ × min(10.013, 8.022) m³ × 5% = 48.13 EUR.
	if match.CommissionAmount != "48.13" {
		t.Errorf("commission = %q, want 48.13", match.CommissionAmount)
	}
	if match.Billed {
		t.Error("new match must start unbilled")
	}
}

func TestConfirmMatchDedupesByPair(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	demandID, stockID := seedMarketplace(t, st)
	svc := NewMatchService(st)

	first, created, err := svc.ConfirmMatch(ctx, MatchmakingSuggestion{ID: "sug-1", DemandID: demandID, StockID: stockID}, DefaultCommissionRate)
	if err != nil || !created {
		t.Fatalf("first ConfirmMatch: created=%v err=%v", created, err)
	}

	// A regenerated suggestion carries a new id but the same pair.
	second, created, err := svc.ConfirmMatch(ctx, MatchmakingSuggestion{ID: "sug-99", DemandID: demandID, StockID: stockID}, DefaultCommissionRate)
	if err != nil {
		t.Fatalf("second ConfirmMatch: %v", err)
	}
	if created {
		t.Error("same pair must not create a second record")
	}
	if second.ID != first.ID {
		t.Errorf("second confirmation returned %q, want existing match %q", second.ID, first.ID)
	}

	matches, err := svc.ListConfirmedMatches(ctx)
	if err != nil {
		t.Fatalf("ListConfirmedMatches: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("len(matches) = %d, want 1", len(matches))
	}

	pairs, err := svc.ConfirmedPairs(ctx)
	if err != nil {
		t.Fatalf("ConfirmedPairs: %v", err)
	}
	if !pairs[demandID+"-"+stockID] {
		t.Error("confirmed pair set should contain the demand-stock key")
	}
}

func TestConfirmMatchUnknownEndpoints(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	demandID, stockID := seedMarketplace(t, st)
	svc := NewMatchService(st)

	if _, _, err := svc.ConfirmMatch(ctx, MatchmakingSuggestion{ID: "s", DemandID: "DEM-NOPE", StockID: stockID}, DefaultCommissionRate); err == nil {
		t.Error("unknown demand should fail")
	}
	if _, _, err := svc.ConfirmMatch(ctx, MatchmakingSuggestion{ID: "s", DemandID: demandID, StockID: "STK-NOPE"}, DefaultCommissionRate); err == nil {
		t.Error("unknown stock should fail")
	}
	if _, _, err := svc.ConfirmMatch(ctx, MatchmakingSuggestion{ID: "s"}, DefaultCommissionRate); err == nil {
		t.Error("missing ids should fail")
	}
}

func TestMarkBilled(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	demandID, stockID := seedMarketplace(t, st)
	svc := NewMatchService(st)

	match, _, err := svc.ConfirmMatch(ctx, MatchmakingSuggestion{ID: "sug-1", DemandID: demandID, StockID: stockID}, DefaultCommissionRate)
	if err != nil {
		t.Fatalf("ConfirmMatch: %v", err)
	}

	billed, err := svc.MarkBilled(ctx, match.ID, "INV-2026-001")
	if err != nil {
		t.Fatalf("MarkBilled: %v", err)
	}
	if !billed.Billed || billed.InvoiceID != "INV-2026-001" {
		t.Errorf("billed = %+v", billed)
	}

	matches, _ := svc.ListConfirmedMatches(ctx)
	if !matches[0].Billed {
		t.Error("billed flag should persist")
	}

	if _, err := svc.MarkBilled(ctx, "MATCH-NOPE", "INV-X"); err == nil {
		t.Error("unknown match should fail")
	}
}

func TestCommissionByProduct(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	demandID, stockID := seedMarketplace(t, st)
	svc := NewMatchService(st)

	if _, _, err := svc.ConfirmMatch(ctx, MatchmakingSuggestion{ID: "sug-1", DemandID: demandID, StockID: stockID}, DefaultCommissionRate); err != nil {
		t.Fatalf("ConfirmMatch: %v", err)
	}

	entries, err := svc.CommissionByProduct(ctx)
	if err != nil {
		t.Fatalf("CommissionByProduct: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Label != "Acacia posts" || entries[0].MatchCount != 1 {
		t.Errorf("entry = %+v", entries[0])
	}
	if entries[0].TotalCommission != "48.13" {
		t.Errorf("total commission = %q, want 48.13", entries[0].TotalCommission)
	}
}

func TestParseUnitPrice(t *testing.T) {
	tests := []struct {
		price string
		want  string
		ok    bool
	}{
		{"120 EUR/m³", "120", true},
		{"15,5 EUR/db", "15.5", true},
		{"kb. 99.90", "99.9", true},
		{"price on request", "0", false},
		{"", "0", false},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			got, ok := parseUnitPrice(tt.price)
			if ok != tt.ok {
				t.Fatalf("parseUnitPrice(%q) ok = %v, want %v", tt.price, ok, tt.ok)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("parseUnitPrice(%q) = %s, want %s", tt.price, got, tt.want)
			}
		})
	}
}

func TestCommissionAmountUnparseablePrice(t *testing.T) {
	demand := DemandItem{ProductFeatures: ProductFeatures{CubicMeters: 10}}
	stock := StockItem{Price: "megegyezés szerint", ProductFeatures: ProductFeatures{CubicMeters: 8}}
	if got := commissionAmount(demand, stock, DefaultCommissionRate); !got.IsZero() {
		t.Errorf("commission = %s, want 0 for unparseable price", got)
	}
}
