package core

import (
	"context"
	"strings"
	"testing"

	"pohi-platform/internal/store"
)

func TestUploadStock(t *testing.T) {
	ctx := context.Background()
	svc := NewStockService(store.NewMemory())

	company := &Company{ID: "comp-2", CompanyName: "Bakony Forestry Kft."}
	item, err := svc.UploadStock(ctx, StockInput{
		ProductName:        "Acacia posts",
		DiameterFrom:       14,
		DiameterTo:         18,
		Length:             3,
		Quantity:           133,
		Price:              "120 EUR/m³",
		SustainabilityInfo: "PEFC certified",
	}, company)
	if err != nil {
		t.Fatalf("UploadStock: %v", err)
	}

	if !strings.HasPrefix(item.ID, "STK-") {
		t.Errorf("id = %q, want STK- prefix", item.ID)
	}
	if item.Status != StockAvailable {
		t.Errorf("status = %q, want %q", item.Status, StockAvailable)
	}
	if item.CubicMeters != 8.022 {
		t.Errorf("cubic meters = %v, want 8.022", item.CubicMeters)
	}
	if item.UploadedByCompanyName != "Bakony Forestry Kft." {
		t.Errorf("attribution = %q", item.UploadedByCompanyName)
	}
}

func TestListAvailableStock(t *testing.T) {
	ctx := context.Background()
	svc := NewStockService(store.NewMemory())

	available, _ := svc.UploadStock(ctx, StockInput{ProductName: "available", DiameterFrom: 10, DiameterTo: 12, Length: 2, Quantity: 5}, nil)
	sold, _ := svc.UploadStock(ctx, StockInput{ProductName: "sold", DiameterFrom: 10, DiameterTo: 12, Length: 2, Quantity: 5}, nil)
	if _, err := svc.UpdateStockStatus(ctx, sold.ID, StockSold); err != nil {
		t.Fatalf("UpdateStockStatus: %v", err)
	}

	items, err := svc.ListAvailableStock(ctx)
	if err != nil {
		t.Fatalf("ListAvailableStock: %v", err)
	}
	if len(items) != 1 || items[0].ID != available.ID {
		t.Errorf("available = %+v, want only the Available item", items)
	}

	all, _ := svc.ListStock(ctx)
	if len(all) != 2 {
		t.Errorf("ListStock len = %d, want 2", len(all))
	}
}

func TestUpdateStockStatusValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewStockService(store.NewMemory())
	item, _ := svc.UploadStock(ctx, StockInput{DiameterFrom: 10, DiameterTo: 12, Length: 2, Quantity: 5}, nil)

	if _, err := svc.UpdateStockStatus(ctx, item.ID, "Vanished"); err == nil {
		t.Error("unknown status should be rejected")
	}
	if _, err := svc.UpdateStockStatus(ctx, "STK-NOPE", StockReserved); err == nil {
		t.Error("unknown item should fail")
	}
	updated, err := svc.UpdateStockStatus(ctx, item.ID, StockReserved)
	if err != nil {
		t.Fatalf("UpdateStockStatus: %v", err)
	}
	if updated.Status != StockReserved {
		t.Errorf("status = %q, want %q", updated.Status, StockReserved)
	}
}
