package core

import (
	"context"
	"strings"
	"testing"

	"pohi-platform/internal/store"
)

func TestSubmitDemand(t *testing.T) {
	ctx := context.Background()
	svc := NewDemandService(store.NewMemory())

	company := &Company{ID: "comp-1", CompanyName: "Tisza Timber Ltd."}
	demand, err := svc.SubmitDemand(ctx, DemandInput{
		ProductName:  "Acacia posts",
		DiameterFrom: 14,
		DiameterTo:   18,
		Length:       3,
		Quantity:     166,
	}, company)
	if err != nil {
		t.Fatalf("SubmitDemand: %v", err)
	}

	if !strings.HasPrefix(demand.ID, "DEM-") {
		t.Errorf("id = %q, want DEM- prefix", demand.ID)
	}
	if demand.Status != DemandReceived {
		t.Errorf("status = %q, want %q", demand.Status, DemandReceived)
	}
	if demand.CubicMeters != 10.013 {
		t.Errorf("cubic meters = %v, want 10.013", demand.CubicMeters)
	}
	if demand.SubmittedByCompanyName != "Tisza Timber Ltd." {
		t.Errorf("attribution = %q", demand.SubmittedByCompanyName)
	}
	if demand.SubmissionDate.IsZero() {
		t.Error("submission date should be set")
	}
}

func TestSubmitDemandInvertedRange(t *testing.T) {
	svc := NewDemandService(store.NewMemory())
	if _, err := svc.SubmitDemand(context.Background(), DemandInput{DiameterFrom: 18, DiameterTo: 14}, nil); err == nil {
		t.Error("inverted diameter range should be rejected")
	}
}

func TestListDemandsNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := NewDemandService(store.NewMemory())

	first, _ := svc.SubmitDemand(ctx, DemandInput{ProductName: "first", DiameterFrom: 10, DiameterTo: 12, Length: 2, Quantity: 5}, nil)
	second, _ := svc.SubmitDemand(ctx, DemandInput{ProductName: "second", DiameterFrom: 10, DiameterTo: 12, Length: 2, Quantity: 5}, nil)

	demands, err := svc.ListDemands(ctx)
	if err != nil {
		t.Fatalf("ListDemands: %v", err)
	}
	if len(demands) != 2 {
		t.Fatalf("len = %d, want 2", len(demands))
	}
	if demands[0].ID != second.ID || demands[1].ID != first.ID {
		t.Errorf("order = [%s, %s], want newest first", demands[0].ProductName, demands[1].ProductName)
	}
}

func TestListOwnDemands(t *testing.T) {
	ctx := context.Background()
	svc := NewDemandService(store.NewMemory())

	svc.SubmitDemand(ctx, DemandInput{ProductName: "own", DiameterFrom: 10, DiameterTo: 12, Length: 2, Quantity: 5}, nil)
	svc.SubmitDemand(ctx, DemandInput{ProductName: "attributed", DiameterFrom: 10, DiameterTo: 12, Length: 2, Quantity: 5}, &Company{ID: "comp-1", CompanyName: "X"})

	own, err := svc.ListOwnDemands(ctx)
	if err != nil {
		t.Fatalf("ListOwnDemands: %v", err)
	}
	if len(own) != 1 || own[0].ProductName != "own" {
		t.Errorf("own = %+v, want just the unattributed demand", own)
	}
}

func TestUpdateDemandStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewDemandService(store.NewMemory())
	demand, _ := svc.SubmitDemand(ctx, DemandInput{DiameterFrom: 10, DiameterTo: 12, Length: 2, Quantity: 5}, nil)

	updated, err := svc.UpdateDemandStatus(ctx, demand.ID, DemandProcessing)
	if err != nil {
		t.Fatalf("UpdateDemandStatus: %v", err)
	}
	if updated.Status != DemandProcessing {
		t.Errorf("status = %q, want %q", updated.Status, DemandProcessing)
	}

	if _, err := svc.UpdateDemandStatus(ctx, demand.ID, "Shipped"); err == nil {
		t.Error("unknown status should be rejected")
	}
	if _, err := svc.UpdateDemandStatus(ctx, "DEM-NOPE", DemandCompleted); err == nil {
		t.Error("unknown demand should fail")
	}
}
