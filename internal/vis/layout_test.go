package vis

import (
	"fmt"
	"testing"
)

func TestNewLayoutPlacesColumns(t *testing.T) {
	cfg := LayoutConfig{}
	layout := NewLayout(cfg, []string{"D-1", "D-2"}, []string{"S-1"}, 0, 0)
	cfg = cfg.withDefaults()

	demand, ok := layout.Lookup(DemandKey("D-1"))
	if !ok {
		t.Fatal("demand D-1 not placed")
	}
	if demand.Rect.X != cfg.Padding {
		t.Errorf("demand column x = %v, want %v", demand.Rect.X, cfg.Padding)
	}
	if demand.Rect.Y != cfg.Padding {
		t.Errorf("first demand y = %v, want %v", demand.Rect.Y, cfg.Padding)
	}

	second, _ := layout.Lookup(DemandKey("D-2"))
	wantY := cfg.Padding + cfg.CardHeight + cfg.CardSpacing
	if second.Rect.Y != wantY {
		t.Errorf("second demand y = %v, want %v", second.Rect.Y, wantY)
	}

	stock, ok := layout.Lookup(StockKey("S-1"))
	if !ok {
		t.Fatal("stock S-1 not placed")
	}
	wantX := cfg.ContainerWidth - cfg.Padding - cfg.ColumnWidth
	if stock.Rect.X != wantX {
		t.Errorf("stock column x = %v, want %v", stock.Rect.X, wantX)
	}
}

func TestNewLayoutScrollAffectsVisibility(t *testing.T) {
	ids := make([]string, 20)
	for i := range ids {
		ids[i] = fmt.Sprintf("D-%02d", i)
	}
	layout := NewLayout(LayoutConfig{}, ids, nil, 0, 0)

	visible := 0
	for _, id := range ids {
		if box, ok := layout.Lookup(DemandKey(id)); ok && box.Visible {
			visible++
		}
	}
	if visible == 0 || visible == len(ids) {
		t.Fatalf("expected partial visibility with default viewport, got %d/%d", visible, len(ids))
	}

	// Scrolling far enough pushes the first card out of the viewport.
	scrolled := NewLayout(LayoutConfig{}, ids, nil, 1000, 0)
	first, _ := scrolled.Lookup(DemandKey(ids[0]))
	if first.Visible {
		t.Error("first card should be scrolled out of view")
	}
}

func TestLookupUnknownKey(t *testing.T) {
	layout := NewLayout(LayoutConfig{}, []string{"D-1"}, nil, 0, 0)
	if _, ok := layout.Lookup(StockKey("nope")); ok {
		t.Error("unknown key should not resolve")
	}
}
