package vis

import (
	"fmt"
	"math"
	"testing"

	"pohi-platform/internal/core"
)

func testPlan() *core.LoadingPlan {
	return &core.LoadingPlan{
		PlanDetails:  "Load heavy crates against the cab.",
		CapacityUsed: "80%",
		Items: []core.LoadingPlanItem{
			{Name: "Acacia posts - 3 crates", VolumeM3: "8 m³", DestinationName: "Tisza Timber Ltd.", DropOffOrder: 1},
			{Name: "Oak logs", VolumeM3: "12", DestinationName: "Szeged distribution center", DropOffOrder: 2},
		},
	}
}

func TestParseVolume(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"8", 8},
		{"8 m³", 8},
		{"12.5", 12.5},
		{"approx 7", 7},
		{"", 0},
		{"unknown", 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := parseVolume(tt.raw); got != tt.want {
				t.Errorf("parseVolume(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNewTruckLoadViewEmpty(t *testing.T) {
	view := NewTruckLoadView(TruckConfig{}, &core.LoadingPlan{})
	if view.Message != NoLoadItemsMessage {
		t.Errorf("message = %q, want %q", view.Message, NoLoadItemsMessage)
	}
	if len(view.Segments) != 0 {
		t.Error("empty plan should carry no segments")
	}
}

func TestNewTruckLoadViewLayout(t *testing.T) {
	var logs []string
	cfg := TruckConfig{Logf: func(format string, args ...any) {
		logs = append(logs, fmt.Sprintf(format, args...))
	}}
	view := NewTruckLoadView(cfg, testPlan())

	if view.TotalLoadedM3 != 20 {
		t.Fatalf("total loaded = %v, want 20", view.TotalLoadedM3)
	}
	if got := view.CapacityUsedPct; got != 80 {
		t.Errorf("capacity used = %v%%, want 80%%", got)
	}
	if len(view.Segments) != 2 {
		t.Fatalf("segments = %d, want 2 (logs: %v)", len(view.Segments), logs)
	}

	// Last drop-off loads first, nearest the cab.
	if view.Segments[0].Item.DropOffOrder != 2 {
		t.Errorf("cab-end item drop order = %d, want 2", view.Segments[0].Item.DropOffOrder)
	}
	if view.Segments[1].Item.DropOffOrder != 1 {
		t.Errorf("door-end item drop order = %d, want 1", view.Segments[1].Item.DropOffOrder)
	}

	// Widths are proportional to volume against the 25 m³ capacity.
	defaults := TruckConfig{}.withDefaults()
	usable := defaults.Width - 2*defaults.Padding
	wantFirst := 12.0 / 25.0 * usable
	if math.Abs(view.Segments[0].Rect.Width-wantFirst) > 1e-9 {
		t.Errorf("first segment width = %v, want %v", view.Segments[0].Rect.Width, wantFirst)
	}
	if view.Segments[1].Rect.X <= view.Segments[0].Rect.Right() {
		t.Error("segments should be laid out left to right with a gap")
	}

	// Legend keeps the plan's destination order, not the load order.
	if len(view.Legend) != 2 {
		t.Fatalf("legend entries = %d, want 2", len(view.Legend))
	}
	if view.Legend[0].Destination != "Tisza Timber Ltd." || view.Legend[0].ColorIndex != 0 {
		t.Errorf("legend[0] = %+v", view.Legend[0])
	}
	if view.Segments[0].ColorIndex != 1 {
		t.Errorf("cab-end segment color index = %d, want Szeged's slot 1", view.Segments[0].ColorIndex)
	}
}

func TestNewTruckLoadViewSkipsUnplaceableItems(t *testing.T) {
	var logs []string
	cfg := TruckConfig{Logf: func(format string, args ...any) {
		logs = append(logs, fmt.Sprintf(format, args...))
	}}
	plan := &core.LoadingPlan{Items: []core.LoadingPlanItem{
		{Name: "Overweight bundle", VolumeM3: "40", DropOffOrder: 1}, // exceeds bed on its own
		{Name: "No volume", VolumeM3: "n/a", DropOffOrder: 2},
	}}
	view := NewTruckLoadView(cfg, plan)

	if len(view.Segments) != 1 {
		t.Fatalf("segments = %d, want only the oversized item scaled to the full bed", len(view.Segments))
	}
	if view.Segments[0].Item.Name != "Overweight bundle" {
		t.Errorf("kept segment = %q", view.Segments[0].Item.Name)
	}
	if len(logs) != 1 {
		t.Errorf("expected one skip diagnostic, got %v", logs)
	}
}

func TestNewTruckLoadViewCapacityOverflow(t *testing.T) {
	// Total above capacity scales against the total, so everything fits.
	plan := &core.LoadingPlan{Items: []core.LoadingPlanItem{
		{Name: "A", VolumeM3: "20", DropOffOrder: 1, DestinationName: "X"},
		{Name: "B", VolumeM3: "20", DropOffOrder: 2, DestinationName: "Y"},
	}}
	view := NewTruckLoadView(TruckConfig{}, plan)
	if view.TotalLoadedM3 != 40 {
		t.Fatalf("total = %v, want 40", view.TotalLoadedM3)
	}
	if view.CapacityUsedPct <= 100 {
		t.Errorf("capacity used = %v%%, want over 100%%", view.CapacityUsedPct)
	}
	if len(view.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(view.Segments))
	}
}
