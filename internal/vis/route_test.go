package vis

import (
	"math/rand"
	"testing"

	"pohi-platform/internal/core"
)

func testWaypoints() []core.Waypoint {
	return []core.Waypoint{
		{Name: "Bakony Forestry Kft. depot", Type: "pickup", Order: 0},
		{Name: "Tisza Timber Ltd. yard", Type: "dropoff", Order: 1},
		{Name: "Szeged distribution center", Type: "dropoff", Order: 2},
		{Name: "Debrecen sawmill", Type: "dropoff", Order: 3},
	}
}

func TestNewRouteViewEmpty(t *testing.T) {
	view := NewRouteView(RouteConfig{}, nil, "", nil)
	if view.Message != NoWaypointsMessage {
		t.Errorf("message = %q, want %q", view.Message, NoWaypointsMessage)
	}
	if len(view.Points) != 0 || len(view.Segments) != 0 {
		t.Error("empty route should carry no points or segments")
	}
}

func TestNewRouteViewLayout(t *testing.T) {
	wps := testWaypoints()
	view := NewRouteView(RouteConfig{}, wps, "Pickup first, then three drops east.", nil)

	if len(view.Points) != len(wps) {
		t.Fatalf("points = %d, want %d", len(view.Points), len(wps))
	}
	if len(view.Segments) != len(wps)-1 {
		t.Fatalf("segments = %d, want %d", len(view.Segments), len(wps)-1)
	}
	for i, seg := range view.Segments {
		wantArrow := i == len(view.Segments)-1
		if seg.Arrow != wantArrow {
			t.Errorf("segment %d arrow = %v, want %v", i, seg.Arrow, wantArrow)
		}
	}

	// X spreads monotonically left to right; every marker stays inside the
	// padded canvas.
	cfg := RouteConfig{}.withDefaults()
	prevX := -1.0
	for i, p := range view.Points {
		if p.Position.X <= prevX {
			t.Errorf("point %d x = %v not increasing past %v", i, p.Position.X, prevX)
		}
		prevX = p.Position.X
		if p.Position.X < cfg.Padding || p.Position.X > cfg.Width-cfg.Padding {
			t.Errorf("point %d x = %v outside horizontal bounds", i, p.Position.X)
		}
		if p.Position.Y < cfg.Padding+10 || p.Position.Y > cfg.Height-cfg.Padding-20 {
			t.Errorf("point %d y = %v outside vertical bounds", i, p.Position.Y)
		}
	}

	if view.Stops[0] != "1. Bakony Forestry K... (pickup)" {
		t.Errorf("first stop label = %q", view.Stops[0])
	}
	if view.Stops[3] != "4. Debrecen sawmill (dropoff)" {
		t.Errorf("last stop label = %q", view.Stops[3])
	}
}

func TestNewRouteViewJitterStaysBounded(t *testing.T) {
	cfg := RouteConfig{}.withDefaults()
	rng := rand.New(rand.NewSource(42))
	view := NewRouteView(RouteConfig{}, testWaypoints(), "", rng)
	for i, p := range view.Points {
		if p.Position.Y < cfg.Padding+10 || p.Position.Y > cfg.Height-cfg.Padding-20 {
			t.Errorf("jittered point %d y = %v outside vertical bounds", i, p.Position.Y)
		}
	}
}

func TestNewRouteViewSingleWaypointCentered(t *testing.T) {
	cfg := RouteConfig{}.withDefaults()
	view := NewRouteView(RouteConfig{}, []core.Waypoint{{Name: "Depot", Type: "pickup", Order: 0}}, "", nil)
	if got, want := view.Points[0].Position.X, cfg.Width/2; got != want {
		t.Errorf("single waypoint x = %v, want centered at %v", got, want)
	}
	if len(view.Segments) != 0 {
		t.Error("single waypoint has no segments")
	}
}
