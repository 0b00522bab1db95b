package vis

import (
	"math"
	"math/rand"
	"sort"
	"strconv"

	"pohi-platform/internal/core"
)

// RouteConfig sizes the simulated route map canvas.
type RouteConfig struct {
	Width   float64
	Height  float64
	Padding float64
}

func (c RouteConfig) withDefaults() RouteConfig {
	if c.Width <= 0 {
		c.Width = 600
	}
	if c.Height <= 0 {
		c.Height = 300
	}
	if c.Padding <= 0 {
		c.Padding = 30
	}
	return c
}

// RoutePoint is one placed waypoint marker.
type RoutePoint struct {
	Waypoint core.Waypoint `json:"waypoint"`
	Position Point         `json:"position"`
	Label    string        `json:"label"`
}

// RouteSegment is a dashed connector between consecutive waypoints; the last
// segment carries the direction arrow.
type RouteSegment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
	Arrow bool  `json:"arrow"`
}

// RouteView is the render model of the simulated route map.
type RouteView struct {
	Width       float64        `json:"width"`
	Height      float64        `json:"height"`
	Description string         `json:"description,omitempty"`
	Points      []RoutePoint   `json:"points,omitempty"`
	Segments    []RouteSegment `json:"segments,omitempty"`
	Stops       []string       `json:"stops,omitempty"` // numbered list sorted by order
	Message     string         `json:"message,omitempty"`
}

// NoWaypointsMessage is shown when the plan carries no route.
const NoWaypointsMessage = "No waypoints to display."

// NewRouteView places the plan's waypoints along a stylised left-to-right
// route. Positions are schematic, not geographic: x is spread evenly, y
// follows a down-up-down curve for longer routes plus a small jitter from
// rng so repeated renders do not overlap exactly. A nil rng yields a
// deterministic layout.
func NewRouteView(cfg RouteConfig, waypoints []core.Waypoint, description string, rng *rand.Rand) RouteView {
	cfg = cfg.withDefaults()
	view := RouteView{Width: cfg.Width, Height: cfg.Height, Description: description}
	if len(waypoints) == 0 {
		view.Message = NoWaypointsMessage
		return view
	}

	view.Points = make([]RoutePoint, len(waypoints))
	for i, wp := range waypoints {
		view.Points[i] = RoutePoint{
			Waypoint: wp,
			Position: routePosition(cfg, i, len(waypoints), rng),
			Label:    stopLabel(wp),
		}
	}

	for i := 0; i+1 < len(view.Points); i++ {
		view.Segments = append(view.Segments, RouteSegment{
			Start: view.Points[i].Position,
			End:   view.Points[i+1].Position,
			Arrow: i == len(view.Points)-2,
		})
	}

	sorted := make([]core.Waypoint, len(waypoints))
	copy(sorted, waypoints)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Order < sorted[b].Order })
	view.Stops = make([]string, len(sorted))
	for i, wp := range sorted {
		view.Stops[i] = stopLabel(wp)
	}
	return view
}

func routePosition(cfg RouteConfig, index, total int, rng *rand.Rand) Point {
	divisor := float64(total - 1)
	if divisor == 0 {
		divisor = 1
	}
	xRatio := 0.5
	if total > 1 {
		xRatio = float64(index) / divisor
	}
	x := cfg.Padding + xRatio*(cfg.Width-2*cfg.Padding)

	var yOffset float64
	if total > 2 {
		peak := total / 3
		valley := total * 2 / 3
		switch {
		case index <= peak:
			yOffset = -40 * float64(index) / float64(peak)
		case index <= valley:
			progress := float64(index-peak) / float64(valley-peak)
			yOffset = -40 + 80*progress
		default:
			progress := float64(index-valley) / float64(total-1-valley)
			yOffset = 40 - 40*progress
		}
	}
	y := cfg.Height/2 + yOffset
	if rng != nil {
		y += rng.Float64()*10 - 5
	}

	// Keep markers clear of the canvas edges and the bottom label strip.
	y = math.Max(cfg.Padding+10, math.Min(y, cfg.Height-cfg.Padding-20))
	x = math.Max(cfg.Padding, math.Min(x, cfg.Width-cfg.Padding))
	return Point{X: x, Y: y}
}

func stopLabel(wp core.Waypoint) string {
	kind := "drop-off"
	if wp.Type == "pickup" {
		kind = "pickup"
	}
	name := wp.Name
	if len(name) > 20 {
		name = name[:17] + "..."
	}
	return strconv.Itoa(wp.Order+1) + ". " + name + " (" + kind + ")"
}
