package vis

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"pohi-platform/internal/core"
)

// TruckConfig sizes the truck-bed canvas.
type TruckConfig struct {
	Width      float64
	Height     float64
	Padding    float64
	CapacityM3 float64

	// Logf receives skip diagnostics for items that cannot be placed.
	// Defaults to log.Printf.
	Logf func(format string, args ...any)
}

func (c TruckConfig) withDefaults() TruckConfig {
	if c.Width <= 0 {
		c.Width = 600
	}
	if c.Height <= 0 {
		c.Height = 100
	}
	if c.Padding <= 0 {
		c.Padding = 5
	}
	if c.CapacityM3 <= 0 {
		c.CapacityM3 = 25
	}
	if c.Logf == nil {
		c.Logf = log.Printf
	}
	return c
}

// TruckSegment is one cargo block placed on the bed, sized proportionally to
// its parsed volume.
type TruckSegment struct {
	Item       core.LoadingPlanItem `json:"item"`
	Rect       Rect                 `json:"rect"`
	VolumeM3   float64              `json:"volume_m3"`
	ColorIndex int                  `json:"color_index"` // index into the destination palette
	Label      string               `json:"label"`
}

// TruckLegendEntry maps a destination to its palette slot.
type TruckLegendEntry struct {
	Destination string `json:"destination"`
	ColorIndex  int    `json:"color_index"`
}

// TruckLoadView is the render model of the visual truck load.
type TruckLoadView struct {
	Width           float64            `json:"width"`
	Height          float64            `json:"height"`
	PlanDetails     string             `json:"plan_details,omitempty"`
	Segments        []TruckSegment     `json:"segments,omitempty"`
	Legend          []TruckLegendEntry `json:"legend,omitempty"`
	TotalLoadedM3   float64            `json:"total_loaded_m3"`
	CapacityM3      float64            `json:"capacity_m3"`
	CapacityUsedPct float64            `json:"capacity_used_pct"`
	Message         string             `json:"message,omitempty"`
}

// NoLoadItemsMessage is shown when the plan carries no cargo items.
const NoLoadItemsMessage = "No items to display in the truck."

const unknownDestination = "Unknown"

// NewTruckLoadView lays the plan's items left to right across the bed,
// last drop-off nearest the cab so the first stop unloads from the door.
// Item widths are proportional to volume against max(total loaded,
// capacity); items with unparseable or zero volume, or that would overflow
// the bed, are skipped with a diagnostic.
func NewTruckLoadView(cfg TruckConfig, plan *core.LoadingPlan) TruckLoadView {
	cfg = cfg.withDefaults()
	view := TruckLoadView{Width: cfg.Width, Height: cfg.Height, CapacityM3: cfg.CapacityM3}
	if plan != nil {
		view.PlanDetails = plan.PlanDetails
	}
	if plan == nil || len(plan.Items) == 0 {
		view.Message = NoLoadItemsMessage
		return view
	}

	items := make([]core.LoadingPlanItem, len(plan.Items))
	copy(items, plan.Items)
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].DropOffOrder > items[b].DropOffOrder
	})

	destinations := make([]string, 0)
	colorIndex := map[string]int{}
	for _, item := range plan.Items {
		dest := destinationOf(item)
		if _, ok := colorIndex[dest]; !ok {
			colorIndex[dest] = len(destinations)
			destinations = append(destinations, dest)
		}
	}
	for _, dest := range destinations {
		view.Legend = append(view.Legend, TruckLegendEntry{Destination: dest, ColorIndex: colorIndex[dest]})
	}

	var totalLoaded float64
	for _, item := range items {
		totalLoaded += parseVolume(item.VolumeM3)
	}
	view.TotalLoadedM3 = totalLoaded
	view.CapacityUsedPct = totalLoaded / cfg.CapacityM3 * 100

	totalToDisplay := totalLoaded
	if cfg.CapacityM3 > totalToDisplay {
		totalToDisplay = cfg.CapacityM3
	}

	usableWidth := cfg.Width - 2*cfg.Padding
	usableHeight := cfg.Height - 2*cfg.Padding
	segHeight := usableHeight * 0.8
	currentX := cfg.Padding

	for _, item := range items {
		volume := parseVolume(item.VolumeM3)
		var width float64
		if totalToDisplay > 0 {
			width = volume / totalToDisplay * usableWidth
		}
		if width <= 0 || currentX+width > usableWidth+cfg.Padding+1 {
			cfg.Logf("truckload: item %q skipped (volume %q, zero width or bed overflow)", item.Name, item.VolumeM3)
			continue
		}

		dest := destinationOf(item)
		view.Segments = append(view.Segments, TruckSegment{
			Item: item,
			Rect: Rect{
				X:      currentX,
				Y:      cfg.Padding + (usableHeight-segHeight)/2,
				Width:  width,
				Height: segHeight,
			},
			VolumeM3:   volume,
			ColorIndex: colorIndex[dest],
			Label:      segmentLabel(item, width),
		})
		currentX += width + 1
	}
	return view
}

// parseVolume extracts a number from free text like "8 m³"; anything
// unparseable counts as zero.
func parseVolume(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

func destinationOf(item core.LoadingPlanItem) string {
	if item.DestinationName == "" {
		return unknownDestination
	}
	return item.DestinationName
}

// segmentLabel fits a caption inside the block; narrow blocks get nothing.
func segmentLabel(item core.LoadingPlanItem, width float64) string {
	if width <= 40 {
		return ""
	}
	limit := 5
	if width > 80 {
		limit = 10
	}
	text := item.DestinationName
	if text == "" {
		text = item.Name
	}
	if len(text) > limit {
		text = text[:limit] + "..."
	}
	if item.DropOffOrder > 0 {
		return fmt.Sprintf("%d. %s", item.DropOffOrder, text)
	}
	return text
}
