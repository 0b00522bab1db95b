package vis

import "fmt"

// LayoutConfig sizes the two-column association canvas. Zero fields fall
// back to the defaults below, which mirror the frontend's card metrics.
type LayoutConfig struct {
	ContainerWidth float64 // total canvas width
	ColumnWidth    float64 // width of each card column
	CardHeight     float64
	CardSpacing    float64 // vertical gap between cards
	Padding        float64 // canvas padding on every side
	ViewportHeight float64 // visible height of each scrollable column; 0 = unclipped
}

const (
	defaultContainerWidth = 960
	defaultColumnWidth    = 320
	defaultCardHeight     = 80
	defaultCardSpacing    = 12
	defaultPadding        = 16
	defaultViewportHeight = 500
)

func (c LayoutConfig) withDefaults() LayoutConfig {
	if c.ContainerWidth == 0 {
		c.ContainerWidth = defaultContainerWidth
	}
	if c.ColumnWidth == 0 {
		c.ColumnWidth = defaultColumnWidth
	}
	if c.CardHeight == 0 {
		c.CardHeight = defaultCardHeight
	}
	if c.CardSpacing == 0 {
		c.CardSpacing = defaultCardSpacing
	}
	if c.Padding == 0 {
		c.Padding = defaultPadding
	}
	if c.ViewportHeight == 0 {
		c.ViewportHeight = defaultViewportHeight
	}
	return c
}

// Box is the placed bounding box of one card. Visible is false when the card
// is scrolled fully outside its column viewport; such cards cannot anchor a
// line for that render pass.
type Box struct {
	Rect    Rect
	Visible bool
}

// DemandKey and StockKey are the stable per-item element identifiers the
// association renderer resolves endpoints by. The role prefix keeps a demand
// and a stock record with the same raw id from colliding.
func DemandKey(id string) string { return fmt.Sprintf("demand-vis-%s", id) }
func StockKey(id string) string  { return fmt.Sprintf("stock-vis-%s", id) }

// Layout is one settled layout pass over the two columns: a mapping from
// item key to bounding box, the explicit-geometry replacement for live DOM
// measurement.
type Layout struct {
	cfg   LayoutConfig
	boxes map[string]Box
}

// NewLayout places demand cards in the left column and stock cards in the
// right column, top to bottom in the given order. demandScroll and
// stockScroll are the columns' scroll offsets in pixels.
func NewLayout(cfg LayoutConfig, demandIDs, stockIDs []string, demandScroll, stockScroll float64) *Layout {
	cfg = cfg.withDefaults()
	l := &Layout{cfg: cfg, boxes: make(map[string]Box, len(demandIDs)+len(stockIDs))}

	leftX := cfg.Padding
	rightX := cfg.ContainerWidth - cfg.Padding - cfg.ColumnWidth
	l.placeColumn(demandIDs, DemandKey, leftX, demandScroll)
	l.placeColumn(stockIDs, StockKey, rightX, stockScroll)
	return l
}

func (l *Layout) placeColumn(ids []string, key func(string) string, x, scroll float64) {
	for i, id := range ids {
		y := l.cfg.Padding + float64(i)*(l.cfg.CardHeight+l.cfg.CardSpacing) - scroll
		r := Rect{X: x, Y: y, Width: l.cfg.ColumnWidth, Height: l.cfg.CardHeight}
		l.boxes[key(id)] = Box{
			Rect:    r,
			Visible: r.Bottom() > 0 && r.Y < l.cfg.ViewportHeight,
		}
	}
}

// Lookup resolves an item key to its placed box.
func (l *Layout) Lookup(key string) (Box, bool) {
	b, ok := l.boxes[key]
	return b, ok
}

// ContainerWidth returns the effective canvas width after defaulting.
func (l *Layout) ContainerWidth() float64 { return l.cfg.ContainerWidth }
