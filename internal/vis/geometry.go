// Package vis contains the matchmaking association renderer and its sibling
// visualizers. The browser-facing frontends position elements from live DOM
// measurements; here the same coordinate rules run against an explicit
// geometry model, so the business layout logic is testable and independent
// of any rendering surface.
package vis

import "math"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Finite reports whether both coordinates are real numbers.
func (p Point) Finite() bool {
	return finite(p.X) && finite(p.Y)
}

// Rect is an axis-aligned bounding box in container coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Right() float64   { return r.X + r.Width }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// LeftCenter is the anchor a line ends at on a stock card.
func (r Rect) LeftCenter() Point { return Point{X: r.X, Y: r.CenterY()} }

// RightCenter is the anchor a line starts from on a demand card.
func (r Rect) RightCenter() Point { return Point{X: r.Right(), Y: r.CenterY()} }

// Zero reports whether the box has collapsed to nothing, the geometric
// equivalent of an element that rendered with no dimensions.
func (r Rect) Zero() bool { return r.Width == 0 && r.Height == 0 }

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
