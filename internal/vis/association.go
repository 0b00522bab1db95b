package vis

import (
	"fmt"
	"log"
	"sync"
	"time"

	"pohi-platform/internal/core"
)

// SuggestionPayload is the upstream matchmaking result handed to the view:
// either a list of suggestions or an advisory message (AI unavailable, parse
// failure, and so on). An advisory, like an empty list, renders as a single
// informational message instead of the two-column association canvas.
type SuggestionPayload struct {
	Items    []core.MatchmakingSuggestion
	Advisory string
}

// Suggestions wraps a suggestion list as a payload.
func Suggestions(items []core.MatchmakingSuggestion) SuggestionPayload {
	return SuggestionPayload{Items: items}
}

// Advisory wraps an upstream message as a payload; the message is rendered
// verbatim.
func Advisory(message string) SuggestionPayload {
	return SuggestionPayload{Advisory: message}
}

// NoSuggestionsMessage is shown when the payload is an empty list with no
// upstream advisory.
const NoSuggestionsMessage = "No pairing suggestions available."

const (
	strokeWidthNormal   = 2.5
	strokeWidthEmphasis = 4
)

// Line is one rendered association between a demand card and a stock card.
type Line struct {
	ID          string                     `json:"id"`
	Start       Point                      `json:"start"` // right-center of the demand card
	End         Point                      `json:"end"`   // left-center of the stock card
	Mid         Point                      `json:"mid"`
	Suggestion  core.MatchmakingSuggestion `json:"suggestion"`
	Confirmed   bool                       `json:"confirmed"`
	Color       LineColor                  `json:"color"`
	StrokeWidth float64                    `json:"stroke_width"`
	Glow        bool                       `json:"glow"`
}

// CardView is the render model of one demand or stock card.
type CardView struct {
	Key         string `json:"key"` // layout element key
	ID          string `json:"id"`
	ShortID     string `json:"short_id"`
	CompanyName string `json:"company_name,omitempty"`
	Descriptor  string `json:"descriptor"` // product, Ø range
	Dimensions  string `json:"dimensions"` // length × quantity
	Volume      string `json:"volume"`     // m³ to 2 decimals, or placeholder
	Price       string `json:"price,omitempty"`
	Highlighted bool   `json:"highlighted"` // referenced by at least one resolved line
	Confirmed   bool   `json:"confirmed"`   // referenced by a confirmed line
}

// Tooltip describes the hover popover for a line's midpoint marker.
type Tooltip struct {
	SuggestionID      string `json:"suggestion_id"`
	Side              string `json:"side"` // "right" of the point when it sits in the left half, else "left"
	Reason            string `json:"reason"`
	MatchStrength     string `json:"match_strength,omitempty"`
	SimilarityPercent string `json:"similarity_percent,omitempty"`
	Confirmed         bool   `json:"confirmed"`
}

// RenderState is one settled render pass of the association view. When
// Message is non-empty the two-column canvas is replaced by that message and
// Lines is empty.
type RenderState struct {
	Message string     `json:"message,omitempty"`
	Demands []CardView `json:"demands,omitempty"`
	Stock   []CardView `json:"stock,omitempty"`
	Lines   []Line     `json:"lines,omitempty"`
	Tooltip *Tooltip   `json:"tooltip,omitempty"`
}

// Options configures an association View.
type Options struct {
	// OnConfirm receives the full suggestion when the user confirms an
	// unconfirmed pairing. The owning page persists the ConfirmedMatch; the
	// view itself only flips its local optimistic state.
	OnConfirm func(core.MatchmakingSuggestion)

	// Logf receives skip diagnostics (unresolvable endpoints, malformed
	// suggestions). Defaults to log.Printf.
	Logf func(format string, args ...any)

	// OnRender receives the state produced by each scheduled recompute.
	OnRender func(RenderState)

	Layout LayoutConfig

	// SettleDelay overrides the recompute coalescing window; 0 keeps the
	// default frame-length delay.
	SettleDelay time.Duration
}

// View renders two independently scrollable columns of cards linked by
// suggestion lines. All state transitions happen under one lock; recomputes
// triggered by data changes, scrolling or resizing are coalesced so only one
// pass runs per settled layout.
type View struct {
	mu sync.Mutex

	onConfirm func(core.MatchmakingSuggestion)
	onRender  func(RenderState)
	logf      func(string, ...any)
	layoutCfg LayoutConfig

	payload        SuggestionPayload
	demands        []core.DemandItem
	stock          []core.StockItem
	confirmedPairs map[string]bool
	confirmedIDs   map[string]bool // suggestion ids: derived from pairs + optimistic confirms
	hoveredID      string

	demandScroll float64
	stockScroll  float64

	state RenderState
	sched *scheduler
}

// NewView constructs an association view. Call Close when done so the
// recompute scheduler releases its pending work.
func NewView(opts Options) *View {
	v := &View{
		onConfirm:      opts.OnConfirm,
		onRender:       opts.OnRender,
		logf:           opts.Logf,
		layoutCfg:      opts.Layout,
		confirmedPairs: map[string]bool{},
		confirmedIDs:   map[string]bool{},
	}
	if v.logf == nil {
		v.logf = log.Printf
	}
	v.sched = newScheduler(opts.SettleDelay, v.renderAndNotify)
	return v
}

// Close tears the view down, releasing the scheduler. No OnRender callback
// fires after Close returns.
func (v *View) Close() { v.sched.Close() }

// SetData replaces the view's inputs and schedules a recompute. The
// confirmed-suggestion set is re-derived from confirmedPairs, keyed by the
// (demandID, stockID) pair rather than the suggestion id, because suggestion
// ids churn across regenerations.
func (v *View) SetData(payload SuggestionPayload, demands []core.DemandItem, stock []core.StockItem, confirmedPairs map[string]bool) {
	v.mu.Lock()
	v.payload = payload
	v.demands = demands
	v.stock = stock
	if confirmedPairs == nil {
		confirmedPairs = map[string]bool{}
	}
	v.confirmedPairs = confirmedPairs
	v.confirmedIDs = make(map[string]bool, len(payload.Items))
	for _, s := range payload.Items {
		if confirmedPairs[s.Pair()] {
			v.confirmedIDs[s.ID] = true
		}
	}
	v.mu.Unlock()
	v.sched.Invalidate()
}

// SetScroll updates the column scroll offsets (layout shift) and schedules a
// recompute.
func (v *View) SetScroll(demandScroll, stockScroll float64) {
	v.mu.Lock()
	v.demandScroll = demandScroll
	v.stockScroll = stockScroll
	v.mu.Unlock()
	v.sched.Invalidate()
}

// Resize updates the container width and schedules a recompute.
func (v *View) Resize(containerWidth float64) {
	v.mu.Lock()
	v.layoutCfg.ContainerWidth = containerWidth
	v.mu.Unlock()
	v.sched.Invalidate()
}

// Invalidate schedules a recompute without changing inputs, the hook for
// external layout mutations.
func (v *View) Invalidate() { v.sched.Invalidate() }

// Hover marks a line's midpoint marker as hovered ("" clears it) and
// schedules a recompute.
func (v *View) Hover(suggestionID string) {
	v.mu.Lock()
	v.hoveredID = suggestionID
	v.mu.Unlock()
	v.sched.Invalidate()
}

// Confirm handles a click on an unconfirmed midpoint marker: it hands the
// full suggestion to the OnConfirm callback and immediately marks the
// suggestion confirmed locally for responsiveness. The optimistic flip is
// independent of whether the durable commit succeeds; there is no rollback
// path. Clicking an already-confirmed marker is a no-op. Returns whether a
// confirmation was triggered.
func (v *View) Confirm(suggestionID string) bool {
	v.mu.Lock()
	var target *core.MatchmakingSuggestion
	for i := range v.payload.Items {
		if v.payload.Items[i].ID == suggestionID {
			target = &v.payload.Items[i]
			break
		}
	}
	if target == nil || v.confirmedIDs[suggestionID] || v.confirmedPairs[target.Pair()] {
		v.mu.Unlock()
		return false
	}
	suggestion := *target
	v.confirmedIDs[suggestionID] = true
	onConfirm := v.onConfirm
	v.mu.Unlock()

	if onConfirm != nil {
		onConfirm(suggestion)
	}
	v.sched.Invalidate()
	return true
}

// Render computes the current render state synchronously. Scheduled
// recomputes produce exactly the same state via OnRender.
func (v *View) Render() RenderState {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = v.computeLocked()
	return v.state
}

func (v *View) renderAndNotify() {
	v.mu.Lock()
	v.state = v.computeLocked()
	state := v.state
	onRender := v.onRender
	v.mu.Unlock()
	if onRender != nil {
		onRender(state)
	}
}

func (v *View) computeLocked() RenderState {
	if v.payload.Advisory != "" {
		return RenderState{Message: v.payload.Advisory}
	}
	if len(v.payload.Items) == 0 {
		return RenderState{Message: NoSuggestionsMessage}
	}

	// Only active demands and available stock are candidate endpoints.
	// Suggestions referencing anything else fail endpoint resolution below.
	activeDemands := make([]core.DemandItem, 0, len(v.demands))
	for _, d := range v.demands {
		if d.Status == core.DemandReceived {
			activeDemands = append(activeDemands, d)
		}
	}
	availableStock := make([]core.StockItem, 0, len(v.stock))
	for _, s := range v.stock {
		if s.Status == core.StockAvailable {
			availableStock = append(availableStock, s)
		}
	}

	demandIDs := make([]string, len(activeDemands))
	for i, d := range activeDemands {
		demandIDs[i] = d.ID
	}
	stockIDs := make([]string, len(availableStock))
	for i, s := range availableStock {
		stockIDs[i] = s.ID
	}
	layout := NewLayout(v.layoutCfg, demandIDs, stockIDs, v.demandScroll, v.stockScroll)

	lines := make([]Line, 0, len(v.payload.Items))
	for _, s := range v.payload.Items {
		line, ok := v.resolveLine(layout, s)
		if ok {
			lines = append(lines, line)
		}
	}

	cards := v.cardViews(activeDemands, availableStock, lines)
	state := RenderState{
		Demands: cards[0],
		Stock:   cards[1],
		Lines:   lines,
	}
	state.Tooltip = v.tooltipFor(lines, layout.ContainerWidth())
	return state
}

// resolveLine locates the suggestion's endpoints in the layout and builds
// its line. Any failure skips the suggestion for this pass only: it logs a
// diagnostic, surfaces nothing to the user, and is re-evaluated on the next
// recompute.
func (v *View) resolveLine(layout *Layout, s core.MatchmakingSuggestion) (Line, bool) {
	if s.ID == "" || s.DemandID == "" || s.StockID == "" {
		v.logf("association: malformed suggestion %+v skipped", s)
		return Line{}, false
	}

	demandBox, ok := layout.Lookup(DemandKey(s.DemandID))
	if !ok {
		v.logf("association: demand endpoint %q not found for suggestion %s", s.DemandID, s.ID)
		return Line{}, false
	}
	stockBox, ok := layout.Lookup(StockKey(s.StockID))
	if !ok {
		v.logf("association: stock endpoint %q not found for suggestion %s", s.StockID, s.ID)
		return Line{}, false
	}
	if !demandBox.Visible || !stockBox.Visible {
		v.logf("association: endpoint for suggestion %s not currently visible", s.ID)
		return Line{}, false
	}
	if demandBox.Rect.Zero() || stockBox.Rect.Zero() {
		v.logf("association: endpoint for suggestion %s has zero dimensions", s.ID)
		return Line{}, false
	}

	start := demandBox.Rect.RightCenter()
	end := stockBox.Rect.LeftCenter()
	if !start.Finite() || !end.Finite() {
		v.logf("association: non-finite coordinates for suggestion %s", s.ID)
		return Line{}, false
	}

	confirmed := v.confirmedIDs[s.ID]
	hovered := v.hoveredID == s.ID
	line := Line{
		ID:         s.ID,
		Start:      start,
		End:        end,
		Mid:        midpoint(start, end),
		Suggestion: s,
		Confirmed:  confirmed,
		Color:      LineColorFor(s, confirmed),
		Glow:       hovered,
	}
	if hovered || confirmed {
		line.StrokeWidth = strokeWidthEmphasis
	} else {
		line.StrokeWidth = strokeWidthNormal
	}
	return line, true
}

// cardViews builds the demand and stock card render models, with ring
// highlighting derived from the resolved lines.
func (v *View) cardViews(demands []core.DemandItem, stock []core.StockItem, lines []Line) [2][]CardView {
	demandCards := make([]CardView, 0, len(demands))
	for _, d := range demands {
		card := CardView{
			Key:         DemandKey(d.ID),
			ID:          d.ID,
			ShortID:     shortID(d.ID),
			CompanyName: d.SubmittedByCompanyName,
			Descriptor:  descriptor(d.ProductName, d.ProductFeatures),
			Dimensions:  dimensions(d.ProductFeatures),
			Volume:      volumeLabel(d.CubicMeters),
		}
		for _, line := range lines {
			if line.Suggestion.DemandID == d.ID {
				card.Highlighted = true
				card.Confirmed = card.Confirmed || line.Confirmed
			}
		}
		demandCards = append(demandCards, card)
	}

	stockCards := make([]CardView, 0, len(stock))
	for _, s := range stock {
		card := CardView{
			Key:         StockKey(s.ID),
			ID:          s.ID,
			ShortID:     shortID(s.ID),
			CompanyName: s.UploadedByCompanyName,
			Descriptor:  descriptor(s.ProductName, s.ProductFeatures),
			Dimensions:  dimensions(s.ProductFeatures),
			Volume:      volumeLabel(s.CubicMeters),
			Price:       s.Price,
		}
		for _, line := range lines {
			if line.Suggestion.StockID == s.ID {
				card.Highlighted = true
				card.Confirmed = card.Confirmed || line.Confirmed
			}
		}
		stockCards = append(stockCards, card)
	}

	return [2][]CardView{demandCards, stockCards}
}

func (v *View) tooltipFor(lines []Line, containerWidth float64) *Tooltip {
	if v.hoveredID == "" {
		return nil
	}
	for _, line := range lines {
		if line.ID != v.hoveredID {
			continue
		}
		side := "left"
		if line.Mid.X < containerWidth/2 {
			side = "right"
		}
		tip := &Tooltip{
			SuggestionID:  line.ID,
			Side:          side,
			Reason:        line.Suggestion.Reason,
			MatchStrength: line.Suggestion.MatchStrength,
			Confirmed:     line.Confirmed,
		}
		if line.Suggestion.SimilarityScore > 0 {
			tip.SimilarityPercent = fmt.Sprintf("%.0f%%", line.Suggestion.SimilarityScore*100)
		}
		return tip
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8] + "…"
	}
	return id
}

func descriptor(productName string, f core.ProductFeatures) string {
	name := productName
	if name == "" {
		name = f.DiameterType
	}
	return fmt.Sprintf("%s, Ø%g-%gcm", name, f.DiameterFrom, f.DiameterTo)
}

func dimensions(f core.ProductFeatures) string {
	return fmt.Sprintf("%gm × %gpcs", f.Length, f.Quantity)
}

func volumeLabel(cubicMeters float64) string {
	if cubicMeters <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f m³", cubicMeters)
}
