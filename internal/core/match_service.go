package core

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"pohi-platform/internal/store"
)

// DefaultCommissionRate is applied when a confirmation request does not name
// an explicit rate.
var DefaultCommissionRate = decimal.RequireFromString("0.05")

// MatchSummaryEntry is an aggregated view of confirmed matches for billing
// charts, keyed by month or product type.
type MatchSummaryEntry struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	MatchCount      int    `json:"match_count"`
	TotalCommission string `json:"total_commission"`
}

type MatchService interface {
	// ConfirmMatch durably records a user-accepted pairing, freezing demand
	// and stock snapshots and computing the commission. Confirmed matches are
	// deduplicated by (demandID, stockID): confirming an already-confirmed
	// pair returns the existing record with created=false, regardless of the
	// suggestion id, which is not stable across regenerations.
	ConfirmMatch(ctx context.Context, suggestion MatchmakingSuggestion, rate decimal.Decimal) (match *ConfirmedMatch, created bool, err error)

	// ListConfirmedMatches returns all confirmed matches, newest first.
	ListConfirmedMatches(ctx context.Context) ([]ConfirmedMatch, error)

	// ConfirmedPairs returns the set of "demandID-stockID" keys already
	// confirmed; the association visualizer derives its confirmed state from
	// this set.
	ConfirmedPairs(ctx context.Context) (map[string]bool, error)

	// MarkBilled flags a confirmed match as billed and attaches an invoice id.
	MarkBilled(ctx context.Context, matchID, invoiceID string) (*ConfirmedMatch, error)

	// CommissionByProduct aggregates confirmed-match commission by product name.
	CommissionByProduct(ctx context.Context) ([]MatchSummaryEntry, error)
}

type matchService struct {
	st store.Store
}

// NewMatchService constructs a MatchService backed by the collection store.
func NewMatchService(st store.Store) MatchService {
	return &matchService{st: st}
}

func (s *matchService) ConfirmMatch(ctx context.Context, suggestion MatchmakingSuggestion, rate decimal.Decimal) (*ConfirmedMatch, bool, error) {
	if suggestion.DemandID == "" || suggestion.StockID == "" {
		return nil, false, fmt.Errorf("suggestion is missing demand or stock id")
	}
	if rate.IsNegative() {
		return nil, false, fmt.Errorf("commission rate must not be negative, got %s", rate)
	}

	var matches []ConfirmedMatch
	if err := s.st.Get(ctx, store.KeyConfirmedMatches, &matches); err != nil {
		return nil, false, err
	}
	for i := range matches {
		if matches[i].Pair() == suggestion.Pair() {
			return &matches[i], false, nil
		}
	}

	var demands []DemandItem
	if err := s.st.Get(ctx, store.KeyDemands, &demands); err != nil {
		return nil, false, err
	}
	demand, ok := findDemand(demands, suggestion.DemandID)
	if !ok {
		return nil, false, fmt.Errorf("demand %q not found", suggestion.DemandID)
	}

	var stock []StockItem
	if err := s.st.Get(ctx, store.KeyStock, &stock); err != nil {
		return nil, false, err
	}
	stockItem, ok := findStock(stock, suggestion.StockID)
	if !ok {
		return nil, false, fmt.Errorf("stock item %q not found", suggestion.StockID)
	}

	match := ConfirmedMatch{
		ID:               newID("MATCH"),
		DemandID:         demand.ID,
		DemandDetails:    demand,
		StockID:          stockItem.ID,
		StockDetails:     stockItem,
		MatchDate:        time.Now().UTC(),
		CommissionRate:   rate.String(),
		CommissionAmount: commissionAmount(demand, stockItem, rate).String(),
	}

	matches = append([]ConfirmedMatch{match}, matches...)
	if err := s.st.Put(ctx, store.KeyConfirmedMatches, matches); err != nil {
		return nil, false, err
	}
	return &match, true, nil
}

func (s *matchService) ListConfirmedMatches(ctx context.Context) ([]ConfirmedMatch, error) {
	var matches []ConfirmedMatch
	if err := s.st.Get(ctx, store.KeyConfirmedMatches, &matches); err != nil {
		return nil, err
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchDate.After(matches[j].MatchDate)
	})
	return matches, nil
}

func (s *matchService) ConfirmedPairs(ctx context.Context) (map[string]bool, error) {
	matches, err := s.ListConfirmedMatches(ctx)
	if err != nil {
		return nil, err
	}
	pairs := make(map[string]bool, len(matches))
	for _, m := range matches {
		pairs[m.Pair()] = true
	}
	return pairs, nil
}

func (s *matchService) MarkBilled(ctx context.Context, matchID, invoiceID string) (*ConfirmedMatch, error) {
	var matches []ConfirmedMatch
	if err := s.st.Get(ctx, store.KeyConfirmedMatches, &matches); err != nil {
		return nil, err
	}
	for i := range matches {
		if matches[i].ID == matchID {
			matches[i].Billed = true
			matches[i].InvoiceID = invoiceID
			if err := s.st.Put(ctx, store.KeyConfirmedMatches, matches); err != nil {
				return nil, err
			}
			return &matches[i], nil
		}
	}
	return nil, fmt.Errorf("confirmed match %q not found", matchID)
}

func (s *matchService) CommissionByProduct(ctx context.Context) ([]MatchSummaryEntry, error) {
	matches, err := s.ListConfirmedMatches(ctx)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		count int
		total decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	var order []string
	for _, m := range matches {
		label := m.DemandDetails.ProductName
		if label == "" {
			label = m.DemandDetails.DiameterType
		}
		b, ok := buckets[label]
		if !ok {
			b = &bucket{total: decimal.Zero}
			buckets[label] = b
			order = append(order, label)
		}
		b.count++
		if amt, err := decimal.NewFromString(m.CommissionAmount); err == nil {
			b.total = b.total.Add(amt)
		}
	}

	sort.Strings(order)
	entries := make([]MatchSummaryEntry, 0, len(order))
	for _, label := range order {
		b := buckets[label]
		entries = append(entries, MatchSummaryEntry{
			ID:              label,
			Label:           label,
			MatchCount:      b.count,
			TotalCommission: b.total.StringFixed(2),
		})
	}
	return entries, nil
}

// commissionAmount prices a match as unit price × matched volume × rate.
// The matched volume is the smaller of the two cubic-meter figures, and the
// unit price is the leading number of the stock item's free-text price. An
// unparseable price yields a zero commission rather than an error.
func commissionAmount(demand DemandItem, stock StockItem, rate decimal.Decimal) decimal.Decimal {
	price, ok := parseUnitPrice(stock.Price)
	if !ok {
		return decimal.Zero
	}
	volume := decimal.NewFromFloat(demand.CubicMeters)
	if sv := decimal.NewFromFloat(stock.CubicMeters); sv.LessThan(volume) {
		volume = sv
	}
	return price.Mul(volume).Mul(rate).Round(2)
}

var priceNumber = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// parseUnitPrice extracts the first number from a free-text price such as
// "120 EUR/m³" or "15,5 EUR/db".
func parseUnitPrice(price string) (decimal.Decimal, bool) {
	raw := priceNumber.FindString(price)
	if raw == "" {
		return decimal.Zero, false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] == ',' {
			raw = raw[:i] + "." + raw[i+1:]
			break
		}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func findDemand(demands []DemandItem, id string) (DemandItem, bool) {
	for _, d := range demands {
		if d.ID == id {
			return d, true
		}
	}
	return DemandItem{}, false
}

func findStock(stock []StockItem, id string) (StockItem, bool) {
	for _, s := range stock {
		if s.ID == id {
			return s, true
		}
	}
	return StockItem{}, false
}
