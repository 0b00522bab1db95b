package app

import (
	"pohi-platform/internal/core"
	"pohi-platform/internal/vis"
)

// DemandListResult is returned by ListDemands.
type DemandListResult struct {
	Demands []core.DemandItem
}

// StockListResult is returned by ListStock.
type StockListResult struct {
	Stock []core.StockItem
}

// CompanyListResult is returned by ListCompanies.
type CompanyListResult struct {
	Companies []core.Company
}

// SuggestionsResult is returned by SuggestMatches. Exactly one of
// Suggestions and Advisory is meaningful: a failed or unavailable AI call
// yields an advisory message instead of an error.
type SuggestionsResult struct {
	Suggestions []core.MatchmakingSuggestion
	Advisory    string
}

// VisualizationResult is returned by VisualizeMatches.
type VisualizationResult struct {
	State vis.RenderState
}

// ConfirmMatchResult is returned by ConfirmMatch.
type ConfirmMatchResult struct {
	Match   *core.ConfirmedMatch
	Created bool // false when the pair was already confirmed
}

// ConfirmedMatchListResult is returned by ListConfirmedMatches.
type ConfirmedMatchListResult struct {
	Matches []core.ConfirmedMatch
}

// TruckPlanResult is returned by PlanTruckLoad.
type TruckPlanResult struct {
	Plan  *core.LoadingPlan
	Truck vis.TruckLoadView
	Route vis.RouteView
}

// SeedResult is returned by SeedDemoData.
type SeedResult struct {
	Companies int
	Demands   int
	Stock     int
}
