package app

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"pohi-platform/internal/ai"
	"pohi-platform/internal/core"
	"pohi-platform/internal/vis"
)

// AIService is the full AI surface the application layer depends on.
// *ai.Agent satisfies it; tests substitute a stub.
type AIService interface {
	ai.SuggestionService
	DraftShippingEmail(ctx context.Context) (string, error)
	WaybillChecklist(ctx context.Context) ([]string, error)
	DraftCommissionInvoice(ctx context.Context, demandSummary, stockSummary, commission string) (string, error)
}

// DefaultTruckCapacityM3 is the standard rig used when a plan request does
// not name a capacity.
const DefaultTruckCapacityM3 = 25

type appService struct {
	demands   core.DemandService
	stock     core.StockService
	companies core.CompanyService
	matches   core.MatchService
	reports   core.ReportingService
	agent     AIService
}

// NewAppService constructs an appService that satisfies ApplicationService.
// agent may be nil when no API key is configured; AI operations then return
// advisory messages or errors instead of calling out.
func NewAppService(
	demands core.DemandService,
	stock core.StockService,
	companies core.CompanyService,
	matches core.MatchService,
	reports core.ReportingService,
	agent AIService,
) ApplicationService {
	return &appService{
		demands:   demands,
		stock:     stock,
		companies: companies,
		matches:   matches,
		reports:   reports,
		agent:     agent,
	}
}

// ── Demands ─────────────────────────────────────────────────────────────────

func (s *appService) SubmitDemand(ctx context.Context, req SubmitDemandRequest) (*core.DemandItem, error) {
	onBehalfOf, err := s.resolveCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	return s.demands.SubmitDemand(ctx, core.DemandInput{
		ProductName:  req.ProductName,
		DiameterType: req.DiameterType,
		DiameterFrom: req.DiameterFrom,
		DiameterTo:   req.DiameterTo,
		Length:       req.Length,
		Quantity:     req.Quantity,
		Notes:        req.Notes,
	}, onBehalfOf)
}

func (s *appService) ListDemands(ctx context.Context) (*DemandListResult, error) {
	demands, err := s.demands.ListDemands(ctx)
	if err != nil {
		return nil, err
	}
	return &DemandListResult{Demands: demands}, nil
}

func (s *appService) UpdateDemandStatus(ctx context.Context, id string, status core.DemandStatus) (*core.DemandItem, error) {
	return s.demands.UpdateDemandStatus(ctx, id, status)
}

// ── Stock ───────────────────────────────────────────────────────────────────

func (s *appService) UploadStock(ctx context.Context, req UploadStockRequest) (*core.StockItem, error) {
	onBehalfOf, err := s.resolveCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	return s.stock.UploadStock(ctx, core.StockInput{
		ProductName:        req.ProductName,
		DiameterType:       req.DiameterType,
		DiameterFrom:       req.DiameterFrom,
		DiameterTo:         req.DiameterTo,
		Length:             req.Length,
		Quantity:           req.Quantity,
		Price:              req.Price,
		SustainabilityInfo: req.SustainabilityInfo,
		Notes:              req.Notes,
	}, onBehalfOf)
}

func (s *appService) ListStock(ctx context.Context) (*StockListResult, error) {
	stock, err := s.stock.ListStock(ctx)
	if err != nil {
		return nil, err
	}
	return &StockListResult{Stock: stock}, nil
}

func (s *appService) UpdateStockStatus(ctx context.Context, id string, status core.StockStatus) (*core.StockItem, error) {
	return s.stock.UpdateStockStatus(ctx, id, status)
}

// ── Companies ───────────────────────────────────────────────────────────────

func (s *appService) CreateCompany(ctx context.Context, req CreateCompanyRequest) (*core.Company, error) {
	var addr *core.Address
	if req.Street != "" || req.City != "" || req.ZipCode != "" || req.Country != "" {
		addr = &core.Address{Street: req.Street, City: req.City, ZipCode: req.ZipCode, Country: req.Country}
	}
	return s.companies.CreateCompany(ctx, core.CompanyInput{
		CompanyName:   req.CompanyName,
		Role:          req.Role,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Address:       addr,
	})
}

func (s *appService) ListCompanies(ctx context.Context, role core.CompanyRole) (*CompanyListResult, error) {
	companies, err := s.companies.ListCompanies(ctx, role)
	if err != nil {
		return nil, err
	}
	return &CompanyListResult{Companies: companies}, nil
}

func (s *appService) DeleteCompany(ctx context.Context, id string) error {
	return s.companies.DeleteCompany(ctx, id)
}

// ── Matchmaking ─────────────────────────────────────────────────────────────

func (s *appService) SuggestMatches(ctx context.Context) (*SuggestionsResult, error) {
	if s.agent == nil {
		return &SuggestionsResult{Advisory: "The AI matchmaking service is not configured."}, nil
	}

	demands, err := s.activeDemands(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := s.stock.ListAvailableStock(ctx)
	if err != nil {
		return nil, err
	}
	if len(demands) == 0 || len(stock) == 0 {
		return &SuggestionsResult{}, nil
	}

	suggestions, err := s.agent.SuggestMatches(ctx, demands, stock)
	if err != nil {
		log.Printf("matchmaking suggestion call failed: %v", err)
		return &SuggestionsResult{Advisory: fmt.Sprintf("The AI matchmaking service is temporarily unavailable: %v", err)}, nil
	}
	return &SuggestionsResult{Suggestions: suggestions}, nil
}

func (s *appService) VisualizeMatches(ctx context.Context, req VisualizeRequest) (*VisualizationResult, error) {
	demands, err := s.demands.ListDemands(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := s.stock.ListStock(ctx)
	if err != nil {
		return nil, err
	}
	pairs, err := s.matches.ConfirmedPairs(ctx)
	if err != nil {
		return nil, err
	}

	view := vis.NewView(vis.Options{
		Layout: vis.LayoutConfig{ContainerWidth: req.ContainerWidth},
	})
	defer view.Close()

	payload := vis.Suggestions(req.Suggestions)
	if req.Advisory != "" {
		payload = vis.Advisory(req.Advisory)
	}
	view.SetData(payload, demands, stock, pairs)
	view.SetScroll(req.DemandScroll, req.StockScroll)
	if req.HoveredID != "" {
		view.Hover(req.HoveredID)
	}
	return &VisualizationResult{State: view.Render()}, nil
}

func (s *appService) ConfirmMatch(ctx context.Context, suggestion core.MatchmakingSuggestion, rate decimal.Decimal) (*ConfirmMatchResult, error) {
	if rate.IsZero() {
		rate = core.DefaultCommissionRate
	}
	match, created, err := s.matches.ConfirmMatch(ctx, suggestion, rate)
	if err != nil {
		return nil, err
	}
	return &ConfirmMatchResult{Match: match, Created: created}, nil
}

func (s *appService) ListConfirmedMatches(ctx context.Context) (*ConfirmedMatchListResult, error) {
	matches, err := s.matches.ListConfirmedMatches(ctx)
	if err != nil {
		return nil, err
	}
	return &ConfirmedMatchListResult{Matches: matches}, nil
}

func (s *appService) MarkMatchBilled(ctx context.Context, matchID, invoiceID string) (*core.ConfirmedMatch, error) {
	return s.matches.MarkBilled(ctx, matchID, invoiceID)
}

func (s *appService) CommissionByProduct(ctx context.Context) ([]core.MatchSummaryEntry, error) {
	return s.matches.CommissionByProduct(ctx)
}

// ── Reporting and logistics ─────────────────────────────────────────────────

func (s *appService) DashboardReport(ctx context.Context) (*core.DashboardReport, error) {
	return s.reports.DashboardReport(ctx)
}

func (s *appService) PlanTruckLoad(ctx context.Context, req PlanTruckLoadRequest) (*TruckPlanResult, error) {
	if s.agent == nil {
		return nil, fmt.Errorf("AI planning is not configured")
	}
	capacity := req.CapacityM3
	if capacity <= 0 {
		capacity = DefaultTruckCapacityM3
	}

	deliveries, err := s.selectDeliveries(ctx, req.MatchIDs)
	if err != nil {
		return nil, err
	}
	if len(deliveries) == 0 {
		return nil, fmt.Errorf("no confirmed deliveries to plan")
	}

	plan, err := s.agent.SuggestLoadingPlan(ctx, deliveries, capacity)
	if err != nil {
		return nil, fmt.Errorf("loading plan failed: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &TruckPlanResult{
		Plan:  plan,
		Truck: vis.NewTruckLoadView(vis.TruckConfig{CapacityM3: capacity}, plan),
		Route: vis.NewRouteView(vis.RouteConfig{}, plan.Waypoints, plan.OptimizedRouteDescription, rng),
	}, nil
}

func (s *appService) DraftShippingEmail(ctx context.Context) (string, error) {
	if s.agent == nil {
		return "", fmt.Errorf("AI drafting is not configured")
	}
	return s.agent.DraftShippingEmail(ctx)
}

func (s *appService) WaybillChecklist(ctx context.Context) ([]string, error) {
	if s.agent == nil {
		return nil, fmt.Errorf("AI drafting is not configured")
	}
	return s.agent.WaybillChecklist(ctx)
}

func (s *appService) DraftCommissionInvoice(ctx context.Context, matchID string) (string, error) {
	if s.agent == nil {
		return "", fmt.Errorf("AI drafting is not configured")
	}
	matches, err := s.matches.ListConfirmedMatches(ctx)
	if err != nil {
		return "", err
	}
	for _, m := range matches {
		if m.ID == matchID {
			return s.agent.DraftCommissionInvoice(ctx,
				summarizeDemand(m.DemandDetails),
				summarizeStock(m.StockDetails),
				m.CommissionAmount,
			)
		}
	}
	return "", fmt.Errorf("confirmed match %q not found", matchID)
}

// ── Demo data ───────────────────────────────────────────────────────────────

func (s *appService) SeedDemoData(ctx context.Context) (*SeedResult, error) {
	customer, err := s.companies.CreateCompany(ctx, core.CompanyInput{
		CompanyName:   "Tisza Timber Ltd.",
		Role:          core.RoleCustomer,
		ContactPerson: "Kovács Anna",
		Email:         "anna.kovacs@tiszatimber.example",
		Address:       &core.Address{City: "Szeged", Country: "Hungary"},
	})
	if err != nil {
		return nil, err
	}
	manufacturer, err := s.companies.CreateCompany(ctx, core.CompanyInput{
		CompanyName:   "Bakony Forestry Kft.",
		Role:          core.RoleManufacturer,
		ContactPerson: "Szabó Gábor",
		Email:         "gabor.szabo@bakonyforestry.example",
		Address:       &core.Address{City: "Veszprém", Country: "Hungary"},
	})
	if err != nil {
		return nil, err
	}

	demandInputs := []core.DemandInput{
		{ProductName: "Acacia posts", DiameterType: "mid", DiameterFrom: 14, DiameterTo: 18, Length: 3, Quantity: 166, Notes: "Debarked, for vineyard use."},
		{ProductName: "Acacia posts", DiameterType: "mid", DiameterFrom: 12, DiameterTo: 16, Length: 2.5, Quantity: 290},
	}
	for _, input := range demandInputs {
		if _, err := s.demands.SubmitDemand(ctx, input, customer); err != nil {
			return nil, err
		}
	}

	stockInputs := []core.StockInput{
		{ProductName: "Acacia posts", DiameterType: "mid", DiameterFrom: 14, DiameterTo: 18, Length: 3, Quantity: 133, Price: "120 EUR/m³", SustainabilityInfo: "PEFC certified"},
		{ProductName: "Acacia posts", DiameterType: "mid", DiameterFrom: 12, DiameterTo: 16, Length: 2.5, Quantity: 145, Price: "110 EUR/m³"},
		{ProductName: "Acacia posts", DiameterType: "mid", DiameterFrom: 12, DiameterTo: 16, Length: 2.5, Quantity: 186, Price: "115 EUR/m³", SustainabilityInfo: "Replanting program"},
	}
	for _, input := range stockInputs {
		if _, err := s.stock.UploadStock(ctx, input, manufacturer); err != nil {
			return nil, err
		}
	}

	return &SeedResult{Companies: 2, Demands: len(demandInputs), Stock: len(stockInputs)}, nil
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func (s *appService) resolveCompany(ctx context.Context, id string) (*core.Company, error) {
	if id == "" {
		return nil, nil
	}
	return s.companies.GetCompany(ctx, id)
}

func (s *appService) activeDemands(ctx context.Context) ([]core.DemandItem, error) {
	all, err := s.demands.ListDemands(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]core.DemandItem, 0, len(all))
	for _, d := range all {
		if d.Status == core.DemandReceived {
			active = append(active, d)
		}
	}
	return active, nil
}

// selectDeliveries returns confirmed matches to plan: the named ones, or all
// unbilled ones when no ids are given.
func (s *appService) selectDeliveries(ctx context.Context, matchIDs []string) ([]core.ConfirmedMatch, error) {
	matches, err := s.matches.ListConfirmedMatches(ctx)
	if err != nil {
		return nil, err
	}
	if len(matchIDs) == 0 {
		unbilled := make([]core.ConfirmedMatch, 0, len(matches))
		for _, m := range matches {
			if !m.Billed {
				unbilled = append(unbilled, m)
			}
		}
		return unbilled, nil
	}

	wanted := make(map[string]bool, len(matchIDs))
	for _, id := range matchIDs {
		wanted[id] = true
	}
	selected := make([]core.ConfirmedMatch, 0, len(matchIDs))
	for _, m := range matches {
		if wanted[m.ID] {
			selected = append(selected, m)
			delete(wanted, m.ID)
		}
	}
	for id := range wanted {
		return nil, fmt.Errorf("confirmed match %q not found", id)
	}
	return selected, nil
}

func summarizeDemand(d core.DemandItem) string {
	return fmt.Sprintf("%s Ø%g-%gcm, %gm × %gpcs (%.2f m³) for %s",
		d.ProductName, d.DiameterFrom, d.DiameterTo, d.Length, d.Quantity, d.CubicMeters, d.SubmittedByCompanyName)
}

func summarizeStock(s core.StockItem) string {
	return fmt.Sprintf("%s Ø%g-%gcm, %gm × %gpcs (%.2f m³) at %s from %s",
		s.ProductName, s.DiameterFrom, s.DiameterTo, s.Length, s.Quantity, s.CubicMeters, s.Price, s.UploadedByCompanyName)
}
