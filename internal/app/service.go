package app

import (
	"context"

	"github.com/shopspring/decimal"

	"pohi-platform/internal/core"
)

// ApplicationService is the single interface all UI adapters (CLI, Web) call.
// It decouples presentation from business logic. Implementations must contain
// no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// SubmitDemand records a new customer demand. A non-empty CompanyID
	// attributes the submission to that directory company.
	SubmitDemand(ctx context.Context, req SubmitDemandRequest) (*core.DemandItem, error)

	// ListDemands returns all demands, newest first.
	ListDemands(ctx context.Context) (*DemandListResult, error)

	// UpdateDemandStatus transitions a demand's lifecycle status.
	UpdateDemandStatus(ctx context.Context, id string, status core.DemandStatus) (*core.DemandItem, error)

	// UploadStock records a new manufacturer stock item. A non-empty
	// CompanyID attributes the upload to that directory company.
	UploadStock(ctx context.Context, req UploadStockRequest) (*core.StockItem, error)

	// ListStock returns all stock items, newest first.
	ListStock(ctx context.Context) (*StockListResult, error)

	// UpdateStockStatus transitions a stock item's lifecycle status.
	UpdateStockStatus(ctx context.Context, id string, status core.StockStatus) (*core.StockItem, error)

	// CreateCompany adds a directory entry.
	CreateCompany(ctx context.Context, req CreateCompanyRequest) (*core.Company, error)

	// ListCompanies returns the directory, optionally filtered by role.
	ListCompanies(ctx context.Context, role core.CompanyRole) (*CompanyListResult, error)

	// DeleteCompany removes a directory entry.
	DeleteCompany(ctx context.Context, id string) error

	// SuggestMatches asks the AI agent to pair active demands with available
	// stock. AI failures do not error: they surface as an advisory message
	// in the result so adapters can render them verbatim.
	SuggestMatches(ctx context.Context) (*SuggestionsResult, error)

	// VisualizeMatches renders the association view for a suggestion payload
	// against the current demand, stock and confirmed-match state.
	VisualizeMatches(ctx context.Context, req VisualizeRequest) (*VisualizationResult, error)

	// ConfirmMatch durably records an accepted pairing at the given
	// commission rate (zero value means the default rate). Confirming an
	// already-confirmed (demand, stock) pair is idempotent.
	ConfirmMatch(ctx context.Context, suggestion core.MatchmakingSuggestion, rate decimal.Decimal) (*ConfirmMatchResult, error)

	// ListConfirmedMatches returns all confirmed matches, newest first.
	ListConfirmedMatches(ctx context.Context) (*ConfirmedMatchListResult, error)

	// MarkMatchBilled flags a confirmed match as billed under an invoice id.
	MarkMatchBilled(ctx context.Context, matchID, invoiceID string) (*core.ConfirmedMatch, error)

	// CommissionByProduct aggregates confirmed-match commission per product.
	CommissionByProduct(ctx context.Context) ([]core.MatchSummaryEntry, error)

	// DashboardReport assembles the admin dashboard aggregates.
	DashboardReport(ctx context.Context) (*core.DashboardReport, error)

	// PlanTruckLoad asks the AI agent for a loading plan over the unbilled
	// confirmed matches and renders the truck-bed and route views.
	PlanTruckLoad(ctx context.Context, req PlanTruckLoadRequest) (*TruckPlanResult, error)

	// DraftShippingEmail generates a ready-for-shipping notification draft.
	DraftShippingEmail(ctx context.Context) (string, error)

	// WaybillChecklist generates dispatch checkpoints for a transport waybill.
	WaybillChecklist(ctx context.Context) ([]string, error)

	// DraftCommissionInvoice generates an invoice body for a confirmed
	// match's commission.
	DraftCommissionInvoice(ctx context.Context, matchID string) (string, error)

	// SeedDemoData loads the demo scenario: two companies, two demands and
	// three stock items sized so the AI has obvious pairings to find.
	SeedDemoData(ctx context.Context) (*SeedResult, error)
}
