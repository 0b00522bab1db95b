package app

import "pohi-platform/internal/core"

// SubmitDemandRequest is the input for a new customer demand.
type SubmitDemandRequest struct {
	CompanyID    string // optional; attributes the demand to a directory company
	ProductName  string
	DiameterType string
	DiameterFrom float64
	DiameterTo   float64
	Length       float64
	Quantity     float64
	Notes        string
}

// UploadStockRequest is the input for a new manufacturer stock item.
type UploadStockRequest struct {
	CompanyID          string // optional; attributes the upload to a directory company
	ProductName        string
	DiameterType       string
	DiameterFrom       float64
	DiameterTo         float64
	Length             float64
	Quantity           float64
	Price              string
	SustainabilityInfo string
	Notes              string
}

// CreateCompanyRequest is the input for a new directory entry.
type CreateCompanyRequest struct {
	CompanyName   string
	Role          core.CompanyRole
	ContactPerson string
	Email         string
	Street        string
	City          string
	ZipCode       string
	Country       string
}

// VisualizeRequest carries a suggestion payload plus the viewport state the
// association view is rendered against.
type VisualizeRequest struct {
	Suggestions    []core.MatchmakingSuggestion
	Advisory       string // non-empty renders as a message instead of the canvas
	ContainerWidth float64
	DemandScroll   float64
	StockScroll    float64
	HoveredID      string
}

// PlanTruckLoadRequest selects the deliveries and truck for a loading plan.
type PlanTruckLoadRequest struct {
	MatchIDs   []string // empty means all unbilled confirmed matches
	CapacityM3 float64  // zero means the default 25 m³ rig
}
