package core

import "time"

type DemandStatus string

const (
	DemandReceived   DemandStatus = "Received"
	DemandProcessing DemandStatus = "Processing"
	DemandCompleted  DemandStatus = "Completed"
	DemandCancelled  DemandStatus = "Cancelled"
)

type StockStatus string

const (
	StockAvailable StockStatus = "Available"
	StockReserved  StockStatus = "Reserved"
	StockSold      StockStatus = "Sold"
)

type CompanyRole string

const (
	RoleCustomer     CompanyRole = "Customer"
	RoleManufacturer CompanyRole = "Manufacturer"
)

// ProductFeatures are the dimensional attributes shared by demand and stock
// records. Diameters are centimeters, length is meters, quantity is pieces.
// CubicMeters is derived via CalculateVolume at submission time.
type ProductFeatures struct {
	DiameterType string  `json:"diameter_type"`
	DiameterFrom float64 `json:"diameter_from"`
	DiameterTo   float64 `json:"diameter_to"`
	Length       float64 `json:"length"`
	Quantity     float64 `json:"quantity"`
	CubicMeters  float64 `json:"cubic_meters,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// DemandItem is a buyer's request for a timber product.
// Items are never deleted, only status-transitioned.
type DemandItem struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name,omitempty"`
	ProductFeatures
	SubmissionDate         time.Time    `json:"submission_date"`
	Status                 DemandStatus `json:"status"`
	SubmittedByCompanyID   string       `json:"submitted_by_company_id,omitempty"`
	SubmittedByCompanyName string       `json:"submitted_by_company_name,omitempty"`
}

// StockItem mirrors DemandItem for a manufacturer's offered inventory.
// Only Available items are eligible for matching.
type StockItem struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name,omitempty"`
	ProductFeatures
	UploadDate            time.Time   `json:"upload_date"`
	Status                StockStatus `json:"status"`
	Price                 string      `json:"price,omitempty"` // free text, e.g. "120 EUR/m³"
	SustainabilityInfo    string      `json:"sustainability_info,omitempty"`
	UploadedByCompanyID   string      `json:"uploaded_by_company_id,omitempty"`
	UploadedByCompanyName string      `json:"uploaded_by_company_name,omitempty"`
}

// Company is a directory entry used to attribute demand/stock ownership when
// an administrator acts on a company's behalf.
type Company struct {
	ID            string      `json:"id"`
	CompanyName   string      `json:"company_name"`
	Role          CompanyRole `json:"role"`
	ContactPerson string      `json:"contact_person,omitempty"`
	Email         string      `json:"email,omitempty"`
	Address       *Address    `json:"address,omitempty"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

// MatchmakingSuggestion is an AI-proposed demand/stock pairing. Suggestions
// are ephemeral and regenerated on request; their IDs are NOT stable across
// regenerations, so "already confirmed" checks must key off the
// (DemandID, StockID) pair instead.
type MatchmakingSuggestion struct {
	ID              string  `json:"id" jsonschema_description:"Unique identifier for this suggestion"`
	DemandID        string  `json:"demand_id" jsonschema_description:"The id of the demand item being paired"`
	StockID         string  `json:"stock_id" jsonschema_description:"The id of the stock item being paired"`
	Reason          string  `json:"reason" jsonschema_description:"Why this pairing is a good match, considering dimensions, quantity, price and notes"`
	MatchStrength   string  `json:"match_strength,omitempty" jsonschema_description:"Qualitative strength, e.g. High, Medium, Low, or a percentage like 85%"`
	SimilarityScore float64 `json:"similarity_score,omitempty" jsonschema_description:"Numeric similarity in the range 0.0 to 1.0"`
}

// Pair returns the stable dedupe key for a suggestion.
func (s MatchmakingSuggestion) Pair() string { return s.DemandID + "-" + s.StockID }

// ConfirmedMatch is the durable record of a user-accepted pairing. The demand
// and stock snapshots freeze both sides at confirmation time; they do not
// track later edits to the source items.
type ConfirmedMatch struct {
	ID               string     `json:"id"`
	DemandID         string     `json:"demand_id"`
	DemandDetails    DemandItem `json:"demand_details"`
	StockID          string     `json:"stock_id"`
	StockDetails     StockItem  `json:"stock_details"`
	MatchDate        time.Time  `json:"match_date"`
	CommissionRate   string     `json:"commission_rate"`   // decimal string, e.g. "0.05"
	CommissionAmount string     `json:"commission_amount"` // decimal string
	Billed           bool       `json:"billed"`
	InvoiceID        string     `json:"invoice_id,omitempty"`
}

// Pair returns the dedupe key for a confirmed match.
func (m ConfirmedMatch) Pair() string { return m.DemandID + "-" + m.StockID }

// Waypoint is one stop on a simulated delivery route.
type Waypoint struct {
	Name  string `json:"name" jsonschema_description:"Location name"`
	Type  string `json:"type" jsonschema_description:"Either 'pickup' or 'dropoff'"`
	Order int    `json:"order" jsonschema_description:"Zero-based position in the route sequence"`
}

// LoadingPlanItem is one cargo block in an AI-proposed truck loading plan.
// VolumeM3 is free text ("8" or "8 m³"); consumers parse it leniently.
type LoadingPlanItem struct {
	Name              string `json:"name" jsonschema_description:"Cargo description, e.g. 'Acacia posts - 3 crates'"`
	Quality           string `json:"quality,omitempty" jsonschema_description:"Quality grade of the cargo"`
	VolumeM3          string `json:"volume_m3,omitempty" jsonschema_description:"Volume in cubic meters, numeric text like '8'"`
	DensityTonPerM3   string `json:"density_ton_per_m3,omitempty"`
	WeightTon         string `json:"weight_ton,omitempty"`
	LoadingSuggestion string `json:"loading_suggestion,omitempty" jsonschema_description:"Where in the truck bed to place this item"`
	DestinationName   string `json:"destination_name,omitempty" jsonschema_description:"Delivery destination for this item"`
	DropOffOrder      int    `json:"drop_off_order,omitempty" jsonschema_description:"1 for first drop-off, 2 for second, and so on"`
	NotesOnItem       string `json:"notes_on_item,omitempty"`
}

// LoadingPlan is the AI response backing the truck planning screen.
type LoadingPlan struct {
	ID                        string            `json:"id,omitempty"`
	PlanDetails               string            `json:"plan_details" jsonschema_description:"One-line summary of the loading plan"`
	Items                     []LoadingPlanItem `json:"items"`
	CapacityUsed              string            `json:"capacity_used" jsonschema_description:"Capacity utilisation, e.g. '92%'"`
	Waypoints                 []Waypoint        `json:"waypoints,omitempty"`
	OptimizedRouteDescription string            `json:"optimized_route_description,omitempty" jsonschema_description:"Textual description of the pickup and drop-off sequence"`
}
