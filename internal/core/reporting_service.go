package core

import (
	"context"
	"math"
	"sort"

	"pohi-platform/internal/store"
)

// StatusSummaryPoint is one row of a status breakdown chart.
type StatusSummaryPoint struct {
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // of the total, rounded to 1 decimal
}

// CompanyVolumePoint ranks a company by total submitted/uploaded volume.
type CompanyVolumePoint struct {
	CompanyID   string  `json:"company_id"`
	CompanyName string  `json:"company_name"`
	TotalVolume float64 `json:"total_volume"` // m³, rounded to 2 decimals
}

// DashboardReport is the admin dashboard payload: status breakdowns, totals
// and the top-5 company rankings by cubic-meter volume.
type DashboardReport struct {
	DemandStatusSummary []StatusSummaryPoint `json:"demand_status_summary"`
	StockStatusSummary  []StatusSummaryPoint `json:"stock_status_summary"`
	TotalDemands        int                  `json:"total_demands"`
	TotalStockItems     int                  `json:"total_stock_items"`
	TopCustomers        []CompanyVolumePoint `json:"top_customers_by_volume"`
	TopManufacturers    []CompanyVolumePoint `json:"top_manufacturers_by_volume"`
}

type ReportingService interface {
	// DashboardReport assembles the admin dashboard aggregates from the
	// demand, stock and company collections.
	DashboardReport(ctx context.Context) (*DashboardReport, error)
}

type reportingService struct {
	st store.Store
}

// NewReportingService constructs a ReportingService backed by the collection store.
func NewReportingService(st store.Store) ReportingService {
	return &reportingService{st: st}
}

func (s *reportingService) DashboardReport(ctx context.Context) (*DashboardReport, error) {
	var demands []DemandItem
	if err := s.st.Get(ctx, store.KeyDemands, &demands); err != nil {
		return nil, err
	}
	var stock []StockItem
	if err := s.st.Get(ctx, store.KeyStock, &stock); err != nil {
		return nil, err
	}
	var companies []Company
	if err := s.st.Get(ctx, store.KeyCompanies, &companies); err != nil {
		return nil, err
	}

	report := &DashboardReport{
		TotalDemands:    len(demands),
		TotalStockItems: len(stock),
	}

	demandCounts := map[DemandStatus]int{}
	for _, d := range demands {
		demandCounts[d.Status]++
	}
	for _, st := range []DemandStatus{DemandReceived, DemandProcessing, DemandCompleted, DemandCancelled} {
		report.DemandStatusSummary = append(report.DemandStatusSummary, summaryPoint(string(st), demandCounts[st], len(demands)))
	}

	stockCounts := map[StockStatus]int{}
	for _, item := range stock {
		stockCounts[item.Status]++
	}
	for _, st := range []StockStatus{StockAvailable, StockReserved, StockSold} {
		report.StockStatusSummary = append(report.StockStatusSummary, summaryPoint(string(st), stockCounts[st], len(stock)))
	}

	customerVolumes := map[string]float64{}
	for _, d := range demands {
		if d.SubmittedByCompanyID != "" && d.CubicMeters > 0 {
			customerVolumes[d.SubmittedByCompanyID] += d.CubicMeters
		}
	}
	manufacturerVolumes := map[string]float64{}
	for _, item := range stock {
		if item.UploadedByCompanyID != "" && item.CubicMeters > 0 {
			manufacturerVolumes[item.UploadedByCompanyID] += item.CubicMeters
		}
	}
	report.TopCustomers = topCompanies(companies, RoleCustomer, customerVolumes)
	report.TopManufacturers = topCompanies(companies, RoleManufacturer, manufacturerVolumes)

	return report, nil
}

func summaryPoint(status string, count, total int) StatusSummaryPoint {
	p := StatusSummaryPoint{Status: status, Count: count}
	if total > 0 {
		p.Percentage = math.Round(float64(count)/float64(total)*1000) / 10
	}
	return p
}

// topCompanies returns up to 5 companies of the given role ranked by volume.
func topCompanies(companies []Company, role CompanyRole, volumes map[string]float64) []CompanyVolumePoint {
	var points []CompanyVolumePoint
	for _, c := range companies {
		if c.Role != role || volumes[c.ID] <= 0 {
			continue
		}
		points = append(points, CompanyVolumePoint{
			CompanyID:   c.ID,
			CompanyName: c.CompanyName,
			TotalVolume: math.Round(volumes[c.ID]*100) / 100,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].TotalVolume > points[j].TotalVolume
	})
	if len(points) > 5 {
		points = points[:5]
	}
	return points
}
