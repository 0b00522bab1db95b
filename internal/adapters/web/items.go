package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pohi-platform/internal/app"
	"pohi-platform/internal/core"
)

type submitDemandRequest struct {
	CompanyID    string  `json:"company_id"`
	ProductName  string  `json:"product_name"`
	DiameterType string  `json:"diameter_type"`
	DiameterFrom float64 `json:"diameter_from"`
	DiameterTo   float64 `json:"diameter_to"`
	Length       float64 `json:"length"`
	Quantity     float64 `json:"quantity"`
	Notes        string  `json:"notes"`
}

// submitDemand handles POST /api/demands.
func (h *Handler) submitDemand(w http.ResponseWriter, r *http.Request) {
	var req submitDemandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "invalid request body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	demand, err := h.svc.SubmitDemand(r.Context(), app.SubmitDemandRequest{
		CompanyID:    req.CompanyID,
		ProductName:  req.ProductName,
		DiameterType: req.DiameterType,
		DiameterFrom: req.DiameterFrom,
		DiameterTo:   req.DiameterTo,
		Length:       req.Length,
		Quantity:     req.Quantity,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(w, r, err.Error(), "SUBMIT_FAILED", http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, demand)
}

// listDemands handles GET /api/demands.
func (h *Handler) listDemands(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListDemands(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "LIST_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result.Demands)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// updateDemandStatus handles PATCH /api/demands/{id}/status.
func (h *Handler) updateDemandStatus(w http.ResponseWriter, r *http.Request) {
	var req statusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "invalid request body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	demand, err := h.svc.UpdateDemandStatus(r.Context(), chi.URLParam(r, "id"), core.DemandStatus(req.Status))
	if err != nil {
		writeError(w, r, err.Error(), "UPDATE_FAILED", http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, demand)
}

type uploadStockRequest struct {
	CompanyID          string  `json:"company_id"`
	ProductName        string  `json:"product_name"`
	DiameterType       string  `json:"diameter_type"`
	DiameterFrom       float64 `json:"diameter_from"`
	DiameterTo         float64 `json:"diameter_to"`
	Length             float64 `json:"length"`
	Quantity           float64 `json:"quantity"`
	Price              string  `json:"price"`
	SustainabilityInfo string  `json:"sustainability_info"`
	Notes              string  `json:"notes"`
}

// uploadStock handles POST /api/stock.
func (h *Handler) uploadStock(w http.ResponseWriter, r *http.Request) {
	var req uploadStockRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "invalid request body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	item, err := h.svc.UploadStock(r.Context(), app.UploadStockRequest{
		CompanyID:          req.CompanyID,
		ProductName:        req.ProductName,
		DiameterType:       req.DiameterType,
		DiameterFrom:       req.DiameterFrom,
		DiameterTo:         req.DiameterTo,
		Length:             req.Length,
		Quantity:           req.Quantity,
		Price:              req.Price,
		SustainabilityInfo: req.SustainabilityInfo,
		Notes:              req.Notes,
	})
	if err != nil {
		writeError(w, r, err.Error(), "UPLOAD_FAILED", http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, item)
}

// listStock handles GET /api/stock.
func (h *Handler) listStock(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListStock(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "LIST_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result.Stock)
}

// updateStockStatus handles PATCH /api/stock/{id}/status.
func (h *Handler) updateStockStatus(w http.ResponseWriter, r *http.Request) {
	var req statusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "invalid request body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	item, err := h.svc.UpdateStockStatus(r.Context(), chi.URLParam(r, "id"), core.StockStatus(req.Status))
	if err != nil {
		writeError(w, r, err.Error(), "UPDATE_FAILED", http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, item)
}

type createCompanyRequest struct {
	CompanyName   string `json:"company_name"`
	Role          string `json:"role"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Street        string `json:"street"`
	City          string `json:"city"`
	ZipCode       string `json:"zip_code"`
	Country       string `json:"country"`
}

// createCompany handles POST /api/companies.
func (h *Handler) createCompany(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "invalid request body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	company, err := h.svc.CreateCompany(r.Context(), app.CreateCompanyRequest{
		CompanyName:   req.CompanyName,
		Role:          core.CompanyRole(req.Role),
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Street:        req.Street,
		City:          req.City,
		ZipCode:       req.ZipCode,
		Country:       req.Country,
	})
	if err != nil {
		writeError(w, r, err.Error(), "CREATE_FAILED", http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, company)
}

// listCompanies handles GET /api/companies. An optional ?role= query filters
// by directory role.
func (h *Handler) listCompanies(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListCompanies(r.Context(), core.CompanyRole(r.URL.Query().Get("role")))
	if err != nil {
		writeError(w, r, err.Error(), "LIST_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result.Companies)
}

// deleteCompany handles DELETE /api/companies/{id}.
func (h *Handler) deleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCompany(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err.Error(), "DELETE_FAILED", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]string{"status": "deleted"})
}
