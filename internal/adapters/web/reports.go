package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pohi-platform/internal/app"
)

// listConfirmedMatches handles GET /api/billing/matches.
func (h *Handler) listConfirmedMatches(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListConfirmedMatches(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "LIST_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result.Matches)
}

type markBilledRequest struct {
	InvoiceID string `json:"invoice_id"`
}

// markMatchBilled handles POST /api/billing/matches/{id}/bill.
func (h *Handler) markMatchBilled(w http.ResponseWriter, r *http.Request) {
	var req markBilledRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "invalid request body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	match, err := h.svc.MarkMatchBilled(r.Context(), chi.URLParam(r, "id"), req.InvoiceID)
	if err != nil {
		writeError(w, r, err.Error(), "BILL_FAILED", http.StatusNotFound)
		return
	}
	writeJSON(w, match)
}

// commissionByProduct handles GET /api/billing/commission-by-product.
func (h *Handler) commissionByProduct(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.CommissionByProduct(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "REPORT_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, entries)
}

// draftCommissionInvoice handles POST /api/billing/matches/{id}/invoice-draft.
func (h *Handler) draftCommissionInvoice(w http.ResponseWriter, r *http.Request) {
	draft, err := h.svc.DraftCommissionInvoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err.Error(), "DRAFT_FAILED", http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, map[string]string{"draft": draft})
}

// dashboardReport handles GET /api/reports/dashboard.
func (h *Handler) dashboardReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.DashboardReport(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "REPORT_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, report)
}

type planTruckLoadRequest struct {
	MatchIDs   []string `json:"match_ids"`
	CapacityM3 float64  `json:"capacity_m3"`
}

// planTruckLoad handles POST /api/logistics/plan.
func (h *Handler) planTruckLoad(w http.ResponseWriter, r *http.Request) {
	var req planTruckLoadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "invalid request body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.PlanTruckLoad(r.Context(), app.PlanTruckLoadRequest{
		MatchIDs:   req.MatchIDs,
		CapacityM3: req.CapacityM3,
	})
	if err != nil {
		writeError(w, r, err.Error(), "PLAN_FAILED", http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, result)
}

// draftShippingEmail handles POST /api/logistics/templates/email.
func (h *Handler) draftShippingEmail(w http.ResponseWriter, r *http.Request) {
	draft, err := h.svc.DraftShippingEmail(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "DRAFT_FAILED", http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, map[string]string{"draft": draft})
}

// waybillChecklist handles POST /api/logistics/templates/waybill.
func (h *Handler) waybillChecklist(w http.ResponseWriter, r *http.Request) {
	points, err := h.svc.WaybillChecklist(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "DRAFT_FAILED", http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, map[string][]string{"checkpoints": points})
}

// seedDemoData handles POST /api/admin/seed-demo.
func (h *Handler) seedDemoData(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.svc.SeedDemoData(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "SEED_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, seeded)
}
