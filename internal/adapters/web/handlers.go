package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pohi-platform/internal/app"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc    app.ApplicationService
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	// ── Health (public) ──────────────────────────────────────────────────────
	r.Get("/api/health", h.health)

	// ── Marketplace records ──────────────────────────────────────────────────
	r.Get("/api/demands", h.listDemands)
	r.Post("/api/demands", h.submitDemand)
	r.Patch("/api/demands/{id}/status", h.updateDemandStatus)

	r.Get("/api/stock", h.listStock)
	r.Post("/api/stock", h.uploadStock)
	r.Patch("/api/stock/{id}/status", h.updateStockStatus)

	// ── Matchmaking ──────────────────────────────────────────────────────────
	r.Post("/api/matchmaking/suggest", h.suggestMatches)
	r.Post("/api/matchmaking/visualize", h.visualizeMatches)
	r.Post("/api/matchmaking/confirm", h.confirmMatch)

	// ── Admin surface ────────────────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(RequireRole(RoleAdministrator))

		r.Get("/api/companies", h.listCompanies)
		r.Post("/api/companies", h.createCompany)
		r.Delete("/api/companies/{id}", h.deleteCompany)

		r.Get("/api/billing/matches", h.listConfirmedMatches)
		r.Post("/api/billing/matches/{id}/bill", h.markMatchBilled)
		r.Get("/api/billing/commission-by-product", h.commissionByProduct)
		r.Post("/api/billing/matches/{id}/invoice-draft", h.draftCommissionInvoice)

		r.Get("/api/reports/dashboard", h.dashboardReport)

		r.Post("/api/logistics/plan", h.planTruckLoad)
		r.Post("/api/logistics/templates/email", h.draftShippingEmail)
		r.Post("/api/logistics/templates/waybill", h.waybillChecklist)

		r.Post("/api/admin/seed-demo", h.seedDemoData)
	})

	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// health handles GET /api/health.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}
