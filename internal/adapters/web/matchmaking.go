package web

import (
	"net/http"

	"github.com/shopspring/decimal"

	"pohi-platform/internal/app"
	"pohi-platform/internal/core"
)

// suggestMatches handles POST /api/matchmaking/suggest. AI failures surface
// as an advisory in the payload, not as an HTTP error.
func (h *Handler) suggestMatches(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.SuggestMatches(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "SUGGEST_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

type visualizeRequest struct {
	Suggestions    []core.MatchmakingSuggestion `json:"suggestions"`
	Advisory       string                       `json:"advisory"`
	ContainerWidth float64                      `json:"container_width"`
	DemandScroll   float64                      `json:"demand_scroll"`
	StockScroll    float64                      `json:"stock_scroll"`
	HoveredID      string                       `json:"hovered_id"`
}

// visualizeMatches handles POST /api/matchmaking/visualize.
func (h *Handler) visualizeMatches(w http.ResponseWriter, r *http.Request) {
	var req visualizeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "invalid request body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.VisualizeMatches(r.Context(), app.VisualizeRequest{
		Suggestions:    req.Suggestions,
		Advisory:       req.Advisory,
		ContainerWidth: req.ContainerWidth,
		DemandScroll:   req.DemandScroll,
		StockScroll:    req.StockScroll,
		HoveredID:      req.HoveredID,
	})
	if err != nil {
		writeError(w, r, err.Error(), "VISUALIZE_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result.State)
}

type confirmMatchRequest struct {
	Suggestion     core.MatchmakingSuggestion `json:"suggestion"`
	CommissionRate string                     `json:"commission_rate"` // empty means the default rate
}

// confirmMatch handles POST /api/matchmaking/confirm.
func (h *Handler) confirmMatch(w http.ResponseWriter, r *http.Request) {
	var req confirmMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "invalid request body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	rate := decimal.Zero
	if req.CommissionRate != "" {
		parsed, err := decimal.NewFromString(req.CommissionRate)
		if err != nil {
			writeError(w, r, "invalid commission rate: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
			return
		}
		rate = parsed
	}

	result, err := h.svc.ConfirmMatch(r.Context(), req.Suggestion, rate)
	if err != nil {
		writeError(w, r, err.Error(), "CONFIRM_FAILED", http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, result)
}
