package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"diet-planner-api/internal/domain"
	"diet-planner-api/internal/planner"
)

type PlanHandler struct {
	planner *planner.Planner
	logger  *zap.Logger
}

func NewPlanHandler(p *planner.Planner, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{planner: p, logger: logger}
}

// Create computes metrics for the submitted profile and returns them with
// the advisor plan. Out-of-range biometric values are computed through
// without rejection; only an undecodable body is a client error.
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var profile domain.BiometricProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.planner.ComputeDietPlan(r.Context(), profile)
	if err != nil {
		h.logger.Error("diet plan request failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "plan advisor is unavailable")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
