package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"diet-planner-api/internal/domain"
	"diet-planner-api/internal/nutrition"
)

type foodSearchRequest struct {
	Query    string `json:"query"`
	PageSize int    `json:"page_size"`
}

type foodSearchResponse struct {
	Query   string               `json:"query"`
	Results []domain.FoodSummary `json:"results"`
}

type FoodHandler struct {
	client *nutrition.Client
	logger *zap.Logger
}

func NewFoodHandler(client *nutrition.Client, logger *zap.Logger) *FoodHandler {
	return &FoodHandler{client: client, logger: logger}
}

func (h *FoodHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req foodSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}
	if req.PageSize <= 0 {
		req.PageSize = nutrition.DefaultPageSize
	}

	results, err := h.client.Search(r.Context(), req.Query, req.PageSize)
	if err != nil {
		h.writeLookupError(w, err, "food search failed")
		return
	}

	writeJSON(w, http.StatusOK, foodSearchResponse{Query: req.Query, Results: results})
}

func (h *FoodHandler) Details(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid food id")
		return
	}

	detail, err := h.client.Details(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, err, "food detail lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (h *FoodHandler) writeLookupError(w http.ResponseWriter, err error, msg string) {
	h.logger.Error(msg, zap.Error(err))

	switch {
	case errors.Is(err, nutrition.ErrAPIKeyMissing):
		writeError(w, http.StatusInternalServerError, "nutrition service is not configured")
	case errors.Is(err, nutrition.ErrUpstream):
		writeError(w, http.StatusBadGateway, "food database is unavailable")
	default:
		writeError(w, http.StatusInternalServerError, msg)
	}
}
