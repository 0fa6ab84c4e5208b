// Package nutrition is a client for the USDA FoodData Central API.
package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"diet-planner-api/internal/domain"
)

const (
	// DefaultBaseURL is the production FoodData Central endpoint.
	DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

	// DefaultTimeout bounds every upstream round-trip.
	DefaultTimeout = 15 * time.Second

	// DefaultPageSize is the search page size when the caller gives none.
	DefaultPageSize = 5
)

var (
	// ErrAPIKeyMissing reports a missing USDA credential. It is checked
	// before any network call is attempted.
	ErrAPIKeyMissing = errors.New("nutrition: USDA_API_KEY missing")

	// ErrUpstream reports a transport failure or non-2xx status from the
	// food database. It is propagated unmodified, with no retry.
	ErrUpstream = errors.New("nutrition: upstream unavailable")
)

// allowedNutrients is the fixed set of nutrient names kept in FoodDetail,
// matched against the lower-cased, trimmed upstream name.
var allowedNutrients = map[string]bool{
	"energy":                      true,
	"protein":                     true,
	"carbohydrate, by difference": true,
	"total lipid (fat)":           true,
	"fiber, total dietary":        true,
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient builds a food database client. A missing key is not an error
// here; it surfaces as ErrAPIKeyMissing on first use.
func NewClient(apiKey, baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: logger,
	}
}

func (c *Client) ensureKey() error {
	if c.apiKey == "" {
		return ErrAPIKeyMissing
	}
	return nil
}

// upstream wire shapes; parsed here and immediately projected into domain
// types so the loosely-typed zone stays at the boundary.
type searchFood struct {
	FdcID        int     `json:"fdcId"`
	Description  *string `json:"description"`
	DataType     *string `json:"dataType"`
	BrandOwner   *string `json:"brandOwner"`
	FoodCategory *string `json:"foodCategory"`
}

type searchResponse struct {
	Foods []searchFood `json:"foods"`
}

type foodNutrient struct {
	Nutrient struct {
		Name     string `json:"name"`
		UnitName string `json:"unitName"`
	} `json:"nutrient"`
	Amount *float64 `json:"amount"`
}

type detailResponse struct {
	FdcID         int            `json:"fdcId"`
	Description   *string        `json:"description"`
	DataType      *string        `json:"dataType"`
	BrandOwner    *string        `json:"brandOwner"`
	Ingredients   *string        `json:"ingredients"`
	FoodNutrients []foodNutrient `json:"foodNutrients"`
}

// Search issues a page-1 search with the given page size and maps each
// returned record to a FoodSummary, preserving upstream order. A
// non-positive pageSize falls back to DefaultPageSize.
func (c *Client) Search(ctx context.Context, query string, pageSize int) ([]domain.FoodSummary, error) {
	if err := c.ensureKey(); err != nil {
		return nil, err
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	payload := map[string]any{
		"query":      query,
		"pageSize":   pageSize,
		"pageNumber": 1,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search payload: %w", err)
	}

	url := fmt.Sprintf("%s/foods/search?api_key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var parsed searchResponse
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}

	results := make([]domain.FoodSummary, 0, len(parsed.Foods))
	for _, f := range parsed.Foods {
		results = append(results, domain.FoodSummary{
			FdcID:        f.FdcID,
			Description:  f.Description,
			DataType:     f.DataType,
			BrandOwner:   f.BrandOwner,
			FoodCategory: f.FoodCategory,
		})
	}

	c.logger.Debug("food search completed",
		zap.String("query", query),
		zap.Int("results", len(results)))

	return results, nil
}

// Details fetches one record and projects it into a FoodDetail. Only
// allow-listed nutrients with a present amount are kept, keyed by their
// lower-cased name; upstream duplicates overwrite in scan order.
func (c *Client) Details(ctx context.Context, fdcID int) (*domain.FoodDetail, error) {
	if err := c.ensureKey(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/food/%d?api_key=%s", c.baseURL, fdcID, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create detail request: %w", err)
	}

	var parsed detailResponse
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}

	nutrients := make(map[string]domain.NutrientAmount)
	for _, item := range parsed.FoodNutrients {
		name := strings.ToLower(strings.TrimSpace(item.Nutrient.Name))
		if item.Amount == nil || !allowedNutrients[name] {
			continue
		}
		nutrients[name] = domain.NutrientAmount{
			Value: *item.Amount,
			Unit:  strings.TrimSpace(item.Nutrient.UnitName),
		}
	}

	return &domain.FoodDetail{
		FdcID:       parsed.FdcID,
		Description: parsed.Description,
		DataType:    parsed.DataType,
		BrandOwner:  parsed.BrandOwner,
		Ingredients: parsed.Ingredients,
		Nutrients:   nutrients,
	}, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("food database returned non-success status",
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUpstream, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	return nil
}
