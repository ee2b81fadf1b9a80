package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/cartcompass/backend/internal/domain"
	"github.com/cartcompass/backend/internal/usecase"
)

const (
	searchPageSize    = 10
	maxSearchAttempts = 3
	defaultCacheTTL   = 15 * time.Minute
)

// Client talks to a retailer search API and maps its responses to
// StoreProduct. Calls are rate-limited and retried with exponential
// backoff; search results are cached per (store, location, query).
type Client struct {
	httpClient  *http.Client
	storeID     string
	baseURL     string
	apiKey      string
	rateLimiter *rate.Limiter
	cache       domain.CacheRepository
	cacheTTL    time.Duration
	debug       bool
}

// ClientConfig holds construction parameters for a live retailer client
type ClientConfig struct {
	StoreID        string
	BaseURL        string
	APIKey         string
	RequestsPerSec float64
	Burst          int
	Cache          domain.CacheRepository
	CacheTTL       time.Duration
	EnableDebugLog bool
}

// NewClient creates a live retailer API client
func NewClient(config ClientConfig) *Client {
	rps := config.RequestsPerSec
	if rps <= 0 {
		rps = 2
	}
	burst := config.Burst
	if burst <= 0 {
		burst = 5
	}
	ttl := config.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		storeID:     config.StoreID,
		baseURL:     config.BaseURL,
		apiKey:      config.APIKey,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), burst),
		cache:       config.Cache,
		cacheTTL:    ttl,
		debug:       config.EnableDebugLog,
	}
}

// SetDebug toggles request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// searchItem is one entry in the retailer search response
type searchItem struct {
	ItemID          string  `json:"itemId"`
	UPC             string  `json:"upc,omitempty"`
	Name            string  `json:"name"`
	BrandName       string  `json:"brandName,omitempty"`
	SalePrice       float64 `json:"salePrice"`
	MSRP            float64 `json:"msrp,omitempty"`
	CategoryPath    string  `json:"categoryPath,omitempty"`
	AvailableOnline *bool   `json:"availableOnline,omitempty"`
	Stock           string  `json:"stock,omitempty"`
}

// searchResponse is the retailer search API envelope
type searchResponse struct {
	Items        []searchItem `json:"items"`
	TotalResults int          `json:"totalResults"`
}

// SearchProducts searches the retailer API for products matching the query
// at a location. The query is cleaned of size and noise tokens first.
func (c *Client) SearchProducts(ctx context.Context, query, locationID string) ([]domain.StoreProduct, error) {
	cleaned := cleanQuery(query)
	if cleaned == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := fmt.Sprintf("catalog:%s:%s:%s", c.storeID, locationID, strings.ToLower(cleaned))
	if products, ok := c.fromCache(ctx, cacheKey); ok {
		if c.debug {
			log.Printf("[CATALOG] %s cache hit for %q (%d products)", c.storeID, cleaned, len(products))
		}
		return products, nil
	}

	params := url.Values{}
	params.Add("query", cleaned)
	params.Add("pageSize", strconv.Itoa(searchPageSize))
	if c.apiKey != "" {
		params.Add("api_key", c.apiKey)
	}
	if locationID != "" {
		params.Add("storeId", locationID)
	}
	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= maxSearchAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		body, status, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[CATALOG] %s request error (attempt %d): %v", c.storeID, attempt, err)
			}
			lastErr = err
			sleepCtx(ctx, exponentialBackoff(attempt))
			continue
		}

		if status == http.StatusNotFound {
			return nil, domain.ErrProductNotFound
		}
		if status != http.StatusOK {
			if c.debug {
				log.Printf("[CATALOG] %s status %d (attempt %d): %s", c.storeID, status, attempt, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, status)
			sleepCtx(ctx, exponentialBackoff(attempt))
			continue
		}

		var resp searchResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		products := mapSearchItems(resp.Items)
		if c.debug {
			log.Printf("[CATALOG] %s found %d products for %q", c.storeID, len(products), cleaned)
		}

		c.toCache(ctx, cacheKey, products)
		return products, nil
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, lastErr)
}

// doRequest executes one GET with proper headers
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "CartCompass/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

// exponentialBackoff returns the retry delay for an attempt: 500ms, 1s, 2s
func exponentialBackoff(attempt int) time.Duration {
	return 500 * time.Millisecond << (attempt - 1)
}

// sleepCtx sleeps unless the context is cancelled first
func sleepCtx(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// mapSearchItems converts retailer search items to domain products.
// Sizes are extracted from product names; a name with no parsable size
// degrades to a neutral count-of-one.
func mapSearchItems(items []searchItem) []domain.StoreProduct {
	products := make([]domain.StoreProduct, 0, len(items))
	for _, item := range items {
		price := item.SalePrice
		if price == 0 {
			price = item.MSRP
		}

		sku := item.ItemID
		if sku == "" {
			sku = item.UPC
		}

		products = append(products, domain.StoreProduct{
			SKU:      sku,
			Name:     item.Name,
			Brand:    item.BrandName,
			Category: mapCategory(item.CategoryPath),
			Size:     extractSize(item.Name),
			Price:    price,
			InStock:  (item.AvailableOnline == nil || *item.AvailableOnline) && item.Stock != "Not available",
		})
	}
	return products
}

var (
	ozSizePattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*oz`)
	lbSizePattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*lbs?`)
	ctSizePattern = regexp.MustCompile(`(?i)(\d+)\s*ct`)
)

// extractSize pulls a {value, unit} size out of a product name. Malformed
// or absent sizes never error; they fall back to 1 ct, which participates
// in matching without satisfying any size constraint.
func extractSize(name string) domain.Size {
	if m := ozSizePattern.FindStringSubmatch(name); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return usecase.NormalizeSize(v, "oz")
		}
	}
	if m := lbSizePattern.FindStringSubmatch(name); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return usecase.NormalizeSize(v, "lb")
		}
	}
	if m := ctSizePattern.FindStringSubmatch(name); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return usecase.NormalizeSize(v, "ct")
		}
	}
	return domain.Size{Value: 1, Unit: domain.UnitCount}
}

// mapCategory folds a retailer category path into the coarse categories the
// matcher uses.
func mapCategory(categoryPath string) string {
	path := strings.ToLower(categoryPath)
	switch {
	case strings.Contains(path, "dairy"):
		return "dairy"
	case strings.Contains(path, "produce"), strings.Contains(path, "fruit"), strings.Contains(path, "vegetable"):
		return "produce"
	case strings.Contains(path, "meat"), strings.Contains(path, "seafood"):
		return "meat"
	case strings.Contains(path, "bakery"), strings.Contains(path, "bread"):
		return "bakery"
	case strings.Contains(path, "beverage"), strings.Contains(path, "drink"):
		return "beverages"
	case strings.Contains(path, "snack"):
		return "snacks"
	default:
		return "pantry"
	}
}

// fromCache loads a cached product list, tolerating the generic shapes the
// cache hands back after JSON round-trips.
func (c *Client) fromCache(ctx context.Context, key string) ([]domain.StoreProduct, bool) {
	if c.cache == nil {
		return nil, false
	}
	value, err := c.cache.Get(ctx, key)
	if err != nil || value == nil {
		return nil, false
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}
	var products []domain.StoreProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false
	}
	return products, true
}

// toCache stores a product list; cache failures are non-fatal
func (c *Client) toCache(ctx context.Context, key string, products []domain.StoreProduct) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, products, c.cacheTTL); err != nil && c.debug {
		log.Printf("[CATALOG] %s cache set failed: %v", c.storeID, err)
	}
}
