package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cartcompass/backend/internal/domain"
	"github.com/cartcompass/backend/internal/infrastructure/catalog"
	"github.com/cartcompass/backend/internal/infrastructure/refdata"
	"github.com/cartcompass/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	compare   *usecase.CompareService
	registry  *catalog.Registry
	dataset   *refdata.Dataset
	suggester *usecase.Suggester
}

// NewHandler creates a new HTTP handler
func NewHandler(compare *usecase.CompareService, registry *catalog.Registry, dataset *refdata.Dataset, suggester *usecase.Suggester) *Handler {
	return &Handler{
		compare:   compare,
		registry:  registry,
		dataset:   dataset,
		suggester: suggester,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cartcompass-backend",
		"version": "1.0.0",
	})
}

// sizePayload mirrors domain.Size for request binding
type sizePayload struct {
	Value float64 `json:"value" binding:"required_with=Unit"`
	Unit  string  `json:"unit" binding:"omitempty,oneof=oz lb ct"`
}

// compareItem is one shopping list line in a compare request
type compareItem struct {
	ID          string       `json:"id"`
	Query       string       `json:"query" binding:"required"`
	Flexible    bool         `json:"flexible"`
	Brand       string       `json:"brand"`
	Category    string       `json:"category"`
	DesiredSize *sizePayload `json:"desiredSize"`
}

// compareRequest is the body of POST /api/v1/quotes/compare
type compareRequest struct {
	Items          []compareItem     `json:"items" binding:"required,min=1,dive"`
	Stores         []string          `json:"stores" binding:"required,min=1"`
	StoreLocations map[string]string `json:"storeLocations"`
	MaxStores      int               `json:"maxStores" binding:"required,oneof=1 2"`
}

// CompareQuotes quotes the shopping list across the requested stores and
// returns the per-store quotes plus the optimizer's recommendation.
func (h *Handler) CompareQuotes(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	providers, err := h.registry.Providers(req.Stores)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown store", "details": err.Error()})
		return
	}

	items := make([]domain.GroceryItem, 0, len(req.Items))
	for _, in := range req.Items {
		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		item := domain.GroceryItem{
			ID:       id,
			Query:    in.Query,
			Flexible: in.Flexible,
			Brand:    in.Brand,
			Category: in.Category,
		}
		if in.DesiredSize != nil {
			size := usecase.NormalizeSize(in.DesiredSize.Value, in.DesiredSize.Unit)
			item.DesiredSize = &size
		}
		items = append(items, item)
	}

	quotes, result, err := h.compare.Compare(c.Request.Context(), providers, items, req.StoreLocations, req.MaxStores)
	if err != nil {
		if errors.Is(err, domain.ErrNoQuotes) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quotes": quotes,
		"result": result,
	})
}

// SearchProducts returns reference catalog suggestions for building a list
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	products := h.dataset.Search(query, 20)
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// suggestRequest is the body of POST /api/v1/suggestions
type suggestRequest struct {
	Query string `json:"query" binding:"required"`
}

// Suggest returns rule-based query expansions for a free-text query
func (h *Handler) Suggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.suggester.Suggest(req.Query))
}

// ListStores returns the known store chains
func (h *Handler) ListStores(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stores": h.registry.Chains()})
}

// ListStoreLocations returns the locations for one chain
func (h *Handler) ListStoreLocations(c *gin.Context) {
	chain := c.Param("chain")
	locations := h.dataset.Locations(chain)
	if locations == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown store chain"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}
