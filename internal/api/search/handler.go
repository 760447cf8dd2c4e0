package search

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kavyamehta/vastra/internal/domain"
	"github.com/kavyamehta/vastra/internal/repository"
	"github.com/kavyamehta/vastra/internal/service"
)

// Handler handles search API requests
type Handler struct {
	searchService *service.SearchService
	catalogRepo   *repository.CatalogRepository
}

// NewHandler creates a new search handler
func NewHandler(searchService *service.SearchService, catalogRepo *repository.CatalogRepository) *Handler {
	return &Handler{
		searchService: searchService,
		catalogRepo:   catalogRepo,
	}
}

// RegisterRoutes registers search routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/conversations", h.CreateConversation)
	r.POST("/search", h.Search)
	r.GET("/suggestions", h.Suggestions)
}

// SearchResponse is the response to a fashion search
type SearchResponse struct {
	Products            []domain.Product        `json:"products"`
	StyleSuggestion     *domain.StyleSuggestion `json:"style_suggestion,omitempty"`
	FollowUpSuggestions []string                `json:"follow_up_suggestions"`
	SessionID           string                  `json:"session_id"`
	Degraded            bool                    `json:"degraded"`
	Notice              string                  `json:"notice,omitempty"`
}

// CreateConversation starts a new session explicitly (the search
// endpoint initializes one lazily if this is never called)
func (h *Handler) CreateConversation(c *gin.Context) {
	sessionID := h.searchService.InitializeSession(c.Request.Context())

	c.JSON(http.StatusOK, domain.Conversation{
		SessionID: sessionID,
		Message:   "Conversation started",
		Timestamp: time.Now(),
	})
}

// Search runs the AI search pipeline and falls back to the static
// catalog when the pipeline comes back empty
func (h *Handler) Search(c *gin.Context) {
	var req domain.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query must not be empty"})
		return
	}

	products := h.searchService.SearchFashion(c.Request.Context(), req.Query)
	state := h.searchService.State()

	resp := SearchResponse{
		Products:            make([]domain.Product, 0, len(products)),
		StyleSuggestion:     h.searchService.StyleSuggestion(),
		FollowUpSuggestions: h.searchService.FollowUpSuggestions(),
		SessionID:           state.SessionID,
	}
	for _, p := range products {
		resp.Products = append(resp.Products, p)
	}

	if len(products) == 0 {
		// Final rung of the degradation ladder: the built-in catalog
		catalog, err := h.catalogRepo.Search(req.Query)
		if err != nil || len(catalog) == 0 {
			catalog, _ = h.catalogRepo.All()
		}
		for _, p := range catalog {
			resp.Products = append(resp.Products, p)
		}
		resp.Degraded = true
		resp.Notice = "AI search temporarily unavailable. Using offline catalog."
	}

	c.JSON(http.StatusOK, resp)
}

// Suggestions returns the current follow-up suggestions and style
// suggestion, which may be empty before any search
func (h *Handler) Suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"follow_up_suggestions": h.searchService.FollowUpSuggestions(),
		"style_suggestion":      h.searchService.StyleSuggestion(),
	})
}
