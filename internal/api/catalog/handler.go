package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kavyamehta/vastra/internal/repository"
)

// Handler handles catalog API requests
type Handler struct {
	catalogRepo *repository.CatalogRepository
}

// NewHandler creates a new catalog handler
func NewHandler(catalogRepo *repository.CatalogRepository) *Handler {
	return &Handler{catalogRepo: catalogRepo}
}

// RegisterRoutes registers catalog routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/catalog", h.List)
	r.GET("/catalog/categories", h.Categories)
}

// List returns the static catalog, optionally filtered by category or
// free-text query
func (h *Handler) List(c *gin.Context) {
	category := c.Query("category")
	q := c.Query("q")

	switch {
	case category != "":
		products, err := h.catalogRepo.ByCategory(category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})

	case q != "":
		products, err := h.catalogRepo.Search(q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})

	default:
		products, err := h.catalogRepo.All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// Categories returns the category chips the UI renders
func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.catalogRepo.Categories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
