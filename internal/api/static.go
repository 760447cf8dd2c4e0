package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// SetupStaticRoutes serves the mobile web UI from webDir when it
// exists; the API works standalone without it
func SetupStaticRoutes(r *gin.Engine, webDir string) {
	if webDir == "" {
		return
	}
	if info, err := os.Stat(webDir); err != nil || !info.IsDir() {
		return
	}

	r.Static("/assets", filepath.Join(webDir, "assets"))
	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(webDir, "index.html"))
	})

	// SPA fallback: unknown non-API paths get index.html
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(filepath.Join(webDir, "index.html"))
	})
}
