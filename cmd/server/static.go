package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// setupStaticFiles serves the built front end from dir with SPA fallback to
// index.html. When the directory is absent (API-only deployment), unknown
// routes just 404.
func setupStaticFiles(router *gin.Engine, dir string) {
	if _, err := os.Stat(dir); err != nil {
		log.Printf("⚠️  Static dir %s not found, serving API only", dir)
		router.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		})
		return
	}

	log.Printf("📦 Serving frontend assets from %s", dir)

	router.NoRoute(func(c *gin.Context) {
		urlPath := c.Request.URL.Path

		// API routes that reach here are unknown endpoints
		if strings.HasPrefix(urlPath, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}

		target := filepath.Join(dir, filepath.Clean("/"+urlPath))
		if stat, err := os.Stat(target); err == nil && !stat.IsDir() {
			c.File(target)
			return
		}

		// SPA routing: everything else gets index.html
		c.File(filepath.Join(dir, "index.html"))
	})
}
