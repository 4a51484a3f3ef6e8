package api

import (
	"net/http"
	"os"
	"path"

	"github.com/gin-gonic/gin"

	"event-finder/internal/config"
	"event-finder/internal/logging"
)

func SetupRouter(cfg *config.Config, finder EventFinder) *gin.Engine {
	r := gin.New()
	r.Use(logging.RequestLogger(), logging.Recovery())
	subpath := cfg.Server.Subpath // e.g. "/events" or any custom path, always starts with '/'

	// Frontend assets are optional so the API can run (and be tested)
	// without them on disk.
	hasFrontend := false
	if _, err := os.Stat("./frontend/index.html"); err == nil {
		hasFrontend = true
		r.LoadHTMLFiles("./frontend/index.html")
		r.Static(path.Join("/", subpath, "css"), "./frontend/css")
		r.Static(path.Join("/", subpath, "js"), "./frontend/js")
	}

	index := func(c *gin.Context) {
		if !hasFrontend {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		c.HTML(http.StatusOK, "index.html", gin.H{"subpath": subpath})
	}
	if subpath == "" {
		r.GET("/", index)
	} else {
		r.GET(subpath, index)
		// Redirect /subpath/ to /subpath (no duplicate panic)
		r.GET(subpath+"/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, subpath)
		})
	}

	// API routes
	group := r.Group(subpath)
	{
		group.GET("/health", healthHandler)
		group.GET("/config", configHandler(cfg))
		group.POST("/events", FindEventsHandler(finder))
	}
	return r
}
