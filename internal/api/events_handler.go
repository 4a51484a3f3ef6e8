package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"event-finder/internal/events"
)

// EventFinder runs the search-then-summarize pipeline for one location.
type EventFinder interface {
	Find(ctx context.Context, location string) events.Digest
}

type findEventsRequest struct {
	Location string `json:"location"`
}

// POST /events
func FindEventsHandler(finder EventFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req findEventsRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Location) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Please enter a location to search for events."}})
			return
		}

		// Every failure mode is carried in the digest outcome so the page
		// can show a banner and stay usable for the next attempt.
		digest := finder.Find(c.Request.Context(), strings.TrimSpace(req.Location))
		c.JSON(http.StatusOK, digest)
	}
}
