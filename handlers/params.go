package handlers

import (
	"net/http"
	"strconv"

	"turfhub/models"

	"github.com/gin-gonic/gin"
)

// parseIntDefault parses raw, falling back when it is not a number.
func parseIntDefault(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// listParams reads the shared table query parameters.
func listParams(c *gin.Context) models.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return models.ListParams{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		Status: c.Query("status"),
	}.WithDefaults()
}

// listResponse is the envelope every table endpoint returns. itemsKey names
// the collection, e.g. "turfs" or "bookings".
func listResponse[T any](c *gin.Context, itemsKey string, page *models.Page[T]) {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		itemsKey:      items,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
	})
}

// authedUserID pulls the authenticated account ID set by the auth middleware.
func authedUserID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authentication"})
		return "", false
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authentication"})
		return "", false
	}
	return idStr, true
}
