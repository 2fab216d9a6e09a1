package handlers

import (
	"net/http"

	"turfhub/services/invoice"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler wires the invoice page endpoints.
type InvoiceHandler struct {
	InvoiceService invoice.InvoiceService
}

// GetInvoiceHandler handles GET /bookings/:id/invoice.
func (h *InvoiceHandler) GetInvoiceHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	report, err := h.InvoiceService.GetReport(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// InvoiceFromDataHandler handles GET /invoices/view?data=<url-encoded JSON>.
// Legacy share links carry the whole invoice in the data parameter.
func (h *InvoiceHandler) InvoiceFromDataHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	raw := c.Query("data")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data parameter"})
		return
	}
	report, err := h.InvoiceService.ReportFromData(userID, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
