package invoice

import (
	invoiceRepo "turfhub/database/repository/invoice"
	turfRepo "turfhub/database/repository/turf"
	"turfhub/models"
)

// InvoiceService serves the invoice page: stored invoices looked up by
// booking, and reports reconstructed from a URL-encoded payload. Either way
// the result is enriched with the turf's details when they resolve.
type InvoiceService interface {
	GetReport(userID, bookingID string) (*models.InvoiceReport, error)
	// ReportFromData decodes a URL-encoded JSON invoice from the "data" query
	// parameter and enriches it.
	ReportFromData(userID, raw string) (*models.InvoiceReport, error)
}

// DefaultInvoiceService is the production implementation.
type DefaultInvoiceService struct {
	Repo     invoiceRepo.InvoiceRepository
	TurfRepo turfRepo.TurfRepository
}
