package invoiceRepo

import "turfhub/models"

// InvoiceRepository defines persistence for booking invoices.
type InvoiceRepository interface {
	Insert(invoice *models.Invoice) error
	GetByID(invoiceID string) (*models.Invoice, error)
	GetByBookingID(bookingID string) (*models.Invoice, error)
	SetStatus(invoiceID, status string) error
}
