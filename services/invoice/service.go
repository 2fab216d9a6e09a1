package invoice

import (
	"encoding/json"
	"fmt"
	"net/url"

	"turfhub/models"
	"turfhub/utils"

	"go.uber.org/zap"
)

func (s *DefaultInvoiceService) GetReport(userID, bookingID string) (*models.InvoiceReport, error) {
	inv, err := s.Repo.GetByBookingID(bookingID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("no invoice for this booking")
	}
	if inv.UserID != userID {
		return nil, fmt.Errorf("invoice does not belong to this user")
	}
	return s.enrich(*inv), nil
}

func (s *DefaultInvoiceService) ReportFromData(userID, raw string) (*models.InvoiceReport, error) {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed data parameter: %w", err)
	}

	var inv models.Invoice
	if err := json.Unmarshal([]byte(decoded), &inv); err != nil {
		return nil, fmt.Errorf("malformed invoice payload: %w", err)
	}
	if inv.InvoiceID == "" || inv.BookingID == "" {
		return nil, fmt.Errorf("invoice payload is missing identifiers")
	}

	// The payload is client-supplied; trust the stored copy when one exists.
	// A lookup failure must not fall through to the raw payload.
	stored, err := s.Repo.GetByID(inv.InvoiceID)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		inv = *stored
	}
	if inv.UserID != "" && inv.UserID != userID {
		return nil, fmt.Errorf("invoice does not belong to this user")
	}
	return s.enrich(inv), nil
}

func (s *DefaultInvoiceService) enrich(inv models.Invoice) *models.InvoiceReport {
	report := &models.InvoiceReport{Invoice: inv}
	if inv.TurfID == "" {
		return report
	}
	turf, err := s.TurfRepo.GetByID(inv.TurfID)
	if err != nil {
		utils.GetLogger().Warn("invoice: turf lookup failed",
			zap.String("turfID", inv.TurfID), zap.Error(err))
		return report
	}
	report.Turf = turf
	return report
}
