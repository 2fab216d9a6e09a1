package booking

import (
	"sync"
	"time"

	bookingRepo "turfhub/database/repository/booking"
	invoiceRepo "turfhub/database/repository/invoice"
	turfRepo "turfhub/database/repository/turf"
	"turfhub/models"
	"turfhub/services/notification"
	"turfhub/services/rules"
	"turfhub/services/wallet"
)

// BookingService books and cancels slots generated from a turf's rules.
type BookingService interface {
	// BookSlot reserves the slot starting at input.StartTime on input.Date.
	// The slot must come out of the rules walk for that weekday, the date
	// must not be an exception, and the slot must still be free. The price
	// is debited from the user's wallet and an invoice is written.
	BookSlot(userID string, input models.BookingInput) (*models.Booking, *models.Invoice, error)
	// CancelBooking refunds the wallet and marks the booking cancelled.
	CancelBooking(userID, bookingID string) error
	GetBooking(bookingID string) (*models.Booking, error)
	ListUserBookings(userID string, params models.ListParams) (*models.Page[models.Booking], error)
	// ListTurfBookings is the owner-side table; ownership is enforced.
	ListTurfBookings(ownerID, turfID string, params models.ListParams) (*models.Page[models.Booking], error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	TurfRepo     turfRepo.TurfRepository
	RulesSvc     rules.RulesService
	Wallet       wallet.WalletService
	InvoiceRepo  invoiceRepo.InvoiceRepository
	Notification notification.NotificationService

	// EnqueueReminder schedules the pre-game push; wired to the cron client
	// in main and swappable in tests.
	EnqueueReminder func(payload models.ReminderPayload, at time.Time) error

	// turfLocks serializes the check-then-book window per turf.
	turfLocks sync.Map
}

func (s *DefaultBookingService) lockTurf(turfID string) *sync.Mutex {
	mu, _ := s.turfLocks.LoadOrStore(turfID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
