package booking

import (
	"context"
	"fmt"
	"time"

	"turfhub/models"
	"turfhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultBookingService) BookSlot(userID string, input models.BookingInput) (*models.Booking, *models.Invoice, error) {
	logger := utils.GetLogger()

	turf, err := s.TurfRepo.GetByID(input.TurfID)
	if err != nil {
		return nil, nil, err
	}
	if turf == nil {
		return nil, nil, fmt.Errorf("turf not found")
	}
	if turf.Status != models.TurfStatusApproved {
		return nil, nil, fmt.Errorf("this turf is not open for bookings")
	}

	start, err := models.MinutesOfDay(input.StartTime)
	if err != nil {
		return nil, nil, err
	}

	// The rules walk is the source of truth for what is bookable: it already
	// excludes exception dates and annotates taken slots.
	slots, err := s.RulesSvc.AvailableSlots(input.TurfID, input.Date)
	if err != nil {
		return nil, nil, err
	}
	var selected *models.AvailableSlot
	for i := range slots {
		if slots[i].Start == start {
			selected = &slots[i]
			break
		}
	}
	if selected == nil {
		return nil, nil, fmt.Errorf("no bookable slot starts at %s on %s", input.StartTime, input.Date)
	}
	if selected.Booked {
		return nil, nil, fmt.Errorf("this slot is already booked")
	}

	mu := s.lockTurf(input.TurfID)
	mu.Lock()
	defer mu.Unlock()

	// Re-check under the lock; another request may have won the slot.
	taken, err := s.Repo.ExistsForSlot(input.TurfID, input.Date, start)
	if err != nil {
		return nil, nil, err
	}
	if taken {
		return nil, nil, fmt.Errorf("this slot is already booked")
	}

	if _, err := s.Wallet.Debit(userID, selected.Price, "booking:"+input.TurfID); err != nil {
		return nil, nil, err
	}

	rec := &models.Booking{
		ID:        uuid.New().String(),
		TurfID:    input.TurfID,
		UserID:    userID,
		Date:      input.Date,
		Start:     selected.Start,
		End:       selected.End,
		Price:     selected.Price,
		Status:    models.BookingStatusConfirmed,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(rec); err != nil {
		// Booking did not land; give the money back.
		if _, refundErr := s.Wallet.Credit(userID, selected.Price, "refund:"+rec.ID); refundErr != nil {
			logger.Error("BookSlot: refund after failed create also failed",
				zap.String("userID", userID), zap.Error(refundErr))
		}
		return nil, nil, err
	}

	invoice := &models.Invoice{
		InvoiceID:     uuid.New().String(),
		BookingID:     rec.ID,
		TurfID:        rec.TurfID,
		UserID:        userID,
		Amount:        rec.Price,
		PaymentMethod: "wallet",
		Status:        "paid",
		CreatedAt:     time.Now(),
	}
	if err := s.InvoiceRepo.Insert(invoice); err != nil {
		logger.Error("BookSlot: failed to write invoice", zap.String("bookingID", rec.ID), zap.Error(err))
	}

	s.afterBooking(rec, turf)
	return rec, invoice, nil
}

// afterBooking schedules the reminder and sends the confirmation push.
// Both are best-effort; the booking already stands.
func (s *DefaultBookingService) afterBooking(rec *models.Booking, turf *models.Turf) {
	logger := utils.GetLogger()

	if s.EnqueueReminder != nil {
		fireAt := reminderTime(rec)
		payload := models.ReminderPayload{
			BookingID: rec.ID,
			UserID:    rec.UserID,
			Title:     "Upcoming game at " + turf.Name,
			Body:      fmt.Sprintf("Your slot %s–%s on %s starts soon.", models.FormatMinutes(rec.Start), models.FormatMinutes(rec.End), rec.Date),
			FireDate:  fireAt.Format(time.RFC3339),
		}
		if err := s.EnqueueReminder(payload, fireAt); err != nil {
			logger.Warn("BookSlot: failed to enqueue reminder", zap.Error(err))
		}
	}

	if s.Notification != nil {
		err := s.Notification.SendUserPushNotification(context.Background(), rec.UserID,
			"Booking confirmed",
			fmt.Sprintf("%s on %s, %s–%s", turf.Name, rec.Date, models.FormatMinutes(rec.Start), models.FormatMinutes(rec.End)),
			map[string]string{"bookingId": rec.ID})
		if err != nil {
			logger.Warn("BookSlot: failed to send confirmation push", zap.Error(err))
		}
	}
}

// reminderTime is one hour before the slot starts.
func reminderTime(rec *models.Booking) time.Time {
	day, err := time.ParseInLocation("2006-01-02", rec.Date, time.Local)
	if err != nil {
		return time.Now()
	}
	return day.Add(time.Duration(rec.Start)*time.Minute - time.Hour)
}

func (s *DefaultBookingService) CancelBooking(userID, bookingID string) error {
	rec, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("booking not found")
	}
	if rec.UserID != userID {
		return fmt.Errorf("booking does not belong to this user")
	}
	if rec.Status != models.BookingStatusConfirmed {
		return fmt.Errorf("booking is not active")
	}

	if err := s.Repo.SetStatus(bookingID, models.BookingStatusCancelled); err != nil {
		return err
	}

	if _, err := s.Wallet.Credit(userID, rec.Price, "refund:"+bookingID); err != nil {
		utils.GetLogger().Error("CancelBooking: refund failed",
			zap.String("bookingID", bookingID), zap.Error(err))
		return fmt.Errorf("booking cancelled but refund failed, please contact support")
	}

	if invoice, err := s.InvoiceRepo.GetByBookingID(bookingID); err == nil && invoice != nil {
		if err := s.InvoiceRepo.SetStatus(invoice.InvoiceID, "refunded"); err != nil {
			utils.GetLogger().Warn("CancelBooking: failed to mark invoice refunded", zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultBookingService) GetBooking(bookingID string) (*models.Booking, error) {
	rec, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("booking not found")
	}
	return rec, nil
}

func (s *DefaultBookingService) ListUserBookings(userID string, params models.ListParams) (*models.Page[models.Booking], error) {
	return s.Repo.ListByUser(userID, params)
}

func (s *DefaultBookingService) ListTurfBookings(ownerID, turfID string, params models.ListParams) (*models.Page[models.Booking], error) {
	turf, err := s.TurfRepo.GetByID(turfID)
	if err != nil {
		return nil, err
	}
	if turf == nil {
		return nil, fmt.Errorf("turf not found")
	}
	if turf.OwnerID != ownerID {
		return nil, fmt.Errorf("turf does not belong to this owner")
	}
	return s.Repo.ListByTurf(turfID, params)
}
