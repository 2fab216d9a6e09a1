package notification

import (
	"context"

	userRepo "turfhub/database/repository/user"
)

// NotificationService sends push notifications to user devices.
type NotificationService interface {
	SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
}

// DefaultNotificationService delivers via Firebase Cloud Messaging.
type DefaultNotificationService struct {
	UserRepo userRepo.UserRepository
}
