package notification

import (
	"context"
	"fmt"

	"turfhub/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

func (s *DefaultNotificationService) SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error {
	rec, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("user not found")
	}
	if rec.FCMToken == "" {
		// No registered device; nothing to deliver.
		return nil
	}

	msg := &messaging.Message{
		Token: rec.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if utils.FCMClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}
	id, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	utils.GetLogger().Info("push notification sent",
		zap.String("userID", userID), zap.String("messageID", id))
	return nil
}
