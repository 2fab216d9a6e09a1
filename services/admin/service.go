package admin

import (
	"context"
	"fmt"
	"strings"

	"turfhub/models"
	"turfhub/utils"

	"go.uber.org/zap"
)

func (s *DefaultAdminService) ListUsers(params models.ListParams) (*models.Page[models.User], error) {
	return s.UserRepo.List(params, models.RoleUser)
}

func (s *DefaultAdminService) ListOwners(params models.ListParams) (*models.Page[models.User], error) {
	return s.UserRepo.List(params, models.RoleOwner)
}

func (s *DefaultAdminService) ListTurfs(params models.ListParams) (*models.Page[models.Turf], error) {
	return s.TurfRepo.List(params, "")
}

func (s *DefaultAdminService) ApproveTurf(turfID string) error {
	turf, err := s.requireTurf(turfID)
	if err != nil {
		return err
	}
	if err := s.TurfRepo.SetStatus(turfID, models.TurfStatusApproved, ""); err != nil {
		return err
	}
	s.notifyOwner(turf.OwnerID, "Turf approved",
		fmt.Sprintf("%s is now live and open for bookings.", turf.Name))
	return nil
}

func (s *DefaultAdminService) RejectTurf(turfID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("a rejection reason is required")
	}
	turf, err := s.requireTurf(turfID)
	if err != nil {
		return err
	}
	if err := s.TurfRepo.SetStatus(turfID, models.TurfStatusRejected, reason); err != nil {
		return err
	}
	s.notifyOwner(turf.OwnerID, "Turf rejected", reason)
	return nil
}

func (s *DefaultAdminService) BlockTurf(turfID, reason string) error {
	turf, err := s.requireTurf(turfID)
	if err != nil {
		return err
	}
	if err := s.TurfRepo.SetStatus(turfID, models.TurfStatusBlocked, strings.TrimSpace(reason)); err != nil {
		return err
	}
	s.notifyOwner(turf.OwnerID, "Turf blocked",
		fmt.Sprintf("%s was blocked by the moderation team.", turf.Name))
	return nil
}

func (s *DefaultAdminService) BlockUser(userID string) error {
	return s.setUserStatus(userID, models.UserStatusBlocked)
}

func (s *DefaultAdminService) UnblockUser(userID string) error {
	return s.setUserStatus(userID, models.UserStatusActive)
}

func (s *DefaultAdminService) setUserStatus(userID, status string) error {
	rec, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("user not found")
	}
	if rec.Role == models.RoleAdmin {
		return fmt.Errorf("admin accounts cannot be blocked")
	}
	return s.UserRepo.SetStatus(userID, status)
}

func (s *DefaultAdminService) requireTurf(turfID string) (*models.Turf, error) {
	turf, err := s.TurfRepo.GetByID(turfID)
	if err != nil {
		return nil, err
	}
	if turf == nil {
		return nil, fmt.Errorf("turf not found")
	}
	return turf, nil
}

func (s *DefaultAdminService) notifyOwner(ownerID, title, body string) {
	if s.Notification == nil {
		return
	}
	err := s.Notification.SendUserPushNotification(context.Background(), ownerID, title, body, nil)
	if err != nil {
		utils.GetLogger().Warn("admin: owner notification failed",
			zap.String("ownerID", ownerID), zap.Error(err))
	}
}
