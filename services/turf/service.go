package turf

import (
	"context"
	"fmt"
	"time"

	"turfhub/models"
	"turfhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultTurfService) CreateTurf(ownerID string, input models.TurfInput) (*models.Turf, error) {
	now := time.Now()
	rec := &models.Turf{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Name:         input.Name,
		Description:  input.Description,
		Location:     input.Location,
		Sports:       input.Sports,
		PricePerHour: input.PricePerHour,
		Images:       input.Images,
		Status:       models.TurfStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *DefaultTurfService) UpdateTurf(ownerID, turfID string, input models.TurfInput) (*models.Turf, error) {
	rec, err := s.ownedTurf(ownerID, turfID)
	if err != nil {
		return nil, err
	}

	rec.Name = input.Name
	rec.Description = input.Description
	rec.Location = input.Location
	rec.Sports = input.Sports
	rec.PricePerHour = input.PricePerHour
	if input.Images != nil {
		rec.Images = input.Images
	}
	// Edited listings go back through verification.
	if rec.Status == models.TurfStatusApproved {
		rec.Status = models.TurfStatusPending
	}

	if err := s.Repo.Update(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *DefaultTurfService) DeleteTurf(ownerID, turfID string) error {
	rec, err := s.ownedTurf(ownerID, turfID)
	if err != nil {
		return err
	}

	for _, publicID := range rec.Images {
		if err := s.Storage.DeleteFile(context.Background(), publicID); err != nil {
			utils.GetLogger().Warn("DeleteTurf: failed to delete image",
				zap.String("publicID", publicID), zap.Error(err))
		}
	}
	return s.Repo.Delete(turfID)
}

func (s *DefaultTurfService) GetTurfByID(turfID string) (*models.Turf, error) {
	rec, err := s.Repo.GetByID(turfID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("turf not found")
	}
	return rec, nil
}

func (s *DefaultTurfService) ListOwnerTurfs(ownerID string, params models.ListParams) (*models.Page[models.Turf], error) {
	return s.Repo.List(params, ownerID)
}

func (s *DefaultTurfService) BrowseTurfs(params models.ListParams) (*models.Page[models.Turf], error) {
	params.Status = models.TurfStatusApproved
	return s.Repo.List(params, "")
}

func (s *DefaultTurfService) AttachImage(ownerID, turfID, localFilePath string) (*models.Turf, error) {
	rec, err := s.ownedTurf(ownerID, turfID)
	if err != nil {
		return nil, err
	}

	publicID, err := s.Storage.UploadFile(context.Background(), localFilePath, "turfs/"+turfID)
	if err != nil {
		return nil, err
	}
	rec.Images = append(rec.Images, publicID)
	if err := s.Repo.Update(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *DefaultTurfService) ownedTurf(ownerID, turfID string) (*models.Turf, error) {
	rec, err := s.Repo.GetByID(turfID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("turf not found")
	}
	if rec.OwnerID != ownerID {
		return nil, fmt.Errorf("turf does not belong to this owner")
	}
	return rec, nil
}
