package gameRepo

import "turfhub/models"

// GameRepository defines persistence for hosted group games.
type GameRepository interface {
	Create(game *models.Game) error
	GetByID(id string) (*models.Game, error)
	Update(game *models.Game) error
	List(params models.ListParams, turfID string) (*models.Page[models.Game], error)
}
