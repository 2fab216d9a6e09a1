package rulesRepo

import "turfhub/models"

// RulesRepository stores one availability document per turf. The document is
// treated as a single owned value: reads return it whole, Replace swaps it
// wholesale. There are no partial/merge writes.
type RulesRepository interface {
	GetByTurfID(turfID string) (*models.RulesConfig, error)
	// Replace upserts the full RulesConfig for its turf.
	Replace(config *models.RulesConfig) error
	Delete(turfID string) error
}
