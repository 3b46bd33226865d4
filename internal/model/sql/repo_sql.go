package sql

import (
	"gorm.io/gorm"
)

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new repository instance
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// cocktailPreloads applies every association needed to assemble a full
// cocktail document.
func cocktailPreloads(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Ingredients.Ingredient").
		Preload("Instructions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("step_number ASC")
		}).
		Preload("Tags").
		Preload("Garnishes").
		Preload("Metadata")
}
