package model

import (
	"context"

	"cocktails/internal/entity/db"
	"cocktails/internal/entity/dto"
)

// Repository 定义数据库操作接口
type Repository interface {
	// CreateCocktail persists a cocktail document as one atomic unit and
	// returns the created row with every association loaded.
	CreateCocktail(ctx context.Context, doc *dto.CreateCocktailRequest) (*db.Cocktail, error)

	// ListCocktails returns every cocktail, fully assembled, ordered by id.
	ListCocktails(ctx context.Context) ([]db.Cocktail, error)

	// GetCocktail returns one fully assembled cocktail, or
	// gorm.ErrRecordNotFound when the id is absent.
	GetCocktail(ctx context.Context, id uint) (*db.Cocktail, error)

	CountCocktails(ctx context.Context) (int64, error)
}
