package model_test

import (
	"context"
	"path/filepath"
	"testing"

	"cocktails/internal/config"
	"cocktails/internal/entity/db"
	"cocktails/internal/model"
	modelsql "cocktails/internal/model/sql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeedTestRepository(t *testing.T) model.Repository {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "cocktails.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gormDB.AutoMigrate(
		&db.Cocktail{},
		&db.Ingredient{},
		&db.CocktailIngredient{},
		&db.Instruction{},
		&db.Tag{},
		&db.CocktailTag{},
		&db.Garnish{},
		&db.CocktailGarnish{},
		&db.Metadata{},
	))

	return modelsql.NewGormRepository(gormDB)
}

func TestSeedSampleData(t *testing.T) {
	repo := newSeedTestRepository(t)
	cfg := config.Config{SeedSampleData: true}

	require.NoError(t, model.SeedSampleData(context.Background(), repo, cfg))

	count, err := repo.CountCocktails(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	cocktails, err := repo.ListCocktails(context.Background())
	require.NoError(t, err)
	require.Len(t, cocktails, 1)
	assert.Equal(t, "Old Fashioned", cocktails[0].Title)
	assert.Len(t, cocktails[0].Ingredients, 5)
	assert.Len(t, cocktails[0].Instructions, 4)
	assert.Len(t, cocktails[0].Garnishes, 2)
	assert.Len(t, cocktails[0].Tags, 10) // 5 general + 5 flavor

	// Seeding again is a no-op on a non-empty store.
	require.NoError(t, model.SeedSampleData(context.Background(), repo, cfg))
	count, err = repo.CountCocktails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSeedSampleDataDisabled(t *testing.T) {
	repo := newSeedTestRepository(t)

	require.NoError(t, model.SeedSampleData(context.Background(), repo, config.Config{}))

	count, err := repo.CountCocktails(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
