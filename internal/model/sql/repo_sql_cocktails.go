package sql

import (
	"context"
	"fmt"
	"strings"

	"cocktails/internal/entity/db"
	"cocktails/internal/entity/dto"

	"gorm.io/gorm"
)

// CreateCocktail persists a cocktail document as one transaction: the
// cocktail row, one join row per ingredient (reusing shared ingredient rows
// by name), ordered instruction rows, tag and garnish associations, and
// exactly one metadata row. On any failure the whole write rolls back.
func (r *GormRepository) CreateCocktail(ctx context.Context, doc *dto.CreateCocktailRequest) (*db.Cocktail, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}
	if strings.TrimSpace(doc.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	meta := doc.Metadata
	if meta == nil {
		meta = &dto.CocktailMetadata{}
	}

	var created db.Cocktail
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cocktail := db.Cocktail{
			Title:       doc.Title,
			Author:      doc.Author,
			Description: doc.Description,
		}
		if err := tx.Create(&cocktail).Error; err != nil {
			return fmt.Errorf("create cocktail: %w", err)
		}

		for _, entry := range doc.Ingredients {
			if strings.TrimSpace(entry.Name) == "" {
				continue
			}
			ingredient, err := lookupOrCreateIngredient(tx, entry.Name)
			if err != nil {
				return err
			}
			join := db.CocktailIngredient{
				CocktailID:   cocktail.ID,
				IngredientID: ingredient.ID,
				Quantity:     entry.Quantity,
				Unit:         entry.Unit,
				Notes:        entry.Notes,
			}
			if err := tx.Create(&join).Error; err != nil {
				return fmt.Errorf("attach ingredient %q: %w", entry.Name, err)
			}
		}

		for idx, text := range doc.Instructions {
			step := db.Instruction{
				CocktailID: cocktail.ID,
				StepNumber: idx + 1,
				Text:       text,
			}
			if err := tx.Create(&step).Error; err != nil {
				return fmt.Errorf("create instruction %d: %w", idx+1, err)
			}
		}

		for _, name := range uniqueNames(meta.Tags) {
			if err := attachTag(tx, cocktail.ID, name, db.TagKindGeneral); err != nil {
				return err
			}
		}
		for _, name := range uniqueNames(meta.FlavorTags) {
			if err := attachTag(tx, cocktail.ID, name, db.TagKindFlavor); err != nil {
				return err
			}
		}
		for _, name := range uniqueNames(meta.Garnish) {
			if err := attachGarnish(tx, cocktail.ID, name); err != nil {
				return err
			}
		}

		metadata := db.Metadata{
			CocktailID: cocktail.ID,
			Difficulty: meta.Difficulty,
			GlassType:  meta.GlassType,
			CoverImage: meta.CoverImage,
		}
		if err := tx.Create(&metadata).Error; err != nil {
			return fmt.Errorf("create metadata: %w", err)
		}

		return cocktailPreloads(tx).First(&created, cocktail.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// ListCocktails retrieves every cocktail fully assembled. Ordered by id so
// the result is stable for a given storage state.
func (r *GormRepository) ListCocktails(ctx context.Context) ([]db.Cocktail, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	var cocktails []db.Cocktail
	query := cocktailPreloads(r.db.WithContext(ctx)).Order("cocktails.id ASC")
	if err := query.Find(&cocktails).Error; err != nil {
		return nil, err
	}
	return cocktails, nil
}

// GetCocktail retrieves one cocktail with all associations, or
// gorm.ErrRecordNotFound when the id is absent.
func (r *GormRepository) GetCocktail(ctx context.Context, id uint) (*db.Cocktail, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var cocktail db.Cocktail
	if err := cocktailPreloads(r.db.WithContext(ctx)).First(&cocktail, id).Error; err != nil {
		return nil, err
	}
	return &cocktail, nil
}

// CountCocktails returns the number of stored cocktails.
func (r *GormRepository) CountCocktails(ctx context.Context) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&db.Cocktail{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// lookupOrCreateIngredient reuses an existing ingredient row by exact name. A
// concurrent writer can win the insert between lookup and create; the
// duplicate-key failure is resolved by re-selecting once.
func lookupOrCreateIngredient(tx *gorm.DB, name string) (*db.Ingredient, error) {
	var ingredient db.Ingredient
	err := tx.Where(db.Ingredient{Name: name}).FirstOrCreate(&ingredient).Error
	if err == nil {
		return &ingredient, nil
	}
	if lookupErr := tx.Where("name = ?", name).First(&ingredient).Error; lookupErr == nil {
		return &ingredient, nil
	}
	return nil, fmt.Errorf("ingredient %q: %w", name, err)
}

// attachTag reuses or creates a tag row keyed by (name, kind) and links it to
// the cocktail.
func attachTag(tx *gorm.DB, cocktailID uint, name, kind string) error {
	var tag db.Tag
	if err := tx.Where(db.Tag{Name: name, Kind: kind}).FirstOrCreate(&tag).Error; err != nil {
		if lookupErr := tx.Where("name = ? AND kind = ?", name, kind).First(&tag).Error; lookupErr != nil {
			return fmt.Errorf("tag %q: %w", name, err)
		}
	}

	join := db.CocktailTag{CocktailID: cocktailID, TagID: tag.ID}
	if err := tx.Create(&join).Error; err != nil {
		return fmt.Errorf("attach tag %q: %w", name, err)
	}
	return nil
}

// attachGarnish reuses or creates a garnish row by name and links it to the
// cocktail.
func attachGarnish(tx *gorm.DB, cocktailID uint, name string) error {
	var garnish db.Garnish
	if err := tx.Where(db.Garnish{Name: name}).FirstOrCreate(&garnish).Error; err != nil {
		if lookupErr := tx.Where("name = ?", name).First(&garnish).Error; lookupErr != nil {
			return fmt.Errorf("garnish %q: %w", name, err)
		}
	}

	join := db.CocktailGarnish{CocktailID: cocktailID, GarnishID: garnish.ID}
	if err := tx.Create(&join).Error; err != nil {
		return fmt.Errorf("attach garnish %q: %w", name, err)
	}
	return nil
}

// uniqueNames drops empty and repeated values while preserving first-seen
// order, so a document that lists the same tag twice creates one association.
func uniqueNames(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
