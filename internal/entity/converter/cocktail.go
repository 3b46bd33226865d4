package converter

import (
	"sort"

	"cocktails/internal/entity/db"
	"cocktails/internal/entity/dto"
)

// CocktailToDocument assembles the API document from a fully preloaded row.
// Instructions are ordered by step number; tags are split by kind.
func CocktailToDocument(c *db.Cocktail) dto.Cocktail {
	if c == nil {
		return dto.Cocktail{}
	}

	ingredients := make([]dto.IngredientEntry, 0, len(c.Ingredients))
	for _, ci := range c.Ingredients {
		entry := dto.IngredientEntry{
			Quantity: ci.Quantity,
			Unit:     ci.Unit,
			Notes:    ci.Notes,
		}
		if ci.Ingredient != nil {
			entry.Name = ci.Ingredient.Name
		}
		ingredients = append(ingredients, entry)
	}

	steps := make([]db.Instruction, len(c.Instructions))
	copy(steps, c.Instructions)
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].StepNumber < steps[j].StepNumber
	})
	instructions := make([]string, 0, len(steps))
	for _, step := range steps {
		instructions = append(instructions, step.Text)
	}

	meta := dto.CocktailMetadata{
		Garnish:    make([]string, 0, len(c.Garnishes)),
		Tags:       make([]string, 0, len(c.Tags)),
		FlavorTags: make([]string, 0),
	}
	if c.Metadata != nil {
		meta.Difficulty = c.Metadata.Difficulty
		meta.GlassType = c.Metadata.GlassType
		meta.CoverImage = c.Metadata.CoverImage
	}
	for _, garnish := range c.Garnishes {
		meta.Garnish = append(meta.Garnish, garnish.Name)
	}
	for _, tag := range c.Tags {
		if tag.Kind == db.TagKindFlavor {
			meta.FlavorTags = append(meta.FlavorTags, tag.Name)
		} else {
			meta.Tags = append(meta.Tags, tag.Name)
		}
	}

	return dto.Cocktail{
		ID:           c.ID,
		Title:        c.Title,
		Author:       c.Author,
		Description:  c.Description,
		Ingredients:  ingredients,
		Instructions: instructions,
		Metadata:     meta,
	}
}

// CocktailsToDocuments converts a slice of rows into documents.
func CocktailsToDocuments(cocktails []db.Cocktail) []dto.Cocktail {
	documents := make([]dto.Cocktail, len(cocktails))
	for i := range cocktails {
		documents[i] = CocktailToDocument(&cocktails[i])
	}
	return documents
}
