package model

import (
	"context"

	"cocktails/internal/config"
	"cocktails/internal/entity/dto"
)

// SeedSampleData inserts a demo cocktail into an empty store so a fresh
// deployment has something to show. Controlled by SEED_SAMPLE_DATA; a store
// that already holds cocktails is left untouched.
func SeedSampleData(ctx context.Context, repo Repository, cfg config.Config) error {
	if repo == nil || !cfg.SeedSampleData {
		return nil
	}

	count, err := repo.CountCocktails(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err = repo.CreateCocktail(ctx, sampleOldFashioned())
	return err
}

func sampleOldFashioned() *dto.CreateCocktailRequest {
	return &dto.CreateCocktailRequest{
		Title:       "Old Fashioned",
		Author:      "Classic",
		Description: "The definitive whiskey cocktail: spirit, sugar, bitters, and a twist.",
		Ingredients: []dto.IngredientEntry{
			{Name: "Bourbon", Quantity: "2", Unit: "oz", Notes: "or rye whiskey"},
			{Name: "Sugar Cube", Quantity: "1", Unit: "cube", Notes: "or 1/2 tsp simple syrup"},
			{Name: "Angostura Bitters", Quantity: "2", Unit: "dashes", Notes: ""},
			{Name: "Water", Quantity: "1", Unit: "splash", Notes: "to help dissolve the sugar"},
			{Name: "Orange Peel", Quantity: "1", Unit: "piece", Notes: "expressed over the glass"},
		},
		Instructions: []string{
			"Place the sugar cube in an old fashioned glass and saturate with bitters, then add the splash of water.",
			"Muddle until the sugar is dissolved.",
			"Add the bourbon and a large ice cube, then stir gently until chilled.",
			"Express the orange peel over the drink, drop it in, and serve.",
		},
		Metadata: &dto.CocktailMetadata{
			Difficulty: "easy",
			GlassType:  "old fashioned",
			Garnish:    []string{"Orange Peel", "Maraschino Cherry"},
			Tags:       []string{"classic", "whiskey", "iba", "stirred", "aperitif"},
			FlavorTags: []string{"bitter", "sweet", "boozy", "citrus", "aromatic"},
			CoverImage: "",
		},
	}
}
