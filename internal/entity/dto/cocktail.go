package dto

// IngredientEntry is one ingredient line of a cocktail document: the shared
// ingredient name plus the attributes specific to this use.
type IngredientEntry struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Notes    string `json:"notes"`
}

// CocktailMetadata is the metadata block of a cocktail document.
type CocktailMetadata struct {
	Difficulty string   `json:"difficulty"`
	GlassType  string   `json:"glass_type"`
	Garnish    []string `json:"garnish"`
	Tags       []string `json:"tags"`
	FlavorTags []string `json:"flavor_tags"`
	CoverImage string   `json:"cover_image"`
}

// CreateCocktailRequest is the document accepted by POST /cocktails.
// Metadata may be omitted entirely; it is treated as empty.
type CreateCocktailRequest struct {
	Title        string            `json:"title" binding:"required"`
	Author       string            `json:"author"`
	Description  string            `json:"description"`
	Ingredients  []IngredientEntry `json:"ingredients"`
	Instructions []string          `json:"instructions"`
	Metadata     *CocktailMetadata `json:"metadata"`
}

// Cocktail is the assembled document returned by the API.
type Cocktail struct {
	ID           uint              `json:"id"`
	Title        string            `json:"title"`
	Author       string            `json:"author"`
	Description  string            `json:"description"`
	Ingredients  []IngredientEntry `json:"ingredients"`
	Instructions []string          `json:"instructions"`
	Metadata     CocktailMetadata  `json:"metadata"`
}

// UploadResponse is returned after storing a cover image.
type UploadResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}
