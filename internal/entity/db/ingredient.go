package db

import "time"

// Ingredient is a shared entity de-duplicated by name. The attributes of a
// particular use (quantity, unit, notes) live on CocktailIngredient so one
// ingredient row can serve many cocktails.
type Ingredient struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

// TableName 指定表名
func (Ingredient) TableName() string {
	return "ingredients"
}

// CocktailIngredient links a cocktail to a shared ingredient row and carries
// the per-use attributes.
type CocktailIngredient struct {
	ID           uint `gorm:"primarykey" json:"id"`
	CocktailID   uint `gorm:"column:cocktail_id;index;not null" json:"cocktail_id"`
	IngredientID uint `gorm:"column:ingredient_id;index;not null" json:"ingredient_id"`

	Quantity string `gorm:"size:64" json:"quantity"`
	Unit     string `gorm:"size:64" json:"unit"`
	Notes    string `gorm:"type:text" json:"notes"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// TableName 指定表名
func (CocktailIngredient) TableName() string {
	return "cocktail_ingredients"
}
