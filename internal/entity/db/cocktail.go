package db

import "time"

// Cocktail is the root recipe row. The nested children of the API document
// live in their own tables and are assembled back into the document shape by
// entity/converter.
type Cocktail struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Author      string `gorm:"size:255" json:"author"`
	Description string `gorm:"type:text" json:"description"`

	Ingredients  []CocktailIngredient `gorm:"foreignKey:CocktailID" json:"ingredients"`
	Instructions []Instruction        `gorm:"foreignKey:CocktailID" json:"instructions"`
	Tags         []Tag                `gorm:"many2many:cocktail_tags;foreignKey:ID;joinForeignKey:CocktailID;references:ID;joinReferences:TagID" json:"tags"`
	Garnishes    []Garnish            `gorm:"many2many:cocktail_garnishes;foreignKey:ID;joinForeignKey:CocktailID;references:ID;joinReferences:GarnishID" json:"garnishes"`
	Metadata     *Metadata            `gorm:"foreignKey:CocktailID" json:"metadata"`
}

// TableName 指定表名
func (Cocktail) TableName() string {
	return "cocktails"
}
