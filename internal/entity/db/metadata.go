package db

// Metadata holds the presentation fields of a cocktail. Exactly one row per
// cocktail; created inside the same transaction as its owner and removed with
// it.
type Metadata struct {
	ID         uint `gorm:"primarykey" json:"id"`
	CocktailID uint `gorm:"column:cocktail_id;uniqueIndex;not null" json:"cocktail_id"`

	Difficulty string `gorm:"size:32" json:"difficulty"`
	GlassType  string `gorm:"column:glass_type;size:64" json:"glass_type"`
	CoverImage string `gorm:"column:cover_image;size:512" json:"cover_image"`
}

// TableName 指定表名
func (Metadata) TableName() string {
	return "metadata"
}
