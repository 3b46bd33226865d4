package db

import "time"

// Tag kinds. General tags and flavor tags share one table; the API exposes
// them as separate lists.
const (
	TagKindGeneral = "tag"
	TagKindFlavor  = "flavor_tag"
)

// Tag 表示鸡尾酒的标签，按 (name, kind) 去重。
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name string `gorm:"size:64;uniqueIndex:idx_tags_name_kind;not null" json:"name"`
	Kind string `gorm:"size:16;uniqueIndex:idx_tags_name_kind;not null" json:"kind"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}

// CocktailTag 鸡尾酒与标签的关联表。
type CocktailTag struct {
	CocktailID uint      `gorm:"primaryKey" json:"cocktail_id"`
	TagID      uint      `gorm:"primaryKey" json:"tag_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName 指定表名
func (CocktailTag) TableName() string {
	return "cocktail_tags"
}
