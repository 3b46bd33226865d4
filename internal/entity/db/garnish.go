package db

import "time"

// Garnish is a shared entity de-duplicated by name, like Ingredient.
type Garnish struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

// TableName 指定表名
func (Garnish) TableName() string {
	return "garnishes"
}

// CocktailGarnish 鸡尾酒与装饰物的关联表。
type CocktailGarnish struct {
	CocktailID uint      `gorm:"primaryKey" json:"cocktail_id"`
	GarnishID  uint      `gorm:"primaryKey" json:"garnish_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName 指定表名
func (CocktailGarnish) TableName() string {
	return "cocktail_garnishes"
}
