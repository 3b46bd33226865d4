package db

// Instruction is one preparation step. StepNumber fixes the sequence so a
// read returns the steps exactly as submitted.
type Instruction struct {
	ID         uint `gorm:"primarykey" json:"id"`
	CocktailID uint `gorm:"column:cocktail_id;index;not null" json:"cocktail_id"`

	StepNumber int    `gorm:"column:step_number;not null" json:"step_number"`
	Text       string `gorm:"column:instruction_text;type:text" json:"instruction_text"`
}

// TableName 指定表名
func (Instruction) TableName() string {
	return "instructions"
}
