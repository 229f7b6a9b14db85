package models

type AIOutputModel struct {
	ID           uint   `gorm:"primaryKey"`
	CaseID       uint   `gorm:"not null;uniqueIndex"`
	ModelUsed    string `gorm:"size:100;not null"`
	Prompt       string `gorm:"type:text;not null"`
	Response     string `gorm:"type:text"`
	ProcessingMs int64  `gorm:"not null;default:0"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AIOutputModel) TableName() string {
	return "ai_outputs"
}
