package models

import "gorm.io/datatypes"

type CaseModel struct {
	ID                uint           `gorm:"primaryKey"`
	Number            string         `gorm:"uniqueIndex;size:50;not null"`
	PatientID         uint           `gorm:"not null;index"`
	RawInput          string         `gorm:"type:text;not null"`
	InputType         string         `gorm:"size:10;not null"`
	Transcript        *string        `gorm:"type:text"`
	UrgencyLevel      string         `gorm:"size:20;not null;index"`
	AISummary         string         `gorm:"type:text;not null"`
	StructuredData    datatypes.JSON `gorm:"type:json"`
	RedFlags          datatypes.JSON `gorm:"type:json"`
	Rationale         string         `gorm:"type:text"`
	RecommendedAction string         `gorm:"type:text"`
	Status            string         `gorm:"size:20;not null;index"`
	ClinicianNotes    string         `gorm:"type:text"`
	StaffOverride     bool           `gorm:"not null;default:false"`
	OverrideReason    string         `gorm:"type:text"`
	ResolvedAt        *int64
	Version           int   `gorm:"not null;default:1"`
	CreatedAt         int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt         int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: no foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (CaseModel) TableName() string {
	return "triage_cases"
}
