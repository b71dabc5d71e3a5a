package model

import (
	"time"
)

type SkillCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Icon        string    `gorm:"type:varchar(50)" json:"icon"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationship
	Skills []Skill `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
}

// TableName specifies the table name
func (SkillCategory) TableName() string {
	return "skill_categories"
}

type Skill struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Proficiency int       `gorm:"default:80" json:"proficiency"` // percentage out of 100
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationship
	Category SkillCategory `gorm:"foreignKey:CategoryID;references:ID" json:"-"`
}

// TableName specifies the table name
func (Skill) TableName() string {
	return "skills"
}

// ClampProficiency keeps proficiency inside its 0-100 bound.
func (s *Skill) ClampProficiency() {
	if s.Proficiency < 0 {
		s.Proficiency = 0
	}
	if s.Proficiency > 100 {
		s.Proficiency = 100
	}
}
