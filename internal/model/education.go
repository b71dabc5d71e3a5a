package model

import (
	"time"
)

type Education struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Degree      string    `gorm:"type:varchar(200);not null" json:"degree"`
	Institution string    `gorm:"type:varchar(200);not null" json:"institution"`
	Year        string    `gorm:"type:varchar(50)" json:"year"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (Education) TableName() string {
	return "education"
}
