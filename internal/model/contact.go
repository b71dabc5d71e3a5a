package model

import (
	"time"
)

// Contact is an inbound contact-form submission. Rows are immutable after
// creation except for the responded flag, which an operator can toggle.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Subject   string    `gorm:"type:varchar(200);not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Responded bool      `gorm:"default:false" json:"responded"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (Contact) TableName() string {
	return "contacts"
}
