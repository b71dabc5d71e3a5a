package model

import (
	"time"
)

// ProfileID is the fixed primary key of the singleton profile row. The
// repository always writes this ID, so the table cannot grow past one row.
const ProfileID uint = 1

type Profile struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	Email         string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone         string    `gorm:"type:varchar(20)" json:"phone"`
	Address       string    `gorm:"type:text" json:"address"`
	Objective     string    `gorm:"type:text" json:"objective"`
	FatherName    string    `gorm:"type:varchar(100)" json:"father_name,omitempty"`
	DateOfBirth   string    `gorm:"type:varchar(50)" json:"date_of_birth,omitempty"`
	CNIC          string    `gorm:"type:varchar(50)" json:"cnic,omitempty"`
	MaritalStatus string    `gorm:"type:varchar(50)" json:"marital_status,omitempty"`
	Domicile      string    `gorm:"type:varchar(100)" json:"domicile,omitempty"`
	Religion      string    `gorm:"type:varchar(50)" json:"religion,omitempty"`
	Height        string    `gorm:"type:varchar(50)" json:"height,omitempty"`
	ProfileImage  *string   `gorm:"type:text" json:"profile_image,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Profile) TableName() string {
	return "profiles"
}
