package model

import (
	"time"
)

// Blog is a blog post. A nil PublishedDate marks the post as a draft.
type Blog struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"type:varchar(200);not null" json:"title"`
	Slug          string     `gorm:"type:varchar(200);not null;uniqueIndex" json:"slug"`
	Excerpt       string     `gorm:"type:text" json:"excerpt,omitempty"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Image         *string    `gorm:"type:text" json:"image,omitempty"`
	Author        *string    `gorm:"type:varchar(100)" json:"author,omitempty"`
	PublishedDate *time.Time `gorm:"type:date;index" json:"published_date,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Blog) TableName() string {
	return "blogs"
}

// IsDraft reports whether the post has no publication date set.
func (b *Blog) IsDraft() bool {
	return b.PublishedDate == nil
}

// IsPublished reports whether the post is publicly visible as of now:
// a publication date is set and is not in the future.
func (b *Blog) IsPublished(now time.Time) bool {
	return b.PublishedDate != nil && !b.PublishedDate.After(now)
}
