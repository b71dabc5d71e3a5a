package model

import (
	"strings"
	"time"
)

type Project struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Technologies string    `gorm:"type:varchar(500)" json:"technologies"` // comma-separated
	GithubURL    string    `gorm:"type:varchar(500)" json:"github_url,omitempty"`
	LiveURL      string    `gorm:"type:varchar(500)" json:"live_url,omitempty"`
	Image        *string   `gorm:"type:text" json:"image,omitempty"`
	Featured     bool      `gorm:"default:false;index" json:"featured"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (Project) TableName() string {
	return "projects"
}

// TechnologyList splits the comma-separated technologies column for templates.
func (p *Project) TechnologyList() []string {
	if p.Technologies == "" {
		return []string{}
	}
	parts := strings.Split(p.Technologies, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
