package repository

import (
	"github.com/abidnoul/portfolio/internal/model"

	"gorm.io/gorm"
)

type EducationRepository interface {
	FindAll() ([]model.Education, error)
}

type educationRepository struct {
	db *gorm.DB
}

func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &educationRepository{db: db}
}

// FindAll returns all education entries, most recent year first.
func (r *educationRepository) FindAll() ([]model.Education, error) {
	var education []model.Education
	if err := r.db.Order("year DESC").Find(&education).Error; err != nil {
		return nil, err
	}
	return education, nil
}
