package repository

import (
	"encoding/json"
	"time"

	"github.com/abidnoul/portfolio/internal/model"
	"github.com/abidnoul/portfolio/internal/util"

	"gorm.io/gorm"
)

type SkillCategoryRepository interface {
	FindAllWithSkills() ([]model.SkillCategory, error)
}

type skillCategoryRepository struct {
	db    *gorm.DB
	redis *util.RedisClient
}

const (
	skillsCacheKey        = "portfolio:skill_categories"
	skillsCacheExpiration = 30 * time.Minute
)

func NewSkillCategoryRepository(db *gorm.DB, redis *util.RedisClient) SkillCategoryRepository {
	return &skillCategoryRepository{
		db:    db,
		redis: redis,
	}
}

// FindAllWithSkills returns every category with its skills eagerly loaded.
// Ordering is insertion order (id asc) for both categories and skills.
func (r *skillCategoryRepository) FindAllWithSkills() ([]model.SkillCategory, error) {
	if r.redis != nil {
		if cached, err := r.redis.Get(skillsCacheKey); err == nil {
			var categories []model.SkillCategory
			if err := json.Unmarshal([]byte(cached), &categories); err == nil {
				return categories, nil
			}
		}
	}

	var categories []model.SkillCategory
	err := r.db.
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("skills.id ASC")
		}).
		Order("skill_categories.id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	if r.redis != nil {
		_ = r.redis.Set(skillsCacheKey, categories, skillsCacheExpiration)
	}

	return categories, nil
}
