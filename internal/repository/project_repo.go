package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abidnoul/portfolio/internal/model"
	"github.com/abidnoul/portfolio/internal/util"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	FindAll() ([]model.Project, error)
	FindFeatured(limit int) ([]model.Project, error)
	FindByID(id uint) (*model.Project, error)
	Create(project *model.Project) error
	Update(project *model.Project) error
	Delete(id uint) error
}

type projectRepository struct {
	db    *gorm.DB
	redis *util.RedisClient
}

const (
	projectsCacheKey        = "portfolio:projects:all"
	featuredCacheKeyFmt     = "portfolio:projects:featured:%d"
	projectsCacheExpiration = 15 * time.Minute
)

func NewProjectRepository(db *gorm.DB, redis *util.RedisClient) ProjectRepository {
	return &projectRepository{
		db:    db,
		redis: redis,
	}
}

// FindAll returns every project, featured ones first, newest first within
// each group.
func (r *projectRepository) FindAll() ([]model.Project, error) {
	if r.redis != nil {
		if cached, err := r.redis.Get(projectsCacheKey); err == nil {
			var projects []model.Project
			if err := json.Unmarshal([]byte(cached), &projects); err == nil {
				return projects, nil
			}
		}
	}

	var projects []model.Project
	err := r.db.Order("featured DESC, created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}

	if r.redis != nil {
		_ = r.redis.Set(projectsCacheKey, projects, projectsCacheExpiration)
	}

	return projects, nil
}

// FindFeatured returns up to limit projects with the featured flag set,
// newest first.
func (r *projectRepository) FindFeatured(limit int) ([]model.Project, error) {
	cacheKey := fmt.Sprintf(featuredCacheKeyFmt, limit)

	if r.redis != nil {
		if cached, err := r.redis.Get(cacheKey); err == nil {
			var projects []model.Project
			if err := json.Unmarshal([]byte(cached), &projects); err == nil {
				return projects, nil
			}
		}
	}

	var projects []model.Project
	err := r.db.Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	if r.redis != nil {
		_ = r.redis.Set(cacheKey, projects, projectsCacheExpiration)
	}

	return projects, nil
}

// FindByID returns one project by primary key.
func (r *projectRepository) FindByID(id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Create inserts a project and invalidates the list caches.
func (r *projectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return err
	}
	r.invalidateCache()
	return nil
}

// Update saves a project and invalidates the list caches.
func (r *projectRepository) Update(project *model.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		return err
	}
	r.invalidateCache()
	return nil
}

// Delete removes a project and invalidates the list caches.
func (r *projectRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.invalidateCache()
	return nil
}

func (r *projectRepository) invalidateCache() {
	if r.redis != nil {
		_ = r.redis.DeletePattern("portfolio:projects:*")
	}
}
