package repository

import (
	"encoding/json"
	"time"

	"github.com/abidnoul/portfolio/internal/model"
	"github.com/abidnoul/portfolio/internal/util"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	FindAll() ([]model.Service, error)
}

type serviceRepository struct {
	db    *gorm.DB
	redis *util.RedisClient
}

const (
	servicesCacheKey        = "portfolio:services"
	servicesCacheExpiration = 30 * time.Minute
)

func NewServiceRepository(db *gorm.DB, redis *util.RedisClient) ServiceRepository {
	return &serviceRepository{
		db:    db,
		redis: redis,
	}
}

// FindAll returns all offered services in insertion order.
func (r *serviceRepository) FindAll() ([]model.Service, error) {
	if r.redis != nil {
		if cached, err := r.redis.Get(servicesCacheKey); err == nil {
			var services []model.Service
			if err := json.Unmarshal([]byte(cached), &services); err == nil {
				return services, nil
			}
		}
	}

	var services []model.Service
	if err := r.db.Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		_ = r.redis.Set(servicesCacheKey, services, servicesCacheExpiration)
	}

	return services, nil
}
