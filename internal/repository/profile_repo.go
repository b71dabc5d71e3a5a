package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/abidnoul/portfolio/internal/model"
	"github.com/abidnoul/portfolio/internal/util"

	"gorm.io/gorm"
)

// ProfileRepository manages the singleton site profile. There is at most one
// row; Get returns nil (not an error) when the profile has not been created
// yet, and Save always writes the fixed primary key so a second row can
// never appear.
type ProfileRepository interface {
	Get() (*model.Profile, error)
	Save(profile *model.Profile) error
}

type profileRepository struct {
	db    *gorm.DB
	redis *util.RedisClient
}

const (
	profileCacheKey        = "portfolio:profile"
	profileCacheExpiration = 30 * time.Minute
)

func NewProfileRepository(db *gorm.DB, redis *util.RedisClient) ProfileRepository {
	return &profileRepository{
		db:    db,
		redis: redis,
	}
}

// Get returns the canonical profile row, checking cache first.
func (r *profileRepository) Get() (*model.Profile, error) {
	if r.redis != nil {
		if cached, err := r.redis.Get(profileCacheKey); err == nil {
			var profile model.Profile
			if err := json.Unmarshal([]byte(cached), &profile); err == nil {
				return &profile, nil
			}
		}
	}

	var profile model.Profile
	err := r.db.Where("id = ?", model.ProfileID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if r.redis != nil {
		_ = r.redis.Set(profileCacheKey, &profile, profileCacheExpiration)
	}

	return &profile, nil
}

// Save upserts the singleton row and invalidates the cache.
func (r *profileRepository) Save(profile *model.Profile) error {
	profile.ID = model.ProfileID
	if err := r.db.Save(profile).Error; err != nil {
		return err
	}

	if r.redis != nil {
		_ = r.redis.Delete(profileCacheKey)
	}

	return nil
}
