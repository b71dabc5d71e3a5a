package repository

import (
	"time"

	"github.com/abidnoul/portfolio/internal/model"

	"gorm.io/gorm"
)

type BlogRepository interface {
	FindPublished(now time.Time) ([]model.Blog, error)
	FindDrafts() ([]model.Blog, error)
	FindBySlug(slug string) (*model.Blog, error)
	FindByID(id uint) (*model.Blog, error)
	Create(blog *model.Blog) error
	Update(blog *model.Blog) error
	Delete(id uint) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// FindPublished returns posts whose publication date is set and not after
// now, newest publication first, ties broken by creation time.
func (r *blogRepository) FindPublished(now time.Time) ([]model.Blog, error) {
	var posts []model.Blog
	err := r.db.
		Where("published_date IS NOT NULL AND published_date <= ?", now).
		Order("published_date DESC, created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FindDrafts returns posts with no publication date, newest first.
func (r *blogRepository) FindDrafts() ([]model.Blog, error) {
	var posts []model.Blog
	err := r.db.
		Where("published_date IS NULL").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FindBySlug resolves a post by its slug.
func (r *blogRepository) FindBySlug(slug string) (*model.Blog, error) {
	var post model.Blog
	if err := r.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByID returns one post by primary key.
func (r *blogRepository) FindByID(id uint) (*model.Blog, error) {
	var post model.Blog
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts a post.
func (r *blogRepository) Create(blog *model.Blog) error {
	return r.db.Create(blog).Error
}

// Update saves a post.
func (r *blogRepository) Update(blog *model.Blog) error {
	return r.db.Save(blog).Error
}

// Delete removes a post.
func (r *blogRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Blog{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
