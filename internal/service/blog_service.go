package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abidnoul/portfolio/internal/model"
	"github.com/abidnoul/portfolio/internal/repository"

	"gorm.io/gorm"
)

// BlogService computes the public view of the blog and carries the
// operator-side CRUD used by the admin API.
type BlogService interface {
	List(now time.Time) (*BlogListContext, error)
	Detail(slug string) (*BlogDetailContext, error)
	Create(req BlogRequest) (*model.Blog, error)
	Update(id uint, req BlogRequest) (*model.Blog, error)
	Delete(id uint) error
}

type blogService struct {
	blogRepo    repository.BlogRepository
	profileRepo repository.ProfileRepository
	showDrafts  bool
}

// BlogListContext carries the listing page data. The profile rides along
// for the page chrome, as on every other page.
type BlogListContext struct {
	Posts   []model.Blog
	Profile *model.Profile
}

type BlogDetailContext struct {
	Post    *model.Blog
	Profile *model.Profile
}

// BlogRequest is the admin payload for creating or updating a post. An
// empty PublishedDate keeps (or makes) the post a draft; the expected
// format is YYYY-MM-DD.
type BlogRequest struct {
	Title         string  `json:"title" binding:"required"`
	Slug          string  `json:"slug" binding:"required"`
	Excerpt       string  `json:"excerpt"`
	Content       string  `json:"content" binding:"required"`
	Image         *string `json:"image"`
	Author        *string `json:"author"`
	PublishedDate string  `json:"published_date"`
}

// NewBlogService builds a blog service. showDrafts controls whether draft
// posts appear in the public listing; the default deployment keeps them
// hidden.
func NewBlogService(blogRepo repository.BlogRepository, profileRepo repository.ProfileRepository, showDrafts bool) BlogService {
	return &blogService{
		blogRepo:    blogRepo,
		profileRepo: profileRepo,
		showDrafts:  showDrafts,
	}
}

// List returns published posts ordered by publication date descending
// (creation time breaking ties). When draft visibility is enabled, drafts
// follow the published posts ordered by creation time descending.
func (s *blogService) List(now time.Time) (*BlogListContext, error) {
	published, err := s.blogRepo.FindPublished(now)
	if err != nil {
		return nil, fmt.Errorf("load published posts: %w", err)
	}

	posts := published
	if s.showDrafts {
		drafts, err := s.blogRepo.FindDrafts()
		if err != nil {
			return nil, fmt.Errorf("load draft posts: %w", err)
		}
		posts = append(posts, drafts...)
	}

	profile, err := s.profileRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	return &BlogListContext{Posts: posts, Profile: profile}, nil
}

// Detail resolves a post by slug. Publication state is deliberately not
// checked: a draft is reachable by anyone who knows its slug.
func (s *blogService) Detail(slug string) (*BlogDetailContext, error) {
	post, err := s.blogRepo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load post %q: %w", slug, err)
	}

	profile, err := s.profileRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	return &BlogDetailContext{Post: post, Profile: profile}, nil
}

// Create inserts a new post.
func (s *blogService) Create(req BlogRequest) (*model.Blog, error) {
	post, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.blogRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// Update replaces the mutable fields of an existing post.
func (s *blogService) Update(id uint, req BlogRequest) (*model.Blog, error) {
	existing, err := s.blogRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load post %d: %w", id, err)
	}

	updated, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.blogRepo.Update(updated); err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes a post.
func (s *blogService) Delete(id uint) error {
	err := s.blogRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}
	return nil
}

func (s *blogService) fromRequest(req BlogRequest) (*model.Blog, error) {
	if strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Slug) == "" ||
		strings.TrimSpace(req.Content) == "" {
		return nil, ErrValidation
	}

	post := &model.Blog{
		Title:   req.Title,
		Slug:    req.Slug,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Image:   req.Image,
		Author:  req.Author,
	}

	if req.PublishedDate != "" {
		published, err := time.Parse("2006-01-02", req.PublishedDate)
		if err != nil {
			return nil, ErrValidation
		}
		post.PublishedDate = &published
	}

	return post, nil
}
