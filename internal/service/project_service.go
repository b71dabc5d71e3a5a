package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abidnoul/portfolio/internal/model"
	"github.com/abidnoul/portfolio/internal/repository"

	"gorm.io/gorm"
)

// ProjectService carries the operator-side project CRUD used by the admin
// API. Public reads go through PageService.
type ProjectService interface {
	Create(req ProjectRequest) (*model.Project, error)
	Update(id uint, req ProjectRequest) (*model.Project, error)
	Delete(id uint) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

type ProjectRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Technologies string  `json:"technologies"`
	GithubURL    string  `json:"github_url"`
	LiveURL      string  `json:"live_url"`
	Image        *string `json:"image"`
	Featured     bool    `json:"featured"`
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

// Create inserts a project.
func (s *projectService) Create(req ProjectRequest) (*model.Project, error) {
	project, err := fromProjectRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// Update replaces the mutable fields of an existing project.
func (s *projectService) Update(id uint, req ProjectRequest) (*model.Project, error) {
	existing, err := s.projectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load project %d: %w", id, err)
	}

	updated, err := fromProjectRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.projectRepo.Update(updated); err != nil {
		return nil, fmt.Errorf("failed to update project %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes a project.
func (s *projectService) Delete(id uint) error {
	err := s.projectRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete project %d: %w", id, err)
	}
	return nil
}

func fromProjectRequest(req ProjectRequest) (*model.Project, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, ErrValidation
	}

	return &model.Project{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		Image:        req.Image,
		Featured:     req.Featured,
	}, nil
}
