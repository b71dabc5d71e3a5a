package service

import (
	"errors"
	"fmt"

	"github.com/abidnoul/portfolio/internal/model"
	"github.com/abidnoul/portfolio/internal/repository"

	"gorm.io/gorm"
)

// PageService composes the render context for each portfolio page: it
// fetches exactly the rows a page needs and nothing else. All operations
// are read-only.
type PageService interface {
	Home() (*HomeContext, error)
	About() (*AboutContext, error)
	Skills() (*SkillsContext, error)
	Projects() (*ProjectsContext, error)
	ProjectDetail(id uint) (*ProjectDetailContext, error)
	Services() (*ServicesContext, error)
	Contact() (*ContactContext, error)
}

type pageService struct {
	profileRepo   repository.ProfileRepository
	skillRepo     repository.SkillCategoryRepository
	educationRepo repository.EducationRepository
	projectRepo   repository.ProjectRepository
	serviceRepo   repository.ServiceRepository
}

// featuredProjectLimit caps the home-page highlight list.
const featuredProjectLimit = 3

// HomeContext carries every section of the home page. Empty slices and a
// nil profile are valid; the page renders with empty sections.
type HomeContext struct {
	Profile          *model.Profile
	SkillCategories  []model.SkillCategory
	Education        []model.Education
	FeaturedProjects []model.Project
	Services         []model.Service
}

type AboutContext struct {
	Profile *model.Profile
}

type SkillsContext struct {
	SkillCategories []model.SkillCategory
}

type ProjectsContext struct {
	Projects []model.Project
}

type ProjectDetailContext struct {
	Project *model.Project
}

type ServicesContext struct {
	Services []model.Service
}

type ContactContext struct {
	Profile *model.Profile
}

func NewPageService(
	profileRepo repository.ProfileRepository,
	skillRepo repository.SkillCategoryRepository,
	educationRepo repository.EducationRepository,
	projectRepo repository.ProjectRepository,
	serviceRepo repository.ServiceRepository,
) PageService {
	return &pageService{
		profileRepo:   profileRepo,
		skillRepo:     skillRepo,
		educationRepo: educationRepo,
		projectRepo:   projectRepo,
		serviceRepo:   serviceRepo,
	}
}

// Home gathers all portfolio sections for the landing page.
func (s *pageService) Home() (*HomeContext, error) {
	profile, err := s.profileRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	categories, err := s.skillRepo.FindAllWithSkills()
	if err != nil {
		return nil, fmt.Errorf("load skill categories: %w", err)
	}

	education, err := s.educationRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("load education: %w", err)
	}

	featured, err := s.projectRepo.FindFeatured(featuredProjectLimit)
	if err != nil {
		return nil, fmt.Errorf("load featured projects: %w", err)
	}

	services, err := s.serviceRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}

	return &HomeContext{
		Profile:          profile,
		SkillCategories:  categories,
		Education:        education,
		FeaturedProjects: featured,
		Services:         services,
	}, nil
}

// About returns the profile for the about page.
func (s *pageService) About() (*AboutContext, error) {
	profile, err := s.profileRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &AboutContext{Profile: profile}, nil
}

// Skills returns the full skill taxonomy.
func (s *pageService) Skills() (*SkillsContext, error) {
	categories, err := s.skillRepo.FindAllWithSkills()
	if err != nil {
		return nil, fmt.Errorf("load skill categories: %w", err)
	}
	return &SkillsContext{SkillCategories: categories}, nil
}

// Projects returns every project, featured first, then newest first.
func (s *pageService) Projects() (*ProjectsContext, error) {
	projects, err := s.projectRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return &ProjectsContext{Projects: projects}, nil
}

// ProjectDetail returns one project by primary key, or ErrNotFound.
func (s *pageService) ProjectDetail(id uint) (*ProjectDetailContext, error) {
	project, err := s.projectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load project %d: %w", id, err)
	}
	return &ProjectDetailContext{Project: project}, nil
}

// Services returns all offered services.
func (s *pageService) Services() (*ServicesContext, error) {
	services, err := s.serviceRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	return &ServicesContext{Services: services}, nil
}

// Contact returns the context shared by the contact form and its redisplay
// after a submission.
func (s *pageService) Contact() (*ContactContext, error) {
	profile, err := s.profileRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &ContactContext{Profile: profile}, nil
}
