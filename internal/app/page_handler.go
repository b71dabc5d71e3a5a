package app

import (
	"net/http"
	"strconv"

	"github.com/abidnoul/portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the portfolio pages. Handlers record failures with
// c.Error and let the boundary middleware shape the response.
type PageHandler struct {
	pageService service.PageService
}

func NewPageHandler(pageService service.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

// Home renders the landing page with all portfolio sections
// GET /
func (h *PageHandler) Home(c *gin.Context) {
	ctx, err := h.pageService.Home()
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Profile":          ctx.Profile,
		"SkillCategories":  ctx.SkillCategories,
		"Education":        ctx.Education,
		"FeaturedProjects": ctx.FeaturedProjects,
		"Services":         ctx.Services,
	})
}

// About renders the detailed profile page
// GET /about
func (h *PageHandler) About(c *gin.Context) {
	ctx, err := h.pageService.About()
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.HTML(http.StatusOK, "about.html", gin.H{"Profile": ctx.Profile})
}

// Skills renders the skill breakdown page
// GET /skills
func (h *PageHandler) Skills(c *gin.Context) {
	ctx, err := h.pageService.Skills()
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.HTML(http.StatusOK, "skills.html", gin.H{"SkillCategories": ctx.SkillCategories})
}

// Projects renders all projects, featured first
// GET /projects
func (h *PageHandler) Projects(c *gin.Context) {
	ctx, err := h.pageService.Projects()
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.HTML(http.StatusOK, "projects.html", gin.H{"Projects": ctx.Projects})
}

// ProjectDetail renders a single project page
// GET /projects/:id
func (h *PageHandler) ProjectDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Error(service.ErrNotFound)
		c.Abort()
		return
	}

	ctx, err := h.pageService.ProjectDetail(uint(id))
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.HTML(http.StatusOK, "project_detail.html", gin.H{"Project": ctx.Project})
}

// Services renders the services page
// GET /services
func (h *PageHandler) Services(c *gin.Context) {
	ctx, err := h.pageService.Services()
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.HTML(http.StatusOK, "services.html", gin.H{"Services": ctx.Services})
}
