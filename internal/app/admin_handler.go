package app

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/abidnoul/portfolio/internal/service"
	"github.com/abidnoul/portfolio/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the minimal operator API: contact moderation and
// blog/project CRUD. All routes sit behind the auth middleware.
type AdminHandler struct {
	contactService service.ContactService
	blogService    service.BlogService
	projectService service.ProjectService
}

func NewAdminHandler(
	contactService service.ContactService,
	blogService service.BlogService,
	projectService service.ProjectService,
) *AdminHandler {
	return &AdminHandler{
		contactService: contactService,
		blogService:    blogService,
		projectService: projectService,
	}
}

// ListContacts returns all submissions, newest first
// GET /api/v1/admin/contacts
func (h *AdminHandler) ListContacts(c *gin.Context) {
	contacts, err := h.contactService.List()
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	util.SuccessResponse(c, http.StatusOK, "Contacts retrieved successfully", gin.H{"contacts": contacts})
}

// SetContactResponded toggles the responded flag on a submission
// PUT /api/v1/admin/contacts/:id/responded
func (h *AdminHandler) SetContactResponded(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	var req struct {
		Responded bool `json:"responded"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	contact, err := h.contactService.SetResponded(id, req.Responded)
	if err != nil {
		h.writeError(c, err)
		return
	}

	util.SuccessResponse(c, http.StatusOK, "Contact updated successfully", gin.H{"contact": contact})
}

// CreateBlog creates a post
// POST /api/v1/admin/blogs
func (h *AdminHandler) CreateBlog(c *gin.Context) {
	var req service.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	post, err := h.blogService.Create(req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	util.SuccessResponse(c, http.StatusCreated, "Post created successfully", gin.H{"post": post})
}

// UpdateBlog updates a post
// PUT /api/v1/admin/blogs/:id
func (h *AdminHandler) UpdateBlog(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	var req service.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	post, err := h.blogService.Update(id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	util.SuccessResponse(c, http.StatusOK, "Post updated successfully", gin.H{"post": post})
}

// DeleteBlog deletes a post
// DELETE /api/v1/admin/blogs/:id
func (h *AdminHandler) DeleteBlog(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	if err := h.blogService.Delete(id); err != nil {
		h.writeError(c, err)
		return
	}

	util.SuccessResponse(c, http.StatusOK, "Post deleted successfully", nil)
}

// CreateProject creates a project
// POST /api/v1/admin/projects
func (h *AdminHandler) CreateProject(c *gin.Context) {
	var req service.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Create(req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	util.SuccessResponse(c, http.StatusCreated, "Project created successfully", gin.H{"project": project})
}

// UpdateProject updates a project
// PUT /api/v1/admin/projects/:id
func (h *AdminHandler) UpdateProject(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	var req service.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Update(id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	util.SuccessResponse(c, http.StatusOK, "Project updated successfully", gin.H{"project": project})
}

// DeleteProject deletes a project
// DELETE /api/v1/admin/projects/:id
func (h *AdminHandler) DeleteProject(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		h.writeError(c, err)
		return
	}

	util.SuccessResponse(c, http.StatusOK, "Project deleted successfully", nil)
}

func (h *AdminHandler) paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

func (h *AdminHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		util.NotFound(c, "not found")
	case errors.Is(err, service.ErrValidation):
		util.BadRequest(c, "validation failed")
	default:
		c.Error(err)
		c.Abort()
	}
}
