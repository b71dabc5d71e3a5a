package app

import (
	"net/http"
	"time"

	"github.com/abidnoul/portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService service.BlogService
}

func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// List renders the public blog listing
// GET /blogs
func (h *BlogHandler) List(c *gin.Context) {
	ctx, err := h.blogService.List(time.Now())
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.HTML(http.StatusOK, "blogs.html", gin.H{
		"Posts":   ctx.Posts,
		"Profile": ctx.Profile,
	})
}

// Detail renders a single post resolved by slug
// GET /blogs/:slug
func (h *BlogHandler) Detail(c *gin.Context) {
	ctx, err := h.blogService.Detail(c.Param("slug"))
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.HTML(http.StatusOK, "blog_detail.html", gin.H{
		"Post":    ctx.Post,
		"Profile": ctx.Profile,
	})
}
