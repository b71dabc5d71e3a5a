package app

import (
	"errors"
	"log"
	"net/http"

	"github.com/abidnoul/portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService service.ContactService
	pageService    service.PageService
}

func NewContactHandler(contactService service.ContactService, pageService service.PageService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		pageService:    pageService,
	}
}

// ShowForm renders the empty contact form
// GET /contact
func (h *ContactHandler) ShowForm(c *gin.Context) {
	h.render(c, "", "")
}

// Submit handles a contact-form submission and redisplays the page with a
// success or error banner. Validation and persistence failures both come
// back as a normal 200 page so the visitor can retry; only the success
// path writes a row.
// POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req service.SubmitContactRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, "", "Please fill in all required fields.")
		return
	}

	_, err := h.contactService.Submit(req)
	if errors.Is(err, service.ErrValidation) {
		h.render(c, "", "Please fill in all required fields.")
		return
	}
	if err != nil {
		log.Printf("Contact submission failed: %v", err)
		h.render(c, "", "An error occurred. Please try again.")
		return
	}

	h.render(c, "Thank you for your message! I will get back to you soon.", "")
}

func (h *ContactHandler) render(c *gin.Context, success, failure string) {
	ctx, err := h.pageService.Contact()
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Profile": ctx.Profile,
		"Success": success,
		"Error":   failure,
	})
}
