package app

import (
	"net/http"

	"github.com/abidnoul/portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// SkillsAPIHandler serializes the skill taxonomy for browser scripts.
type SkillsAPIHandler struct {
	pageService service.PageService
}

// skillsDocument is the wire shape of GET /api/skills/.
type skillsDocument struct {
	SkillCategories []skillCategoryJSON `json:"skill_categories"`
}

type skillCategoryJSON struct {
	Name   string      `json:"name"`
	Icon   string      `json:"icon"`
	Skills []skillJSON `json:"skills"`
}

type skillJSON struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

func NewSkillsAPIHandler(pageService service.PageService) *SkillsAPIHandler {
	return &SkillsAPIHandler{pageService: pageService}
}

// Get returns all skill categories with their skills, in insertion order
// GET /api/skills
func (h *SkillsAPIHandler) Get(c *gin.Context) {
	ctx, err := h.pageService.Skills()
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	doc := skillsDocument{SkillCategories: make([]skillCategoryJSON, 0, len(ctx.SkillCategories))}
	for _, category := range ctx.SkillCategories {
		cat := skillCategoryJSON{
			Name:   category.Name,
			Icon:   category.Icon,
			Skills: make([]skillJSON, 0, len(category.Skills)),
		}
		for _, skill := range category.Skills {
			cat.Skills = append(cat.Skills, skillJSON{
				Name:        skill.Name,
				Proficiency: skill.Proficiency,
			})
		}
		doc.SkillCategories = append(doc.SkillCategories, cat)
	}

	c.JSON(http.StatusOK, doc)
}
