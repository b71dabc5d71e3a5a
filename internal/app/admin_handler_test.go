package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abidnoul/portfolio/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func loginAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, testAdminEmail, testAdminPassword)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Data.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return resp.Data.Token
}

func adminRequest(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t, db)

	if w := adminRequest(r, http.MethodGet, "/api/v1/admin/contacts", "", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: expected 401, got %d", w.Code)
	}
	if w := adminRequest(r, http.MethodGet, "/api/v1/admin/contacts", "not-a-token", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: expected 401, got %d", w.Code)
	}
}

func TestAdminContactFlow(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t, db)
	token := loginAdmin(t, r)

	contact := model.Contact{Name: "n", Email: "e@x.y", Subject: "s", Message: "m"}
	if err := db.Create(&contact).Error; err != nil {
		t.Fatalf("create contact: %v", err)
	}

	w := adminRequest(r, http.MethodGet, "/api/v1/admin/contacts", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"subject":"s"`) {
		t.Error("listing does not include the submission")
	}

	w = adminRequest(r, http.MethodPut, fmt.Sprintf("/api/v1/admin/contacts/%d/responded", contact.ID), token, `{"responded":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var reloaded model.Contact
	if err := db.First(&reloaded, contact.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.Responded {
		t.Error("responded flag not persisted")
	}

	w = adminRequest(r, http.MethodPut, "/api/v1/admin/contacts/999/responded", token, `{"responded":true}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing contact: expected 404, got %d", w.Code)
	}
}

func TestAdminBlogCRUD(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t, db)
	token := loginAdmin(t, r)

	w := adminRequest(r, http.MethodPost, "/api/v1/admin/blogs", token,
		`{"title":"My Post","slug":"my-post","content":"body","published_date":"2025-01-15"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	var post model.Blog
	if err := db.Where("slug = ?", "my-post").First(&post).Error; err != nil {
		t.Fatalf("post not persisted: %v", err)
	}
	if post.PublishedDate == nil {
		t.Error("published date not set")
	}

	w = adminRequest(r, http.MethodPut, fmt.Sprintf("/api/v1/admin/blogs/%d", post.ID), token,
		`{"title":"Edited","slug":"my-post","content":"body v2"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w = adminRequest(r, http.MethodDelete, fmt.Sprintf("/api/v1/admin/blogs/%d", post.ID), token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}

	var count int64
	if err := db.Model(&model.Blog{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected post deleted, got %d rows", count)
	}
}

func TestAdminProjectCRUD(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t, db)
	token := loginAdmin(t, r)

	w := adminRequest(r, http.MethodPost, "/api/v1/admin/projects", token,
		`{"title":"New Project","description":"desc","technologies":"Go","featured":true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	var project model.Project
	if err := db.Where("title = ?", "New Project").First(&project).Error; err != nil {
		t.Fatalf("project not persisted: %v", err)
	}
	if !project.Featured {
		t.Error("featured flag not persisted")
	}

	w = adminRequest(r, http.MethodDelete, fmt.Sprintf("/api/v1/admin/projects/%d", project.ID), token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}

	if err := db.First(&model.Project{}, project.ID).Error; err != gorm.ErrRecordNotFound {
		t.Errorf("expected project gone, got err=%v", err)
	}
}
