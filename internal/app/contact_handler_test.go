package app

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/abidnoul/portfolio/internal/model"

	"gorm.io/gorm"
)

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func contactCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&model.Contact{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return count
}

func TestContactFormPage(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db)
	r := setupRouter(t, db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contact", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<form") {
		t.Error("contact page does not render the form")
	}
}

func TestContactSubmitSuccess(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db)
	r := setupRouter(t, db)

	w := postForm(r, "/contact", url.Values{
		"name":    {"Jane Doe"},
		"email":   {"jane@example.com"},
		"subject": {"Hello"},
		"message": {"Just saying hi."},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Thank you for your message") {
		t.Error("success banner missing")
	}
	if got := contactCount(t, db); got != 1 {
		t.Fatalf("expected 1 contact row, got %d", got)
	}

	var contact model.Contact
	if err := db.First(&contact).Error; err != nil {
		t.Fatalf("load contact: %v", err)
	}
	if contact.Responded {
		t.Error("new submission should not be marked responded")
	}
}

func TestContactSubmitMissingFieldRedisplaysForm(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db)
	r := setupRouter(t, db)

	w := postForm(r, "/contact", url.Values{
		"name":    {"Jane Doe"},
		"email":   {"jane@example.com"},
		"subject": {"Hello"},
		// message intentionally missing
	})

	// validation failures redisplay the page, they are not HTTP errors
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Please fill in all required fields.") {
		t.Error("validation banner missing")
	}
	if !strings.Contains(body, "<form") {
		t.Error("form should be redisplayed")
	}
	// the profile is still shown around the form
	if !strings.Contains(body, "test@example.com") {
		t.Error("profile context missing from redisplayed page")
	}
	if got := contactCount(t, db); got != 0 {
		t.Fatalf("expected zero rows, got %d", got)
	}
}
