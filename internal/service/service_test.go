package service

import (
	"testing"

	"github.com/abidnoul/portfolio/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Profile{}, &model.SkillCategory{}, &model.Skill{},
		&model.Education{}, &model.Project{}, &model.Service{},
		&model.Contact{}, &model.Blog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
