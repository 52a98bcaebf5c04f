package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Jeffrey-mu/weight-loss/models"
)

// newTestDB opens a named in-memory sqlite database so every test gets
// isolated state while GORM's connection pool still sees one store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.WeightRecord{},
		&models.DietRecord{},
		&models.ExerciseRecord{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
