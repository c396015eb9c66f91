package services

import (
	"context"
	"io"
	"testing"

	"github.com/vengerka/cakemaster-api/app/models/migrations"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// getTestDB opens a per-test in-memory database. Naming the database after
// the test keeps parallel tests from sharing state.
func getTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := migrations.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// nopUploader satisfies the blob store collaborator without touching disk.
type nopUploader struct {
	deleted []string
}

func (u *nopUploader) Upload(ctx context.Context, dir, filename string, content io.Reader) (string, error) {
	return "/uploads/" + dir + "/" + filename, nil
}

func (u *nopUploader) Delete(ctx context.Context, imageURL string) error {
	u.deleted = append(u.deleted, imageURL)
	return nil
}
