package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// setupTestDB creates an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Board{},
		&domain.BoardMember{},
		&domain.Task{},
		&domain.Comment{},
	)
	require.NoError(t, err, "failed to migrate schema")
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, FullName: "Test User"}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}
