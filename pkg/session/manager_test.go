package session_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"noteshop/pkg/session"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	assert.NoError(t, err)

	schema := `
	CREATE TABLE sessions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		expires_at DATETIME NOT NULL
	);`

	_, err = db.Exec(schema)
	assert.NoError(t, err)

	return db
}

func TestSessionLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := session.NewMySQLSessionRepo(db)

	id, err := repo.Create("user123", "sess123")
	assert.NoError(t, err)
	assert.Equal(t, "sess123", id)

	ok, err := repo.IsValid("user123")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsValid("nobody")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, repo.Invalidate("user123"))

	ok, err = repo.IsValid("user123")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestExpiredSessionIsInvalid(t *testing.T) {
	db := setupTestDB(t)
	repo := session.NewMySQLSessionRepo(db)

	_, err := db.Exec(`
		INSERT INTO sessions (id, user_id, created_at, expires_at)
		VALUES ('sess123', 'user123', datetime('now', '-2 days'), datetime('now', '-1 day'))
	`)
	assert.NoError(t, err)

	ok, err := repo.IsValid("user123")
	assert.NoError(t, err)
	assert.False(t, ok)
}
