package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createTeamMemberTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE team_members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		email TEXT NOT NULL,
		bio TEXT NOT NULL,
		image TEXT NOT NULL,
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);`)
}

func createResearchAreaTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE research_areas (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		image TEXT NOT NULL,
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);`)
}

func createPublicationTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE publications (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		authors TEXT NOT NULL,
		journal TEXT NOT NULL,
		year INTEGER NOT NULL,
		doi TEXT NOT NULL,
		pdf_url TEXT,
		created_at DATETIME NOT NULL
	);`)
}

func createProjectTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE projects (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		summary TEXT NOT NULL,
		funding TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);`)
}

func createActivityTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE activities (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		date TEXT NOT NULL,
		description TEXT NOT NULL,
		image TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);`)
}

func createGalleryImageTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE gallery_images (
		id TEXT PRIMARY KEY,
		src TEXT NOT NULL,
		alt TEXT NOT NULL,
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		email TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);`)
}
