package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// Storage keys mirrored here so fixtures stay independent of the package
// under test.
const (
	ChatDataKey = "workbench.panel.aichat.view.aichat.chatdata"
	PromptsKey  = "aiService.prompts"
)

// CreateWorkspaceDB creates <root>/<dir>/state.vscdb with an ItemTable and
// returns an open handle for inserting rows. The caller owns the handle.
func CreateWorkspaceDB(t *testing.T, root, dir string) *sql.DB {
	t.Helper()

	wsDir := filepath.Join(root, dir)
	if err := os.MkdirAll(wsDir, 0755); err != nil {
		t.Fatalf("Failed to create workspace directory: %v", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(wsDir, "state.vscdb"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS ItemTable (
		key TEXT UNIQUE ON CONFLICT REPLACE,
		value BLOB
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create ItemTable: %v", err)
	}

	return db
}

// InsertRow inserts a key-value row into an ItemTable database
func InsertRow(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	if _, err := db.Exec("INSERT INTO ItemTable (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("Failed to insert row: %v", err)
	}
}

// WriteWorkspace creates a workspace directory whose database holds the
// given key-value rows, inserted in order so rowids are predictable
// (first row is rowid 1).
func WriteWorkspace(t *testing.T, root, dir string, rows [][2]string) {
	t.Helper()
	db := CreateWorkspaceDB(t, root, dir)
	for _, row := range rows {
		InsertRow(t, db, row[0], row[1])
	}
}

// CreateStorageFixture builds the canonical two-workspace storage tree:
// ws1 holds a legacy flat-array payload of two messages, ws2 a nested
// payload of one newer message with request id "abc-123". Returns the
// storage root.
func CreateStorageFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	WriteWorkspace(t, root, "ws1", [][2]string{
		{PromptsKey, `[
			{"text":"How do I sort a slice?","isUser":true,"timestamp":1700000000000},
			{"text":"Use sort.Slice with a less function.","isUser":false,"timestamp":1700000001000}
		]`},
	})

	WriteWorkspace(t, root, "ws2", [][2]string{
		{ChatDataKey, `{
			"title":"Debugging session",
			"requestId":"abc-123",
			"messages":[{"role":"user","content":"Why does this panic?","timestamp":1700000100000}]
		}`},
	})

	return root
}
