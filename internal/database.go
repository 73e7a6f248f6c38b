package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DBFileName is the well-known database file inside each workspace
// subdirectory of the storage root.
const DBFileName = "state.vscdb"

// Storage keys under which the IDE has stored chat data. The key changed
// across versions, so both must always be checked.
const (
	ChatDataKey = "workbench.panel.aichat.view.aichat.chatdata"
	PromptsKey  = "aiService.prompts"
)

// OpenDatabase opens a workspace SQLite database in read-only mode
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// Row is one raw record from a workspace key-value table
type Row struct {
	RowID int64
	Key   string
	Value string
}

// QueryChatRows returns only the rows stored under the known chat-data keys
func QueryChatRows(db *sql.DB) ([]Row, error) {
	query := "SELECT rowid, key, value FROM ItemTable WHERE key IN (?, ?) AND value IS NOT NULL"
	return queryRows(db, query, ChatDataKey, PromptsKey)
}

// QueryAllRows returns every row regardless of key. Only the direct
// fallback scan is allowed to pay for this.
func QueryAllRows(db *sql.DB) ([]Row, error) {
	query := "SELECT rowid, key, value FROM ItemTable WHERE value IS NOT NULL"
	return queryRows(db, query)
}

func queryRows(db *sql.DB, query string, args ...interface{}) ([]Row, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		var value sql.NullString
		if err := rows.Scan(&row.RowID, &row.Key, &value); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		if value.Valid {
			row.Value = value.String
			out = append(out, row)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return out, nil
}
