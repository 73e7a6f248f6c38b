package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Record is one raw chat-data row pulled from a workspace database,
// identified by the composite chat id.
type Record struct {
	ChatID string
	Key    string
	Value  string
}

// ComposeChatID builds the id other components key on. The
// <directory>_<rowid> shape is a contract: substring matching and the
// fallback scan both depend on it, so its shape must not change.
func ComposeChatID(dir string, rowID int64) string {
	return fmt.Sprintf("%s_%d", dir, rowID)
}

// ScanWorkspaces walks every immediate subdirectory of root that contains
// a state.vscdb file and streams its chat-data rows to fn, in directory
// order. Returning false from fn stops the scan. Each call restarts from
// the top of the tree.
//
// A workspace whose database cannot be opened or queried is logged and
// skipped; one corrupt workspace never aborts the scan. Only a missing
// storage root is an error.
func ScanWorkspaces(root string, fn func(Record) bool) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return &StorageError{Path: root, Op: "read", Err: err}
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dbPath := filepath.Join(root, entry.Name(), DBFileName)
		if _, err := os.Stat(dbPath); err != nil {
			// Not a workspace directory
			continue
		}

		rows, err := readWorkspaceRows(dbPath, QueryChatRows)
		if err != nil {
			LogWarn("skipping workspace %s: %v", entry.Name(), err)
			continue
		}

		for _, row := range rows {
			record := Record{
				ChatID: ComposeChatID(entry.Name(), row.RowID),
				Key:    row.Key,
				Value:  row.Value,
			}
			if !fn(record) {
				return nil
			}
		}
	}

	return nil
}

// readWorkspaceRows scopes the database handle to a single workspace: the
// handle is released before the scan moves on, on every exit path.
func readWorkspaceRows(dbPath string, query func(*sql.DB) ([]Row, error)) ([]Row, error) {
	db, err := OpenDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return query(db)
}

// LoadAllChats parses every chat-data row under root and returns the chats
// newest-first by last-message time; ties keep scan-encounter order. Rows
// matching no known schema variant are dropped. A chat with zero messages
// is a valid value and is kept whenever includeEmpty is set.
func LoadAllChats(root string, includeEmpty bool) ([]Chat, error) {
	var chats []Chat
	var rejected int

	err := ScanWorkspaces(root, func(record Record) bool {
		chat := ParseChat(record.ChatID, record.Value)
		if chat == nil {
			rejected++
			return true
		}
		if !includeEmpty && len(chat.Messages) == 0 {
			return true
		}
		chats = append(chats, *chat)
		return true
	})
	if err != nil {
		return nil, err
	}

	if rejected > 0 {
		LogDebug("%d record(s) matched no known schema variant", rejected)
	}

	sort.SliceStable(chats, func(i, j int) bool {
		return chats[i].LastMessageTime().After(chats[j].LastMessageTime())
	})

	return chats, nil
}
