package internal

import (
	"os"
	"path/filepath"
	"strings"
)

// ScanForIdentifier is the last-resort search: a raw substring match over
// the unparsed value of every row in every workspace database, not just
// the rows stored under the known chat-data keys. A record the parser
// rejected earlier is still visible here, in case the identifier is
// textually present in a value whose shape we no longer understand.
//
// The first row whose value contains identifier and still parses into a
// chat wins; a row that contains the identifier but matches no known
// schema keeps the scan going. Returns nil when nothing qualifies.
func ScanForIdentifier(root, identifier string) *Chat {
	if identifier == "" {
		return nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		LogWarn("fallback scan: %v", err)
		return nil
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dbPath := filepath.Join(root, entry.Name(), DBFileName)
		if _, err := os.Stat(dbPath); err != nil {
			continue
		}

		rows, err := readWorkspaceRows(dbPath, QueryAllRows)
		if err != nil {
			LogWarn("fallback scan: skipping workspace %s: %v", entry.Name(), err)
			continue
		}

		for _, row := range rows {
			if !strings.Contains(row.Value, identifier) {
				continue
			}

			chat := ParseChat(ComposeChatID(entry.Name(), row.RowID), row.Value)
			if chat == nil {
				continue
			}

			if chat.RequestID == "" {
				// The identifier the user searched by becomes durable
				// metadata on the extracted record.
				enriched := chat.WithRequestID(identifier)
				return &enriched
			}
			return chat
		}
	}

	return nil
}
