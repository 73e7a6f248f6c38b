package internal

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Resolve selects exactly one chat for a user-supplied identifier. The
// match policy cascades, stopping at the first stage that yields a chat:
//
//  1. integer identifier: 1-based index into chats as ordered by the caller
//  2. exact match on id or requestId
//  3. case-insensitive exact match on the same fields
//  4. case-insensitive substring containment in either field
//  5. direct fallback scan over raw storage under root
//
// Within a stage the first chat in list order wins; no secondary sort is
// applied. A numeric identifier that is out of bounds is an
// *IndexOutOfRangeError, distinct from ErrNotFound.
func Resolve(root string, chats []Chat, identifier string) (*Chat, error) {
	if identifier == "" {
		return nil, ErrNotFound
	}

	if n, err := strconv.Atoi(identifier); err == nil {
		if n < 1 || n > len(chats) {
			return nil, &IndexOutOfRangeError{Index: n, Count: len(chats)}
		}
		return &chats[n-1], nil
	}

	if uuid.Validate(identifier) == nil {
		LogDebug("identifier %s is UUID-shaped, likely a request id", identifier)
	}

	if chat := matchChats(chats, identifier); chat != nil {
		return chat, nil
	}

	LogInfo("no parsed chat matched %q, scanning raw storage", identifier)
	if chat := ScanForIdentifier(root, identifier); chat != nil {
		return chat, nil
	}

	return nil, ErrNotFound
}

// matchers are tried strictly in order. Keeping the stages as a list makes
// the precedence auditable and each stage testable on its own.
var matchers = []func(*Chat, string) bool{
	matchExact,
	matchFold,
	matchSubstring,
}

// matchChats runs the in-memory match stages over the list, one stage at a
// time so a later chat with an exact match beats an earlier substring hit.
func matchChats(chats []Chat, identifier string) *Chat {
	for _, match := range matchers {
		for i := range chats {
			if match(&chats[i], identifier) {
				return &chats[i]
			}
		}
	}
	return nil
}

func matchExact(c *Chat, identifier string) bool {
	return c.ID == identifier || (c.RequestID != "" && c.RequestID == identifier)
}

func matchFold(c *Chat, identifier string) bool {
	return strings.EqualFold(c.ID, identifier) ||
		(c.RequestID != "" && strings.EqualFold(c.RequestID, identifier))
}

func matchSubstring(c *Chat, identifier string) bool {
	needle := strings.ToLower(identifier)
	if strings.Contains(strings.ToLower(c.ID), needle) {
		return true
	}
	return c.RequestID != "" && strings.Contains(strings.ToLower(c.RequestID), needle)
}

// FindByIdentifier is the convenience entry point used by commands: load
// everything, then resolve with fallback. Empty chats are loaded so an id
// can still reach them.
func FindByIdentifier(root, identifier string) (*Chat, error) {
	chats, err := LoadAllChats(root, true)
	if err != nil {
		return nil, err
	}
	return Resolve(root, chats, identifier)
}
