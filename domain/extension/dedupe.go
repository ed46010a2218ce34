package extension

import (
	"strings"
)

// identityKey detects repeat submissions by the same student for the same
// assignment. Case-insensitive on both parts to tolerate input
// inconsistency.
type identityKey struct {
	email      string
	assignment string
}

func keyOf(rec ExtensionRecord) identityKey {
	return identityKey{
		email:      strings.ToLower(rec.Email),
		assignment: strings.ToLower(rec.Assignment),
	}
}

// Deduplicate collapses repeat submissions, keeping the record that appears
// last in input order: a later submission models a student changing their
// request and silently supersedes the earlier one. Superseded records are
// not failures and are never reported.
//
// Survivors come out ordered by the position of their last occurrence, so
// the result is deterministic given input order and running Deduplicate on
// its own output is a no-op.
func Deduplicate(records []ExtensionRecord) []ExtensionRecord {
	lastIndex := make(map[identityKey]int, len(records))
	for i, rec := range records {
		lastIndex[keyOf(rec)] = i
	}

	out := make([]ExtensionRecord, 0, len(lastIndex))
	for i, rec := range records {
		if lastIndex[keyOf(rec)] == i {
			out = append(out, rec)
		}
	}
	return out
}
