package domain

import "time"

// JournalAction names a recorded lifecycle operation.
type JournalAction string

const (
	ActionInstall JournalAction = "install"
	ActionUpdate  JournalAction = "update"
)

// JournalEntry is one completed lifecycle operation, appended to the
// operation journal after the config record has been persisted.
type JournalEntry struct {
	Timestamp  time.Time
	Component  string
	Action     JournalAction
	Source     SourceKind
	Version    string
	DurationMS int64
}
