package storage

import "github.com/quarryapp/quarry/internal/domain"

// Repository defines persistence operations for Quarry.
type Repository interface {
	// Session operations. LoadSession never fails: a missing or unreadable
	// session file yields the default session so startup is never blocked.
	SaveSession(session domain.SessionState) error
	LoadSession() domain.SessionState

	// History operations
	AddHistoryEntry(entry domain.HistoryEntry) error
	GetHistory(limit int) ([]domain.HistoryEntry, error)
	DeleteHistoryEntry(id string) error
	ClearHistory() error
}
