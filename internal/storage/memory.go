package storage

import (
	"sync"

	"github.com/quarryapp/quarry/internal/domain"
)

// MemoryRepository is an in-memory Repository for tests and UI development.
type MemoryRepository struct {
	mu      sync.RWMutex
	session *domain.SessionState
	history []domain.HistoryEntry
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// SaveSession stores the session in memory.
func (r *MemoryRepository) SaveSession(session domain.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = &session
	return nil
}

// LoadSession returns the stored session, or the default when none was saved.
func (r *MemoryRepository) LoadSession() domain.SessionState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.session == nil {
		return domain.DefaultSession()
	}
	return *r.session
}

// AddHistoryEntry prepends an entry, trimming to maxHistory.
func (r *MemoryRepository) AddHistoryEntry(entry domain.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append([]domain.HistoryEntry{entry}, r.history...)
	if len(r.history) > maxHistory {
		r.history = r.history[:maxHistory]
	}
	return nil
}

// GetHistory returns stored entries, newest first.
func (r *MemoryRepository) GetHistory(limit int) ([]domain.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	history := make([]domain.HistoryEntry, len(r.history))
	copy(history, r.history)
	if limit > 0 && limit < len(history) {
		history = history[:limit]
	}
	return history, nil
}

// DeleteHistoryEntry removes a single entry by ID.
func (r *MemoryRepository) DeleteHistoryEntry(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.history[:0]
	for _, entry := range r.history {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	r.history = kept
	return nil
}

// ClearHistory removes all entries.
func (r *MemoryRepository) ClearHistory() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = nil
	return nil
}
