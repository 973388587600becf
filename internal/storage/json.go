package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/quarryapp/quarry/internal/domain"
)

const (
	sessionFile    = "session.json"
	historyFile    = "history.json"
	maxHistory     = 100
	filePermission = 0600
	dirPermission  = 0755
)

// JSONRepository implements Repository using JSON files under a base
// directory. The session file contains the connection settings verbatim,
// including the password in cleartext when authentication is enabled; this
// is a documented tradeoff for a local developer tool.
//
// The mutex serializes file access: history updates are read-modify-write,
// and request goroutines may record entries concurrently.
type JSONRepository struct {
	mu       sync.Mutex
	basePath string
	logger   *slog.Logger
}

// NewJSONRepository creates a new JSON-based storage repository.
func NewJSONRepository(basePath string, logger *slog.Logger) *JSONRepository {
	return &JSONRepository{
		basePath: basePath,
		logger:   logger,
	}
}

// SaveSession writes the session state to session.json, replacing any
// prior content.
func (r *JSONRepository) SaveSession(session domain.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureBaseDir(); err != nil {
		return fmt.Errorf("ensure base directory: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	path := r.sessionPath()
	if err := atomicWriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	r.logger.Debug("saved session",
		slog.String("path", path),
		slog.String("host", session.Connection.Host))

	return nil
}

// LoadSession reads session.json if present. A missing or malformed file
// degrades silently to the default session; startup is never blocked.
func (r *JSONRepository) LoadSession() domain.SessionState {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.sessionPath())
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn("failed to read session file, using defaults", slog.Any("error", err))
		}
		return domain.DefaultSession()
	}

	var session domain.SessionState
	if err := json.Unmarshal(data, &session); err != nil {
		r.logger.Warn("session file is malformed, using defaults", slog.Any("error", err))
		return domain.DefaultSession()
	}

	r.logger.Debug("loaded session", slog.String("host", session.Connection.Host))
	return session
}

// AddHistoryEntry prepends an entry to history.json, trimming to maxHistory.
func (r *JSONRepository) AddHistoryEntry(entry domain.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureBaseDir(); err != nil {
		return fmt.Errorf("ensure base directory: %w", err)
	}

	history, err := r.loadHistoryList()
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	// Most recent first
	history = append([]domain.HistoryEntry{entry}, history...)
	if len(history) > maxHistory {
		history = history[:maxHistory]
	}

	if err := r.saveHistoryList(history); err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	r.logger.Debug("saved history entry",
		slog.String("id", entry.ID),
		slog.String("method", entry.Method),
		slog.String("path", entry.Path))

	return nil
}

// GetHistory returns history entries, newest first, limited by count.
func (r *JSONRepository) GetHistory(limit int) ([]domain.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history, err := r.loadHistoryList()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	if limit > 0 && limit < len(history) {
		history = history[:limit]
	}

	r.logger.Debug("loaded history", slog.Int("count", len(history)))
	return history, nil
}

// DeleteHistoryEntry removes a single entry by ID. Unknown IDs are ignored.
func (r *JSONRepository) DeleteHistoryEntry(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	history, err := r.loadHistoryList()
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	kept := history[:0]
	for _, entry := range history {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(history) {
		return nil
	}

	if err := r.saveHistoryList(kept); err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	r.logger.Debug("deleted history entry", slog.String("id", id))
	return nil
}

// ClearHistory removes all history entries.
func (r *JSONRepository) ClearHistory() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.historyPath()); err != nil {
		if os.IsNotExist(err) {
			// Already clear, not an error
			return nil
		}
		return fmt.Errorf("delete history file: %w", err)
	}

	r.logger.Debug("cleared history")
	return nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// in the same directory, syncing, then renaming over the target path.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}

// Helper methods

func (r *JSONRepository) ensureBaseDir() error {
	if err := os.MkdirAll(r.basePath, dirPermission); err != nil {
		return fmt.Errorf("create base directory: %w", err)
	}
	return nil
}

func (r *JSONRepository) sessionPath() string {
	return filepath.Join(r.basePath, sessionFile)
}

func (r *JSONRepository) historyPath() string {
	return filepath.Join(r.basePath, historyFile)
}

func (r *JSONRepository) loadHistoryList() ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(r.historyPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.HistoryEntry{}, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var history []domain.HistoryEntry
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}

	return history, nil
}

func (r *JSONRepository) saveHistoryList(history []domain.HistoryEntry) error {
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	if err := atomicWriteFile(r.historyPath(), data, filePermission); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}

	return nil
}
