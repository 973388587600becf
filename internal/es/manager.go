package es

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/quarryapp/quarry/internal/domain"
	apperrors "github.com/quarryapp/quarry/internal/errors"
)

// ConnectionState represents the current state of the cluster connection.
type ConnectionState int

const (
	StateDisconnected ConnectionState = iota
	StateConnecting
	StateConnected
	StateError
)

// String returns a human-readable representation of the connection state.
func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "Disconnected"
	case StateConnecting:
		return "Connecting"
	case StateConnected:
		return "Connected"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Manager owns the active Client and its lifecycle. Connect probes the
// cluster with a root-info call; afterwards panels execute their specs
// through Do against the same client.
type Manager struct {
	client *Client
	state  ConnectionState
	logger *slog.Logger
	mu     sync.RWMutex

	onStateChange func(state ConnectionState, message string)
}

// NewManager creates a manager in the disconnected state.
func NewManager(logger *slog.Logger) *Manager {
	return &Manager{
		state:  StateDisconnected,
		logger: logger,
	}
}

// Connect builds a client for the given settings and verifies the cluster
// is reachable with a root-info request. On success the client replaces any
// previous one and the cluster info is returned for display.
func (m *Manager) Connect(ctx context.Context, conn domain.Connection, timeout time.Duration) (ClusterInfo, error) {
	m.updateState(StateConnecting, "Connecting to "+conn.BaseURL())

	client, err := NewClient(conn, timeout, m.logger)
	if err != nil {
		m.updateState(StateError, "Invalid connection settings: "+err.Error())
		return ClusterInfo{}, err
	}

	result, err := client.Do(ctx, InfoRequest())
	if err != nil {
		m.logger.Error("connection probe failed",
			slog.String("url", conn.BaseURL()),
			slog.Any("error", err))
		m.updateState(StateError, "Failed to connect: "+err.Error())
		return ClusterInfo{}, fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
	}
	if result.IsError() {
		// An HTTP error from the root endpoint (typically 401) still means
		// the cluster is unreachable for our purposes.
		err := fmt.Errorf("%w: cluster answered %s", apperrors.ErrConnectionFailed, result.Status)
		m.updateState(StateError, "Failed to connect: "+result.Status)
		return ClusterInfo{}, err
	}

	info := ParseClusterInfo(result.Body)

	m.mu.Lock()
	m.client = client
	m.mu.Unlock()

	m.logger.Info("connected to cluster",
		slog.String("url", conn.BaseURL()),
		slog.String("cluster", info.ClusterName),
		slog.String("version", info.Version.Number))
	m.updateState(StateConnected, "Connected to "+conn.BaseURL())

	return info, nil
}

// Disconnect drops the active client.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	m.client = nil
	m.mu.Unlock()

	m.logger.Info("disconnected from cluster")
	m.updateState(StateDisconnected, "Disconnected")
}

// Client returns the active client, or nil when disconnected.
func (m *Manager) Client() *Client {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.client
}

// Do executes a spec against the active client.
func (m *Manager) Do(ctx context.Context, spec domain.RequestSpec) (domain.Result, error) {
	client := m.Client()
	if client == nil {
		return domain.Result{}, apperrors.ErrNotConnected
	}
	return client.Do(ctx, spec)
}

// State returns the current connection state.
func (m *Manager) State() ConnectionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// SetStateCallback registers a callback invoked on every state change.
func (m *Manager) SetStateCallback(fn func(state ConnectionState, message string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onStateChange = fn
}

func (m *Manager) updateState(state ConnectionState, message string) {
	m.mu.Lock()
	m.state = state
	callback := m.onStateChange
	m.mu.Unlock()

	m.logger.Debug("connection state changed",
		slog.String("state", state.String()),
		slog.String("message", message))

	if callback != nil {
		callback(state, message)
	}
}
