package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/quarryapp/quarry/internal/domain"
	"github.com/quarryapp/quarry/internal/es"
	"github.com/quarryapp/quarry/internal/jsontree"
	"github.com/quarryapp/quarry/internal/model"
	"github.com/quarryapp/quarry/internal/storage"
	"github.com/quarryapp/quarry/internal/ui/connection"
	"github.com/quarryapp/quarry/internal/ui/console"
	"github.com/quarryapp/quarry/internal/ui/document"
	uierrors "github.com/quarryapp/quarry/internal/ui/errors"
	"github.com/quarryapp/quarry/internal/ui/history"
	"github.com/quarryapp/quarry/internal/ui/indexform"
	"github.com/quarryapp/quarry/internal/ui/results"
	"github.com/quarryapp/quarry/internal/ui/search"
	"github.com/quarryapp/quarry/internal/ui/settings"
)

// AppController defines the interface for app-level operations needed by the UI.
type AppController interface {
	State() *model.ApplicationState
	ConnectionUI() *model.ConnectionUIState
	Logger() *slog.Logger
	Manager() *es.Manager
	Storage() storage.Repository
	FyneApp() fyne.App
	RequestTimeout() time.Duration
}

// MainWindow manages the main application window and its layout.
type MainWindow struct {
	window fyne.Window
	state  *model.ApplicationState
	logger *slog.Logger
	app    AppController

	// Connection state for UI
	connState *model.ConnectionUIState

	// Panel widgets
	connectionPanel *connection.Panel
	searchPanel     *search.Panel
	documentPanel   *document.Panel
	indexPanel      *indexform.Panel
	consolePanel    *console.Panel
	historyPanel    *history.Panel
	resultsPanel    *results.ResultsPanel
	statusBar       *uierrors.StatusBar

	tabs       *container.AppTabs
	consoleTab *container.TabItem

	// Session persisted across restarts. Request goroutines update it
	// concurrently, so every access goes through sessionMu.
	sessionMu sync.Mutex
	session   domain.SessionState

	// In-flight request cancellation (Escape)
	requestMu     sync.Mutex
	cancelRequest context.CancelFunc
}

// NewMainWindow creates a new main window with the application layout.
// The window is laid out with:
//   - Top: connection settings
//   - Middle: operation tabs above the results panel in a vertical split
//   - Bottom: status bar
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow("Quarry - Elasticsearch Manager")

	// Restore the previous session before any panels are built so their
	// initial contents match what the user last had on screen.
	session := app.Storage().LoadSession()

	mw := &MainWindow{
		window:    window,
		state:     app.State(),
		logger:    app.Logger(),
		app:       app,
		connState: app.ConnectionUI(),
		session:   session,
	}

	mw.connectionPanel = connection.NewPanel(mw.connState, session.Connection)
	mw.searchPanel = search.NewPanel()
	mw.searchPanel.SetQuery(session.LastQuery)
	mw.documentPanel = document.NewPanel(window)
	mw.documentPanel.SetBody(session.LastDocumentBody)
	mw.indexPanel = indexform.NewPanel()
	mw.consolePanel = console.NewPanel()
	mw.historyPanel = history.NewPanel(app.Storage(), mw.logger, window)
	mw.resultsPanel = results.NewResultsPanel(mw.state.Response)
	mw.statusBar = uierrors.NewStatusBar(mw.connState)

	mw.wireCallbacks()
	mw.SetContent()
	mw.setupMainMenu()
	mw.setupKeyboardShortcuts()

	window.Resize(fyne.NewSize(1100, 800))

	return mw
}

// wireCallbacks sets up all the event handlers and connects components.
func (w *MainWindow) wireCallbacks() {
	// Connection flow
	w.connectionPanel.SetOnConnect(func(conn domain.Connection) {
		w.handleConnect(conn)
	})
	w.connectionPanel.SetOnDisconnect(func() {
		w.handleDisconnect()
	})

	// Search tab
	w.searchPanel.SetOnSearch(func(query string) {
		w.handleSearch(query)
	})

	// Document tab
	w.documentPanel.SetOnGet(func(id string) {
		w.handleDocumentGet(id)
	})
	w.documentPanel.SetOnCreate(func(id, body string) {
		w.handleDocumentCreate(id, body)
	})
	w.documentPanel.SetOnUpdate(func(id, body string) {
		w.handleDocumentUpdate(id, body)
	})
	w.documentPanel.SetOnDelete(func(id string) {
		w.handleDocumentDelete(id)
	})

	// Create-index tab
	w.indexPanel.SetOnCreate(func(name string, def es.IndexDefinition) {
		w.handleCreateIndex(name, def)
	})
	w.indexPanel.SetOnError(func(err error) {
		uierrors.ShowError(err, w.window)
	})

	// Console tab
	w.consolePanel.SetOnSend(func(method, path, body string) {
		w.handleConsoleSend(method, path, body)
	})

	// History replay
	w.historyPanel.SetOnReplay(func(entry domain.HistoryEntry) {
		w.handleReplay(entry)
	})
}

// handleConnect establishes a connection and shows the cluster info.
func (w *MainWindow) handleConnect(conn domain.Connection) {
	go func() {
		ctx := context.Background()

		info, err := w.app.Manager().Connect(ctx, conn, w.requestTimeout())
		if err != nil {
			w.logger.Error("connection failed", slog.Any("error", err))
			fyne.Do(func() {
				uierrors.ShowRequestError(err, w.window, func() {
					w.handleConnect(conn)
				})
			})
			return
		}

		_ = w.state.ClusterName.Set(info.ClusterName)
		_ = w.state.ClusterURL.Set(conn.BaseURL())

		// Remember working settings immediately
		w.updateSession(func(s *domain.SessionState) {
			s.Connection = conn
		})

		message := "Connected to " + conn.BaseURL()
		if info.ClusterName != "" {
			message = fmt.Sprintf("Connected to %s (%s, v%s)", conn.BaseURL(), info.ClusterName, info.Version.Number)
		}
		_ = w.connState.Message.Set(message)

		w.logger.Info("connection established",
			slog.String("url", conn.BaseURL()),
			slog.String("cluster", info.ClusterName),
		)
	}()
}

// handleDisconnect closes the connection.
func (w *MainWindow) handleDisconnect() {
	w.app.Manager().Disconnect()
	_ = w.state.ClusterName.Set("")
	_ = w.state.ClusterURL.Set("")
}

// handleSearch runs the Query DSL search against the configured index.
func (w *MainWindow) handleSearch(query string) {
	spec, err := es.SearchRequest(w.connectionPanel.Index(), query)
	if err != nil {
		uierrors.ShowError(err, w.window)
		return
	}

	w.executeRequest(spec, func(domain.Result) {
		w.updateSession(func(s *domain.SessionState) {
			s.LastQuery = query
		})
	})
}

// handleDocumentGet fetches a document and loads its source for editing.
func (w *MainWindow) handleDocumentGet(id string) {
	spec, err := es.DocumentGetRequest(w.connectionPanel.Index(), id)
	if err != nil {
		uierrors.ShowError(err, w.window)
		return
	}

	w.executeRequest(spec, func(result domain.Result) {
		if source, ok := extractField(result.Body, "_source"); ok {
			fyne.Do(func() {
				w.documentPanel.SetBody(source)
			})
		}
	})
}

// handleDocumentCreate indexes a document, generating the ID server-side
// when the ID field is empty.
func (w *MainWindow) handleDocumentCreate(id, body string) {
	spec, err := es.DocumentCreateRequest(w.connectionPanel.Index(), id, body)
	if err != nil {
		uierrors.ShowError(err, w.window)
		return
	}

	w.executeRequest(spec, func(result domain.Result) {
		// Back-fill the generated ID so follow-up operations target it
		if newID, ok := extractField(result.Body, "_id"); ok && id == "" {
			var idStr string
			if err := json.Unmarshal([]byte(newID), &idStr); err == nil {
				fyne.Do(func() {
					w.documentPanel.SetID(idStr)
				})
			}
		}
		w.updateSession(func(s *domain.SessionState) {
			s.LastDocumentBody = body
		})
	})
}

// handleDocumentUpdate applies a partial update to an existing document.
func (w *MainWindow) handleDocumentUpdate(id, body string) {
	spec, err := es.DocumentUpdateRequest(w.connectionPanel.Index(), id, body)
	if err != nil {
		uierrors.ShowError(err, w.window)
		return
	}

	w.executeRequest(spec, func(domain.Result) {
		w.updateSession(func(s *domain.SessionState) {
			s.LastDocumentBody = body
		})
	})
}

// handleDocumentDelete removes a document. Confirmation already happened
// in the document panel.
func (w *MainWindow) handleDocumentDelete(id string) {
	spec, err := es.DocumentDeleteRequest(w.connectionPanel.Index(), id)
	if err != nil {
		uierrors.ShowError(err, w.window)
		return
	}

	w.executeRequest(spec, nil)
}

// handleCreateIndex creates an index from the form definition.
func (w *MainWindow) handleCreateIndex(name string, def es.IndexDefinition) {
	body, err := def.Body()
	if err != nil {
		uierrors.ShowError(err, w.window)
		return
	}

	spec, err := es.CreateIndexRequest(name, body)
	if err != nil {
		uierrors.ShowError(err, w.window)
		return
	}

	w.executeRequest(spec, nil)
}

// handleConsoleSend executes a raw console request.
func (w *MainWindow) handleConsoleSend(method, path, body string) {
	spec, err := es.RawRequest(method, path, body)
	if err != nil {
		uierrors.ShowError(err, w.window)
		return
	}

	w.executeRequest(spec, nil)
}

// handleReplay loads a history entry into the console and re-executes it.
func (w *MainWindow) handleReplay(entry domain.HistoryEntry) {
	w.consolePanel.SetRequest(entry.Method, entry.Path, entry.Body)
	w.tabs.Select(w.consoleTab)
	w.handleConsoleSend(entry.Method, entry.Path, entry.Body)
}

// executeRequest runs a spec through the connection manager in the
// background, records it in history, and updates the results panel. The
// optional onSuccess hook runs after the result bindings are set.
func (w *MainWindow) executeRequest(spec domain.RequestSpec, onSuccess func(result domain.Result)) {
	ctx, cancel := context.WithCancel(context.Background())

	w.requestMu.Lock()
	w.cancelRequest = cancel
	w.requestMu.Unlock()

	go func() {
		defer func() {
			w.requestMu.Lock()
			w.cancelRequest = nil
			w.requestMu.Unlock()
			cancel()
		}()

		_ = w.state.Response.Loading.Set(true)
		_ = w.state.Response.Error.Set("")

		result, err := w.app.Manager().Do(ctx, spec)

		_ = w.state.Response.Loading.Set(false)

		entry := domain.HistoryEntry{
			ID:        history.GenerateEntryID(),
			Timestamp: time.Now(),
			Method:    spec.Method,
			Path:      spec.Path,
			Body:      string(spec.Body),
			Duration:  result.Duration,
		}

		if err != nil {
			entry.Status = "error"
			entry.Error = err.Error()

			w.logger.Error("request failed",
				slog.String("method", spec.Method),
				slog.String("path", spec.Path),
				slog.Any("error", err),
			)
			_ = w.state.Response.Error.Set(err.Error())
			fyne.Do(func() {
				uierrors.ShowRequestError(err, w.window, func() {
					w.executeRequest(spec, onSuccess)
				})
			})
		} else {
			entry.Status = "success"
			entry.StatusCode = result.StatusCode

			_ = w.state.Response.RawData.Set(string(result.Body))
			_ = w.state.Response.Status.Set(result.Status)
			_ = w.state.Response.Duration.Set(result.Duration.Round(time.Millisecond).String())
			_ = w.state.Response.Size.Set(formatBytes(len(result.Body)))
			_ = w.state.Response.Error.Set("")

			w.logger.Info("request completed",
				slog.String("method", spec.Method),
				slog.String("path", spec.Path),
				slog.Int("status", result.StatusCode),
				slog.Duration("duration", result.Duration),
			)

			if onSuccess != nil {
				onSuccess(result)
			}
		}

		if herr := w.app.Storage().AddHistoryEntry(entry); herr != nil {
			w.logger.Error("failed to record history", slog.Any("error", herr))
		}
		w.historyPanel.Refresh()
	}()
}

// cancelActiveRequest aborts the in-flight request, if any.
func (w *MainWindow) cancelActiveRequest() {
	w.requestMu.Lock()
	cancel := w.cancelRequest
	w.cancelRequest = nil
	w.requestMu.Unlock()

	if cancel != nil {
		cancel()
		w.logger.Info("request cancelled by user")
	}
}

// updateSession applies a mutation to the shared session under lock, then
// persists a snapshot. Persistence failures are logged, never surfaced;
// losing a session is not worth a dialog.
func (w *MainWindow) updateSession(mutate func(*domain.SessionState)) {
	w.sessionMu.Lock()
	mutate(&w.session)
	snapshot := w.session
	w.sessionMu.Unlock()

	if err := w.app.Storage().SaveSession(snapshot); err != nil {
		w.logger.Error("failed to save session", slog.Any("error", err))
	}
}

// requestTimeout reads the timeout from preferences, falling back to the
// value configured through the environment.
func (w *MainWindow) requestTimeout() time.Duration {
	fallback := w.app.RequestTimeout().Seconds()
	seconds := w.app.FyneApp().Preferences().FloatWithFallback(settings.PrefRequestTimeout, fallback)
	return time.Duration(seconds * float64(time.Second))
}

// extractField pulls a top-level field out of a JSON object, returning its
// raw text pretty-printed when it is itself an object.
func extractField(data []byte, field string) (string, bool) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", false
	}
	raw, ok := doc[field]
	if !ok {
		return "", false
	}

	if pretty, err := jsontree.FormatText(raw); err == nil {
		return pretty, true
	}
	return string(raw), true
}

// formatBytes renders a payload size like "1.2 KB".
func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// SetContent builds and sets the main window layout.
// Layout structure:
//
//	┌──────────────────────────────────────────────────┐
//	│  Connection Panel                                │
//	├──────────────────────────────────────────────────┤
//	│  Search | Documents | Create Index | Console |…  │
//	├──────────────────────────────────────────────────┤
//	│  Results (Tree | Text)                           │
//	├──────────────────────────────────────────────────┤
//	│  Status Bar                                      │
//	└──────────────────────────────────────────────────┘
func (w *MainWindow) SetContent() {
	w.consoleTab = container.NewTabItem("Console", w.consolePanel)

	w.tabs = container.NewAppTabs(
		container.NewTabItem("Search", w.searchPanel),
		container.NewTabItem("Documents", w.documentPanel),
		container.NewTabItem("Create Index", w.indexPanel),
		w.consoleTab,
		container.NewTabItem("History", w.historyPanel),
	)

	split := container.NewVSplit(w.tabs, w.resultsPanel)
	split.SetOffset(0.45)

	content := container.NewBorder(
		w.connectionPanel, // top (connection settings)
		w.statusBar,       // bottom (status bar)
		nil,
		nil,
		split,
	)

	w.window.SetContent(content)
}

// setupMainMenu installs the application menu.
func (w *MainWindow) setupMainMenu() {
	preferencesItem := fyne.NewMenuItem("Preferences...", func() {
		settings.ShowPreferencesDialog(w.app.FyneApp(), w.window, settings.PreferencesCallbacks{
			OnThemeChange: func(mode string) {
				ApplyTheme(w.app.FyneApp(), mode)
			},
		})
	})

	shortcutsItem := fyne.NewMenuItem("Keyboard Shortcuts", func() {
		ShowShortcutDialog(w.window)
	})
	aboutItem := fyne.NewMenuItem("About Quarry", func() {
		ShowAboutDialog(w.window)
	})

	w.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File", preferencesItem),
		fyne.NewMenu("Help", shortcutsItem, aboutItem),
	))
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
