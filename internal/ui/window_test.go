package ui

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"

	"github.com/quarryapp/quarry/internal/domain"
	"github.com/quarryapp/quarry/internal/es"
	"github.com/quarryapp/quarry/internal/logging"
	"github.com/quarryapp/quarry/internal/model"
	"github.com/quarryapp/quarry/internal/storage"
)

type stubController struct {
	repo storage.Repository
}

func (s *stubController) State() *model.ApplicationState         { return nil }
func (s *stubController) ConnectionUI() *model.ConnectionUIState { return nil }
func (s *stubController) Logger() *slog.Logger                   { return logging.NewNopLogger() }
func (s *stubController) Manager() *es.Manager                   { return nil }
func (s *stubController) Storage() storage.Repository            { return s.repo }
func (s *stubController) FyneApp() fyne.App                      { return nil }
func (s *stubController) RequestTimeout() time.Duration          { return 30 * time.Second }

func TestUpdateSession_ConcurrentWritersKeepBothFields(t *testing.T) {
	repo := storage.NewMemoryRepository()
	w := &MainWindow{
		logger:  logging.NewNopLogger(),
		app:     &stubController{repo: repo},
		session: domain.DefaultSession(),
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				w.updateSession(func(s *domain.SessionState) {
					s.LastQuery = `{"query":{"match_all":{}}}`
				})
			} else {
				w.updateSession(func(s *domain.SessionState) {
					s.LastDocumentBody = `{"level":"info"}`
				})
			}
		}(i)
	}
	wg.Wait()

	// Neither field's update may be lost to the other's writer.
	w.sessionMu.Lock()
	defer w.sessionMu.Unlock()
	assert.Equal(t, `{"query":{"match_all":{}}}`, w.session.LastQuery)
	assert.Equal(t, `{"level":"info"}`, w.session.LastDocumentBody)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.5 KB", formatBytes(1536))
	assert.Equal(t, "2.0 MB", formatBytes(2<<20))
}
