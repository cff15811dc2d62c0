package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"pipeline_dashboard/internal/models"
	"pipeline_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockSyncer struct {
	snap  models.PipelineSnapshot
	calls int
}

func (m *mockSyncer) Sync(ctx context.Context) models.PipelineSnapshot {
	m.calls++
	return m.snap
}

type mockStore struct {
	creds   *models.Credentials
	setErr  error
	setArgs []models.Credentials
}

func (m *mockStore) Get(ctx context.Context) *models.Credentials { return m.creds }

func (m *mockStore) Set(ctx context.Context, creds models.Credentials) error {
	m.setArgs = append(m.setArgs, creds)
	return m.setErr
}

type mockDiagnostics struct {
	mu     sync.Mutex
	health service.HealthStatus
	logs   []models.LogEntry
}

func (m *mockDiagnostics) Health(ctx context.Context) service.HealthStatus { return m.health }

func (m *mockDiagnostics) Logs() []models.LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.LogEntry, len(m.logs))
	copy(out, m.logs)
	return out
}

// push prepends an entry, newest first.
func (m *mockDiagnostics) push(id, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := models.LogEntry{ID: id, Message: msg, Severity: models.SeverityInfo, Timestamp: time.Now().UTC()}
	m.logs = append([]models.LogEntry{e}, m.logs...)
}

type mockVoice struct {
	url   string
	err   error
	calls int
}

func (m *mockVoice) SignedURL(ctx context.Context) (string, error) {
	m.calls++
	return m.url, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

func jsonHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	return h
}
