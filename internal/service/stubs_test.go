package service

import (
	"context"
	"sync"

	"pipeline_dashboard/internal/logger"
	"pipeline_dashboard/internal/logring"
	"pipeline_dashboard/internal/models"
)

// settingsRepoStub satisfies repository.SettingsRepo.
type settingsRepoStub struct {
	mu       sync.Mutex
	doc      *models.Credentials
	loadErr  error
	saveErr  error
	saved    []models.Credentials
	loadKeys []string
}

func (s *settingsRepoStub) Load(ctx context.Context, appID string) (*models.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadKeys = append(s.loadKeys, appID)
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.doc == nil {
		return nil, nil
	}
	c := *s.doc
	return &c, nil
}

func (s *settingsRepoStub) Save(ctx context.Context, appID string, creds models.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, creds)
	c := creds
	s.doc = &c
	return nil
}

// staticStore is a ConfigStore returning fixed credentials.
type staticStore struct {
	creds *models.Credentials
	gets  int
}

func (s *staticStore) Get(ctx context.Context) *models.Credentials {
	s.gets++
	return s.creds
}

func (s *staticStore) Set(ctx context.Context, creds models.Credentials) error {
	s.creds = &creds
	return nil
}

// crmStub records calls and returns canned results.
type crmStub struct {
	mu    sync.Mutex
	opps  []models.Opportunity
	err   error
	calls int
	last  models.Credentials
	block bool // wait for ctx cancellation
}

func (c *crmStub) Search(ctx context.Context, creds models.Credentials) ([]models.Opportunity, error) {
	c.mu.Lock()
	c.calls++
	c.last = creds
	c.mu.Unlock()
	if c.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return c.opps, c.err
}

func (c *crmStub) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type voiceStub struct {
	url     string
	err     error
	calls   int
	gotKey  string
	gotAgnt string
}

func (v *voiceStub) SignedURL(ctx context.Context, apiKey, agentID string) (string, error) {
	v.calls++
	v.gotKey, v.gotAgnt = apiKey, agentID
	return v.url, v.err
}

func configured() *models.Credentials {
	return &models.Credentials{CrmAccessToken: "pit-1", CrmLocationID: "loc-1", VoiceAPIKey: "xi", VoiceAgentID: "agent"}
}

func newRing() *logring.Ring { return logring.New(30) }

func nopLog() *logger.Logger { return logger.Nop() }

var testOpts = Options{AppID: "default", WinRate: 72, AIActions: 150}
