package service

import (
	"context"
	"errors"

	"pipeline_dashboard/internal/logger"
	"pipeline_dashboard/internal/logring"
)

// ErrVoiceNotConfigured is returned when the voice key or agent id is missing.
var ErrVoiceNotConfigured = errors.New("voice agent is not configured")

type VoiceSessionService struct {
	store    ConfigStore
	provider VoiceProvider
	ring     *logring.Ring
	log      *logger.Logger
}

func NewVoiceSessionService(store ConfigStore, provider VoiceProvider, ring *logring.Ring, log *logger.Logger) *VoiceSessionService {
	return &VoiceSessionService{store: store, provider: provider, ring: ring, log: log}
}

// SignedURL passes the stored voice credentials through to the provider.
func (s *VoiceSessionService) SignedURL(ctx context.Context) (string, error) {
	creds := s.store.Get(ctx)
	if !creds.VoiceConfigured() {
		s.ring.Warn("Voice session refused: voice API key or agent id missing.")
		return "", ErrVoiceNotConfigured
	}
	signed, err := s.provider.SignedURL(ctx, creds.VoiceAPIKey, creds.VoiceAgentID)
	if err != nil {
		s.log.Errorw("voice_session_failed", "agent_id", creds.VoiceAgentID, "err", err)
		s.ring.Error("AI Token Error: " + err.Error())
		return "", err
	}
	s.log.Infow("voice_session_issued", "agent_id", creds.VoiceAgentID)
	return signed, nil
}
