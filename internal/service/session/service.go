package session

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

// Session identifies one anonymous shopper. The cart is keyed by ID.
type Session struct {
	ID        string    `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Service struct {
	tokens *tokenManager
	ttl    time.Duration
	logger *log.Logger
}

func New(ttl time.Duration, logger *log.Logger) *Service {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{tokens: newTokenManager(), ttl: ttl, logger: logger}
}

// Issue starts a new browsing session.
func (s *Service) Issue(_ context.Context) (*Session, error) {
	id := uuid.NewString()
	token, expiresAt, err := s.tokens.Issue(id, s.ttl)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("session service: issued session=%s", id)
	return &Session{ID: id, Token: token, ExpiresAt: expiresAt}, nil
}

// Lookup resolves a token to its session id.
func (s *Service) Lookup(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}
	meta, ok := s.tokens.Validate(token)
	if !ok {
		return "", ErrInvalidToken
	}
	return meta.SessionID, nil
}

// RunSweeper removes expired tokens every interval until ctx is done.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.tokens.Sweep(); n > 0 {
				s.logger.Printf("session service: swept expired=%d", n)
			}
		}
	}
}
