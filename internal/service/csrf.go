package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CSRFService mints single-use anti-forgery tokens bound to a session.
// Tokens live in memory; a server restart invalidates outstanding forms,
// which simply re-render with an "invalid request" notice.
type CSRFService struct {
	mu     sync.Mutex
	tokens map[string]csrfToken
	ttl    time.Duration
}

type csrfToken struct {
	sessionID string
	expires   time.Time
}

// NewCSRFService creates a CSRFService whose tokens expire after ttl.
func NewCSRFService(ttl time.Duration) *CSRFService {
	return &CSRFService{
		tokens: make(map[string]csrfToken),
		ttl:    ttl,
	}
}

// Issue mints a new token bound to the given session ID.
func (c *CSRFService) Issue(sessionID string) string {
	token := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.purgeExpiredLocked()
	c.tokens[token] = csrfToken{
		sessionID: sessionID,
		expires:   time.Now().Add(c.ttl),
	}
	return token
}

// Consume reports whether token is a live token bound to sessionID.
// The token is invalidated whether or not the check succeeds, so each
// token can be presented at most once.
func (c *CSRFService) Consume(sessionID, token string) bool {
	if token == "" || sessionID == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.tokens[token]
	if !ok {
		return false
	}
	delete(c.tokens, token)

	return entry.sessionID == sessionID && time.Now().Before(entry.expires)
}

// purgeExpiredLocked drops expired tokens. Caller holds c.mu.
func (c *CSRFService) purgeExpiredLocked() {
	now := time.Now()
	for token, entry := range c.tokens {
		if now.After(entry.expires) {
			delete(c.tokens, token)
		}
	}
}
