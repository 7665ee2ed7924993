// Package session keeps per-chat dialogue state in memory. Abandoned
// sessions expire on their own; nothing is persisted.
package session

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/set-night/placefinder/internal/domain"
)

type Store struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewStore creates a store whose sessions expire after ttl of inactivity,
// purged by a janitor on cleanupInterval.
func NewStore(ttl, cleanupInterval time.Duration) *Store {
	return &Store{
		cache: cache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

// Get returns the chat's session, if any. Every hit refreshes the TTL so a
// session stays alive as long as the user keeps interacting.
func (s *Store) Get(chatID int64) (*domain.Session, bool) {
	x, found := s.cache.Get(key(chatID))
	if !found {
		return nil, false
	}
	sess := x.(*domain.Session)
	s.cache.Set(key(chatID), sess, cache.DefaultExpiration)
	return sess, true
}

// Put stores or replaces the chat's session.
func (s *Store) Put(sess *domain.Session) {
	s.cache.Set(key(sess.ChatID), sess, cache.DefaultExpiration)
}

// Reset discards any existing session and installs a fresh one at the
// language prompt.
func (s *Store) Reset(chatID int64) *domain.Session {
	sess := domain.NewSession(chatID)
	s.cache.Set(key(chatID), sess, cache.DefaultExpiration)
	return sess
}

// Delete removes the chat's session entirely; the next contact requires /start.
func (s *Store) Delete(chatID int64) {
	s.cache.Delete(key(chatID))
}

func key(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
