// Package session persists the currently authenticated identity across
// process restarts as a snapshot under a fixed key in the key-value store.
// The snapshot is a copy of the user row at login time; later changes to the
// account are not reflected until the next login.
package session

import (
	"DentalDesk/models"
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

const sessionKey = "session:current"

// KV is the narrow key-value surface the store needs; cache.Cache
// satisfies it.
type KV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Session is the persisted pair of user snapshot and authentication flag.
type Session struct {
	User            *models.User `json:"user"`
	IsAuthenticated bool         `json:"is_authenticated"`
}

type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Save persists the authenticated-user snapshot. The password hash is never
// part of the snapshot.
func (s *Store) Save(ctx context.Context, user *models.User) error {
	snapshot := *user
	snapshot.PasswordHash = ""

	payload, err := json.Marshal(Session{User: &snapshot, IsAuthenticated: true})
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}
	return s.kv.Set(ctx, sessionKey, payload, 0)
}

// Current rehydrates the persisted session. An absent key yields an empty,
// unauthenticated session.
func (s *Store) Current(ctx context.Context) (Session, error) {
	raw, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		return Session{}, errors.Wrap(err, "failed to read session")
	}
	if raw == "" {
		return Session{}, nil
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return Session{}, errors.Wrap(err, "failed to unmarshal session")
	}
	return session, nil
}

// Clear removes the persisted session; used on logout.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, sessionKey)
}
