package repositories

import (
	"context"
	"encoding/json"
	"time"

	"civicconnect-be/models"

	"github.com/redis/go-redis/v9"
)

// SessionTTL bounds how long a login stays valid. It matches the lifetime
// of the issued token.
const SessionTTL = 72 * time.Hour

const sessionKeyPrefix = "session:"

// SessionStore holds at most one active session per issued token.
type SessionStore interface {
	Save(ctx context.Context, session models.Session) error
	Get(ctx context.Context, id string) (models.Session, error)
	Delete(ctx context.Context, id string) error
}

type redisSessionStore struct {
	client *redis.Client
}

// NewSessionStore returns a Redis-backed SessionStore
func NewSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Save(ctx context.Context, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.ID, payload, SessionTTL).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, id string) (models.Session, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return models.Session{}, models.ErrNotFound
	}
	if err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return models.Session{}, err
	}

	return session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}
