package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"SmartCart-Backend/domain"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type (
	// SessionStore keeps live sessions by access token. A session disappears
	// when it expires or is revoked.
	SessionStore interface {
		Save(ctx context.Context, session *domain.Session) error
		Get(ctx context.Context, accessToken string) (*domain.Session, error)
		Delete(ctx context.Context, accessToken string) error
	}

	redisSessionStore struct {
		client *redis.Client
	}
)

func NewSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Save(ctx context.Context, session *domain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return domain.ErrTokenExpired
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.AccessToken, data, ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, accessToken string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+accessToken).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, accessToken string) error {
	return s.client.Del(ctx, sessionKeyPrefix+accessToken).Err()
}
