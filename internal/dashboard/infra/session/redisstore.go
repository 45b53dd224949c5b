package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/session"
)

const DefaultRedisKeyPrefix = "dashboard"

// RedisStore keeps credentials server side, the cookie carries a random reference only.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client redis.UniversalClient, prefix string, ttl time.Duration) RedisStore {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}

	return RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s RedisStore) Save(ctx context.Context, c session.Credential) (session.Token, error) {
	plain, err := session.Serialize(c)
	if err != nil {
		return "", err
	}

	id := uuid.New()
	err = s.client.Set(ctx, s.key(id), plain, s.ttl).Err()
	if err != nil {
		return "", fmt.Errorf("store session in redis: %w", err)
	}

	return session.Token(id.String()), nil
}

func (s RedisStore) Load(ctx context.Context, token session.Token) (session.Credential, error) {
	if token == "" {
		return session.Credential{}, session.ErrSessionNotFound
	}

	id, err := uuid.Parse(string(token))
	if err != nil {
		return session.Credential{}, fmt.Errorf("%w: malformed reference: %w", session.ErrInvalidSession, err)
	}

	plain, err := s.client.Get(ctx, s.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return session.Credential{}, session.ErrSessionNotFound
	}
	if err != nil {
		return session.Credential{}, fmt.Errorf("get session from redis: %w", err)
	}

	c, err := session.Parse(plain)
	if err != nil {
		return session.Credential{}, fmt.Errorf("%w: %w", session.ErrInvalidSession, err)
	}

	return c, nil
}

func (s RedisStore) Delete(ctx context.Context, token session.Token) error {
	id, err := uuid.Parse(string(token))
	if err != nil {
		return nil
	}

	err = s.client.Del(ctx, s.key(id)).Err()
	if err != nil {
		return fmt.Errorf("delete session from redis: %w", err)
	}

	return nil
}

func (s RedisStore) key(id uuid.UUID) string {
	return s.prefix + ":session:" + id.String()
}
