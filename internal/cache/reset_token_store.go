package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResetTokenData is stored under the hash of a password reset token.
type ResetTokenData struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ResetTokenStore keeps password reset tokens. A user holds at most one live
// token; issuing a new one revokes the previous.
type ResetTokenStore interface {
	// Save stores data under tokenHash, replacing the user's previous token.
	Save(ctx context.Context, tokenHash string, data *ResetTokenData, ttl time.Duration) error
	// Consume returns and removes the data for tokenHash. A token can be
	// consumed once; nil means unknown or expired.
	Consume(ctx context.Context, tokenHash string) (*ResetTokenData, error)
}

// RedisClientProvider provides access to the underlying Redis client.
type RedisClientProvider interface {
	Client() *redis.Client
}

type resetTokenStore struct {
	cache  Cache
	client *redis.Client
}

// NewResetTokenStore creates a ResetTokenStore. When cache exposes a Redis
// client, Save runs as a single script.
func NewResetTokenStore(cache Cache) ResetTokenStore {
	store := &resetTokenStore{cache: cache}
	if provider, ok := cache.(RedisClientProvider); ok {
		store.client = provider.Client()
	}
	return store
}

// ResetTokenKey is the key holding a token's data.
func ResetTokenKey(tokenHash string) string {
	return fmt.Sprintf("password_reset:%s", tokenHash)
}

// ResetTokenUserKey is the key pointing at a user's live token hash.
func ResetTokenUserKey(userID string) string {
	return fmt.Sprintf("password_reset_user:%s", userID)
}

// saveScript drops the user's previous token and stores the new one.
var saveScript = redis.NewScript(`
local tokenKey = KEYS[1]
local userKey = KEYS[2]
local payload = ARGV[1]
local ttlSeconds = tonumber(ARGV[2])
local tokenHash = ARGV[3]
local prefix = ARGV[4]

local previous = redis.call('GET', userKey)
if previous then
    redis.call('DEL', prefix .. previous)
end

redis.call('SET', tokenKey, payload, 'EX', ttlSeconds)
redis.call('SET', userKey, tokenHash, 'EX', ttlSeconds)
return "OK"
`)

func (s *resetTokenStore) Save(ctx context.Context, tokenHash string, data *ResetTokenData, ttl time.Duration) error {
	if s.client != nil {
		payload, err := jsonString(data)
		if err != nil {
			return err
		}
		keys := []string{ResetTokenKey(tokenHash), ResetTokenUserKey(data.UserID)}
		ttlSeconds := int(ttl.Seconds())
		if ttlSeconds < 1 {
			ttlSeconds = 1
		}
		if err := saveScript.Run(ctx, s.client, keys, payload, ttlSeconds, tokenHash, ResetTokenKey("")).Err(); err != nil {
			return fmt.Errorf("save reset token: %w", err)
		}
		return nil
	}

	return s.saveFallback(ctx, tokenHash, data, ttl)
}

// saveFallback is the non-atomic path used with plain Cache implementations.
func (s *resetTokenStore) saveFallback(ctx context.Context, tokenHash string, data *ResetTokenData, ttl time.Duration) error {
	userKey := ResetTokenUserKey(data.UserID)

	var previous string
	found, err := s.cache.Get(ctx, userKey, &previous)
	if err != nil {
		return fmt.Errorf("load previous reset token: %w", err)
	}
	if found && previous != "" {
		if err := s.cache.Delete(ctx, ResetTokenKey(previous)); err != nil {
			return fmt.Errorf("revoke previous reset token: %w", err)
		}
	}

	if err := s.cache.Set(ctx, ResetTokenKey(tokenHash), data, ttl); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return s.cache.Set(ctx, userKey, tokenHash, ttl)
}

func (s *resetTokenStore) Consume(ctx context.Context, tokenHash string) (*ResetTokenData, error) {
	var data ResetTokenData
	found, err := s.cache.GetDel(ctx, ResetTokenKey(tokenHash), &data)
	if err != nil {
		return nil, fmt.Errorf("consume reset token: %w", err)
	}
	if !found {
		return nil, nil
	}

	if err := s.cache.Delete(ctx, ResetTokenUserKey(data.UserID)); err != nil {
		return nil, fmt.Errorf("clear reset token owner: %w", err)
	}
	return &data, nil
}

func jsonString(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal value: %w", err)
	}
	return string(b), nil
}
