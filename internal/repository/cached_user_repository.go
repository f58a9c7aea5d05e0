package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	userDomain "github.com/shareit-go/service-shareit/internal/domain/user"
	"go.uber.org/zap"
)

// cachedUser is the JSON form of a user stored in Redis.
type cachedUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CachedUserRepository is a read-through Redis cache in front of a UserRepository.
// Redis failures are logged and the call falls through to the underlying store.
type CachedUserRepository struct {
	userDomain.UserRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisClient creates a Redis client from connection settings.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// NewCachedUserRepository wraps next with a Redis cache keyed by user id.
func NewCachedUserRepository(next userDomain.UserRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedUserRepository {
	return &CachedUserRepository{
		UserRepository: next,
		client:         client,
		ttl:            ttl,
		logger:         logger,
	}
}

func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// FindByID serves the user from Redis when present and fills the cache on a miss.
func (r *CachedUserRepository) FindByID(ctx context.Context, id int64) (*userDomain.User, error) {
	if u, ok := r.get(ctx, id); ok {
		return u, nil
	}

	u, err := r.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.set(ctx, u)
	return u, nil
}

// Update writes through to the store and drops the cached entry.
func (r *CachedUserRepository) Update(ctx context.Context, u *userDomain.User) error {
	if err := r.UserRepository.Update(ctx, u); err != nil {
		return err
	}
	r.evict(ctx, u.ID())
	return nil
}

// Delete removes the user from the store and the cache.
func (r *CachedUserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.UserRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *CachedUserRepository) get(ctx context.Context, id int64) (*userDomain.User, bool) {
	val, err := r.client.Get(ctx, userKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		r.logger.Warn("failed to read user from cache", zap.Int64("user_id", id), zap.Error(err))
		return nil, false
	}

	var cu cachedUser
	if err := json.Unmarshal([]byte(val), &cu); err != nil {
		r.logger.Warn("failed to unmarshal cached user", zap.Int64("user_id", id), zap.Error(err))
		return nil, false
	}
	return userDomain.Reconstruct(cu.ID, cu.Name, cu.Email, cu.CreatedAt, cu.UpdatedAt), true
}

func (r *CachedUserRepository) set(ctx context.Context, u *userDomain.User) {
	data, err := json.Marshal(cachedUser{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	})
	if err != nil {
		r.logger.Warn("failed to marshal user for cache", zap.Int64("user_id", u.ID()), zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, userKey(u.ID()), data, r.ttl).Err(); err != nil {
		r.logger.Warn("failed to write user to cache", zap.Int64("user_id", u.ID()), zap.Error(err))
	}
}

func (r *CachedUserRepository) evict(ctx context.Context, id int64) {
	if err := r.client.Del(ctx, userKey(id)).Err(); err != nil {
		r.logger.Warn("failed to evict user from cache", zap.Int64("user_id", id), zap.Error(err))
	}
}
