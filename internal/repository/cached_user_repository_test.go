package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shareit-go/service-shareit/internal/domain"
	userDomain "github.com/shareit-go/service-shareit/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUserRepo struct{ mock.Mock }

func (m *stubUserRepo) FindByID(ctx context.Context, id int64) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*userDomain.User)
	return u, args.Error(1)
}

func (m *stubUserRepo) FindByIDs(ctx context.Context, ids []int64) ([]*userDomain.User, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).([]*userDomain.User)
	return found, args.Error(1)
}

func (m *stubUserRepo) FindAll(ctx context.Context) ([]*userDomain.User, error) {
	args := m.Called(ctx)
	found, _ := args.Get(0).([]*userDomain.User)
	return found, args.Error(1)
}

func (m *stubUserRepo) Save(ctx context.Context, u *userDomain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *stubUserRepo) Update(ctx context.Context, u *userDomain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *stubUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestCachedUserRepository(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	ctx := context.Background()
	created := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	alice := userDomain.Reconstruct(1, "alice", "alice@example.com", created, created)

	t.Run("ReadThrough", func(t *testing.T) {
		next := &stubUserRepo{}
		repo := NewCachedUserRepository(next, client, time.Hour, zap.NewNop())
		next.On("FindByID", mock.Anything, int64(1)).Return(alice, nil).Once()

		first, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		second, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, "alice", first.Name())
		assert.Equal(t, "alice", second.Name())
		assert.Equal(t, "alice@example.com", second.Email())
		assert.True(t, s.Exists("user:1"))
		assert.Equal(t, time.Hour, s.TTL("user:1"))
		next.AssertExpectations(t)
	})

	t.Run("UpdateEvicts", func(t *testing.T) {
		next := &stubUserRepo{}
		repo := NewCachedUserRepository(next, client, time.Hour, zap.NewNop())
		next.On("Update", mock.Anything, alice).Return(nil)

		require.NoError(t, repo.Update(ctx, alice))
		assert.False(t, s.Exists("user:1"))
	})

	t.Run("NotFoundIsNotCached", func(t *testing.T) {
		next := &stubUserRepo{}
		repo := NewCachedUserRepository(next, client, time.Hour, zap.NewNop())
		next.On("FindByID", mock.Anything, int64(2)).Return(nil, domain.NewUserNotFoundError(2)).Twice()

		_, err := repo.FindByID(ctx, 2)
		assert.True(t, domain.IsKind(err, domain.KindUserNotFound))
		_, err = repo.FindByID(ctx, 2)
		assert.True(t, domain.IsKind(err, domain.KindUserNotFound))
		assert.False(t, s.Exists("user:2"))
		next.AssertExpectations(t)
	})

	t.Run("RedisDownFallsThrough", func(t *testing.T) {
		broken := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
		defer broken.Close()

		next := &stubUserRepo{}
		repo := NewCachedUserRepository(next, broken, time.Hour, zap.NewNop())
		next.On("FindByID", mock.Anything, int64(1)).Return(alice, nil)

		u, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID())
	})
}
