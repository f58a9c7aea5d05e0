package user

import (
	"testing"

	"github.com/shareit-go/service-shareit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("alice", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Name())

	for _, email := range []string{"", "alice", "alice@"} {
		_, err := NewUser("alice", email)
		assert.True(t, domain.IsKind(err, domain.KindValidation), email)
	}
}

func TestUser_Update(t *testing.T) {
	u, err := NewUser("alice", "alice@example.com")
	require.NoError(t, err)

	email := "a@example.org"
	require.NoError(t, u.Update(nil, &email))
	assert.Equal(t, "a@example.org", u.Email())
	assert.Equal(t, "alice", u.Name())

	bad := "nope"
	assert.Error(t, u.Update(nil, &bad))
	assert.Equal(t, "a@example.org", u.Email())
}
