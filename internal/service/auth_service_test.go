package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashgyan/mafiamanagerirl/internal/model"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]model.User)}
}

func (r *memUserRepo) Create(ctx context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func TestSignupLoginRoundTrip(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret")
	ctx := context.Background()

	signed, err := svc.Signup(ctx, "gyan", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "gyan", signed.Username)
	assert.NotEmpty(t, signed.Token)

	logged, err := svc.Login(ctx, "gyan", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, signed.UserID, logged.UserID)

	claims, err := svc.ValidateToken(logged.Token)
	require.NoError(t, err)
	assert.Equal(t, signed.UserID, claims.UserID)
	assert.Equal(t, "gyan", claims.Username)
}

func TestSignup_Validation(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret")
	ctx := context.Background()

	_, err := svc.Signup(ctx, "", "hunter22")
	assert.Error(t, err)

	_, err = svc.Signup(ctx, "gyan", "short")
	assert.Error(t, err)

	_, err = svc.Signup(ctx, "gyan", strings.Repeat("x", 73))
	assert.Error(t, err)

	_, err = svc.Signup(ctx, "gyan", "hunter22")
	require.NoError(t, err)
	_, err = svc.Signup(ctx, "gyan", "different-pass")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret")
	ctx := context.Background()

	_, err := svc.Signup(ctx, "gyan", "hunter22")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "gyan", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_RejectsForgeries(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret")
	other := NewAuthService(newMemUserRepo(), "other-secret")
	ctx := context.Background()

	minted, err := other.Signup(ctx, "gyan", "hunter22")
	require.NoError(t, err)

	_, err = svc.ValidateToken(minted.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
