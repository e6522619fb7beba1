//go:build !integration

package user

import (
	"context"
	"testing"
	"time"

	"storefront/domain"
	"storefront/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]domain.User
	nextID  uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]domain.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.nextID++
	user.ID = r.nextID
	r.byEmail[user.Email] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func TestRegisterAndLogin(t *testing.T) {
	utils.InitJWT("test-secret", time.Hour)
	repo := newFakeUserRepo()
	svc := NewUserService(repo, validator.New())
	ctx := context.Background()

	u, err := svc.Register(ctx, &domain.User{FullName: " Ada ", Email: "Ada@Example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, "Ada", u.FullName)
	assert.Equal(t, domain.RoleCustomer, u.Role)
	assert.Empty(t, u.Password)
	assert.NotEqual(t, "hunter22", repo.byEmail["ada@example.com"].Password)

	token, logged, err := svc.Login(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	claims, err := utils.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
}

func TestRegister_Rejects(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, validator.New())
	ctx := context.Background()

	_, err := svc.Register(ctx, &domain.User{Email: "not-an-email", Password: "hunter22"})
	assert.EqualError(t, err, "invalid email format")

	_, err = svc.Register(ctx, &domain.User{Email: "a@b.co", Password: "123"})
	assert.EqualError(t, err, "password must be at least 6 characters")

	_, err = svc.Register(ctx, &domain.User{Email: "a@b.co", Password: "hunter22"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, &domain.User{Email: "A@B.co", Password: "hunter22"})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	utils.InitJWT("test-secret", time.Hour)
	svc := NewUserService(newFakeUserRepo(), validator.New())
	ctx := context.Background()

	_, err := svc.Register(ctx, &domain.User{Email: "a@b.co", Password: "hunter22"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "a@b.co", "wrong-pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@b.co", "hunter22")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
