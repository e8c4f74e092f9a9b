package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serranotex/serrano-tex-ims/internal/application/apptest"
	"github.com/serranotex/serrano-tex-ims/internal/application/auth"
	"github.com/serranotex/serrano-tex-ims/internal/application/dto"
	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
	pkgjwt "github.com/serranotex/serrano-tex-ims/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func newAuthUC() (*auth.AuthUseCase, *apptest.Store) {
	s := apptest.NewStore()
	uc := auth.NewAuthUseCase(apptest.UserRepo{S: s}, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "ims-test"}, validation.DefaultPasswordPolicy)
	return uc, s
}

func TestRegisterYLogin_TokenConRol(t *testing.T) {
	uc, _ := newAuthUC()
	ctx := context.Background()
	u, err := uc.Register(ctx, dto.RegisterRequest{Email: " Ana@Serrano.co ", Password: "Secreta123", Name: "Ana", Role: "manager"})
	require.NoError(t, err)
	assert.Equal(t, "ana@serrano.co", u.Email)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@serrano.co", Password: "Secreta123"})
	require.NoError(t, err)
	assert.Equal(t, 3600, out.ExpiresIn)

	userID, role, err := pkgjwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.Equal(t, "manager", role)
}

func TestRegister_ErroresPorCampo(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "ana", Password: "abc", Role: "admin"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Email format is invalid"}, verr.Fields["email"])
	assert.Equal(t, []string{
		"Password must be at least 8 characters long",
		"Password must contain at least one uppercase letter",
		"Password must contain at least one number",
	}, verr.Fields["password"])
}

func TestRegister_RolDesconocidoYEmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC()
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "Secreta123", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "Secreta123", Role: "viewer"})
	require.NoError(t, err)
	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "Secreta123", Role: "viewer"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_Fallos(t *testing.T) {
	uc, s := newAuthUC()
	ctx := context.Background()
	u, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "Secreta123", Role: "employee"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "x@b.co", Password: "Secreta123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.co", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	stored := s.Users[u.ID]
	stored.Status = entity.UserStatusSuspended
	s.Users[u.ID] = stored
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.co", Password: "Secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMe_PermisosDelRol(t *testing.T) {
	uc, _ := newAuthUC()
	ctx := context.Background()
	u, err := uc.Register(ctx, dto.RegisterRequest{Email: "v@b.co", Password: "Secreta123", Role: "viewer"})
	require.NoError(t, err)

	me, err := uc.Me(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"products:view", "inventory:view", "sales:view", "customers:view", "reports:view"}, me.Permissions)

	me, err = uc.Me(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, me)
}
