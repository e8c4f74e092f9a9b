package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/serranotex/serrano-tex-ims/internal/application/dto"
	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/access"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
	"github.com/serranotex/serrano-tex-ims/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, alta de usuarios y permisos efectivos.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	policy   validation.PasswordPolicy
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, policy validation.PasswordPolicy) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, policy: policy}
}

// Policy devuelve la política de contraseña vigente.
func (uc *AuthUseCase) Policy() validation.PasswordPolicy { return uc.policy }

// ValidateRegistration aplica las reglas de email y contraseña.
func (uc *AuthUseCase) ValidateRegistration(in dto.RegisterRequest) validation.FormResult {
	return validation.ValidateForm(
		map[string]any{"email": in.Email, "password": in.Password},
		map[string]validation.Validator{
			"email":    validation.StringValidator(validation.ValidateEmail),
			"password": validation.StringValidator(uc.policy.Validate),
		},
	)
}

// Register crea un usuario: valida, hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := domain.NewFormValidationError(uc.ValidateRegistration(in)); err != nil {
		return nil, err
	}
	role, ok := access.ParseRole(in.Role)
	if !ok {
		return nil, domain.NewValidationError(validation.Invalid("Invalid role"))
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive || !user.Role.Valid() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role.String(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      *toUserResponse(user),
	}, nil
}

// Me devuelve el usuario y sus permisos efectivos. Devuelve (nil, nil) si no existe.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil, err
	}
	return &dto.MeResponse{
		User:        *toUserResponse(user),
		Permissions: access.PermissionCodes(user.Role),
	}, nil
}

// ListUsers lista usuarios paginados por fecha de alta.
func (uc *AuthUseCase) ListUsers(ctx context.Context, page dto.PageRequest) ([]dto.UserResponse, error) {
	page.Normalize()
	users, err := uc.userRepo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
