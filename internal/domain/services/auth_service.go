package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"room-manager/internal/domain/models"
	"room-manager/internal/error/code"
	"room-manager/internal/infrastructure/config"
	"room-manager/pkg/utils"
)

// InterfaceAuthService defines login, registration and session checks
type InterfaceAuthService interface {
	Register(ctx context.Context, user *models.User, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, claims *SessionClaims) error
	ParseSession(ctx context.Context, token string) (*SessionClaims, error)
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

// SessionClaims is the payload of the session token. The JWT id is the session id.
type SessionClaims struct {
	UserID   string          `json:"user_id"`
	Role     models.UserRole `json:"role"`
	TenantID *string         `json:"tenant_id,omitempty"`
	jwt.RegisteredClaims
}

// LoginResult 表示登录结果
type LoginResult struct {
	Token     string       `json:"-"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *models.User `json:"user"`
}

// AuthService issues and checks session tokens. Sessions is nil when Redis
// is disabled; tokens then stay valid until they expire.
type AuthService struct {
	DB       *gorm.DB
	Config   *config.Config
	Sessions InterfaceSessionStore
	issuer   string
}

// NewAuthService creates the auth service
func NewAuthService(db *gorm.DB, cfg *config.Config, sessions InterfaceSessionStore) InterfaceAuthService {
	return &AuthService{
		DB:       db,
		Config:   cfg,
		Sessions: sessions,
		issuer:   "room-manager",
	}
}

// 1 Register creates an account with a bcrypt-hashed password
func (s *AuthService) Register(ctx context.Context, user *models.User, password string) (*models.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Email == "" || password == "" {
		return nil, code.New(code.ErrValidation, "email and password are required")
	}
	if user.Role == "" {
		user.Role = models.UserRoleTenant
	}
	if user.Role != models.UserRoleAdmin && user.Role != models.UserRoleTenant {
		return nil, code.Newf(code.ErrValidation, "invalid role %q", user.Role)
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return nil, dbError(err)
	}
	if count > 0 {
		return nil, code.New(code.ErrUserAlreadyExist, "")
	}
	if user.TenantID != nil {
		if err := requireRef(ctx, s.DB, &models.Tenant{}, "tenantId", *user.TenantID); err != nil {
			return nil, err
		}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, code.Wrap(code.ErrUnknown, err)
	}
	user.Password = hash

	if err := s.DB.WithContext(ctx).Omit("Tenant").Create(user).Error; err != nil {
		return nil, dbError(err)
	}
	return user, nil
}

// 2 Login verifies the credentials and issues a session token
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.New(code.ErrUserPasswordIncorrect, "")
		}
		return nil, dbError(err)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, code.New(code.ErrUserPasswordIncorrect, "")
	}

	now := time.Now()
	expiresAt := now.Add(s.Config.SessionTTL)
	claims := &SessionClaims{
		UserID:   user.ID,
		Role:     user.Role,
		TenantID: user.TenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Config.JWTSecretKey))
	if err != nil {
		return nil, code.Wrap(code.ErrUnknown, err)
	}

	if s.Sessions != nil {
		if err := s.Sessions.Save(ctx, claims.ID, user.ID, s.Config.SessionTTL); err != nil {
			return nil, code.Wrap(code.ErrDependencyUnavailable, err)
		}
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: &user}, nil
}

// 3 Logout revokes the session
func (s *AuthService) Logout(ctx context.Context, claims *SessionClaims) error {
	if s.Sessions == nil || claims == nil || claims.ID == "" {
		return nil
	}
	if err := s.Sessions.Revoke(ctx, claims.ID); err != nil {
		return code.Wrap(code.ErrDependencyUnavailable, err)
	}
	return nil
}

// 4 ParseSession validates a token and, with a session store, that it was not revoked
func (s *AuthService) ParseSession(ctx context.Context, token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.Config.JWTSecretKey), nil
	})
	if err != nil || !parsed.Valid {
		return nil, code.New(code.ErrTokenInvalid, "")
	}

	if s.Sessions != nil {
		live, err := s.Sessions.Exists(ctx, claims.ID)
		if err != nil {
			return nil, code.Wrap(code.ErrDependencyUnavailable, err)
		}
		if !live {
			return nil, code.New(code.ErrTokenInvalid, "session revoked")
		}
	}
	return claims, nil
}

// 5 CurrentUser returns the user with tenant, room and property
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Preload("Tenant.Room.Property").Where("id = ?", userID).First(&user).Error
	if err != nil {
		return nil, lookupError(err, code.ErrUserNotFound)
	}
	return &user, nil
}
