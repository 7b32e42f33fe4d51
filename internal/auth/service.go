package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/logger"
	"one-on-one-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	stateTTL        = 10 * time.Minute
	tokenIssuer     = "one-on-one-backend"
)

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	Provider  string    `json:"provider"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthService provides authentication functionality
type AuthService struct {
	config        *AuthConfig
	providers     map[string]IdentityProvider
	userRepo      repository.UserRepositoryInterface
	isAdminEmail  func(email string) bool
	refreshTokens map[string]*RefreshTokenData // In-memory store for refresh tokens
	states        map[string]time.Time
	tokenMutex    sync.RWMutex
	now           func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string          `json:"user_id" example:"6f1c7c8e-3c1b-4c89-9d6b-0f4f5f2d9a11"`
	Email                string          `json:"email" example:"jane.doe@example.com"`
	Role                 models.UserRole `json:"role" example:"developer"`
	Provider             string          `json:"provider" example:"github"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// SessionUser is the signed-in user returned with tokens
type SessionUser struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	FullName  string          `json:"fullName"`
	AvatarURL string          `json:"avatarUrl,omitempty"`
	Role      models.UserRole `json:"role"`
}

// AuthHandlerResponse represents the tokens issued after sign-in or refresh
type AuthHandlerResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType"`
	ExpiresIn    int64       `json:"expiresIn"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	User         SessionUser `json:"user"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// NewAuthService creates a new authentication service with a GitHub client per configured provider
func NewAuthService(config *AuthConfig, userRepo repository.UserRepositoryInterface, isAdminEmail func(string) bool) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	providers := make(map[string]IdentityProvider)
	for providerName, providerConfig := range config.Providers {
		pc := providerConfig
		providers[providerName] = NewGitHubClient(&pc)
	}
	return newAuthService(config, providers, userRepo, isAdminEmail), nil
}

func newAuthService(config *AuthConfig, providers map[string]IdentityProvider, userRepo repository.UserRepositoryInterface, isAdminEmail func(string) bool) *AuthService {
	if isAdminEmail == nil {
		isAdminEmail = func(string) bool { return false }
	}
	return &AuthService{
		config:        config,
		providers:     providers,
		userRepo:      userRepo,
		isAdminEmail:  isAdminEmail,
		refreshTokens: make(map[string]*RefreshTokenData),
		states:        make(map[string]time.Time),
		now:           time.Now,
	}
}

// HasProvider reports whether provider is configured
func (s *AuthService) HasProvider(provider string) bool {
	_, ok := s.providers[provider]
	return ok
}

// FrontendURL is the origin the sign-in frame posts its result to
func (s *AuthService) FrontendURL() string {
	return s.config.FrontendURL
}

func (s *AuthService) callbackURL(provider string) string {
	return fmt.Sprintf("%s/api/auth/%s/handler/frame", s.config.RedirectURL, provider)
}

// GetAuthURL issues a state value and returns the provider's authorization URL
func (s *AuthService) GetAuthURL(provider string) (string, error) {
	idp, ok := s.providers[provider]
	if !ok {
		return "", apperrors.ErrProviderNotConfigured
	}

	state, err := generateRandomString(32)
	if err != nil {
		return "", err
	}

	s.tokenMutex.Lock()
	now := s.now()
	for st, exp := range s.states {
		if now.After(exp) {
			delete(s.states, st)
		}
	}
	s.states[state] = now.Add(stateTTL)
	s.tokenMutex.Unlock()

	return idp.AuthCodeURL(state, s.callbackURL(provider)), nil
}

// consumeState accepts each issued state exactly once before it expires
func (s *AuthService) consumeState(state string) bool {
	s.tokenMutex.Lock()
	defer s.tokenMutex.Unlock()
	exp, ok := s.states[state]
	delete(s.states, state)
	return ok && s.now().Before(exp)
}

// HandleCallback completes the OAuth flow: it resolves the local user for the provider
// profile and issues an access and a refresh token
func (s *AuthService) HandleCallback(ctx context.Context, provider, code, state string) (*AuthHandlerResponse, error) {
	idp, ok := s.providers[provider]
	if !ok {
		return nil, apperrors.ErrProviderNotConfigured
	}
	if !s.consumeState(state) {
		return nil, apperrors.NewAuthenticationError("invalid or expired state parameter")
	}

	profile, err := idp.FetchProfile(ctx, code, s.callbackURL(provider))
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	user, err := s.ResolveUser(profile)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.TouchLastLogin(user.ID, s.now()); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to record last login")
	}

	return s.issueTokens(user, provider)
}

// ResolveUser finds the user by email or creates one. New users are developers unless their
// email is listed in ADMIN_EMAILS.
func (s *AuthService) ResolveUser(profile *UserProfile) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(profile.Email))
	if email == "" {
		return nil, apperrors.NewAuthenticationError("your account has no verified email address")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user != nil {
		changed := false
		if user.FullName == "" && profile.Name != "" {
			user.FullName = profile.Name
			changed = true
		}
		if profile.AvatarURL != "" && user.AvatarURL != profile.AvatarURL {
			user.AvatarURL = profile.AvatarURL
			changed = true
		}
		if user.ExternalID == "" && profile.ID != 0 {
			user.ExternalID = fmt.Sprintf("%d", profile.ID)
			changed = true
		}
		if changed {
			if err := s.userRepo.Update(user); err != nil {
				return nil, fmt.Errorf("failed to update user: %w", err)
			}
		}
		return user, nil
	}

	role := models.UserRoleDeveloper
	if s.isAdminEmail(email) {
		role = models.UserRoleAdmin
	}
	name := profile.Name
	if name == "" {
		name = profile.Username
	}
	user = &models.User{
		Email:      email,
		FullName:   name,
		AvatarURL:  profile.AvatarURL,
		Role:       role,
		ExternalID: fmt.Sprintf("%d", profile.ID),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent first sign-in created the row
			return s.userRepo.GetByEmail(email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *models.User, provider string) (*AuthHandlerResponse, error) {
	jwtToken, err := s.GenerateJWT(user, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := generateRandomString(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := s.now()
	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		UserID:    user.ID,
		Provider:  provider,
		ExpiresAt: now.Add(refreshTokenTTL),
		CreatedAt: now,
	}
	s.tokenMutex.Unlock()

	return &AuthHandlerResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		User: SessionUser{
			ID:        user.ID,
			Email:     user.Email,
			FullName:  user.FullName,
			AvatarURL: user.AvatarURL,
			Role:      user.Role,
		},
	}, nil
}

// RefreshToken rotates a refresh token and issues a new access token for the current user state
func (s *AuthService) RefreshToken(refreshToken string) (*AuthHandlerResponse, error) {
	s.tokenMutex.Lock()
	tokenData, exists := s.refreshTokens[refreshToken]
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if s.now().After(tokenData.ExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.userRepo.GetByID(tokenData.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.issueTokens(user, tokenData.Provider)
}

// GenerateJWT creates a signed access token for the user
func (s *AuthService) GenerateJWT(user *models.User, provider string) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   user.ID.String(),
		Email:    user.Email,
		Role:     user.Role,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// LoadUser re-reads the user named by validated claims
func (s *AuthService) LoadUser(claims *AuthClaims) (*models.User, error) {
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.NewAuthenticationError("invalid user id in token")
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAuthenticationError("user no longer exists")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// Logout revokes the refresh token; access tokens expire on their own
func (s *AuthService) Logout(refreshToken string) {
	if refreshToken == "" {
		return
	}
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

// generateRandomString generates a random base64 encoded string
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
