package service

import (
	"time"

	"github.com/0xsj/overwatch-pkg/security"
	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// TokenService handles JWT token generation and validation.
type TokenService interface {
	// GenerateAccessToken creates a new access token for a user.
	GenerateAccessToken(user *model.User) (string, types.Timestamp, error)

	// ValidateAccessToken validates an access token and returns the claims.
	ValidateAccessToken(token string) (*AccessTokenClaims, error)
}

// AccessTokenClaims contains the claims embedded in an access token.
type AccessTokenClaims struct {
	UserID    types.ID
	Username  string
	ExpiresAt types.Timestamp
}

// TokenConfig holds configuration for token generation.
type TokenConfig struct {
	Issuer              string
	Audience            string
	AccessTokenDuration time.Duration
	SigningKey          []byte
}

// DefaultTokenConfig returns default token configuration.
func DefaultTokenConfig() TokenConfig {
	return TokenConfig{
		Issuer:              "azkar-backend",
		Audience:            "azkar",
		AccessTokenDuration: 24 * time.Hour,
	}
}

// tokenService implements TokenService.
type tokenService struct {
	config TokenConfig
	signer *security.HMACSigner
}

// NewTokenService creates a new TokenService.
func NewTokenService(config TokenConfig) (TokenService, error) {
	signer, err := security.NewHMACSigner(security.AlgorithmHS256, config.SigningKey)
	if err != nil {
		return nil, err
	}

	return &tokenService{
		config: config,
		signer: signer,
	}, nil
}

func (s *tokenService) GenerateAccessToken(user *model.User) (string, types.Timestamp, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.config.AccessTokenDuration)

	claims := security.NewClaims().
		WithSubject(user.ID().String()).
		WithIssuer(s.config.Issuer).
		WithAudience(s.config.Audience).
		WithIssuedAt(now).
		WithExpirationTime(expiresAt).
		WithRandomJWTID().
		Set("username", user.Username())

	token, err := security.SignJWT(claims, s.signer)
	if err != nil {
		return "", types.Timestamp{}, err
	}

	return token, types.FromTime(expiresAt), nil
}

func (s *tokenService) ValidateAccessToken(token string) (*AccessTokenClaims, error) {
	opts := security.JWTVerifyOptions{
		ValidateExpiration: true,
		ValidateNotBefore:  true,
		ExpectedIssuer:     s.config.Issuer,
		ExpectedAudience:   s.config.Audience,
	}

	jwt, err := security.VerifyJWTWithOptions(token, s.signer, opts)
	if err != nil {
		return nil, err
	}

	// Extract subject (user ID)
	userID, err := types.ParseID(jwt.Claims.Subject)
	if err != nil {
		return nil, security.ErrInvalidToken("invalid subject")
	}

	// Extract username
	username, ok := jwt.Claims.GetString("username")
	if !ok {
		return nil, security.ErrInvalidToken("missing username claim")
	}

	return &AccessTokenClaims{
		UserID:    userID,
		Username:  username,
		ExpiresAt: types.FromTime(jwt.Claims.ExpirationTime.Time),
	}, nil
}
