package oauth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/getmockd/hrmockd/internal/id"
)

// Token defaults.
const (
	DefaultTTL    = 30 * time.Minute
	DefaultIssuer = "hrmockd"
)

// Config configures the token provider.
type Config struct {
	// Secret is the HS256 signing key. Empty means a random per-process key.
	Secret []byte

	// TTL is the token lifetime. Zero means DefaultTTL.
	TTL time.Duration

	// Issuer is the iss claim. Empty means DefaultIssuer.
	Issuer string
}

// Provider issues and validates access tokens.
type Provider struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewProvider creates a token provider.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.TTL < 0 {
		return nil, fmt.Errorf("invalid token ttl %s", cfg.TTL)
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	secret := cfg.Secret
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
	}
	return &Provider{
		secret: secret,
		ttl:    cfg.TTL,
		issuer: cfg.Issuer,
		now:    time.Now,
	}, nil
}

// TokenExpiry returns the token lifetime.
func (p *Provider) TokenExpiry() time.Duration {
	return p.ttl
}

// Issue creates a token response for a client.
func (p *Provider) Issue(clientID, scope string) (*TokenResponse, error) {
	claims := jwt.MapClaims{
		"sub":       clientID,
		"client_id": clientID,
	}
	if scope != "" {
		claims["scope"] = scope
	}
	token, err := p.GenerateToken(claims)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   int(p.ttl.Seconds()),
		Scope:       scope,
	}, nil
}

// GenerateToken signs an access token carrying claims plus iss, iat, exp
// and jti.
func (p *Provider) GenerateToken(claims jwt.MapClaims) (string, error) {
	now := p.now()

	jwtClaims := jwt.MapClaims{
		"iss": p.issuer,
		"iat": now.Unix(),
		"exp": now.Add(p.ttl).Unix(),
		"jti": id.Short(),
	}
	for k, v := range claims {
		jwtClaims[k] = v
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies a token's signature and expiry and returns its
// claims.
func (p *Provider) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithIssuer(p.issuer), jwt.WithTimeFunc(p.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("token is invalid")
	}
	return claims, nil
}
