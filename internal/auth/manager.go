package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Ops tokens guard the operator endpoints (diagnostics, recent turn events).
// The webhook routes stay public: the provider cannot send bearer tokens.
// Tokens are minted out of band with the issue command and verified here.

type Claims struct {
	jwt.RegisteredClaims

	Operator string `json:"operator"`
}

type Manager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

const defaultTokenTTL = 12 * time.Hour

func NewManager(secret, issuer, audience string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("auth: ops token secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &Manager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}, nil
}

// Issue mints an HS256 ops token for the named operator.
func (m *Manager) Issue(now time.Time, operator string) (string, error) {
	if operator == "" {
		return "", errors.New("auth: operator name is required")
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Audience:  audienceOrNil(m.audience),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.NewString(),
		},
		Operator: operator,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates an ops token at the given time.
func (m *Manager) Verify(tokenString string, now time.Time) (Claims, error) {
	var claims Claims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	_, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return Claims{}, err
	}

	opts := []jwt.ParserOption{
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithLeeway(30 * time.Second),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	if m.audience != "" {
		opts = append(opts, jwt.WithAudience(m.audience))
	}
	if err := jwt.NewValidator(opts...).Validate(claims.RegisteredClaims); err != nil {
		return Claims{}, err
	}

	if claims.Operator == "" {
		return Claims{}, errors.New("auth: operator claim missing")
	}
	return claims, nil
}

func audienceOrNil(aud string) jwt.ClaimStrings {
	if aud == "" {
		return nil
	}
	return jwt.ClaimStrings{aud}
}
