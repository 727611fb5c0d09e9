// Package token signs and verifies the compact bearer tokens that carry
// identity and role claims. Access and refresh tokens share one signing
// secret but declare different audiences, so one can never be replayed
// where the other is expected.
package token

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/ashishshah/live-attendance/internal/user"
)

// Audience is a token's declared intended use.
type Audience string

const (
	AudienceAccess  Audience = "access"
	AudienceRefresh Audience = "refresh"
)

// Verification failures. Each kind is distinct so callers can decide whether
// to prompt a re-login or reject outright.
var (
	// ErrTokenInvalid covers malformed tokens, bad signatures, and wrong
	// issuers.
	ErrTokenInvalid = errors.New("token: invalid token")
	// ErrTokenExpired indicates a well-formed, correctly signed token past
	// its expiry.
	ErrTokenExpired = errors.New("token: token expired")
	// ErrAudienceMismatch indicates a token presented for the wrong use,
	// e.g. a refresh token where an access token is required.
	ErrAudienceMismatch = errors.New("token: audience mismatch")
)

// Claims are the facts embedded in a signed token. Role is empty on refresh
// tokens.
type Claims struct {
	gojwt.RegisteredClaims
	Role user.Role `json:"role,omitempty"`
}

// UserID returns the subject identity id.
func (c *Claims) UserID() string {
	return c.Subject
}

// Codec signs and verifies bearer tokens. Safe for concurrent use; issuing
// and verifying mutate nothing outside their own stack.
type Codec struct {
	cfg Config
	now func() time.Time
}

// NewCodec creates a token codec. It fails immediately if the signing secret
// is empty rather than deferring the failure to first use.
func NewCodec(cfg Config) (*Codec, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Codec{cfg: cfg, now: time.Now}, nil
}

// IssueAccess signs an access token for the identity and role.
func (c *Codec) IssueAccess(userID string, role user.Role) (string, error) {
	return c.issue(userID, role, AudienceAccess, c.cfg.AccessTokenTTL)
}

// IssueRefresh signs a refresh token for the identity. Refresh tokens carry
// no role claim.
func (c *Codec) IssueRefresh(userID string) (string, error) {
	return c.issue(userID, "", AudienceRefresh, c.cfg.RefreshTokenTTL)
}

func (c *Codec) issue(userID string, role user.Role, aud Audience, ttl time.Duration) (string, error) {
	now := c.now()
	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    c.cfg.Issuer,
			Audience:  gojwt.ClaimStrings{string(aud)},
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(c.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks signature, issuer, audience, and expiry in a single parse
// and returns the embedded claims. The error distinguishes expiry and
// audience mismatch from all other failures.
func (c *Codec) Verify(tokenString string, aud Audience) (*Claims, error) {
	claims := &Claims{}
	parsed, err := gojwt.ParseWithClaims(tokenString, claims, c.keyFunc,
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithIssuer(c.cfg.Issuer),
		gojwt.WithAudience(string(aud)),
		gojwt.WithTimeFunc(c.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, gojwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, gojwt.ErrTokenInvalidAudience):
			return nil, ErrAudienceMismatch
		default:
			return nil, ErrTokenInvalid
		}
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (c *Codec) keyFunc(t *gojwt.Token) (interface{}, error) {
	if t.Method.Alg() != gojwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("token: unexpected signing method: %s", t.Method.Alg())
	}
	return []byte(c.cfg.Secret), nil
}
