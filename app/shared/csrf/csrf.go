// Package csrf issues and checks short-lived HS256 tokens bound to the browser session.
package csrf

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// FormField is the hidden input name rendered into forms.
	FormField = "csrf_token"
	// HeaderName is read on script fetches.
	HeaderName = "X-CSRF-Token"

	defaultTTL = 2 * time.Hour
)

// Provider issues and validates CSRF tokens.
type Provider interface {
	Issue(session string) (string, error)
	Validate(token, session string) error
}

type provider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewProvider creates a provider signing with secret. ttl <= 0 uses the default.
func NewProvider(secret string, ttl time.Duration) Provider {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &provider{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func sessionHash(session string) string {
	sum := sha256.Sum256([]byte(session))
	return hex.EncodeToString(sum[:])
}

// Issue signs a token bound to session.
func (p *provider) Issue(session string) (string, error) {
	now := p.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Subject:   sessionHash(session),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign csrf token: %w", err)
	}
	return signed, nil
}

// Validate checks the signature, expiry and session binding of token.
func (p *provider) Validate(token, session string) error {
	if token == "" {
		return ErrMissingToken
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}
	if claims.Subject != sessionHash(session) {
		return ErrSessionMismatch
	}
	return nil
}

// TokenFrom reads the token from the header, falling back to the form field.
func TokenFrom(r *http.Request) string {
	if v := r.Header.Get(HeaderName); v != "" {
		return v
	}
	return r.PostFormValue(FormField)
}

// Middleware rejects unsafe requests whose token does not match the session cookie.
// sessionCookie names the cookie the token is bound to; onFail renders the rejection.
func Middleware(p Provider, sessionCookie string, onFail func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	if onFail == nil {
		onFail = func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			session := ""
			if c, err := r.Cookie(sessionCookie); err == nil {
				session = c.Value
			}

			if err := p.Validate(TokenFrom(r), session); err != nil {
				if !errors.Is(err, ErrMissingToken) && !errors.Is(err, ErrSessionMismatch) {
					err = ErrInvalidToken
				}
				onFail(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
