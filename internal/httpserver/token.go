package httpserver

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const sessionCookieName = "wordscramble_session"

var errBadToken = errors.New("invalid session token")

// sessionClaims binds a token to one game session.
type sessionClaims struct {
	GameID string `json:"gid"`
	jwt.RegisteredClaims
}

// tokenIssuer signs and verifies HS256 session tokens. The signing key is
// derived from the configured secret so the raw secret never signs anything.
type tokenIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func newTokenIssuer(secret string, ttl time.Duration) (*tokenIssuer, error) {
	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("wordscramble session token v1"))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	return &tokenIssuer{key: key, ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token for gameID and its expiry.
func (t *tokenIssuer) Issue(gameID string) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := tok.SignedString(t.key)
	return ss, exp, err
}

// Parse verifies tok and returns the game ID it carries.
func (t *tokenIssuer) Parse(tok string) (string, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(*jwt.Token) (interface{}, error) {
		return t.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid || claims.GameID == "" {
		return "", errBadToken
	}
	return claims.GameID, nil
}

// bearerOrCookie extracts a bearer token from Authorization header or session cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(sessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

// setSessionCookie writes the session token cookie. Secure cookies are used
// when the client is served over https.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	secure := strings.HasPrefix(s.origin, "https://")
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for third‑party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}
