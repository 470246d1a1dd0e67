package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie set on successful login.
const CookieName = "blog_session"

var ErrInvalidSession = errors.New("invalid session token")

// SessionClaims is what a session cookie carries: the user id as subject
// plus the username for logging.
type SessionClaims struct {
	Username string `json:"uname"`
	UserID   uint   `json:"uid"`
	jwt.RegisteredClaims
}

// SessionManager issues and parses the signed cookie tokens that associate a
// client with an authenticated identity across requests.
type SessionManager struct {
	secret   []byte
	ttl      time.Duration
	remember time.Duration
}

func NewSessionManager(secret string, ttl, remember time.Duration) *SessionManager {
	if ttl == 0 {
		ttl = 12 * time.Hour
	}
	if remember == 0 {
		remember = 30 * 24 * time.Hour
	}
	return &SessionManager{secret: []byte(secret), ttl: ttl, remember: remember}
}

// Issue signs a token for the user. remember selects the long-lived expiry
// ("remember me") over the regular one.
func (m *SessionManager) Issue(userID uint, username string, remember bool) (string, time.Duration, error) {
	ttl := m.ttl
	if remember {
		ttl = m.remember
	}
	now := time.Now()
	claims := &SessionClaims{
		Username: username,
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", 0, err
	}
	return token, ttl, nil
}

// Parse validates the token signature and expiry and returns its claims.
func (m *SessionManager) Parse(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
