package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/joshzacharytan/about-me/internal/app/ds"
)

const CookieName = "session"

// ErrNoSession covers every way a request can fail to carry a valid
// session: no cookie, malformed token, bad signature, expired token.
// Callers treat all of them as "no current user".
var ErrNoSession = errors.New("no valid session")

const issuer = "about-me"

// Manager signs and verifies the session cookie. The token is an HS256
// JWT carrying the user id and a uuid session id (jti); clients cannot
// alter either without invalidating the signature.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Establish issues a fresh session for the user and sets the cookie,
// replacing any session the client already had.
func (m *Manager) Establish(ctx *gin.Context, userID uint) error {
	now := time.Now()
	claims := &ds.SessionClaims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			ExpiresAt: now.Add(m.ttl).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    issuer,
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}

	m.setCookie(ctx, tokenString, int(m.ttl.Seconds()))
	return nil
}

// Parse extracts the session claims from the request cookie. Any
// failure collapses into ErrNoSession; an anonymous request is not an
// error condition.
func (m *Manager) Parse(ctx *gin.Context) (*ds.SessionClaims, error) {
	tokenString, err := ctx.Cookie(CookieName)
	if err != nil || tokenString == "" {
		return nil, ErrNoSession
	}
	return m.ParseToken(tokenString)
}

func (m *Manager) ParseToken(tokenString string) (*ds.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ds.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrNoSession
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}

	claims, ok := token.Claims.(*ds.SessionClaims)
	if !ok {
		return nil, ErrNoSession
	}
	return claims, nil
}

// Clear expires the cookie and returns the claims it carried, if any,
// so the caller can blacklist the session id. Safe to call with no
// active session.
func (m *Manager) Clear(ctx *gin.Context) *ds.SessionClaims {
	claims, err := m.Parse(ctx)
	m.setCookie(ctx, "", -1)
	if err != nil {
		return nil
	}
	return claims
}

func (m *Manager) setCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(CookieName, value, maxAge, "/", "", false, true)
}
