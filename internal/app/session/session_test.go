package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T, cookie *http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		ctx.Request.AddCookie(cookie)
	}
	return ctx, w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatalf("no %q cookie set", CookieName)
	return nil
}

func TestEstablishAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	ctx, w := newTestContext(t, nil)
	if err := m.Establish(ctx, 42); err != nil {
		t.Fatalf("Establish error: %v", err)
	}

	cookie := sessionCookie(t, w)
	if cookie.Value == "" {
		t.Fatalf("empty session cookie")
	}
	if !cookie.HttpOnly {
		t.Errorf("session cookie must be HttpOnly")
	}

	ctx2, _ := newTestContext(t, cookie)
	claims, err := m.Parse(ctx2)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.Id == "" {
		t.Errorf("expected a session id (jti)")
	}
}

func TestParse_NoCookie(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	ctx, _ := newTestContext(t, nil)
	if _, err := m.Parse(ctx); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestParse_TamperedToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	ctx, w := newTestContext(t, nil)
	if err := m.Establish(ctx, 42); err != nil {
		t.Fatalf("Establish error: %v", err)
	}
	cookie := sessionCookie(t, w)

	// Flip a character in the payload; the signature no longer matches.
	raw := []byte(cookie.Value)
	mid := len(raw) / 2
	if raw[mid] == 'A' {
		raw[mid] = 'B'
	} else {
		raw[mid] = 'A'
	}
	cookie.Value = string(raw)

	ctx2, _ := newTestContext(t, cookie)
	if _, err := m.Parse(ctx2); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession for tampered token, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	issued := NewManager("right-secret", time.Hour)
	verifier := NewManager("wrong-secret", time.Hour)

	ctx, w := newTestContext(t, nil)
	if err := issued.Establish(ctx, 42); err != nil {
		t.Fatalf("Establish error: %v", err)
	}

	ctx2, _ := newTestContext(t, sessionCookie(t, w))
	if _, err := verifier.Parse(ctx2); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession for foreign signature, got %v", err)
	}
}

func TestParse_ExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	ctx, w := newTestContext(t, nil)
	if err := m.Establish(ctx, 42); err != nil {
		t.Fatalf("Establish error: %v", err)
	}

	ctx2, _ := newTestContext(t, sessionCookie(t, w))
	if _, err := m.Parse(ctx2); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession for expired token, got %v", err)
	}
}

func TestClear(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	ctx, w := newTestContext(t, nil)
	if err := m.Establish(ctx, 42); err != nil {
		t.Fatalf("Establish error: %v", err)
	}

	ctx2, w2 := newTestContext(t, sessionCookie(t, w))
	claims := m.Clear(ctx2)
	if claims == nil || claims.UserID != 42 {
		t.Fatalf("Clear should return the old claims, got %+v", claims)
	}

	cleared := sessionCookie(t, w2)
	if cleared.Value != "" || cleared.MaxAge >= 0 {
		t.Errorf("cookie not cleared: value=%q maxage=%d", cleared.Value, cleared.MaxAge)
	}
}

func TestClear_NoActiveSession(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	ctx, _ := newTestContext(t, nil)
	if claims := m.Clear(ctx); claims != nil {
		t.Fatalf("expected nil claims, got %+v", claims)
	}
}
