package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == CookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

// TestCreateAndIdentity tests the login/lookup round trip.
func TestCreateAndIdentity(t *testing.T) {
	m := NewManager("test-secret", time.Hour, nil)

	c, w := testContext(t)
	if err := m.Create(c, 42, "alice"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	cookie := sessionCookie(t, w)

	c2, _ := testContext(t)
	c2.Request.AddCookie(cookie)
	ident, ok := m.Identity(c2)
	if !ok {
		t.Fatal("Identity should resolve a fresh session")
	}
	if ident.UserID != 42 || ident.Username != "alice" {
		t.Fatalf("identity = %+v, want 42/alice", ident)
	}
}

// TestIdentityAnonymous tests lookup with no cookie.
func TestIdentityAnonymous(t *testing.T) {
	m := NewManager("test-secret", time.Hour, nil)
	c, _ := testContext(t)
	if _, ok := m.Identity(c); ok {
		t.Fatal("Identity should fail with no cookie")
	}
}

// TestIdentityTamperedToken tests signature validation.
func TestIdentityTamperedToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour, nil)
	other := NewManager("other-secret", time.Hour, nil)

	c, w := testContext(t)
	if err := other.Create(c, 7, "mallory"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	cookie := sessionCookie(t, w)

	c2, _ := testContext(t)
	c2.Request.AddCookie(cookie)
	if _, ok := m.Identity(c2); ok {
		t.Fatal("Identity should reject a token signed with another secret")
	}
}

// TestIdentityExpired tests expiry enforcement.
func TestIdentityExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, nil)
	c, w := testContext(t)
	if err := m.Create(c, 1, "bob"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	cookie := sessionCookie(t, w)

	c2, _ := testContext(t)
	c2.Request.AddCookie(cookie)
	if _, ok := m.Identity(c2); ok {
		t.Fatal("Identity should reject an expired token")
	}
}

// TestDestroyIdempotent tests logout with and without a session.
func TestDestroyIdempotent(t *testing.T) {
	m := NewManager("test-secret", time.Hour, nil)

	c, w := testContext(t)
	if err := m.Create(c, 1, "bob"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	cookie := sessionCookie(t, w)

	c2, w2 := testContext(t)
	c2.Request.AddCookie(cookie)
	if err := m.Destroy(c2); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	cleared := sessionCookie(t, w2)
	if cleared.MaxAge >= 0 && cleared.Value != "" {
		t.Fatal("Destroy should expire the cookie")
	}

	c3, _ := testContext(t)
	if err := m.Destroy(c3); err != nil {
		t.Fatalf("Destroy with no session should succeed, got %v", err)
	}
}
