package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the session cookie set on login.
const CookieName = "session"

// Identity is the authenticated user bound to a request.
type Identity struct {
	UserID   uint64
	Username string
}

type Claims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager issues and validates signed session cookies. When a redis
// client is present each session also has a server-side record, so a
// destroyed session stays dead even if the cookie survives.
type Manager struct {
	secret []byte
	ttl    time.Duration
	rdb    *redis.Client
}

// NewManager builds a session manager. rdb may be nil, in which case
// validation relies on the cookie signature and expiry alone.
func NewManager(secret string, ttl time.Duration, rdb *redis.Client) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		rdb:    rdb,
	}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Create establishes an authenticated session for the client. A login
// replaces whatever session cookie the client held before.
func (m *Manager) Create(c *gin.Context, userID uint64, username string) error {
	sid := uuid.NewString()
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}
	if m.rdb != nil {
		if err := m.rdb.Set(c.Request.Context(), sessionKey(sid), userID, m.ttl).Err(); err != nil {
			return err
		}
	}
	c.SetCookie(CookieName, signed, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Identity resolves the active session, if any.
func (m *Manager) Identity(c *gin.Context) (*Identity, bool) {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil, false
	}
	claims, err := m.parse(raw)
	if err != nil {
		return nil, false
	}
	if m.rdb != nil {
		n, err := m.rdb.Exists(c.Request.Context(), sessionKey(claims.ID)).Result()
		if err != nil || n == 0 {
			return nil, false
		}
	}
	return &Identity{UserID: claims.UserID, Username: claims.Username}, true
}

// Destroy clears the session unconditionally. It succeeds even when no
// session exists.
func (m *Manager) Destroy(c *gin.Context) error {
	if raw, err := c.Cookie(CookieName); err == nil && raw != "" {
		if claims, parseErr := m.parse(raw); parseErr == nil && m.rdb != nil {
			if err := m.rdb.Del(c.Request.Context(), sessionKey(claims.ID)).Err(); err != nil {
				return err
			}
		}
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	return nil
}

func (m *Manager) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Middleware guards protected routes. Anonymous clients are redirected
// to the login page rather than receiving an error.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := m.Identity(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("user_id", ident.UserID)
		c.Set("username", ident.Username)
		c.Next()
	}
}
