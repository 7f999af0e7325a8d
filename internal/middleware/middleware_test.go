package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/auth"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/logging"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/utilities"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newManager(t *testing.T, secret, issuer string) *auth.JWTManager {
	t.Helper()
	m, err := auth.NewJWTManager(secret, issuer, time.Hour)
	require.NoError(t, err)
	return m
}

func protectedEngine(m *auth.JWTManager) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(m), func(c *gin.Context) {
		claims, err := utilities.ExtractClaims(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "sub": claims.Subject})
	})
	return r
}

func get(t *testing.T, r *gin.Engine, path, authHeader string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestRequireAuth_Success(t *testing.T) {
	m := newManager(t, "secret", "DevJobHub")
	id := uuid.New()
	token, err := m.Generate(id)
	require.NoError(t, err)

	rec, resp := get(t, protectedEngine(m), "/protected", "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, id.String(), resp["sub"])
}

func TestRequireAuth_MissingOrMalformed(t *testing.T) {
	m := newManager(t, "secret", "DevJobHub")
	token, err := m.Generate(uuid.New())
	require.NoError(t, err)

	for _, header := range []string{"", "Basic " + token, "bearer " + token, "Bearer ", "Token " + token} {
		rec, resp := get(t, protectedEngine(m), "/protected", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.Equal(t, MsgTokenMissing, resp["error"], "header %q", header)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	m := newManager(t, "secret", "DevJobHub")
	token, err := m.GenerateWithDuration(uuid.New(), -time.Minute)
	require.NoError(t, err)

	rec, resp := get(t, protectedEngine(m), "/protected", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, MsgTokenExpired, resp["error"])
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	m := newManager(t, "secret", "DevJobHub")
	forged, err := newManager(t, "other-secret", "DevJobHub").Generate(uuid.New())
	require.NoError(t, err)
	otherIssuer, err := newManager(t, "secret", "Elsewhere").Generate(uuid.New())
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    "DevJobHub",
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"bad signature": forged,
		"wrong issuer":  otherIssuer,
		"alg none":      none,
		"garbage":       "abc.def.ghi",
	} {
		rec, resp := get(t, protectedEngine(m), "/protected", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
		assert.Equal(t, MsgTokenInvalid, resp["error"], name)
	}
}

type stubBlacklist struct {
	revoked map[string]bool
	err     error
}

func (s *stubBlacklist) IsBlacklisted(_ context.Context, token string) (bool, error) {
	return s.revoked[token], s.err
}

func (s *stubBlacklist) AddToBlacklist(_ context.Context, token string, _ time.Time) error {
	s.revoked[token] = true
	return nil
}

func TestJwtBlacklistCheck(t *testing.T) {
	m := newManager(t, "secret", "DevJobHub")
	revoked, err := m.Generate(uuid.New())
	require.NoError(t, err)
	fresh, err := m.Generate(uuid.New())
	require.NoError(t, err)
	store := &stubBlacklist{revoked: map[string]bool{revoked: true}}

	r := gin.New()
	r.GET("/protected", RequireAuth(m), JwtBlacklistCheck(store, logging.Nop()), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	rec, resp := get(t, r, "/protected", "Bearer "+revoked)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token has been revoked", resp["error"])

	rec, _ = get(t, r, "/protected", "Bearer "+fresh)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	store.err = errors.New("redis down")
	rec, _ = get(t, r, "/protected", "Bearer "+fresh)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSafeHeader(t *testing.T) {
	r := gin.New()
	r.Use(SafeHeader("/swagger/"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/swagger/index.html", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec, _ := get(t, r, "/", "")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))

	rec, _ = get(t, r, "/swagger/index.html", "")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, rec.Header().Get("Content-Security-Policy"))
}

func sizeLimitEngine(limit int64) *gin.Engine {
	r := gin.New()
	r.POST("/upload", SizeLimit(limit), func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestSizeLimit(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"less than limit", 10, http.StatusOK},
		{"equal limit", 64, http.StatusOK},
		{"exceed limit", 65, http.StatusRequestEntityTooLarge},
		{"way exceed limit", 4096, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(bytes.Repeat([]byte("a"), tt.size)))
			rec := httptest.NewRecorder()
			sizeLimitEngine(64).ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestSizeLimit_UnknownLength(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/upload", io.NopCloser(strings.NewReader(strings.Repeat("a", 100))))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	sizeLimitEngine(64).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimiterMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiterMiddleware(2, nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec, _ := get(t, r, "/", "")
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestKeyFunc(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "ip: 10.0.0.1", keyFunc(c))

	id := uuid.New()
	c.Set(utilities.ClaimsKey, &jwt.RegisteredClaims{Subject: id.String()})
	assert.Equal(t, "user: "+id.String(), keyFunc(c))
}

func TestRequestLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(logging.Nop()))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	rec, _ := get(t, r, "/ok?x=1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = get(t, r, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
