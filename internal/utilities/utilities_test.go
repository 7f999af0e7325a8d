package utilities

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithHeader(header string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	return c
}

func TestExtractBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing", "", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"lower case scheme", "bearer abc", "", true},
		{"scheme only", "Bearer ", "", true},
		{"blank token", "Bearer    ", "", true},
		{"no space", "Bearerabc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(contextWithHeader(tt.header))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingBearer)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.New()

	c := contextWithHeader("")
	_, err := ExtractUserID(c)
	assert.Error(t, err)

	c.Set(ClaimsKey, "not claims")
	_, err = ExtractClaims(c)
	assert.EqualError(t, err, "invalid token claims type")

	c.Set(ClaimsKey, &jwt.RegisteredClaims{Subject: "nope"})
	_, err = ExtractUserID(c)
	assert.EqualError(t, err, "invalid token subject")

	c.Set(ClaimsKey, &jwt.RegisteredClaims{Subject: id.String()})
	got, err := ExtractUserID(c)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3r$ecret", hash)
	assert.True(t, VerifyPassword("Sup3r$ecret", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains(nil, "a"))
}
