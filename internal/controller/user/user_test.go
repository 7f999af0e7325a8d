package user

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/auth"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/database"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/middleware"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/testutil"
)

var (
	testDB  *database.DBinstanceStruct
	testJWT *auth.JWTManager
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	testJWT, err = auth.NewJWTManager("test-secret", "DevJobHub", time.Hour)
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
	os.Exit(code)
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.GET("/users/me", middleware.RequireAuth(testJWT), NewUserController(testDB).GetMe)
	return r
}

func TestGetMe(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, testJWT, database.TestUser1.Email, database.TestSeedPassword)
	require.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(nil, token, newRouter(), "/users/me", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, database.TestUser1.ID.String(), resp["id"])
	assert.Equal(t, database.TestUser1.Email, resp["email"])
	assert.NotContains(t, resp, "password")
}

func TestGetMe_UnknownUser(t *testing.T) {
	token, err := testJWT.Generate(uuid.New())
	require.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(nil, token, newRouter(), "/users/me", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", resp["error"])
}

func TestGetMe_ExpiredToken(t *testing.T) {
	token, err := testJWT.GenerateWithDuration(database.TestUser1.ID, -time.Minute)
	require.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(nil, token, newRouter(), "/users/me", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, middleware.MsgTokenExpired, resp["error"])
}
