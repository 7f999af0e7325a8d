package activity

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/auth"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/database"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/middleware"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
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
	ac := NewActivityController(testDB)
	protected := r.Group("", middleware.RequireAuth(testJWT))
	protected.GET("/favorites", ac.GetFavorites)
	protected.GET("/viewed-jobs", ac.GetViewedJobs)
	protected.GET("/applications", ac.GetApplications)
	protected.POST("/applications", ac.CreateApplication)
	protected.PATCH("/applications/:id", ac.UpdateApplication)
	protected.POST("/favorites/:job_id", ac.AddFavorite)
	protected.DELETE("/favorites/:job_id", ac.RemoveFavorite)
	protected.PUT("/viewed-jobs/:job_id", ac.MarkViewed)
	return r
}

func tokenFor(t *testing.T, user model.User) string {
	token, err := auth.GetAccessToken(t, testDB, testJWT, user.Email, database.TestSeedPassword)
	require.NoError(t, err)
	return token
}

func TestGetFavorites(t *testing.T) {
	rec, _ := testutil.MakeJSONRequest(nil, tokenFor(t, database.TestUser1), newRouter(), "/favorites", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)

	list := testutil.DecodeJSONList(rec)
	require.Len(t, list, 1)
	assert.Equal(t, float64(database.TestJob1.ID), list[0]["job_id"])
	job := list[0]["job"].(map[string]interface{})
	assert.Equal(t, database.TestJob1.Title, job["title"])
}

func TestGetViewedJobs(t *testing.T) {
	rec, _ := testutil.MakeJSONRequest(nil, tokenFor(t, database.TestUser1), newRouter(), "/viewed-jobs", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)

	list := testutil.DecodeJSONList(rec)
	require.Len(t, list, 1)
	assert.Equal(t, float64(database.TestJob2.ID), list[0]["job_id"])
	assert.NotEmpty(t, list[0]["viewed_at"])
}

func TestGetApplications(t *testing.T) {
	rec, _ := testutil.MakeJSONRequest(nil, tokenFor(t, database.TestUser1), newRouter(), "/applications", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)

	list := testutil.DecodeJSONList(rec)
	require.Len(t, list, 1)
	assert.Equal(t, model.ApplicationStatusInterview, list[0]["status"])
	assert.NotNil(t, list[0]["note"])
}

func TestActivity_OtherUserSeesNothing(t *testing.T) {
	r := newRouter()
	token := tokenFor(t, database.TestUser2)

	for _, path := range []string{"/favorites", "/viewed-jobs", "/applications"} {
		rec, _ := testutil.MakeJSONRequest(nil, token, r, path, http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Empty(t, testutil.DecodeJSONList(rec), path)
	}
}

func TestActivity_RequiresAuth(t *testing.T) {
	rec, resp := testutil.MakeJSONRequest(nil, "", newRouter(), "/favorites", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, middleware.MsgTokenMissing, resp["error"])
}
