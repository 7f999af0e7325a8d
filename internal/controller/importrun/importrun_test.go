package importrun

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

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/database"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/repository"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
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

func TestGetImportRuns(t *testing.T) {
	repo := repository.NewJobRepository(testDB.DB)
	start := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.RecordRun(context.Background(), &model.ImportRun{
			Source:     model.SourceFranceTravail,
			Keywords:   "développeur javascript",
			Range:      "0-14",
			Status:     model.ImportRunSucceeded,
			Fetched:    15,
			Created:    i,
			StartedAt:  start.Add(time.Duration(i) * time.Minute),
			FinishedAt: start.Add(time.Duration(i)*time.Minute + time.Second),
		}))
	}

	r := gin.New()
	r.GET("/import-runs", NewImportRunController(repo).GetImportRuns)

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/import-runs?limit=2", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	list := testutil.DecodeJSONList(rec)
	require.Len(t, list, 2)
	assert.Equal(t, float64(2), list[0]["created"])
	assert.Equal(t, float64(1), list[1]["created"])

	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/import-runs?limit=zero", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
