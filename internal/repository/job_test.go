package repository

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/database"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/importer"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
)

var repo *JobRepository

func TestMain(m *testing.M) {
	teardown, db, err := database.GetTestDB()
	if err != nil {
		log.Fatalf("failed to start test database: %v", err)
	}
	repo = NewJobRepository(db.DB)

	code := m.Run()

	if err := teardown(context.Background()); err != nil {
		log.Printf("failed to terminate test database: %v", err)
	}
	os.Exit(code)
}

func draft(id, title string) *model.Job {
	posted := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	return &model.Job{
		ExternalID: id,
		Source:     "RepoTest",
		Company:    "Acme",
		Title:      title,
		Remote:     model.RemoteNotSpecified,
		URL:        "https://example.com/" + id,
		PostedAt:   &posted,
		IsActive:   true,
	}
}

func TestUpsertJob_Idempotent(t *testing.T) {
	ctx := context.Background()

	created, err := repo.UpsertJob(ctx, draft("repo-1", "Dev JS"))
	require.NoError(t, err)
	assert.True(t, created)

	first, err := repo.FindByKey(ctx, "repo-1", "RepoTest")
	require.NoError(t, err)

	again := draft("repo-1", "Dev JS Senior")
	again.IsActive = false
	created, err = repo.UpsertJob(ctx, again)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	n, err := repo.Count(ctx, "RepoTest")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	second, err := repo.FindByKey(ctx, "repo-1", "RepoTest")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Dev JS Senior", second.Title)
	assert.False(t, second.IsActive)
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt))
}

func TestUpsertJob_SameIDOtherSource(t *testing.T) {
	ctx := context.Background()

	a := draft("shared-1", "Dev")
	created, err := repo.UpsertJob(ctx, a)
	require.NoError(t, err)
	assert.True(t, created)

	b := draft("shared-1", "Dev")
	b.Source = "RepoTestOther"
	created, err = repo.UpsertJob(ctx, b)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestUpsertJob_KeepsTechnologies(t *testing.T) {
	ctx := context.Background()
	seeded := database.TestJob1

	again := seeded
	again.ID = 0
	again.Technologies = nil
	created, err := repo.UpsertJob(ctx, &again)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, seeded.ID, again.ID)

	job, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, job.Technologies)
}

func TestFindByID_NotFound(t *testing.T) {
	_, err := repo.FindByID(context.Background(), 999999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindAll_Filters(t *testing.T) {
	ctx := context.Background()

	jobs, err := repo.FindAll(ctx, JobFilter{Source: model.SourceFranceTravail})
	require.NoError(t, err)
	for _, j := range jobs {
		assert.True(t, j.IsActive)
		assert.NotEqual(t, database.TestInactiveJob.ID, j.ID)
	}

	jobs, err = repo.FindAll(ctx, JobFilter{Source: model.SourceFranceTravail, IncludeInactive: true})
	require.NoError(t, err)
	var ids []uint
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	assert.Contains(t, ids, database.TestInactiveJob.ID)

	jobs, err = repo.FindAll(ctx, JobFilter{City: "lyon"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, database.TestJob2.ID, jobs[0].ID)

	jobs, err = repo.FindAll(ctx, JobFilter{Department: "75", ContractType: string(model.ContractCDI)})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, database.TestJob1.ID, jobs[0].ID)

	jobs, err = repo.FindAll(ctx, JobFilter{Remote: string(model.RemoteFull), Source: model.SourceFranceTravail})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, database.TestJob3.ID, jobs[0].ID)

	jobs, err = repo.FindAll(ctx, JobFilter{Search: database.TestAdzunaJob.Title})
	require.NoError(t, err)
	require.NotEmpty(t, jobs)
	assert.Equal(t, database.TestAdzunaJob.ID, jobs[0].ID)
}

func TestFindAll_Paging(t *testing.T) {
	ctx := context.Background()

	all, err := repo.FindAll(ctx, JobFilter{Source: model.SourceFranceTravail})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 2)

	page, err := repo.FindAll(ctx, JobFilter{Source: model.SourceFranceTravail, Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, all[1].ID, page[0].ID)

	clamped, err := repo.FindAll(ctx, JobFilter{Limit: 10_000, Offset: -5})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(clamped), MaxJobLimit)
}

func TestRecordRun_ListRuns(t *testing.T) {
	ctx := context.Background()
	start := time.Now().Add(-time.Minute).UTC()

	older := &model.ImportRun{Source: "RepoTest", Keywords: "go", Range: "0-14", Status: model.ImportRunSucceeded, StartedAt: start, FinishedAt: start.Add(time.Second)}
	newer := &model.ImportRun{
		Source:     "RepoTest",
		Keywords:   "go",
		Range:      "0-14",
		Status:     model.ImportRunFailed,
		Failed:     1,
		Failures:   []model.RecordFailure{{ExternalID: "x", Stage: model.StageMap, Message: "missing id"}},
		Error:      "auth exchange rejected: status 401",
		StartedAt:  start.Add(30 * time.Second),
		FinishedAt: start.Add(31 * time.Second),
	}
	require.NoError(t, repo.RecordRun(ctx, older))
	require.NoError(t, repo.RecordRun(ctx, newer))

	runs, err := repo.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.ID, runs[0].ID)
	assert.Equal(t, older.ID, runs[1].ID)
	require.Len(t, runs[0].Failures, 1)
	assert.Equal(t, "x", runs[0].Failures[0].ExternalID)
}

func TestClassifyWriteError(t *testing.T) {
	err := classifyWriteError(&pgconn.PgError{Code: "23505", Message: "duplicate key", ConstraintName: "unique_external_job"})
	assert.ErrorIs(t, err, importer.ErrStorageConflict)
	assert.Contains(t, err.Error(), "unique_external_job")

	other := errors.New("connection reset")
	assert.Equal(t, other, classifyWriteError(other))
}

func TestUpsertJob_ConcurrentSameKey(t *testing.T) {
	ctx := context.Background()
	const writers = 8

	results := make(chan bool, writers)
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			job := draft("repo-race", "Dev Go")
			job.Source = "RaceTest"
			created, err := repo.UpsertJob(ctx, job)
			if err != nil {
				errs <- err
				return
			}
			results <- created
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	var created int
	for c := range results {
		if c {
			created++
		}
	}
	assert.Equal(t, 1, created)

	n, err := repo.Count(ctx, "RaceTest")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
