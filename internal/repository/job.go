// Package repository holds the gorm backed stores of the application.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/importer"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
)

const (
	// DefaultJobLimit is the page size used when none is requested.
	DefaultJobLimit = 50
	// MaxJobLimit caps the page size of job listings.
	MaxJobLimit = 100

	pgUniqueViolation = "23505"
)

// JobRepository reads and writes jobs and import runs.
type JobRepository struct {
	DB *gorm.DB
}

// NewJobRepository creates a new instance of JobRepository
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// JobFilter narrows down a job listing.
type JobFilter struct {
	Search          string
	City            string
	Department      string
	Remote          string
	ContractType    string
	Source          string
	IncludeInactive bool
	Desc            bool
	Limit           int
	Offset          int
}

var jobConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "external_id"}, {Name: "source"}},
	DoUpdates: clause.AssignmentColumns(model.JobMutableColumns),
}

// UpsertJob inserts job, or overwrites the mutable columns of the row that
// already has the same (external_id, source). created reports which one
// happened, also when several runs upsert the same key at once. job.ID is
// set to the row id in both cases.
func (r *JobRepository) UpsertJob(ctx context.Context, job *model.Job) (created bool, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serializes writers of the same key so the count below sees any
		// row a concurrent run committed before us.
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))",
			job.Source+"/"+job.ExternalID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Job{}).
			Where("external_id = ? AND source = ?", job.ExternalID, job.Source).
			Count(&count).Error; err != nil {
			return err
		}
		created = count == 0

		return tx.Omit(clause.Associations).Clauses(jobConflict).Create(job).Error
	})
	if err != nil {
		return false, classifyWriteError(err)
	}
	return created, nil
}

// FindByID returns the job with its technologies.
// gorm.ErrRecordNotFound is returned as is.
func (r *JobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	if err := r.DB.WithContext(ctx).
		Preload("Technologies").
		Where("id = ?", id).
		First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// FindByKey returns the job identified by its dedup key.
func (r *JobRepository) FindByKey(ctx context.Context, externalID, source string) (*model.Job, error) {
	var job model.Job
	if err := r.DB.WithContext(ctx).
		Where("external_id = ? AND source = ?", externalID, source).
		First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// FindAll lists jobs matching f. Search matches anywhere in the title, City
// matches the beginning of the city, both case insensitively.
func (r *JobRepository) FindAll(ctx context.Context, f JobFilter) ([]model.Job, error) {
	q := r.DB.WithContext(ctx).Model(&model.Job{}).Preload("Technologies")

	if !f.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	if f.Search != "" {
		q = q.Where("title ILIKE ?", "%"+f.Search+"%")
	}
	if f.City != "" {
		q = q.Where("city ILIKE ?", f.City+"%")
	}
	if f.Department != "" {
		q = q.Where("department = ?", f.Department)
	}
	if f.Remote != "" {
		q = q.Where("remote = ?", f.Remote)
	}
	if f.ContractType != "" {
		q = q.Where("contract_type = ?", f.ContractType)
	}
	if f.Source != "" {
		q = q.Where("source = ?", f.Source)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultJobLimit
	}
	if limit > MaxJobLimit {
		limit = MaxJobLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var jobs []model.Job
	err := q.Order(clause.OrderByColumn{
		Column: clause.Column{Name: "posted_at"},
		Desc:   f.Desc,
	}).Order("id").Limit(limit).Offset(offset).Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Count returns the number of stored jobs for a source, active or not.
func (r *JobRepository) Count(ctx context.Context, source string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Job{}).Where("source = ?", source).Count(&n).Error
	return n, err
}

// RecordRun persists the summary of an import run.
func (r *JobRepository) RecordRun(ctx context.Context, run *model.ImportRun) error {
	return r.DB.WithContext(ctx).Create(run).Error
}

// ListRuns returns the latest import runs, newest first.
func (r *JobRepository) ListRuns(ctx context.Context, limit int) ([]model.ImportRun, error) {
	if limit <= 0 || limit > MaxJobLimit {
		limit = DefaultJobLimit
	}
	var runs []model.ImportRun
	err := r.DB.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}

// classifyWriteError turns a unique violation that survived the upsert into
// a storage conflict.
func classifyWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s (%s)", importer.ErrStorageConflict, pgErr.Message, pgErr.ConstraintName)
	}
	return err
}

var _ importer.Store = (*JobRepository)(nil)
