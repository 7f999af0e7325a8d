package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/logging"
	m "github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded rows
var (
	TestUser1 m.User
	TestUser2 m.User

	// Plain password shared by every seeded user
	TestSeedPassword = "SeedPass123!"

	// ft-123456, ft-789012 and ft-345678
	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job
	// ft-901234, seeded inactive
	TestInactiveJob m.Job
	// adzuna-567890
	TestAdzunaJob m.Job

	TestTechnologies []m.Technology
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		Host:      dbHost,
		Port:      dbPort.Port(),
		User:      dbUser,
		Password:  dbPwd,
		DBName:    dbName,
		UseConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config, logging.Nop())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts the sample users, technologies and jobs, plus a few
// activity rows for the first user.
func seedTestData(db *DBinstanceStruct) error {
	hashedPwd, err := utilities.HashPassword(TestSeedPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := make([]m.User, 0, 2)
		for _, u := range SampleUsers() {
			users = append(users, m.User{
				FirstName: u.FirstName,
				LastName:  u.LastName,
				Email:     u.Email,
				Password:  hashedPwd,
			})
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		TestUser1, TestUser2 = users[0], users[1]

		techs := SampleTechnologies()
		if err := tx.Create(&techs).Error; err != nil {
			return err
		}
		TestTechnologies = techs
		byName := make(map[string]m.Technology, len(techs))
		for _, t := range techs {
			byName[t.Name] = t
		}

		jobs := make(map[string]m.Job)
		for _, s := range SampleJobs(time.Now()) {
			job := s.Job
			for _, name := range s.Technologies {
				job.Technologies = append(job.Technologies, byName[name])
			}
			if err := tx.Create(&job).Error; err != nil {
				return err
			}
			jobs[job.ExternalID] = job
		}
		TestJob1 = jobs["ft-123456"]
		TestJob2 = jobs["ft-789012"]
		TestJob3 = jobs["ft-345678"]
		TestInactiveJob = jobs["ft-901234"]
		TestAdzunaJob = jobs["adzuna-567890"]

		note := "Entretien technique prévu la semaine prochaine"
		activity := []interface{}{
			&m.Favorite{UserID: TestUser1.ID, JobID: TestJob1.ID},
			&m.ViewedJob{UserID: TestUser1.ID, JobID: TestJob2.ID},
			&m.Application{UserID: TestUser1.ID, JobID: TestJob2.ID, Status: m.ApplicationStatusInterview, Note: &note},
		}
		for _, row := range activity {
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
