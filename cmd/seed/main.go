// Command seed fills the database with sample technologies, jobs and users.
// Running it again updates the sample rows instead of duplicating them.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/config"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/database"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/logging"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/repository"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/utilities"
)

func main() {
	password := flag.String("password", "ChangeMe123!", "password of the sample users")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.New("info").Fatal("invalid configuration", "err", err)
	}
	log := logging.New(cfg.LogLevel)
	defer func() {
		_ = log.Sync()
	}()

	db, err := database.NewDBInstance(database.FromConfig(cfg.Database), log)
	if err != nil {
		log.Fatal("database failed to initialize", "err", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := seed(context.Background(), db.DB, *password, log); err != nil {
		log.Error("seed failed", "err", err)
		_ = db.Close()
		os.Exit(1)
	}
	log.Info("seed complete")
}

func seed(ctx context.Context, db *gorm.DB, password string, log *logging.Logger) error {
	db = db.WithContext(ctx)

	techs := make(map[string]model.Technology)
	for _, t := range database.SampleTechnologies() {
		tech := t
		if err := db.Where(model.Technology{Name: t.Name}).Attrs(model.Technology{Category: t.Category}).FirstOrCreate(&tech).Error; err != nil {
			return err
		}
		techs[tech.Name] = tech
	}
	log.Info("technologies seeded", "count", len(techs))

	repo := repository.NewJobRepository(db)
	jobs := make([]model.Job, 0)
	for _, s := range database.SampleJobs(time.Now()) {
		job := s.Job
		if _, err := repo.UpsertJob(ctx, &job); err != nil {
			return err
		}
		related := make([]model.Technology, 0, len(s.Technologies))
		for _, name := range s.Technologies {
			related = append(related, techs[name])
		}
		if err := db.Model(&job).Association("Technologies").Replace(related); err != nil {
			return err
		}
		jobs = append(jobs, job)
	}
	log.Info("jobs seeded", "count", len(jobs))

	hashed, err := utilities.HashPassword(password)
	if err != nil {
		return err
	}
	users := make([]model.User, 0)
	for _, u := range database.SampleUsers() {
		user := model.User{}
		if err := db.Where(model.User{Email: u.Email}).
			Attrs(model.User{FirstName: u.FirstName, LastName: u.LastName, Password: hashed}).
			FirstOrCreate(&user).Error; err != nil {
			return err
		}
		users = append(users, user)
	}
	log.Info("users seeded", "count", len(users))

	if len(users) == 0 || len(jobs) < 2 {
		return nil
	}
	note := "Entretien technique prévu la semaine prochaine"
	activity := []interface{}{
		&model.Favorite{UserID: users[0].ID, JobID: jobs[0].ID},
		&model.ViewedJob{UserID: users[0].ID, JobID: jobs[1].ID},
		&model.Application{UserID: users[0].ID, JobID: jobs[1].ID, Status: model.ApplicationStatusInterview, Note: &note},
	}
	for _, row := range activity {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}
