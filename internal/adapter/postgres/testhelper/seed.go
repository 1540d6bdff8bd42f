package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueSuffix is uniqueSuffix for tests outside this package that need to
// build their own non-conflicting values (company names, setting keys).
func UniqueSuffix() string {
	return uniqueSuffix()
}

// SeedApplication inserts an application with plausible defaults. Mutators
// run before the insert so callers can pin the fields a test depends on.
// Returns the persisted domain.Application.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, mutators ...func(*domain.Application)) domain.Application {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	app := domain.Application{
		ID:             uuid.New(),
		CompanyName:    "Company " + suffix,
		JobTitle:       "Engineer " + suffix,
		JobID:          "JOB-" + suffix,
		JobURL:         "https://jobs.example.com/" + suffix,
		Status:         domain.StatusApplied,
		Priority:       domain.PriorityMedium,
		DateApplied:    now,
		EmailUsed:      "me-" + suffix + "@example.com",
		ResumeFilename: "resume.pdf",
		Source:         domain.SourceLinkedIn,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	app.ResumeFilePath = "uploads/resumes/" + app.ID.String() + "_20250101_000000_000000.pdf"

	for _, m := range mutators {
		m(&app)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO applications (id, company_name, job_title, job_id, job_url, portal_url,
		    status, priority, date_applied, email_used, resume_filename, resume_file_path,
		    cover_letter_filename, cover_letter_file_path, source, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		app.ID, app.CompanyName, app.JobTitle, app.JobID, app.JobURL, app.PortalURL,
		string(app.Status), string(app.Priority), app.DateApplied, app.EmailUsed,
		app.ResumeFilename, app.ResumeFilePath, app.CoverLetterFilename, app.CoverLetterFilePath,
		string(app.Source), app.Notes, app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication insert: %v", err)
	}

	return app
}

// SeedSetting upserts a settings row.
func SeedSetting(t *testing.T, pool *pgxpool.Pool, key, value string) domain.Setting {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSetting insert: %v", err)
	}

	return domain.Setting{Key: key, Value: value, UpdatedAt: now}
}
