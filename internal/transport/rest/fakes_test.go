package rest

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
	"github.com/heartmarshall/jobtracker-backend/internal/service/application"
	"github.com/heartmarshall/jobtracker-backend/internal/service/profile"
)

var testLogger = slog.Default()

type fakeApplications struct {
	create      func(ctx context.Context, input application.CreateApplicationInput) (*domain.Application, error)
	get         func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	update      func(ctx context.Context, input application.UpdateApplicationInput) (*domain.Application, error)
	del         func(ctx context.Context, id uuid.UUID) error
	list        func(ctx context.Context, input application.ListInput) ([]domain.Application, error)
	recent      func(ctx context.Context, n int) ([]domain.Application, error)
	search      func(ctx context.Context, query string) ([]domain.Application, error)
	companyInfo func(ctx context.Context, name string) (*domain.CompanyInfo, error)
	history     func(ctx context.Context, id uuid.UUID, limit int) ([]domain.AuditRecord, error)
	openResume  func(ctx context.Context, id uuid.UUID) (*application.Download, error)
	openCover   func(ctx context.Context, id uuid.UUID) (*application.Download, error)
}

func (f *fakeApplications) CreateApplication(ctx context.Context, input application.CreateApplicationInput) (*domain.Application, error) {
	return f.create(ctx, input)
}

func (f *fakeApplications) GetApplication(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	return f.get(ctx, id)
}

func (f *fakeApplications) UpdateApplication(ctx context.Context, input application.UpdateApplicationInput) (*domain.Application, error) {
	return f.update(ctx, input)
}

func (f *fakeApplications) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	return f.del(ctx, id)
}

func (f *fakeApplications) ListApplications(ctx context.Context, input application.ListInput) ([]domain.Application, error) {
	return f.list(ctx, input)
}

func (f *fakeApplications) RecentApplications(ctx context.Context, n int) ([]domain.Application, error) {
	return f.recent(ctx, n)
}

func (f *fakeApplications) SearchApplications(ctx context.Context, query string) ([]domain.Application, error) {
	return f.search(ctx, query)
}

func (f *fakeApplications) CompanyInfo(ctx context.Context, name string) (*domain.CompanyInfo, error) {
	return f.companyInfo(ctx, name)
}

func (f *fakeApplications) History(ctx context.Context, id uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	return f.history(ctx, id, limit)
}

func (f *fakeApplications) OpenResume(ctx context.Context, id uuid.UUID) (*application.Download, error) {
	return f.openResume(ctx, id)
}

func (f *fakeApplications) OpenCoverLetter(ctx context.Context, id uuid.UUID) (*application.Download, error) {
	return f.openCover(ctx, id)
}

type fakeAnalytics struct {
	summary *domain.AnalyticsSummary
	err     error
}

func (f *fakeAnalytics) Summary(context.Context) (*domain.AnalyticsSummary, error) {
	return f.summary, f.err
}

type fakeExtraction struct {
	gotURL  string
	posting *domain.JobPosting
	err     error
}

func (f *fakeExtraction) ParseURL(_ context.Context, rawURL string) (*domain.JobPosting, error) {
	f.gotURL = rawURL
	return f.posting, f.err
}

type fakeProfiles struct {
	profile  *domain.Profile
	gotInput profile.ProfileInput
	err      error
}

func (f *fakeProfiles) Get(context.Context) (*domain.Profile, error) {
	return f.profile, f.err
}

func (f *fakeProfiles) Upsert(_ context.Context, input profile.ProfileInput) (*domain.Profile, error) {
	f.gotInput = input
	return f.profile, f.err
}

type fakeSettings struct {
	settings []domain.Setting
	gotKey   string
	gotValue string
	err      error
}

func (f *fakeSettings) List(context.Context) ([]domain.Setting, error) {
	return f.settings, f.err
}

func (f *fakeSettings) Get(_ context.Context, key string) (*domain.Setting, error) {
	f.gotKey = key
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Setting{Key: key, Value: "v"}, nil
}

func (f *fakeSettings) Set(_ context.Context, key, value string) (*domain.Setting, error) {
	f.gotKey, f.gotValue = key, value
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Setting{Key: key, Value: value}, nil
}

func ptr[T any](v T) *T { return &v }
