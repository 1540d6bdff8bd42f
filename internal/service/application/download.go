package application

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

// Download is a stored document ready to be streamed. The caller closes Body.
type Download struct {
	Filename    string
	ContentType string
	Body        io.ReadCloser
}

const downloadContentType = "application/octet-stream"

// OpenResume opens the resume of an application.
func (s *Service) OpenResume(ctx context.Context, id uuid.UUID) (*Download, error) {
	app, err := s.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.open(ctx, app.ResumeFilename, app.ResumeFilePath)
}

// OpenCoverLetter opens the cover letter of an application. It returns
// domain.ErrNotFound when none was uploaded.
func (s *Service) OpenCoverLetter(ctx context.Context, id uuid.UUID) (*Download, error) {
	app, err := s.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if !app.HasCoverLetter() {
		return nil, fmt.Errorf("cover letter: %w", domain.ErrNotFound)
	}
	return s.open(ctx, deref(app.CoverLetterFilename), *app.CoverLetterFilePath)
}

func (s *Service) open(ctx context.Context, name, path string) (*Download, error) {
	body, err := s.files.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open attachment: %w", err)
	}
	return &Download{
		Filename:    name,
		ContentType: downloadContentType,
		Body:        body,
	}, nil
}
