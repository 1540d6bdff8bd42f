// Package local implements attachment storage on the local filesystem.
// Each attachment category gets its own directory; files are never
// overwritten once written.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/jobtracker-backend/internal/config"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

const (
	timestampLayout = "20060102_150405"
	defaultExt      = ".pdf"

	// maxNameAttempts bounds the collision loop; a second has 1e6 slots.
	maxNameAttempts = 1000
)

// StoredFile is a file found in one of the storage directories.
type StoredFile struct {
	Path     string
	OwnerID  uuid.UUID
	Category domain.AttachmentCategory
	ModTime  time.Time
}

// Store keeps attachments on local disk.
type Store struct {
	dirs  map[domain.AttachmentCategory]string
	clock func() time.Time
	log   *slog.Logger
}

// New creates the storage directories if needed and returns a Store.
func New(cfg config.StorageConfig, logger *slog.Logger) (*Store, error) {
	s := &Store{
		dirs: map[domain.AttachmentCategory]string{
			domain.AttachmentResume:      filepath.Clean(cfg.ResumeDir),
			domain.AttachmentCoverLetter: filepath.Clean(cfg.CoverLetterDir),
		},
		clock: time.Now,
		log:   logger.With("adapter", "storage.local"),
	}

	for category, dir := range s.dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s dir %s: %w", category, dir, err)
		}
	}

	return s, nil
}

// Store writes content under a fresh name in the category's directory and
// returns the original name together with the storage path.
// An empty originalName becomes "<category>.pdf". Names whose extension is
// not an accepted document type fail with domain.ErrInvalidAttachmentType
// before anything touches the disk.
func (s *Store) Store(ctx context.Context, content io.Reader, originalName string, ownerID uuid.UUID, category domain.AttachmentCategory) (domain.Attachment, error) {
	dir, ok := s.dirs[category]
	if !ok {
		return domain.Attachment{}, fmt.Errorf("unknown attachment category %q: %w", category, domain.ErrValidation)
	}

	if originalName == "" {
		originalName = string(category) + defaultExt
	}
	ext, ok := domain.AttachmentExtension(originalName)
	if !ok {
		return domain.Attachment{}, fmt.Errorf("%s %q: %w", category, originalName, domain.ErrInvalidAttachmentType)
	}

	f, path, err := s.create(dir, ownerID, ext)
	if err != nil {
		return domain.Attachment{}, err
	}

	if _, err := io.Copy(f, readerWithContext(ctx, content)); err != nil {
		f.Close()
		os.Remove(path)
		return domain.Attachment{}, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return domain.Attachment{}, fmt.Errorf("close %s: %w", path, err)
	}

	s.log.DebugContext(ctx, "attachment stored",
		slog.String("category", string(category)),
		slog.String("owner_id", ownerID.String()),
		slog.String("path", path),
	)

	return domain.Attachment{OriginalName: originalName, StoragePath: path}, nil
}

// create opens a new file exclusively. On a name collision the microsecond
// part is bumped until a free name is found.
func (s *Store) create(dir string, ownerID uuid.UUID, ext string) (*os.File, string, error) {
	now := s.clock().UTC()
	stamp := now.Format(timestampLayout)
	micro := now.Nanosecond() / int(time.Microsecond)

	for range maxNameAttempts {
		name := fmt.Sprintf("%s_%s_%06d%s", ownerID, stamp, micro, ext)
		path := filepath.Join(dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("create %s: %w", path, err)
		}
		micro = (micro + 1) % 1_000_000
	}

	return nil, "", fmt.Errorf("no free attachment name for %s in %s", ownerID, dir)
}

// Open returns the content stored at path.
// Returns domain.ErrAttachmentNotFound if the file is missing or the path
// is outside the storage directories.
func (s *Store) Open(_ context.Context, path string) (io.ReadCloser, error) {
	if !s.owns(path) {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrAttachmentNotFound)
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrAttachmentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return f, nil
}

// Remove deletes the file at path. A missing file is not an error.
func (s *Store) Remove(ctx context.Context, path string) error {
	if !s.owns(path) {
		return fmt.Errorf("remove %s: path outside storage: %w", path, domain.ErrValidation)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}

	s.log.DebugContext(ctx, "attachment removed", slog.String("path", path))
	return nil
}

// ListOrphans walks every storage directory and returns the stored files
// last modified before now-olderThan. Whether a file is actually orphaned
// is for the caller to decide against the record store. Files whose name
// does not carry an owner id are skipped.
func (s *Store) ListOrphans(ctx context.Context, olderThan time.Duration) ([]StoredFile, error) {
	cutoff := s.clock().Add(-olderThan)

	var files []StoredFile
	for category, dir := range s.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", dir, err)
		}

		for _, e := range entries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if e.IsDir() {
				continue
			}

			ownerID, ok := ownerFromName(e.Name())
			if !ok {
				continue
			}

			info, err := e.Info()
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
			}
			if !info.ModTime().Before(cutoff) {
				continue
			}

			files = append(files, StoredFile{
				Path:     filepath.Join(dir, e.Name()),
				OwnerID:  ownerID,
				Category: category,
				ModTime:  info.ModTime(),
			})
		}
	}

	return files, nil
}

// Ping checks that every storage directory exists and is a directory.
func (s *Store) Ping(ctx context.Context) error {
	for category, dir := range s.dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("%s dir: %w", category, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s dir %s is not a directory", category, dir)
		}
	}
	return nil
}

// owns reports whether path lies directly inside one of the storage directories.
func (s *Store) owns(path string) bool {
	dir := filepath.Dir(filepath.Clean(path))
	for _, d := range s.dirs {
		if dir == d {
			return true
		}
	}
	return false
}

func ownerFromName(name string) (uuid.UUID, bool) {
	idPart, _, ok := strings.Cut(name, "_")
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idPart)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// readerWithContext stops the copy once ctx is done.
func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return readerFunc(func(p []byte) (int, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return r.Read(p)
	})
}

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }
