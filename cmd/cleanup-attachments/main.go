// Command cleanup-attachments removes stored resumes and cover letters that
// no application references any more, for example after a crash between
// the file write and the record write. Only files older than the configured
// retention are considered, so uploads still in flight are left alone. A
// file whose owning application still exists is never removed. It is
// intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/jobtracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobtracker-backend/internal/adapter/postgres/application"
	"github.com/heartmarshall/jobtracker-backend/internal/adapter/storage/local"
	"github.com/heartmarshall/jobtracker-backend/internal/app"
	"github.com/heartmarshall/jobtracker-backend/internal/config"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report orphaned files without removing them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	store, err := local.New(cfg.Storage, logger)
	if err != nil {
		logger.Error("init storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	appRepo := application.New(pool)

	candidates, err := store.ListOrphans(ctx, cfg.Storage.OrphanRetention)
	if err != nil {
		logger.Error("list stored files", slog.String("error", err.Error()))
		os.Exit(1)
	}

	names := make([]string, len(candidates))
	owners := make([]uuid.UUID, len(candidates))
	for i, f := range candidates {
		names[i] = filepath.Base(f.Path)
		owners[i] = f.OwnerID
	}

	var (
		referenced map[string]bool
		existing   map[uuid.UUID]bool
	)
	err = postgres.NewTxManager(pool).RunInSnapshot(ctx, func(ctx context.Context) error {
		var err error
		if referenced, err = appRepo.ReferencedNames(ctx, names); err != nil {
			return fmt.Errorf("check referenced names: %w", err)
		}
		if existing, err = appRepo.ExistingIDs(ctx, owners); err != nil {
			return fmt.Errorf("check existing owners: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("read application references", slog.String("error", err.Error()))
		os.Exit(1)
	}

	orphans := selectOrphans(candidates, existing, referenced)

	var removed, failed int
	for _, f := range orphans {
		attrs := []any{
			slog.String("path", f.Path),
			slog.String("category", f.Category.String()),
			slog.Time("modified", f.ModTime),
		}
		if *dryRun {
			logger.Info("orphaned attachment", attrs...)
			continue
		}
		if err := store.Remove(ctx, f.Path); err != nil {
			failed++
			logger.Warn("remove orphaned attachment", append(attrs, slog.String("error", err.Error()))...)
			continue
		}
		removed++
	}

	logger.Info("attachment cleanup completed",
		slog.Int("scanned", len(candidates)),
		slog.Int("orphaned", len(orphans)),
		slog.Int("removed", removed),
		slog.Int("failed", failed),
		slog.Bool("dry_run", *dryRun),
		slog.Duration("retention", cfg.Storage.OrphanRetention),
	)

	if failed > 0 {
		os.Exit(1)
	}
}

// selectOrphans keeps the files whose owning application is gone and whose
// base name no application references. referenced is keyed by base name.
func selectOrphans(files []local.StoredFile, existing map[uuid.UUID]bool, referenced map[string]bool) []local.StoredFile {
	var orphans []local.StoredFile
	for _, f := range files {
		if existing[f.OwnerID] || referenced[filepath.Base(f.Path)] {
			continue
		}
		orphans = append(orphans, f)
	}
	return orphans
}
