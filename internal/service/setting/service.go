package setting

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

const MaxValueLength = 4096

var keyPattern = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// secretSuffixes mark keys whose values are never returned in clear text.
var secretSuffixes = []string{"_key", "_secret", "_token", "_password"}

type settingRepo interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	List(ctx context.Context) ([]domain.Setting, error)
	Upsert(ctx context.Context, key, value string, updatedAt time.Time) (*domain.Setting, error)
}

// Service manages user-level key/value settings such as API keys.
type Service struct {
	settings settingRepo
	log      *slog.Logger
}

// NewService creates a new Setting service.
func NewService(log *slog.Logger, settings settingRepo) *Service {
	return &Service{
		settings: settings,
		log:      log.With("service", "setting"),
	}
}

// List returns every setting ordered by key, secrets masked.
func (s *Service) List(ctx context.Context) ([]domain.Setting, error) {
	list, err := s.settings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	for i := range list {
		list[i] = masked(list[i])
	}
	return list, nil
}

// Get returns one setting, secret masked, or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, key string) (*domain.Setting, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	st, err := s.settings.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get setting: %w", err)
	}
	m := masked(*st)
	return &m, nil
}

// Set stores value under key, replacing any previous value. Surrounding
// whitespace is trimmed. The returned setting is masked like Get.
func (s *Service) Set(ctx context.Context, key, value string) (*domain.Setting, error) {
	value = strings.TrimSpace(value)

	var errs []domain.FieldError
	if err := validateKey(key); err != nil {
		errs = append(errs, domain.FieldError{Field: "key", Message: "must match [a-z0-9_]{1,64}"})
	}
	if utf8.RuneCountInString(value) > MaxValueLength {
		errs = append(errs, domain.FieldError{Field: "value", Message: fmt.Sprintf("max %d characters", MaxValueLength)})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	st, err := s.settings.Upsert(ctx, key, value, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("set setting: %w", err)
	}

	s.log.InfoContext(ctx, "setting updated",
		slog.String("key", key),
		slog.Bool("secret", IsSecret(key)),
	)

	m := masked(*st)
	return &m, nil
}

func validateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return domain.NewValidationError("key", "must match [a-z0-9_]{1,64}")
	}
	return nil
}

// IsSecret reports whether values stored under key must be masked.
func IsSecret(key string) bool {
	for _, suffix := range secretSuffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return false
}

func masked(st domain.Setting) domain.Setting {
	if IsSecret(st.Key) {
		st.Value = Mask(st.Value)
	}
	return st
}

// Mask keeps the first and last four characters of a secret. Values too
// short to keep anything are fully hidden.
func Mask(value string) string {
	if value == "" {
		return ""
	}
	r := []rune(value)
	if len(r) <= 8 {
		return "…"
	}
	return string(r[:4]) + "…" + string(r[len(r)-4:])
}
