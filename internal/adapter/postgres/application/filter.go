package application

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// normalizeFilter applies defaults and clamps values. The service rejects
// out-of-range values before they get here; this only guards direct callers.
func normalizeFilter(f domain.ApplicationFilter) domain.ApplicationFilter {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	return f
}

// filterConditions turns the filter into AND-combined WHERE conditions.
func filterConditions(f domain.ApplicationFilter) sq.And {
	conds := sq.And{}

	if f.CompanyName != nil && *f.CompanyName != "" {
		conds = append(conds, sq.ILike{"company_name": containsPattern(*f.CompanyName)})
	}
	if f.EmailUsed != nil && *f.EmailUsed != "" {
		conds = append(conds, sq.ILike{"email_used": containsPattern(*f.EmailUsed)})
	}
	if f.Status != nil {
		conds = append(conds, sq.Eq{"status": string(*f.Status)})
	}
	if f.Priority != nil {
		conds = append(conds, sq.Eq{"priority": string(*f.Priority)})
	}
	if f.Source != nil {
		conds = append(conds, sq.Eq{"source": string(*f.Source)})
	}

	return conds
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with LIKE
// metacharacters in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
