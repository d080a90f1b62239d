package repository

import (
	"strings"

	"github.com/workforcehq/workforce-api/internal/models"
)

// PageRequest describes one slice of a search result set.
type PageRequest struct {
	Index    int    // 1-based page index
	Limit    int    // page size
	SortBy   string // sort column, entity default when empty
	SortType string // "asc" or "desc"
}

// Offset returns the row offset for the requested page.
func (p PageRequest) Offset() int {
	if p.Index <= 1 {
		return 0
	}
	return (p.Index - 1) * p.Limit
}

// Desc reports whether the requested sort direction is descending.
func (p PageRequest) Desc() bool {
	return strings.EqualFold(p.SortType, "desc")
}

// SequenceRepository allocates monotonically increasing ids per named
// counter. Atomicity is delegated to the store's upsert-increment.
type SequenceRepository interface {
	// Increment bumps the named counter by one and returns the new value,
	// creating the counter at 1 if absent.
	Increment(name string) (int64, error)
}

// OfficeRepository is the persistence abstraction for offices.
type OfficeRepository interface {
	Create(office *models.Office) error

	// FindByID finds an office by id regardless of status.
	FindByID(id int64) (*models.Office, error)

	// ExistsByName reports whether any office other than excludeID holds
	// the name. Pass excludeID 0 to check against all offices.
	ExistsByName(name string, excludeID int64) (bool, error)

	Save(office *models.Office) error

	// Search matches the name by case-insensitive substring and returns
	// one page of results plus the total match count.
	Search(text string, pr PageRequest) ([]models.Office, int64, error)
}

// RoleRepository is the persistence abstraction for roles.
type RoleRepository interface {
	Create(role *models.Role) error
	FindByID(id int64) (*models.Role, error)
	ExistsByName(name string, excludeID int64) (bool, error)
	ExistsByShortName(shortName string, excludeID int64) (bool, error)
	Save(role *models.Role) error

	// Search matches name or short name by case-insensitive substring.
	Search(text string, pr PageRequest) ([]models.Role, int64, error)
}

// TeamRepository is the persistence abstraction for teams.
type TeamRepository interface {
	Create(team *models.Team) error
	FindByID(id int64) (*models.Team, error)
	ExistsByName(name string, excludeID int64) (bool, error)
	ExistsByShortName(shortName string, excludeID int64) (bool, error)
	Save(team *models.Team) error
	Search(text string, pr PageRequest) ([]models.Team, int64, error)
}

// UserAccountRepository is the persistence abstraction for user accounts.
type UserAccountRepository interface {
	Create(account *models.UserAccount) error
	FindByID(id int64) (*models.UserAccount, error)
	ExistsByEmail(email string, excludeID int64) (bool, error)
	ExistsByPhone(phone string, excludeID int64) (bool, error)
	Save(account *models.UserAccount) error

	// FindAllByIDs returns the accounts whose ids appear in ids; missing
	// ids are silently skipped.
	FindAllByIDs(ids []int64) ([]models.UserAccount, error)

	// SaveAll persists all accounts within a single transaction.
	SaveAll(accounts []models.UserAccount) error

	// Search matches name, email, or phone by case-insensitive substring.
	// A non-zero teamID additionally restricts results to that team.
	Search(text string, teamID int64, pr PageRequest) ([]models.UserAccount, int64, error)
}

// TaskRepository is the persistence abstraction for tasks, including
// their embedded work-log lists.
type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(id int64) (*models.Task, error)
	Save(task *models.Task) error

	// Search matches the title by substring. A non-zero userID restricts
	// results to tasks assigned to that account.
	Search(text string, userID int64, pr PageRequest) ([]models.Task, int64, error)
}

// sortColumn maps a requested sort key onto a known column, falling back
// to the entity default for unknown keys.
func sortColumn(allowed map[string]string, requested, fallback string) string {
	if col, ok := allowed[strings.ToLower(requested)]; ok {
		return col
	}
	return fallback
}
