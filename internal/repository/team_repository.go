package repository

import (
	"strings"

	"github.com/workforcehq/workforce-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTeamRepository is a GORM implementation of TeamRepository.
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

var teamSortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"short_name": "short_name",
	"status":     "status",
}

func (r *GormTeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

func (r *GormTeamRepository) FindByID(id int64) (*models.Team, error) {
	var team models.Team
	if err := r.db.First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *GormTeamRepository) ExistsByName(name string, excludeID int64) (bool, error) {
	return r.exists("name = ?", name, excludeID)
}

func (r *GormTeamRepository) ExistsByShortName(shortName string, excludeID int64) (bool, error) {
	return r.exists("short_name = ?", shortName, excludeID)
}

func (r *GormTeamRepository) exists(cond string, value string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&models.Team{}).Where(cond, value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormTeamRepository) Save(team *models.Team) error {
	return r.db.Save(team).Error
}

func (r *GormTeamRepository) Search(text string, pr PageRequest) ([]models.Team, int64, error) {
	pattern := "%" + strings.ToLower(text) + "%"
	query := r.db.Model(&models.Team{}).
		Where("LOWER(name) LIKE ? OR LOWER(short_name) LIKE ?", pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column := sortColumn(teamSortColumns, pr.SortBy, "id")
	var teams []models.Team
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: pr.Desc()}).
		Offset(pr.Offset()).
		Limit(pr.Limit).
		Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}
