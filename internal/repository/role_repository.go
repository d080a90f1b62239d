package repository

import (
	"strings"

	"github.com/workforcehq/workforce-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRoleRepository is a GORM implementation of RoleRepository.
type GormRoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new RoleRepository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &GormRoleRepository{db: db}
}

var roleSortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"short_name": "short_name",
	"status":     "status",
}

func (r *GormRoleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}

func (r *GormRoleRepository) FindByID(id int64) (*models.Role, error) {
	var role models.Role
	if err := r.db.First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *GormRoleRepository) ExistsByName(name string, excludeID int64) (bool, error) {
	return r.exists("name = ?", name, excludeID)
}

func (r *GormRoleRepository) ExistsByShortName(shortName string, excludeID int64) (bool, error) {
	return r.exists("short_name = ?", shortName, excludeID)
}

func (r *GormRoleRepository) exists(cond string, value string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&models.Role{}).Where(cond, value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRoleRepository) Save(role *models.Role) error {
	return r.db.Save(role).Error
}

func (r *GormRoleRepository) Search(text string, pr PageRequest) ([]models.Role, int64, error) {
	pattern := "%" + strings.ToLower(text) + "%"
	query := r.db.Model(&models.Role{}).
		Where("LOWER(name) LIKE ? OR LOWER(short_name) LIKE ?", pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column := sortColumn(roleSortColumns, pr.SortBy, "id")
	var roles []models.Role
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: pr.Desc()}).
		Offset(pr.Offset()).
		Limit(pr.Limit).
		Find(&roles).Error
	if err != nil {
		return nil, 0, err
	}

	return roles, total, nil
}
