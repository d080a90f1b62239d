package repository

import (
	"strings"

	"github.com/workforcehq/workforce-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOfficeRepository is a GORM implementation of OfficeRepository.
type GormOfficeRepository struct {
	db *gorm.DB
}

// NewOfficeRepository creates a new OfficeRepository.
func NewOfficeRepository(db *gorm.DB) OfficeRepository {
	return &GormOfficeRepository{db: db}
}

var officeSortColumns = map[string]string{
	"id":       "id",
	"name":     "name",
	"location": "location",
	"status":   "status",
}

func (r *GormOfficeRepository) Create(office *models.Office) error {
	return r.db.Create(office).Error
}

func (r *GormOfficeRepository) FindByID(id int64) (*models.Office, error) {
	var office models.Office
	if err := r.db.First(&office, id).Error; err != nil {
		return nil, err
	}
	return &office, nil
}

func (r *GormOfficeRepository) ExistsByName(name string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&models.Office{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormOfficeRepository) Save(office *models.Office) error {
	return r.db.Save(office).Error
}

func (r *GormOfficeRepository) Search(text string, pr PageRequest) ([]models.Office, int64, error) {
	pattern := "%" + strings.ToLower(text) + "%"
	query := r.db.Model(&models.Office{}).Where("LOWER(name) LIKE ?", pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column := sortColumn(officeSortColumns, pr.SortBy, "id")
	var offices []models.Office
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: pr.Desc()}).
		Offset(pr.Offset()).
		Limit(pr.Limit).
		Find(&offices).Error
	if err != nil {
		return nil, 0, err
	}

	return offices, total, nil
}
