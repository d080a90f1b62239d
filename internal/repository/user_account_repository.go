package repository

import (
	"strings"

	"github.com/workforcehq/workforce-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserAccountRepository is a GORM implementation of UserAccountRepository.
type GormUserAccountRepository struct {
	db *gorm.DB
}

// NewUserAccountRepository creates a new UserAccountRepository.
func NewUserAccountRepository(db *gorm.DB) UserAccountRepository {
	return &GormUserAccountRepository{db: db}
}

var userAccountSortColumns = map[string]string{
	"id":     "id",
	"name":   "name",
	"email":  "email",
	"phone":  "phone",
	"status": "status",
}

func (r *GormUserAccountRepository) Create(account *models.UserAccount) error {
	return r.db.Create(account).Error
}

func (r *GormUserAccountRepository) FindByID(id int64) (*models.UserAccount, error) {
	var account models.UserAccount
	if err := r.db.First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *GormUserAccountRepository) ExistsByEmail(email string, excludeID int64) (bool, error) {
	return r.exists("email = ?", email, excludeID)
}

func (r *GormUserAccountRepository) ExistsByPhone(phone string, excludeID int64) (bool, error) {
	return r.exists("phone = ?", phone, excludeID)
}

func (r *GormUserAccountRepository) exists(cond string, value string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&models.UserAccount{}).Where(cond, value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormUserAccountRepository) Save(account *models.UserAccount) error {
	return r.db.Save(account).Error
}

func (r *GormUserAccountRepository) FindAllByIDs(ids []int64) ([]models.UserAccount, error) {
	accounts := make([]models.UserAccount, 0, len(ids))
	if len(ids) == 0 {
		return accounts, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// SaveAll persists every account inside one transaction so that team
// membership mutations are all-or-nothing.
func (r *GormUserAccountRepository) SaveAll(accounts []models.UserAccount) error {
	if len(accounts) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range accounts {
			if err := tx.Save(&accounts[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormUserAccountRepository) Search(text string, teamID int64, pr PageRequest) ([]models.UserAccount, int64, error) {
	pattern := "%" + strings.ToLower(text) + "%"
	query := r.db.Model(&models.UserAccount{}).
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?",
			pattern, pattern, pattern)
	if teamID != 0 {
		query = query.Where("team_id = ?", teamID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column := sortColumn(userAccountSortColumns, pr.SortBy, "id")
	var accounts []models.UserAccount
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: pr.Desc()}).
		Offset(pr.Offset()).
		Limit(pr.Limit).
		Find(&accounts).Error
	if err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}
