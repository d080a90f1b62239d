package repository

import (
	"github.com/workforcehq/workforce-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository.
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

var taskSortColumns = map[string]string{
	"id":             "id",
	"title":          "title",
	"start_time":     "start_time",
	"estimated_time": "estimated_time",
	"actual_time":    "actual_time",
	"status":         "status",
}

func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

func (r *GormTaskRepository) FindByID(id int64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *GormTaskRepository) Save(task *models.Task) error {
	return r.db.Save(task).Error
}

// Search matches titles with a plain LIKE: case-sensitive on postgres,
// which preserves the title search behavior this API has always had.
func (r *GormTaskRepository) Search(text string, userID int64, pr PageRequest) ([]models.Task, int64, error) {
	query := r.db.Model(&models.Task{}).Where("title LIKE ?", "%"+text+"%")
	if userID != 0 {
		query = query.Where("user_account_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column := sortColumn(taskSortColumns, pr.SortBy, "start_time")
	var tasks []models.Task
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: pr.Desc()}).
		Offset(pr.Offset()).
		Limit(pr.Limit).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}
