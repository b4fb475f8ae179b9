package repository

import (
	"time"

	"study_planner_backend/internal/model"

	"gorm.io/gorm"
)

type WorkItemRepository struct {
	DB *gorm.DB
}

func NewWorkItemRepository(db *gorm.DB) *WorkItemRepository {
	return &WorkItemRepository{DB: db}
}

func (r *WorkItemRepository) FindByUserID(userID uint) ([]*model.WorkItem, error) {
	var items []*model.WorkItem
	err := r.DB.Where("user_id = ?", userID).Order("due_at asc").Find(&items).Error
	return items, err
}

// FindUpcomingByUserID 只取还没过期太久的条目，截止超过一天的视为已结课
func (r *WorkItemRepository) FindUpcomingByUserID(userID uint, now time.Time) ([]*model.WorkItem, error) {
	var items []*model.WorkItem
	err := r.DB.Where("user_id = ? AND due_at >= ?", userID, now.AddDate(0, 0, -1)).
		Order("due_at asc").Find(&items).Error
	return items, err
}

// ReplaceForUser 整体替换某用户的作业快照，LMS同步按全量覆盖处理
func (r *WorkItemRepository) ReplaceForUser(userID uint, items []*model.WorkItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.WorkItem{}).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.UserID = userID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
