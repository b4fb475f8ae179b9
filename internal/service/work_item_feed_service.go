package service

import (
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/util"
)

// 一条作业最多允许预估一整天
const maxEstimatedMinutes = 24 * 60

// WorkItemFeedService 作业流服务：维护LMS同步下来的作业快照，
// 并把它们组装成调度核心消费的输入数组。分数字段由上游评估服务
// 在同步时带入，本服务不做任何估算。
type WorkItemFeedService struct {
	Repo *repository.WorkItemRepository
}

func NewWorkItemFeedService(repo *repository.WorkItemRepository) *WorkItemFeedService {
	return &WorkItemFeedService{Repo: repo}
}

// BuildInputs 取该用户尚未结课的作业并转成核心输入
func (s *WorkItemFeedService) BuildInputs(userID uint, now time.Time) ([]model.WorkItemInput, error) {
	items, err := s.Repo.FindUpcomingByUserID(userID, now)
	if err != nil {
		return nil, err
	}

	inputs := make([]model.WorkItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, item.ToInput())
	}
	return inputs, nil
}

func (s *WorkItemFeedService) List(userID uint) ([]*model.WorkItem, error) {
	return s.Repo.FindByUserID(userID)
}

// SyncRequestItem 同步接口里的单条作业
// swagger:model SyncRequestItem
type SyncRequestItem struct {
	ID               string             `json:"id" binding:"required"`
	Title            string             `json:"title" binding:"required"`
	Type             model.WorkItemType `json:"type"`
	CourseName       string             `json:"courseName"`
	DueAt            time.Time          `json:"dueAt"`
	EstimatedMinutes int                `json:"estimatedMinutes" binding:"required,min=1"`
	ComplexityScore  float64            `json:"complexityScore" binding:"min=0,max=100"`
	RiskScore        float64            `json:"riskScore" binding:"min=0,max=100"`
	PriorityScore    float64            `json:"priorityScore" binding:"min=0,max=100"`
	GradeWeight      float64            `json:"gradeWeight" binding:"min=0,max=100"`
}

// Sync 全量覆盖该用户的作业快照，返回写入条数
func (s *WorkItemFeedService) Sync(userID uint, items []SyncRequestItem) (int, error) {
	records := make([]*model.WorkItem, 0, len(items))
	for _, item := range items {
		if item.EstimatedMinutes <= 0 || item.EstimatedMinutes > maxEstimatedMinutes {
			return 0, util.ErrInvalidWorkItem
		}
		itemType := item.Type
		if itemType == "" {
			itemType = model.ItemOther
		}
		records = append(records, &model.WorkItem{
			ExternalID:       item.ID,
			Title:            item.Title,
			Type:             itemType,
			CourseName:       item.CourseName,
			DueAt:            item.DueAt,
			EstimatedMinutes: item.EstimatedMinutes,
			ComplexityScore:  item.ComplexityScore,
			RiskScore:        item.RiskScore,
			PriorityScore:    item.PriorityScore,
			GradeWeight:      item.GradeWeight,
		})
	}

	if err := s.Repo.ReplaceForUser(userID, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
