package model

import (
	"time"

	"gorm.io/gorm"
)

// WorkItem LMS同步下来的作业快照，分数列由上游AI评估服务写入
// swagger:model WorkItem
type WorkItem struct {
	gorm.Model
	ExternalID       string       `gorm:"size:64;not null;uniqueIndex:idx_user_external" json:"externalId"`
	UserID           uint         `gorm:"index;uniqueIndex:idx_user_external;type:bigint unsigned" json:"userId"`
	Title            string       `gorm:"size:255;not null" json:"title"`
	Type             WorkItemType `gorm:"size:20;not null;default:'other'" json:"type"`
	CourseName       string       `gorm:"size:255" json:"courseName"`
	DueAt            time.Time    `json:"dueAt"`
	EstimatedMinutes int          `gorm:"not null" json:"estimatedMinutes"`
	ComplexityScore  float64      `json:"complexityScore"`
	RiskScore        float64      `json:"riskScore"`
	PriorityScore    float64      `json:"priorityScore"`
	GradeWeight      float64      `json:"gradeWeight"`
}

func (WorkItem) TableName() string {
	return "work_items"
}

// ToInput 转成调度核心消费的输入形态
func (w *WorkItem) ToInput() WorkItemInput {
	return WorkItemInput{
		ID:               w.ExternalID,
		Title:            w.Title,
		Type:             w.Type,
		DueAt:            w.DueAt,
		EstimatedMinutes: w.EstimatedMinutes,
		ComplexityScore:  w.ComplexityScore,
		RiskScore:        w.RiskScore,
		PriorityScore:    w.PriorityScore,
		GradeWeight:      w.GradeWeight,
	}
}
