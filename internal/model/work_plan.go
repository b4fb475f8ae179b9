package model

import "time"

// WorkItemType 表示一条作业的类型
type WorkItemType string

const (
	ItemAssignment   WorkItemType = "assignment"
	ItemQuiz         WorkItemType = "quiz"
	ItemTest         WorkItemType = "test"
	ItemDiscussion   WorkItemType = "discussion"
	ItemLab          WorkItemType = "lab"
	ItemProject      WorkItemType = "project"
	ItemReading      WorkItemType = "reading"
	ItemPresentation WorkItemType = "presentation"
	ItemOther        WorkItemType = "other"
)

// BlockMode 表示学习块的用途
type BlockMode string

const (
	BlockPrep             BlockMode = "prep"
	BlockExecution        BlockMode = "execution"
	BlockSpacedRepetition BlockMode = "spaced_repetition"
	BlockReview           BlockMode = "review"
)

// RecomputeTrigger 表示本次重新生成计划的原因
type RecomputeTrigger string

const (
	TriggerInitial         RecomputeTrigger = "initial"
	TriggerSessionSkipped  RecomputeTrigger = "session_skipped"
	TriggerWorkloadChanged RecomputeTrigger = "workload_changed"
)

// PaceLevel 学习节奏档位
type PaceLevel string

const (
	PaceSlow   PaceLevel = "slow"
	PaceSteady PaceLevel = "steady"
	PaceFast   PaceLevel = "fast"
)

// 可选子对象缺省值
const (
	DefaultWeekdayMinutes  = 120
	DefaultWeekendMinutes  = 180
	DefaultFocusMinutes    = 45
	DefaultPreferredWindow = "evening"
)

// WorkItemInput 一条待规划的作业，分数均为 0-100
// swagger:model WorkItemInput
type WorkItemInput struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Type             WorkItemType `json:"type"`
	DueAt            time.Time    `json:"dueAt"`
	EstimatedMinutes int          `json:"estimatedMinutes"`
	ComplexityScore  float64      `json:"complexityScore"`
	RiskScore        float64      `json:"riskScore"`
	PriorityScore    float64      `json:"priorityScore"`
	GradeWeight      float64      `json:"gradeWeight"`
}

// AvailabilityInput 每日可用学习时长，DayOverrides 以星期下标(0=周日)覆盖默认值
type AvailabilityInput struct {
	WeekdayMinutes int         `json:"weekdayMinutes"`
	WeekendMinutes int         `json:"weekendMinutes"`
	DayOverrides   map[int]int `json:"dayOverrides,omitempty"`
}

type PaceInput struct {
	PaceLevel              PaceLevel `json:"paceLevel"`
	FocusMinutesPerSession int       `json:"focusMinutesPerSession"`
}

type PriorityPrefs struct {
	PreferHighRisk     bool `json:"preferHighRisk"`
	PreferHighWeight   bool `json:"preferHighWeight"`
	PreferNearDeadline bool `json:"preferNearDeadline"`
}

type BehaviorInput struct {
	SessionsSkippedLast7d int     `json:"sessionsSkippedLast7d"`
	AvgCompletionDriftPct float64 `json:"avgCompletionDriftPct"`
	PreferredTimeOfDay    string  `json:"preferredTimeOfDay"`
}

type RecomputeInput struct {
	Trigger             RecomputeTrigger `json:"trigger"`
	NewAssessmentsAdded int              `json:"newAssessmentsAdded"`
}

// WorkPlanOptimizeRequest 生成学习计划的完整请求
// swagger:model WorkPlanOptimizeRequest
type WorkPlanOptimizeRequest struct {
	Availability *AvailabilityInput `json:"availability,omitempty"`
	Pace         *PaceInput         `json:"pace,omitempty"`
	Priorities   *PriorityPrefs     `json:"priorities,omitempty"`
	Behavior     *BehaviorInput     `json:"behavior,omitempty"`
	Recompute    *RecomputeInput    `json:"recompute,omitempty"`
	WorkItems    []WorkItemInput    `json:"workItems"`
}

// ApplyDefaults 为缺失的子对象填充缺省值，重复调用无副作用
func (r *WorkPlanOptimizeRequest) ApplyDefaults() {
	if r.Availability == nil {
		r.Availability = &AvailabilityInput{
			WeekdayMinutes: DefaultWeekdayMinutes,
			WeekendMinutes: DefaultWeekendMinutes,
		}
	}
	if r.Pace == nil {
		r.Pace = &PaceInput{
			PaceLevel:              PaceSteady,
			FocusMinutesPerSession: DefaultFocusMinutes,
		}
	}
	if r.Pace.PaceLevel == "" {
		r.Pace.PaceLevel = PaceSteady
	}
	if r.Pace.FocusMinutesPerSession <= 0 {
		r.Pace.FocusMinutesPerSession = DefaultFocusMinutes
	}
	if r.Priorities == nil {
		r.Priorities = &PriorityPrefs{}
	}
	if r.Behavior == nil {
		r.Behavior = &BehaviorInput{PreferredTimeOfDay: DefaultPreferredWindow}
	}
	if r.Behavior.PreferredTimeOfDay == "" {
		r.Behavior.PreferredTimeOfDay = DefaultPreferredWindow
	}
	if r.Recompute == nil {
		r.Recompute = &RecomputeInput{Trigger: TriggerInitial}
	}
	if r.Recompute.Trigger == "" {
		r.Recompute.Trigger = TriggerInitial
	}
}

// RankedItem 排序后的作业，只在一次计算内存在
type RankedItem struct {
	Item            WorkItemInput `json:"item"`
	AdjustedMinutes int           `json:"adjustedMinutes"`
	RankScore       float64       `json:"rankScore"`
	DaysUntilDue    int           `json:"daysUntilDue"`
}

// PlannedBlock 从作业拆分出的单个学习块
// swagger:model PlannedBlock
type PlannedBlock struct {
	BlockID         string       `json:"blockId"`
	WorkItemID      string       `json:"workItemId"`
	Title           string       `json:"title"`
	Type            WorkItemType `json:"type"`
	Mode            BlockMode    `json:"mode"`
	Minutes         int          `json:"minutes"`
	DueAt           time.Time    `json:"dueAt"`
	PriorityRank    int          `json:"priorityRank"`
	Reason          string       `json:"reason"`
	IsLatePlacement bool         `json:"isLatePlacement"`
}

// DaySlot 单日容量日历；RemainingMinutes 仅在放置过程中使用，不对外输出
type DaySlot struct {
	Date             string         `json:"date"`
	FocusWindow      string         `json:"focusWindow"`
	CapacityMinutes  int            `json:"capacityMinutes"`
	TotalMinutes     int            `json:"totalMinutes"`
	Tasks            []PlannedBlock `json:"tasks"`
	RemainingMinutes int            `json:"-"`
}

// AdjustmentKind 调整提示的类别
type AdjustmentKind string

const (
	AdjustBehavior AdjustmentKind = "behavior"
	AdjustWorkload AdjustmentKind = "workload"
	AdjustRisk     AdjustmentKind = "risk"
	AdjustCapacity AdjustmentKind = "capacity"
)

type Adjustment struct {
	Kind    AdjustmentKind `json:"kind"`
	Message string         `json:"message"`
}

type NextBestAction struct {
	WorkItemID              string `json:"workItemId"`
	Title                   string `json:"title"`
	RecommendedTodayMinutes int    `json:"recommendedTodayMinutes"`
	Reason                  string `json:"reason"`
}

type PlanSummary struct {
	TotalEstimatedHours    float64 `json:"totalEstimatedHours"`
	TotalScheduledHours    float64 `json:"totalScheduledHours"`
	DaysPlanned            int     `json:"daysPlanned"`
	Recomputed             bool    `json:"recomputed"`
	SpacedRepetitionBlocks int     `json:"spacedRepetitionBlocks"`
}

// WorkPlanOptimizeResponse 学习计划结果
// swagger:model WorkPlanOptimizeResponse
type WorkPlanOptimizeResponse struct {
	GeneratedAt    time.Time      `json:"generatedAt"`
	Summary        PlanSummary    `json:"summary"`
	NextBestAction NextBestAction `json:"nextBestAction"`
	Adjustments    []Adjustment   `json:"adjustments"`
	Explanations   []string       `json:"explanations"`
	DailyPlan      []DaySlot      `json:"dailyPlan"`
}
