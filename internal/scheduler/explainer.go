package scheduler

import (
	"fmt"

	"study_planner_backend/internal/model"
)

// Explainer 根据排序与放置结果生成调整提示和自然语言解释
type Explainer struct{}

func NewExplainer() *Explainer {
	return &Explainer{}
}

// Adjustments 输出分类提示，保证至少有一条
func (e *Explainer) Adjustments(req *model.WorkPlanOptimizeRequest, lateCount int) []model.Adjustment {
	var adjustments []model.Adjustment

	if req.Recompute.Trigger == model.TriggerSessionSkipped {
		adjustments = append(adjustments, model.Adjustment{
			Kind:    model.AdjustBehavior,
			Message: "Recovery rebalance applied: a skipped session was detected, so estimates were padded and a recovery review block was added.",
		})
	}
	if req.Recompute.Trigger == model.TriggerWorkloadChanged || req.Recompute.NewAssessmentsAdded > 0 {
		adjustments = append(adjustments, model.Adjustment{
			Kind:    model.AdjustWorkload,
			Message: "Workload change absorbed: the plan was rebuilt around the updated set of work items.",
		})
	}
	if req.Behavior.AvgCompletionDriftPct > 10 {
		adjustments = append(adjustments, model.Adjustment{
			Kind:    model.AdjustRisk,
			Message: fmt.Sprintf("Completion drift of %.0f%% detected; time estimates were increased to compensate.", req.Behavior.AvgCompletionDriftPct),
		})
	}
	if lateCount > 0 {
		adjustments = append(adjustments, model.Adjustment{
			Kind:    model.AdjustCapacity,
			Message: fmt.Sprintf("%d block(s) did not fit before their due date and were scheduled late.", lateCount),
		})
	}

	if len(adjustments) == 0 {
		adjustments = append(adjustments, model.Adjustment{
			Kind:    model.AdjustBehavior,
			Message: "Plan is stable: no behavioral or workload adjustments were needed.",
		})
	}
	return adjustments
}

// Explanations 输出按固定顺序的解释文本
func (e *Explainer) Explanations(req *model.WorkPlanOptimizeRequest, ranked []model.RankedItem, lateCount int) []string {
	var lines []string

	if len(ranked) > 0 {
		top := ranked[0]
		lines = append(lines, fmt.Sprintf("%q leads the plan: risk %.0f, priority %.0f, due within %d day(s).",
			top.Item.Title, top.Item.RiskScore, top.Item.PriorityScore, top.DaysUntilDue))
	}
	if len(ranked) > 1 {
		lines = append(lines, fmt.Sprintf("%q is scheduled next; its blocks are spread out to avoid stacking two heavy deadlines on the same day.",
			ranked[1].Item.Title))
	}
	if req.Behavior.SessionsSkippedLast7d > 0 {
		lines = append(lines, fmt.Sprintf("You skipped %d session(s) in the last 7 days, so early blocks were kept short and a recovery review was scheduled first.",
			req.Behavior.SessionsSkippedLast7d))
	}
	if lateCount > 0 {
		lines = append(lines, fmt.Sprintf("%d block(s) landed after their due date; about %d extra minutes of daily capacity would absorb them.",
			lateCount, lateCount*30))
	}

	if len(lines) == 0 {
		lines = append(lines, "Plan generated successfully with no special adjustments.")
	}
	return lines
}
