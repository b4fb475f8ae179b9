package scheduler

import (
	"math"
	"sort"
	"time"

	"study_planner_backend/internal/model"
)

// Ranker 负责给作业打分排序并做时长校正。
// 不做任何校验，数值范围由上层请求校验保证；now 必须由调用方注入。
type Ranker struct {
	Weights Weights
}

func NewRanker(w Weights) *Ranker {
	return &Ranker{Weights: w}
}

// Rank 输出按 rankScore 降序的列表，同分保持输入顺序
func (r *Ranker) Rank(req *model.WorkPlanOptimizeRequest, now time.Time) []model.RankedItem {
	w := r.Weights
	pace := r.paceMultiplier(req.Pace.PaceLevel)
	recompute := r.recomputeMultiplier(req.Recompute.Trigger)
	drift := req.Behavior.AvgCompletionDriftPct

	ranked := make([]model.RankedItem, 0, len(req.WorkItems))
	for _, item := range req.WorkItems {
		days := daysUntilDue(item.DueAt, now)
		urgency := clampFloat(w.UrgencyBase/float64(days), 0, 100)

		score := w.Priority*item.PriorityScore +
			w.Risk*item.RiskScore +
			w.Complexity*item.ComplexityScore +
			w.GradeWeight*item.GradeWeight +
			w.Urgency*urgency
		if req.Priorities.PreferHighRisk {
			score += w.PreferenceBoost * item.RiskScore
		}
		if req.Priorities.PreferHighWeight {
			score += w.PreferenceBoost * item.GradeWeight
		}
		if req.Priorities.PreferNearDeadline {
			score += w.PreferenceBoost * urgency
		}

		adjusted := int(math.Ceil(float64(item.EstimatedMinutes) * pace * (1 + drift/100) * recompute))
		if adjusted < w.MinAdjustedMinutes {
			adjusted = w.MinAdjustedMinutes
		}

		ranked = append(ranked, model.RankedItem{
			Item:            item,
			AdjustedMinutes: adjusted,
			RankScore:       round2(score),
			DaysUntilDue:    days,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RankScore > ranked[j].RankScore
	})
	return ranked
}

// daysUntilDue 向上取整到自然日并钳到至少1天。
// 已过期或零值的 dueAt 走同一条路径，等价于"现在就到期"。
func daysUntilDue(dueAt, now time.Time) int {
	days := int(math.Ceil(dueAt.Sub(now).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

func (r *Ranker) paceMultiplier(level model.PaceLevel) float64 {
	switch level {
	case model.PaceSlow:
		return r.Weights.PaceSlow
	case model.PaceFast:
		return r.Weights.PaceFast
	default:
		return r.Weights.PaceSteady
	}
}

func (r *Ranker) recomputeMultiplier(trigger model.RecomputeTrigger) float64 {
	switch trigger {
	case model.TriggerSessionSkipped:
		return r.Weights.SessionSkippedMultiplier
	case model.TriggerWorkloadChanged:
		return r.Weights.WorkloadChangedMultiplier
	default:
		return 1.0
	}
}
