// Package scheduler 实现学习计划的核心算法：多因子排序、任务拆块、
// 容量日历与贪心放置。整个包是纯计算，不读系统时钟、不做任何IO，
// 相同输入加相同 now 必然产出相同计划。
package scheduler

import (
	"fmt"
	"time"

	"study_planner_backend/internal/model"
)

type Scheduler struct {
	weights   Weights
	ranker    *Ranker
	builder   *BlockBuilder
	calendar  *DayScheduleBuilder
	placer    *BlockPlacer
	explainer *Explainer
}

func New(w Weights) *Scheduler {
	return &Scheduler{
		weights:   w,
		ranker:    NewRanker(w),
		builder:   NewBlockBuilder(w),
		calendar:  NewDayScheduleBuilder(w),
		placer:    NewBlockPlacer(),
		explainer: NewExplainer(),
	}
}

// BuildPlan 顺序执行 排序 -> 拆块 -> 建日历 -> 放置 -> 解释，组装完整响应
func (s *Scheduler) BuildPlan(req *model.WorkPlanOptimizeRequest, now time.Time) *model.WorkPlanOptimizeResponse {
	req.ApplyDefaults()

	ranked := s.ranker.Rank(req, now)
	blocks := s.builder.Build(ranked, req)
	days := s.calendar.Build(now, ranked, req.Availability, req.Behavior)
	planningDays := len(days)
	plan, lateCount := s.placer.Place(blocks, days, now)

	totalEstimated := 0
	for _, r := range ranked {
		totalEstimated += r.AdjustedMinutes
	}
	totalScheduled := 0
	for _, day := range plan {
		totalScheduled += day.TotalMinutes
	}
	spacedBlocks := 0
	for _, b := range blocks {
		if b.Mode == model.BlockSpacedRepetition {
			spacedBlocks++
		}
	}

	return &model.WorkPlanOptimizeResponse{
		GeneratedAt: now,
		Summary: model.PlanSummary{
			TotalEstimatedHours:    round2(float64(totalEstimated) / 60),
			TotalScheduledHours:    round2(float64(totalScheduled) / 60),
			DaysPlanned:            planningDays,
			Recomputed:             req.Recompute.Trigger != model.TriggerInitial,
			SpacedRepetitionBlocks: spacedBlocks,
		},
		NextBestAction: s.nextBestAction(req, ranked),
		Adjustments:    s.explainer.Adjustments(req, lateCount),
		Explanations:   s.explainer.Explanations(req, ranked, lateCount),
		DailyPlan:      plan,
	}
}

// nextBestAction 推荐今天最值得开始的一项
func (s *Scheduler) nextBestAction(req *model.WorkPlanOptimizeRequest, ranked []model.RankedItem) model.NextBestAction {
	if len(ranked) == 0 {
		return model.NextBestAction{
			Title:  "No work items to plan",
			Reason: "Add assignments or sync your course feed to generate a schedule.",
		}
	}

	top := ranked[0]
	recommended := req.Pace.FocusMinutesPerSession
	if recommended < 30 {
		recommended = 30
	}
	if recommended > top.AdjustedMinutes {
		recommended = top.AdjustedMinutes
	}
	return model.NextBestAction{
		WorkItemID:              top.Item.ID,
		Title:                   top.Item.Title,
		RecommendedTodayMinutes: recommended,
		Reason:                  fmt.Sprintf("Highest ranked item (score %.2f), due within %d day(s).", top.RankScore, top.DaysUntilDue),
	}
}
