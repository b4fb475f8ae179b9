package scheduler

import (
	"encoding/json"
	"fmt"
	"testing"

	"study_planner_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countBlocks(resp *model.WorkPlanOptimizeResponse, mode model.BlockMode) int {
	n := 0
	for _, day := range resp.DailyPlan {
		for _, task := range day.Tasks {
			if task.Mode == mode {
				n++
			}
		}
	}
	return n
}

func scheduledMinutes(resp *model.WorkPlanOptimizeResponse) int {
	total := 0
	for _, day := range resp.DailyPlan {
		total += day.TotalMinutes
	}
	return total
}

// 场景A：单个作业，默认节奏与可用时长
func TestBuildPlanSingleAssignment(t *testing.T) {
	req := newRequest(item("hw1", model.ItemAssignment, 5, 120, 50))
	resp := New(DefaultWeights()).BuildPlan(req, testNow)

	assert.Equal(t, 1, countBlocks(resp, model.BlockPrep))
	assert.Zero(t, countBlocks(resp, model.BlockSpacedRepetition))
	assert.Zero(t, countBlocks(resp, model.BlockReview))

	prepMinutes := 0
	execMinutes := 0
	for _, day := range resp.DailyPlan {
		for _, task := range day.Tasks {
			switch task.Mode {
			case model.BlockPrep:
				prepMinutes = task.Minutes
			case model.BlockExecution:
				execMinutes += task.Minutes
			}
		}
	}
	assert.GreaterOrEqual(t, prepMinutes, 15)
	assert.LessOrEqual(t, prepMinutes, 40)
	assert.Equal(t, 120-prepMinutes, execMinutes)

	assert.Equal(t, "hw1", resp.NextBestAction.WorkItemID)
	assert.Equal(t, 45, resp.NextBestAction.RecommendedTodayMinutes)
	assert.Equal(t, 7, resp.Summary.DaysPlanned)
	assert.False(t, resp.Summary.Recomputed)
}

// 场景B：测验在6天后，应有2个25分钟间隔复习块
func TestBuildPlanQuizSpacedRepetition(t *testing.T) {
	req := newRequest(item("q1", model.ItemQuiz, 6, 60, 50))
	resp := New(DefaultWeights()).BuildPlan(req, testNow)

	spaced := 0
	for _, day := range resp.DailyPlan {
		for _, task := range day.Tasks {
			if task.Mode == model.BlockSpacedRepetition {
				spaced++
				assert.Equal(t, 25, task.Minutes)
			}
		}
	}
	assert.Equal(t, 2, spaced)
	assert.Equal(t, 2, resp.Summary.SpacedRepetitionBlocks)
}

// 场景C：全零容量，所有块强制放置，capacity 提示数量等于总块数
func TestBuildPlanZeroCapacity(t *testing.T) {
	req := newRequest(
		item("hw1", model.ItemAssignment, 3, 90, 60),
		item("q1", model.ItemQuiz, 5, 60, 50),
	)
	req.Availability.WeekdayMinutes = 0
	req.Availability.WeekendMinutes = 0

	resp := New(DefaultWeights()).BuildPlan(req, testNow)

	totalBlocks := 0
	for _, day := range resp.DailyPlan {
		for _, task := range day.Tasks {
			totalBlocks++
			assert.True(t, task.IsLatePlacement)
			assert.Contains(t, task.Reason, "forced placement")
		}
	}
	require.Positive(t, totalBlocks)

	var capacityNotice *model.Adjustment
	for i := range resp.Adjustments {
		if resp.Adjustments[i].Kind == model.AdjustCapacity {
			capacityNotice = &resp.Adjustments[i]
		}
	}
	require.NotNil(t, capacityNotice)
	assert.Contains(t, capacityNotice.Message, "did not fit")
	assert.Contains(t, capacityNotice.Message, fmt.Sprintf("%d block(s)", totalBlocks))
}

func TestBuildPlanConservation(t *testing.T) {
	req := newRequest(
		item("a", model.ItemAssignment, 2, 120, 70),
		item("b", model.ItemQuiz, 6, 45, 50),
		item("c", model.ItemDiscussion, 4, 30, 40),
		item("d", model.ItemProject, 9, 300, 60),
	)
	resp := New(DefaultWeights()).BuildPlan(req, testNow)

	blockTotal := 0
	for _, day := range resp.DailyPlan {
		for _, task := range day.Tasks {
			blockTotal += task.Minutes
		}
	}
	assert.Equal(t, blockTotal, scheduledMinutes(resp))
	assert.Positive(t, blockTotal)
}

func TestBuildPlanEmptyItems(t *testing.T) {
	resp := New(DefaultWeights()).BuildPlan(newRequest(), testNow)

	assert.Empty(t, resp.DailyPlan)
	assert.Zero(t, resp.Summary.TotalEstimatedHours)
	assert.Zero(t, resp.Summary.TotalScheduledHours)
	assert.Equal(t, 7, resp.Summary.DaysPlanned)
	assert.Empty(t, resp.NextBestAction.WorkItemID)
	assert.Equal(t, "No work items to plan", resp.NextBestAction.Title)

	require.Len(t, resp.Adjustments, 1)
	assert.Equal(t, model.AdjustBehavior, resp.Adjustments[0].Kind)
	assert.Contains(t, resp.Adjustments[0].Message, "stable")
	require.Len(t, resp.Explanations, 1)
}

func TestBuildPlanDeterminism(t *testing.T) {
	build := func() []byte {
		req := newRequest(
			item("a", model.ItemAssignment, 2, 120, 70),
			item("b", model.ItemQuiz, 6, 45, 50),
		)
		req.Behavior.AvgCompletionDriftPct = 15
		resp := New(DefaultWeights()).BuildPlan(req, testNow)
		payload, err := json.Marshal(resp)
		require.NoError(t, err)
		return payload
	}

	assert.Equal(t, build(), build())
}

func TestBuildPlanRecomputedFlagAndRecovery(t *testing.T) {
	req := newRequest(item("a", model.ItemAssignment, 3, 120, 70))
	req.Recompute.Trigger = model.TriggerSessionSkipped

	resp := New(DefaultWeights()).BuildPlan(req, testNow)
	assert.True(t, resp.Summary.Recomputed)
	assert.Equal(t, 1, countBlocks(resp, model.BlockReview)) // 恢复复盘块

	foundBehavior := false
	for _, adj := range resp.Adjustments {
		if adj.Kind == model.AdjustBehavior {
			foundBehavior = true
			assert.Contains(t, adj.Message, "Recovery rebalance")
		}
	}
	assert.True(t, foundBehavior)
}

func TestBuildPlanRecommendedMinutesCappedByAdjusted(t *testing.T) {
	req := newRequest(item("short", model.ItemReading, 3, 25, 50))
	resp := New(DefaultWeights()).BuildPlan(req, testNow)

	// 推荐时长不超过校正后的总时长
	assert.Equal(t, 25, resp.NextBestAction.RecommendedTodayMinutes)
}
