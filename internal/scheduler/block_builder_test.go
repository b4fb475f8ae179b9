package scheduler

import (
	"testing"

	"study_planner_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBlocks(t *testing.T, req *model.WorkPlanOptimizeRequest) []model.PlannedBlock {
	t.Helper()
	w := DefaultWeights()
	ranked := NewRanker(w).Rank(req, testNow)
	return NewBlockBuilder(w).Build(ranked, req)
}

func blocksByMode(blocks []model.PlannedBlock, mode model.BlockMode) []model.PlannedBlock {
	var out []model.PlannedBlock
	for _, b := range blocks {
		if b.Mode == mode {
			out = append(out, b)
		}
	}
	return out
}

func TestBuildAssignmentDecomposition(t *testing.T) {
	req := newRequest(item("hw1", model.ItemAssignment, 5, 120, 50))
	blocks := buildBlocks(t, req)

	preps := blocksByMode(blocks, model.BlockPrep)
	require.Len(t, preps, 1)
	// prep = clamp(round(120*0.18), 15, 40) = 22
	assert.Equal(t, 22, preps[0].Minutes)
	assert.GreaterOrEqual(t, preps[0].Minutes, 15)
	assert.LessOrEqual(t, preps[0].Minutes, 40)

	execs := blocksByMode(blocks, model.BlockExecution)
	total := 0
	for _, e := range execs {
		assert.LessOrEqual(t, e.Minutes, 45) // 默认专注时长
		total += e.Minutes
	}
	assert.Equal(t, 120-preps[0].Minutes, total)

	assert.Empty(t, blocksByMode(blocks, model.BlockSpacedRepetition))
	assert.Empty(t, blocksByMode(blocks, model.BlockReview))
}

func TestBuildExecutionChunking(t *testing.T) {
	req := newRequest(item("hw1", model.ItemAssignment, 5, 120, 50))
	req.Pace.FocusMinutesPerSession = 45
	blocks := buildBlocks(t, req)

	execs := blocksByMode(blocks, model.BlockExecution)
	// 98 分钟按 45 切成 45+45+8
	require.Len(t, execs, 3)
	assert.Equal(t, 45, execs[0].Minutes)
	assert.Equal(t, 45, execs[1].Minutes)
	assert.Equal(t, 8, execs[2].Minutes)
}

func TestBuildChunkSizeFloor(t *testing.T) {
	req := newRequest(item("hw1", model.ItemAssignment, 5, 100, 50))
	req.Pace.FocusMinutesPerSession = 10 // 低于下限，按 25 切

	execs := blocksByMode(buildBlocks(t, req), model.BlockExecution)
	for _, e := range execs {
		assert.LessOrEqual(t, e.Minutes, 25)
	}
}

func TestBuildSpacedRepetitionCounts(t *testing.T) {
	cases := []struct {
		name     string
		itemType model.WorkItemType
		dueDays  int
		expected int
	}{
		{"quiz far out", model.ItemQuiz, 6, 2},
		{"quiz at lead boundary", model.ItemQuiz, 4, 2},
		{"quiz imminent", model.ItemQuiz, 2, 1},
		{"test imminent", model.ItemTest, 3, 1},
		{"assignment never", model.ItemAssignment, 6, 0},
		{"reading never", model.ItemReading, 6, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := newRequest(item("x", tc.itemType, tc.dueDays, 60, 50))
			spaced := blocksByMode(buildBlocks(t, req), model.BlockSpacedRepetition)
			require.Len(t, spaced, tc.expected)
			for _, b := range spaced {
				assert.Equal(t, 25, b.Minutes)
			}
		})
	}
}

func TestBuildDiscussionReview(t *testing.T) {
	req := newRequest(item("d1", model.ItemDiscussion, 3, 60, 50))
	reviews := blocksByMode(buildBlocks(t, req), model.BlockReview)

	require.Len(t, reviews, 1)
	assert.Equal(t, 20, reviews[0].Minutes)
}

func TestBuildRecoveryBlockOnSkippedSession(t *testing.T) {
	top := item("big", model.ItemAssignment, 3, 120, 90)
	other := item("small", model.ItemAssignment, 5, 60, 20)
	req := newRequest(top, other)
	req.Recompute.Trigger = model.TriggerSessionSkipped

	blocks := buildBlocks(t, req)
	require.NotEmpty(t, blocks)

	first := blocks[0]
	assert.Equal(t, model.BlockReview, first.Mode)
	assert.Equal(t, 30, first.Minutes)
	assert.Equal(t, "big", first.WorkItemID)
	assert.Equal(t, 1, first.PriorityRank)
	assert.Contains(t, first.Reason, "Recovery")
}

func TestBuildNoRecoveryBlockWithoutItems(t *testing.T) {
	req := newRequest()
	req.Recompute.Trigger = model.TriggerSessionSkipped

	assert.Empty(t, buildBlocks(t, req))
}

func TestBuildBlocksOrderedByRankThenDue(t *testing.T) {
	urgent := item("urgent", model.ItemAssignment, 2, 60, 90)
	later := item("later", model.ItemAssignment, 6, 60, 30)
	blocks := buildBlocks(t, newRequest(later, urgent))

	lastRank := 0
	for _, b := range blocks {
		assert.GreaterOrEqual(t, b.PriorityRank, lastRank)
		lastRank = b.PriorityRank
	}
	assert.Equal(t, "urgent", blocks[0].WorkItemID)
}
