package scheduler

import (
	"fmt"
	"math"
	"sort"

	"study_planner_backend/internal/model"
)

// BlockBuilder 把排好序的作业拆成带理由的学习块
type BlockBuilder struct {
	Weights Weights
}

func NewBlockBuilder(w Weights) *BlockBuilder {
	return &BlockBuilder{Weights: w}
}

// Build 按排名顺序为每条作业生成 准备/执行/间隔复习/复盘 块。
// 若本次由漏学触发且存在作业，则在最终列表最前面拼接一个恢复复盘块
// （显式构造新列表，不做原地头插）。
func (b *BlockBuilder) Build(ranked []model.RankedItem, req *model.WorkPlanOptimizeRequest) []model.PlannedBlock {
	w := b.Weights
	chunkSize := req.Pace.FocusMinutesPerSession
	if chunkSize < w.MinChunkMinutes {
		chunkSize = w.MinChunkMinutes
	}

	var blocks []model.PlannedBlock
	for idx, r := range ranked {
		rank := idx + 1
		item := r.Item

		// 1. 准备块
		prepMinutes := clampInt(int(math.Round(float64(r.AdjustedMinutes)*w.PrepRatio)), w.PrepMinMinutes, w.PrepMaxMinutes)
		blocks = append(blocks, model.PlannedBlock{
			BlockID:      fmt.Sprintf("%s-prep", item.ID),
			WorkItemID:   item.ID,
			Title:        item.Title,
			Type:         item.Type,
			Mode:         model.BlockPrep,
			Minutes:      prepMinutes,
			DueAt:        item.DueAt,
			PriorityRank: rank,
			Reason:       fmt.Sprintf("Kick-off prep for %q: review requirements and gather materials (due in %d day(s))", item.Title, r.DaysUntilDue),
		})

		// 2. 执行块，按专注时长切片，末块可短于切片长度
		executionMinutes := r.AdjustedMinutes - prepMinutes
		if executionMinutes < w.MinExecutionMinutes {
			executionMinutes = w.MinExecutionMinutes
		}
		chunkCount := (executionMinutes + chunkSize - 1) / chunkSize
		remaining := executionMinutes
		for n := 1; remaining > 0; n++ {
			minutes := chunkSize
			if remaining < minutes {
				minutes = remaining
			}
			blocks = append(blocks, model.PlannedBlock{
				BlockID:      fmt.Sprintf("%s-exec-%d", item.ID, n),
				WorkItemID:   item.ID,
				Title:        item.Title,
				Type:         item.Type,
				Mode:         model.BlockExecution,
				Minutes:      minutes,
				DueAt:        item.DueAt,
				PriorityRank: rank,
				Reason:       fmt.Sprintf("Focused work session %d of %d on %q", n, chunkCount, item.Title),
			})
			remaining -= minutes
		}

		// 3. 测验/考试加间隔复习
		if item.Type == model.ItemQuiz || item.Type == model.ItemTest {
			repetitions := 1
			if r.DaysUntilDue >= w.SpacedRepetitionLeadDays {
				repetitions = 2
			}
			for n := 1; n <= repetitions; n++ {
				blocks = append(blocks, model.PlannedBlock{
					BlockID:      fmt.Sprintf("%s-sr-%d", item.ID, n),
					WorkItemID:   item.ID,
					Title:        item.Title,
					Type:         item.Type,
					Mode:         model.BlockSpacedRepetition,
					Minutes:      w.SpacedRepetitionMinutes,
					DueAt:        item.DueAt,
					PriorityRank: rank,
					Reason:       fmt.Sprintf("Spaced recall practice for the upcoming %s %q", item.Type, item.Title),
				})
			}
		}

		// 4. 讨论课加一个复盘块
		if item.Type == model.ItemDiscussion {
			blocks = append(blocks, model.PlannedBlock{
				BlockID:      fmt.Sprintf("%s-review", item.ID),
				WorkItemID:   item.ID,
				Title:        item.Title,
				Type:         item.Type,
				Mode:         model.BlockReview,
				Minutes:      w.ReviewMinutes,
				DueAt:        item.DueAt,
				PriorityRank: rank,
				Reason:       fmt.Sprintf("Review thread and draft your response for %q", item.Title),
			})
		}
	}

	if req.Recompute.Trigger == model.TriggerSessionSkipped && len(ranked) > 0 {
		top := ranked[0].Item
		recovery := model.PlannedBlock{
			BlockID:      fmt.Sprintf("%s-recovery", top.ID),
			WorkItemID:   top.ID,
			Title:        top.Title,
			Type:         top.Type,
			Mode:         model.BlockReview,
			Minutes:      b.Weights.RecoveryMinutes,
			DueAt:        top.DueAt,
			PriorityRank: 1,
			Reason:       fmt.Sprintf("Recovery review after a skipped session: re-anchor progress on %q", top.Title),
		}
		blocks = append([]model.PlannedBlock{recovery}, blocks...)
	}

	sortBlocks(blocks)
	return blocks
}

// sortBlocks 稳定排序：优先级升序，同级按截止时间升序
func sortBlocks(blocks []model.PlannedBlock) {
	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].PriorityRank != blocks[j].PriorityRank {
			return blocks[i].PriorityRank < blocks[j].PriorityRank
		}
		return blocks[i].DueAt.Before(blocks[j].DueAt)
	})
}
