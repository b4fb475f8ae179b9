package scheduler

import (
	"sort"
	"time"

	"study_planner_backend/internal/model"
)

// BlockPlacer 把学习块贪心塞进容量日历。
// 先顺序找第一个"按时且放得下"的日子，找不到再退到剩余容量最大的
// 日子强制放置。刻意的贪心启发式，不追求全局最优。
type BlockPlacer struct{}

func NewBlockPlacer() *BlockPlacer {
	return &BlockPlacer{}
}

// Place 就地修改 days 的剩余容量，返回去掉空天后的日程与迟排块数量
func (p *BlockPlacer) Place(blocks []model.PlannedBlock, days []model.DaySlot, now time.Time) ([]model.DaySlot, int) {
	lateCount := 0
	lastDay := len(days) - 1

	for _, block := range blocks {
		dueIndex := dueDayIndex(now, block.DueAt)

		placed := false
		for i := range days {
			if days[i].RemainingMinutes < block.Minutes {
				continue
			}
			// 只允许放在截止日之前，末日和已超出窗口的截止日是兜底例外
			if i > dueIndex && i != lastDay && dueIndex < lastDay {
				continue
			}
			block.IsLatePlacement = i > dueIndex
			if block.IsLatePlacement {
				lateCount++
			}
			days[i].RemainingMinutes -= block.Minutes
			days[i].Tasks = append(days[i].Tasks, block)
			placed = true
			break
		}

		if !placed {
			// 强制放置：剩余容量最大的那天，并列取最早
			target := 0
			for i := 1; i < len(days); i++ {
				if days[i].RemainingMinutes > days[target].RemainingMinutes {
					target = i
				}
			}
			block.IsLatePlacement = true
			block.Reason += " (forced placement due to capacity limit)"
			remaining := days[target].RemainingMinutes - block.Minutes
			if remaining < 0 {
				remaining = 0
			}
			days[target].RemainingMinutes = remaining
			days[target].Tasks = append(days[target].Tasks, block)
			lateCount++
		}
	}

	plan := make([]model.DaySlot, 0, len(days))
	for _, day := range days {
		if len(day.Tasks) == 0 {
			continue
		}
		total := 0
		for _, task := range day.Tasks {
			total += task.Minutes
		}
		day.TotalMinutes = total
		sort.SliceStable(day.Tasks, func(i, j int) bool {
			return day.Tasks[i].PriorityRank < day.Tasks[j].PriorityRank
		})
		plan = append(plan, day)
	}
	return plan, lateCount
}
