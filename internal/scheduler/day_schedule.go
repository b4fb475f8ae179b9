package scheduler

import (
	"time"

	"study_planner_backend/internal/model"
)

// DayScheduleBuilder 生成覆盖规划窗口的空容量日历
type DayScheduleBuilder struct {
	Weights Weights
}

func NewDayScheduleBuilder(w Weights) *DayScheduleBuilder {
	return &DayScheduleBuilder{Weights: w}
}

// Build 从 now 当天零点起生成 planningDays 个空槽位。
// 窗口 = clamp(max(最远截止天数+1, 7), 7, 14)；没有作业时固定7天。
func (d *DayScheduleBuilder) Build(now time.Time, ranked []model.RankedItem, availability *model.AvailabilityInput, behavior *model.BehaviorInput) []model.DaySlot {
	w := d.Weights

	planningDays := w.MinPlanningDays
	if len(ranked) > 0 {
		maxDays := 0
		for _, r := range ranked {
			if r.DaysUntilDue > maxDays {
				maxDays = r.DaysUntilDue
			}
		}
		planningDays = clampInt(maxDays+1, w.MinPlanningDays, w.MaxPlanningDays)
	}

	start := startOfDay(now)
	days := make([]model.DaySlot, 0, planningDays)
	for i := 0; i < planningDays; i++ {
		day := start.AddDate(0, 0, i)
		dayKey := int(day.Weekday()) // 周日=0 ... 周六=6

		capacity := availability.WeekdayMinutes
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			capacity = availability.WeekendMinutes
		}
		if override, ok := availability.DayOverrides[dayKey]; ok {
			capacity = override
		}
		if capacity < 0 {
			capacity = 0
		}

		days = append(days, model.DaySlot{
			Date:             day.Format("2006-01-02"),
			FocusWindow:      behavior.PreferredTimeOfDay,
			CapacityMinutes:  capacity,
			RemainingMinutes: capacity,
			Tasks:            []model.PlannedBlock{},
		})
	}
	return days
}
