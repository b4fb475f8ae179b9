package scheduler

import (
	"math"
	"time"
)

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dueDayIndex 计算截止日期落在日历第几天，过期或缺失的截止时间按第0天处理。
// 用 Round 抵消夏令时带来的 23/25 小时天。
func dueDayIndex(now, due time.Time) int {
	diff := int(math.Round(startOfDay(due).Sub(startOfDay(now)).Hours() / 24))
	if diff < 0 {
		return 0
	}
	return diff
}
