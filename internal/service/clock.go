package service

import "time"

// Clock 对外注入"当前时刻"，计划计算不允许偷读系统时钟，
// 这样相同请求在测试里可以逐字节复现。
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock 测试用，永远返回同一时刻
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time
}
