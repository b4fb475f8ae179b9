package scheduler

// Weights 汇总排序、时间调整与拆块用到的全部系数。
// 算法本体不写死任何数字，方便单独调优和在配置里覆盖。
type Weights struct {
	// rankScore 的线性权重
	Priority    float64 `mapstructure:"priority"`
	Risk        float64 `mapstructure:"risk"`
	Complexity  float64 `mapstructure:"complexity"`
	GradeWeight float64 `mapstructure:"grade_weight"`
	Urgency     float64 `mapstructure:"urgency"`

	// 用户偏好开关命中时的额外加成系数
	PreferenceBoost float64 `mapstructure:"preference_boost"`

	// urgencyScore = clamp(UrgencyBase/daysUntilDue, 0, 100)
	UrgencyBase float64 `mapstructure:"urgency_base"`

	// 节奏乘数
	PaceSlow   float64 `mapstructure:"pace_slow"`
	PaceSteady float64 `mapstructure:"pace_steady"`
	PaceFast   float64 `mapstructure:"pace_fast"`

	// 重算触发原因对应的时长乘数（initial 恒为 1.0）
	SessionSkippedMultiplier  float64 `mapstructure:"session_skipped_multiplier"`
	WorkloadChangedMultiplier float64 `mapstructure:"workload_changed_multiplier"`

	// 时长下限与拆块参数
	MinAdjustedMinutes  int     `mapstructure:"min_adjusted_minutes"`
	PrepRatio           float64 `mapstructure:"prep_ratio"`
	PrepMinMinutes      int     `mapstructure:"prep_min_minutes"`
	PrepMaxMinutes      int     `mapstructure:"prep_max_minutes"`
	MinExecutionMinutes int     `mapstructure:"min_execution_minutes"`
	MinChunkMinutes     int     `mapstructure:"min_chunk_minutes"`

	// 间隔复习与复盘
	SpacedRepetitionMinutes  int `mapstructure:"spaced_repetition_minutes"`
	SpacedRepetitionLeadDays int `mapstructure:"spaced_repetition_lead_days"`
	ReviewMinutes            int `mapstructure:"review_minutes"`
	RecoveryMinutes          int `mapstructure:"recovery_minutes"`

	// 规划窗口天数范围
	MinPlanningDays int `mapstructure:"min_planning_days"`
	MaxPlanningDays int `mapstructure:"max_planning_days"`
}

func DefaultWeights() Weights {
	return Weights{
		Priority:    0.30,
		Risk:        0.25,
		Complexity:  0.15,
		GradeWeight: 0.15,
		Urgency:     0.15,

		PreferenceBoost: 0.06,
		UrgencyBase:     120,

		PaceSlow:   1.2,
		PaceSteady: 1.0,
		PaceFast:   0.86,

		SessionSkippedMultiplier:  1.1,
		WorkloadChangedMultiplier: 1.06,

		MinAdjustedMinutes:  20,
		PrepRatio:           0.18,
		PrepMinMinutes:      15,
		PrepMaxMinutes:      40,
		MinExecutionMinutes: 20,
		MinChunkMinutes:     25,

		SpacedRepetitionMinutes:  25,
		SpacedRepetitionLeadDays: 4,
		ReviewMinutes:            20,
		RecoveryMinutes:          30,

		MinPlanningDays: 7,
		MaxPlanningDays: 14,
	}
}
