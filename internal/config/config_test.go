package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"study_planner_backend/internal/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
	return dir
}

func TestLoadConfigDefaultsSchedulerWeights(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: debug
jwt:
  secret: test-secret
  expire_hours: 24
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	// 未配置 scheduler 段时使用默认权重
	assert.Equal(t, scheduler.DefaultWeights(), cfg.Scheduler)
}

func TestLoadConfigSchedulerOverrides(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: debug
jwt:
  secret: test-secret
  expire_hours: 24
scheduler:
  priority: 0.40
  risk: 0.20
  complexity: 0.15
  grade_weight: 0.10
  urgency: 0.15
  preference_boost: 0.05
  urgency_base: 100
  pace_slow: 1.3
  pace_steady: 1.0
  pace_fast: 0.8
  session_skipped_multiplier: 1.15
  workload_changed_multiplier: 1.05
  min_adjusted_minutes: 15
  prep_ratio: 0.2
  prep_min_minutes: 10
  prep_max_minutes: 35
  min_execution_minutes: 15
  min_chunk_minutes: 20
  spaced_repetition_minutes: 30
  spaced_repetition_lead_days: 3
  review_minutes: 15
  recovery_minutes: 25
  min_planning_days: 5
  max_planning_days: 10
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 0.40, cfg.Scheduler.Priority)
	assert.Equal(t, 30, cfg.Scheduler.SpacedRepetitionMinutes)
	assert.Equal(t, 10, cfg.Scheduler.MaxPlanningDays)
}

func TestLoadConfigRejectsWeakSecretInRelease(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: release
jwt:
  secret: short
  expire_hours: 24
`)

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret is too short")
}
