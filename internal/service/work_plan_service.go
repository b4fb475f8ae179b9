package service

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/scheduler"
	"study_planner_backend/internal/util"
	"study_planner_backend/pkg/monitoring"
	"study_planner_backend/pkg/tracing"

	"github.com/go-redis/redis/v8"
)

const (
	planCacheKeyPrefix = "workplan:latest:"
	planCacheTTL       = 24 * time.Hour
)

// WorkPlanService 编排一次计划生成：补缺省值、必要时从作业流拉取
// 条目、调用纯计算核心、上报指标并缓存最新结果。
// 核心本身无状态，这里只负责周边资源。
type WorkPlanService struct {
	Feed  *WorkItemFeedService
	Redis *redis.Client
	Clock Clock

	mu     sync.RWMutex
	engine *scheduler.Scheduler
}

func NewWorkPlanService(feed *WorkItemFeedService, rdb *redis.Client, clock Clock, weights scheduler.Weights) *WorkPlanService {
	return &WorkPlanService{
		Feed:   feed,
		Redis:  rdb,
		Clock:  clock,
		engine: scheduler.New(weights),
	}
}

// UpdateWeights 配置热更新入口，只影响之后的请求
func (s *WorkPlanService) UpdateWeights(weights scheduler.Weights) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine = scheduler.New(weights)
}

func (s *WorkPlanService) currentEngine() *scheduler.Scheduler {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// Optimize 生成一份学习计划。userID 为 0 表示匿名调用，
// 此时 workItems 必须内联在请求里。
func (s *WorkPlanService) Optimize(ctx context.Context, userID uint, req *model.WorkPlanOptimizeRequest) (*model.WorkPlanOptimizeResponse, error) {
	req.ApplyDefaults()
	now := s.Clock.Now()

	ctx, span := tracing.StartPlanSpan(ctx, string(req.Recompute.Trigger))
	defer span.End()

	if len(req.WorkItems) == 0 && userID != 0 && s.Feed != nil {
		inputs, err := s.Feed.BuildInputs(userID, now)
		if err != nil {
			return nil, err
		}
		req.WorkItems = inputs
	}

	start := time.Now()
	resp := s.currentEngine().BuildPlan(req, now)
	monitoring.PlanDuration.Observe(time.Since(start).Seconds())
	monitoring.PlansGenerated.WithLabelValues(string(req.Recompute.Trigger)).Inc()

	late := 0
	for _, day := range resp.DailyPlan {
		for _, task := range day.Tasks {
			if task.IsLatePlacement {
				late++
			}
		}
	}
	if late > 0 {
		monitoring.LateBlocks.Add(float64(late))
	}

	if userID != 0 {
		s.cachePlan(ctx, userID, resp)
	}
	return resp, nil
}

// LatestPlan 返回该用户最近一次生成的计划（仅缓存，过期即无）
func (s *WorkPlanService) LatestPlan(ctx context.Context, userID uint) (*model.WorkPlanOptimizeResponse, error) {
	if s.Redis == nil {
		return nil, util.ErrCacheUnavailable
	}

	val, err := s.Redis.Get(ctx, planCacheKey(userID)).Result()
	if err == redis.Nil {
		return nil, util.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	var resp model.WorkPlanOptimizeResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// cachePlan 缓存失败只影响 latest 查询，不影响本次响应，吞掉错误
func (s *WorkPlanService) cachePlan(ctx context.Context, userID uint, resp *model.WorkPlanOptimizeResponse) {
	if s.Redis == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	s.Redis.Set(ctx, planCacheKey(userID), payload, planCacheTTL)
}

func planCacheKey(userID uint) string {
	return planCacheKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}
