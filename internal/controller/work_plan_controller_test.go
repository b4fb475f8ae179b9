package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/scheduler"
	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"
	"study_planner_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testClock = service.FixedClock{Time: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}

func setupRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	svc := service.NewWorkPlanService(nil, nil, testClock, scheduler.DefaultWeights())
	ctrl := NewWorkPlanController(svc)

	r := gin.New()
	if userID != 0 {
		r.Use(func(c *gin.Context) {
			c.Set("user", &util.Claims{UserID: userID, Email: "student@example.com"})
		})
	}
	r.POST("/api/work-plan/optimize", ctrl.Optimize)
	r.GET("/api/work-plan/latest", ctrl.Latest)
	return r
}

func TestOptimizeEndpointReturnsPlan(t *testing.T) {
	r := setupRouter(0)

	body := map[string]interface{}{
		"workItems": []map[string]interface{}{
			{
				"id":               "hw1",
				"title":            "Problem set 4",
				"type":             "assignment",
				"dueAt":            "2025-03-15T09:00:00Z",
				"estimatedMinutes": 120,
				"complexityScore":  50,
				"riskScore":        50,
				"priorityScore":    50,
				"gradeWeight":      50,
			},
		},
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/work-plan/optimize", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Code    int                            `json:"code"`
		Message string                         `json:"message"`
		Data    model.WorkPlanOptimizeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, http.StatusOK, envelope.Code)
	assert.Equal(t, "success", envelope.Message)
	assert.Equal(t, "hw1", envelope.Data.NextBestAction.WorkItemID)
	assert.NotEmpty(t, envelope.Data.DailyPlan)
	assert.NotEmpty(t, envelope.Data.Explanations)
}

func TestOptimizeEndpointRejectsMalformedJSON(t *testing.T) {
	r := setupRouter(0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/work-plan/optimize", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOptimizeEndpointEmptyBodyStillPlans(t *testing.T) {
	r := setupRouter(0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/work-plan/optimize", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data model.WorkPlanOptimizeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Empty(t, envelope.Data.DailyPlan)
	assert.Equal(t, "No work items to plan", envelope.Data.NextBestAction.Title)
}

func TestLatestEndpointRequiresUser(t *testing.T) {
	r := setupRouter(0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/work-plan/latest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLatestEndpointWithoutCacheBackend(t *testing.T) {
	r := setupRouter(7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/work-plan/latest", nil)
	r.ServeHTTP(w, req)

	// 缓存后端不可用走内部错误，而不是 404
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
