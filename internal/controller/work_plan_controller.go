package controller

import (
	"errors"
	"net/http"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// WorkPlanController 处理学习计划相关的API请求
type WorkPlanController struct {
	WorkPlanService *service.WorkPlanService
}

func NewWorkPlanController(workPlanService *service.WorkPlanService) *WorkPlanController {
	return &WorkPlanController{WorkPlanService: workPlanService}
}

// Optimize godoc
// @Summary 生成学习计划
// @Description 根据作业清单、可用时长与行为信号生成逐日学习计划；未内联 workItems 且已登录时自动使用课程作业流
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.WorkPlanOptimizeRequest true "计划生成请求"
// @Success 200 {object} util.Response{data=model.WorkPlanOptimizeResponse} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/work-plan/optimize [post]
func (c *WorkPlanController) Optimize(ctx *gin.Context) {
	var request model.WorkPlanOptimizeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var userID uint
	if user := util.GetUserFromContext(ctx); user != nil {
		userID = user.UserID
	}

	plan, err := c.WorkPlanService.Optimize(ctx.Request.Context(), userID, &request)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, plan)
}

// Latest godoc
// @Summary 获取最近一次生成的计划
// @Description 返回当前用户最近一次生成的学习计划（缓存24小时）
// @Tags 学习计划
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.WorkPlanOptimizeResponse} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "暂无缓存的计划"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/work-plan/latest [get]
func (c *WorkPlanController) Latest(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	plan, err := c.WorkPlanService.LatestPlan(ctx.Request.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, util.ErrPlanNotFound) {
			util.Error(ctx, http.StatusNotFound, "No cached plan; generate one first")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, plan)
}
