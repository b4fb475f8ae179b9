package controller

import (
	"errors"

	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// WorkItemController 处理作业流相关的API请求
type WorkItemController struct {
	FeedService *service.WorkItemFeedService
}

func NewWorkItemController(feedService *service.WorkItemFeedService) *WorkItemController {
	return &WorkItemController{FeedService: feedService}
}

// SyncWorkItemsRequest 全量同步请求
// swagger:model SyncWorkItemsRequest
type SyncWorkItemsRequest struct {
	Items []service.SyncRequestItem `json:"items" binding:"required"`
}

// Sync godoc
// @Summary 同步作业快照
// @Description 用LMS同步结果全量覆盖当前用户的作业快照，分数字段由上游评估服务给出
// @Tags 作业流
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SyncWorkItemsRequest true "同步请求"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/work-items/sync [put]
func (c *WorkItemController) Sync(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var request SyncWorkItemsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	count, err := c.FeedService.Sync(user.UserID, request.Items)
	if err != nil {
		if errors.Is(err, util.ErrInvalidWorkItem) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"synced": count,
	})
}

// List godoc
// @Summary 获取作业快照列表
// @Description 返回当前用户同步过的全部作业
// @Tags 作业流
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/work-items [get]
func (c *WorkItemController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	items, err := c.FeedService.List(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"items": items,
	})
}
