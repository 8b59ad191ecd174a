package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/campus-social/internal/api/middleware"
	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/service"
	"github.com/d60-Lab/campus-social/pkg/response"
)

type adminDeleteRequest struct {
	TargetID uint `json:"target_id" binding:"required"`
}

// AdminDeleteUser 删除用户及其全部关联数据
// @Summary 管理员删除用户
// @Tags 管理
// @Accept json
// @Param request body adminDeleteRequest true "用户ID"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/admin/delete_user [post]
func (h *Handler) AdminDeleteUser(c *gin.Context) {
	var req adminDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.adminService.DeleteUser(c.Request.Context(), middleware.CurrentUser(c), req.TargetID)
	if err != nil {
		actionError(c, err, errMessage{service.ErrForbidden, "Administrator accounts cannot be deleted."})
		return
	}
	response.Action(c, true, "User and related posts have been successfully deleted.")
}

// AdminDeletePost 删除任意帖子
// @Summary 管理员删除帖子
// @Tags 管理
// @Accept json
// @Param request body adminDeleteRequest true "帖子ID"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/admin/delete_post [post]
func (h *Handler) AdminDeletePost(c *gin.Context) {
	var req adminDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.adminService.DeletePost(c.Request.Context(), middleware.CurrentUser(c), req.TargetID)
	if err != nil {
		actionError(c, err, errMessage{service.ErrPostNotFound, "Post could not be found."})
		return
	}
	response.Action(c, true, "Post has been successfully deleted.")
}

func (h *Handler) listReports(c *gin.Context, t model.ReportType) {
	list, err := h.reportService.List(c.Request.Context(), t)
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, list)
}

// UserReports 被举报用户
// @Summary 用户举报列表
// @Tags 管理
// @Success 200 {object} response.Response{data=[]model.ReportView}
// @Router /api/v1/admin/reports/users [get]
func (h *Handler) UserReports(c *gin.Context) { h.listReports(c, model.ReportedUser) }

// PostReports 被举报帖子
// @Summary 帖子举报列表
// @Tags 管理
// @Success 200 {object} response.Response{data=[]model.ReportView}
// @Router /api/v1/admin/reports/posts [get]
func (h *Handler) PostReports(c *gin.Context) { h.listReports(c, model.ReportedPost) }

// CommentReports 被举报评论
// @Summary 评论举报列表
// @Tags 管理
// @Success 200 {object} response.Response{data=[]model.ReportView}
// @Router /api/v1/admin/reports/comments [get]
func (h *Handler) CommentReports(c *gin.Context) { h.listReports(c, model.ReportedComment) }
