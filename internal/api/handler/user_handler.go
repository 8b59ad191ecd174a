package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/campus-social/internal/api/middleware"
	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/service"
	"github.com/d60-Lab/campus-social/pkg/response"
)

type profileRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=32"`
	LastName  *string `json:"last_name" binding:"omitempty,max=32"`
	Email     *string `json:"email" binding:"omitempty,campus_email"`
	TagLine   *string `json:"tag_line" binding:"omitempty,max=50"`
	Bio       *string `json:"bio" binding:"omitempty,max=200"`
}

type profilePictureRequest struct {
	Base64Image string `json:"base64_image" binding:"required"`
}

type reportRequest struct {
	ReportType string `json:"report_type" binding:"required"`
	TargetID   uint   `json:"target_id" binding:"required"`
	Reason     string `json:"reason"`
	ReasonID   *int   `json:"reason_id"`
}

// UserInfo 查看用户资料，附带是否已关注
// @Summary 用户资料
// @Tags 用户
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=model.UserInfoView}
// @Failure 404 {object} response.Response
// @Router /api/v1/user/info/{id} [get]
func (h *Handler) UserInfo(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	view, err := h.userService.Profile(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, view)
}

// MyProfile 当前登录用户的资料
// @Summary 我的资料
// @Tags 用户
// @Success 200 {object} response.Response{data=model.UserInfoView}
// @Router /api/v1/user/profile [get]
func (h *Handler) MyProfile(c *gin.Context) {
	me := middleware.CurrentUser(c)
	view, err := h.userService.Profile(c.Request.Context(), me, me.ID)
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, view)
}

// UpdateProfile 只修改请求中出现的字段
// @Summary 修改资料
// @Tags 用户
// @Accept json
// @Param request body profileRequest true "资料"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/user/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	_, err := h.userService.UpdateProfile(c.Request.Context(), middleware.CurrentUser(c), service.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		TagLine:   req.TagLine,
		Bio:       req.Bio,
		Email:     req.Email,
	})
	if err != nil {
		actionError(c, err)
		return
	}
	response.Action(c, true, "User profile has been updated successfully!")
}

// UploadProfilePicture 上传 base64 头像（png/jpeg/gif/webp，2MiB 内）
// @Summary 上传头像
// @Tags 用户
// @Accept json
// @Param request body profilePictureRequest true "base64 图片，可带 data URL 前缀"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/user/profile_picture [patch]
func (h *Handler) UploadProfilePicture(c *gin.Context) {
	var req profilePictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.userService.UploadProfilePicture(c.Request.Context(), middleware.CurrentUser(c), req.Base64Image); err != nil {
		actionError(c, err)
		return
	}
	response.Action(c, true, "Profile picture has been updated successfully!")
}

// ProfilePicture 当前用户头像
// @Summary 获取头像
// @Tags 用户
// @Success 200 {object} response.Response{data=profilePictureRequest}
// @Router /api/v1/user/profile_picture [get]
func (h *Handler) ProfilePicture(c *gin.Context) {
	img, err := h.userService.ProfilePicture(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, profilePictureRequest{Base64Image: img})
}

// SearchUsers 按姓名模糊搜索，忽略空格与句点
// @Summary 搜索用户
// @Tags 用户
// @Param query query string true "关键字"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=model.Page[model.UserSummary]}
// @Router /api/v1/user/search [get]
func (h *Handler) SearchUsers(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := h.userService.Search(c.Request.Context(), c.Query("query"), page, pageSize)
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, result)
}

// Report 举报用户、帖子或评论
// @Summary 举报
// @Tags 用户
// @Accept json
// @Param request body reportRequest true "举报内容；reason 与 reason_id 二选一"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/user/report [post]
func (h *Handler) Report(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	_, err := h.reportService.Report(c.Request.Context(), middleware.CurrentUser(c), service.ReportInput{
		Target:   model.ReportTarget{Type: model.ReportType(req.ReportType), ID: req.TargetID},
		Reason:   req.Reason,
		ReasonID: req.ReasonID,
	})
	if err != nil {
		actionError(c, err)
		return
	}
	response.Action(c, true, "Report has been submitted successfully!")
}
