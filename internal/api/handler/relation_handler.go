package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/campus-social/internal/api/middleware"
	"github.com/d60-Lab/campus-social/pkg/response"
)

type countResponse struct {
	Count int64 `json:"count"`
}

// Follow 关注用户
// @Summary 关注用户
// @Tags 关系链
// @Produce json
// @Param id path int true "被关注用户ID"
// @Success 200 {object} response.ActionResponse
// @Failure 400 {object} response.Response
// @Router /api/v1/user/follow/{id} [post]
func (h *Handler) Follow(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.relService.Follow(c.Request.Context(), middleware.CurrentUser(c).ID, id); err != nil {
		actionError(c, err)
		return
	}
	response.Action(c, true, "You are now following this user.")
}

// Unfollow 取消关注；未关注时同样返回成功
// @Summary 取消关注
// @Tags 关系链
// @Produce json
// @Param id path int true "被关注用户ID"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/user/unfollow/{id} [delete]
func (h *Handler) Unfollow(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.relService.Unfollow(c.Request.Context(), middleware.CurrentUser(c).ID, id); err != nil {
		actionError(c, err)
		return
	}
	response.Action(c, true, "You have unfollowed this user.")
}

// ListFollowings 查询某用户关注的人
// @Summary 查询关注列表
// @Tags 关系链
// @Param id path int true "用户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=model.Page[model.UserSummary]}
// @Router /api/v1/user/followings/{id} [get]
func (h *Handler) ListFollowings(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := pageParams(c)
	list, err := h.relService.ListFollowings(c.Request.Context(), id, page, pageSize)
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, list)
}

// ListFollowers 查询某用户的粉丝
// @Summary 查询粉丝列表
// @Tags 关系链
// @Param id path int true "用户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=model.Page[model.UserSummary]}
// @Router /api/v1/user/followers/{id} [get]
func (h *Handler) ListFollowers(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := pageParams(c)
	list, err := h.relService.ListFollowers(c.Request.Context(), id, page, pageSize)
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, list)
}

// CountFollowers 粉丝数
// @Summary 粉丝数
// @Tags 关系链
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=countResponse}
// @Router /api/v1/user/count/followers/{id} [get]
func (h *Handler) CountFollowers(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	n, err := h.relService.CountFollowers(c.Request.Context(), id)
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, countResponse{Count: n})
}

// CountFollowings 关注数
// @Summary 关注数
// @Tags 关系链
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=countResponse}
// @Router /api/v1/user/count/followings/{id} [get]
func (h *Handler) CountFollowings(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	n, err := h.relService.CountFollowings(c.Request.Context(), id)
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, countResponse{Count: n})
}
