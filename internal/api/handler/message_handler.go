package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/campus-social/internal/api/middleware"
	"github.com/d60-Lab/campus-social/internal/service"
	"github.com/d60-Lab/campus-social/pkg/response"
)

type messageRequest struct {
	Content string `json:"content" binding:"required"`
}

type createGroupRequest struct {
	Name string `json:"name"`
}

func limitParam(c *gin.Context) int {
	n, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	return n
}

// SendDirectMessage 私信
// @Summary 发送私信
// @Tags 消息
// @Accept json
// @Param id path int true "接收者ID"
// @Param request body messageRequest true "内容"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/message/user/{id} [post]
func (h *Handler) SendDirectMessage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if _, err := h.messageService.SendDirect(c.Request.Context(), middleware.CurrentUser(c), id, req.Content); err != nil {
		actionError(c, err, errMessage{service.ErrUserNotFound, "Unable to send message to user."})
		return
	}
	response.Action(c, true, "User message has been sent successfully!")
}

// RecentConversations 每个会话对象的最后一条消息
// @Summary 最近会话
// @Tags 消息
// @Success 200 {object} response.Response{data=[]model.ConversationSummary}
// @Router /api/v1/message/recent [get]
func (h *Handler) RecentConversations(c *gin.Context) {
	list, err := h.messageService.RecentConversations(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, list)
}

// DirectHistory 与某人的聊天记录，按时间正序
// @Summary 私信记录
// @Tags 消息
// @Param id path int true "对方ID"
// @Param limit query int false "条数" default(30)
// @Success 200 {object} response.Response{data=[]model.MessageView}
// @Router /api/v1/message/fetch/user/{id} [get]
func (h *Handler) DirectHistory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	list, err := h.messageService.History(c.Request.Context(), middleware.CurrentUser(c), id, limitParam(c))
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, list)
}

// CreateGroup 创建群组，创建者为唯一成员
// @Summary 创建群组
// @Tags 群组
// @Accept json
// @Param request body createGroupRequest false "群名，空则为 Untitled Group"
// @Success 200 {object} response.Response{data=model.GroupView}
// @Router /api/v1/message/create/group [post]
func (h *Handler) CreateGroup(c *gin.Context) {
	var req createGroupRequest
	// 允许空 body
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, err.Error())
		return
	}
	g, err := h.groupService.CreateGroup(c.Request.Context(), middleware.CurrentUser(c), req.Name)
	if err != nil {
		actionError(c, err)
		return
	}
	response.Success(c, g)
}

// InviteToGroup 群成员邀请他人入群
// @Summary 邀请入群
// @Tags 群组
// @Param groupId path int true "群组ID"
// @Param userId path int true "被邀请用户ID"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/message/invite/{groupId}/{userId} [post]
func (h *Handler) InviteToGroup(c *gin.Context) {
	groupID, ok := idParam(c, "groupId")
	if !ok {
		return
	}
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	if err := h.groupService.Invite(c.Request.Context(), middleware.CurrentUser(c), groupID, userID); err != nil {
		actionError(c, err, errMessage{service.ErrForbidden, "Unable to access the group."})
		return
	}
	response.Action(c, true, "User has been added to the group.")
}

// SendGroupMessage 群消息
// @Summary 发送群消息
// @Tags 群组
// @Accept json
// @Param groupId path int true "群组ID"
// @Param request body messageRequest true "内容"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/message/group/{groupId} [post]
func (h *Handler) SendGroupMessage(c *gin.Context) {
	groupID, ok := idParam(c, "groupId")
	if !ok {
		return
	}
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if _, err := h.groupService.Send(c.Request.Context(), middleware.CurrentUser(c), groupID, req.Content); err != nil {
		actionError(c, err, errMessage{service.ErrForbidden, "Unable to access the group."})
		return
	}
	response.Action(c, true, "Group message has been sent successfully!")
}

// GroupHistory 群聊记录，仅成员可见
// @Summary 群消息记录
// @Tags 群组
// @Param groupId path int true "群组ID"
// @Param limit query int false "条数" default(30)
// @Success 200 {object} response.Response{data=[]model.MessageView}
// @Router /api/v1/message/fetch/group/{groupId} [get]
func (h *Handler) GroupHistory(c *gin.Context) {
	groupID, ok := idParam(c, "groupId")
	if !ok {
		return
	}
	list, err := h.groupService.History(c.Request.Context(), middleware.CurrentUser(c), groupID, limitParam(c))
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, list)
}

// MyGroups 当前用户所在群组
// @Summary 我的群组
// @Tags 群组
// @Success 200 {object} response.Response{data=[]model.GroupView}
// @Router /api/v1/message/groups [get]
func (h *Handler) MyGroups(c *gin.Context) {
	list, err := h.groupService.ListGroups(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, list)
}
