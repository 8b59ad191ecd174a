package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/campus-social/internal/api/middleware"
	"github.com/d60-Lab/campus-social/internal/service"
	"github.com/d60-Lab/campus-social/pkg/response"
)

type createPostRequest struct {
	Content string `json:"content" binding:"required"`
}

type commentRequest struct {
	ID      uint   `json:"id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type postTargetRequest struct {
	ID uint `json:"id" binding:"required"`
}

// CreatePost 发帖
// @Summary 发帖
// @Tags 帖子
// @Accept json
// @Param request body createPostRequest true "内容，最多 280 字"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/post/create [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if _, err := h.postService.CreatePost(c.Request.Context(), middleware.CurrentUser(c), req.Content); err != nil {
		actionError(c, err)
		return
	}
	response.Action(c, true, "Post has been created successfully!")
}

// CreateComment 评论帖子
// @Summary 评论
// @Tags 帖子
// @Accept json
// @Param request body commentRequest true "帖子ID与内容"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/post/comment [post]
func (h *Handler) CreateComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if _, err := h.postService.CreateComment(c.Request.Context(), middleware.CurrentUser(c), req.ID, req.Content); err != nil {
		actionError(c, err)
		return
	}
	response.Action(c, true, "Comment has been created successfully!")
}

// GetPost 单个帖子
// @Summary 帖子详情
// @Tags 帖子
// @Param id path int true "帖子ID"
// @Success 200 {object} response.Response{data=model.PostView}
// @Failure 404 {object} response.Response
// @Router /api/v1/post/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	post, err := h.postService.GetPost(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, post)
}

func (h *Handler) feed(c *gin.Context, authorID uint) {
	cutoff, ok := timeQuery(c, "date_time_fetch")
	if !ok {
		return
	}
	page, pageSize := pageParams(c)
	result, err := h.postService.Feed(c.Request.Context(), middleware.CurrentUser(c), service.FeedQuery{
		AuthorID: authorID,
		Cutoff:   cutoff,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, result)
}

func newPostsQuery(c *gin.Context, authorID uint) (service.NewPostsQuery, bool) {
	last, ok := timeQuery(c, "last_fetch")
	if !ok {
		return service.NewPostsQuery{}, false
	}
	if last.IsZero() {
		response.BadRequest(c, "last_fetch is required")
		return service.NewPostsQuery{}, false
	}
	server, ok := timeQuery(c, "server_date_time")
	if !ok {
		return service.NewPostsQuery{}, false
	}
	return service.NewPostsQuery{AuthorID: authorID, LastFetch: last, Server: server}, true
}

func (h *Handler) newPosts(c *gin.Context, authorID uint) {
	q, ok := newPostsQuery(c, authorID)
	if !ok {
		return
	}
	result, err := h.postService.NewSince(c.Request.Context(), middleware.CurrentUser(c), q)
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, result)
}

func (h *Handler) newPostCount(c *gin.Context, authorID uint) {
	q, ok := newPostsQuery(c, authorID)
	if !ok {
		return
	}
	result, err := h.postService.NewCount(c.Request.Context(), q)
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, result)
}

// RecommendedPosts 推荐流，按时间倒序分页；date_time_fetch 固定翻页基准
// @Summary 推荐流
// @Tags 帖子
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Param date_time_fetch query string false "截止时间 RFC3339，默认当前"
// @Success 200 {object} response.Response{data=service.FeedPage}
// @Router /api/v1/post/recommended [get]
func (h *Handler) RecommendedPosts(c *gin.Context) { h.feed(c, 0) }

// NewRecommendedPosts [last_fetch, server_date_time] 内的新帖
// @Summary 推荐流新帖
// @Tags 帖子
// @Param last_fetch query string true "上次拉取时间"
// @Param server_date_time query string false "服务器时间，默认当前"
// @Success 200 {object} response.Response{data=service.NewPosts}
// @Router /api/v1/post/new/recommended [get]
func (h *Handler) NewRecommendedPosts(c *gin.Context) { h.newPosts(c, 0) }

// NewRecommendedCount 只返回新帖数量
// @Summary 推荐流新帖数
// @Tags 帖子
// @Param last_fetch query string true "上次拉取时间"
// @Param server_date_time query string false "服务器时间，默认当前"
// @Success 200 {object} response.Response{data=service.NewPostCount}
// @Router /api/v1/post/new/recommended/count [get]
func (h *Handler) NewRecommendedCount(c *gin.Context) { h.newPostCount(c, 0) }

// UserPosts 某用户的帖子
// @Summary 用户帖子
// @Tags 帖子
// @Param id path int true "用户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Param date_time_fetch query string false "截止时间"
// @Success 200 {object} response.Response{data=service.FeedPage}
// @Router /api/v1/post/user/{id} [get]
func (h *Handler) UserPosts(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	h.feed(c, id)
}

// NewUserPosts 某用户时间窗内的新帖
// @Summary 用户新帖
// @Tags 帖子
// @Param id path int true "用户ID"
// @Param last_fetch query string true "上次拉取时间"
// @Param server_date_time query string false "服务器时间"
// @Success 200 {object} response.Response{data=service.NewPosts}
// @Router /api/v1/post/new/user/{id} [get]
func (h *Handler) NewUserPosts(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	h.newPosts(c, id)
}

// NewUserPostCount 某用户时间窗内的新帖数
// @Summary 用户新帖数
// @Tags 帖子
// @Param id path int true "用户ID"
// @Param last_fetch query string true "上次拉取时间"
// @Param server_date_time query string false "服务器时间"
// @Success 200 {object} response.Response{data=service.NewPostCount}
// @Router /api/v1/post/new/user/{id}/count [get]
func (h *Handler) NewUserPostCount(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	h.newPostCount(c, id)
}

// UserPostCount 某用户帖子总数
// @Summary 用户帖子数
// @Tags 帖子
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=countResponse}
// @Router /api/v1/post/count/user/{id} [get]
func (h *Handler) UserPostCount(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	n, err := h.postService.UserPostCount(c.Request.Context(), id)
	if err != nil {
		readError(c, err)
		return
	}
	response.Success(c, countResponse{Count: n})
}

func (h *Handler) toggleLike(c *gin.Context, add bool) {
	var req postTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.postService.ToggleLike(c.Request.Context(), middleware.CurrentUser(c), req.ID, add)
	if err != nil {
		actionError(c, err, errMessage{service.ErrPostNotFound, "Could not find post to like."})
		return
	}
	if add {
		response.Action(c, true, "User has successfully added like to post.")
		return
	}
	response.Action(c, true, "User has successfully removed like to post.")
}

// LikePost 点赞；重复点赞返回 status=0
// @Summary 点赞
// @Tags 帖子
// @Accept json
// @Param request body postTargetRequest true "帖子ID"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/post/like [post]
func (h *Handler) LikePost(c *gin.Context) { h.toggleLike(c, true) }

// UnlikePost 取消点赞；未点赞返回 status=0
// @Summary 取消点赞
// @Tags 帖子
// @Accept json
// @Param request body postTargetRequest true "帖子ID"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/post/unlike [post]
func (h *Handler) UnlikePost(c *gin.Context) { h.toggleLike(c, false) }

// DeletePost 删除自己的帖子，连同评论与点赞
// @Summary 删除帖子
// @Tags 帖子
// @Accept json
// @Param request body postTargetRequest true "帖子ID"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/post/delete [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	var req postTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.postService.DeletePost(c.Request.Context(), middleware.CurrentUser(c), req.ID)
	if err != nil {
		actionError(c, err, errMessage{service.ErrForbidden, "You are not authorized to delete this post."})
		return
	}
	response.Action(c, true, "Post has been deleted successfully!")
}
