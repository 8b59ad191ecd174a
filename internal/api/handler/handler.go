package handler

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/campus-social/internal/oauth"
	"github.com/d60-Lab/campus-social/internal/service"
	"github.com/d60-Lab/campus-social/pkg/response"
)

// Services 聚合 handler 依赖的业务服务
type Services struct {
	Auth     service.AuthService
	User     service.UserService
	Relation service.RelationshipService
	Post     service.PostService
	Message  service.MessageService
	Group    service.GroupService
	Report   service.ReportService
	Admin    service.AdminService
	// Google 为 nil 时 OAuth 路由返回未配置
	Google oauth.Provider
	DB     Pinger
}

// Pinger 健康检查依赖，*sql.DB 满足
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	authService    service.AuthService
	userService    service.UserService
	relService     service.RelationshipService
	postService    service.PostService
	messageService service.MessageService
	groupService   service.GroupService
	reportService  service.ReportService
	adminService   service.AdminService
	google         oauth.Provider
	db             Pinger
}

func New(s Services) *Handler {
	return &Handler{
		authService:    s.Auth,
		userService:    s.User,
		relService:     s.Relation,
		postService:    s.Post,
		messageService: s.Message,
		groupService:   s.Group,
		reportService:  s.Report,
		adminService:   s.Admin,
		google:         s.Google,
		db:             s.DB,
	}
}

const msgUnauthorizedToken = "Unable to authorize the user token."

type errMessage struct {
	err error
	msg string
}

// 顺序敏感：具体错误在前，类别错误在后
var actionMessages = []errMessage{
	{service.ErrAlreadyLiked, "User has already liked this post."},
	{service.ErrNotLiked, "User has not liked this post."},
	{service.ErrAlreadyFollowing, "You are already following this user."},
	{service.ErrInvalidRelationship, "You cannot follow yourself."},
	{service.ErrEmailTaken, "An account with this email already exists."},
	{service.ErrInvalidCredentials, "Invalid email or password."},
	{service.ErrInvalidToken, "Invalid or expired token."},
	{service.ErrPostNotFound, "Unable to find user post."},
	{service.ErrCommentNotFound, "Unable to find comment."},
	{service.ErrUserNotFound, "User could not be found."},
	{service.ErrGroupNotFound, "Unable to access the group."},
	{service.ErrUnauthorized, msgUnauthorizedToken},
	{service.ErrForbidden, "You are not authorized to perform this action."},
	{service.ErrNotFound, "Resource not found."},
	{service.ErrConflict, "Resource already exists."},
}

// sentence 把 service 错误文本转成面向用户的句子
func sentence(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	out := string(r)
	if !strings.HasSuffix(out, ".") {
		out += "."
	}
	return out
}

func actionMessage(err error) (string, bool) {
	for _, m := range actionMessages {
		if errors.Is(err, m.err) {
			return m.msg, true
		}
	}
	if service.IsValidation(err) {
		return sentence(err.Error()), true
	}
	return "", false
}

// actionError 业务错误以 status=0 返回，未知错误 500；overrides 按接口覆盖默认文案
func actionError(c *gin.Context, err error, overrides ...errMessage) {
	for _, o := range overrides {
		if errors.Is(err, o.err) {
			response.Action(c, false, o.msg)
			return
		}
	}
	if msg, ok := actionMessage(err); ok {
		response.Action(c, false, msg)
		return
	}
	response.InternalError(c, err)
}

// readError 读接口按错误类别映射 HTTP 状态
func readError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		response.Unauthorized(c, msgUnauthorizedToken)
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, "You are not authorized to perform this action.")
	case errors.Is(err, service.ErrNotFound):
		msg, _ := actionMessage(err)
		response.NotFound(c, msg)
	case service.IsValidation(err):
		response.BadRequest(c, sentence(err.Error()))
	default:
		response.InternalError(c, err)
	}
}

// idParam 解析路径中的正整数 id
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	return page, pageSize
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"}

// parseTime 无时区的时间按 UTC 处理；空串返回零值
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	// 未编码的 "+08:00" 经过 query 解码后变成空格
	s = strings.Replace(s, " ", "+", 1)
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func timeQuery(c *gin.Context, name string) (time.Time, bool) {
	t, err := parseTime(c.Query(name))
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return time.Time{}, false
	}
	return t, true
}
