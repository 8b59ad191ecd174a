package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/d60-Lab/campus-social/internal/service"
	"github.com/d60-Lab/campus-social/pkg/response"
)

const oauthStateCookie = "oauth_state"

type registerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=32"`
	LastName  string `json:"last_name" binding:"required,max=32"`
	Email     string `json:"email" binding:"required,campus_email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
}

type authenticateRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register 注册本地账号，返回 token 并发送验证邮件
// @Summary 注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 200 {object} response.Response{data=tokenResponse}
// @Failure 400 {object} response.Response
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, _, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		actionError(c, err)
		return
	}
	response.Success(c, tokenResponse{Token: token})
}

// Authenticate 邮箱密码登录
// @Summary 登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body authenticateRequest true "登录信息"
// @Success 200 {object} response.Response{data=tokenResponse}
// @Failure 400 {object} response.Response
// @Router /api/v1/auth/authenticate [post]
func (h *Handler) Authenticate(c *gin.Context) {
	var req authenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		actionError(c, err)
		return
	}
	response.Success(c, tokenResponse{Token: token})
}

// GoogleLogin 跳转到 Google 授权页
// @Summary Google 登录
// @Tags 认证
// @Success 302
// @Router /api/v1/auth/oauth2/google [get]
func (h *Handler) GoogleLogin(c *gin.Context) {
	if h.google == nil {
		response.NotFound(c, "Google sign-in is not configured.")
		return
	}
	state := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusFound, h.google.AuthCodeURL(state))
}

// GoogleCallback 校验 state，换取 Google 资料后注册或更新账号
// @Summary Google 回调
// @Tags 认证
// @Param code query string true "授权码"
// @Param state query string true "state"
// @Success 200 {object} response.Response{data=tokenResponse}
// @Router /api/v1/auth/register/oauth2/ [get]
func (h *Handler) GoogleCallback(c *gin.Context) {
	if h.google == nil {
		response.NotFound(c, "Google sign-in is not configured.")
		return
	}
	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		response.BadRequest(c, "invalid oauth state")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", c.Request.TLS != nil, true)

	code := c.Query("code")
	if code == "" {
		response.BadRequest(c, "missing code")
		return
	}
	profile, err := h.google.Exchange(c.Request.Context(), code)
	if err != nil {
		_ = c.Error(err)
		response.Unauthorized(c, "Unable to sign in with Google.")
		return
	}
	token, _, err := h.authService.RegisterOAuth(c.Request.Context(), profile.Email, profile.FirstName, profile.LastName)
	if err != nil {
		actionError(c, err)
		return
	}
	response.Success(c, tokenResponse{Token: token})
}

type resetPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type changePasswordRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Verify 邮箱验证链接
// @Summary 验证邮箱
// @Tags 认证
// @Param token path string true "验证 token"
// @Success 200 {object} response.ActionResponse
// @Failure 400 {object} response.ActionResponse
// @Router /api/v1/verify/{token} [get]
func (h *Handler) Verify(c *gin.Context) {
	err := h.authService.Verify(c.Request.Context(), c.Param("token"))
	switch {
	case errors.Is(err, service.ErrInvalidToken):
		response.AbortAction(c, http.StatusBadRequest, "Invalid verification token.")
	case err != nil:
		response.InternalError(c, err)
	default:
		response.Action(c, true, "Account verified successfully.")
	}
}

// ResetPassword 发送重置密码邮件；邮箱不存在也返回成功
// @Summary 重置密码
// @Tags 认证
// @Accept json
// @Param request body resetPasswordRequest true "邮箱"
// @Success 200 {object} response.ActionResponse
// @Router /api/v1/reset_password [post]
func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.authService.ResetPassword(c.Request.Context(), req.Email); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Action(c, true, "Sent a password reset email if there is a user associated with the email address.")
}

// ChangePassword 凭重置 token 设置新密码
// @Summary 修改密码
// @Tags 认证
// @Accept json
// @Param token path string true "重置 token"
// @Param request body changePasswordRequest true "邮箱与新密码"
// @Success 200 {object} response.ActionResponse
// @Failure 400 {object} response.ActionResponse
// @Router /api/v1/change_password/{token} [post]
func (h *Handler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.authService.ChangePassword(c.Request.Context(), c.Param("token"), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidToken):
		response.AbortAction(c, http.StatusBadRequest, "Invalid password token.")
	case err != nil:
		actionError(c, err)
	default:
		response.Action(c, true, "Account password successfully changed.")
	}
}
