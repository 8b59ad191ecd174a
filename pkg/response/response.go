package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 通用读接口响应
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ActionResponse 写操作响应；status 1 成功，0 失败
type ActionResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	StatusFailure = 0
	StatusSuccess = 1
)

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Message: msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Response{Code: http.StatusNotFound, Message: msg})
}

func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Message: "internal server error"})
}

// Action 业务结果编码在 body 中，HTTP 状态保持 200
func Action(c *gin.Context, ok bool, msg string) {
	status := StatusFailure
	if ok {
		status = StatusSuccess
	}
	c.JSON(http.StatusOK, ActionResponse{Status: status, Message: msg})
}

// AbortAction 在中间件中以指定 HTTP 状态终止请求
func AbortAction(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, ActionResponse{Status: StatusFailure, Message: msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, Response{Code: http.StatusUnauthorized, Message: msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, Response{Code: http.StatusForbidden, Message: msg})
}
