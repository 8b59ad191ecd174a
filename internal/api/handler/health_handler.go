package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/campus-social/pkg/response"
)

// Test 连通性探测
// @Summary 测试接口
// @Tags 系统
// @Success 200 {object} response.Response{data=string}
// @Router /api/v1/test [get]
func (h *Handler) Test(c *gin.Context) {
	response.Success(c, "Test Response")
}

// Health 检查数据库连接
// @Summary 健康检查
// @Tags 系统
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			response.InternalError(c, err)
			return
		}
	}
	response.Success(c, gin.H{"status": "ok"})
}
