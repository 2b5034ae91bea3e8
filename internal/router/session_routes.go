package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes 注册应用会话相关路由（无需认证）
func (rt *Router) RegisterSessionRoutes(r *gin.Engine) {
	h := rt.handlers.Session

	appGroup := r.Group("/app")
	{
		appGroup.POST("/unlock", h.Unlock)
		appGroup.GET("/state", h.State)
	}
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
}
