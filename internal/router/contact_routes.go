package router

import (
	"kama_contact_book/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterContactRoutes 注册联系人相关路由
func (rt *Router) RegisterContactRoutes(r *gin.Engine) {
	h := rt.handlers.Contact

	contactGroup := r.Group("/contact")
	contactGroup.Use(middleware.JWTAuth())
	{
		contactGroup.GET("/list", h.List)
		contactGroup.GET("/search", h.Search)
		contactGroup.GET("/filter", h.Filter)
		contactGroup.POST("/add", h.Add)
		contactGroup.POST("/edit", h.Edit)
		contactGroup.POST("/delete", h.Delete)
		contactGroup.POST("/toggleStatus", h.ToggleStatus)
	}
}
