// Package https_server 提供 HTTP/HTTPS 服务器的初始化和配置
// 负责创建 Gin 引擎实例并配置中间件和路由
package https_server

import (
	"net"
	"strconv"

	"kama_contact_book/internal/config"                    // 配置管理
	"kama_contact_book/internal/handler"                   // Handler 聚合对象
	"kama_contact_book/internal/infrastructure/logger"     // 自定义日志中间件
	"kama_contact_book/internal/infrastructure/middleware" // TLS 重定向
	"kama_contact_book/internal/router"                    // 路由注册

	"github.com/gin-contrib/cors" // CORS 跨域中间件
	"github.com/gin-gonic/gin"    // Gin Web 框架
)

// Init 初始化 HTTP/HTTPS 服务器并返回 Gin 引擎实例
// 配置顺序：
//  1. 创建 Gin 引擎（空白，不含默认中间件）
//  2. 注册日志和恢复中间件
//  3. 按配置挂载 TLS 重定向
//  4. 配置 CORS 跨域规则
//  5. 注册业务路由
func Init(cfg *config.Config, handlers *handler.Handlers) *gin.Engine {
	if cfg.MainConfig.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	if cfg.SecurityConfig.SSLRedirect {
		sslHost := cfg.SecurityConfig.SSLHost
		if sslHost == "" {
			sslHost = net.JoinHostPort(cfg.MainConfig.Host, strconv.Itoa(cfg.MainConfig.Port))
		}
		engine.Use(middleware.TlsHandler(sslHost))
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CorsConfig.AllowOrigins
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}
