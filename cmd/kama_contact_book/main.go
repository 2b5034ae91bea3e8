package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kama_contact_book/internal/config"
	"kama_contact_book/internal/dao/jsonfile"
	"kama_contact_book/internal/handler"
	"kama_contact_book/internal/https_server"
	"kama_contact_book/internal/infrastructure/logger"
	"kama_contact_book/internal/service"
	"kama_contact_book/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径，留空时按默认路径查找")
	flag.Parse()

	// 1. 加载配置
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config failed: %v", err)
		}
		config.SetConfig(c)
	}
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zap.L().Sync()
	zap.L().Info("日志初始化成功")

	// 3. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry)

	// 4. 初始化持久化与 Service 层
	repos := jsonfile.NewRepositories(&conf.StorageConfig)
	svc, err := service.NewServices(repos, conf)
	if err != nil {
		zap.L().Fatal("Service 层初始化失败", zap.Error(err))
	}
	zap.L().Info("Service 层初始化成功",
		zap.String("dataDir", conf.StorageConfig.DataDir),
		zap.Bool("sortOnMutation", conf.StorageConfig.SortOnMutation),
		zap.String("passwordHasher", conf.SecurityConfig.PasswordHasher),
	)

	// 5. 初始化参数校验翻译与 HTTP 服务器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("初始化翻译器失败", zap.Error(err))
	}
	engine := https_server.Init(conf, handler.NewHandlers(svc))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}
	go func() {
		zap.L().Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("服务器关闭失败", zap.Error(err))
	}
	zap.L().Info("服务器已关闭")
}
