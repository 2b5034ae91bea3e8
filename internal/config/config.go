// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找
package config

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库

	"kama_contact_book/pkg/constants"
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName string `toml:"appName"` // 应用名称，用于日志标识等
	Host    string `toml:"host"`    // 服务器监听地址，如 "127.0.0.1"
	Port    int    `toml:"port"`    // 服务器监听端口，如 8000
	Mode    string `toml:"mode"`    // 运行模式："dev" 或 "release"
}

// StorageConfig 持久化文件配置
type StorageConfig struct {
	DataDir        string `toml:"dataDir"`        // 用户联系人文件所在目录，每个用户一个 <username>.json
	AccountFile    string `toml:"accountFile"`    // 账号映射文件路径，留空时为 <dataDir>/users.json
	SortOnMutation bool   `toml:"sortOnMutation"` // 每次修改后是否按姓名重新排序
}

// AppLockConfig 应用解锁口令配置
type AppLockConfig struct {
	Passphrase string `toml:"passphrase"` // 固定的应用解锁口令
}

// SecurityConfig 凭证与传输安全配置
type SecurityConfig struct {
	PasswordHasher string `toml:"passwordHasher"` // 密码存储方式："plain" 或 "bcrypt"
	SSLRedirect    bool   `toml:"sslRedirect"`    // 是否将 HTTP 请求重定向到 HTTPS
	SSLHost        string `toml:"sslHost"`        // 重定向目标主机，留空时使用 host:port
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// JWTConfig JWT 认证配置
type JWTConfig struct {
	Secret            string `toml:"secret"`            // JWT 签名密钥，建议 32 字符以上
	AccessTokenExpiry int    `toml:"accessTokenExpiry"` // Access Token 有效期（分钟）
}

// CorsConfig 跨域配置，展示层通常运行在另一个 origin
type CorsConfig struct {
	AllowOrigins []string `toml:"allowOrigins"`
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig     `toml:"mainConfig"`     // 主配置
	StorageConfig  `toml:"storageConfig"`  // 持久化配置
	AppLockConfig  `toml:"appLockConfig"`  // 应用解锁配置
	SecurityConfig `toml:"securityConfig"` // 安全配置
	LogConfig      `toml:"logConfig"`      // 日志配置
	JWTConfig      `toml:"jwtConfig"`      // JWT 配置
	CorsConfig     `toml:"corsConfig"`     // 跨域配置
}

// config 全局配置单例，延迟加载
var config *Config

// Default 返回带默认值的配置
func Default() *Config {
	return &Config{
		MainConfig: MainConfig{
			AppName: "kama_contact_book",
			Host:    "127.0.0.1",
			Port:    8000,
			Mode:    "dev",
		},
		StorageConfig: StorageConfig{
			DataDir:        "data",
			SortOnMutation: true,
		},
		AppLockConfig: AppLockConfig{
			Passphrase: "1317",
		},
		SecurityConfig: SecurityConfig{
			PasswordHasher: "plain",
		},
		LogConfig: LogConfig{
			LogPath: "logs",
			Level:   "info",
		},
		JWTConfig: JWTConfig{
			Secret:            "kama-contact-book-dev-secret-change-me",
			AccessTokenExpiry: constants.ACCESS_TOKEN_EXPIRY_MINUTE,
		},
		CorsConfig: CorsConfig{
			AllowOrigins: []string{"*"},
		},
	}
}

// AccountFilePath 返回账号映射文件的实际路径
func (c *StorageConfig) AccountFilePath() string {
	if c.AccountFile != "" {
		return c.AccountFile
	}
	return filepath.Join(c.DataDir, constants.ACCOUNT_FILE_NAME)
}

// Load 从指定路径加载配置文件，未出现在文件中的字段保持默认值
func Load(path string) (*Config, error) {
	conf := Default()
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return conf, nil
}

// LoadConfig 从多个候选路径加载配置文件
// 按顺序尝试加载，找到第一个可用的配置文件即停止
// 返回值：加载成功返回 nil，否则返回错误
func LoadConfig() error {
	// 候选配置文件路径（优先加载本地配置）
	paths := []string{
		"configs/config_local.toml",       // 本地开发配置（优先）
		"configs/config.toml",             // 默认配置
		"../../configs/config_local.toml", // 从子目录运行时的路径
		"../../configs/config.toml",       // 从子目录运行时的路径
	}

	// 依次尝试加载配置文件
	for _, path := range paths {
		if conf, err := Load(path); err == nil {
			config = conf
			return nil // 加载成功
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件
func GetConfig() *Config {
	if config == nil {
		config = Default()
		_ = LoadConfig() // 忽略加载错误，使用默认值
	}
	return config
}

// SetConfig 替换全局配置实例，用于命令行指定配置文件
func SetConfig(conf *Config) {
	config = conf
}
