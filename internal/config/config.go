package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构体（完全匹配config.yaml）
type Config struct {
	Server   ServerConfig            `mapstructure:"server"`   // 服务器配置
	Postgres PostgresConfig          `mapstructure:"postgres"` // PostgreSQL配置
	Sync     SyncConfig              `mapstructure:"sync"`     // 同步调度配置
	Notify   NotifyConfig            `mapstructure:"notify"`   // 通知推送配置
	Sources  map[string]SourceConfig `mapstructure:"sources"`  // 多数据源独立配置
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port int    `mapstructure:"port"` // 服务端口
	Mode string `mapstructure:"mode"` // Gin运行模式：debug/release/test
}

// PostgresConfig PostgreSQL数据库配置
type PostgresConfig struct {
	DSN             string        `mapstructure:"dsn"`               // 连接DSN
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // 最大打开连接数
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // 最大空闲连接数
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // 连接最大存活时间
}

// SyncConfig 同步调度配置
type SyncConfig struct {
	IntervalMinutes int      `mapstructure:"interval_minutes"` // 后台定时同步间隔分钟（0=关闭）
	EnabledGames    []string `mapstructure:"enabled_games"`    // 定时同步的游戏列表
}

// NotifyConfig 通知推送配置
type NotifyConfig struct {
	PushbulletToken string `mapstructure:"pushbullet_token"` // Pushbullet访问令牌（建议经.env注入）
	PushbulletURL   string `mapstructure:"pushbullet_url"`   // 推送接口地址（测试时可覆盖）
	ThresholdSecs   int64  `mapstructure:"threshold_secs"`   // 距开赛多少秒内触发通知（默认900）
}

// SourceConfig 单个数据源的独立配置
type SourceConfig struct {
	BaseURL   string `mapstructure:"base_url"`   // 站点基础地址
	Timeout   int    `mapstructure:"timeout"`    // 请求超时（秒）
	Proxy     string `mapstructure:"proxy"`      // 代理地址
	UserAgent string `mapstructure:"user_agent"` // 请求UA
}

// LoadConfig 加载配置文件（config/config.yaml），敏感项从.env覆盖（不提交git）
func LoadConfig() (*Config, error) {
	// 1. 加载.env（若存在），env中的值会覆盖config.yaml中同名字段
	_ = godotenv.Load() // 忽略错误（.env可不存在）

	// 2. 读取config.yaml
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	viper.SetTypeByDefaultValue(true)
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 3. 敏感字段：用env覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	return &cfg, nil
}

// overrideFromEnv 用环境变量覆盖敏感配置
func overrideFromEnv(cfg *Config) {
	if s, ok := cfg.Sources["gosugamers"]; ok {
		if v := os.Getenv("GOSUGAMERS_PROXY"); v != "" {
			s.Proxy = v
		}
		cfg.Sources["gosugamers"] = s
	}
	if s, ok := cfg.Sources["liquidpedia"]; ok {
		if v := os.Getenv("LIQUIDPEDIA_PROXY"); v != "" {
			s.Proxy = v
		}
		cfg.Sources["liquidpedia"] = s
	}
	if v := os.Getenv("PUSHBULLET_TOKEN"); v != "" {
		cfg.Notify.PushbulletToken = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
}
