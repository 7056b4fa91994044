package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/chart"
)

// Config 批量星盘生成配置
type Config struct {
	Profiles    []Profile         `yaml:"profiles"`
	Output      OutputConfig      `yaml:"output"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	DB          DBConfig          `yaml:"db"`
}

// Profile 一份出生资料
type Profile struct {
	Name  string           `yaml:"name"`
	Label string           `yaml:"label"`
	Birth chart.BirthEvent `yaml:"birth"`
}

// OutputConfig 输出相关配置
type OutputConfig struct {
	Dir string `yaml:"dir"`
	// 是否生成 index.html 汇总页
	Gallery bool `yaml:"gallery"`
}

// DBConfig 数据库相关配置，Host 为空时不落库
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 并发控制配置
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse 解析 YAML 配置并补齐默认值
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = "output"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Concurrency.Workers <= 0 {
		c.Concurrency.Workers = 4
	}
	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	if c.DB.SSLMode == "" {
		c.DB.SSLMode = "disable"
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("配置错误: 未设置出生资料 (profiles)")
	}
	seen := make(map[string]struct{}, len(c.Profiles))
	for i, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("配置错误: profiles[%d] 缺少 name", i)
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("配置错误: profile 名称重复: %s", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

// DSN 生成 lib/pq 连接串
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}
