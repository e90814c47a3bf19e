// Package config 提供粒子场、光标和窗口的配置
//
// 配置按以下顺序叠加（后者覆盖前者）：
//  1. Go 代码中的默认值（Default*Config）
//  2. 嵌入的 data/config.yaml
//  3. --config 指定的 YAML 文件
//  4. PORTFOLIO_FX_ 前缀的环境变量
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/gonewx/portfolio-fx/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EnvPrefix 环境变量前缀，例如 PORTFOLIO_FX_FIELD_MAX_PARTICLES
const EnvPrefix = "PORTFOLIO_FX_"

// DefaultConfigPath 嵌入资源中的默认配置路径
const DefaultConfigPath = "data/config.yaml"

// Config 应用的完整配置
type Config struct {
	Window WindowConfig `yaml:"window" envPrefix:"WINDOW_"`
	Field  FieldConfig  `yaml:"field" envPrefix:"FIELD_"`
	Cursor CursorConfig `yaml:"cursor" envPrefix:"CURSOR_"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: DefaultWindowConfig(),
		Field:  DefaultFieldConfig(),
		Cursor: DefaultCursorConfig(),
	}
}

// ParseConfig 解析 YAML 配置
//
// YAML 中缺失的字段保留默认值。
//
// 参数:
//   - data: YAML 内容，为空时返回默认配置
//
// 返回:
//   - *Config: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseConfig(data []byte) (*Config, error) {
	return parseOver(DefaultConfig(), data)
}

// parseOver 把 YAML 叠加到 base 的副本上，base 本身不变
func parseOver(base *Config, data []byte) (*Config, error) {
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig 从文件加载 YAML 配置，缺失的字段使用代码默认值
func LoadConfig(path string) (*Config, error) {
	return loadOver(DefaultConfig(), path)
}

func loadOver(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return parseOver(base, data)
}

// Load 按优先级逐层加载配置：代码默认值 → 嵌入的 data/config.yaml → path 指定的文件 → 环境变量
//
// path 指定的文件叠加在嵌入配置之上，文件中缺失的字段保留嵌入值。
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if embedded.IsInitialized() {
		data, err := embedded.ReadFile(DefaultConfigPath)
		switch {
		case err == nil:
			if cfg, err = ParseConfig(data); err != nil {
				return nil, fmt.Errorf("嵌入配置无效: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("[Config] %s not embedded, using defaults", DefaultConfigPath)
		default:
			return nil, fmt.Errorf("嵌入配置读取失败: %w", err)
		}
	}

	if path != "" {
		fileCfg, err := loadOver(cfg, path)
		if err != nil {
			return nil, fmt.Errorf("配置文件加载失败: %w", err)
		}
		cfg = fileCfg
		log.Printf("[Config] Loaded %s", path)
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("环境变量配置无效: %w", err)
	}
	return cfg, nil
}

// ApplyEnv 用环境变量覆盖配置，并重新验证
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config after env overrides: %w", err)
	}
	return nil
}

// Validate 验证全部配置
func (c *Config) Validate() error {
	if err := c.Window.Validate(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	if err := c.Field.Validate(); err != nil {
		return fmt.Errorf("field: %w", err)
	}
	if err := c.Cursor.Validate(); err != nil {
		return fmt.Errorf("cursor: %w", err)
	}
	return nil
}
