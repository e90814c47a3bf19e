package config

import "fmt"

// 默认窗口尺寸（逻辑像素）
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
)

// WindowConfig 窗口配置
type WindowConfig struct {
	Title  string `yaml:"title" env:"TITLE"`
	Width  int    `yaml:"width" env:"WIDTH"`
	Height int    `yaml:"height" env:"HEIGHT"`
	// Resizable 允许调整窗口大小（每次调整都会触发粒子场 Resize）
	Resizable bool `yaml:"resizable" env:"RESIZABLE"`
	// Background 背景色
	Background string `yaml:"background" env:"BACKGROUND"`
}

// DefaultWindowConfig returns the default window settings.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:      "Portfolio Hero",
		Width:      DefaultWindowWidth,
		Height:     DefaultWindowHeight,
		Resizable:  true,
		Background: "#0b0b14",
	}
}

// Validate 验证窗口配置
func (c *WindowConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}
