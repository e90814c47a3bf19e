package config

import "fmt"

// CursorConfig 自定义光标配置
//
// 光标由一个紧跟指针的圆点和一个缓动跟随的圆环组成，
// 仅在视口宽度不小于 MinViewportWidth 时启用（桌面端）。
type CursorConfig struct {
	// Enabled 是否启用自定义光标（用户设置可再次关闭）
	Enabled bool `yaml:"enabled" env:"ENABLED"`
	// MinViewportWidth 启用自定义光标的最小视口宽度
	MinViewportWidth float64 `yaml:"minViewportWidth" env:"MIN_VIEWPORT_WIDTH"`
	// FollowFactor 圆环每帧向指针靠近的比例
	FollowFactor float64 `yaml:"followFactor" env:"FOLLOW_FACTOR"`

	DotRadius  float64 `yaml:"dotRadius" env:"DOT_RADIUS"`
	RingRadius float64 `yaml:"ringRadius" env:"RING_RADIUS"`
	// RingPressScale 按下指针时圆环的放大倍数
	RingPressScale float64 `yaml:"ringPressScale" env:"RING_PRESS_SCALE"`
	RingWidth      float64 `yaml:"ringWidth" env:"RING_WIDTH"`

	DotColor  string `yaml:"dotColor" env:"DOT_COLOR"`
	RingColor string `yaml:"ringColor" env:"RING_COLOR"`
}

// DefaultCursorConfig returns the desktop cursor settings.
func DefaultCursorConfig() CursorConfig {
	return CursorConfig{
		Enabled:          true,
		MinViewportWidth: 1024,
		FollowFactor:     0.15,
		DotRadius:        4,
		RingRadius:       18,
		RingPressScale:   1.6,
		RingWidth:        1.5,
		DotColor:         "#a29bfe",
		RingColor:        "#6c5ce7",
	}
}

// Validate 验证光标配置
func (c *CursorConfig) Validate() error {
	if c.FollowFactor <= 0 || c.FollowFactor > 1 {
		return fmt.Errorf("followFactor must be in (0, 1], got %.3f", c.FollowFactor)
	}
	if c.DotRadius < 0 || c.RingRadius < 0 || c.RingWidth < 0 {
		return fmt.Errorf("cursor radii and width must not be negative")
	}
	if c.RingPressScale <= 0 {
		return fmt.Errorf("ringPressScale must be positive, got %.2f", c.RingPressScale)
	}
	if _, err := ParseHexColor(c.DotColor); err != nil {
		return fmt.Errorf("dotColor: %w", err)
	}
	if _, err := ParseHexColor(c.RingColor); err != nil {
		return fmt.Errorf("ringColor: %w", err)
	}
	return nil
}
