package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 用户偏好设置
// 与 config.Config 不同，这些值由用户在运行时切换并跨会话保存
type Settings struct {
	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
	// CursorEnabled 是否显示自定义光标（仍受视口宽度限制）
	CursorEnabled bool `yaml:"cursorEnabled"`
	// Paused 粒子动画是否暂停
	Paused bool `yaml:"paused"`
	// WindowWidth / WindowHeight 上次关闭时的窗口尺寸，0 表示使用配置默认值
	WindowWidth  int `yaml:"windowWidth"`
	WindowHeight int `yaml:"windowHeight"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *Settings {
	return &Settings{
		Fullscreen:    false,
		CursorEnabled: true,
		Paused:        false,
	}
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "user"
)

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *Settings
}

// NewSettingsManager 创建新的设置管理器实例并尝试加载已保存的设置
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//
// 加载失败不是致命错误：记录日志并使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// gdataManager 为 nil 或没有保存过设置时使用默认设置。
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 从默认值开始解码，旧版本文件中缺失的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// gdataManager 为 nil 时直接返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// IsPersistent 是否能够持久化
func (sm *SettingsManager) IsPersistent() bool {
	return sm.gdataManager != nil
}

// SetFullscreen 设置全屏模式（仅内存，需调用 Save 持久化）
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ToggleCursor 切换自定义光标并返回新状态
func (sm *SettingsManager) ToggleCursor() bool {
	sm.settings.CursorEnabled = !sm.settings.CursorEnabled
	return sm.settings.CursorEnabled
}

// TogglePaused 切换暂停状态并返回新状态
func (sm *SettingsManager) TogglePaused() bool {
	sm.settings.Paused = !sm.settings.Paused
	return sm.settings.Paused
}

// SetWindowSize 记录窗口尺寸，非正值被忽略
func (sm *SettingsManager) SetWindowSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	sm.settings.WindowWidth = width
	sm.settings.WindowHeight = height
}
