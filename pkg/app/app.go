// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"io"
	"log"
	"math/rand"

	"github.com/gonewx/portfolio-fx/pkg/config"
	"github.com/gonewx/portfolio-fx/pkg/game"
	"github.com/gonewx/portfolio-fx/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 覆盖嵌入默认配置的 YAML 文件，为空则只用嵌入配置
	ConfigPath string
	// Seed 粒子随机种子，0 表示使用时间种子
	Seed int64
	// NoPersist 不打开 gdata 存储，设置只保存在内存中
	NoPersist bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	config       *config.Config
	settings     *game.SettingsManager
	sceneManager *game.SceneManager
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入配置；
// 未初始化时使用代码中的默认配置。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	appConfig, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	var settings *game.SettingsManager
	if cfg.NoPersist {
		settings = game.NewSettingsManager(nil)
	} else {
		storage, err := game.OpenStorage(game.AppName)
		if err != nil {
			// 存储不可用不是致命错误，降级为内存设置
			log.Printf("[App] Warning: %v (settings will not persist)", err)
		}
		settings = game.NewSettingsManager(storage)
	}

	width, height := InitialWindowSize(appConfig, settings.GetSettings())

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
		log.Printf("[App] Using seed %d", cfg.Seed)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.Resize(width, height)
	sceneManager.SwitchTo(scenes.NewHeroScene(appConfig, settings, width, height, scenes.HeroOptions{
		Rand: rng,
	}))

	return &App{
		config:       appConfig,
		settings:     settings,
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// InitialWindowSize 上次保存的窗口尺寸优先，否则使用配置
func InitialWindowSize(cfg *config.Config, s *game.Settings) (int, int) {
	if s != nil && s.WindowWidth > 0 && s.WindowHeight > 0 {
		return s.WindowWidth, s.WindowHeight
	}
	return cfg.Window.Width, cfg.Window.Height
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := InitialWindowSize(a.config, a.settings.GetSettings())
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	return a.sceneManager.Update(deltaTime)
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	// 记录窗口模式下的尺寸，退出全屏时恢复
	a.settings.SetWindowSize(ebiten.WindowSize())
	ebiten.SetFullscreen(true)
	a.settings.SetFullscreen(true)
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回外部尺寸作为逻辑屏幕尺寸
// 粒子场跟随窗口大小变化，而不是缩放固定画布
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// SaveOnExit 记录窗口尺寸并保存设置与场景状态
func (a *App) SaveOnExit() error {
	if !a.settings.GetSettings().Fullscreen {
		a.settings.SetWindowSize(a.sceneManager.Size())
	}
	return a.sceneManager.SaveOnExit()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Settings 返回用户设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// Config 返回生效的配置
func (a *App) Config() *config.Config {
	return a.config
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
