package scenes

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/gonewx/portfolio-fx/internal/particlefield"
	"github.com/gonewx/portfolio-fx/pkg/components"
	"github.com/gonewx/portfolio-fx/pkg/config"
	"github.com/gonewx/portfolio-fx/pkg/ecs"
	"github.com/gonewx/portfolio-fx/pkg/game"
	"github.com/gonewx/portfolio-fx/pkg/render"
	"github.com/gonewx/portfolio-fx/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HeroOptions 可替换的外部依赖，零值使用 Ebitengine 的真实实现
type HeroOptions struct {
	// Rand 粒子随机源，nil 时使用时间种子
	Rand *rand.Rand
	// Pointer 指针输入，nil 时使用 utils.ReadPointer
	Pointer systems.PointerReader
	// KeyJustPressed 按键检测，nil 时使用 inpututil.IsKeyJustPressed
	KeyJustPressed func(ebiten.Key) bool
	// SetCursorMode 系统光标显示控制，nil 时使用 ebiten.SetCursorMode
	SetCursorMode func(ebiten.CursorModeType)
}

// HeroScene 作品集首页的 hero 区域：全屏粒子场 + 自定义光标
//
// 整个视口是一个实体，挂载 Surface / Pointer / ParticleField / Cursor 组件。
// 每帧的系统顺序：Resize → Input → ParticleField → Cursor，然后 Draw。
type HeroScene struct {
	entityManager *ecs.EntityManager
	settings      *game.SettingsManager
	viewportID    ecs.EntityID

	resizeSystem *systems.ResizeSystem
	inputSystem  *systems.InputSystem
	fieldSystem  *systems.ParticleFieldSystem
	cursorSystem *systems.CursorSystem
	renderSystem *systems.RenderSystem

	// seedWidth 创建粒子场时使用的视口宽度；started 为 false 时
	// 第一次 Update 会按真实视口宽度重新生成粒子
	seedWidth float64
	started   bool

	canvas         *render.EbitenCanvas
	keyJustPressed func(ebiten.Key) bool
	setCursorMode  func(ebiten.CursorModeType)
	systemCursor   ebiten.CursorModeType
}

// NewHeroScene 创建 hero 场景
//
// 参数：
//   - cfg: 已验证的配置
//   - settings: 用户设置（暂停、自定义光标开关）
//   - width, height: 初始视口尺寸，同时决定粒子数量
//   - opts: 可替换的外部依赖
func NewHeroScene(cfg *config.Config, settings *game.SettingsManager, width, height int, opts HeroOptions) *HeroScene {
	if opts.KeyJustPressed == nil {
		opts.KeyJustPressed = inpututil.IsKeyJustPressed
	}
	if opts.SetCursorMode == nil {
		opts.SetCursorMode = ebiten.SetCursorMode
	}

	em := ecs.NewEntityManager()
	s := &HeroScene{
		entityManager:  em,
		settings:       settings,
		keyJustPressed: opts.KeyJustPressed,
		setCursorMode:  opts.SetCursorMode,
		systemCursor:   ebiten.CursorModeVisible,
		seedWidth:      float64(width),
	}

	surface := &components.SurfaceComponent{Width: float64(width), Height: float64(height)}
	field := particlefield.New(surface, float64(width), cfg.Field.Params(), opts.Rand)

	s.viewportID = em.CreateEntity()
	ecs.AddComponent(em, s.viewportID, surface)
	ecs.AddComponent(em, s.viewportID, &components.PointerComponent{})
	ecs.AddComponent(em, s.viewportID, &components.ParticleFieldComponent{
		Field:  field,
		Paused: settings.GetSettings().Paused,
	})
	ecs.AddComponent(em, s.viewportID, &components.CursorComponent{})

	s.resizeSystem = systems.NewResizeSystem(em)
	s.inputSystem = systems.NewInputSystem(em, opts.Pointer)
	s.fieldSystem = systems.NewParticleFieldSystem(em)
	s.cursorSystem = systems.NewCursorSystem(em, cfg.Cursor, func() bool {
		return settings.GetSettings().CursorEnabled
	})
	s.renderSystem = systems.NewRenderSystem(em, cfg.Cursor)

	var background color.Color
	if bg, err := config.ParseHexColor(cfg.Window.Background); err == nil {
		background = bg
	}
	s.canvas = render.NewEbitenCanvas(nil, background)

	log.Printf("[HeroScene] Created %dx%d viewport with %d particles", width, height, field.Len())
	return s
}

// Update 处理快捷键并运行所有系统
func (s *HeroScene) Update(deltaTime float64) error {
	if !s.started {
		s.started = true
		s.seedFromLayout()
	}

	if s.keyJustPressed(ebiten.KeyP) {
		s.TogglePause()
	}
	if s.keyJustPressed(ebiten.KeyC) {
		s.ToggleCursor()
	}

	s.resizeSystem.Update(deltaTime)
	s.inputSystem.Update(deltaTime)
	s.fieldSystem.Update(deltaTime)
	s.cursorSystem.Update(deltaTime)

	s.syncSystemCursor()
	return nil
}

// seedFromLayout 粒子数量由视口宽度决定；场景通常在第一次 Layout 之前创建，
// 若真实宽度与创建时不同则按真实宽度重新生成一次
func (s *HeroScene) seedFromLayout() {
	surface, ok := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, s.viewportID)
	if !ok || surface.Width == s.seedWidth {
		return
	}
	fc, ok := ecs.GetComponent[*components.ParticleFieldComponent](s.entityManager, s.viewportID)
	if !ok || fc.Field == nil {
		return
	}
	fc.Field.Reseed(surface.Width)
	s.seedWidth = surface.Width
	log.Printf("[HeroScene] Reseeded for %.0fpx viewport: %d particles", surface.Width, fc.Field.Len())
}

// syncSystemCursor 自定义光标启用时隐藏系统光标
func (s *HeroScene) syncSystemCursor() {
	mode := ebiten.CursorModeVisible
	if cursor, ok := ecs.GetComponent[*components.CursorComponent](s.entityManager, s.viewportID); ok && cursor.Visible {
		mode = ebiten.CursorModeHidden
	}
	if mode != s.systemCursor {
		s.setCursorMode(mode)
		s.systemCursor = mode
	}
}

// Draw 绘制粒子场和光标
func (s *HeroScene) Draw(screen *ebiten.Image) {
	s.canvas.Reset(screen)
	s.renderSystem.Draw(s.canvas)

	if s.Paused() {
		ebitenutil.DebugPrintAt(screen, "PAUSED (P to resume)", 8, 8)
	}
}

// Resize 视口尺寸变化，在下一次 Update 开始时生效
func (s *HeroScene) Resize(width, height int) {
	s.resizeSystem.SetSize(float64(width), float64(height))
}

// TogglePause 切换粒子动画的暂停状态
func (s *HeroScene) TogglePause() {
	paused := s.settings.TogglePaused()
	if fc, ok := ecs.GetComponent[*components.ParticleFieldComponent](s.entityManager, s.viewportID); ok {
		fc.Paused = paused
	}
	log.Printf("[HeroScene] Paused: %v", paused)
}

// ToggleCursor 切换自定义光标
func (s *HeroScene) ToggleCursor() {
	enabled := s.settings.ToggleCursor()
	log.Printf("[HeroScene] Custom cursor: %v", enabled)
}

// Paused 粒子动画是否暂停
func (s *HeroScene) Paused() bool {
	fc, ok := ecs.GetComponent[*components.ParticleFieldComponent](s.entityManager, s.viewportID)
	return ok && fc.Paused
}

// Field 返回场景中的粒子场
func (s *HeroScene) Field() *particlefield.Field {
	fc, ok := ecs.GetComponent[*components.ParticleFieldComponent](s.entityManager, s.viewportID)
	if !ok {
		return nil
	}
	return fc.Field
}

// Cursor 返回光标组件的副本
func (s *HeroScene) Cursor() components.CursorComponent {
	cursor, ok := ecs.GetComponent[*components.CursorComponent](s.entityManager, s.viewportID)
	if !ok {
		return components.CursorComponent{}
	}
	return *cursor
}

// SaveOnExit 保存用户设置
func (s *HeroScene) SaveOnExit() error {
	return s.settings.Save()
}
