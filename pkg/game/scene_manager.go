package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	// 最近一次 Layout 尺寸，切换场景时立即告知新场景
	width, height int
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene. If a layout size is already known the
// new scene receives it immediately.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if scene != nil && sm.width > 0 && sm.height > 0 {
		scene.Resize(sm.width, sm.height)
	}
	log.Printf("[SceneManager] Switched scene: %T", scene)
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Resize forwards a layout change to the active scene. Repeated calls with the
// same size are ignored.
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if sm.currentScene != nil {
		sm.currentScene.Resize(width, height)
	}
}

// Size returns the last layout size seen by the manager.
func (sm *SceneManager) Size() (int, int) {
	return sm.width, sm.height
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}
	return sm.currentScene.Update(deltaTime)
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// SaveOnExit 让当前场景（若实现了 Saveable）保存状态
func (sm *SceneManager) SaveOnExit() error {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return nil
}
