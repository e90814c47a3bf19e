package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application (currently only the hero).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64) error

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)

	// Resize is called when the layout size of the window changes.
	Resize(width, height int)
}

// Saveable 是一个可选接口，用于在程序退出时持久化场景状态
//
// 实现此接口的场景会在窗口关闭后被调用 SaveOnExit()。
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 error 不会阻止程序退出，只会被记录
	SaveOnExit() error
}
