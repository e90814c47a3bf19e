// Package main 是作品集 hero 粒子场的桌面端入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--config <path>   覆盖嵌入默认配置的 YAML 文件
//	--verbose         启用详细日志
//	--seed <n>        固定粒子随机种子（0 = 时间种子）
//
// Controls:
//
//	P    - 暂停/继续粒子动画
//	C    - 开关自定义光标
//	F11  - 切换全屏
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/portfolio-fx/pkg/app"
	"github.com/gonewx/portfolio-fx/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configFlag  = flag.String("config", "", "YAML config file overriding the embedded defaults")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	seedFlag    = flag.Int64("seed", 0, "Particle random seed (0 = time based)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Seed:       *seedFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	cfg := gameApp.Config()
	settings := gameApp.Settings().GetSettings()

	width, height := app.InitialWindowSize(cfg, settings)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(settings.Fullscreen)

	runErr := ebiten.RunGame(gameApp)

	// 窗口关闭后保存设置
	if err := gameApp.SaveOnExit(); err != nil {
		log.Printf("[Main] Warning: failed to save settings: %v", err)
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}
