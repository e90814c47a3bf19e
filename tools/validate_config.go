// validate_config 检查配置文件并打印叠加环境变量后的有效配置
//
// 用法：
//
//	go run ./tools [path]    # 默认 data/config.yaml
package main

import (
	"fmt"
	"os"

	"github.com/gonewx/portfolio-fx/internal/particlefield"
	"github.com/gonewx/portfolio-fx/pkg/config"
	"gopkg.in/yaml.v3"
)

func main() {
	path := config.DefaultConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s 有效\n", path)

	p := cfg.Field.Params()
	for _, w := range []float64{375, 768, 1024, 1440, 1920} {
		fmt.Printf("   视口 %4.0fpx → %d 个粒子\n", w, particlefield.ParticleCount(w, p.MaxParticles, p.Spacing))
	}
	if cfg.Cursor.Enabled {
		fmt.Printf("   自定义光标: 视口 ≥ %.0fpx 时启用\n", cfg.Cursor.MinViewportWidth)
	} else {
		fmt.Printf("   自定义光标: 关闭\n")
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Printf("❌ 序列化失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\n# 有效配置（含 %s* 环境变量）\n%s", config.EnvPrefix, out)
}
