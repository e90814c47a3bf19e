package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "portfolio_fx"

// OpenStorage 打开跨平台存储
//
// 失败时返回 nil 和错误；调用方可以继续以降级模式运行
// （SettingsManager 接受 nil Manager）。
func OpenStorage(appName string) (*gdata.Manager, error) {
	if err := prepareStorage(appName); err != nil {
		return nil, fmt.Errorf("failed to prepare storage %q: %w", appName, err)
	}
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage %q: %w", appName, err)
	}
	return m, nil
}
