//go:build android

package game

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// prepareStorage 确保 Android 应用私有目录下的 gdata 目录存在且可写
//
// gdata 在 Android 上写入 /data/data/{package}/，但不会预先创建子目录。
func prepareStorage(appName string) error {
	pkg, err := androidPackage()
	if err != nil {
		return fmt.Errorf("detect android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("storage dir %s is not writable: %w", dir, err)
	}
	os.Remove(probe)
	return nil
}

// androidPackage 从 /proc/self/cmdline 读取包名（第一个 NUL 之前）
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
