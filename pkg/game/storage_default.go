//go:build !android

package game

// prepareStorage 非 Android 平台无需准备，gdata 会自行创建目录
func prepareStorage(string) error {
	return nil
}
