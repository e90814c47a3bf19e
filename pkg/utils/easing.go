package utils

// Approach 指数逼近：每次调用向目标移动剩余距离的 factor 比例
//
// factor ∈ (0, 1]；factor = 1 时直接到达目标。
// 用于光标圆环的缓动跟随：ring += (target - ring) * factor
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
