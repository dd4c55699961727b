// Package distance 提供各种色差公式：
// 从简单的几何距离（Euclidean、Manhattan）到感知均匀的
// CIE76、CIE94、CMC l:c 与 CIEDE2000
package distance

import (
	"math"

	"github.com/weaming/colorlab/colorspace"
)

// JND 恰可察觉差：ΔE 低于该值时普通观察者无法分辨两色
const JND = 1.0

// Euclidean 计算两色在 Lab 空间中的欧氏距离（即 ΔE*76 的几何形式）
func Euclidean(a, b colorspace.Color) float64 {
	la, lb := colorspace.ToLab(a), colorspace.ToLab(b)

	dl := la.L - lb.L
	da := la.A - lb.A
	db := la.B - lb.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// Manhattan 计算两色在 Lab 空间中的曼哈顿距离（各分量绝对差之和）
func Manhattan(a, b colorspace.Color) float64 {
	la, lb := colorspace.ToLab(a), colorspace.ToLab(b)

	return math.Abs(la.L-lb.L) + math.Abs(la.A-lb.A) + math.Abs(la.B-lb.B)
}

// CIE76 计算 ΔE*76 色差，定义为 Lab 空间的欧氏距离
// 约 2.3 为一个 JND
func CIE76(a, b colorspace.Color) float64 {
	return Euclidean(a, b)
}
