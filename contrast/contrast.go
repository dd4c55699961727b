// Package contrast 计算两色之间的明度对比：
// WCAG 2.x 对比度（网页可访问性阈值判定）与 Michelson 对比度
package contrast

import "github.com/weaming/colorlab/colorspace"

// WCAG 各级最低对比度阈值
const (
	AANormalText  = 4.5
	AALargeText   = 3.0
	AAANormalText = 7.0
	AAALargeText  = 4.5
)

// Ratio 表示一个 WCAG 2.x 对比度，范围 1:1（无对比）到 21:1（黑白）
type Ratio float64

// Value 返回对比度数值
func (r Ratio) Value() float64 {
	return float64(r)
}

// MeetsAA 判断是否达到 AA 级正文文字要求（≥ 4.5:1）
func (r Ratio) MeetsAA() bool {
	return float64(r) >= AANormalText
}

// MeetsAALargeText 判断是否达到 AA 级大号文字要求（≥ 3:1）
func (r Ratio) MeetsAALargeText() bool {
	return float64(r) >= AALargeText
}

// MeetsAAA 判断是否达到 AAA 级正文文字要求（≥ 7:1）
func (r Ratio) MeetsAAA() bool {
	return float64(r) >= AAANormalText
}

// MeetsAAALargeText 判断是否达到 AAA 级大号文字要求（≥ 4.5:1）
func (r Ratio) MeetsAAALargeText() bool {
	return float64(r) >= AAALargeText
}

// WCAG 计算两色的 WCAG 2.x 对比度 (L1+0.05)/(L2+0.05)
// 结果与参数顺序无关，始终不小于 1
func WCAG(a, b colorspace.Color) Ratio {
	l1 := a.ToXYZ().Luminance()
	l2 := b.ToXYZ().Luminance()

	lighter, darker := l1, l2
	if l2 > l1 {
		lighter, darker = l2, l1
	}

	return Ratio((lighter + 0.05) / (darker + 0.05))
}

// Michelson 计算 Michelson 对比度 (Lmax−Lmin)/(Lmax+Lmin)
// 结果范围 0（亮度相同）到 1（最大对比），与参数顺序无关
// 两色亮度皆为零时返回 0
func Michelson(a, b colorspace.Color) float64 {
	l1 := a.ToXYZ().Luminance()
	l2 := b.ToXYZ().Luminance()

	max, min := l1, l2
	if l2 > l1 {
		max, min = l2, l1
	}

	sum := max + min
	if sum == 0 {
		return 0
	}
	return (max - min) / sum
}
