package distance

import (
	"math"

	"github.com/weaming/colorlab/colorspace"
)

// CIE94 图形艺术应用的默认权重
const (
	GraphicArtsKL = 1.0
	GraphicArtsK1 = 0.045
	GraphicArtsK2 = 0.015
)

// CIE94 纺织应用的权重
const (
	TextilesKL = 2.0
	TextilesK1 = 0.048
	TextilesK2 = 0.014
)

// CIE94 计算 ΔE*94 色差，使用图形艺术权重（kL=1、K1=0.045、K2=0.015）
// 公式不对称：第一个参数为参考色，第二个为样本色
func CIE94(reference, sample colorspace.Color) float64 {
	return CIE94Parametric(reference, sample, GraphicArtsKL, GraphicArtsK1, GraphicArtsK2)
}

// CIE94Textiles 计算 ΔE*94 色差，使用纺织权重（kL=2、K1=0.048、K2=0.014）
func CIE94Textiles(reference, sample colorspace.Color) float64 {
	return CIE94Parametric(reference, sample, TextilesKL, TextilesK1, TextilesK2)
}

// CIE94Parametric 计算带自定义权重因子的 ΔE*94 色差
// kl 为明度权重，k1、k2 分别为彩度与色相的加权系数
func CIE94Parametric(reference, sample colorspace.Color, kl, k1, k2 float64) float64 {
	ref := colorspace.ToLab(reference)
	smp := colorspace.ToLab(sample)

	dl := ref.L - smp.L
	da := ref.A - smp.A
	db := ref.B - smp.B

	c1 := math.Sqrt(ref.A*ref.A + ref.B*ref.B)
	c2 := math.Sqrt(smp.A*smp.A + smp.B*smp.B)
	dc := c1 - c2

	// ΔH² 由分量差推出，浮点误差可能略小于零
	dhSq := math.Max(da*da+db*db-dc*dc, 0)

	sc := 1.0 + k1*c1
	sh := 1.0 + k2*c1

	termL := dl / kl
	termC := dc / sc
	return math.Sqrt(termL*termL + termC*termC + dhSq/(sh*sh))
}
