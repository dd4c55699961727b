package distance

import (
	"math"

	"github.com/weaming/colorlab/colorspace"
)

// CMC 计算 CMC l:c 色差，可感知性权重（l=1、c=1）
// 公式不对称：第一个参数为参考色，第二个为样本色
func CMC(reference, sample colorspace.Color) float64 {
	return CMCParametric(reference, sample, 1.0, 1.0)
}

// CMCAcceptability 计算 CMC l:c 色差，可接受性权重（l=2、c=1）
func CMCAcceptability(reference, sample colorspace.Color) float64 {
	return CMCParametric(reference, sample, 2.0, 1.0)
}

// CMCParametric 计算带自定义 l、c 因子的 CMC l:c 色差
func CMCParametric(reference, sample colorspace.Color, l, c float64) float64 {
	ref := colorspace.ToLab(reference)
	smp := colorspace.ToLab(sample)

	refLCh := ref.ToLCh()
	smpLCh := smp.ToLCh()

	l1, c1, h1 := refLCh.L, refLCh.C, refLCh.H
	dl := l1 - smpLCh.L
	dc := c1 - smpLCh.C

	da := ref.A - smp.A
	db := ref.B - smp.B
	dhSq := math.Max(da*da+db*db-dc*dc, 0)

	sl := 0.511
	if l1 >= 16.0 {
		sl = 0.040975 * l1 / (1.0 + 0.01765*l1)
	}
	sc := 0.0638*c1/(1.0+0.0131*c1) + 0.638

	c1p4 := c1 * c1 * c1 * c1
	f := math.Sqrt(c1p4 / (c1p4 + 1900.0))

	h1Rad := h1 * math.Pi / 180.0
	var t float64
	if h1 >= 164.0 && h1 <= 345.0 {
		t = 0.56 + math.Abs(0.2*math.Cos(h1Rad+168.0*math.Pi/180.0))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos(h1Rad+35.0*math.Pi/180.0))
	}
	sh := sc * (f*t + 1.0 - f)

	termL := dl / (l * sl)
	termC := dc / (c * sc)
	return math.Sqrt(termL*termL + termC*termC + dhSq/(sh*sh))
}
