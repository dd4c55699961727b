package distance

import (
	"math"

	"github.com/weaming/colorlab/colorspace"
)

// CIEDE2000 计算 ΔE*00 色差，参数因子全取 1
// 这是目前 CIE 推荐的感知色差公式，结果对称
func CIEDE2000(a, b colorspace.Color) float64 {
	return CIEDE2000Parametric(a, b, 1.0, 1.0, 1.0)
}

// CIEDE2000Parametric 计算带自定义参数因子的 ΔE*00 色差
// kl、kc、kh 分别为明度、彩度、色相的参数权重
func CIEDE2000Parametric(a, b colorspace.Color, kl, kc, kh float64) float64 {
	lab1 := colorspace.ToLab(a)
	lab2 := colorspace.ToLab(b)

	lBar := (lab1.L + lab2.L) / 2.0

	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	cBar := (c1 + c2) / 2.0

	// 中性轴附近压缩 a 分量
	g := 0.5 * (1.0 - math.Sqrt(pow7(cBar)/(pow7(cBar)+pow7(25.0))))
	a1p := lab1.A * (1.0 + g)
	a2p := lab2.A * (1.0 + g)

	c1p := math.Hypot(a1p, lab1.B)
	c2p := math.Hypot(a2p, lab2.B)
	cBarP := (c1p + c2p) / 2.0

	h1p := hueAngle(a1p, lab1.B)
	h2p := hueAngle(a2p, lab2.B)

	dl := lab2.L - lab1.L
	dc := c2p - c1p

	var dhp float64
	switch {
	case c1p*c2p == 0:
		dhp = 0
	case math.Abs(h2p-h1p) <= 180.0:
		dhp = h2p - h1p
	case h2p-h1p > 180.0:
		dhp = h2p - h1p - 360.0
	default:
		dhp = h2p - h1p + 360.0
	}
	dh := 2.0 * math.Sqrt(c1p*c2p) * math.Sin(radians(dhp)/2.0)

	var hBarP float64
	switch {
	case c1p*c2p == 0:
		hBarP = h1p + h2p
	case math.Abs(h1p-h2p) <= 180.0:
		hBarP = (h1p + h2p) / 2.0
	case h1p+h2p < 360.0:
		hBarP = (h1p + h2p + 360.0) / 2.0
	default:
		hBarP = (h1p + h2p - 360.0) / 2.0
	}

	t := 1.0 -
		0.17*math.Cos(radians(hBarP-30.0)) +
		0.24*math.Cos(radians(2.0*hBarP)) +
		0.32*math.Cos(radians(3.0*hBarP+6.0)) -
		0.20*math.Cos(radians(4.0*hBarP-63.0))

	lBar50 := (lBar - 50.0) * (lBar - 50.0)
	sl := 1.0 + 0.015*lBar50/math.Sqrt(20.0+lBar50)
	sc := 1.0 + 0.045*cBarP
	sh := 1.0 + 0.015*cBarP*t

	dTheta := 30.0 * math.Exp(-((hBarP-275.0)/25.0)*((hBarP-275.0)/25.0))
	rc := 2.0 * math.Sqrt(pow7(cBarP)/(pow7(cBarP)+pow7(25.0)))
	rt := -math.Sin(radians(2.0*dTheta)) * rc

	termL := dl / (kl * sl)
	termC := dc / (kc * sc)
	termH := dh / (kh * sh)

	return math.Sqrt(termL*termL + termC*termC + termH*termH + rt*termC*termH)
}

// hueAngle 返回 atan2 角度并归一到 [0, 360)
func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180.0 / math.Pi
	if h < 0 {
		h += 360.0
	}
	return h
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func pow7(x float64) float64 {
	x2 := x * x
	return x2 * x2 * x2 * x
}
