package colorspace

import "math"

// HSV 表示某个 RGB 空间编码分量的六棱锥坐标形式
// H 为色相角（度 [0, 360)），S、V 为 [0, 1]
type HSV struct {
	H float64
	S float64
	V float64

	alpha float64
	space *RGBSpace
}

// HSL 表示某个 RGB 空间编码分量的双六棱锥坐标形式
type HSL struct {
	H float64
	S float64
	L float64

	alpha float64
	space *RGBSpace
}

// HWB 表示色相 + 白量 + 黑量形式
type HWB struct {
	H float64
	W float64
	B float64

	alpha float64
	space *RGBSpace
}

// HSI 表示色相 + 饱和度 + 强度形式，强度为三分量算术平均
type HSI struct {
	H float64
	S float64
	I float64

	alpha float64
	space *RGBSpace
}

// NewHSV 在指定空间创建 HSV 颜色，默认不透明
func NewHSV(space *RGBSpace, h, s, v float64) HSV {
	return HSV{H: normalizeDegrees(h), S: s, V: v, alpha: 1.0, space: space}
}

// NewHSL 在指定空间创建 HSL 颜色，默认不透明
func NewHSL(space *RGBSpace, h, s, l float64) HSL {
	return HSL{H: normalizeDegrees(h), S: s, L: l, alpha: 1.0, space: space}
}

// NewHWB 在指定空间创建 HWB 颜色，默认不透明
func NewHWB(space *RGBSpace, h, w, b float64) HWB {
	return HWB{H: normalizeDegrees(h), W: w, B: b, alpha: 1.0, space: space}
}

// NewHSI 在指定空间创建 HSI 颜色，默认不透明
func NewHSI(space *RGBSpace, h, s, i float64) HSI {
	return HSI{H: normalizeDegrees(h), S: s, I: i, alpha: 1.0, space: space}
}

// rgbHue 由编码分量计算六段式色相（归一化 [0, 1)），无彩色返回 0
func rgbHue(r, g, b, max, delta float64) float64 {
	if delta <= 0 {
		return 0
	}

	var h float64
	switch {
	case max == r:
		h = math.Mod((g-b)/delta, 6.0)
		if h < 0 {
			h += 6.0
		}
		h /= 6.0
	case max == g:
		h = (2.0 + (b-r)/delta) / 6.0
	default:
		h = (4.0 + (r-g)/delta) / 6.0
	}
	return h
}

// hueToRGB 由色相（度）、彩度和底色量还原编码分量
func hueToRGB(hDeg, chroma, m float64) (r, g, b float64) {
	sector := hDeg / 60.0
	x := chroma * (1.0 - math.Abs(math.Mod(sector, 2.0)-1.0))

	switch {
	case sector < 1:
		r, g, b = chroma, x, 0
	case sector < 2:
		r, g, b = x, chroma, 0
	case sector < 3:
		r, g, b = 0, chroma, x
	case sector < 4:
		r, g, b = 0, x, chroma
	case sector < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, x, 0
	}
	return r + m, g + m, b + m
}

// Space 返回所属 RGB 空间，未指定时默认 sRGB
func (c HSV) Space() *RGBSpace {
	if c.space == nil {
		return SRGB
	}
	return c.space
}

// Components 返回 [H, S, V] 三分量
func (c HSV) Components() Vector3 { return Vector3{c.H, c.S, c.V} }

// Alpha 返回不透明度 [0, 1]
func (c HSV) Alpha() float64 { return c.alpha }

// WithAlpha 返回替换不透明度后的颜色
func (c HSV) WithAlpha(alpha float64) HSV {
	c.alpha = alpha
	return c
}

// ToRGB 还原为编码 RGB 颜色
func (c HSV) ToRGB() RGB {
	chroma := c.V * c.S
	m := c.V - chroma
	r, g, b := hueToRGB(c.H, chroma, m)

	return RGB{R: r, G: g, B: b, alpha: c.alpha, space: c.Space()}
}

// ToHWB 转换到 HWB 形式：W = (1-S)·V，B = 1-V
func (c HSV) ToHWB() HWB {
	return HWB{H: c.H, W: (1.0 - c.S) * c.V, B: 1.0 - c.V, alpha: c.alpha, space: c.space}
}

// ToXYZ 经 RGB 转换到三刺激值
func (c HSV) ToXYZ() XYZ { return c.ToRGB().ToXYZ() }

// ToHSV 把编码分量转换到 HSV 形式，无彩色时色相取 0
func (c RGB) ToHSV() HSV {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	delta := max - min

	s := 0.0
	if delta > 0 && max > 0 {
		s = delta / max
	}

	return HSV{
		H:     rgbHue(c.R, c.G, c.B, max, delta) * 360.0,
		S:     s,
		V:     max,
		alpha: c.alpha,
		space: c.space,
	}
}

// Space 返回所属 RGB 空间，未指定时默认 sRGB
func (c HSL) Space() *RGBSpace {
	if c.space == nil {
		return SRGB
	}
	return c.space
}

// Components 返回 [H, S, L] 三分量
func (c HSL) Components() Vector3 { return Vector3{c.H, c.S, c.L} }

// Alpha 返回不透明度 [0, 1]
func (c HSL) Alpha() float64 { return c.alpha }

// WithAlpha 返回替换不透明度后的颜色
func (c HSL) WithAlpha(alpha float64) HSL {
	c.alpha = alpha
	return c
}

// ToRGB 还原为编码 RGB 颜色
func (c HSL) ToRGB() RGB {
	chroma := (1.0 - math.Abs(2.0*c.L-1.0)) * c.S
	m := c.L - chroma/2.0
	r, g, b := hueToRGB(c.H, chroma, m)

	return RGB{R: r, G: g, B: b, alpha: c.alpha, space: c.Space()}
}

// ToXYZ 经 RGB 转换到三刺激值
func (c HSL) ToXYZ() XYZ { return c.ToRGB().ToXYZ() }

// ToHSL 把编码分量转换到 HSL 形式
func (c RGB) ToHSL() HSL {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	delta := max - min
	l := (max + min) / 2.0

	s := 0.0
	if delta > 0 {
		if l <= 0.5 {
			s = delta / (max + min)
		} else {
			s = delta / (2.0 - max - min)
		}
	}

	return HSL{
		H:     rgbHue(c.R, c.G, c.B, max, delta) * 360.0,
		S:     s,
		L:     l,
		alpha: c.alpha,
		space: c.space,
	}
}

// Space 返回所属 RGB 空间，未指定时默认 sRGB
func (c HWB) Space() *RGBSpace {
	if c.space == nil {
		return SRGB
	}
	return c.space
}

// Components 返回 [H, W, B] 三分量
func (c HWB) Components() Vector3 { return Vector3{c.H, c.W, c.B} }

// Alpha 返回不透明度 [0, 1]
func (c HWB) Alpha() float64 { return c.alpha }

// WithAlpha 返回替换不透明度后的颜色
func (c HWB) WithAlpha(alpha float64) HWB {
	c.alpha = alpha
	return c
}

// ToHSV 转换回 HSV 形式，白黑之和超过 1 时先等比归一
func (c HWB) ToHSV() HSV {
	w, b := c.W, c.B
	if sum := w + b; sum > 1.0 {
		w /= sum
		b /= sum
	}

	v := 1.0 - b
	s := 0.0
	if v > 0 {
		s = 1.0 - w/v
	}

	return HSV{H: c.H, S: s, V: v, alpha: c.alpha, space: c.space}
}

// ToRGB 经 HSV 还原为编码 RGB 颜色
func (c HWB) ToRGB() RGB { return c.ToHSV().ToRGB() }

// ToXYZ 经 RGB 转换到三刺激值
func (c HWB) ToXYZ() XYZ { return c.ToRGB().ToXYZ() }

// ToHWB 把编码分量转换到 HWB 形式
func (c RGB) ToHWB() HWB {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))

	return HWB{
		H:     rgbHue(c.R, c.G, c.B, max, max-min) * 360.0,
		W:     min,
		B:     1.0 - max,
		alpha: c.alpha,
		space: c.space,
	}
}

// Space 返回所属 RGB 空间，未指定时默认 sRGB
func (c HSI) Space() *RGBSpace {
	if c.space == nil {
		return SRGB
	}
	return c.space
}

// Components 返回 [H, S, I] 三分量
func (c HSI) Components() Vector3 { return Vector3{c.H, c.S, c.I} }

// Alpha 返回不透明度 [0, 1]
func (c HSI) Alpha() float64 { return c.alpha }

// WithAlpha 返回替换不透明度后的颜色
func (c HSI) WithAlpha(alpha float64) HSI {
	c.alpha = alpha
	return c
}

// ToRGB 还原为编码 RGB 颜色，按色相所在 120° 扇区分段求解
func (c HSI) ToRGB() RGB {
	if c.S <= 0 {
		return RGB{R: c.I, G: c.I, B: c.I, alpha: c.alpha, space: c.Space()}
	}
	if c.I <= 0 {
		return RGB{alpha: c.alpha, space: c.Space()}
	}

	sector := func(deg float64) float64 {
		rad := deg * math.Pi / 180.0
		return c.I * (1.0 + c.S*math.Cos(rad)/math.Cos(math.Pi/3.0-rad))
	}

	var r, g, b float64
	switch {
	case c.H < 120.0:
		b = c.I * (1.0 - c.S)
		r = sector(c.H)
		g = 3.0*c.I - r - b
	case c.H < 240.0:
		r = c.I * (1.0 - c.S)
		g = sector(c.H - 120.0)
		b = 3.0*c.I - r - g
	default:
		g = c.I * (1.0 - c.S)
		b = sector(c.H - 240.0)
		r = 3.0*c.I - g - b
	}

	return RGB{R: r, G: g, B: b, alpha: c.alpha, space: c.Space()}
}

// ToXYZ 经 RGB 转换到三刺激值
func (c HSI) ToXYZ() XYZ { return c.ToRGB().ToXYZ() }

// ToHSI 把编码分量转换到 HSI 形式
// 色相用余弦公式求解，B > G 时取补角
func (c RGB) ToHSI() HSI {
	r, g, b := c.R, c.G, c.B
	sum := r + g + b
	i := sum / 3.0

	if sum <= 0 {
		return HSI{alpha: c.alpha, space: c.space}
	}

	min := math.Min(r, math.Min(g, b))
	s := 1.0 - 3.0*min/sum

	h := 0.0
	if s > 0 {
		num := 0.5 * ((r - g) + (r - b))
		den := math.Sqrt((r-g)*(r-g) + (r-b)*(g-b))
		if den > 0 {
			h = math.Acos(math.Max(-1.0, math.Min(1.0, num/den)))
			if b > g {
				h = 2.0*math.Pi - h
			}
			h = h * 180.0 / math.Pi
		}
	}

	return HSI{H: h, S: s, I: i, alpha: c.alpha, space: c.space}
}
