package colorspace

import "math"

// Okhsl 表示 Oklab 框架下的 HSL 形式颜色
// H 为色相角（度 [0, 360)），S 为饱和度 [0, 1]，L 为感知明度 [0, 1]
// 饱和度定义为当前彩度与该明度处 sRGB 色域最大彩度的比值
type Okhsl struct {
	H float64
	S float64
	L float64

	alpha float64
}

// NewOkhsl 创建 Okhsl 颜色，默认不透明
func NewOkhsl(h, s, l float64) Okhsl {
	return Okhsl{H: normalizeDegrees(h), S: s, L: l, alpha: 1.0}
}

// Components 返回 [H, S, L] 三分量
func (c Okhsl) Components() Vector3 {
	return Vector3{c.H, c.S, c.L}
}

// Alpha 返回不透明度 [0, 1]
func (c Okhsl) Alpha() float64 {
	return c.alpha
}

// WithAlpha 返回替换不透明度后的颜色
func (c Okhsl) WithAlpha(alpha float64) Okhsl {
	c.alpha = alpha
	return c
}

// ToOklab 转换到 Oklab
// 明度经逆趾部函数还原，彩度按该明度处的色域上限缩放
func (c Okhsl) ToOklab() Oklab {
	h := c.H / 360.0
	l := toeInv(c.L)

	lCusp, cCusp := cuspForHue(h)
	maxC := maxChromaAtLightness(lCusp, cCusp, l)
	chroma := c.S * maxC

	rad := h * 2.0 * math.Pi
	return Oklab{
		L:     l,
		A:     chroma * math.Cos(rad),
		B:     chroma * math.Sin(rad),
		alpha: c.alpha,
	}
}

// ToXYZ 经 Oklab 转换到三刺激值
func (c Okhsl) ToXYZ() XYZ {
	return c.ToOklab().ToXYZ()
}

// ToOkhsl 转换到 HSL 形式，Okhsl.ToOklab 的逆
// 彩度接近零时视为无彩色，饱和度取零
func (c Oklab) ToOkhsl() Okhsl {
	h := normalizeDegrees(math.Atan2(c.B, c.A)*180.0/math.Pi) / 360.0
	chroma := math.Hypot(c.A, c.B)
	l := toe(c.L)

	s := 0.0
	if chroma >= 1e-4 {
		lCusp, cCusp := cuspForHue(h)
		maxC := maxChromaAtLightness(lCusp, cCusp, c.L)
		if maxC >= 1e-10 {
			s = math.Min(chroma/maxC, 1.0)
		}
	}

	return Okhsl{H: h * 360.0, S: s, L: l, alpha: c.alpha}
}

// OkhslFromXYZ 从三刺激值转换
func OkhslFromXYZ(xyz XYZ) Okhsl {
	return OklabFromXYZ(xyz).ToOkhsl()
}
