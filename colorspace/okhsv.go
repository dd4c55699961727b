package colorspace

import "math"

// Okhsv 表示 Oklab 框架下的 HSV 形式颜色
// H 为色相角（度 [0, 360)），S 为饱和度 [0, 1]，V 为明度 [0, 1]
// 锥体模型：V=1, S=1 落在尖点（最大彩度），V=1, S=0 为白色
// 饱和度按 sRGB 色域边界归一化
type Okhsv struct {
	H float64
	S float64
	V float64

	alpha float64
}

// NewOkhsv 创建 Okhsv 颜色，默认不透明
func NewOkhsv(h, s, v float64) Okhsv {
	return Okhsv{H: normalizeDegrees(h), S: s, V: v, alpha: 1.0}
}

// Components 返回 [H, S, V] 三分量
func (c Okhsv) Components() Vector3 {
	return Vector3{c.H, c.S, c.V}
}

// Alpha 返回不透明度 [0, 1]
func (c Okhsv) Alpha() float64 {
	return c.alpha
}

// WithAlpha 返回替换不透明度后的颜色
func (c Okhsv) WithAlpha(alpha float64) Okhsv {
	c.alpha = alpha
	return c
}

// ToOklab 转换到 Oklab
// 先把 V 经逆趾部函数还原为 Oklab 明度，再沿尖点方向插值
func (c Okhsv) ToOklab() Oklab {
	h := c.H / 360.0
	lCusp, cCusp := cuspForHue(h)

	tv := toeInv(c.V)
	l := tv * (1.0 - c.S*(1.0-lCusp))
	chroma := tv * c.S * cCusp

	rad := h * 2.0 * math.Pi
	return Oklab{
		L:     l,
		A:     chroma * math.Cos(rad),
		B:     chroma * math.Sin(rad),
		alpha: c.alpha,
	}
}

// ToOkhwb 转换到 HWB 形式：W = (1-S)·V，B = 1-V
func (c Okhsv) ToOkhwb() Okhwb {
	return Okhwb{
		H:     c.H,
		W:     (1.0 - c.S) * c.V,
		B:     1.0 - c.V,
		alpha: c.alpha,
	}
}

// ToXYZ 经 Oklab 转换到三刺激值
func (c Okhsv) ToXYZ() XYZ {
	return c.ToOklab().ToXYZ()
}

// ToOkhsv 转换到 HSV 形式，Okhsv.ToOklab 的逆
// 尖点彩度或明度接近零时退化为无彩色
func (c Oklab) ToOkhsv() Okhsv {
	h := normalizeDegrees(math.Atan2(c.B, c.A)*180.0/math.Pi) / 360.0
	chroma := math.Hypot(c.A, c.B)

	lCusp, cCusp := cuspForHue(h)

	if cCusp < 1e-10 || c.L < 1e-10 {
		return Okhsv{H: h * 360.0, S: 0, V: toe(c.L), alpha: c.alpha}
	}

	tv := c.L + chroma*(1.0-lCusp)/cCusp
	v := toe(tv)
	s := 0.0
	if tv > 1e-10 {
		s = math.Min(chroma/(tv*cCusp), 1.0)
	}

	return Okhsv{H: h * 360.0, S: s, V: v, alpha: c.alpha}
}

// OkhsvFromXYZ 从三刺激值转换
func OkhsvFromXYZ(xyz XYZ) Okhsv {
	return OklabFromXYZ(xyz).ToOkhsv()
}
