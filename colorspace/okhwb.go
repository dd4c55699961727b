package colorspace

// Okhwb 表示 Oklab 框架下的 HWB 形式颜色
// H 为色相角（度 [0, 360)），W 为白量 [0, 1]，B 为黑量 [0, 1]
type Okhwb struct {
	H float64
	W float64
	B float64

	alpha float64
}

// NewOkhwb 创建 Okhwb 颜色，默认不透明
func NewOkhwb(h, w, b float64) Okhwb {
	return Okhwb{H: normalizeDegrees(h), W: w, B: b, alpha: 1.0}
}

// Components 返回 [H, W, B] 三分量
func (c Okhwb) Components() Vector3 {
	return Vector3{c.H, c.W, c.B}
}

// Alpha 返回不透明度 [0, 1]
func (c Okhwb) Alpha() float64 {
	return c.alpha
}

// WithAlpha 返回替换不透明度后的颜色
func (c Okhwb) WithAlpha(alpha float64) Okhwb {
	c.alpha = alpha
	return c
}

// ToOkhsv 转换回 HSV 形式：V = 1-B，S = 1 - W/V
// 白黑之和超过 1 时先等比归一
func (c Okhwb) ToOkhsv() Okhsv {
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

	return Okhsv{H: c.H, S: s, V: v, alpha: c.alpha}
}

// ToOklab 经 Okhsv 转换到 Oklab
func (c Okhwb) ToOklab() Oklab {
	return c.ToOkhsv().ToOklab()
}

// ToXYZ 经 Oklab 转换到三刺激值
func (c Okhwb) ToXYZ() XYZ {
	return c.ToOklab().ToXYZ()
}

// ToOkhwb 经 HSV 形式转换到 HWB 形式
func (c Oklab) ToOkhwb() Okhwb {
	return c.ToOkhsv().ToOkhwb()
}

// OkhwbFromXYZ 从三刺激值转换
func OkhwbFromXYZ(xyz XYZ) Okhwb {
	return OklabFromXYZ(xyz).ToOkhwb()
}
