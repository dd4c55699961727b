package colorspace

import "math"

// CMY 表示某个 RGB 空间编码分量的减色法形式，各分量为 [0, 1]
type CMY struct {
	C float64
	M float64
	Y float64

	alpha float64
	space *RGBSpace
}

// CMYK 表示带黑版的减色法形式
type CMYK struct {
	C float64
	M float64
	Y float64
	K float64

	alpha float64
	space *RGBSpace
}

// NewCMY 在指定空间创建 CMY 颜色，默认不透明
func NewCMY(space *RGBSpace, c, m, y float64) CMY {
	return CMY{C: c, M: m, Y: y, alpha: 1.0, space: space}
}

// NewCMYK 在指定空间创建 CMYK 颜色，默认不透明
func NewCMYK(space *RGBSpace, c, m, y, k float64) CMYK {
	return CMYK{C: c, M: m, Y: y, K: k, alpha: 1.0, space: space}
}

// Space 返回所属 RGB 空间，未指定时默认 sRGB
func (c CMY) Space() *RGBSpace {
	if c.space == nil {
		return SRGB
	}
	return c.space
}

// Components 返回 [C, M, Y] 三分量
func (c CMY) Components() Vector3 { return Vector3{c.C, c.M, c.Y} }

// Alpha 返回不透明度 [0, 1]
func (c CMY) Alpha() float64 { return c.alpha }

// WithAlpha 返回替换不透明度后的颜色
func (c CMY) WithAlpha(alpha float64) CMY {
	c.alpha = alpha
	return c
}

// ToRGB 还原为编码 RGB 颜色（各分量取补）
func (c CMY) ToRGB() RGB {
	return RGB{R: 1.0 - c.C, G: 1.0 - c.M, B: 1.0 - c.Y, alpha: c.alpha, space: c.Space()}
}

// ToCMYK 抽取黑版：K 取三分量最小值，其余按 1-K 归一
// 纯黑（K=1）时彩色分量取零
func (c CMY) ToCMYK() CMYK {
	k := math.Min(c.C, math.Min(c.M, c.Y))
	if k >= 1.0 {
		return CMYK{K: 1.0, alpha: c.alpha, space: c.space}
	}

	d := 1.0 - k
	return CMYK{
		C:     (c.C - k) / d,
		M:     (c.M - k) / d,
		Y:     (c.Y - k) / d,
		K:     k,
		alpha: c.alpha,
		space: c.space,
	}
}

// ToXYZ 经 RGB 转换到三刺激值
func (c CMY) ToXYZ() XYZ { return c.ToRGB().ToXYZ() }

// ToCMY 把编码分量转换到减色法形式
func (c RGB) ToCMY() CMY {
	return CMY{C: 1.0 - c.R, M: 1.0 - c.G, Y: 1.0 - c.B, alpha: c.alpha, space: c.space}
}

// Space 返回所属 RGB 空间，未指定时默认 sRGB
func (c CMYK) Space() *RGBSpace {
	if c.space == nil {
		return SRGB
	}
	return c.space
}

// Components 返回 [C, M, Y, K] 四分量
func (c CMYK) Components() [4]float64 { return [4]float64{c.C, c.M, c.Y, c.K} }

// Alpha 返回不透明度 [0, 1]
func (c CMYK) Alpha() float64 { return c.alpha }

// WithAlpha 返回替换不透明度后的颜色
func (c CMYK) WithAlpha(alpha float64) CMYK {
	c.alpha = alpha
	return c
}

// ToCMY 合并黑版
func (c CMYK) ToCMY() CMY {
	d := 1.0 - c.K
	return CMY{
		C:     c.C*d + c.K,
		M:     c.M*d + c.K,
		Y:     c.Y*d + c.K,
		alpha: c.alpha,
		space: c.space,
	}
}

// ToRGB 经 CMY 还原为编码 RGB 颜色
func (c CMYK) ToRGB() RGB { return c.ToCMY().ToRGB() }

// ToXYZ 经 RGB 转换到三刺激值
func (c CMYK) ToXYZ() XYZ { return c.ToRGB().ToXYZ() }

// ToCMYK 把编码分量转换到带黑版的减色法形式
func (c RGB) ToCMYK() CMYK {
	return c.ToCMY().ToCMYK()
}
