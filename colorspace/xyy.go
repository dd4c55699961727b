package colorspace

// XyY 表示 CIE xyY 颜色：色度坐标 (x, y) + 亮度 Y
// 色度与亮度解耦，常用于描述光源和色域边界
type XyY struct {
	X   float64 // 色度 x
	Y   float64 // 色度 y
	Lum float64 // 亮度 Y

	alpha float64
	ctx   Context
}

// NewXyY 创建 xyY 颜色，默认不透明、默认观察环境
func NewXyY(x, y, lum float64) XyY {
	return XyY{X: x, Y: y, Lum: lum, alpha: 1.0, ctx: DefaultContext()}
}

// Components 返回 [x, y, Y] 三分量
func (c XyY) Components() Vector3 {
	return Vector3{c.X, c.Y, c.Lum}
}

// Alpha 返回不透明度 [0, 1]
func (c XyY) Alpha() float64 {
	return c.alpha
}

// Context 返回观察环境
func (c XyY) Context() Context {
	return c.ctx
}

// WithAlpha 返回替换不透明度后的颜色
func (c XyY) WithAlpha(alpha float64) XyY {
	c.alpha = alpha
	return c
}

// Chromaticity 返回色度坐标部分
func (c XyY) Chromaticity() Xy {
	return Xy{X: c.X, Y: c.Y}
}

// AdaptTo 把颜色适应到新的观察环境（经 XYZ 中转）
func (c XyY) AdaptTo(ctx Context) XyY {
	if c.ctx.SameWhite(ctx) {
		c.ctx = ctx
		return c
	}
	return XyYFromXYZ(c.ToXYZ().AdaptTo(ctx))
}

// ToXYZ 按亮度展开为三刺激值，色度 y 为零时返回黑色
func (c XyY) ToXYZ() XYZ {
	v := c.Chromaticity().Tristimulus(c.Lum)
	return XYZ{X: v[0], Y: v[1], Z: v[2], alpha: c.alpha, ctx: c.ctx}
}

// XyYFromXYZ 从三刺激值转换
// 三分量之和为零时色度取 (0, 0)，亮度保留
func XyYFromXYZ(xyz XYZ) XyY {
	chromaticity := xyz.Chromaticity()

	return XyY{
		X:     chromaticity.X,
		Y:     chromaticity.Y,
		Lum:   xyz.Y,
		alpha: xyz.alpha,
		ctx:   xyz.ctx,
	}
}
