package colorspace

// XYZ 表示 CIE 1931 三刺激值，本库的规范中转空间
// 所有色彩模型都定义与 XYZ 的互转，任意两模型经 XYZ 中转
type XYZ struct {
	X float64
	Y float64
	Z float64

	alpha float64
	ctx   Context
}

// NewXYZ 创建 XYZ 颜色，默认不透明、默认观察环境
func NewXYZ(x, y, z float64) XYZ {
	return XYZ{X: x, Y: y, Z: z, alpha: 1.0, ctx: DefaultContext()}
}

// XYZFromVector 从三分量向量创建 XYZ 颜色
func XYZFromVector(v Vector3, ctx Context) XYZ {
	return XYZ{X: v[0], Y: v[1], Z: v[2], alpha: 1.0, ctx: ctx}
}

// Components 返回 [X, Y, Z] 三分量
func (c XYZ) Components() Vector3 {
	return Vector3{c.X, c.Y, c.Z}
}

// Alpha 返回不透明度 [0, 1]
func (c XYZ) Alpha() float64 {
	return c.alpha
}

// Context 返回观察环境
func (c XYZ) Context() Context {
	return c.ctx
}

// WithAlpha 返回替换不透明度后的颜色
func (c XYZ) WithAlpha(alpha float64) XYZ {
	c.alpha = alpha
	return c
}

// WithContext 返回替换观察环境标签后的颜色（不做色适应）
func (c XYZ) WithContext(ctx Context) XYZ {
	c.ctx = ctx
	return c
}

// ToXYZ 返回自身，满足 Color 接口
func (c XYZ) ToXYZ() XYZ {
	return c
}

// AdaptTo 把颜色适应到新的观察环境
// 参考白数值完全相等时只更新环境标签，分量保持不变；
// 否则用目标环境的色适应变换做锥响应缩放，不透明度原样保留
func (c XYZ) AdaptTo(ctx Context) XYZ {
	sourceWhite := c.ctx.ReferenceWhite()
	targetWhite := ctx.ReferenceWhite()

	if sourceWhite == targetWhite {
		return c.WithContext(ctx)
	}

	adapted := ctx.CAT.Adapt(c.Components(), sourceWhite, targetWhite)

	return XYZ{
		X:     adapted[0],
		Y:     adapted[1],
		Z:     adapted[2],
		alpha: c.alpha,
		ctx:   ctx,
	}
}

// Chromaticity 返回 CIE 1931 xy 色度坐标
func (c XYZ) Chromaticity() Xy {
	return XyFromTristimulus(c.Components())
}

// Luminance 返回亮度分量 Y
func (c XYZ) Luminance() float64 {
	return c.Y
}

// ToLMS 经观察环境的色适应矩阵转换到锥响应空间
func (c XYZ) ToLMS() LMS {
	v := c.ctx.CAT.Matrix().Apply(c.Components())
	return LMS{L: v[0], M: v[1], S: v[2], alpha: c.alpha, ctx: c.ctx}
}
