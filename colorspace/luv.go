package colorspace

import "math"

// Luv 表示 CIE 1976 L*u*v* 颜色
// 与 Lab 同为感知意图的均匀空间，u/v 基于 u'v' 均匀色度图
type Luv struct {
	L float64
	U float64
	V float64

	alpha float64
	ctx   Context
}

// LChuv 表示 L*u*v* 的圆柱坐标形式
type LChuv struct {
	L float64
	C float64
	H float64 // 色相角，度 [0, 360)

	alpha float64
	ctx   Context
}

// NewLuv 创建 Luv 颜色，默认不透明、默认观察环境
func NewLuv(l, u, v float64) Luv {
	return Luv{L: l, U: u, V: v, alpha: 1.0, ctx: DefaultContext()}
}

// Components 返回 [L, u, v] 三分量
func (c Luv) Components() Vector3 {
	return Vector3{c.L, c.U, c.V}
}

// Alpha 返回不透明度 [0, 1]
func (c Luv) Alpha() float64 {
	return c.alpha
}

// Context 返回观察环境
func (c Luv) Context() Context {
	return c.ctx
}

// WithAlpha 返回替换不透明度后的颜色
func (c Luv) WithAlpha(alpha float64) Luv {
	c.alpha = alpha
	return c
}

// AdaptTo 把颜色适应到新的观察环境（经 XYZ 中转）
func (c Luv) AdaptTo(ctx Context) Luv {
	if c.ctx.SameWhite(ctx) {
		c.ctx = ctx
		return c
	}
	return LuvFromXYZ(c.ToXYZ().AdaptTo(ctx))
}

// ToXYZ 转换到三刺激值
// L 为零时直接返回黑色，避免除零
func (c Luv) ToXYZ() XYZ {
	if c.L == 0 {
		return XYZ{alpha: c.alpha, ctx: c.ctx}
	}

	white := c.ctx.ReferenceWhite()
	un, vn := uvPrime(white)

	up := c.U/(13.0*c.L) + un
	vp := c.V/(13.0*c.L) + vn

	y := white[1] * labFInv((c.L+16.0)/116.0)

	if vp == 0 {
		return XYZ{Y: y, alpha: c.alpha, ctx: c.ctx}
	}

	x := y * 9.0 * up / (4.0 * vp)
	z := y * (12.0 - 3.0*up - 20.0*vp) / (4.0 * vp)

	return XYZ{X: x, Y: y, Z: z, alpha: c.alpha, ctx: c.ctx}
}

// ToLChuv 转换到圆柱坐标形式（直接极坐标变换）
func (c Luv) ToLChuv() LChuv {
	chroma := math.Hypot(c.U, c.V)
	hue := normalizeDegrees(math.Atan2(c.V, c.U) * 180.0 / math.Pi)

	return LChuv{L: c.L, C: chroma, H: hue, alpha: c.alpha, ctx: c.ctx}
}

// LuvFromXYZ 从三刺激值转换，使用其观察环境的参考白
func LuvFromXYZ(xyz XYZ) Luv {
	white := xyz.ctx.ReferenceWhite()

	l := 116.0*labF(safeDiv(xyz.Y, white[1])) - 16.0

	up, vp := uvPrime(xyz.Components())
	un, vn := uvPrime(white)

	return Luv{
		L:     l,
		U:     13.0 * l * (up - un),
		V:     13.0 * l * (vp - vn),
		alpha: xyz.alpha,
		ctx:   xyz.ctx,
	}
}

// Components 返回 [L, C, H] 三分量
func (c LChuv) Components() Vector3 {
	return Vector3{c.L, c.C, c.H}
}

// Alpha 返回不透明度 [0, 1]
func (c LChuv) Alpha() float64 {
	return c.alpha
}

// Context 返回观察环境
func (c LChuv) Context() Context {
	return c.ctx
}

// ToLuv 转换回直角坐标形式
func (c LChuv) ToLuv() Luv {
	rad := c.H * math.Pi / 180.0

	return Luv{
		L:     c.L,
		U:     c.C * math.Cos(rad),
		V:     c.C * math.Sin(rad),
		alpha: c.alpha,
		ctx:   c.ctx,
	}
}

// ToXYZ 经 Luv 转换到三刺激值
func (c LChuv) ToXYZ() XYZ {
	return c.ToLuv().ToXYZ()
}

// LChuvFromXYZ 从三刺激值转换
func LChuvFromXYZ(xyz XYZ) LChuv {
	return LuvFromXYZ(xyz).ToLChuv()
}

// uvPrime 计算 CIE 1976 u'v' 均匀色度坐标
func uvPrime(v Vector3) (float64, float64) {
	denominator := v[0] + 15.0*v[1] + 3.0*v[2]
	if denominator == 0 {
		return 0, 0
	}
	return 4.0 * v[0] / denominator, 9.0 * v[1] / denominator
}
