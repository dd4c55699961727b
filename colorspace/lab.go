package colorspace

import "math"

// CIE L*a*b* 压缩函数常量
const (
	labDelta       = 6.0 / 29.0
	labDeltaCubed  = labDelta * labDelta * labDelta
	labThreeDeltaSq = 3.0 * labDelta * labDelta
)

// Lab 表示 CIE 1976 L*a*b* 颜色
// L 为明度 [0, 100]，a 为绿-红轴，b 为蓝-黄轴，均相对观察环境的参考白
type Lab struct {
	L float64
	A float64
	B float64

	alpha float64
	ctx   Context
}

// LCh 表示 L*a*b* 的圆柱坐标形式（明度、彩度、色相角）
type LCh struct {
	L float64
	C float64
	H float64 // 色相角，度 [0, 360)

	alpha float64
	ctx   Context
}

// NewLab 创建 Lab 颜色，默认不透明、默认观察环境
func NewLab(l, a, b float64) Lab {
	return Lab{L: l, A: a, B: b, alpha: 1.0, ctx: DefaultContext()}
}

// NewLCh 创建 LCh 颜色，默认不透明、默认观察环境
func NewLCh(l, c, h float64) LCh {
	return LCh{L: l, C: c, H: normalizeDegrees(h), alpha: 1.0, ctx: DefaultContext()}
}

// Components 返回 [L, a, b] 三分量
func (c Lab) Components() Vector3 {
	return Vector3{c.L, c.A, c.B}
}

// Alpha 返回不透明度 [0, 1]
func (c Lab) Alpha() float64 {
	return c.alpha
}

// Context 返回观察环境
func (c Lab) Context() Context {
	return c.ctx
}

// WithAlpha 返回替换不透明度后的颜色
func (c Lab) WithAlpha(alpha float64) Lab {
	c.alpha = alpha
	return c
}

// WithContext 返回替换观察环境标签后的颜色（不做色适应）
func (c Lab) WithContext(ctx Context) Lab {
	c.ctx = ctx
	return c
}

// AdaptTo 把颜色适应到新的观察环境（经 XYZ 中转）
// 参考白相同时只更新标签
func (c Lab) AdaptTo(ctx Context) Lab {
	if c.ctx.SameWhite(ctx) {
		return c.WithContext(ctx)
	}
	return LabFromXYZ(c.ToXYZ().AdaptTo(ctx))
}

// ToXYZ 转换到三刺激值，相对观察环境的参考白
func (c Lab) ToXYZ() XYZ {
	white := c.ctx.ReferenceWhite()

	fy := (c.L + 16.0) / 116.0
	fx := fy + c.A/500.0
	fz := fy - c.B/200.0

	return XYZ{
		X:     white[0] * labFInv(fx),
		Y:     white[1] * labFInv(fy),
		Z:     white[2] * labFInv(fz),
		alpha: c.alpha,
		ctx:   c.ctx,
	}
}

// ToLCh 转换到圆柱坐标形式（直接极坐标变换，不经 XYZ）
func (c Lab) ToLCh() LCh {
	chroma := math.Hypot(c.A, c.B)
	hue := normalizeDegrees(math.Atan2(c.B, c.A) * 180.0 / math.Pi)

	return LCh{L: c.L, C: chroma, H: hue, alpha: c.alpha, ctx: c.ctx}
}

// LabFromXYZ 从三刺激值转换，使用其观察环境的参考白
func LabFromXYZ(xyz XYZ) Lab {
	white := xyz.ctx.ReferenceWhite()

	fx := labF(safeDiv(xyz.X, white[0]))
	fy := labF(safeDiv(xyz.Y, white[1]))
	fz := labF(safeDiv(xyz.Z, white[2]))

	return Lab{
		L:     116.0*fy - 16.0,
		A:     500.0 * (fx - fy),
		B:     200.0 * (fy - fz),
		alpha: xyz.alpha,
		ctx:   xyz.ctx,
	}
}

// Components 返回 [L, C, H] 三分量
func (c LCh) Components() Vector3 {
	return Vector3{c.L, c.C, c.H}
}

// Alpha 返回不透明度 [0, 1]
func (c LCh) Alpha() float64 {
	return c.alpha
}

// Context 返回观察环境
func (c LCh) Context() Context {
	return c.ctx
}

// WithAlpha 返回替换不透明度后的颜色
func (c LCh) WithAlpha(alpha float64) LCh {
	c.alpha = alpha
	return c
}

// ToLab 转换回直角坐标形式（直接极坐标变换，不经 XYZ）
func (c LCh) ToLab() Lab {
	rad := c.H * math.Pi / 180.0

	return Lab{
		L:     c.L,
		A:     c.C * math.Cos(rad),
		B:     c.C * math.Sin(rad),
		alpha: c.alpha,
		ctx:   c.ctx,
	}
}

// ToXYZ 经 Lab 转换到三刺激值
func (c LCh) ToXYZ() XYZ {
	return c.ToLab().ToXYZ()
}

// AdaptTo 把颜色适应到新的观察环境
func (c LCh) AdaptTo(ctx Context) LCh {
	if c.ctx.SameWhite(ctx) {
		c.ctx = ctx
		return c
	}
	return LabFromXYZ(c.ToXYZ().AdaptTo(ctx)).ToLCh()
}

// LChFromXYZ 从三刺激值转换
func LChFromXYZ(xyz XYZ) LCh {
	return LabFromXYZ(xyz).ToLCh()
}

// labF CIE L*a*b* 压缩函数
func labF(t float64) float64 {
	if t > labDeltaCubed {
		return math.Cbrt(t)
	}
	return t/labThreeDeltaSq + 4.0/29.0
}

// labFInv labF 的逆函数
func labFInv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return labThreeDeltaSq * (t - 4.0/29.0)
}

// normalizeDegrees 把角度归一化到 [0, 360)
func normalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// safeDiv 分母为零时返回零
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
