package colorspace

import "math"

// Oklab 的定义矩阵：XYZ → 线性 LMS，立方根 LMS → Lab
var (
	oklabXYZToLMS = Matrix3x3{
		0.8189330101, 0.3618667424, -0.1288597137,
		0.0329845436, 0.9293118715, 0.0361456387,
		0.0482003018, 0.2643662691, 0.6338517070,
	}
	oklabLMSToLab = Matrix3x3{
		0.2104542553, 0.7936177850, -0.0040720468,
		1.9779984951, -2.4285922050, 0.4505937099,
		0.0259040371, 0.7827717662, -0.8086757660,
	}

	oklabLMSToXYZ = oklabXYZToLMS.MustInverse()
	oklabLabToLMS = oklabLMSToLab.MustInverse()
)

// Oklab 表示 Oklab 感知均匀颜色空间的颜色
// L 为感知明度 [0, 1]，a 为绿-红轴，b 为蓝-黄轴
// 定义在 D65、CIE 1931 2° 观察者下
type Oklab struct {
	L float64
	A float64
	B float64

	alpha float64
}

// Oklch 表示 Oklab 的圆柱坐标形式
type Oklch struct {
	L float64
	C float64
	H float64 // 色相角，度 [0, 360)

	alpha float64
}

// NewOklab 创建 Oklab 颜色，默认不透明
func NewOklab(l, a, b float64) Oklab {
	return Oklab{L: l, A: a, B: b, alpha: 1.0}
}

// NewOklch 创建 Oklch 颜色，默认不透明
func NewOklch(l, c, h float64) Oklch {
	return Oklch{L: l, C: c, H: normalizeDegrees(h), alpha: 1.0}
}

// Components 返回 [L, a, b] 三分量
func (c Oklab) Components() Vector3 {
	return Vector3{c.L, c.A, c.B}
}

// Alpha 返回不透明度 [0, 1]
func (c Oklab) Alpha() float64 {
	return c.alpha
}

// Context 返回定义环境（固定 D65 / 1931 2°）
func (c Oklab) Context() Context {
	return DefaultContext()
}

// WithAlpha 返回替换不透明度后的颜色
func (c Oklab) WithAlpha(alpha float64) Oklab {
	c.alpha = alpha
	return c
}

// ToXYZ 转换到三刺激值：Lab → 立方根 LMS → 线性 LMS → XYZ
func (c Oklab) ToXYZ() XYZ {
	lms := oklabLabToLMS.Apply(c.Components())
	linear := Vector3{
		lms[0] * lms[0] * lms[0],
		lms[1] * lms[1] * lms[1],
		lms[2] * lms[2] * lms[2],
	}
	v := oklabLMSToXYZ.Apply(linear)

	return XYZ{X: v[0], Y: v[1], Z: v[2], alpha: c.alpha, ctx: DefaultContext()}
}

// ToOklch 转换到圆柱坐标形式（直接极坐标变换）
func (c Oklab) ToOklch() Oklch {
	chroma := math.Hypot(c.A, c.B)
	hue := normalizeDegrees(math.Atan2(c.B, c.A) * 180.0 / math.Pi)

	return Oklch{L: c.L, C: chroma, H: hue, alpha: c.alpha}
}

// OklabFromXYZ 从三刺激值转换，观察环境非 D65 时先做色适应
func OklabFromXYZ(xyz XYZ) Oklab {
	adapted := xyz.AdaptTo(DefaultContext())

	lms := oklabXYZToLMS.Apply(adapted.Components())
	root := Vector3{
		math.Cbrt(lms[0]),
		math.Cbrt(lms[1]),
		math.Cbrt(lms[2]),
	}
	lab := oklabLMSToLab.Apply(root)

	return Oklab{L: lab[0], A: lab[1], B: lab[2], alpha: xyz.Alpha()}
}

// Components 返回 [L, C, H] 三分量
func (c Oklch) Components() Vector3 {
	return Vector3{c.L, c.C, c.H}
}

// Alpha 返回不透明度 [0, 1]
func (c Oklch) Alpha() float64 {
	return c.alpha
}

// WithAlpha 返回替换不透明度后的颜色
func (c Oklch) WithAlpha(alpha float64) Oklch {
	c.alpha = alpha
	return c
}

// ToOklab 转换回直角坐标形式
func (c Oklch) ToOklab() Oklab {
	rad := c.H * math.Pi / 180.0

	return Oklab{
		L:     c.L,
		A:     c.C * math.Cos(rad),
		B:     c.C * math.Sin(rad),
		alpha: c.alpha,
	}
}

// ToXYZ 经 Oklab 转换到三刺激值
func (c Oklch) ToXYZ() XYZ {
	return c.ToOklab().ToXYZ()
}

// OklchFromXYZ 从三刺激值转换
func OklchFromXYZ(xyz XYZ) Oklch {
	return OklabFromXYZ(xyz).ToOklch()
}
