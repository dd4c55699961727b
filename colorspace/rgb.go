package colorspace

import "math"

// RGB 表示某个 RGB 空间中的编码（经伽马）颜色，分量范围 [0, 1]
type RGB struct {
	R float64
	G float64
	B float64

	alpha float64
	space *RGBSpace
}

// LinearRGB 表示线性光 RGB 颜色，矩阵运算只在此形式上进行
type LinearRGB struct {
	R float64
	G float64
	B float64

	alpha float64
	space *RGBSpace
}

// NewRGB 在指定空间创建编码 RGB 颜色，默认不透明
func NewRGB(space *RGBSpace, r, g, b float64) RGB {
	return RGB{R: r, G: g, B: b, alpha: 1.0, space: space}
}

// NewRGB8 从 8-bit 分量创建编码 RGB 颜色
func NewRGB8(space *RGBSpace, r, g, b uint8) RGB {
	return NewRGB(space, float64(r)/255.0, float64(g)/255.0, float64(b)/255.0)
}

// NewLinearRGB 在指定空间创建线性 RGB 颜色，默认不透明
func NewLinearRGB(space *RGBSpace, r, g, b float64) LinearRGB {
	return LinearRGB{R: r, G: g, B: b, alpha: 1.0, space: space}
}

// Space 返回所属 RGB 空间，未指定时默认 sRGB
func (c RGB) Space() *RGBSpace {
	if c.space == nil {
		return SRGB
	}
	return c.space
}

// Components 返回 [R, G, B] 编码分量
func (c RGB) Components() Vector3 {
	return Vector3{c.R, c.G, c.B}
}

// Alpha 返回不透明度 [0, 1]
func (c RGB) Alpha() float64 {
	return c.alpha
}

// WithAlpha 返回替换不透明度后的颜色
func (c RGB) WithAlpha(alpha float64) RGB {
	c.alpha = alpha
	return c
}

// Linear 解码到线性光形式
func (c RGB) Linear() LinearRGB {
	t := c.Space().Transfer
	return LinearRGB{
		R:     t.Decode(c.R),
		G:     t.Decode(c.G),
		B:     t.Decode(c.B),
		alpha: c.alpha,
		space: c.Space(),
	}
}

// ToXYZ 解码为线性光后经空间矩阵转换到三刺激值
// 结果的观察环境为该空间的定义环境
func (c RGB) ToXYZ() XYZ {
	return c.Linear().ToXYZ()
}

// To 把颜色转换到另一个 RGB 空间（经 XYZ 中转，必要时做色适应）
func (c RGB) To(space *RGBSpace) RGB {
	if space == c.Space() {
		return c
	}
	return RGBFromXYZ(c.ToXYZ(), space)
}

// Clamped 返回分量截断到 [0, 1] 的颜色
func (c RGB) Clamped() RGB {
	c.R = clamp01(c.R)
	c.G = clamp01(c.G)
	c.B = clamp01(c.B)
	return c
}

// InGamut 判断所有分量是否都在 [0, 1] 内（容差 1e-9）
func (c RGB) InGamut() bool {
	const eps = 1e-9
	for _, v := range []float64{c.R, c.G, c.B} {
		if v < -eps || v > 1+eps {
			return false
		}
	}
	return true
}

// Bytes 返回截断并量化到 8-bit 的分量
func (c RGB) Bytes() (r, g, b uint8) {
	q := c.Clamped()
	return uint8(q.R*255 + 0.5), uint8(q.G*255 + 0.5), uint8(q.B*255 + 0.5)
}

// Space 返回所属 RGB 空间，未指定时默认 sRGB
func (c LinearRGB) Space() *RGBSpace {
	if c.space == nil {
		return SRGB
	}
	return c.space
}

// Components 返回 [R, G, B] 线性分量
func (c LinearRGB) Components() Vector3 {
	return Vector3{c.R, c.G, c.B}
}

// Alpha 返回不透明度 [0, 1]
func (c LinearRGB) Alpha() float64 {
	return c.alpha
}

// WithAlpha 返回替换不透明度后的颜色
func (c LinearRGB) WithAlpha(alpha float64) LinearRGB {
	c.alpha = alpha
	return c
}

// Encoded 应用传递函数编码为存储形式
func (c LinearRGB) Encoded() RGB {
	t := c.Space().Transfer
	return RGB{
		R:     t.Encode(c.R),
		G:     t.Encode(c.G),
		B:     t.Encode(c.B),
		alpha: c.alpha,
		space: c.Space(),
	}
}

// ToXYZ 经空间矩阵转换到三刺激值
func (c LinearRGB) ToXYZ() XYZ {
	v := c.Space().XYZMatrix().Apply(c.Components())
	return XYZ{X: v[0], Y: v[1], Z: v[2], alpha: c.alpha, ctx: c.Space().Context}
}

// RGBFromXYZ 把三刺激值转换到指定 RGB 空间的编码形式
// 观察环境与空间定义环境不同时先做色适应
func RGBFromXYZ(xyz XYZ, space *RGBSpace) RGB {
	return LinearRGBFromXYZ(xyz, space).Encoded()
}

// LinearRGBFromXYZ 把三刺激值转换到指定 RGB 空间的线性形式
func LinearRGBFromXYZ(xyz XYZ, space *RGBSpace) LinearRGB {
	adapted := xyz.AdaptTo(space.Context)
	v := space.InverseXYZMatrix().Apply(adapted.Components())

	return LinearRGB{R: v[0], G: v[1], B: v[2], alpha: xyz.Alpha(), space: space}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
