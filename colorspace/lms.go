package colorspace

// LMS 表示锥细胞响应三元组（长、中、短波）
// 由 XYZ 经观察环境的色适应矩阵得到，是色适应缩放发生的空间
type LMS struct {
	L float64
	M float64
	S float64

	alpha float64
	ctx   Context
}

// NewLMS 创建 LMS 颜色，默认不透明、默认观察环境
func NewLMS(l, m, s float64) LMS {
	return LMS{L: l, M: m, S: s, alpha: 1.0, ctx: DefaultContext()}
}

// Components 返回 [L, M, S] 三分量
func (c LMS) Components() Vector3 {
	return Vector3{c.L, c.M, c.S}
}

// Alpha 返回不透明度 [0, 1]
func (c LMS) Alpha() float64 {
	return c.alpha
}

// Context 返回观察环境
func (c LMS) Context() Context {
	return c.ctx
}

// WithAlpha 返回替换不透明度后的颜色
func (c LMS) WithAlpha(alpha float64) LMS {
	c.alpha = alpha
	return c
}

// WithContext 返回替换观察环境标签后的颜色（不做色适应）
func (c LMS) WithContext(ctx Context) LMS {
	c.ctx = ctx
	return c
}

// ToXYZ 经色适应矩阵的逆变换回三刺激值
func (c LMS) ToXYZ() XYZ {
	v := c.ctx.CAT.Inverse().Apply(c.Components())
	return XYZ{X: v[0], Y: v[1], Z: v[2], alpha: c.alpha, ctx: c.ctx}
}

// LMSFromXYZ 从 XYZ 转换到锥响应空间
func LMSFromXYZ(xyz XYZ) LMS {
	return xyz.ToLMS()
}
