package colorspace

// Context 表示观察环境：光源 + 观察者 + 色适应变换
// 光源和观察者共同决定参考白；两个环境的参考白数值完全相等时
// 视为同一环境，适应退化为空操作
type Context struct {
	Illuminant Illuminant
	Observer   Observer
	CAT        CAT
}

// DefaultContext 返回默认观察环境：D65 光源、CIE 1931 2° 观察者、Bradford 变换
func DefaultContext() Context {
	return Context{
		Illuminant: IlluminantD65,
		Observer:   Observer1931,
		CAT:        Bradford,
	}
}

// ReferenceWhite 返回该环境的参考白三刺激值
func (c Context) ReferenceWhite() Vector3 {
	return c.Illuminant.White(c.Observer)
}

// SameWhite 判断两个环境的参考白是否数值完全相等（精确比较，非近似）
func (c Context) SameWhite(other Context) bool {
	return c.ReferenceWhite() == other.ReferenceWhite()
}

// WithIlluminant 返回替换光源后的环境
func (c Context) WithIlluminant(i Illuminant) Context {
	c.Illuminant = i
	return c
}

// WithObserver 返回替换观察者后的环境
func (c Context) WithObserver(o Observer) Context {
	c.Observer = o
	return c
}

// WithCAT 返回替换色适应变换后的环境
func (c Context) WithCAT(cat CAT) Context {
	c.CAT = cat
	return c
}
