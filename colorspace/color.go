package colorspace

// Color 是所有色彩模型共同实现的能力接口：
// 转换到规范三刺激值、访问不透明度
// 任意两个模型之间的转换都经 XYZ 中转（每个模型只需定义两个函数），
// 同底空间的直角/圆柱坐标对（如 Lab↔LCh、Okhsv↔Okhwb）另有直接路径
type Color interface {
	ToXYZ() XYZ
	Alpha() float64
}

// ToLab 把任意颜色转换为 CIE L*a*b*
func ToLab(c Color) Lab {
	return LabFromXYZ(c.ToXYZ())
}

// ToLuv 把任意颜色转换为 CIE L*u*v*
func ToLuv(c Color) Luv {
	return LuvFromXYZ(c.ToXYZ())
}

// ToOklab 把任意颜色转换为 Oklab
func ToOklab(c Color) Oklab {
	return OklabFromXYZ(c.ToXYZ())
}

// ToRGB 把任意颜色转换到指定 RGB 空间
func ToRGB(c Color, space *RGBSpace) RGB {
	return RGBFromXYZ(c.ToXYZ(), space)
}

// ToXyY 把任意颜色转换为 CIE xyY
func ToXyY(c Color) XyY {
	return XyYFromXYZ(c.ToXYZ())
}
