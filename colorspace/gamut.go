package colorspace

import "math"

// Ok* 趾部函数常量
const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1.0 + toeK1) / (1.0 + toeK2)
)

// toe 把 Oklab 明度映射到 Ok* 感知明度，改善暗部的均匀性
func toe(x float64) float64 {
	return 0.5 * (toeK3*x - toeK1 + math.Sqrt((toeK3*x-toeK1)*(toeK3*x-toeK1)+4.0*toeK2*toeK3*x))
}

// toeInv toe 的逆函数
func toeInv(x float64) float64 {
	return (x*x + toeK1*x) / (toeK3 * (x + toeK2))
}

// computeMaxSaturation 计算给定色相方向 (a, b) 上 sRGB 色域内的最大饱和度 S = C/L
// 按色相所在半平面选多项式近似，再做一步 Halley 迭代修正
func computeMaxSaturation(a, b float64) float64 {
	var k0, k1, k2, k3, k4, wl, wm, ws float64

	switch {
	case -1.88170328*a-0.80936493*b > 1.0:
		// 红分量先出界
		k0, k1, k2, k3, k4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		wl, wm, ws = 4.0767416621, -3.3077115913, 0.2309699292
	case 1.81444104*a-1.19445276*b > 1.0:
		// 绿分量先出界
		k0, k1, k2, k3, k4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, -0.14503204
		wl, wm, ws = -1.2684380046, 2.6097574011, -0.3413193965
	default:
		// 蓝分量先出界
		k0, k1, k2, k3, k4 = 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
		wl, wm, ws = -0.0041960863, -0.7034186147, 1.7076147010
	}

	sat := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	l_ := 1.0 + sat*kl
	m_ := 1.0 + sat*km
	s_ := 1.0 + sat*ks

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	lDS := 3.0 * kl * l_ * l_
	mDS := 3.0 * km * m_ * m_
	sDS := 3.0 * ks * s_ * s_

	lDS2 := 6.0 * kl * kl * l_
	mDS2 := 6.0 * km * km * m_
	sDS2 := 6.0 * ks * ks * s_

	f := wl*l + wm*m + ws*s
	f1 := wl*lDS + wm*mDS + ws*sDS
	f2 := wl*lDS2 + wm*mDS2 + ws*sDS2

	return sat - f*f1/(f1*f1-0.5*f*f2)
}

// cuspForHue 求归一化色相 h（[0, 1)）对应的 sRGB 色域尖点 (L_cusp, C_cusp)
// 尖点是该色相上色域边界彩度最大的点
func cuspForHue(h float64) (lCusp, cCusp float64) {
	rad := h * 2.0 * math.Pi
	a := math.Cos(rad)
	b := math.Sin(rad)

	sCusp := computeMaxSaturation(a, b)
	rgb := oklabToLinearSRGB(1.0, sCusp*a, sCusp*b)

	lCusp = math.Cbrt(1.0 / rgb.Max())
	cCusp = lCusp * sCusp
	return lCusp, cCusp
}

// maxChromaAtLightness 求明度 l 处色域三角形内的最大彩度
// 尖点两侧按直线边界线性缩放
func maxChromaAtLightness(lCusp, cCusp, l float64) float64 {
	switch {
	case l <= lCusp:
		if lCusp <= 0 {
			return 0
		}
		return cCusp * l / lCusp
	case lCusp >= 1.0:
		return 0
	default:
		return cCusp * (1.0 - l) / (1.0 - lCusp)
	}
}

// oklabToLinearSRGB 把 Oklab 坐标直接展开为线性 sRGB 分量（不截断）
func oklabToLinearSRGB(l, a, b float64) Vector3 {
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l3 := l_ * l_ * l_
	m3 := m_ * m_ * m_
	s3 := s_ * s_ * s_

	return Vector3{
		4.0767416621*l3 - 3.3077115913*m3 + 0.2309699292*s3,
		-1.2684380046*l3 + 2.6097574011*m3 - 0.3413193965*s3,
		-0.0041960863*l3 - 0.7034186147*m3 + 1.7076147010*s3,
	}
}
