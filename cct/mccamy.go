package cct

import "github.com/weaming/colorlab/colorspace"

// McCamy (1992) 多项式的震中与系数
const (
	mcCamyEpicenterX = 0.3320
	mcCamyEpicenterY = 0.1858

	mcCamyA0 = 5520.33
	mcCamyA1 = -6823.3
	mcCamyA2 = 3525.0
	mcCamyA3 = -449.0
)

// McCamy 用 McCamy 三次多项式估算相关色温
// 先转到 CIE 1931 色度坐标，再对震中斜率求多项式
// 在约 2000K 到 12500K 范围内最准确
func McCamy(c colorspace.Color) ColorTemperature {
	xy := c.ToXYZ().Chromaticity()
	n := (xy.X - mcCamyEpicenterX) / (xy.Y - mcCamyEpicenterY)

	return ColorTemperature(mcCamyA3*n*n*n + mcCamyA2*n*n + mcCamyA1*n + mcCamyA0)
}
