package cct

import (
	"math"

	"github.com/weaming/colorlab/colorspace"
)

// Hernández-Andrés (1999) 指数公式的震中与两段系数
// 低段覆盖 3000–50000K，超出阈值后改用高段系数（最高 800000K）
const (
	hernandezEpicenterX = 0.3366
	hernandezEpicenterY = 0.1735

	hernandezHighThreshold = 50000.0

	hernandezLowA0 = -949.86315
	hernandezLowA1 = 6253.80338
	hernandezLowT1 = 0.92159
	hernandezLowA2 = 28.70599
	hernandezLowT2 = 0.20039
	hernandezLowA3 = 0.00004
	hernandezLowT3 = 0.07125

	hernandezHighA0 = 36284.48953
	hernandezHighA1 = 0.00228
	hernandezHighT1 = 0.07861
	hernandezHighA2 = 5.4535e-36
	hernandezHighT2 = 0.01543
)

// Hernandez 用 Hernández-Andrés 指数公式估算相关色温
// 比 McCamy 覆盖范围更广，先按低段估算，超过 50000K 再用高段系数重算
func Hernandez(c colorspace.Color) ColorTemperature {
	xy := c.ToXYZ().Chromaticity()
	n := (xy.X - hernandezEpicenterX) / (xy.Y - hernandezEpicenterY)

	cct := hernandezLowA0 +
		hernandezLowA1*math.Exp(-n/hernandezLowT1) +
		hernandezLowA2*math.Exp(-n/hernandezLowT2) +
		hernandezLowA3*math.Exp(-n/hernandezLowT3)

	if cct > hernandezHighThreshold {
		cct = hernandezHighA0 +
			hernandezHighA1*math.Exp(-n/hernandezHighT1) +
			hernandezHighA2*math.Exp(-n/hernandezHighT2)
	}

	return ColorTemperature(cct)
}
