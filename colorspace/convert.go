package colorspace

import (
	"fmt"
	"math"
)

// TransferKind 传递函数类型
type TransferKind int

const (
	// TransferLinear 线性（无伽马）
	TransferLinear TransferKind = iota
	// TransferGamma 纯幂函数伽马
	TransferGamma
	// TransferSRGB sRGB 分段曲线（线性脚趾段 + 2.4 次幂）
	TransferSRGB
	// TransferBT709 BT.709 / BT.601 分段曲线
	TransferBT709
	// TransferProPhoto ProPhoto RGB 分段曲线（1.8 次幂）
	TransferProPhoto
	// TransferPQ SMPTE ST 2084 感知量化曲线 (HDR)
	TransferPQ
	// TransferHLG Hybrid Log-Gamma 曲线 (HDR)
	TransferHLG
)

// Transfer 表示 RGB 空间的电光传递函数
// Encode 把线性光编码为存储值，Decode 反之；矩阵运算只在线性光上进行
type Transfer struct {
	Kind  TransferKind
	Gamma float64 // 仅 TransferGamma 使用
}

// 分段曲线常量
const (
	srgbAlpha            = 0.055
	srgbEncodedThreshold = 0.04045
	srgbGamma            = 2.4
	srgbLinearSlope      = 12.92
	srgbLinearThreshold  = 0.0031308

	bt709Alpha            = 0.099
	bt709EncodedThreshold = 0.081
	bt709Gamma            = 1.0 / 0.45
	bt709LinearSlope      = 4.5
	bt709LinearThreshold  = 0.018

	prophotoEncodedThreshold = 16.0 / 512.0
	prophotoGamma            = 1.8
	prophotoLinearSlope      = 16.0
	prophotoLinearThreshold  = 1.0 / 512.0

	pqC1 = 3424.0 / 4096.0
	pqC2 = 2413.0 / 4096.0 * 32.0
	pqC3 = 2392.0 / 4096.0 * 32.0
	pqM1 = 2610.0 / 16384.0
	pqM2 = 2523.0 / 4096.0 * 128.0

	hlgA = 0.17883277
	hlgB = 0.28466892
	hlgC = 0.55991073
)

// LinearTransfer 返回线性传递函数
func LinearTransfer() Transfer {
	return Transfer{Kind: TransferLinear}
}

// GammaTransfer 返回纯幂函数传递函数
func GammaTransfer(gamma float64) Transfer {
	return Transfer{Kind: TransferGamma, Gamma: gamma}
}

// Decode 把编码值解码为线性光
func (t Transfer) Decode(encoded float64) float64 {
	switch t.Kind {
	case TransferGamma:
		return signedPow(encoded, t.Gamma)
	case TransferSRGB:
		return srgbDecode(encoded)
	case TransferBT709:
		return bt709Decode(encoded)
	case TransferProPhoto:
		return prophotoDecode(encoded)
	case TransferPQ:
		return pqDecode(encoded)
	case TransferHLG:
		return hlgDecode(encoded)
	default:
		return encoded
	}
}

// Encode 把线性光编码为存储值
func (t Transfer) Encode(linear float64) float64 {
	switch t.Kind {
	case TransferGamma:
		return signedPow(linear, 1.0/t.Gamma)
	case TransferSRGB:
		return srgbEncode(linear)
	case TransferBT709:
		return bt709Encode(linear)
	case TransferProPhoto:
		return prophotoEncode(linear)
	case TransferPQ:
		return pqEncode(linear)
	case TransferHLG:
		return hlgEncode(linear)
	default:
		return linear
	}
}

func (t Transfer) String() string {
	switch t.Kind {
	case TransferGamma:
		return fmt.Sprintf("Gamma %.2f", t.Gamma)
	case TransferSRGB:
		return "sRGB"
	case TransferBT709:
		return "BT.709"
	case TransferProPhoto:
		return "ProPhoto RGB"
	case TransferPQ:
		return "PQ (ST 2084)"
	case TransferHLG:
		return "HLG"
	default:
		return "Linear"
	}
}

// signedPow 负值按绝对值取幂后恢复符号，保持函数为奇函数
func signedPow(v, p float64) float64 {
	if v < 0 {
		return -math.Pow(-v, p)
	}
	return math.Pow(v, p)
}

func srgbDecode(encoded float64) float64 {
	if encoded <= srgbEncodedThreshold {
		return encoded / srgbLinearSlope
	}
	return math.Pow((encoded+srgbAlpha)/(1.0+srgbAlpha), srgbGamma)
}

func srgbEncode(linear float64) float64 {
	if linear <= srgbLinearThreshold {
		return linear * srgbLinearSlope
	}
	return (1.0+srgbAlpha)*math.Pow(linear, 1.0/srgbGamma) - srgbAlpha
}

func bt709Decode(encoded float64) float64 {
	if encoded < bt709EncodedThreshold {
		return encoded / bt709LinearSlope
	}
	return math.Pow((encoded+bt709Alpha)/(1.0+bt709Alpha), bt709Gamma)
}

func bt709Encode(linear float64) float64 {
	if linear < bt709LinearThreshold {
		return linear * bt709LinearSlope
	}
	return (1.0+bt709Alpha)*math.Pow(linear, 0.45) - bt709Alpha
}

func prophotoDecode(encoded float64) float64 {
	if encoded < prophotoEncodedThreshold {
		return encoded / prophotoLinearSlope
	}
	return math.Pow(encoded, prophotoGamma)
}

func prophotoEncode(linear float64) float64 {
	if linear < prophotoLinearThreshold {
		return linear * prophotoLinearSlope
	}
	return math.Pow(linear, 1.0/prophotoGamma)
}

// PQ 以 10000 cd/m² 为线性光满量程
func pqDecode(encoded float64) float64 {
	e := math.Max(encoded, 0)
	e1m2 := math.Pow(e, 1.0/pqM2)
	numerator := math.Max(e1m2-pqC1, 0)
	denominator := pqC2 - pqC3*e1m2
	return 10000.0 * math.Pow(numerator/denominator, 1.0/pqM1)
}

func pqEncode(linear float64) float64 {
	y := math.Max(linear/10000.0, 0)
	ym1 := math.Pow(y, pqM1)
	return math.Pow((pqC1+pqC2*ym1)/(1.0+pqC3*ym1), pqM2)
}

func hlgDecode(encoded float64) float64 {
	if encoded <= 0.5 {
		return encoded * encoded / 3.0
	}
	return math.Exp((encoded-hlgC)/hlgA)/12.0 + hlgB/12.0
}

func hlgEncode(linear float64) float64 {
	if linear <= 1.0/12.0 {
		return math.Sqrt(3.0 * linear)
	}
	return hlgA*math.Log(12.0*linear-hlgB) + hlgC
}
